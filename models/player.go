package models

// Player and Coach wrap a SystemUser identity with a team affiliation.
// A player belongs to exactly one team; one active coach per team is
// expected but enforced by the application, not the schema.

type Player struct {
	ID     int    `json:"id"`
	UserID int    `json:"user_id"`
	Height string `json:"height"`
	TeamID int    `json:"team_id"`

	User *SystemUser `json:"user,omitempty"`
	Team *Team       `json:"team,omitempty"`
}

type Coach struct {
	ID     int `json:"id"`
	UserID int `json:"user_id"`
	TeamID int `json:"team_id"`

	User *SystemUser `json:"user,omitempty"`
	Team *Team       `json:"team,omitempty"`
}
