package models

type Team struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	Players []Player `json:"players,omitempty"`
	Coach   *Coach   `json:"coach,omitempty"`

	LogoKey *string `json:"-"`
	LogoURL *string `json:"logo_url,omitempty"`
}
