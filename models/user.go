package models

import "time"

type UserRole string

const (
	RoleLeagueAdmin UserRole = "league_admin"
	RoleCoach       UserRole = "coach"
	RolePlayer      UserRole = "player"
)

// Capability is an explicit grant carried by a role. The set mirrors the
// three view scopes of the system: admin stats, coach data, player data.
type Capability string

const (
	CapViewSystemUsers Capability = "view_system_users"
	CapViewCoaches     Capability = "view_coaches"
	CapViewPlayers     Capability = "view_players"
)

var roleCapabilities = map[UserRole][]Capability{
	RoleLeagueAdmin: {CapViewSystemUsers, CapViewCoaches, CapViewPlayers},
	RoleCoach:       {CapViewCoaches, CapViewPlayers},
	RolePlayer:      {CapViewPlayers},
}

func (r UserRole) Capabilities() []Capability {
	return roleCapabilities[r]
}

func (r UserRole) Can(c Capability) bool {
	for _, granted := range roleCapabilities[r] {
		if granted == c {
			return true
		}
	}
	return false
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleLeagueAdmin, RoleCoach, RolePlayer:
		return true
	}
	return false
}

// SystemUser is an account plus session telemetry. LoginCount and
// TimeSpentOnline are cumulative; TimeSpentOnline is in seconds.
type SystemUser struct {
	ID              int        `json:"id"`
	FirstName       string     `json:"first_name"`
	LastName        string     `json:"last_name"`
	Username        string     `json:"username"`
	PasswordHash    string     `json:"-"`
	Role            UserRole   `json:"role"`
	IsLoggedIn      bool       `json:"is_logged_in"`
	LoginCount      int        `json:"login_count"`
	TimeSpentOnline int        `json:"time_spent_online"`
	LastLoginAt     *time.Time `json:"last_login_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

func (u *SystemUser) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Caller is the authenticated identity a request acts as, reconstructed
// from JWT claims by the middleware.
type Caller struct {
	UserID   int
	Username string
	Role     UserRole
}

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
