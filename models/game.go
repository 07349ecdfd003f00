package models

type GameType string

const (
	GameTypeRegular GameType = "regular"
	GameTypePlayoff GameType = "playoff"
)

// Game is fixed at creation: both scores and the winner are recorded
// together, no mid-game mutation is modeled.
type Game struct {
	ID         int      `json:"id"`
	Team1ID    int      `json:"team1_id"`
	Team1Score int      `json:"team1_score"`
	Team2ID    int      `json:"team2_id"`
	Team2Score int      `json:"team2_score"`
	WinnerID   int      `json:"winner_id"`
	Type       GameType `json:"type"`
}

// PlayerGame is one player's recorded score within one game; at most one
// row per (player, game) pair.
type PlayerGame struct {
	ID          int `json:"id"`
	PlayerID    int `json:"player_id"`
	GameID      int `json:"game_id"`
	PlayerScore int `json:"player_score"`
}

// ScoreboardEntry is the public projection of a game, with team names
// resolved. Field names follow the API contract.
type ScoreboardEntry struct {
	Team1      string   `json:"team1"`
	Team1Score int      `json:"team1Score"`
	Team2      string   `json:"team2"`
	Team2Score int      `json:"team2Score"`
	Winner     string   `json:"winner"`
	Type       GameType `json:"type"`
}
