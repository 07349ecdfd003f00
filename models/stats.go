package models

// Read-only aggregate views computed by the stats service. All averages and
// percentile scores are rounded to integers (half away from zero).

type PlayerSummary struct {
	Name        string `json:"name"`
	Height      string `json:"height"`
	GamesPlayed int    `json:"numberOfGamesPlayed"`
	AvgScore    int    `json:"avgScore"`
}

type TeamSummary struct {
	Team     string   `json:"team"`
	AvgScore int      `json:"avgScore"`
	Players  []string `json:"players"`
}

type PercentilePlayer struct {
	Name     string `json:"name"`
	AvgScore int    `json:"avgScore"`
}

type TeamPercentile struct {
	Team            string             `json:"team"`
	Percentile      int                `json:"percentile"`
	PercentileScore int                `json:"percentileScore"`
	Players         []PercentilePlayer `json:"playersInPercentile"`
}

type SystemUserStats struct {
	Name            string `json:"name"`
	Username        string `json:"username"`
	IsLoggedIn      bool   `json:"isLoggedIn"`
	LoginCount      int    `json:"loggedInCount"`
	TimeSpentOnline int    `json:"timeSpentOnline"`
}
