package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Fixture: the Lakers (team 1) with a coach and five players, three of whom
// have recorded games with average scores 10, 20 and 30. Team 2 has played
// no games and has no coach.
func newStatsFixture() (*statsService, *fakeUserRepo) {
	user := func(id int, first, last, username string, role models.UserRole) *models.SystemUser {
		return &models.SystemUser{ID: id, FirstName: first, LastName: last, Username: username, Role: role}
	}

	userRepo := &fakeUserRepo{users: []models.SystemUser{
		*user(1, "Kenzo", "Patterson", "kenzo.patterson", models.RoleLeagueAdmin),
		*user(2, "Pat", "Riley", "pat.riley", models.RoleCoach),
		*user(3, "Magic", "Johnson", "magic.johnson", models.RolePlayer),
	}}

	teamRepo := &fakeTeamRepo{teams: map[int]*models.Team{
		1: {ID: 1, Name: "Lakers"},
		2: {ID: 2, Name: "Clippers"},
	}}

	playerRepo := &fakePlayerRepo{players: map[int]*models.Player{
		1: {ID: 1, TeamID: 1, Height: "6'9\"", User: user(3, "Magic", "Johnson", "magic.johnson", models.RolePlayer)},
		2: {ID: 2, TeamID: 1, User: user(4, "Kareem", "Abdul-Jabbar", "kareem.abdul", models.RolePlayer)},
		3: {ID: 3, TeamID: 1, User: user(5, "James", "Worthy", "james.worthy", models.RolePlayer)},
		4: {ID: 4, TeamID: 1, User: user(6, "Byron", "Scott", "byron.scott", models.RolePlayer)},
		5: {ID: 5, TeamID: 1, User: user(7, "Michael", "Cooper", "michael.cooper", models.RolePlayer)},
	}}

	coachRepo := &fakeCoachRepo{coaches: map[int]*models.Coach{
		1: {ID: 1, TeamID: 1, User: user(2, "Pat", "Riley", "pat.riley", models.RoleCoach)},
	}}

	gameRepo := &fakeGameRepo{sides: map[int]repositories.SideAverages{
		1: {
			AsTeam1: sql.NullFloat64{Float64: 110, Valid: true},
			AsTeam2: sql.NullFloat64{Float64: 90, Valid: true},
		},
		2: {},
	}}

	playerGameRepo := &fakePlayerGameRepo{scores: map[int][]int{
		1: {10},
		2: {15, 25},
		3: {28, 30, 32},
	}}

	svc := NewStatsService(userRepo, teamRepo, playerRepo, coachRepo, gameRepo, playerGameRepo).(*statsService)
	return svc, userRepo
}

var (
	adminCaller  = models.Caller{UserID: 1, Username: "kenzo.patterson", Role: models.RoleLeagueAdmin}
	coachCaller  = models.Caller{UserID: 2, Username: "pat.riley", Role: models.RoleCoach}
	playerCaller = models.Caller{UserID: 3, Username: "magic.johnson", Role: models.RolePlayer}
)

func TestPlayerSummary(t *testing.T) {
	svc, _ := newStatsFixture()

	summary, err := svc.PlayerSummary(context.Background(), adminCaller, 2)
	require.NoError(t, err)
	assert.Equal(t, "Kareem Abdul-Jabbar", summary.Name)
	assert.Equal(t, 2, summary.GamesPlayed)
	assert.Equal(t, 20, summary.AvgScore)
}

// A player with no recorded games deterministically averages 0; this is an
// explicit policy, not a division fallback.
func TestPlayerSummaryZeroGames(t *testing.T) {
	svc, _ := newStatsFixture()

	summary, err := svc.PlayerSummary(context.Background(), adminCaller, 4)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.GamesPlayed)
	assert.Equal(t, 0, summary.AvgScore)
}

func TestPlayerSummaryAuthorization(t *testing.T) {
	svc, _ := newStatsFixture()
	ctx := context.Background()

	// Player reaches themself only.
	_, err := svc.PlayerSummary(ctx, playerCaller, 1)
	assert.NoError(t, err)
	_, err = svc.PlayerSummary(ctx, playerCaller, 2)
	assert.ErrorIs(t, err, ErrUnauthorized)

	// The team's coach reaches the whole roster.
	_, err = svc.PlayerSummary(ctx, coachCaller, 2)
	assert.NoError(t, err)
}

func TestPlayerSummaryNotFound(t *testing.T) {
	svc, _ := newStatsFixture()

	_, err := svc.PlayerSummary(context.Background(), adminCaller, 99)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
}

// Side means are combined unweighted: two games as team1 averaging 110 and
// one game as team2 scoring 90 give round((110+90)/2) = 100.
func TestTeamSummary(t *testing.T) {
	svc, _ := newStatsFixture()

	summary, err := svc.TeamSummary(context.Background(), coachCaller, 1)
	require.NoError(t, err)
	assert.Equal(t, "Lakers", summary.Team)
	assert.Equal(t, 100, summary.AvgScore)
	assert.Len(t, summary.Players, 5)
	assert.Contains(t, summary.Players, "Magic Johnson")
}

func TestTeamSummarySingleSide(t *testing.T) {
	svc, _ := newStatsFixture()
	svc.gameRepo.(*fakeGameRepo).sides[1] = repositories.SideAverages{
		AsTeam1: sql.NullFloat64{Float64: 102.4, Valid: true},
	}

	summary, err := svc.TeamSummary(context.Background(), adminCaller, 1)
	require.NoError(t, err)
	assert.Equal(t, 102, summary.AvgScore)
}

// A team with no games at all is an explicit insufficient-data outcome, not
// a zero average.
func TestTeamSummaryNoGames(t *testing.T) {
	svc, _ := newStatsFixture()

	_, err := svc.TeamSummary(context.Background(), adminCaller, 2)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestTeamSummaryAuthorization(t *testing.T) {
	svc, _ := newStatsFixture()
	ctx := context.Background()

	// Coach of team 1 is denied team 2; team 2 also has no coach record, so
	// the check fails closed rather than erroring.
	_, err := svc.TeamSummary(ctx, coachCaller, 2)
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.TeamSummary(ctx, playerCaller, 1)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTeamSummaryNotFound(t *testing.T) {
	svc, _ := newStatsFixture()

	_, err := svc.TeamSummary(context.Background(), adminCaller, 99)
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

// Three qualifying averages [10, 20, 30]: the 50th percentile interpolates
// to 20, and the players averaging 20 and 30 clear the bar. The two
// zero-game players are excluded from both the threshold and the result.
func TestTeamPercentile(t *testing.T) {
	svc, _ := newStatsFixture()

	result, err := svc.TeamPercentile(context.Background(), coachCaller, 1, 50)
	require.NoError(t, err)
	assert.Equal(t, "Lakers", result.Team)
	assert.Equal(t, 50, result.Percentile)
	assert.Equal(t, 20, result.PercentileScore)
	assert.ElementsMatch(t, []models.PercentilePlayer{
		{Name: "Kareem Abdul-Jabbar", AvgScore: 20},
		{Name: "James Worthy", AvgScore: 30},
	}, result.Players)
}

func TestTeamPercentileOutOfRange(t *testing.T) {
	svc, _ := newStatsFixture()
	ctx := context.Background()

	for _, percentile := range []int{-1, 101, 1000} {
		_, err := svc.TeamPercentile(ctx, adminCaller, 1, percentile)
		assert.ErrorIs(t, err, ErrPercentileOutOfRange, "percentile %d", percentile)
	}
}

// Raising the requested percentile never grows the qualifying set.
func TestTeamPercentileMonotonicity(t *testing.T) {
	svc, _ := newStatsFixture()
	ctx := context.Background()

	previous := -1
	for _, percentile := range []int{100, 75, 50, 25, 0} {
		result, err := svc.TeamPercentile(ctx, adminCaller, 1, percentile)
		require.NoError(t, err)
		if previous >= 0 {
			assert.LessOrEqual(t, previous, len(result.Players),
				"players at or above the bar must not shrink as the percentile drops")
		}
		previous = len(result.Players)
	}
}

func TestTeamPercentileNoQualifyingPlayers(t *testing.T) {
	svc, _ := newStatsFixture()
	svc.playerGameRepo.(*fakePlayerGameRepo).scores = map[int][]int{}

	_, err := svc.TeamPercentile(context.Background(), adminCaller, 1, 50)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestSystemUserStats(t *testing.T) {
	svc, userRepo := newStatsFixture()
	userRepo.users[1].IsLoggedIn = true
	userRepo.users[1].LoginCount = 3
	userRepo.users[1].TimeSpentOnline = 4200

	stats, err := svc.SystemUserStats(context.Background(), adminCaller)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, "Pat Riley", stats[1].Name)
	assert.Equal(t, "pat.riley", stats[1].Username)
	assert.True(t, stats[1].IsLoggedIn)
	assert.Equal(t, 3, stats[1].LoginCount)
	assert.Equal(t, 4200, stats[1].TimeSpentOnline)
}

func TestSystemUserStatsAdminOnly(t *testing.T) {
	svc, _ := newStatsFixture()
	ctx := context.Background()

	for _, unauthorized := range []models.Caller{coachCaller, playerCaller} {
		stats, err := svc.SystemUserStats(ctx, unauthorized)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.Nil(t, stats, "denied callers must not receive data")
	}
}
