package services

import (
	"context"
	"sort"
	"time"

	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/repositories"
)

// In-memory fakes over the repository interfaces.

type fakeUserRepo struct {
	users []models.SystemUser

	loggedIn      []int
	loggedOut     []int
	secondsOnline map[int]int
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.SystemUser) error {
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id int) (*models.SystemUser, error) {
	for i := range f.users {
		if f.users[i].ID == id {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*models.SystemUser, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]models.SystemUser, error) {
	return f.users, nil
}

func (f *fakeUserRepo) MarkLoggedIn(ctx context.Context, id int, at time.Time) error {
	f.loggedIn = append(f.loggedIn, id)
	return nil
}

func (f *fakeUserRepo) MarkLoggedOut(ctx context.Context, id int, secondsOnline int) error {
	if f.secondsOnline == nil {
		f.secondsOnline = make(map[int]int)
	}
	f.loggedOut = append(f.loggedOut, id)
	f.secondsOnline[id] = secondsOnline
	return nil
}

type fakeTeamRepo struct {
	teams map[int]*models.Team
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error {
	team.ID = len(f.teams) + 1
	if f.teams == nil {
		f.teams = make(map[int]*models.Team)
	}
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) GetByID(ctx context.Context, id int) (*models.Team, error) {
	team, ok := f.teams[id]
	if !ok {
		return nil, repositories.ErrTeamNotFound
	}
	return team, nil
}

func (f *fakeTeamRepo) UpdateLogoKey(ctx context.Context, id int, logoKey *string) error {
	team, ok := f.teams[id]
	if !ok {
		return repositories.ErrTeamNotFound
	}
	team.LogoKey = logoKey
	return nil
}

type fakePlayerRepo struct {
	players map[int]*models.Player
}

func (f *fakePlayerRepo) GetByID(ctx context.Context, id int) (*models.Player, error) {
	player, ok := f.players[id]
	if !ok {
		return nil, repositories.ErrPlayerNotFound
	}
	return player, nil
}

func (f *fakePlayerRepo) ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error) {
	var result []models.Player
	for _, player := range f.players {
		if player.TeamID == teamID {
			result = append(result, *player)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

type fakeCoachRepo struct {
	coaches map[int]*models.Coach // keyed by team id
}

func (f *fakeCoachRepo) GetByTeamID(ctx context.Context, teamID int) (*models.Coach, error) {
	coach, ok := f.coaches[teamID]
	if !ok {
		return nil, repositories.ErrCoachNotFound
	}
	return coach, nil
}

type fakeGameRepo struct {
	games      map[int]*models.Game
	sides      map[int]repositories.SideAverages
	scoreboard []models.ScoreboardEntry
	createErr  error
	created    []*models.Game
}

func (f *fakeGameRepo) Create(ctx context.Context, game *models.Game) error {
	if f.createErr != nil {
		return f.createErr
	}
	game.ID = len(f.created) + 1
	f.created = append(f.created, game)
	return nil
}

func (f *fakeGameRepo) GetByID(ctx context.Context, id int) (*models.Game, error) {
	game, ok := f.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	return game, nil
}

func (f *fakeGameRepo) ListScoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	return f.scoreboard, nil
}

func (f *fakeGameRepo) SideAveragesByTeamID(ctx context.Context, teamID int) (repositories.SideAverages, error) {
	return f.sides[teamID], nil
}

type fakePlayerGameRepo struct {
	scores    map[int][]int // keyed by player id
	createErr error
	created   []*models.PlayerGame
}

func (f *fakePlayerGameRepo) Create(ctx context.Context, playerGame *models.PlayerGame) error {
	if f.createErr != nil {
		return f.createErr
	}
	playerGame.ID = len(f.created) + 1
	f.created = append(f.created, playerGame)
	return nil
}

func (f *fakePlayerGameRepo) ListScoresByPlayerID(ctx context.Context, playerID int) ([]int, error) {
	return f.scores[playerID], nil
}
