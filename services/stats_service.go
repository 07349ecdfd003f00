package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-management/aggregate"
	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/repositories"
	"golang.org/x/sync/errgroup"
)

// StatsService computes the read-only aggregates. Every operation first
// runs the authorization predicates for the caller, then derives its
// numbers from committed game data.
type StatsService interface {
	PlayerSummary(ctx context.Context, caller models.Caller, playerID int) (*models.PlayerSummary, error)
	TeamSummary(ctx context.Context, caller models.Caller, teamID int) (*models.TeamSummary, error)
	TeamPercentile(ctx context.Context, caller models.Caller, teamID, percentile int) (*models.TeamPercentile, error)
	SystemUserStats(ctx context.Context, caller models.Caller) ([]models.SystemUserStats, error)
}

type statsService struct {
	userRepo       repositories.UserRepository
	teamRepo       repositories.TeamRepository
	playerRepo     repositories.PlayerRepository
	coachRepo      repositories.CoachRepository
	gameRepo       repositories.GameRepository
	playerGameRepo repositories.PlayerGameRepository
}

func NewStatsService(
	userRepo repositories.UserRepository,
	teamRepo repositories.TeamRepository,
	playerRepo repositories.PlayerRepository,
	coachRepo repositories.CoachRepository,
	gameRepo repositories.GameRepository,
	playerGameRepo repositories.PlayerGameRepository,
) StatsService {
	return &statsService{
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		playerRepo:     playerRepo,
		coachRepo:      coachRepo,
		gameRepo:       gameRepo,
		playerGameRepo: playerGameRepo,
	}
}

// PlayerSummary returns games played and the rounded average score for one
// player. A player with no recorded games averages 0 by policy.
func (s *statsService) PlayerSummary(ctx context.Context, caller models.Caller, playerID int) (*models.PlayerSummary, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	coach, err := s.coachForTeam(ctx, player.TeamID)
	if err != nil {
		return nil, err
	}
	if !PlayerAuthorized(caller, coach, player) {
		return nil, ErrUnauthorized
	}

	gamesPlayed, avgScore, err := s.playerAverage(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	return &models.PlayerSummary{
		Name:        player.User.FullName(),
		Height:      player.Height,
		GamesPlayed: gamesPlayed,
		AvgScore:    avgScore,
	}, nil
}

// TeamSummary combines two independent side means: the team's average score
// over games played as team1, and over games played as team2. A side with
// no games is excluded rather than counted as zero, so the result is never
// weighted by game count, only by side.
func (s *statsService) TeamSummary(ctx context.Context, caller models.Caller, teamID int) (*models.TeamSummary, error) {
	team, players, err := s.loadTeamForCaller(ctx, caller, teamID)
	if err != nil {
		return nil, err
	}

	averages, err := s.gameRepo.SideAveragesByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to load side averages: %w", err)
	}

	var avgScore int
	switch {
	case averages.AsTeam1.Valid && averages.AsTeam2.Valid:
		avgScore = aggregate.Round((averages.AsTeam1.Float64 + averages.AsTeam2.Float64) / 2)
	case averages.AsTeam1.Valid:
		avgScore = aggregate.Round(averages.AsTeam1.Float64)
	case averages.AsTeam2.Valid:
		avgScore = aggregate.Round(averages.AsTeam2.Float64)
	default:
		return nil, ErrInsufficientData
	}

	names := make([]string, 0, len(players))
	for i := range players {
		names = append(names, players[i].User.FullName())
	}

	return &models.TeamSummary{
		Team:     team.Name,
		AvgScore: avgScore,
		Players:  names,
	}, nil
}

// TeamPercentile ranks the team's players against the requested percentile
// of their average scores. Players with no games are excluded from the
// threshold computation and never appear in the result.
func (s *statsService) TeamPercentile(ctx context.Context, caller models.Caller, teamID, percentile int) (*models.TeamPercentile, error) {
	if percentile < 0 || percentile > 100 {
		return nil, ErrPercentileOutOfRange
	}

	team, players, err := s.loadTeamForCaller(ctx, caller, teamID)
	if err != nil {
		return nil, err
	}

	type playerAvg struct {
		name        string
		gamesPlayed int
		avgScore    int
	}

	summaries := make([]playerAvg, len(players))
	group, groupCtx := errgroup.WithContext(ctx)
	for i := range players {
		i := i
		group.Go(func() error {
			gamesPlayed, avgScore, err := s.playerAverage(groupCtx, players[i].ID)
			if err != nil {
				return err
			}
			summaries[i] = playerAvg{
				name:        players[i].User.FullName(),
				gamesPlayed: gamesPlayed,
				avgScore:    avgScore,
			}
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var qualifying []float64
	for _, summary := range summaries {
		if summary.gamesPlayed > 0 {
			qualifying = append(qualifying, float64(summary.avgScore))
		}
	}

	threshold, err := aggregate.Percentile(qualifying, float64(percentile))
	if err != nil {
		if errors.Is(err, aggregate.ErrNoData) {
			return nil, ErrInsufficientData
		}
		return nil, fmt.Errorf("failed to compute percentile: %w", err)
	}
	percentileScore := aggregate.Round(threshold)

	inPercentile := make([]models.PercentilePlayer, 0)
	for _, summary := range summaries {
		if summary.gamesPlayed > 0 && summary.avgScore >= percentileScore {
			inPercentile = append(inPercentile, models.PercentilePlayer{
				Name:     summary.name,
				AvgScore: summary.avgScore,
			})
		}
	}

	return &models.TeamPercentile{
		Team:            team.Name,
		Percentile:      percentile,
		PercentileScore: percentileScore,
		Players:         inPercentile,
	}, nil
}

// SystemUserStats is the admin-only projection of session telemetry across
// all accounts.
func (s *statsService) SystemUserStats(ctx context.Context, caller models.Caller) ([]models.SystemUserStats, error) {
	if !LeagueAdminAuthorized(caller) {
		return nil, ErrUnauthorized
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list system users: %w", err)
	}

	result := make([]models.SystemUserStats, 0, len(users))
	for i := range users {
		result = append(result, models.SystemUserStats{
			Name:            users[i].FullName(),
			Username:        users[i].Username,
			IsLoggedIn:      users[i].IsLoggedIn,
			LoginCount:      users[i].LoginCount,
			TimeSpentOnline: users[i].TimeSpentOnline,
		})
	}
	return result, nil
}

// loadTeamForCaller fetches the team, its roster and coach, and enforces
// the coach-level gate.
func (s *statsService) loadTeamForCaller(ctx context.Context, caller models.Caller, teamID int) (*models.Team, []models.Player, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, nil, ErrTeamNotFound
		}
		return nil, nil, fmt.Errorf("failed to load team: %w", err)
	}

	coach, err := s.coachForTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	if !CoachAuthorized(caller, coach) {
		return nil, nil, ErrUnauthorized
	}

	players, err := s.playerRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load team players: %w", err)
	}
	return team, players, nil
}

// coachForTeam treats a missing coach record as "no coach" so the
// authorization predicates can fail closed instead of erroring.
func (s *statsService) coachForTeam(ctx context.Context, teamID int) (*models.Coach, error) {
	coach, err := s.coachRepo.GetByTeamID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrCoachNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load team coach: %w", err)
	}
	return coach, nil
}

func (s *statsService) playerAverage(ctx context.Context, playerID int) (gamesPlayed, avgScore int, err error) {
	scores, err := s.playerGameRepo.ListScoresByPlayerID(ctx, playerID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to load player scores: %w", err)
	}
	if len(scores) == 0 {
		return 0, 0, nil
	}

	mean, err := aggregate.MeanInt(scores)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to average player scores: %w", err)
	}
	return len(scores), aggregate.Round(mean), nil
}
