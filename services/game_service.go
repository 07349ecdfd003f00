package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Dosada05/league-management/live"
	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/repositories"
)

type RecordGameInput struct {
	Team1ID    int             `json:"team1_id"`
	Team1Score int             `json:"team1_score"`
	Team2ID    int             `json:"team2_id"`
	Team2Score int             `json:"team2_score"`
	WinnerID   int             `json:"winner_id"`
	Type       models.GameType `json:"type"`
}

type RecordPlayerScoreInput struct {
	PlayerID    int `json:"player_id"`
	PlayerScore int `json:"player_score"`
}

type GameService interface {
	Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error)
	RecordGame(ctx context.Context, caller models.Caller, input RecordGameInput) (*models.Game, error)
	RecordPlayerScore(ctx context.Context, caller models.Caller, gameID int, input RecordPlayerScoreInput) (*models.PlayerGame, error)
}

type gameService struct {
	gameRepo       repositories.GameRepository
	playerRepo     repositories.PlayerRepository
	playerGameRepo repositories.PlayerGameRepository
	teamRepo       repositories.TeamRepository
	hub            *live.Hub
}

func NewGameService(
	gameRepo repositories.GameRepository,
	playerRepo repositories.PlayerRepository,
	playerGameRepo repositories.PlayerGameRepository,
	teamRepo repositories.TeamRepository,
	hub *live.Hub,
) GameService {
	return &gameService{
		gameRepo:       gameRepo,
		playerRepo:     playerRepo,
		playerGameRepo: playerGameRepo,
		teamRepo:       teamRepo,
		hub:            hub,
	}
}

func (s *gameService) Scoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	entries, err := s.gameRepo.ListScoreboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load scoreboard: %w", err)
	}
	return entries, nil
}

// RecordGame persists a finished game. Scores and winner are fixed at
// creation; the winner must be one of the two sides.
func (s *gameService) RecordGame(ctx context.Context, caller models.Caller, input RecordGameInput) (*models.Game, error) {
	if !LeagueAdminAuthorized(caller) {
		return nil, ErrUnauthorized
	}
	if input.WinnerID != input.Team1ID && input.WinnerID != input.Team2ID {
		return nil, ErrGameWinnerInvalid
	}
	if input.Type != models.GameTypeRegular && input.Type != models.GameTypePlayoff {
		return nil, ErrGameTypeInvalid
	}

	game := &models.Game{
		Team1ID:    input.Team1ID,
		Team1Score: input.Team1Score,
		Team2ID:    input.Team2ID,
		Team2Score: input.Team2Score,
		WinnerID:   input.WinnerID,
		Type:       input.Type,
	}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		if errors.Is(err, repositories.ErrGameTeamInvalid) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to record game: %w", err)
	}

	s.broadcastGame(ctx, game)

	return game, nil
}

// RecordPlayerScore attaches one player's score to an existing game. At
// most one row per (player, game).
func (s *gameService) RecordPlayerScore(ctx context.Context, caller models.Caller, gameID int, input RecordPlayerScoreInput) (*models.PlayerGame, error) {
	if !LeagueAdminAuthorized(caller) {
		return nil, ErrUnauthorized
	}

	if _, err := s.gameRepo.GetByID(ctx, gameID); err != nil {
		if errors.Is(err, repositories.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to load game: %w", err)
	}
	if _, err := s.playerRepo.GetByID(ctx, input.PlayerID); err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to load player: %w", err)
	}

	playerGame := &models.PlayerGame{
		PlayerID:    input.PlayerID,
		GameID:      gameID,
		PlayerScore: input.PlayerScore,
	}
	if err := s.playerGameRepo.Create(ctx, playerGame); err != nil {
		switch {
		case errors.Is(err, repositories.ErrPlayerGameConflict):
			return nil, ErrPlayerGameConflict
		case errors.Is(err, repositories.ErrPlayerGameInvalid):
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to record player score: %w", err)
	}
	return playerGame, nil
}

// broadcastGame pushes the freshly recorded game to scoreboard watchers.
// Resolution failures only cost the live update, never the write.
func (s *gameService) broadcastGame(ctx context.Context, game *models.Game) {
	if s.hub == nil {
		return
	}

	entry := models.ScoreboardEntry{
		Team1Score: game.Team1Score,
		Team2Score: game.Team2Score,
		Type:       game.Type,
	}
	if team1, err := s.teamRepo.GetByID(ctx, game.Team1ID); err == nil {
		entry.Team1 = team1.Name
		if game.WinnerID == game.Team1ID {
			entry.Winner = team1.Name
		}
	}
	if team2, err := s.teamRepo.GetByID(ctx, game.Team2ID); err == nil {
		entry.Team2 = team2.Name
		if game.WinnerID == game.Team2ID {
			entry.Winner = team2.Name
		}
	}

	s.hub.BroadcastToRoom(live.ScoreboardRoom, live.Message{
		Type:    "GAME_RECORDED",
		Payload: entry,
	})
}
