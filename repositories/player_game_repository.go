package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-management/models"
	"github.com/lib/pq"
)

var (
	ErrPlayerGameConflict = errors.New("player already has a score recorded for this game")
	ErrPlayerGameInvalid  = errors.New("player game references a missing player or game")
)

type PlayerGameRepository interface {
	Create(ctx context.Context, playerGame *models.PlayerGame) error
	// ListScoresByPlayerID returns every recorded score for the player, one
	// per game.
	ListScoresByPlayerID(ctx context.Context, playerID int) ([]int, error)
}

type postgresPlayerGameRepository struct {
	db *sql.DB
}

func NewPostgresPlayerGameRepository(db *sql.DB) PlayerGameRepository {
	return &postgresPlayerGameRepository{db: db}
}

func (r *postgresPlayerGameRepository) Create(ctx context.Context, playerGame *models.PlayerGame) error {
	query := `
		INSERT INTO player_games (player_id, game_id, player_score)
		VALUES ($1, $2, $3)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		playerGame.PlayerID,
		playerGame.GameID,
		playerGame.PlayerScore,
	).Scan(&playerGame.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code {
			case "23505":
				return ErrPlayerGameConflict
			case "23503":
				return ErrPlayerGameInvalid
			}
		}
		return fmt.Errorf("failed to insert player game: %w", err)
	}
	return nil
}

func (r *postgresPlayerGameRepository) ListScoresByPlayerID(ctx context.Context, playerID int) ([]int, error) {
	query := `SELECT player_score FROM player_games WHERE player_id = $1 ORDER BY game_id`

	rows, err := r.db.QueryContext(ctx, query, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list player scores: %w", err)
	}
	defer rows.Close()

	var scores []int
	for rows.Next() {
		var score int
		if err := rows.Scan(&score); err != nil {
			return nil, fmt.Errorf("failed to scan player score: %w", err)
		}
		scores = append(scores, score)
	}
	return scores, rows.Err()
}
