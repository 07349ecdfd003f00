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
	ErrGameNotFound    = errors.New("game not found")
	ErrGameTeamInvalid = errors.New("game references a team that does not exist")
)

// SideAverages carries the two independent per-side means for one team.
// A side the team never played on stays invalid instead of defaulting to
// zero.
type SideAverages struct {
	AsTeam1 sql.NullFloat64
	AsTeam2 sql.NullFloat64
}

type GameRepository interface {
	Create(ctx context.Context, game *models.Game) error
	GetByID(ctx context.Context, id int) (*models.Game, error)
	ListScoreboard(ctx context.Context) ([]models.ScoreboardEntry, error)
	SideAveragesByTeamID(ctx context.Context, teamID int) (SideAverages, error)
}

type postgresGameRepository struct {
	db *sql.DB
}

func NewPostgresGameRepository(db *sql.DB) GameRepository {
	return &postgresGameRepository{db: db}
}

func (r *postgresGameRepository) Create(ctx context.Context, game *models.Game) error {
	query := `
		INSERT INTO games (team1_id, team1_score, team2_id, team2_score, winner_id, type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		game.Team1ID,
		game.Team1Score,
		game.Team2ID,
		game.Team2Score,
		game.WinnerID,
		game.Type,
	).Scan(&game.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return ErrGameTeamInvalid
		}
		return fmt.Errorf("failed to insert game: %w", err)
	}
	return nil
}

func (r *postgresGameRepository) GetByID(ctx context.Context, id int) (*models.Game, error) {
	query := `
		SELECT id, team1_id, team1_score, team2_id, team2_score, winner_id, type
		FROM games
		WHERE id = $1`

	var game models.Game
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID,
		&game.Team1ID,
		&game.Team1Score,
		&game.Team2ID,
		&game.Team2Score,
		&game.WinnerID,
		&game.Type,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}
	return &game, nil
}

func (r *postgresGameRepository) ListScoreboard(ctx context.Context) ([]models.ScoreboardEntry, error) {
	query := `
		SELECT t1.name, g.team1_score, t2.name, g.team2_score, w.name, g.type
		FROM games g
		JOIN teams t1 ON g.team1_id = t1.id
		JOIN teams t2 ON g.team2_id = t2.id
		JOIN teams w ON g.winner_id = w.id
		ORDER BY g.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list scoreboard: %w", err)
	}
	defer rows.Close()

	var entries []models.ScoreboardEntry
	for rows.Next() {
		var entry models.ScoreboardEntry
		err := rows.Scan(
			&entry.Team1,
			&entry.Team1Score,
			&entry.Team2,
			&entry.Team2Score,
			&entry.Winner,
			&entry.Type,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scoreboard row: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *postgresGameRepository) SideAveragesByTeamID(ctx context.Context, teamID int) (SideAverages, error) {
	query := `
		SELECT
			(SELECT AVG(team1_score) FROM games WHERE team1_id = $1),
			(SELECT AVG(team2_score) FROM games WHERE team2_id = $1)`

	var averages SideAverages
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(&averages.AsTeam1, &averages.AsTeam2)
	if err != nil {
		return SideAverages{}, fmt.Errorf("failed to compute side averages: %w", err)
	}
	return averages, nil
}
