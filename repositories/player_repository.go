package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-management/models"
)

var ErrPlayerNotFound = errors.New("player not found")

type PlayerRepository interface {
	GetByID(ctx context.Context, id int) (*models.Player, error)
	ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error)
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

const playerSelect = `
	SELECT
		p.id, p.user_id, p.height, p.team_id,
		u.id, u.first_name, u.last_name, u.username, u.role
	FROM players p
	JOIN system_users u ON p.user_id = u.id`

func (r *postgresPlayerRepository) GetByID(ctx context.Context, id int) (*models.Player, error) {
	query := playerSelect + ` WHERE p.id = $1`

	var player models.Player
	var user models.SystemUser
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&player.ID,
		&player.UserID,
		&player.Height,
		&player.TeamID,
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}
	player.User = &user
	return &player, nil
}

func (r *postgresPlayerRepository) ListByTeamID(ctx context.Context, teamID int) ([]models.Player, error) {
	query := playerSelect + ` WHERE p.team_id = $1 ORDER BY p.id`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list players by team: %w", err)
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var player models.Player
		var user models.SystemUser
		err := rows.Scan(
			&player.ID,
			&player.UserID,
			&player.Height,
			&player.TeamID,
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Username,
			&user.Role,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan player row: %w", err)
		}
		player.User = &user
		players = append(players, player)
	}
	return players, rows.Err()
}
