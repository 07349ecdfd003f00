package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Dosada05/league-management/models"
)

var ErrCoachNotFound = errors.New("coach not found")

type CoachRepository interface {
	// GetByTeamID returns the active coach for a team. One coach per team is
	// an application-level expectation; if several rows exist the lowest id
	// wins.
	GetByTeamID(ctx context.Context, teamID int) (*models.Coach, error)
}

type postgresCoachRepository struct {
	db *sql.DB
}

func NewPostgresCoachRepository(db *sql.DB) CoachRepository {
	return &postgresCoachRepository{db: db}
}

func (r *postgresCoachRepository) GetByTeamID(ctx context.Context, teamID int) (*models.Coach, error) {
	query := `
		SELECT
			c.id, c.user_id, c.team_id,
			u.id, u.first_name, u.last_name, u.username, u.role
		FROM coaches c
		JOIN system_users u ON c.user_id = u.id
		WHERE c.team_id = $1
		ORDER BY c.id
		LIMIT 1`

	var coach models.Coach
	var user models.SystemUser
	err := r.db.QueryRowContext(ctx, query, teamID).Scan(
		&coach.ID,
		&coach.UserID,
		&coach.TeamID,
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCoachNotFound
		}
		return nil, fmt.Errorf("failed to get coach by team id: %w", err)
	}
	coach.User = &user
	return &coach, nil
}
