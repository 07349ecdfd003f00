package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-management/models"
	"github.com/lib/pq"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserUsernameConflict = errors.New("username is already in use")
)

type UserRepository interface {
	Create(ctx context.Context, user *models.SystemUser) error
	GetByID(ctx context.Context, id int) (*models.SystemUser, error)
	GetByUsername(ctx context.Context, username string) (*models.SystemUser, error)
	List(ctx context.Context) ([]models.SystemUser, error)
	MarkLoggedIn(ctx context.Context, id int, at time.Time) error
	MarkLoggedOut(ctx context.Context, id int, secondsOnline int) error
}

type postgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) UserRepository {
	return &postgresUserRepository{db: db}
}

const systemUserColumns = `id, first_name, last_name, username, password_hash, role,
	is_logged_in, login_count, time_spent_online, last_login_at, created_at`

func (r *postgresUserRepository) Create(ctx context.Context, user *models.SystemUser) error {
	query := `
		INSERT INTO system_users (first_name, last_name, username, password_hash, role)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := r.db.QueryRowContext(ctx, query,
		user.FirstName,
		user.LastName,
		user.Username,
		user.PasswordHash,
		user.Role,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			if pqErr.Constraint == "system_users_username_key" {
				return ErrUserUsernameConflict
			}
		}
		return fmt.Errorf("failed to insert system user: %w", err)
	}
	return nil
}

func (r *postgresUserRepository) GetByID(ctx context.Context, id int) (*models.SystemUser, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users WHERE id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *postgresUserRepository) GetByUsername(ctx context.Context, username string) (*models.SystemUser, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users WHERE username = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, username))
}

func (r *postgresUserRepository) scanOne(row *sql.Row) (*models.SystemUser, error) {
	var user models.SystemUser
	var lastLogin sql.NullTime

	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Username,
		&user.PasswordHash,
		&user.Role,
		&user.IsLoggedIn,
		&user.LoginCount,
		&user.TimeSpentOnline,
		&lastLogin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan system user: %w", err)
	}
	if lastLogin.Valid {
		user.LastLoginAt = &lastLogin.Time
	}
	return &user, nil
}

func (r *postgresUserRepository) List(ctx context.Context) ([]models.SystemUser, error) {
	query := `SELECT ` + systemUserColumns + ` FROM system_users ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list system users: %w", err)
	}
	defer rows.Close()

	var users []models.SystemUser
	for rows.Next() {
		var user models.SystemUser
		var lastLogin sql.NullTime
		err := rows.Scan(
			&user.ID,
			&user.FirstName,
			&user.LastName,
			&user.Username,
			&user.PasswordHash,
			&user.Role,
			&user.IsLoggedIn,
			&user.LoginCount,
			&user.TimeSpentOnline,
			&lastLogin,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan system user row: %w", err)
		}
		if lastLogin.Valid {
			user.LastLoginAt = &lastLogin.Time
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *postgresUserRepository) MarkLoggedIn(ctx context.Context, id int, at time.Time) error {
	query := `
		UPDATE system_users
		SET is_logged_in = TRUE, login_count = login_count + 1, last_login_at = $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, at)
	if err != nil {
		return fmt.Errorf("failed to mark user logged in: %w", err)
	}
	return checkAffectedRows(result, ErrUserNotFound)
}

// MarkLoggedOut accumulates the finished session's length into
// time_spent_online.
func (r *postgresUserRepository) MarkLoggedOut(ctx context.Context, id int, secondsOnline int) error {
	query := `
		UPDATE system_users
		SET is_logged_in = FALSE, time_spent_online = time_spent_online + $2
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, id, secondsOnline)
	if err != nil {
		return fmt.Errorf("failed to mark user logged out: %w", err)
	}
	return checkAffectedRows(result, ErrUserNotFound)
}
