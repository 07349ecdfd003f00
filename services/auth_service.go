package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/repositories"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.SystemUser, error)
	Logout(ctx context.Context, userID int) error
}

type authService struct {
	userRepo repositories.UserRepository
	now      func() time.Time
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{
		userRepo: userRepo,
		now:      time.Now,
	}
}

// Login verifies the credentials and records session telemetry: the
// logged-in flag, the cumulative login counter and the login timestamp.
func (s *authService) Login(ctx context.Context, creds models.Credentials) (*models.SystemUser, error) {
	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrAuthInvalidCredentials
		}
		return nil, fmt.Errorf("failed to compare password hash: %w", err)
	}

	loginAt := s.now()
	if err := s.userRepo.MarkLoggedIn(ctx, user.ID, loginAt); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	user.IsLoggedIn = true
	user.LoginCount++
	user.LastLoginAt = &loginAt
	user.PasswordHash = ""

	return user, nil
}

// Logout clears the logged-in flag and accumulates the session length into
// time_spent_online. Tokens are stateless and expire on their own.
func (s *authService) Logout(ctx context.Context, userID int) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to find user: %w", err)
	}

	secondsOnline := 0
	if user.LastLoginAt != nil {
		secondsOnline = int(s.now().Sub(*user.LastLoginAt).Seconds())
		if secondsOnline < 0 {
			secondsOnline = 0
		}
	}

	if err := s.userRepo.MarkLoggedOut(ctx, userID, secondsOnline); err != nil {
		return fmt.Errorf("failed to record logout: %w", err)
	}
	return nil
}
