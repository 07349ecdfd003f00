package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/repositories"
	"github.com/Dosada05/league-management/storage"
)

type TeamService interface {
	GetTeamByID(ctx context.Context, teamID int) (*models.Team, error)
	CreateTeam(ctx context.Context, caller models.Caller, name string) (*models.Team, error)
	// UploadTeamLogo is allowed for the league admin and for the team's own
	// coach.
	UploadTeamLogo(ctx context.Context, caller models.Caller, teamID int, file io.Reader, contentType string) (*models.Team, error)
}

type teamService struct {
	teamRepo  repositories.TeamRepository
	coachRepo repositories.CoachRepository
	uploader  storage.FileUploader
}

func NewTeamService(
	teamRepo repositories.TeamRepository,
	coachRepo repositories.CoachRepository,
	uploader storage.FileUploader,
) TeamService {
	return &teamService{
		teamRepo:  teamRepo,
		coachRepo: coachRepo,
		uploader:  uploader,
	}
}

func (s *teamService) GetTeamByID(ctx context.Context, teamID int) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}
	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) CreateTeam(ctx context.Context, caller models.Caller, name string) (*models.Team, error) {
	if !LeagueAdminAuthorized(caller) {
		return nil, ErrUnauthorized
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("team name is required")
	}

	team := &models.Team{Name: name}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		if errors.Is(err, repositories.ErrTeamNameConflict) {
			return nil, ErrTeamNameConflict
		}
		return nil, fmt.Errorf("failed to create team: %w", err)
	}
	return team, nil
}

func (s *teamService) UploadTeamLogo(ctx context.Context, caller models.Caller, teamID int, file io.Reader, contentType string) (*models.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, repositories.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to load team: %w", err)
	}

	coach, err := s.coachRepo.GetByTeamID(ctx, teamID)
	if err != nil && !errors.Is(err, repositories.ErrCoachNotFound) {
		return nil, fmt.Errorf("failed to load team coach: %w", err)
	}
	if errors.Is(err, repositories.ErrCoachNotFound) {
		coach = nil
	}
	if !CoachAuthorized(caller, coach) {
		return nil, ErrUnauthorized
	}

	ext, ok := logoExtension(contentType)
	if !ok {
		return nil, ErrLogoContentType
	}

	oldKey := team.LogoKey
	key := fmt.Sprintf("teams/%d/logo_%d%s", teamID, time.Now().UnixNano(), ext)

	result, err := s.uploader.Upload(ctx, key, contentType, file)
	if err != nil {
		return nil, fmt.Errorf("failed to upload team logo: %w", err)
	}

	if err := s.teamRepo.UpdateLogoKey(ctx, teamID, &result.Key); err != nil {
		return nil, fmt.Errorf("failed to store team logo key: %w", err)
	}
	team.LogoKey = &result.Key

	if oldKey != nil && *oldKey != result.Key {
		// Осиротевший объект в бакете не мешает работе.
		_ = s.uploader.Delete(ctx, *oldKey)
	}

	s.populateLogoURL(team)
	return team, nil
}

func (s *teamService) populateLogoURL(team *models.Team) {
	if team.LogoKey != nil && *team.LogoKey != "" && s.uploader != nil {
		url := s.uploader.GetPublicURL(*team.LogoKey)
		if url != "" {
			team.LogoURL = &url
		}
	}
}

func logoExtension(contentType string) (string, bool) {
	switch contentType {
	case "image/png":
		return ".png", true
	case "image/jpeg", "image/jpg":
		return ".jpg", true
	}
	return "", false
}
