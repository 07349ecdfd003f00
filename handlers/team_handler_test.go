package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Dosada05/league-management/middleware"
	"github.com/Dosada05/league-management/models"
	"github.com/Dosada05/league-management/services"
	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStatsService routes every call through canned per-team results so the
// handler's wiring and error mapping can be exercised without a database.
type stubStatsService struct {
	summaries   map[int]*models.TeamSummary
	percentiles map[int]*models.TeamPercentile
	err         error
}

func (s *stubStatsService) PlayerSummary(ctx context.Context, caller models.Caller, playerID int) (*models.PlayerSummary, error) {
	return nil, services.ErrPlayerNotFound
}

func (s *stubStatsService) TeamSummary(ctx context.Context, caller models.Caller, teamID int) (*models.TeamSummary, error) {
	if s.err != nil {
		return nil, s.err
	}
	summary, ok := s.summaries[teamID]
	if !ok {
		return nil, services.ErrTeamNotFound
	}
	return summary, nil
}

func (s *stubStatsService) TeamPercentile(ctx context.Context, caller models.Caller, teamID, percentile int) (*models.TeamPercentile, error) {
	if s.err != nil {
		return nil, s.err
	}
	if percentile < 0 || percentile > 100 {
		return nil, services.ErrPercentileOutOfRange
	}
	result, ok := s.percentiles[teamID]
	if !ok {
		return nil, services.ErrTeamNotFound
	}
	return result, nil
}

func (s *stubStatsService) SystemUserStats(ctx context.Context, caller models.Caller) ([]models.SystemUserStats, error) {
	return nil, services.ErrUnauthorized
}

const testJWTSecret = "test-secret"

func bearerToken(t *testing.T, caller models.Caller) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  caller.UserID,
		"username": caller.Username,
		"role":     string(caller.Role),
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return "Bearer " + signed
}

func newTeamRouter(stats *stubStatsService) *chi.Mux {
	handler := NewTeamHandler(nil, stats)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate([]byte(testJWTSecret)))
		r.Get("/teams/{teamID}", handler.GetTeamDetails)
	})
	return router
}

func doRequest(t *testing.T, router http.Handler, target string, caller *models.Caller) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if caller != nil {
		req.Header.Set("Authorization", bearerToken(t, *caller))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetTeamDetails(t *testing.T) {
	stats := &stubStatsService{summaries: map[int]*models.TeamSummary{
		1: {Team: "Lakers", AvgScore: 100, Players: []string{"Magic Johnson"}},
	}}
	router := newTeamRouter(stats)
	coach := models.Caller{UserID: 2, Username: "pat.riley", Role: models.RoleCoach}

	rec := doRequest(t, router, "/teams/1", &coach)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.TeamSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, "Lakers", summary.Team)
	assert.Equal(t, 100, summary.AvgScore)
}

func TestGetTeamDetailsPercentile(t *testing.T) {
	stats := &stubStatsService{percentiles: map[int]*models.TeamPercentile{
		1: {
			Team:            "Lakers",
			Percentile:      50,
			PercentileScore: 20,
			Players:         []models.PercentilePlayer{{Name: "Kareem Abdul-Jabbar", AvgScore: 20}},
		},
	}}
	router := newTeamRouter(stats)
	coach := models.Caller{UserID: 2, Username: "pat.riley", Role: models.RoleCoach}

	rec := doRequest(t, router, "/teams/1?percentile=50", &coach)
	require.Equal(t, http.StatusOK, rec.Code)

	var result models.TeamPercentile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 20, result.PercentileScore)
	assert.Len(t, result.Players, 1)
}

func TestGetTeamDetailsErrorMapping(t *testing.T) {
	coach := models.Caller{UserID: 2, Username: "pat.riley", Role: models.RoleCoach}

	tests := []struct {
		name     string
		stats    *stubStatsService
		target   string
		caller   *models.Caller
		wantCode int
	}{
		{"no token", &stubStatsService{}, "/teams/1", nil, http.StatusUnauthorized},
		{"unknown team", &stubStatsService{}, "/teams/99", &coach, http.StatusNotFound},
		{"non-numeric team id", &stubStatsService{}, "/teams/abc", &coach, http.StatusBadRequest},
		{"non-numeric percentile", &stubStatsService{}, "/teams/1?percentile=abc", &coach, http.StatusBadRequest},
		{"percentile out of range", &stubStatsService{percentiles: map[int]*models.TeamPercentile{1: {}}}, "/teams/1?percentile=101", &coach, http.StatusBadRequest},
		{"denied caller", &stubStatsService{err: services.ErrUnauthorized}, "/teams/1", &coach, http.StatusUnauthorized},
		{"team without games", &stubStatsService{err: services.ErrInsufficientData}, "/teams/1", &coach, http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, newTeamRouter(tt.stats), tt.target, tt.caller)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
