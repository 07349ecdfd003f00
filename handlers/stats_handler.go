package handlers

import (
	"net/http"

	"github.com/Dosada05/league-management/middleware"
	"github.com/Dosada05/league-management/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetSystemUserStats returns login/usage telemetry for every account.
// League admin only; time spent online is in seconds.
func (h *StatsHandler) GetSystemUserStats(w http.ResponseWriter, r *http.Request) {
	caller, err := middleware.CallerFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	stats, err := h.statsService.SystemUserStats(r.Context(), caller)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, stats, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
