package handlers

import (
	"net/http"

	"github.com/Dosada05/league-management/middleware"
	"github.com/Dosada05/league-management/services"
)

type PlayerHandler struct {
	statsService services.StatsService
}

func NewPlayerHandler(statsService services.StatsService) *PlayerHandler {
	return &PlayerHandler{statsService: statsService}
}

// GetPlayerDetails returns one player's summary. Players only reach their
// own record; their coach and the league admin reach the whole team.
func (h *PlayerHandler) GetPlayerDetails(w http.ResponseWriter, r *http.Request) {
	playerID, err := getIDFromURL(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	caller, err := middleware.CallerFromContext(r.Context())
	if err != nil {
		unauthorizedResponse(w, r, "failed to identify current user")
		return
	}

	summary, err := h.statsService.PlayerSummary(r.Context(), caller, playerID)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, summary, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
