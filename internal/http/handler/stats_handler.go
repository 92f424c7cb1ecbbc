package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/service"
)

type StatsHandler struct {
	statsService *service.StatsService
	logger       *zap.Logger
}

func NewStatsHandler(statsService *service.StatsService, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// Get returns the dashboard snapshot for the authenticated user
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Get(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("failed to get stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}

// Refresh forces an immediate recompute of the user's snapshot
func (h *StatsHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.Refresh(r.Context(), userID(r))
	if err != nil {
		h.logger.Error("failed to refresh stats", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to refresh stats")
		return
	}

	respondJSON(w, http.StatusOK, stats)
}
