package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
)

// StatsProvider defines the interface that the leaderboard service must
// implement.
type StatsProvider interface {
	Stats(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// LeaderboardResponse wraps the ranked user list
// swagger:model LeaderboardResponse
type LeaderboardResponse struct {
	Leaderboard []models.LeaderboardEntry `json:"leaderboard"`
}

// NewStatsHandler returns an HTTP handler for the leaderboard.
// @Summary Leaderboard
// @Description Returns up to limit users ordered by score descending, each with a solve count. Passwords are excluded.
// @Tags stats
// @Produce json
// @Param limit query int false "Maximum entries (default 10)"
// @Success 200 {object} handlers.LeaderboardResponse
// @Failure 500 {object} handlers.ErrorResponse "Database not configured / internal error"
// @Router /stats [get]
func NewStatsHandler(svc StatsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Unusable limit values fall back to the service default.
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil {
			limit = 0
		}

		entries, err := svc.Stats(r.Context(), limit)
		if err != nil {
			if errors.Is(err, repositories.ErrNotConfigured) {
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: "Database not configured",
				})
				return
			}
			logger.Log.Errorw("internal server error", "err", err)
			writeJSON(w, http.StatusInternalServerError, ErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		writeJSON(w, http.StatusOK, LeaderboardResponse{Leaderboard: entries})
	}
}
