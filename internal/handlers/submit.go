package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
	"github.com/ctfground/ctf-backend/internal/services"
)

// FlagSubmitter defines the interface that the scoring service must
// implement.
type FlagSubmitter interface {
	Submit(ctx context.Context, userID, challengeID, flagText string) (bool, *models.User, error)
}

// SubmitRequest represents the JSON body for a flag submission
// swagger:model SubmitRequest
type SubmitRequest struct {
	// User ID
	// required: true
	UserID string `json:"user_id"`

	// Challenge ID
	// required: true
	ChallengeID string `json:"challenge_id"`

	// Submitted flag text
	// required: true
	// default: CTF{hello_world}
	Flag string `json:"flag"`
}

// SubmitResponse represents the scoring result
// swagger:model SubmitResponse
type SubmitResponse struct {
	// Whether the flag matched
	Correct bool `json:"correct"`

	// User state after scoring
	User *models.User `json:"user"`
}

// NewSubmitHandler returns an HTTP handler for flag submissions.
// @Summary Submit a flag
// @Description Validates a flag, records the attempt, and awards points on the first correct submission per (user, challenge) pair.
// @Tags scoring
// @Accept json
// @Produce json
// @Param submitRequest body handlers.SubmitRequest true "Flag submission"
// @Success 200 {object} handlers.SubmitResponse
// @Failure 404 {object} handlers.ErrorResponse "User or Challenge not found"
// @Failure 500 {object} handlers.ErrorResponse "Database not configured / internal error"
// @Router /submit [post]
func NewSubmitHandler(svc FlagSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SubmitRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, ErrorResponse{
				Error: "invalid request body",
			})
			return
		}

		correct, user, err := svc.Submit(r.Context(), req.UserID, req.ChallengeID, req.Flag)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNotFound):
				writeJSON(w, http.StatusNotFound, ErrorResponse{
					Error: "User or Challenge not found",
				})
			case errors.Is(err, repositories.ErrNotConfigured):
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: "Database not configured",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				writeJSON(w, http.StatusInternalServerError, ErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		writeJSON(w, http.StatusOK, SubmitResponse{
			Correct: correct,
			User:    user,
		})
	}
}
