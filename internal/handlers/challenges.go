package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
	"github.com/ctfground/ctf-backend/internal/repositories"
	"github.com/ctfground/ctf-backend/internal/services"
)

// ChallengeProvider defines the interface that the catalog service must
// implement. Returned challenges never serialize their flag.
type ChallengeProvider interface {
	List(ctx context.Context) ([]models.Challenge, error)
	Get(ctx context.Context, challengeID string) (*models.Challenge, error)
}

// ChallengeListResponse wraps the challenge catalog
// swagger:model ChallengeListResponse
type ChallengeListResponse struct {
	Challenges []models.Challenge `json:"challenges"`
}

// ChallengeResponse wraps a single challenge
// swagger:model ChallengeResponse
type ChallengeResponse struct {
	Challenge *models.Challenge `json:"challenge"`
}

// NewListChallengesHandler returns an HTTP handler listing all challenges.
// @Summary List challenges
// @Description Returns all challenges with the flag omitted.
// @Tags challenges
// @Produce json
// @Success 200 {object} handlers.ChallengeListResponse
// @Failure 500 {object} handlers.ErrorResponse "Database not configured / internal error"
// @Router /challenges [get]
func NewListChallengesHandler(svc ChallengeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challenges, err := svc.List(r.Context())
		if err != nil {
			writeChallengeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ChallengeListResponse{Challenges: challenges})
	}
}

// NewGetChallengeHandler returns an HTTP handler for a single challenge.
// @Summary Get a challenge
// @Description Returns one challenge by id with the flag omitted.
// @Tags challenges
// @Produce json
// @Param challengeID path string true "Challenge ID"
// @Success 200 {object} handlers.ChallengeResponse
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Database not configured / internal error"
// @Router /challenges/{challengeID} [get]
func NewGetChallengeHandler(svc ChallengeProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		challengeID := chi.URLParam(r, "challengeID")

		challenge, err := svc.Get(r.Context(), challengeID)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				writeJSON(w, http.StatusNotFound, ErrorResponse{Error: "Not found"})
				return
			}
			writeChallengeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ChallengeResponse{Challenge: challenge})
	}
}

func writeChallengeError(w http.ResponseWriter, err error) {
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
}
