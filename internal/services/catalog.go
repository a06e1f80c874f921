package services

import (
	"context"
	"errors"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// ErrNotFound is returned when an id does not resolve to an existing record.
var ErrNotFound = errors.New("not found")

// ChallengeReader defines read-only operations for the challenge catalog.
type ChallengeReader interface {
	List(ctx context.Context) ([]models.Challenge, error)
	GetByID(ctx context.Context, challengeID string) (*models.Challenge, error)
	Count(ctx context.Context) (int, error)
}

// CatalogService exposes the read-only challenge catalog. Flags never leave
// this layer in serialized form: models.Challenge excludes the flag from JSON.
type CatalogService struct {
	challenges ChallengeReader
}

// NewCatalogService creates a new CatalogService instance.
func NewCatalogService(challenges ChallengeReader) *CatalogService {
	return &CatalogService{challenges: challenges}
}

// List returns all challenges in store order.
func (svc *CatalogService) List(ctx context.Context) ([]models.Challenge, error) {
	challenges, err := svc.challenges.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list challenges", "err", err)
		return nil, err
	}
	return challenges, nil
}

// Get returns a single challenge by id.
func (svc *CatalogService) Get(ctx context.Context, challengeID string) (*models.Challenge, error) {
	challenge, err := svc.challenges.GetByID(ctx, challengeID)
	if err != nil {
		logger.Log.Errorw("failed to get challenge", "challenge_id", challengeID, "err", err)
		return nil, err
	}
	if challenge == nil {
		return nil, ErrNotFound
	}
	return challenge, nil
}
