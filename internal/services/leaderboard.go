package services

import (
	"context"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// DefaultStatsLimit is used when the caller supplies no usable limit.
const DefaultStatsLimit = 10

// LeaderboardService ranks users by score.
type LeaderboardService struct {
	users UserReader
}

// NewLeaderboardService creates a new LeaderboardService instance.
func NewLeaderboardService(users UserReader) *LeaderboardService {
	return &LeaderboardService{users: users}
}

// Stats returns up to limit users ordered by score descending, ties broken
// by ascending user id. Each entry carries the user's solve count; passwords
// never appear. A non-positive limit falls back to DefaultStatsLimit.
func (svc *LeaderboardService) Stats(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultStatsLimit
	}

	entries, err := svc.users.ListByScore(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to load leaderboard", "limit", limit, "err", err)
		return nil, err
	}

	return entries, nil
}
