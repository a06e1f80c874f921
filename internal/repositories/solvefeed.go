package repositories

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// SolveFeedRepository publishes solve events to a Redis channel so external
// consumers (scoreboard tickers, bots) can react to first solves. The feed is
// best-effort: a nil client disables it and publish failures are logged, not
// surfaced.
type SolveFeedRepository struct {
	client  *redis.Client
	channel string
}

// NewSolveFeedRepository creates a repository publishing to the given channel.
func NewSolveFeedRepository(client *redis.Client, channel string) *SolveFeedRepository {
	return &SolveFeedRepository{
		client:  client,
		channel: channel,
	}
}

// Announce publishes a solve event. It is a no-op when Redis is not
// configured.
func (r *SolveFeedRepository) Announce(ctx context.Context, ev models.SolveEvent) error {
	if r.client == nil {
		logger.Log.Warnw("solve feed not configured, skipping announce",
			"user_id", ev.UserID, "challenge_id", ev.ChallengeID)
		return nil
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal solve event",
			"user_id", ev.UserID, "challenge_id", ev.ChallengeID, "error", err)
		return err
	}

	err = r.client.Publish(ctx, r.channel, data).Err()

	logger.Log.Infow("solve announced",
		"channel", r.channel,
		"user_id", ev.UserID,
		"challenge_id", ev.ChallengeID,
		"points", ev.Points,
		"error", err,
	)

	return err
}
