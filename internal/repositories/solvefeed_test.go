package repositories

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/ctfground/ctf-backend/internal/models"
)

func TestSolveFeedRepository_Announce(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	ctx := context.Background()

	sub := client.Subscribe(ctx, "ctf.solves")
	defer sub.Close()

	// Wait for the subscription before publishing.
	_, err := sub.Receive(ctx)
	assert.NoError(t, err)

	feed := NewSolveFeedRepository(client, "ctf.solves")

	ev := models.SolveEvent{
		UserID:      "u1",
		Username:    "alice",
		ChallengeID: "c1",
		Challenge:   "Crypto: Caesar Shift",
		Points:      100,
		Timestamp:   1756339200,
	}

	err = feed.Announce(ctx, ev)
	assert.NoError(t, err)

	select {
	case msg := <-sub.Channel():
		var got models.SolveEvent
		assert.NoError(t, json.Unmarshal([]byte(msg.Payload), &got))
		assert.Equal(t, ev, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no solve event received")
	}
}

func TestSolveFeedRepository_NilClientIsNoop(t *testing.T) {
	feed := NewSolveFeedRepository(nil, "ctf.solves")

	err := feed.Announce(context.Background(), models.SolveEvent{UserID: "u1", ChallengeID: "c1"})
	assert.NoError(t, err)
}

func TestSolveFeedRepository_PublishError(t *testing.T) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	mr.Close()

	feed := NewSolveFeedRepository(client, "ctf.solves")

	err := feed.Announce(context.Background(), models.SolveEvent{UserID: "u1", ChallengeID: "c1"})
	assert.Error(t, err)
}
