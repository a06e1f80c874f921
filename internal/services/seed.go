package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// ChallengeWriter defines write operations for the challenge catalog.
type ChallengeWriter interface {
	Create(ctx context.Context, ch models.Challenge) error
}

// demoChallenges is the fixed seed set inserted on first run.
var demoChallenges = []models.Challenge{
	{
		Title:       "Warmup: Hello Flag",
		Category:    "Misc",
		Difficulty:  models.DifficultyEasy,
		Points:      50,
		Description: "Temukan flag tersembunyi di deskripsi ini. Format: CTF{hello_world}",
		Flag:        "CTF{hello_world}",
	},
	{
		Title:       "Crypto: Caesar Shift",
		Category:    "Crypto",
		Difficulty:  models.DifficultyEasy,
		Points:      100,
		Description: "Pesan dienkripsi dengan pergeseran 3. Pecahkan untuk menemukan flag: CTF{...}",
		Flag:        "CTF{caesar_3_shift}",
	},
	{
		Title:       "Web: Cookie Monster",
		Category:    "Web",
		Difficulty:  models.DifficultyMedium,
		Points:      200,
		Description: "Baca cookie dengan benar untuk mendapatkan flag.",
		Flag:        "CTF{cookie_finder}",
	},
}

// SeedService inserts the demo challenges on first run.
type SeedService struct {
	reader ChallengeReader
	writer ChallengeWriter
}

// NewSeedService creates a new SeedService instance.
func NewSeedService(reader ChallengeReader, writer ChallengeWriter) *SeedService {
	return &SeedService{
		reader: reader,
		writer: writer,
	}
}

// Seed inserts the demo challenges when the catalog is empty. It only
// triggers on a count of exactly zero, so restarts never duplicate records.
func (svc *SeedService) Seed(ctx context.Context) error {
	count, err := svc.reader.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count challenges", "err", err)
		return err
	}
	if count > 0 {
		logger.Log.Infow("challenge catalog already seeded", "count", count)
		return nil
	}

	for _, demo := range demoChallenges {
		demo.ID = uuid.NewString()
		if err := svc.writer.Create(ctx, demo); err != nil {
			logger.Log.Errorw("failed to seed challenge", "title", demo.Title, "err", err)
			return err
		}
	}

	logger.Log.Infow("demo challenges seeded", "count", len(demoChallenges))
	return nil
}
