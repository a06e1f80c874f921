package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// ChallengeReadRepository provides read access to the challenge catalog.
type ChallengeReadRepository struct {
	db *sqlx.DB
}

func NewChallengeReadRepository(db *sqlx.DB) *ChallengeReadRepository {
	return &ChallengeReadRepository{db: db}
}

// List returns all challenges in insertion order.
func (r *ChallengeReadRepository) List(ctx context.Context) ([]models.Challenge, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	const query = `
		SELECT id, title, category, difficulty, points, description, flag
		FROM challenges
		ORDER BY created_at, id
	`

	challenges := []models.Challenge{}
	err := r.db.SelectContext(ctx, &challenges, query)

	logger.Log.Infow("challenge list query",
		"query", strings.Join(strings.Fields(query), " "),
		"rows", len(challenges),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return challenges, nil
}

// GetByID returns the challenge with the given id, or nil when no record
// matches.
func (r *ChallengeReadRepository) GetByID(ctx context.Context, challengeID string) (*models.Challenge, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	const query = `
		SELECT id, title, category, difficulty, points, description, flag
		FROM challenges
		WHERE id = $1
	`

	var challenge models.Challenge
	err := r.db.GetContext(ctx, &challenge, query, challengeID)

	logger.Log.Infow("challenge query",
		"query", strings.Join(strings.Fields(query), " "),
		"challenge_id", challengeID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &challenge, nil
}

// Count returns the number of challenge records.
func (r *ChallengeReadRepository) Count(ctx context.Context) (int, error) {
	if r.db == nil {
		return 0, ErrNotConfigured
	}

	const query = `SELECT COUNT(*) FROM challenges`

	var count int
	err := r.db.GetContext(ctx, &count, query)

	logger.Log.Infow("challenge count query",
		"query", query,
		"count", count,
		"error", err,
	)

	if err != nil {
		return 0, err
	}

	return count, nil
}

// ChallengeWriteRepository provides write access to the challenge catalog.
// Only seeding writes challenges; there is no edit endpoint.
type ChallengeWriteRepository struct {
	db *sqlx.DB
}

func NewChallengeWriteRepository(db *sqlx.DB) *ChallengeWriteRepository {
	return &ChallengeWriteRepository{db: db}
}

// Create inserts a challenge record.
func (r *ChallengeWriteRepository) Create(ctx context.Context, ch models.Challenge) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	const query = `
		INSERT INTO challenges (id, title, category, difficulty, points, description, flag)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	args := []any{ch.ID, ch.Title, ch.Category, ch.Difficulty, ch.Points, ch.Description, ch.Flag}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("challenge insert",
		"query", strings.Join(strings.Fields(query), " "),
		"challenge_id", ch.ID,
		"title", ch.Title,
		"error", err,
	)

	return err
}
