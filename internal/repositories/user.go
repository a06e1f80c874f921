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

// UserReadRepository provides read access to user records and their
// solved sets.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id, or nil when no record matches.
func (r *UserReadRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	const query = `
		SELECT id, username, email, password, score
		FROM users
		WHERE id = $1
	`
	return r.getOne(ctx, query, userID)
}

// GetByEmail returns the user with the given email (case-sensitive exact
// match), or nil when no record matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const query = `
		SELECT id, username, email, password, score
		FROM users
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *UserReadRepository) getOne(ctx context.Context, query string, arg string) (*models.User, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	var user models.User
	err := r.db.GetContext(ctx, &user, query, arg)

	logger.Log.Infow("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"arg", arg,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	solved, err := r.loadSolved(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	user.Solved = solved

	return &user, nil
}

// loadSolved returns the solved challenge ids in solve order.
func (r *UserReadRepository) loadSolved(ctx context.Context, userID string) ([]string, error) {
	const query = `
		SELECT challenge_id
		FROM user_solves
		WHERE user_id = $1
		ORDER BY created_at, challenge_id
	`

	solved := []string{}
	err := r.db.SelectContext(ctx, &solved, query, userID)
	if err != nil {
		logger.Log.Errorw("failed to load solved set", "user_id", userID, "error", err)
		return nil, err
	}

	return solved, nil
}

// ListByScore returns up to limit leaderboard entries ordered by score
// descending. Ties break on ascending user id to keep results reproducible.
func (r *UserReadRepository) ListByScore(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if r.db == nil {
		return nil, ErrNotConfigured
	}

	const query = `
		SELECT u.id, u.username, u.email, u.score, COUNT(s.challenge_id) AS solves
		FROM users u
		LEFT JOIN user_solves s ON s.user_id = u.id
		GROUP BY u.id, u.username, u.email, u.score
		ORDER BY u.score DESC, u.id ASC
		LIMIT $1
	`

	entries := []models.LeaderboardEntry{}
	err := r.db.SelectContext(ctx, &entries, query, limit)

	logger.Log.Infow("leaderboard query",
		"query", strings.Join(strings.Fields(query), " "),
		"limit", limit,
		"rows", len(entries),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return entries, nil
}

// UserWriteRepository provides write access to user records.
type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user with score 0 and an empty solved set.
func (r *UserWriteRepository) Create(ctx context.Context, userID, username, email, password string) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	const query = `
		INSERT INTO users (id, username, email, password, score)
		VALUES ($1, $2, $3, $4, 0)
	`
	args := []any{userID, username, email, password}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("user insert",
		"query", strings.Join(strings.Fields(query), " "),
		"user_id", userID,
		"error", err,
	)

	return err
}

// Award credits a solved challenge: it adds (user, challenge) to the solved
// set and increments the score by points, as one atomic statement. The score
// update is conditional on the solve row actually landing, so concurrent
// duplicate submissions can never double-count points. Returns whether an
// award happened.
func (r *UserWriteRepository) Award(ctx context.Context, userID, challengeID string, points int) (bool, error) {
	if r.db == nil {
		return false, ErrNotConfigured
	}

	const query = `
		WITH solve AS (
			INSERT INTO user_solves (user_id, challenge_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
			RETURNING challenge_id
		)
		UPDATE users
		SET score = score + $3
		WHERE id = $1 AND EXISTS (SELECT 1 FROM solve)
	`
	args := []any{userID, challengeID, points}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("award",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
