package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// SubmissionWriteRepository appends submission attempts to the audit log.
// Rows are never updated or deleted.
type SubmissionWriteRepository struct {
	db *sqlx.DB
}

func NewSubmissionWriteRepository(db *sqlx.DB) *SubmissionWriteRepository {
	return &SubmissionWriteRepository{db: db}
}

// Create appends one submission record.
func (r *SubmissionWriteRepository) Create(ctx context.Context, sub models.Submission) error {
	if r.db == nil {
		return ErrNotConfigured
	}

	const query = `
		INSERT INTO submissions (id, user_id, challenge_id, flag, correct)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{sub.ID, sub.UserID, sub.ChallengeID, sub.Flag, sub.Correct}

	_, err := r.db.ExecContext(ctx, query, args...)

	logger.Log.Infow("submission insert",
		"query", strings.Join(strings.Fields(query), " "),
		"submission_id", sub.ID,
		"user_id", sub.UserID,
		"challenge_id", sub.ChallengeID,
		"correct", sub.Correct,
		"error", err,
	)

	return err
}
