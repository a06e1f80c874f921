package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// SubmissionWriter appends submission attempts to the audit log.
type SubmissionWriter interface {
	Create(ctx context.Context, sub models.Submission) error
}

// SolveAnnouncer publishes first-solve events to the solve feed.
type SolveAnnouncer interface {
	Announce(ctx context.Context, ev models.SolveEvent) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// ScoringService validates flag submissions and awards points.
//
// Every attempt is appended to the submission log, including duplicates and
// wrong flags. A challenge pays out at most once per user: the award is a
// single conditional store update, so concurrent duplicate submissions
// cannot double-count the score.
type ScoringService struct {
	users       UserReader
	userWriter  UserWriter
	challenges  ChallengeReader
	submissions SubmissionWriter
	feed        SolveAnnouncer
	kafkaWriter KafkaWriter
}

// NewScoringService creates a new ScoringService. feed and kafkaWriter may be
// nil; the corresponding publishing is then skipped.
func NewScoringService(
	users UserReader,
	userWriter UserWriter,
	challenges ChallengeReader,
	submissions SubmissionWriter,
	feed SolveAnnouncer,
	kafkaWriter KafkaWriter,
) *ScoringService {
	return &ScoringService{
		users:       users,
		userWriter:  userWriter,
		challenges:  challenges,
		submissions: submissions,
		feed:        feed,
		kafkaWriter: kafkaWriter,
	}
}

// publishSubmission publishes an audit event for a recorded submission.
func (svc *ScoringService) publishSubmission(ctx context.Context, ev models.SubmissionEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "submission_id", ev.SubmissionID)
		return
	}

	data, err := json.Marshal(ev)
	if err != nil {
		logger.Log.Errorw("failed to marshal submission event", "submission_id", ev.SubmissionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(ev.SubmissionID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish submission event", "submission_id", ev.SubmissionID, "error", err)
	} else {
		logger.Log.Infow("submission event published", "submission_id", ev.SubmissionID, "correct", ev.Correct)
	}
}

// Submit processes one flag submission for (userID, challengeID).
//
// The flag matches when its whitespace-trimmed text equals the challenge flag
// exactly (case-sensitive). The attempt is always recorded with the raw,
// untrimmed text. Points are awarded only on the first correct submission;
// the returned user reflects the post-award state when an award happened.
func (svc *ScoringService) Submit(ctx context.Context, userID, challengeID, flagText string) (bool, *models.User, error) {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to load user", "user_id", userID, "err", err)
		return false, nil, err
	}

	challenge, err := svc.challenges.GetByID(ctx, challengeID)
	if err != nil {
		logger.Log.Errorw("failed to load challenge", "challenge_id", challengeID, "err", err)
		return false, nil, err
	}

	if user == nil || challenge == nil {
		return false, nil, ErrNotFound
	}

	alreadySolved := user.HasSolved(challengeID)
	correct := strings.TrimSpace(flagText) == challenge.Flag

	sub := models.Submission{
		ID:          uuid.NewString(),
		UserID:      userID,
		ChallengeID: challengeID,
		Flag:        flagText,
		Correct:     correct,
	}
	if err := svc.submissions.Create(ctx, sub); err != nil {
		logger.Log.Errorw("failed to record submission", "user_id", userID, "challenge_id", challengeID, "err", err)
		return false, nil, err
	}

	svc.publishSubmission(ctx, models.SubmissionEvent{
		SubmissionID: sub.ID,
		UserID:       userID,
		ChallengeID:  challengeID,
		Correct:      correct,
		Timestamp:    time.Now().Unix(),
	})

	if correct && !alreadySolved {
		awarded, err := svc.userWriter.Award(ctx, userID, challengeID, challenge.Points)
		if err != nil {
			logger.Log.Errorw("failed to award points", "user_id", userID, "challenge_id", challengeID, "err", err)
			return false, nil, err
		}

		if awarded {
			svc.announceSolve(ctx, user, challenge)
		}

		user, err = svc.users.GetByID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to reload user after award", "user_id", userID, "err", err)
			return false, nil, err
		}
	}

	return correct, user, nil
}

// announceSolve publishes a solve event to the feed, best-effort.
func (svc *ScoringService) announceSolve(ctx context.Context, user *models.User, challenge *models.Challenge) {
	if svc.feed == nil {
		return
	}

	ev := models.SolveEvent{
		UserID:      user.ID,
		Username:    user.Username,
		ChallengeID: challenge.ID,
		Challenge:   challenge.Title,
		Points:      challenge.Points,
		Timestamp:   time.Now().Unix(),
	}

	if err := svc.feed.Announce(ctx, ev); err != nil {
		logger.Log.Errorw("failed to announce solve", "user_id", user.ID, "challenge_id", challenge.ID, "err", err)
	}
}
