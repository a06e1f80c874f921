package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ctfground/ctf-backend/internal/logger"
	"github.com/ctfground/ctf-backend/internal/models"
)

// Error variables
var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByID(ctx context.Context, userID string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ListByScore(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Create(ctx context.Context, userID, username, email, password string) error
	Award(ctx context.Context, userID, challengeID string, points int) (bool, error)
}

// AuthService handles registration and login.
//
// Passwords are stored and compared as plain text. Known limitation of the
// demo platform; clients receive the stored value back in user payloads.
type AuthService struct {
	reader UserReader
	writer UserWriter
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
	}
}

// Register creates a new user with score 0 and an empty solved set. The
// email must not already be registered (case-sensitive exact match).
func (svc *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	existing, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check existing email", "email", email, "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Infow("email already registered", "email", email)
		return nil, ErrEmailAlreadyRegistered
	}

	userID := uuid.NewString()
	if err := svc.writer.Create(ctx, userID, username, email, password); err != nil {
		logger.Log.Errorw("failed to create user", "email", email, "err", err)
		return nil, err
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to reload created user", "user_id", userID, "err", err)
		return nil, err
	}

	return user, nil
}

// Login authenticates a user by exact email and password equality.
func (svc *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := svc.reader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get user", "email", email, "err", err)
		return nil, err
	}
	if user == nil || user.Password != password {
		logger.Log.Infow("invalid credentials", "email", email)
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
