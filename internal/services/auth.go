package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/sbilibin2017/qa-forum/internal/jwt"
	"github.com/sbilibin2017/qa-forum/internal/logger"
	"github.com/sbilibin2017/qa-forum/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrUsernameExists         = errors.New("username already exists")
	ErrInvalidCredentials     = errors.New("invalid username or password")
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrInvalidInput           = errors.New("invalid input")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash string) (int64, error)
}

// TokenProvider defines an interface for issuing and parsing session tokens.
type TokenProvider interface {
	Generate(ctx context.Context, userID int64) (token string, sessionID string, err error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// SessionStore defines the active-session registry.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, userID int64) error
	Get(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthService handles registration, login, logout and session resolution.
type AuthService struct {
	reader   UserReader
	writer   UserWriter
	jwt      TokenProvider
	sessions SessionStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenProvider, sessions SessionStore) *AuthService {
	return &AuthService{
		reader:   reader,
		writer:   writer,
		jwt:      jwt,
		sessions: sessions,
	}
}

// Register creates a new user with a hashed password. The unique constraint
// on username decides duplicates, so two concurrent registrations of the same
// name cannot both succeed.
func (svc *AuthService) Register(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	if _, err := svc.writer.Save(ctx, username, string(hashedPassword)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Errorw("user already exists", "username", username)
			return ErrUsernameExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return err
	}

	return nil
}

// Login authenticates a user and returns a signed session token. An unknown
// username and a wrong password produce the same error.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, sessionID, err := svc.jwt.Generate(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return "", err
	}

	if err := svc.sessions.Save(ctx, sessionID, user.ID); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	return token, nil
}

// Logout revokes the session behind the token. An invalid or absent token is
// a no-op, so logging out twice succeeds.
func (svc *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil
	}

	return svc.sessions.Delete(ctx, claims.SessionID)
}

// CurrentUser resolves a session token to a user. It returns (nil, nil) when
// the token is missing, invalid, revoked, or references a user that no longer
// exists.
func (svc *AuthService) CurrentUser(ctx context.Context, token string) (*models.UserDB, error) {
	if token == "" {
		return nil, nil
	}

	claims, err := svc.jwt.GetClaims(ctx, token)
	if err != nil {
		return nil, nil
	}

	userID, err := svc.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return nil, err
	}
	if userID == 0 || userID != claims.UserID {
		return nil, nil
	}

	return svc.reader.GetByID(ctx, userID)
}
