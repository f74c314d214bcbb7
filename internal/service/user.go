// Package service contains the business logic layer.
//
// Services orchestrate interactions between the repository and domain
// logic. They are responsible for input validation, business rule
// enforcement and error translation (repository errors -> domain errors).
package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/nirmaan-labs/nirmaan/internal/domain"
	"github.com/nirmaan-labs/nirmaan/internal/repository"
)

const (
	// SessionTokenBytes is the number of random bytes for session tokens.
	// 32 bytes = 256 bits of entropy; the token is hex-encoded to 64
	// characters for storage and transmission.
	SessionTokenBytes = 32

	// SessionDuration is how long an admin session remains valid.
	SessionDuration = 24 * time.Hour
)

// UserService defines admin authentication operations.
type UserService interface {
	// Login authenticates an admin and creates a new session.
	// Returns the user and raw session token on success.
	// Returns domain.EUNAUTHORIZED for invalid credentials.
	Login(ctx context.Context, username, password string) (*domain.LoginResult, error)

	// Logout invalidates a session by its raw token.
	// This is idempotent - calling with an invalid token is not an error.
	Logout(ctx context.Context, token string) error

	// GetBySessionToken retrieves the admin associated with a session
	// token, validating expiry.
	// Returns domain.EUNAUTHORIZED if token is invalid or expired.
	GetBySessionToken(ctx context.Context, token string) (*domain.AdminUser, error)

	// DeleteExpiredSessions removes expired sessions. Called
	// periodically by the maintenance worker.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

type userService struct {
	users    repository.UserStore
	sessions repository.SessionStore
	logger   *slog.Logger
}

// NewUserService creates a new UserService instance.
func NewUserService(users repository.UserStore, sessions repository.SessionStore, logger *slog.Logger) UserService {
	return &userService{
		users:    users,
		sessions: sessions,
		logger:   logger,
	}
}

func (s *userService) Login(ctx context.Context, username, password string) (*domain.LoginResult, error) {
	const op = "UserService.Login"

	username = strings.ToLower(strings.TrimSpace(username))

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			// Run a comparison against a throwaway hash so unknown
			// usernames take as long as wrong passwords.
			_, _ = ComparePassword(dummyPasswordHash, password)
			return nil, domain.Unauthorized(op, "Invalid username or password")
		}
		return nil, domain.Internal(err, op, "Failed to retrieve user")
	}

	match, err := ComparePassword(user.PasswordHash, password)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to verify password")
	}
	if !match {
		return nil, domain.Unauthorized(op, "Invalid username or password")
	}

	token, err := generateSessionToken()
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to generate session token")
	}

	now := time.Now()
	err = s.sessions.CreateSession(ctx, domain.Session{
		TokenHash: hashSessionToken(token),
		UserID:    user.ID,
		ExpiresAt: now.Add(SessionDuration),
		CreatedAt: now,
	})
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to create session")
	}

	s.logger.Info("admin logged in", "user_id", user.ID, "username", user.Username)

	// Return the RAW token (not the hash); it is never stored.
	return &domain.LoginResult{User: user, Token: token}, nil
}

func (s *userService) Logout(ctx context.Context, token string) error {
	if token == "" || len(token) != SessionTokenBytes*2 {
		return nil // logout is idempotent
	}

	if err := s.sessions.DeleteSessionByTokenHash(ctx, hashSessionToken(token)); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("failed to delete session", "error", err)
		}
	}

	s.logger.Debug("session invalidated")
	return nil
}

func (s *userService) GetBySessionToken(ctx context.Context, token string) (*domain.AdminUser, error) {
	const op = "UserService.GetBySessionToken"

	if token == "" || len(token) != SessionTokenBytes*2 {
		return nil, domain.Unauthorized(op, "Invalid session")
	}

	session, err := s.sessions.GetSessionByTokenHash(ctx, hashSessionToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Unauthorized(op, "Invalid session")
		}
		return nil, domain.Internal(err, op, "Failed to retrieve session")
	}

	if session.IsExpired() {
		// Best-effort cleanup; the worker sweeps leftovers.
		_ = s.sessions.DeleteSessionByTokenHash(ctx, session.TokenHash)
		return nil, domain.Unauthorized(op, "Session expired")
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.Unauthorized(op, "Invalid session")
		}
		return nil, domain.Internal(err, op, "Failed to retrieve user")
	}

	return user, nil
}

func (s *userService) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	const op = "UserService.DeleteExpiredSessions"

	n, err := s.sessions.DeleteExpiredSessions(ctx)
	if err != nil {
		return 0, domain.Internal(err, op, "Failed to delete expired sessions")
	}
	return n, nil
}

// dummyPasswordHash is an scrypt hash of a random string, used to keep
// login timing uniform when the username does not exist.
const dummyPasswordHash = "b0bb0a73ed28e2b2b78bd67aaa0cee7774423d5e20dc2f03b1fb0fa8734dc280" +
	"8877bec26a388ba9399171b9f7c6f1e6bd6c2f1993f0a2f4b2c0ebc36851a2be.5d41402abc4b2a76b9719d911017c592"

func generateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}

// hashSessionToken creates a SHA-256 hash of a session token. Tokens
// are hashed before storage so a leaked database cannot be replayed.
func hashSessionToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
