// Package auth manages the client's session with the hosted auth
// service: credential exchange, session persistence, restore on start.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/momentumos/momentum/internal/client/api"
	"github.com/momentumos/momentum/internal/client/storage"
	"github.com/momentumos/momentum/internal/validation"
)

// ErrNotAuthenticated is returned when an operation needs a session and
// none is stored, or the stored one has expired.
var ErrNotAuthenticated = errors.New("not authenticated, run login first")

// Service handles login, signup and session restore.
type Service struct {
	apiClient api.ClientAPI
	sessions  storage.SessionStorage
	logger    *slog.Logger
	now       func() time.Time
}

// NewService creates a new auth service.
func NewService(apiClient api.ClientAPI, sessions storage.SessionStorage, logger *slog.Logger) *Service {
	return &Service{
		apiClient: apiClient,
		sessions:  sessions,
		logger:    logger,
		now:       time.Now,
	}
}

// Login exchanges credentials for tokens, persists the session and
// installs the bearer token on the API client.
func (s *Service) Login(ctx context.Context, email, password string) (*storage.Session, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.Login(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return s.establish(ctx, email, resp.AccessToken, resp.RefreshToken, resp.ExpiresIn)
}

// SignUp registers a new user. When the backend issues tokens right away
// the session is established like a login; when it requires email
// confirmation first, no session is stored and ErrNotAuthenticated is
// returned after the account is created.
func (s *Service) SignUp(ctx context.Context, email, password string) (*storage.Session, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	resp, err := s.apiClient.SignUp(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("signup failed: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, ErrNotAuthenticated
	}
	return s.establish(ctx, email, resp.AccessToken, resp.RefreshToken, resp.ExpiresIn)
}

func (s *Service) establish(ctx context.Context, email, accessToken, refreshToken string, expiresIn int64) (*storage.Session, error) {
	userID, err := subjectOf(accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decode access token: %w", err)
	}

	session := &storage.Session{
		Email:        email,
		UserID:       userID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    s.now().Unix() + expiresIn,
	}
	if err := s.sessions.SaveSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	s.apiClient.SetToken(accessToken)
	s.logger.Info("session established", "user_id", userID)
	return session, nil
}

// Restore loads the persisted session and installs its token on the API
// client. Returns ErrNotAuthenticated when no usable session exists.
func (s *Service) Restore(ctx context.Context) (*storage.Session, error) {
	session, err := s.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, ErrNotAuthenticated
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	if session.ExpiresAt > 0 && session.ExpiresAt <= s.now().Unix() {
		s.logger.Info("stored session expired", "user_id", session.UserID)
		return nil, ErrNotAuthenticated
	}

	s.apiClient.SetToken(session.AccessToken)
	return session, nil
}

// Logout drops the persisted session. Purely local: the bearer token is
// simply forgotten and expires server-side.
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.DeleteSession(ctx); err != nil && !errors.Is(err, storage.ErrSessionNotFound) {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// IsAuthenticated reports whether a non-expired session is stored.
func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.Restore(ctx)
	if err != nil {
		if errors.Is(err, ErrNotAuthenticated) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
