package storage

import "context"

//go:generate go tool moq -out sessionstorage_mock.go . SessionStorage

// Session represents the authenticated state persisted between runs.
// Tokens are stored as issued by the backend; validation is the
// backend's job.
type Session struct {
	Email        string `json:"email"`
	UserID       string `json:"user_id"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
}

// SessionStorage defines interface for storing the auth session on client
type SessionStorage interface {
	// SaveSession stores the session, replacing any existing one.
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session.
	// Returns ErrSessionNotFound if none exists.
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout).
	DeleteSession(ctx context.Context) error
}
