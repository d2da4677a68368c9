package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentumos/momentum/internal/client/storage"
)

func TestSession_RoundTrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session := &storage.Session{
		Email:        "u@example.com",
		UserID:       "user-1",
		AccessToken:  "at",
		RefreshToken: "rt",
		ExpiresAt:    1234567890,
	}
	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSession_NotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSession_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "user-1"}))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Deleting again is fine.
	require.NoError(t, s.DeleteSession(ctx))
}
