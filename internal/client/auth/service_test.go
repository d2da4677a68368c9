package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentumos/momentum/internal/client/api"
	"github.com/momentumos/momentum/internal/client/storage"
	pkgapi "github.com/momentumos/momentum/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func memSessions() *storage.SessionStorageMock {
	var stored *storage.Session
	return &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, session *storage.Session) error {
			stored = session
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			if stored == nil {
				return nil, storage.ErrSessionNotFound
			}
			return stored, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			if stored == nil {
				return storage.ErrSessionNotFound
			}
			stored = nil
			return nil
		},
	}
}

func TestLoginEstablishesSession(t *testing.T) {
	ctx := context.Background()
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})

	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{AccessToken: token, RefreshToken: "refresh", ExpiresIn: 3600}, nil
		},
		SetTokenFunc: func(token string) {},
	}
	sessions := memSessions()

	svc := NewService(apiMock, sessions, testLogger())
	svc.now = func() time.Time { return time.Unix(1_000_000, 0) }

	session, err := svc.Login(ctx, "u1@example.com", "password")
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	assert.Equal(t, "u1@example.com", session.Email)
	assert.Equal(t, int64(1_000_000+3600), session.ExpiresAt)

	require.Len(t, sessions.SaveSessionCalls(), 1)
	require.Len(t, apiMock.SetTokenCalls(), 1)
	assert.Equal(t, token, apiMock.SetTokenCalls()[0].Token)
}

func TestLoginRejectedDoesNotPersist(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		LoginFunc: func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
			return nil, &api.StatusError{Code: 400, Message: "invalid login credentials"}
		},
	}
	sessions := memSessions()

	svc := NewService(apiMock, sessions, testLogger())

	_, err := svc.Login(context.Background(), "u1@example.com", "wrong")
	require.Error(t, err)
	assert.Empty(t, sessions.SaveSessionCalls())
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	apiMock := &api.ClientAPIMock{}
	svc := NewService(apiMock, memSessions(), testLogger())

	_, err := svc.Login(context.Background(), "not-an-email", "password")
	require.Error(t, err)
	assert.Empty(t, apiMock.LoginCalls())
}

func TestSignUpRejectsShortPassword(t *testing.T) {
	apiMock := &api.ClientAPIMock{}
	svc := NewService(apiMock, memSessions(), testLogger())

	_, err := svc.SignUp(context.Background(), "u1@example.com", "abc")
	require.Error(t, err)
	assert.Empty(t, apiMock.SignUpCalls())
}

func TestSignUpWithoutTokensNeedsConfirmation(t *testing.T) {
	apiMock := &api.ClientAPIMock{
		SignUpFunc: func(ctx context.Context, email, password string) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{}, nil
		},
	}
	sessions := memSessions()

	svc := NewService(apiMock, sessions, testLogger())

	_, err := svc.SignUp(context.Background(), "new@example.com", "password")
	require.ErrorIs(t, err, ErrNotAuthenticated)
	assert.Empty(t, sessions.SaveSessionCalls())
}

func TestRestoreInstallsToken(t *testing.T) {
	ctx := context.Background()
	token := signedToken(t, jwt.MapClaims{"sub": "u1"})

	apiMock := &api.ClientAPIMock{
		SetTokenFunc: func(token string) {},
	}
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			return &storage.Session{UserID: "u1", AccessToken: token, ExpiresAt: time.Now().Add(time.Hour).Unix()}, nil
		},
	}

	svc := NewService(apiMock, sessions, testLogger())

	session, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", session.UserID)
	require.Len(t, apiMock.SetTokenCalls(), 1)
}

func TestRestoreExpiredSession(t *testing.T) {
	sessions := &storage.SessionStorageMock{
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			return &storage.Session{UserID: "u1", AccessToken: "stale", ExpiresAt: time.Now().Add(-time.Hour).Unix()}, nil
		},
	}

	svc := NewService(&api.ClientAPIMock{}, sessions, testLogger())

	_, err := svc.Restore(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRestoreWithoutSession(t *testing.T) {
	sessions := memSessions()
	svc := NewService(&api.ClientAPIMock{}, sessions, testLogger())

	_, err := svc.Restore(context.Background())
	require.ErrorIs(t, err, ErrNotAuthenticated)

	authed, err := svc.IsAuthenticated(context.Background())
	require.NoError(t, err)
	assert.False(t, authed)
}

func TestLogoutIsIdempotent(t *testing.T) {
	sessions := memSessions()
	svc := NewService(&api.ClientAPIMock{}, sessions, testLogger())

	require.NoError(t, svc.Logout(context.Background()))
	require.NoError(t, svc.Logout(context.Background()))
}

func TestSubjectOf(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "user-42"})
	sub, err := subjectOf(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", sub)

	_, err = subjectOf("not-a-token")
	require.Error(t, err)

	noSub := signedToken(t, jwt.MapClaims{"aud": "whatever"})
	_, err = subjectOf(noSub)
	require.Error(t, err)
}
