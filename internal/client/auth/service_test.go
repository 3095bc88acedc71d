package auth

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visaguide/visaguide-client/internal/client/storage"
	"github.com/visaguide/visaguide-client/internal/crypto"
	"github.com/visaguide/visaguide-client/internal/models"
	pkgapi "github.com/visaguide/visaguide-client/pkg/api"
)

func testDeviceKey() []byte {
	return bytes.Repeat([]byte{0x42}, 32)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// signToken builds a real signed JWT so claim parsing exercises the same
// code path as production tokens
func signToken(t *testing.T, userID, email string, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"exp":   exp.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return token
}

// newMemorySessions returns a SessionStorageMock backed by a single in-memory slot
func newMemorySessions() *storage.SessionStorageMock {
	var mu sync.Mutex
	var saved *storage.Session

	return &storage.SessionStorageMock{
		SaveSessionFunc: func(ctx context.Context, session *storage.Session) error {
			mu.Lock()
			defer mu.Unlock()
			sessionCopy := *session
			saved = &sessionCopy
			return nil
		},
		GetSessionFunc: func(ctx context.Context) (*storage.Session, error) {
			mu.Lock()
			defer mu.Unlock()
			if saved == nil {
				return nil, storage.ErrSessionNotFound
			}
			sessionCopy := *saved
			return &sessionCopy, nil
		},
		DeleteSessionFunc: func(ctx context.Context) error {
			mu.Lock()
			defer mu.Unlock()
			saved = nil
			return nil
		},
	}
}

func TestService_Login(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	accessToken := signToken(t, "user-123", "ana@example.com", exp)

	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "ana@example.com", req.Email)
			assert.Equal(t, "secret-pass", req.Password)
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
			}, nil
		},
	}
	sessions := newMemorySessions()
	svc := NewService(apiMock, sessions, testDeviceKey(), testLogger())

	var notified *models.Identity
	svc.OnIdentityChanged(func(identity *models.Identity) {
		notified = identity
	})

	identity, err := svc.Login(context.Background(), "ana@example.com", "secret-pass")

	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "ana@example.com", identity.Email)
	assert.Equal(t, accessToken, identity.AccessToken)

	require.NotNil(t, notified)
	assert.Equal(t, "user-123", notified.UserID)

	// Tokens must be encrypted at rest
	saved := sessions.SaveSessionCalls()[0].Session
	assert.NotEqual(t, accessToken, saved.AccessToken)
	decrypted, err := crypto.DecryptFromBase64(saved.AccessToken, testDeviceKey())
	require.NoError(t, err)
	assert.Equal(t, accessToken, string(decrypted))
	assert.NotEmpty(t, saved.DeviceID)
}

func TestService_Login_InvalidEmail(t *testing.T) {
	apiMock := &APIMock{}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())

	_, err := svc.Login(context.Background(), "not-an-email", "secret-pass")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email")
	assert.Empty(t, apiMock.LoginCalls())
}

func TestService_Login_ShortPassword(t *testing.T) {
	apiMock := &APIMock{}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())

	_, err := svc.Login(context.Background(), "ana@example.com", "short")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid password")
	assert.Empty(t, apiMock.LoginCalls())
}

func TestService_Login_APIError(t *testing.T) {
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return nil, fmt.Errorf("server error (401): invalid credentials")
		},
	}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())

	_, err := svc.Login(context.Background(), "ana@example.com", "wrong-pass")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "login failed")
}

func TestService_Login_KeepsDeviceID(t *testing.T) {
	accessToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
			}, nil
		},
	}
	sessions := newMemorySessions()
	svc := NewService(apiMock, sessions, testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)
	first, err := sessions.GetSession(ctx)
	require.NoError(t, err)

	_, err = svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)
	second, err := sessions.GetSession(ctx)
	require.NoError(t, err)

	assert.Equal(t, first.DeviceID, second.DeviceID)
}

func TestService_CurrentIdentity_SignedOut(t *testing.T) {
	svc := NewService(&APIMock{}, newMemorySessions(), testDeviceKey(), testLogger())

	identity, err := svc.CurrentIdentity(context.Background())

	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestService_CurrentIdentity_Expired(t *testing.T) {
	accessToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(-time.Hour))
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    -3600,
			}, nil
		},
	}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)

	identity, err := svc.CurrentIdentity(ctx)

	require.NoError(t, err)
	assert.Nil(t, identity)
}

func TestService_CurrentIdentity_Valid(t *testing.T) {
	accessToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
			}, nil
		},
	}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)

	identity, err := svc.CurrentIdentity(ctx)

	require.NoError(t, err)
	require.NotNil(t, identity)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, accessToken, identity.AccessToken)
}

func TestService_Refresh(t *testing.T) {
	oldToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Minute))
	newToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))

	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  oldToken,
				RefreshToken: "refresh-token-1",
				ExpiresIn:    60,
			}, nil
		},
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			assert.Equal(t, "refresh-token-1", req.RefreshToken)
			return &pkgapi.TokenResponse{
				AccessToken:  newToken,
				RefreshToken: "refresh-token-2",
				ExpiresIn:    3600,
			}, nil
		},
	}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)

	identity, err := svc.Refresh(ctx)

	require.NoError(t, err)
	assert.Equal(t, newToken, identity.AccessToken)
}

func TestService_Refresh_SignedOut(t *testing.T) {
	svc := NewService(&APIMock{}, newMemorySessions(), testDeviceKey(), testLogger())

	_, err := svc.Refresh(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not signed in")
}

func TestService_Logout(t *testing.T) {
	accessToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
			}, nil
		},
		LogoutFunc: func(ctx context.Context) error {
			return nil
		},
	}
	sessions := newMemorySessions()
	svc := NewService(apiMock, sessions, testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)

	notifications := make([]*models.Identity, 0)
	svc.OnIdentityChanged(func(identity *models.Identity) {
		notifications = append(notifications, identity)
	})

	require.NoError(t, svc.Logout(ctx))

	assert.Len(t, apiMock.LogoutCalls(), 1)
	_, err = sessions.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	require.Len(t, notifications, 1)
	assert.Nil(t, notifications[0])
}

func TestService_Logout_ServerUnavailable(t *testing.T) {
	accessToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
			}, nil
		},
		LogoutFunc: func(ctx context.Context) error {
			return fmt.Errorf("connection refused")
		},
	}
	sessions := newMemorySessions()
	svc := NewService(apiMock, sessions, testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)

	// Server failure must not block the local sign-out
	require.NoError(t, svc.Logout(ctx))

	_, err = sessions.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestService_AccessToken_RefreshesExpired(t *testing.T) {
	oldToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(-time.Minute))
	newToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))

	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  oldToken,
				RefreshToken: "refresh-token-1",
				ExpiresIn:    -60,
			}, nil
		},
		RefreshFunc: func(ctx context.Context, req pkgapi.RefreshRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  newToken,
				RefreshToken: "refresh-token-2",
				ExpiresIn:    3600,
			}, nil
		},
	}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)

	token, err := svc.AccessToken(ctx)

	require.NoError(t, err)
	assert.Equal(t, newToken, token)
	assert.Len(t, apiMock.RefreshCalls(), 1)
}

func TestService_OnIdentityChanged_Unsubscribe(t *testing.T) {
	accessToken := signToken(t, "user-123", "ana@example.com", time.Now().Add(time.Hour))
	apiMock := &APIMock{
		LoginFunc: func(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.TokenResponse, error) {
			return &pkgapi.TokenResponse{
				AccessToken:  accessToken,
				RefreshToken: "refresh-token",
				ExpiresIn:    3600,
			}, nil
		},
	}
	svc := NewService(apiMock, newMemorySessions(), testDeviceKey(), testLogger())
	ctx := context.Background()

	calls := 0
	unsubscribe := svc.OnIdentityChanged(func(identity *models.Identity) {
		calls++
	})

	_, err := svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	unsubscribe()

	_, err = svc.Login(ctx, "ana@example.com", "secret-pass")
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestLoadOrCreateDeviceKey(t *testing.T) {
	path := t.TempDir() + "/device.json"

	key, err := LoadOrCreateDeviceKey(path)
	require.NoError(t, err)
	assert.Len(t, key, 32)

	// Same file yields the same key
	again, err := LoadOrCreateDeviceKey(path)
	require.NoError(t, err)
	assert.Equal(t, key, again)

	// A different file yields a different key
	other, err := LoadOrCreateDeviceKey(t.TempDir() + "/device.json")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}
