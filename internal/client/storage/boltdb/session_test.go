package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visaguide/visaguide-client/internal/client/storage"
)

func TestSession_SaveGet(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	session := &storage.Session{
		UserID:       "user-123",
		Email:        "ana@example.com",
		DeviceID:     "device-abc",
		AccessToken:  "encrypted-access",
		RefreshToken: "encrypted-refresh",
		ExpiresAt:    1700000000,
	}

	require.NoError(t, s.SaveSession(ctx, session))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSession_GetNotFound(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.GetSession(context.Background())
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)
}

func TestSession_SaveReplaces(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "user-1"}))
	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "user-2"}))

	got, err := s.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user-2", got.UserID)
}

func TestSession_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, &storage.Session{UserID: "user-1"}))
	require.NoError(t, s.DeleteSession(ctx))

	_, err := s.GetSession(ctx)
	assert.ErrorIs(t, err, storage.ErrSessionNotFound)

	// Deleting an absent session is not an error
	assert.NoError(t, s.DeleteSession(ctx))
}
