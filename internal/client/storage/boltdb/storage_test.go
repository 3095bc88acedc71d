package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "client-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

func TestNew_CreatesBuckets(t *testing.T) {
	s := newTestStorage(t)
	assert.NotNil(t, s)
}

func TestClose_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client-test.db")
	s, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, s.Close())
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(context.Background(), "/nonexistent-dir/sub/client.db")
	assert.Error(t, err)
}
