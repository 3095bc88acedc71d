package storage

import "context"

//go:generate moq -out snapshot_mock.go . SnapshotStorage

// SnapshotStorage caches full remote document snapshots so reads keep working
// offline. Every save is a full-state replacement, never a partial merge:
// subscription callbacks deliver complete documents, not diffs.
type SnapshotStorage interface {
	// SaveSnapshot replaces the cached snapshot for the document
	SaveSnapshot(ctx context.Context, collection, documentID string, document map[string]any) error

	// GetSnapshot retrieves the cached snapshot for the document.
	// Returns ErrSnapshotNotFound if no snapshot is cached.
	GetSnapshot(ctx context.Context, collection, documentID string) (map[string]any, error)
}
