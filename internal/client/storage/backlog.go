package storage

import (
	"context"
	"time"
)

//go:generate moq -out backlog_mock.go . BacklogStorage

// BacklogEntry is one write that could not reach the remote store, persisted
// until a reconciliation pass confirms it against the backend.
type BacklogEntry struct {
	CreatedAt time.Time // CreatedAt when the entry was first persisted
	Key       string    // Key write key "collection|documentId|fieldName" or a singleton namespace
	Payload   []byte    // Payload JSON-serialized models.BacklogPayload
}

// BacklogStorage defines the durable key-value fallback used for writes that
// could not reach the remote store. All operations are synchronous; a failed
// put must propagate to the caller, never be swallowed.
type BacklogStorage interface {
	// PutEntry stores or overwrites the entry for key (last-write-wins).
	// The CreatedAt of an existing entry is preserved on overwrite.
	PutEntry(ctx context.Context, key string, payload []byte) error

	// GetEntry retrieves the entry for key.
	// Returns ErrBacklogEntryNotFound if no entry exists.
	GetEntry(ctx context.Context, key string) (*BacklogEntry, error)

	// DeleteEntry removes the entry for key.
	// Returns ErrBacklogEntryNotFound if no entry exists.
	DeleteEntry(ctx context.Context, key string) error

	// ListKeys returns all keys matching any of the given prefixes
	ListKeys(ctx context.Context, prefixes ...string) ([]string, error)
}
