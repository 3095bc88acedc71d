package storage

import "errors"

// Common client storage errors
var (
	// ErrSessionNotFound indicates that no session data exists
	ErrSessionNotFound = errors.New("session data not found")

	// ErrBacklogEntryNotFound indicates that no backlog entry exists for the key
	ErrBacklogEntryNotFound = errors.New("backlog entry not found")

	// ErrSnapshotNotFound indicates that no cached document snapshot exists
	ErrSnapshotNotFound = errors.New("document snapshot not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
