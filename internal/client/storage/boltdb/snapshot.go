package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/visaguide/visaguide-client/internal/client/storage"
)

func snapshotKey(collection, documentID string) []byte {
	return []byte(collection + "/" + documentID)
}

// SaveSnapshot replaces the cached snapshot for the document.
// Snapshots arrive from subscription callbacks as full documents, so the
// previous value is overwritten wholesale, never merged.
func (s *Storage) SaveSnapshot(ctx context.Context, collection, documentID string, document map[string]any) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		data, err := json.Marshal(document)
		if err != nil {
			return fmt.Errorf("failed to marshal snapshot: %w", err)
		}

		if err := bucket.Put(snapshotKey(collection, documentID), data); err != nil {
			return fmt.Errorf("failed to save snapshot: %w", err)
		}

		return nil
	})
}

// GetSnapshot retrieves the cached snapshot for the document
func (s *Storage) GetSnapshot(ctx context.Context, collection, documentID string) (map[string]any, error) {
	var document map[string]any

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSnapshots)
		if bucket == nil {
			return fmt.Errorf("snapshots bucket not found")
		}

		data := bucket.Get(snapshotKey(collection, documentID))
		if data == nil {
			return storage.ErrSnapshotNotFound
		}

		if err := json.Unmarshal(data, &document); err != nil {
			return fmt.Errorf("failed to unmarshal snapshot: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return document, nil
}
