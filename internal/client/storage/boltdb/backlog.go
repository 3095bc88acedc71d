package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.etcd.io/bbolt"

	"github.com/visaguide/visaguide-client/internal/client/storage"
)

// PutEntry stores or overwrites the backlog entry for key.
// The CreatedAt of an existing entry is preserved so the age of the oldest
// unsynced write stays visible across overwrites.
func (s *Storage) PutEntry(ctx context.Context, key string, payload []byte) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBacklog)
		if bucket == nil {
			return fmt.Errorf("backlog bucket not found")
		}

		entry := storage.BacklogEntry{
			Key:       key,
			Payload:   payload,
			CreatedAt: time.Now().UTC(),
		}

		// Preserve CreatedAt of an existing entry (last-write-wins on payload only)
		if existing := bucket.Get([]byte(key)); existing != nil {
			var prev storage.BacklogEntry
			if err := json.Unmarshal(existing, &prev); err == nil && !prev.CreatedAt.IsZero() {
				entry.CreatedAt = prev.CreatedAt
			}
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("failed to marshal backlog entry: %w", err)
		}

		if err := bucket.Put([]byte(key), data); err != nil {
			return fmt.Errorf("failed to save backlog entry: %w", err)
		}

		return nil
	})
}

// GetEntry retrieves the backlog entry for key
func (s *Storage) GetEntry(ctx context.Context, key string) (*storage.BacklogEntry, error) {
	var entry *storage.BacklogEntry

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBacklog)
		if bucket == nil {
			return fmt.Errorf("backlog bucket not found")
		}

		data := bucket.Get([]byte(key))
		if data == nil {
			return storage.ErrBacklogEntryNotFound
		}

		entry = &storage.BacklogEntry{}
		if err := json.Unmarshal(data, entry); err != nil {
			return fmt.Errorf("failed to unmarshal backlog entry: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes the backlog entry for key
func (s *Storage) DeleteEntry(ctx context.Context, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBacklog)
		if bucket == nil {
			return fmt.Errorf("backlog bucket not found")
		}

		if bucket.Get([]byte(key)) == nil {
			return storage.ErrBacklogEntryNotFound
		}

		if err := bucket.Delete([]byte(key)); err != nil {
			return fmt.Errorf("failed to delete backlog entry: %w", err)
		}

		return nil
	})
}

// ListKeys returns all backlog keys matching any of the given prefixes
func (s *Storage) ListKeys(ctx context.Context, prefixes ...string) ([]string, error) {
	var keys []string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBacklog)
		if bucket == nil {
			return fmt.Errorf("backlog bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			key := string(k)
			for _, prefix := range prefixes {
				if strings.HasPrefix(key, prefix) {
					keys = append(keys, key)
					break
				}
			}
			return nil
		})
	})

	if err != nil {
		return nil, err
	}

	return keys, nil
}
