package cli

import (
	"context"
	"encoding/json"
	"fmt"
)

// RunSet records one field change. The value is decoded as JSON when
// possible, so numbers and booleans keep their type; anything else is
// recorded as a plain string.
func (c *Cli) RunSet(ctx context.Context, collection, documentID, fieldName, raw string) error {
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	if err := c.coordinator.RecordFieldChange(ctx, collection, documentID, fieldName, value); err != nil {
		return err
	}

	c.io.Printf("Recorded %s.%s.%s\n", collection, documentID, fieldName)
	return nil
}

// RunGet prints a document. The remote copy is preferred and cached; when
// the remote store is unreachable the cached snapshot is shown instead.
func (c *Cli) RunGet(ctx context.Context, collection, documentID string) error {
	document, err := c.gateway.Read(ctx, collection, documentID)
	if err != nil {
		cached, cacheErr := c.snapshots.GetSnapshot(ctx, collection, documentID)
		if cacheErr != nil {
			return fmt.Errorf("failed to read document: %w", err)
		}
		c.io.Println("(showing cached copy, remote read failed)")
		return c.printDocument(cached)
	}

	if err := c.snapshots.SaveSnapshot(ctx, collection, documentID, document); err != nil {
		// The read itself succeeded, a stale cache is not fatal
		c.io.Printf("warning: failed to cache document: %v\n", err)
	}
	return c.printDocument(document)
}

func (c *Cli) printDocument(document map[string]any) error {
	data, err := json.MarshalIndent(document, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format document: %w", err)
	}
	if _, err := c.io.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
