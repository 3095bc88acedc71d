package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// RunWatch subscribes to a document and prints every snapshot until the
// context is cancelled. Snapshots are cached for offline reads.
func (c *Cli) RunWatch(ctx context.Context, collection, documentID string) error {
	c.io.Printf("Watching %s/%s (Ctrl+C to stop)\n", collection, documentID)

	cancel, err := c.gateway.Subscribe(ctx, collection, documentID, func(document map[string]any) {
		stamp := time.Now().Format("15:04:05")
		if document == nil {
			c.io.Printf("[%s] document does not exist\n", stamp)
			return
		}
		data, err := json.MarshalIndent(document, "", "  ")
		if err != nil {
			c.io.Printf("[%s] failed to format snapshot: %v\n", stamp, err)
			return
		}
		c.io.Printf("[%s]\n%s\n", stamp, data)

		if err := c.snapshots.SaveSnapshot(ctx, collection, documentID, document); err != nil {
			c.io.Printf("warning: failed to cache snapshot: %v\n", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	defer cancel()

	<-ctx.Done()
	c.io.Println("\nStopped watching")
	return nil
}
