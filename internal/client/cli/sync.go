package cli

import (
	"context"
)

// RunSync replays the offline backlog against the remote store and prints
// the outcome
func (c *Cli) RunSync(ctx context.Context) error {
	c.io.Println("Replaying pending offline changes...")

	result, err := c.coordinator.Reconcile(ctx)
	if err != nil {
		return err
	}
	if result == nil {
		c.io.Println("A sync is already in progress")
		return nil
	}

	if result.Flushed == 0 && result.Remaining == 0 && result.Skipped == 0 {
		c.io.Println("Nothing to sync, all changes are on the server")
		return nil
	}

	c.io.Printf("Pushed to server:  %d changes\n", result.Flushed)
	if result.Remaining > 0 {
		c.io.Printf("Still pending:     %d changes (will retry on next sync)\n", result.Remaining)
	}
	if result.Skipped > 0 {
		c.io.Printf("Skipped (errors):  %d changes\n", result.Skipped)
	}
	return nil
}
