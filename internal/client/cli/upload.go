package cli

import (
	"context"
	"fmt"
	"os"
)

// RunUpload uploads one supporting document for the signed-in user
func (c *Cli) RunUpload(ctx context.Context, category, path string) error {
	identity, err := c.auth.CurrentIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}
	if identity == nil {
		return fmt.Errorf("not signed in, run 'visaguide login' first")
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	result, err := c.uploads.Upload(ctx, identity.UserID, category, path, info.Size(), file)
	if err != nil {
		return err
	}

	c.io.Printf("Uploaded %s\n", path)
	c.io.Printf("  document: %s\n", result.DocumentID)
	c.io.Printf("  url:      %s\n", result.URL)
	return nil
}
