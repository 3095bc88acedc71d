package cli

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/visaguide/visaguide-client/internal/models"
)

var (
	statusSynced  = color.New(color.FgGreen).SprintFunc()
	statusSyncing = color.New(color.FgYellow).SprintFunc()
	statusOffline = color.New(color.Faint).SprintFunc()
	statusError   = color.New(color.FgRed).SprintFunc()
)

// RunLogin signs the user in. An empty email triggers an interactive prompt;
// the password is always read without echo.
func (c *Cli) RunLogin(ctx context.Context, email string) error {
	var err error
	if email == "" {
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	identity, err := c.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}

	c.io.Printf("Signed in as %s\n", identity.Email)

	count, err := c.coordinator.PendingBacklogCount(ctx)
	if err == nil && count > 0 {
		c.io.Printf("%d offline changes pending, run 'visaguide sync' to push them\n", count)
	}
	return nil
}

// RunLogout signs the user out
func (c *Cli) RunLogout(ctx context.Context) error {
	if err := c.auth.Logout(ctx); err != nil {
		return err
	}
	c.io.Println("Signed out")
	return nil
}

// RunStatus prints the authentication state, the sync status and the number
// of pending offline changes
func (c *Cli) RunStatus(ctx context.Context) error {
	identity, err := c.auth.CurrentIdentity(ctx)
	if err != nil {
		return fmt.Errorf("failed to read session: %w", err)
	}

	if identity == nil {
		c.io.Println("Auth: signed out")
	} else {
		c.io.Printf("Auth: signed in as %s (session expires %s)\n",
			identity.Email, identity.ExpiresAt.Format("2006-01-02 15:04"))
	}

	status, message := c.coordinator.Status()
	c.io.Printf("Sync: %s", renderStatus(status))
	if message != "" {
		c.io.Printf(" (%s)", message)
	}
	c.io.Println("")

	count, err := c.coordinator.PendingBacklogCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending changes: %w", err)
	}
	c.io.Printf("Pending offline changes: %d\n", count)
	return nil
}

func renderStatus(status models.SyncStatus) string {
	switch status {
	case models.StatusSynced:
		return statusSynced(status.String())
	case models.StatusSyncing:
		return statusSyncing(status.String())
	case models.StatusError:
		return statusError(status.String())
	default:
		return statusOffline(status.String())
	}
}
