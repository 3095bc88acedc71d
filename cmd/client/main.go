package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/visaguide/visaguide-client/internal/client/api"
	"github.com/visaguide/visaguide-client/internal/client/auth"
	"github.com/visaguide/visaguide-client/internal/client/cli"
	"github.com/visaguide/visaguide-client/internal/client/iocli"
	"github.com/visaguide/visaguide-client/internal/client/storage/boltdb"
	"github.com/visaguide/visaguide-client/internal/client/sync"
	"github.com/visaguide/visaguide-client/internal/client/uploads"
	"github.com/visaguide/visaguide-client/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Optional .env file with defaults, flags take precedence
	_ = godotenv.Load()

	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", envOr("VISAGUIDE_SERVER", "http://localhost:8080"), "Server URL")
	dbPath := flag.String("db", envOr("VISAGUIDE_DB", "visaguide-client.db"), "Path to local database")
	debounce := flag.Duration("debounce", sync.DefaultDebounce, "Delay before a field edit is written")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}
	command := args[0]

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	boltStorage, err := boltdb.New(ctx, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	deviceKey, err := auth.LoadOrCreateDeviceKey(deviceSecretPath(*dbPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load device secret: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(*serverURL, logger)
	authService := auth.NewService(apiClient, boltStorage, deviceKey, logger)
	apiClient.SetTokenSource(authService)

	coordinator := sync.NewCoordinator(apiClient, boltStorage, authService, *debounce, logger)
	defer coordinator.Close()

	authService.OnIdentityChanged(coordinator.HandleIdentityChanged)
	coordinator.AddStatusListener(func(status models.SyncStatus, message string) {
		logger.Debug("sync status changed", "status", status.String(), "message", message)
	})

	uploadService := uploads.NewService(apiClient, coordinator, coordinator, logger)
	c := cli.New(iocli.NewStdio(), authService, coordinator, uploadService, apiClient, boltStorage)

	if err := run(ctx, c, command, args[1:], *debounce); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, c *cli.Cli, command string, args []string, debounce time.Duration) error {
	switch command {
	case "login":
		email := ""
		if len(args) > 0 {
			email = args[0]
		}
		return c.RunLogin(ctx, email)
	case "logout":
		return c.RunLogout(ctx)
	case "status":
		return c.RunStatus(ctx)
	case "set":
		if len(args) < 4 {
			return fmt.Errorf("usage: set <collection> <id> <field> <value>")
		}
		if err := c.RunSet(ctx, args[0], args[1], args[2], args[3]); err != nil {
			return err
		}
		// Give the debounced flush a chance to run before the process exits
		time.Sleep(2 * debounce)
		return nil
	case "get":
		if len(args) < 2 {
			return fmt.Errorf("usage: get <collection> <id>")
		}
		return c.RunGet(ctx, args[0], args[1])
	case "sync":
		return c.RunSync(ctx)
	case "upload":
		if len(args) < 2 {
			return fmt.Errorf("usage: upload <category> <file>")
		}
		return c.RunUpload(ctx, args[0], args[1])
	case "watch":
		if len(args) < 2 {
			return fmt.Errorf("usage: watch <collection> <id>")
		}
		return c.RunWatch(ctx, args[0], args[1])
	default:
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// deviceSecretPath keeps the device secret next to the local database
func deviceSecretPath(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), ".visaguide-device.json")
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func printVersion() {
	fmt.Printf("Visa Guide Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
