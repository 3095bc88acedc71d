package cli

import (
	"fmt"

	"github.com/visaguide/visaguide-client/internal/client/auth"
	"github.com/visaguide/visaguide-client/internal/client/iocli"
	"github.com/visaguide/visaguide-client/internal/client/storage"
	"github.com/visaguide/visaguide-client/internal/client/sync"
	"github.com/visaguide/visaguide-client/internal/client/uploads"
)

// Cli dispatches terminal commands to the client services
type Cli struct {
	io          iocli.IO
	auth        *auth.Service
	coordinator *sync.Coordinator
	uploads     *uploads.Service
	gateway     sync.Gateway
	snapshots   storage.SnapshotStorage
}

func New(io iocli.IO, authService *auth.Service, coordinator *sync.Coordinator, uploadService *uploads.Service, gateway sync.Gateway, snapshots storage.SnapshotStorage) *Cli {
	return &Cli{
		io:          io,
		auth:        authService,
		coordinator: coordinator,
		uploads:     uploadService,
		gateway:     gateway,
		snapshots:   snapshots,
	}
}

func PrintUsage() {
	fmt.Println("Visa Guide Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  visaguide [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: visaguide-client.db)")
	fmt.Println("  --debounce DUR   Delay before a field edit is written (default: 500ms)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login [email]                       Sign in")
	fmt.Println("  logout                              Sign out")
	fmt.Println("  status                              Show auth and sync status")
	fmt.Println("  set <collection> <id> <field> <value>  Record a field change")
	fmt.Println("  get <collection> <id>               Read a document (cached copy when offline)")
	fmt.Println("  sync                                Replay pending offline changes")
	fmt.Println("  upload <category> <file>            Upload a supporting document")
	fmt.Println("  watch <collection> <id>             Watch a document for remote changes")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  visaguide login ana@example.com")
	fmt.Println("  visaguide set users u1 firstName Ana")
	fmt.Println("  visaguide get forms visa-application")
	fmt.Println("  visaguide upload passport ~/Documents/passport.pdf")
	fmt.Println("  visaguide sync")
	fmt.Println("  visaguide --server https://api.example.com status")
}
