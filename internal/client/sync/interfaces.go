package sync

import (
	"context"

	"github.com/visaguide/visaguide-client/internal/models"
)

//go:generate moq -out gateway_mock.go . Gateway

// Gateway is the narrow contract to the remote document store. Write is a
// merge-style partial update: fields absent from the map are never clobbered.
// Subscribe delivers the full current snapshot on every remote change,
// including the initial state; each callback is a full-state replacement.
type Gateway interface {
	// Write merges fields into the remote document
	Write(ctx context.Context, collection, documentID string, fields map[string]any) error

	// Read fetches the full remote document.
	// Returns models.ErrDocumentNotFound when the document does not exist.
	Read(ctx context.Context, collection, documentID string) (map[string]any, error)

	// Subscribe watches the remote document. The returned function stops
	// the subscription.
	Subscribe(ctx context.Context, collection, documentID string, fn func(document map[string]any)) (func(), error)
}

//go:generate moq -out identity_mock.go . IdentityProvider

// IdentityProvider reports the currently authenticated user.
// A nil identity with a nil error means signed out.
type IdentityProvider interface {
	CurrentIdentity(ctx context.Context) (*models.Identity, error)
}
