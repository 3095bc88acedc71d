package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/visaguide/visaguide-client/internal/client/storage"
	"github.com/visaguide/visaguide-client/internal/models"
	"github.com/visaguide/visaguide-client/internal/validation"
)

// DefaultDebounce is the delay between the last edit of a field and its flush
// to the remote store
const DefaultDebounce = 500 * time.Millisecond

// ErrClosed is returned when a change is recorded after Close
var ErrClosed = errors.New("sync coordinator is closed")

// KnownNamespaces are the backlog key prefixes enumerated during reconcile:
// the per-document collections plus the singleton local-state keys.
var KnownNamespaces = []string{
	"forms" + models.KeySeparator,
	"documents" + models.KeySeparator,
	"profile" + models.KeySeparator,
	"users" + models.KeySeparator,
	"formData",
	"progressData",
	"settings",
}

// ReconcileResult contains the outcome of one reconcile pass
type ReconcileResult struct {
	Flushed   int // entries written to the remote store and removed from the backlog
	Remaining int // entries the gateway rejected, left for a later pass
	Skipped   int // entries with payloads that could not be decoded
}

type statusListener struct {
	fn func(status models.SyncStatus, message string)
	id int
}

// Coordinator mediates every field write between the UI and the remote
// store. Rapid edits to the same field are coalesced by a per-key debounce
// timer; writes that fail or arrive while signed out are persisted to the
// local backlog and replayed by Reconcile.
type Coordinator struct {
	gateway  Gateway
	backlog  storage.BacklogStorage
	identity IdentityProvider
	logger   *slog.Logger
	debounce time.Duration

	mu      sync.Mutex
	timers  map[string]*time.Timer
	pending map[string]*models.FieldChange
	closed  bool

	statusMu       sync.Mutex
	status         models.SyncStatus
	statusMsg      string
	listeners      []statusListener
	nextListenerID int

	reconciling atomic.Bool
}

// NewCoordinator creates a new sync coordinator.
// A non-positive debounce selects DefaultDebounce.
func NewCoordinator(gateway Gateway, backlog storage.BacklogStorage, identity IdentityProvider, debounce time.Duration, logger *slog.Logger) *Coordinator {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Coordinator{
		gateway:  gateway,
		backlog:  backlog,
		identity: identity,
		logger:   logger,
		debounce: debounce,
		timers:   make(map[string]*time.Timer),
		pending:  make(map[string]*models.FieldChange),
		status:   models.StatusOffline,
	}
}

// RecordFieldChange registers one field edit. While signed out the change
// goes straight to the backlog with no debounce. While signed in any pending
// timer for the same write-key is cancelled and a new flush is scheduled, so
// only the last value within the debounce window is written.
func (c *Coordinator) RecordFieldChange(ctx context.Context, collection, documentID, fieldName string, value any) error {
	if err := validation.ValidateCollection(collection); err != nil {
		return fmt.Errorf("invalid collection: %w", err)
	}
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document ID: %w", err)
	}
	if err := validation.ValidateFieldName(fieldName); err != nil {
		return fmt.Errorf("invalid field name: %w", err)
	}
	if err := validation.ValidateFieldValue(value); err != nil {
		return fmt.Errorf("invalid field value: %w", err)
	}

	change := &models.FieldChange{
		Timestamp:  time.Now().UTC(),
		Collection: collection,
		DocumentID: documentID,
		FieldName:  fieldName,
		Value:      value,
	}
	key := change.Key()

	identity, err := c.identity.CurrentIdentity(ctx)
	if err != nil {
		c.logger.Warn("failed to resolve identity, treating as signed out", "error", err)
	}
	if identity == nil {
		if err := c.persistToBacklog(ctx, change); err != nil {
			return err
		}
		c.logger.Debug("change recorded to backlog while signed out", "key", key)
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if timer, ok := c.timers[key]; ok {
		timer.Stop()
	}
	c.pending[key] = change
	c.timers[key] = time.AfterFunc(c.debounce, func() {
		c.flush(key)
	})
	c.mu.Unlock()

	// An earlier failed write for this key may still sit in the backlog.
	// Overwrite it now so a reconcile running before the flush replays the
	// latest value instead of the stale one.
	if _, err := c.backlog.GetEntry(ctx, key); err == nil {
		if perr := c.persistToBacklog(ctx, change); perr != nil {
			c.logger.Warn("failed to supersede backlog entry", "key", key, "error", perr)
		}
	}

	c.setStatus(models.StatusSyncing, "")
	return nil
}

// flush writes the pending change for key to the remote store. On failure
// the exact value that failed is persisted to the backlog and the status
// turns to Error.
func (c *Coordinator) flush(key string) {
	c.mu.Lock()
	change, ok := c.pending[key]
	delete(c.pending, key)
	delete(c.timers, key)
	closed := c.closed
	c.mu.Unlock()

	if !ok || closed {
		return
	}

	ctx := context.Background()
	if err := c.gateway.Write(ctx, change.Collection, change.DocumentID, writeFields(change)); err != nil {
		c.logger.Warn("flush failed", "key", key, "error", err)
		if perr := c.persistToBacklog(ctx, change); perr != nil {
			c.logger.Error("failed to persist change to backlog", "key", key, "error", perr)
		}
		c.setStatus(models.StatusError, "Sync failed")
		return
	}

	// The write is confirmed, any backlog entry for this key is now stale
	if err := c.backlog.DeleteEntry(ctx, key); err != nil && !errors.Is(err, storage.ErrBacklogEntryNotFound) {
		c.logger.Warn("failed to delete backlog entry after flush", "key", key, "error", err)
	}

	c.logger.Debug("flushed field change", "key", key)
	c.setStatus(models.StatusSynced, "")
}

// Reconcile replays the backlog against the remote store. Entries are
// independent and processed in arbitrary order; a per-entry failure leaves
// that entry in place and never aborts the batch. A call while a prior pass
// is still in flight is a no-op returning (nil, nil).
func (c *Coordinator) Reconcile(ctx context.Context) (*ReconcileResult, error) {
	if !c.reconciling.CompareAndSwap(false, true) {
		c.logger.Debug("reconcile already in progress")
		return nil, nil
	}
	defer c.reconciling.Store(false)

	c.setStatus(models.StatusSyncing, "")

	keys, err := c.backlog.ListKeys(ctx, KnownNamespaces...)
	if err != nil {
		c.setStatus(models.StatusError, "Sync failed")
		return nil, fmt.Errorf("failed to list backlog keys: %w", err)
	}

	c.logger.Info("starting reconcile", "entries", len(keys))

	result := &ReconcileResult{}
	for _, key := range keys {
		entry, err := c.backlog.GetEntry(ctx, key)
		if err != nil {
			if errors.Is(err, storage.ErrBacklogEntryNotFound) {
				// flushed concurrently, nothing left to replay
				continue
			}
			c.logger.Warn("failed to load backlog entry", "key", key, "error", err)
			result.Skipped++
			continue
		}

		var payload models.BacklogPayload
		if err := json.Unmarshal(entry.Payload, &payload); err != nil || payload.Collection == "" || payload.DocumentID == "" {
			c.logger.Warn("skipping malformed backlog entry", "key", key, "error", err)
			result.Skipped++
			continue
		}

		if err := c.gateway.Write(ctx, payload.Collection, payload.DocumentID, payload.Fields); err != nil {
			c.logger.Warn("failed to replay backlog entry", "key", key, "error", err)
			result.Remaining++
			continue
		}

		if err := c.backlog.DeleteEntry(ctx, key); err != nil && !errors.Is(err, storage.ErrBacklogEntryNotFound) {
			c.logger.Warn("failed to delete replayed entry", "key", key, "error", err)
		}
		result.Flushed++
	}

	c.logger.Info("reconcile completed",
		"flushed", result.Flushed,
		"remaining", result.Remaining,
		"skipped", result.Skipped)

	pending := result.Remaining + result.Skipped
	if pending == 0 {
		c.setStatus(models.StatusSynced, "")
	} else {
		c.setStatus(models.StatusError, fmt.Sprintf("%d changes still pending", pending))
	}

	return result, nil
}

// HandleIdentityChanged reacts to login and logout. Identity loss cancels
// all pending timers without flushing and turns the status Offline. Identity
// gain starts a background reconcile of the backlog.
func (c *Coordinator) HandleIdentityChanged(identity *models.Identity) {
	if identity == nil {
		c.cancelTimers()
		c.setStatus(models.StatusOffline, "")
		return
	}

	c.setStatus(models.StatusSyncing, "")
	go func() {
		if _, err := c.Reconcile(context.Background()); err != nil {
			c.logger.Warn("reconcile after login failed", "error", err)
		}
	}()
}

// PendingBacklogCount returns the number of backlog entries awaiting reconcile
func (c *Coordinator) PendingBacklogCount(ctx context.Context) (int, error) {
	keys, err := c.backlog.ListKeys(ctx, KnownNamespaces...)
	if err != nil {
		return 0, fmt.Errorf("failed to list backlog keys: %w", err)
	}
	return len(keys), nil
}

// Status returns the current sync status and its optional message
func (c *Coordinator) Status() (models.SyncStatus, string) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()
	return c.status, c.statusMsg
}

// AddStatusListener registers a callback fired on every status set, in
// registration order, including re-entries into the same state. The returned
// id removes the listener via RemoveStatusListener.
func (c *Coordinator) AddStatusListener(fn func(status models.SyncStatus, message string)) int {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()

	id := c.nextListenerID
	c.nextListenerID++
	c.listeners = append(c.listeners, statusListener{id: id, fn: fn})
	return id
}

// RemoveStatusListener removes a listener by its registration id
func (c *Coordinator) RemoveStatusListener(id int) {
	c.statusMu.Lock()
	defer c.statusMu.Unlock()

	for i, l := range c.listeners {
		if l.id == id {
			c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
			return
		}
	}
}

// ReportStatus publishes a status change on behalf of a collaborator, for
// example the upload service feeding its outcomes into the same channel.
func (c *Coordinator) ReportStatus(status models.SyncStatus, message string) {
	c.setStatus(status, message)
}

// Close cancels all pending debounce timers without flushing. Edits recorded
// within the last debounce window are lost, earlier failures are already in
// the backlog.
func (c *Coordinator) Close() {
	c.cancelTimers()
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()
}

func (c *Coordinator) cancelTimers() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, timer := range c.timers {
		timer.Stop()
	}
	c.timers = make(map[string]*time.Timer)
	c.pending = make(map[string]*models.FieldChange)
}

// setStatus records the new status and notifies listeners synchronously in
// registration order. A panicking listener never prevents the remaining
// listeners from running.
func (c *Coordinator) setStatus(status models.SyncStatus, message string) {
	c.statusMu.Lock()
	c.status = status
	c.statusMsg = message
	listeners := make([]statusListener, len(c.listeners))
	copy(listeners, c.listeners)
	c.statusMu.Unlock()

	for _, l := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					c.logger.Warn("status listener panicked", "panic", r)
				}
			}()
			l.fn(status, message)
		}()
	}
}

func (c *Coordinator) persistToBacklog(ctx context.Context, change *models.FieldChange) error {
	payload := models.BacklogPayload{
		LastUpdated: change.Timestamp,
		Collection:  change.Collection,
		DocumentID:  change.DocumentID,
		Fields:      writeFields(change),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode backlog payload: %w", err)
	}
	if err := c.backlog.PutEntry(ctx, change.Key(), data); err != nil {
		return fmt.Errorf("failed to persist backlog entry: %w", err)
	}
	return nil
}

// writeFields builds the partial update for one field change. The document's
// lastUpdated stamp rides along with every write.
func writeFields(change *models.FieldChange) map[string]any {
	return map[string]any{
		change.FieldName: change.Value,
		"lastUpdated":    change.Timestamp.Format(time.RFC3339),
	}
}
