package models

// SyncStatus is the process-wide synchronization state surfaced to the user.
// It is mutated only by the sync coordinator and observed through status
// listeners.
type SyncStatus int

const (
	// StatusOffline means no authenticated identity or no connectivity
	StatusOffline SyncStatus = iota
	// StatusSyncing means a flush or reconciliation attempt is in progress
	StatusSyncing
	// StatusSynced means the last flush succeeded and the backlog is empty
	StatusSynced
	// StatusError means the last flush or reconciliation attempt failed
	StatusError
)

// String returns the human-readable status name
func (s SyncStatus) String() string {
	switch s {
	case StatusOffline:
		return "offline"
	case StatusSyncing:
		return "syncing"
	case StatusSynced:
		return "synced"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}
