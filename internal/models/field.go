package models

import (
	"errors"
	"time"
)

// KeySeparator joins the parts of a write key.
// A write key uniquely identifies one pending field write.
const KeySeparator = "|"

// ErrDocumentNotFound indicates that the remote document does not exist
var ErrDocumentNotFound = errors.New("document not found")

// FieldChange represents one pending write of a single document field.
// Changes to the same write key supersede each other: only the most recent
// value within a debounce window is ever flushed.
type FieldChange struct {
	Timestamp  time.Time `json:"timestamp"`   // Timestamp when the change was recorded
	Collection string    `json:"collection"`  // Collection remote collection name ("forms", "profile", ...)
	DocumentID string    `json:"document_id"` // DocumentID remote document identifier
	FieldName  string    `json:"field_name"`  // FieldName name of the changed field
	Value      any       `json:"value"`       // Value new field value (must be JSON-encodable)
}

// Key returns the write key "collection|documentId|fieldName" that
// deduplicates pending writes for the same field.
func (c *FieldChange) Key() string {
	return c.Collection + KeySeparator + c.DocumentID + KeySeparator + c.FieldName
}

// BacklogPayload is the JSON document persisted in the local backlog for a
// write that could not reach the remote store. It carries everything needed
// to replay the write later.
type BacklogPayload struct {
	LastUpdated time.Time      `json:"last_updated"` // LastUpdated timestamp of the superseding change
	Collection  string         `json:"collection"`   // Collection remote collection name
	DocumentID  string         `json:"document_id"`  // DocumentID remote document identifier
	Fields      map[string]any `json:"fields"`       // Fields partial update to replay
}

// Identity describes the currently authenticated user as seen by the client.
type Identity struct {
	ExpiresAt   time.Time // ExpiresAt access token expiry
	UserID      string    // UserID backend user identifier (JWT subject)
	Email       string    // Email account email
	AccessToken string    // AccessToken bearer token for gateway calls
}
