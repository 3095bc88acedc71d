package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFieldChange_Key(t *testing.T) {
	change := &FieldChange{
		Collection: "users",
		DocumentID: "u1",
		FieldName:  "firstName",
		Value:      "Ana",
		Timestamp:  time.Now(),
	}

	assert.Equal(t, "users|u1|firstName", change.Key())
}

func TestSyncStatus_String(t *testing.T) {
	assert.Equal(t, "offline", StatusOffline.String())
	assert.Equal(t, "syncing", StatusSyncing.String())
	assert.Equal(t, "synced", StatusSynced.String())
	assert.Equal(t, "error", StatusError.String())
	assert.Equal(t, "unknown", SyncStatus(42).String())
}
