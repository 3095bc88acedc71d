package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCollection(t *testing.T) {
	tests := []struct {
		name       string
		collection string
		wantErr    bool
		errMsg     string
	}{
		{name: "valid - forms", collection: "forms"},
		{name: "valid - documents", collection: "documents"},
		{name: "valid - profile", collection: "profile"},
		{name: "valid - users", collection: "users"},
		{
			name:       "invalid - empty",
			collection: "",
			wantErr:    true,
			errMsg:     "collection cannot be empty",
		},
		{
			name:       "invalid - unknown collection",
			collection: "secrets",
			wantErr:    true,
			errMsg:     "unknown collection",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCollection(tt.collection)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFieldName(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		wantErr bool
	}{
		{name: "valid - simple", field: "firstName"},
		{name: "valid - with underscore", field: "first_name"},
		{name: "valid - nested path", field: "address.city"},
		{name: "valid - with digits", field: "line2"},
		{name: "invalid - empty", field: "", wantErr: true},
		{name: "invalid - starts with digit", field: "2ndLine", wantErr: true},
		{name: "invalid - contains space", field: "first name", wantErr: true},
		{name: "invalid - too long", field: "a" + strings.Repeat("b", 64), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFieldName(tt.field)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateFieldValue(t *testing.T) {
	assert.NoError(t, ValidateFieldValue("Ana"))
	assert.NoError(t, ValidateFieldValue(42))
	assert.NoError(t, ValidateFieldValue(map[string]any{"city": "Lisbon"}))
	assert.NoError(t, ValidateFieldValue(nil))

	// Channels cannot be marshaled to JSON
	err := ValidateFieldValue(make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not JSON-encodable")

	// Oversized values are rejected before any write attempt
	err = ValidateFieldValue(strings.Repeat("x", MaxFieldValueBytes+1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds")
}

func TestValidateUploadFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
		errMsg   string
	}{
		{name: "valid - pdf", filename: "passport.pdf", size: 1024},
		{name: "valid - jpeg uppercase ext", filename: "photo.JPG", size: 2048},
		{name: "valid - png", filename: "scan.png", size: MaxUploadBytes},
		{
			name:     "invalid - empty name",
			filename: "",
			size:     10,
			wantErr:  true,
			errMsg:   "file name cannot be empty",
		},
		{
			name:     "invalid - unsupported type",
			filename: "virus.exe",
			size:     10,
			wantErr:  true,
			errMsg:   "unsupported file type",
		},
		{
			name:     "invalid - no extension",
			filename: "passport",
			size:     10,
			wantErr:  true,
			errMsg:   "unsupported file type",
		},
		{
			name:     "invalid - empty file",
			filename: "passport.pdf",
			size:     0,
			wantErr:  true,
			errMsg:   "file is empty",
		},
		{
			name:     "invalid - too large",
			filename: "passport.pdf",
			size:     MaxUploadBytes + 1,
			wantErr:  true,
			errMsg:   "exceeds",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUploadFile(tt.filename, tt.size)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("ana@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("two@@example.com"))
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("longenough"))
	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("short"))
}
