package validation

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

// FieldNamePattern defines the accepted field name format: a letter followed
// by letters, digits, underscores or dots. Length: 1-64 characters.
var FieldNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_.]{0,63}$`)

// DocumentIDPattern defines the accepted document identifier format
var DocumentIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,128}$`)

const (
	// MaxFieldValueBytes is the maximum JSON-encoded size of a single field value
	MaxFieldValueBytes = 256 * 1024
	// MaxUploadBytes is the maximum size of a supporting-document upload
	MaxUploadBytes = 10 * 1024 * 1024
)

// collections that the backend serves field writes for
var knownCollections = map[string]bool{
	"forms":     true,
	"documents": true,
	"profile":   true,
	"users":     true,
}

// categories of supporting documents accepted for upload
var knownUploadCategories = map[string]bool{
	"passport":   true,
	"photo":      true,
	"financial":  true,
	"education":  true,
	"employment": true,
	"other":      true,
}

// file extensions accepted for supporting-document uploads
var allowedUploadExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateCollection checks that the collection name is one the backend serves
func ValidateCollection(collection string) error {
	if collection == "" {
		return fmt.Errorf("collection cannot be empty")
	}
	if !knownCollections[collection] {
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}

// ValidateDocumentID checks that the document identifier is well-formed
func ValidateDocumentID(id string) error {
	if id == "" {
		return fmt.Errorf("document id cannot be empty")
	}
	if !DocumentIDPattern.MatchString(id) {
		return fmt.Errorf("document id can only contain letters, numbers, hyphens and underscores (max 128 characters)")
	}
	return nil
}

// ValidateFieldName checks that the field name is well-formed
func ValidateFieldName(name string) error {
	if name == "" {
		return fmt.Errorf("field name cannot be empty")
	}
	if !FieldNamePattern.MatchString(name) {
		return fmt.Errorf("field name must start with a letter and contain only letters, numbers, underscores and dots (max 64 characters)")
	}
	return nil
}

// ValidateFieldValue checks that the value can be carried in a partial update:
// it must be JSON-encodable and within the size limit. Malformed values are
// rejected before any write attempt and never enter the backlog.
func ValidateFieldValue(value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("value is not JSON-encodable: %w", err)
	}
	if len(data) > MaxFieldValueBytes {
		return fmt.Errorf("value exceeds %d bytes", MaxFieldValueBytes)
	}
	return nil
}

// ValidateUploadCategory checks that the supporting-document category is known
func ValidateUploadCategory(category string) error {
	if category == "" {
		return fmt.Errorf("upload category cannot be empty")
	}
	if !knownUploadCategories[category] {
		return fmt.Errorf("unknown upload category %q", category)
	}
	return nil
}

// ValidateUploadFile checks the file name and size of a supporting-document
// upload before any bytes are sent
func ValidateUploadFile(filename string, size int64) error {
	if filename == "" {
		return fmt.Errorf("file name cannot be empty")
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedUploadExtensions[ext] {
		return fmt.Errorf("unsupported file type %q (allowed: pdf, jpg, jpeg, png)", ext)
	}
	if size <= 0 {
		return fmt.Errorf("file is empty")
	}
	if size > MaxUploadBytes {
		return fmt.Errorf("file exceeds %d bytes", MaxUploadBytes)
	}
	return nil
}
