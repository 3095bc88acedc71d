package uploads

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/visaguide/visaguide-client/internal/models"
	"github.com/visaguide/visaguide-client/internal/validation"
	pkgapi "github.com/visaguide/visaguide-client/pkg/api"
)

//go:generate moq -out uploader_mock.go . Uploader

// Uploader is the blob-transfer subset of the backend client
type Uploader interface {
	UploadBlob(ctx context.Context, ownerID, category, filename string, content io.Reader) (*pkgapi.UploadResponse, error)
	DeleteBlob(ctx context.Context, path string) error
}

//go:generate moq -out reporter_mock.go . StatusReporter

// StatusReporter publishes upload outcomes on the shared sync status channel
type StatusReporter interface {
	ReportStatus(status models.SyncStatus, message string)
}

//go:generate moq -out recorder_mock.go . FieldRecorder

// FieldRecorder records document field changes through the sync coordinator
type FieldRecorder interface {
	RecordFieldChange(ctx context.Context, collection, documentID, fieldName string, value any) error
}

// Service uploads supporting documents and records their stored location on
// a document record. Upload outcomes feed the same status notifications as
// field writes.
type Service struct {
	uploader Uploader
	status   StatusReporter
	recorder FieldRecorder
	logger   *slog.Logger
}

// NewService creates a new upload service
func NewService(uploader Uploader, status StatusReporter, recorder FieldRecorder, logger *slog.Logger) *Service {
	return &Service{
		uploader: uploader,
		status:   status,
		recorder: recorder,
		logger:   logger,
	}
}

// Result describes a completed upload
type Result struct {
	DocumentID string // identifier of the created document record
	URL        string // public download URL
	Path       string // storage path, used for deletion
}

// Upload validates and uploads one supporting document. Validation failures
// are rejected before any network or backlog write. The stored url and path
// are recorded as field changes on a new record in the documents collection.
func (s *Service) Upload(ctx context.Context, ownerID, category, filename string, size int64, content io.Reader) (*Result, error) {
	if err := validation.ValidateUploadCategory(category); err != nil {
		return nil, fmt.Errorf("invalid category: %w", err)
	}
	if err := validation.ValidateUploadFile(filename, size); err != nil {
		return nil, fmt.Errorf("invalid file: %w", err)
	}

	s.status.ReportStatus(models.StatusSyncing, "")

	resp, err := s.uploader.UploadBlob(ctx, ownerID, category, filepath.Base(filename), content)
	if err != nil {
		s.status.ReportStatus(models.StatusError, "Upload failed")
		return nil, fmt.Errorf("upload failed: %w", err)
	}

	documentID := uuid.New().String()
	fields := map[string]any{
		"ownerId":  ownerID,
		"category": category,
		"fileName": filepath.Base(filename),
		"url":      resp.URL,
		"path":     resp.Path,
	}
	for name, value := range fields {
		if err := s.recorder.RecordFieldChange(ctx, "documents", documentID, name, value); err != nil {
			s.logger.Warn("failed to record upload field",
				"document_id", documentID,
				"field", name,
				"error", err)
		}
	}

	s.logger.Info("uploaded supporting document",
		"document_id", documentID,
		"category", category,
		"path", resp.Path)
	s.status.ReportStatus(models.StatusSynced, "")

	return &Result{
		DocumentID: documentID,
		URL:        resp.URL,
		Path:       resp.Path,
	}, nil
}

// Delete removes an uploaded supporting document by its storage path
func (s *Service) Delete(ctx context.Context, path string) error {
	s.status.ReportStatus(models.StatusSyncing, "")

	if err := s.uploader.DeleteBlob(ctx, path); err != nil {
		s.status.ReportStatus(models.StatusError, "Delete failed")
		return fmt.Errorf("delete failed: %w", err)
	}

	s.status.ReportStatus(models.StatusSynced, "")
	return nil
}
