package uploads

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visaguide/visaguide-client/internal/models"
	"github.com/visaguide/visaguide-client/internal/validation"
	pkgapi "github.com/visaguide/visaguide-client/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func acceptingMocks() (*UploaderMock, *StatusReporterMock, *FieldRecorderMock) {
	uploader := &UploaderMock{
		UploadBlobFunc: func(ctx context.Context, ownerID, category, filename string, content io.Reader) (*pkgapi.UploadResponse, error) {
			return &pkgapi.UploadResponse{
				URL:  "https://cdn.example.com/" + ownerID + "/" + category + "/" + filename,
				Path: ownerID + "/" + category + "/" + filename,
			}, nil
		},
		DeleteBlobFunc: func(ctx context.Context, path string) error {
			return nil
		},
	}
	reporter := &StatusReporterMock{
		ReportStatusFunc: func(status models.SyncStatus, message string) {},
	}
	recorder := &FieldRecorderMock{
		RecordFieldChangeFunc: func(ctx context.Context, collection, documentID, fieldName string, value any) error {
			return nil
		},
	}
	return uploader, reporter, recorder
}

func TestUpload(t *testing.T) {
	uploader, reporter, recorder := acceptingMocks()
	svc := NewService(uploader, reporter, recorder, testLogger())

	result, err := svc.Upload(context.Background(), "user-123", "passport", "passport.pdf", 1024,
		strings.NewReader("%PDF-1.4 fake content"))

	require.NoError(t, err)
	assert.NotEmpty(t, result.DocumentID)
	assert.Equal(t, "user-123/passport/passport.pdf", result.Path)
	assert.Equal(t, "https://cdn.example.com/user-123/passport/passport.pdf", result.URL)

	// The stored location lands on a document record through the recorder
	calls := recorder.RecordFieldChangeCalls()
	require.NotEmpty(t, calls)
	recorded := map[string]any{}
	for _, call := range calls {
		assert.Equal(t, "documents", call.Collection)
		assert.Equal(t, result.DocumentID, call.DocumentID)
		recorded[call.FieldName] = call.Value
	}
	assert.Equal(t, result.URL, recorded["url"])
	assert.Equal(t, result.Path, recorded["path"])
	assert.Equal(t, "passport", recorded["category"])

	// Outcome is reported as Syncing then Synced
	statuses := reporter.ReportStatusCalls()
	require.Len(t, statuses, 2)
	assert.Equal(t, models.StatusSyncing, statuses[0].Status)
	assert.Equal(t, models.StatusSynced, statuses[1].Status)
}

func TestUpload_StripsDirectoryFromFilename(t *testing.T) {
	uploader, reporter, recorder := acceptingMocks()
	svc := NewService(uploader, reporter, recorder, testLogger())

	_, err := svc.Upload(context.Background(), "user-123", "photo", "/home/ana/photos/me.jpg", 2048,
		strings.NewReader("jpeg bytes"))

	require.NoError(t, err)
	require.Len(t, uploader.UploadBlobCalls(), 1)
	assert.Equal(t, "me.jpg", uploader.UploadBlobCalls()[0].Filename)
}

func TestUpload_InvalidCategory(t *testing.T) {
	uploader, reporter, recorder := acceptingMocks()
	svc := NewService(uploader, reporter, recorder, testLogger())

	_, err := svc.Upload(context.Background(), "user-123", "memes", "passport.pdf", 1024,
		strings.NewReader("content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid category")

	// A rejected upload never reaches the network or the status channel
	assert.Empty(t, uploader.UploadBlobCalls())
	assert.Empty(t, reporter.ReportStatusCalls())
	assert.Empty(t, recorder.RecordFieldChangeCalls())
}

func TestUpload_UnsupportedExtension(t *testing.T) {
	uploader, reporter, recorder := acceptingMocks()
	svc := NewService(uploader, reporter, recorder, testLogger())

	_, err := svc.Upload(context.Background(), "user-123", "passport", "malware.exe", 1024,
		strings.NewReader("content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file")
	assert.Empty(t, uploader.UploadBlobCalls())
}

func TestUpload_TooLarge(t *testing.T) {
	uploader, _, recorder := acceptingMocks()
	reporter := &StatusReporterMock{
		ReportStatusFunc: func(status models.SyncStatus, message string) {},
	}
	svc := NewService(uploader, reporter, recorder, testLogger())

	_, err := svc.Upload(context.Background(), "user-123", "passport", "passport.pdf",
		validation.MaxUploadBytes+1, strings.NewReader("content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file")
	assert.Empty(t, uploader.UploadBlobCalls())
}

func TestUpload_GatewayFailure(t *testing.T) {
	_, reporter, recorder := acceptingMocks()
	uploader := &UploaderMock{
		UploadBlobFunc: func(ctx context.Context, ownerID, category, filename string, content io.Reader) (*pkgapi.UploadResponse, error) {
			return nil, fmt.Errorf("server error (503): backend unavailable")
		},
	}
	svc := NewService(uploader, reporter, recorder, testLogger())

	_, err := svc.Upload(context.Background(), "user-123", "passport", "passport.pdf", 1024,
		strings.NewReader("content"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload failed")

	statuses := reporter.ReportStatusCalls()
	require.Len(t, statuses, 2)
	assert.Equal(t, models.StatusSyncing, statuses[0].Status)
	assert.Equal(t, models.StatusError, statuses[1].Status)
	assert.Equal(t, "Upload failed", statuses[1].Message)

	assert.Empty(t, recorder.RecordFieldChangeCalls())
}

func TestDelete(t *testing.T) {
	uploader, reporter, recorder := acceptingMocks()
	svc := NewService(uploader, reporter, recorder, testLogger())

	require.NoError(t, svc.Delete(context.Background(), "user-123/passport/passport.pdf"))

	require.Len(t, uploader.DeleteBlobCalls(), 1)
	assert.Equal(t, "user-123/passport/passport.pdf", uploader.DeleteBlobCalls()[0].Path)

	statuses := reporter.ReportStatusCalls()
	require.Len(t, statuses, 2)
	assert.Equal(t, models.StatusSynced, statuses[1].Status)
}

func TestDelete_Failure(t *testing.T) {
	_, reporter, recorder := acceptingMocks()
	uploader := &UploaderMock{
		DeleteBlobFunc: func(ctx context.Context, path string) error {
			return fmt.Errorf("server error (404): not found")
		},
	}
	svc := NewService(uploader, reporter, recorder, testLogger())

	err := svc.Delete(context.Background(), "user-123/passport/missing.pdf")

	require.Error(t, err)
	statuses := reporter.ReportStatusCalls()
	require.Len(t, statuses, 2)
	assert.Equal(t, models.StatusError, statuses[1].Status)
}
