package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_backend.go -package=mocks notebook-ai/internal/service Uploader,DocumentProcessor,ContentGenerator,SourceWebhook
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_dialog.go -package=mocks notebook-ai/internal/service Dialog,Notifier

import (
	"context"

	"notebook-ai/internal/backend"
	"notebook-ai/internal/storage"
)

// The interfaces below are defined from the service layer's perspective (consumer-first).
// backend.Client satisfies all four remote ports.

// Uploader stores file bytes in object storage.
type Uploader interface {
	// Upload stores the file and returns its object path. An empty path with a nil
	// error means storage accepted the request but returned no reference.
	Upload(ctx context.Context, notebookID, sourceID, fileName, contentType string, data []byte) (string, error)
}

// DocumentProcessor extracts content from an uploaded file.
type DocumentProcessor interface {
	ProcessDocument(ctx context.Context, sourceID, filePath, kind string) error
}

// ContentGenerator derives notebook-level content from an uploaded file.
type ContentGenerator interface {
	GenerateNotebookContent(ctx context.Context, notebookID, filePath, kind string) error
}

// SourceWebhook hands text and website sources to the remote processor in one call.
type SourceWebhook interface {
	ProcessAdditionalSources(ctx context.Context, req backend.AdditionalSourcesRequest) error
}

// Notifier delivers a user-facing message. Delivery is best effort.
type Notifier interface {
	Notify(ctx context.Context, n storage.Notification)
}

// Dialog is the interactive surface that started an ingestion.
type Dialog interface {
	// SetProcessing toggles the busy indicator.
	SetProcessing(busy bool)
	// Close dismisses the dialog.
	Close()
}

type noopDialog struct{}

func (noopDialog) SetProcessing(bool) {}
func (noopDialog) Close()             {}

func dialogOrNoop(d Dialog) Dialog {
	if d == nil {
		return noopDialog{}
	}
	return d
}
