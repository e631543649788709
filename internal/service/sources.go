package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_source_service.go -package=mocks -mock_names=SourceService=MockSourceService notebook-ai/internal/service SourceService

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/storage"
)

// SourceService reads and edits existing sources.
type SourceService interface {
	// List returns the sources of a notebook, oldest first.
	List(ctx context.Context, notebookID string) ([]*storage.Source, error)
	// Get returns a single source.
	Get(ctx context.Context, id string) (*storage.Source, error)
	// Rename changes the title of a source.
	Rename(ctx context.Context, id, title string) (*storage.Source, error)
	// UpdateStatus records a processing status reported by the remote processor.
	UpdateStatus(ctx context.Context, id string, status storage.ProcessingStatus) (*storage.Source, error)
}

// sourceService implements SourceService.
type sourceService struct {
	store storage.SourceStore
}

// NewSourceService creates a new SourceService.
func NewSourceService(store storage.SourceStore) SourceService {
	return &sourceService{store: store}
}

func (s *sourceService) List(ctx context.Context, notebookID string) ([]*storage.Source, error) {
	if notebookID == "" {
		return nil, &MissingContextError{Field: "notebook_id"}
	}
	sources, err := s.store.ListByNotebook(ctx, notebookID)
	if err != nil {
		return nil, &PersistenceError{Op: "list sources", Err: err}
	}
	return sources, nil
}

func (s *sourceService) Get(ctx context.Context, id string) (*storage.Source, error) {
	src, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, translateStoreError(err, "get source", id)
	}
	return src, nil
}

func (s *sourceService) Rename(ctx context.Context, id, title string) (*storage.Source, error) {
	logger := contextutil.LoggerFromContext(ctx)

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "cannot be empty"}
	}

	if err := s.store.Update(ctx, id, storage.SourceUpdate{Title: &title}); err != nil {
		logger.ErrorContext(ctx, "failed to rename source", "source_id", id, "error", err)
		return nil, translateStoreError(err, "rename source", id)
	}
	return s.Get(ctx, id)
}

func (s *sourceService) UpdateStatus(ctx context.Context, id string, status storage.ProcessingStatus) (*storage.Source, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if !status.Valid() {
		return nil, &ValidationError{Field: "processing_status", Message: fmt.Sprintf("unknown status %q", status)}
	}

	if err := s.store.Update(ctx, id, storage.SourceUpdate{ProcessingStatus: &status}); err != nil {
		logger.WarnContext(ctx, "failed to update source status", "source_id", id, "status", status, "error", err)
		return nil, translateStoreError(err, "update source status", id)
	}
	logger.InfoContext(ctx, "source status updated", "source_id", id, "status", status)
	return s.Get(ctx, id)
}

func translateStoreError(err error, op, id string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: source %s", ErrNotFound, id)
	case errors.Is(err, storage.ErrInvalidTransition):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	default:
		return &PersistenceError{Op: op, Err: err}
	}
}
