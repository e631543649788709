package service

import (
	"context"
	"log/slog"
	"strings"

	"notebook-ai/internal/storage"
)

// FileInput is one file of an ingestion batch.
type FileInput struct {
	Name     string
	MIMEType string
	Size     int64
	Data     []byte
}

// KindFromMIME maps a MIME type to the source kind used for storage and remote processing.
func KindFromMIME(mimeType string) storage.SourceType {
	mimeType = strings.ToLower(mimeType)
	switch {
	case strings.Contains(mimeType, "pdf"):
		return storage.SourceTypePDF
	case strings.Contains(mimeType, "audio"):
		return storage.SourceTypeAudio
	default:
		return storage.SourceTypeText
	}
}

// pipeline carries one file source from upload through remote processing.
type pipeline struct {
	store     storage.SourceStore
	uploader  Uploader
	processor DocumentProcessor
	generator ContentGenerator
}

// run drives a single source. It returns an error only when the source ended in
// failed status; failures after the upload leave the source completed.
func (p *pipeline) run(ctx context.Context, logger *slog.Logger, notebookID string, src *storage.Source, file FileInput) error {
	logger = logger.With("source_id", src.ID, "file_name", file.Name)
	kind := string(KindFromMIME(file.MIMEType))

	w := newStatusWriter(ctx, p.store, src.ID, logger)
	defer w.flush()

	w.mark(storage.SourceUpdate{ProcessingStatus: statusPtr(storage.StatusUploading)})

	path, err := p.uploader.Upload(ctx, notebookID, src.ID, file.Name, file.MIMEType, file.Data)
	if err != nil {
		err = &TransportError{SourceID: src.ID, Err: err}
	} else if path == "" {
		err = &TransportError{SourceID: src.ID}
	}
	if err != nil {
		logger.ErrorContext(ctx, "file upload failed", "error", err)
		w.mark(storage.SourceUpdate{ProcessingStatus: statusPtr(storage.StatusFailed)})
		return err
	}

	// Separate updates: a refused status change must not drop the path.
	w.mark(storage.SourceUpdate{FilePath: &path})
	w.mark(storage.SourceUpdate{ProcessingStatus: statusPtr(storage.StatusProcessing)})

	if err := p.enrich(ctx, notebookID, src.ID, path, kind); err != nil {
		logger.WarnContext(ctx, "remote processing failed, marking source completed", "error", err)
		w.mark(storage.SourceUpdate{ProcessingStatus: statusPtr(storage.StatusCompleted)})
		return nil
	}

	logger.InfoContext(ctx, "source handed to remote processing", "file_path", path, "kind", kind)
	return nil
}

func (p *pipeline) enrich(ctx context.Context, notebookID, sourceID, path, kind string) error {
	if err := p.processor.ProcessDocument(ctx, sourceID, path, kind); err != nil {
		return &ProcessingError{SourceID: sourceID, Err: err}
	}
	if err := p.generator.GenerateNotebookContent(ctx, notebookID, path, kind); err != nil {
		return &GenerationError{NotebookID: notebookID, Err: err}
	}
	return nil
}

func statusPtr(s storage.ProcessingStatus) *storage.ProcessingStatus {
	return &s
}

// statusWriter applies one source's updates in order on its own goroutine.
// mark never waits for the store; flush waits for every queued update.
type statusWriter struct {
	ctx      context.Context
	store    storage.SourceStore
	sourceID string
	logger   *slog.Logger
	updates  chan storage.SourceUpdate
	done     chan struct{}
}

func newStatusWriter(ctx context.Context, store storage.SourceStore, sourceID string, logger *slog.Logger) *statusWriter {
	w := &statusWriter{
		ctx:      ctx,
		store:    store,
		sourceID: sourceID,
		logger:   logger,
		updates:  make(chan storage.SourceUpdate, 8),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w
}

func (w *statusWriter) loop() {
	defer close(w.done)
	for upd := range w.updates {
		if err := w.store.Update(w.ctx, w.sourceID, upd); err != nil {
			w.logger.WarnContext(w.ctx, "failed to update source status", "status", derefStatus(upd.ProcessingStatus), "error", err)
		}
	}
}

func (w *statusWriter) mark(upd storage.SourceUpdate) {
	w.updates <- upd
}

func (w *statusWriter) flush() {
	close(w.updates)
	<-w.done
}

func derefStatus(s *storage.ProcessingStatus) string {
	if s == nil {
		return ""
	}
	return string(*s)
}
