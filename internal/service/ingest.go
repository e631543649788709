package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_ingest_service.go -package=mocks -mock_names=IngestService=MockIngestService notebook-ai/internal/service IngestService

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf16"

	"golang.org/x/sync/errgroup"

	"notebook-ai/internal/backend"
	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/storage"
)

// User-facing notification texts.
const (
	titleError            = "Error"
	titleSuccess          = "Success"
	titleFilesAdded       = "Files added"
	titleProcessingIssues = "Processing issues"
	descNoNotebook        = "No notebook selected"
	descFilesFailed       = "Failed to add files. Please try again."
	descTextAdded         = "Text has been added and sent for processing"
	descTextFailed        = "Failed to add text source"
	descWebsitesFailed    = "Failed to add websites"
)

const (
	characterCountMetaKey   = "characterCount"
	originalURLMetaKey      = "originalUrl"
	webhookProcessedMetaKey = "webhookProcessed"
)

// IngestService turns user-supplied content into notebook sources.
type IngestService interface {
	// IngestFiles creates one source per file and returns once every record exists.
	// Upload and remote processing continue in the background; the returned
	// Submission settles when they finish.
	IngestFiles(ctx context.Context, notebookID string, files []FileInput, dialog Dialog) (*Submission, error)
	// IngestText creates a text source and hands it to the remote processor.
	IngestText(ctx context.Context, notebookID, title, content string, dialog Dialog) (*storage.Source, error)
	// IngestWebsites creates one website source per URL and hands them to the
	// remote processor in a single call.
	IngestWebsites(ctx context.Context, notebookID string, urls []string, dialog Dialog) ([]*storage.Source, error)
}

// IngestConfig tunes the ingestion orchestrator.
type IngestConfig struct {
	// StaggerDelay separates the first record of a batch from the rest.
	StaggerDelay time.Duration
	// MaxParallel caps concurrent file pipelines. 0 means unbounded.
	MaxParallel int
}

// IngestDeps holds the collaborators of the ingestion orchestrator.
type IngestDeps struct {
	Store     storage.SourceStore
	Uploader  Uploader
	Processor DocumentProcessor
	Generator ContentGenerator
	Webhook   SourceWebhook
	Notifier  Notifier
	Registry  *Registry
}

// ingestService implements IngestService.
type ingestService struct {
	store    storage.SourceStore
	webhook  SourceWebhook
	notifier Notifier
	registry *Registry
	pipeline *pipeline

	staggerDelay time.Duration
	maxParallel  int
	sleep        func(time.Duration)
	now          func() time.Time
}

// NewIngestService creates a new IngestService.
func NewIngestService(deps IngestDeps, cfg IngestConfig) IngestService {
	registry := deps.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	return &ingestService{
		store:    deps.Store,
		webhook:  deps.Webhook,
		notifier: deps.Notifier,
		registry: registry,
		pipeline: &pipeline{
			store:     deps.Store,
			uploader:  deps.Uploader,
			processor: deps.Processor,
			generator: deps.Generator,
		},
		staggerDelay: cfg.StaggerDelay,
		maxParallel:  cfg.MaxParallel,
		sleep:        time.Sleep,
		now:          time.Now,
	}
}

func (s *ingestService) notify(ctx context.Context, notebookID, title, description, variant string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(ctx, storage.Notification{
		NotebookID:  notebookID,
		Title:       title,
		Description: description,
		Variant:     variant,
	})
}

// IngestFiles implements IngestService.
func (s *ingestService) IngestFiles(ctx context.Context, notebookID string, files []FileInput, dialog Dialog) (*Submission, error) {
	ctx = context.WithoutCancel(ctx)
	logger := contextutil.LoggerFromContext(ctx).With("notebook_id", notebookID)
	dialog = dialogOrNoop(dialog)

	if notebookID == "" {
		logger.WarnContext(ctx, "file ingestion without notebook")
		s.notify(ctx, notebookID, titleError, descNoNotebook, storage.VariantDestructive)
		return nil, &MissingContextError{Field: "notebook_id"}
	}
	if len(files) == 0 {
		return nil, &ValidationError{Field: "files", Message: "at least one file is required"}
	}

	drafts := make([]storage.SourceDraft, len(files))
	for i, f := range files {
		drafts[i] = storage.SourceDraft{
			NotebookID:       notebookID,
			Title:            f.Name,
			Type:             KindFromMIME(f.MIMEType),
			FileSize:         f.Size,
			ProcessingStatus: storage.StatusPending,
			Metadata: map[string]any{
				"fileName": f.Name,
				"fileType": f.MIMEType,
			},
		}
	}

	dialog.SetProcessing(true)
	sources, err := s.createBatch(ctx, drafts)
	dialog.SetProcessing(false)
	if err != nil {
		logger.ErrorContext(ctx, "failed to create file sources", "error", err, "file_count", len(files))
		s.notify(ctx, notebookID, titleError, descFilesFailed, storage.VariantDestructive)
		return nil, err
	}

	dialog.Close()
	s.notify(ctx, notebookID, titleFilesAdded,
		fmt.Sprintf("%d file(s) added and processing started", len(files)), storage.VariantDefault)

	sub := newSubmission(notebookID, sources, s.now())
	s.registry.add(sub)
	logger.InfoContext(ctx, "file sources created, starting pipelines", "submission_id", sub.ID, "file_count", len(files))

	go s.runPipelines(ctx, logger.With("submission_id", sub.ID), sub, files)
	return sub, nil
}

// createBatch creates the first draft alone, waits the stagger delay, then
// creates the rest concurrently. Records already created are kept on failure.
func (s *ingestService) createBatch(ctx context.Context, drafts []storage.SourceDraft) ([]*storage.Source, error) {
	drafts[0].FirstInBatch = true
	first, err := s.store.Create(ctx, drafts[0])
	if err != nil {
		return nil, &PersistenceError{Op: "create source", Err: err}
	}

	sources := make([]*storage.Source, len(drafts))
	sources[0] = first
	if len(drafts) == 1 {
		return sources, nil
	}

	if s.staggerDelay > 0 {
		s.sleep(s.staggerDelay)
	}

	var g errgroup.Group
	for i := 1; i < len(drafts); i++ {
		g.Go(func() error {
			src, err := s.store.Create(ctx, drafts[i])
			if err != nil {
				return err
			}
			sources[i] = src
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, &PersistenceError{Op: "create source", Err: err}
	}
	return sources, nil
}

func (s *ingestService) runPipelines(ctx context.Context, logger *slog.Logger, sub *Submission, files []FileInput) {
	var g errgroup.Group
	if s.maxParallel > 0 {
		g.SetLimit(s.maxParallel)
	}
	for i, src := range sub.Sources {
		g.Go(func() error {
			sub.record(src.ID, s.runOne(ctx, logger, sub.NotebookID, src, files[i]))
			return nil
		})
	}
	_ = g.Wait()

	outcome := sub.tally()
	if outcome.Failed > 0 {
		logger.WarnContext(ctx, "file batch settled with failures", "failed", outcome.Failed, "succeeded", outcome.Succeeded)
		s.notify(ctx, sub.NotebookID, titleProcessingIssues,
			fmt.Sprintf("%d file(s) had processing issues. Check the sources list for details.", outcome.Failed),
			storage.VariantDestructive)
	} else {
		logger.InfoContext(ctx, "file batch settled", "succeeded", outcome.Succeeded)
	}

	s.registry.remove(sub.ID)
	sub.finish(outcome)
}

func (s *ingestService) runOne(ctx context.Context, logger *slog.Logger, notebookID string, src *storage.Source, file FileInput) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "file pipeline panicked", "source_id", src.ID, "panic", r)
			err = fmt.Errorf("pipeline for source %s panicked: %v", src.ID, r)
			if uerr := s.store.Update(ctx, src.ID, storage.SourceUpdate{ProcessingStatus: statusPtr(storage.StatusFailed)}); uerr != nil {
				logger.WarnContext(ctx, "failed to mark panicked source failed", "source_id", src.ID, "error", uerr)
			}
		}
	}()
	return s.pipeline.run(ctx, logger, notebookID, src, file)
}

// IngestText implements IngestService.
func (s *ingestService) IngestText(ctx context.Context, notebookID, title, content string, dialog Dialog) (*storage.Source, error) {
	ctx = context.WithoutCancel(ctx)
	logger := contextutil.LoggerFromContext(ctx).With("notebook_id", notebookID)
	dialog = dialogOrNoop(dialog)

	if notebookID == "" {
		s.notify(ctx, notebookID, titleError, descNoNotebook, storage.VariantDestructive)
		return nil, &MissingContextError{Field: "notebook_id"}
	}
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, &ValidationError{Field: "title", Message: "cannot be empty"}
	}
	if content == "" {
		return nil, &ValidationError{Field: "content", Message: "cannot be empty"}
	}

	dialog.SetProcessing(true)
	defer func() {
		dialog.SetProcessing(false)
		dialog.Close()
	}()

	src, err := s.store.Create(ctx, storage.SourceDraft{
		NotebookID:       notebookID,
		Title:            title,
		Type:             storage.SourceTypeText,
		Content:          content,
		ProcessingStatus: storage.StatusProcessing,
		Metadata: map[string]any{
			characterCountMetaKey:   utf16Len(content),
			webhookProcessedMetaKey: true,
		},
		FirstInBatch: true,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create text source", "error", err)
		s.notify(ctx, notebookID, titleError, descTextFailed, storage.VariantDestructive)
		return nil, &PersistenceError{Op: "create source", Err: err}
	}

	err = s.webhook.ProcessAdditionalSources(ctx, backend.AdditionalSourcesRequest{
		Type:       backend.KindCopiedText,
		NotebookID: notebookID,
		Title:      title,
		Content:    content,
		SourceIDs:  []string{src.ID},
		Timestamp:  s.now().UTC(),
	})
	if err != nil {
		logger.ErrorContext(ctx, "text source webhook failed", "source_id", src.ID, "error", err)
		s.notify(ctx, notebookID, titleError, descTextFailed, storage.VariantDestructive)
		return src, &RemoteInvocationError{Kind: backend.KindCopiedText, Err: err}
	}

	logger.InfoContext(ctx, "text source added", "source_id", src.ID, "content_length", len(content))
	s.notify(ctx, notebookID, titleSuccess, descTextAdded, storage.VariantDefault)
	return src, nil
}

// IngestWebsites implements IngestService.
func (s *ingestService) IngestWebsites(ctx context.Context, notebookID string, urls []string, dialog Dialog) ([]*storage.Source, error) {
	ctx = context.WithoutCancel(ctx)
	logger := contextutil.LoggerFromContext(ctx).With("notebook_id", notebookID)
	dialog = dialogOrNoop(dialog)

	if notebookID == "" {
		s.notify(ctx, notebookID, titleError, descNoNotebook, storage.VariantDestructive)
		return nil, &MissingContextError{Field: "notebook_id"}
	}
	cleaned := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			cleaned = append(cleaned, u)
		}
	}
	if len(cleaned) == 0 {
		return nil, &ValidationError{Field: "urls", Message: "at least one url is required"}
	}

	drafts := make([]storage.SourceDraft, len(cleaned))
	for i, u := range cleaned {
		drafts[i] = storage.SourceDraft{
			NotebookID:       notebookID,
			Title:            fmt.Sprintf("Website %d: %s", i+1, u),
			Type:             storage.SourceTypeWebsite,
			URL:              u,
			ProcessingStatus: storage.StatusProcessing,
			Metadata: map[string]any{
				originalURLMetaKey:      u,
				webhookProcessedMetaKey: true,
			},
		}
	}

	dialog.SetProcessing(true)
	sources, err := s.createBatch(ctx, drafts)
	if err != nil {
		dialog.SetProcessing(false)
		logger.ErrorContext(ctx, "failed to create website sources", "error", err, "url_count", len(cleaned))
		s.notify(ctx, notebookID, titleError, descWebsitesFailed, storage.VariantDestructive)
		return nil, err
	}

	ids := make([]string, len(sources))
	for i, src := range sources {
		ids[i] = src.ID
	}
	err = s.webhook.ProcessAdditionalSources(ctx, backend.AdditionalSourcesRequest{
		Type:       backend.KindMultipleWebsites,
		NotebookID: notebookID,
		URLs:       cleaned,
		SourceIDs:  ids,
		Timestamp:  s.now().UTC(),
	})
	dialog.SetProcessing(false)
	if err != nil {
		logger.ErrorContext(ctx, "website sources webhook failed", "error", err, "url_count", len(cleaned))
		s.notify(ctx, notebookID, titleError, descWebsitesFailed, storage.VariantDestructive)
		return sources, &RemoteInvocationError{Kind: backend.KindMultipleWebsites, Err: err}
	}

	logger.InfoContext(ctx, "website sources added", "url_count", len(cleaned))
	s.notify(ctx, notebookID, titleSuccess,
		fmt.Sprintf("%d websites added and sent for processing", len(cleaned)), storage.VariantDefault)
	dialog.Close()
	return sources, nil
}

// utf16Len counts UTF-16 code units, the unit browsers report as string length.
func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}
