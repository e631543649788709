package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"notebook-ai/internal/backend"
	"notebook-ai/internal/service"
	"notebook-ai/internal/service/mocks"
	"notebook-ai/internal/storage"
)

type ingestFixture struct {
	store     *recordingStore
	uploader  *mocks.MockUploader
	processor *mocks.MockDocumentProcessor
	generator *mocks.MockContentGenerator
	webhook   *mocks.MockSourceWebhook
	notifier  *recordingNotifier
	registry  *service.Registry
	svc       service.IngestService
}

func newIngestFixture(t *testing.T, cfg service.IngestConfig) *ingestFixture {
	ctrl := gomock.NewController(t)
	f := &ingestFixture{
		store:     newRecordingStore(t),
		uploader:  mocks.NewMockUploader(ctrl),
		processor: mocks.NewMockDocumentProcessor(ctrl),
		generator: mocks.NewMockContentGenerator(ctrl),
		webhook:   mocks.NewMockSourceWebhook(ctrl),
		notifier:  &recordingNotifier{},
		registry:  service.NewRegistry(),
	}
	f.svc = service.NewIngestService(service.IngestDeps{
		Store:     f.store,
		Uploader:  f.uploader,
		Processor: f.processor,
		Generator: f.generator,
		Webhook:   f.webhook,
		Notifier:  f.notifier,
		Registry:  f.registry,
	}, cfg)
	return f
}

// uploadOK returns a storage path derived from the notebook and source.
func uploadOK(_ context.Context, notebookID, sourceID, fileName, _ string, _ []byte) (string, error) {
	return fmt.Sprintf("%s/%s", notebookID, sourceID), nil
}

func threeFiles() []service.FileInput {
	return []service.FileInput{
		{Name: "a.pdf", MIMEType: "application/pdf", Size: 3, Data: []byte("pdf")},
		{Name: "b.txt", MIMEType: "text/plain", Size: 4, Data: []byte("text")},
		{Name: "c.mp3", MIMEType: "audio/mpeg", Size: 5, Data: []byte("audio")},
	}
}

func byTitle(sources []*storage.Source) map[string]*storage.Source {
	out := make(map[string]*storage.Source, len(sources))
	for _, s := range sources {
		out[s.Title] = s
	}
	return out
}

func TestKindFromMIME(t *testing.T) {
	tests := []struct {
		mime string
		want storage.SourceType
	}{
		{mime: "application/pdf", want: storage.SourceTypePDF},
		{mime: "APPLICATION/PDF", want: storage.SourceTypePDF},
		{mime: "audio/mpeg", want: storage.SourceTypeAudio},
		{mime: "audio/wav", want: storage.SourceTypeAudio},
		{mime: "text/plain", want: storage.SourceTypeText},
		{mime: "text/markdown", want: storage.SourceTypeText},
		{mime: "", want: storage.SourceTypeText},
	}
	for _, tt := range tests {
		t.Run(tt.mime, func(t *testing.T) {
			assert.Equal(t, tt.want, service.KindFromMIME(tt.mime))
		})
	}
}

func TestIngestFiles_AllSucceed(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	ctx := testContext()

	f.uploader.EXPECT().Upload(gomock.Any(), "nb-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(uploadOK).Times(3)
	// The remote processor reports completion back through the store.
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, sourceID, _, _ string) error {
			completed := storage.StatusCompleted
			return f.store.Update(ctx, sourceID, storage.SourceUpdate{ProcessingStatus: &completed})
		}).Times(3)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), "nb-1", gomock.Any(), gomock.Any()).Return(nil).Times(3)

	dialog := &recordingDialog{}
	sub, err := f.svc.IngestFiles(ctx, "nb-1", threeFiles(), dialog)
	require.NoError(t, err)
	require.Len(t, sub.Sources, 3)

	assert.Equal(t, []string{"busy", "idle", "close"}, dialog.recorded())
	assert.True(t, sub.Sources[0].FirstInBatch)
	assert.False(t, sub.Sources[1].FirstInBatch)
	assert.False(t, sub.Sources[2].FirstInBatch)

	outcome := sub.Wait()
	assert.Equal(t, service.Outcome{Succeeded: 3}, outcome)
	assert.Equal(t, 0, f.registry.Len())

	sources := byTitle(f.store.mustList(t, "nb-1"))
	require.Len(t, sources, 3)
	for _, name := range []string{"a.pdf", "b.txt", "c.mp3"} {
		src := sources[name]
		require.NotNil(t, src, name)
		assert.Equal(t, storage.StatusCompleted, src.ProcessingStatus, name)
		assert.Equal(t, "nb-1/"+src.ID, src.FilePath, name)
	}
	assert.Equal(t, storage.SourceTypePDF, sources["a.pdf"].Type)
	assert.Equal(t, storage.SourceTypeText, sources["b.txt"].Type)
	assert.Equal(t, storage.SourceTypeAudio, sources["c.mp3"].Type)

	notes := f.notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Files added", notes[0].Title)
	assert.Equal(t, "3 file(s) added and processing started", notes[0].Description)
	assert.Equal(t, storage.VariantDefault, notes[0].Variant)
}

func TestIngestFiles_PassesKindToRemoteCalls(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})

	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), "a.pdf", "application/pdf", []byte("pdf")).
		DoAndReturn(uploadOK)
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), "pdf").Return(nil)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), "nb-1", gomock.Any(), "pdf").Return(nil)

	sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles()[:1], nil)
	require.NoError(t, err)
	assert.Equal(t, service.Outcome{Succeeded: 1}, sub.Wait())

	src, err := f.store.Get(testContext(), sub.Sources[0].ID)
	require.NoError(t, err)
	assert.Equal(t, storage.StatusProcessing, src.ProcessingStatus)
	assert.Equal(t, "nb-1/"+src.ID, src.FilePath)
}

func TestIngestFiles_PanickingPipelineMarksSourceFailed(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})

	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(uploadOK).Times(3)
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, kind string) error {
			if kind == "text" {
				panic("processor exploded")
			}
			return nil
		}).Times(3)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles(), nil)
	require.NoError(t, err)

	outcome := sub.Wait()
	sources := byTitle(f.store.mustList(t, "nb-1"))
	assert.Equal(t, 2, outcome.Succeeded)
	assert.Equal(t, []string{sources["b.txt"].ID}, outcome.FailedIDs)
	assert.Equal(t, storage.StatusFailed, sources["b.txt"].ProcessingStatus)
	assert.NotEmpty(t, sources["b.txt"].FilePath)
}

func TestIngestFiles_UploadFailure(t *testing.T) {
	tests := []struct {
		name   string
		upload func(context.Context, string, string, string, string, []byte) (string, error)
	}{
		{
			name: "upload error",
			upload: func(ctx context.Context, nb, id, name, mime string, data []byte) (string, error) {
				if name == "b.txt" {
					return "", errBoom
				}
				return uploadOK(ctx, nb, id, name, mime, data)
			},
		},
		{
			name: "upload without path",
			upload: func(ctx context.Context, nb, id, name, mime string, data []byte) (string, error) {
				if name == "b.txt" {
					return "", nil
				}
				return uploadOK(ctx, nb, id, name, mime, data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t, service.IngestConfig{})

			f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(tt.upload).Times(3)
			f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
			f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

			sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles(), nil)
			require.NoError(t, err)

			outcome := sub.Wait()
			sources := byTitle(f.store.mustList(t, "nb-1"))
			assert.Equal(t, 2, outcome.Succeeded)
			assert.Equal(t, 1, outcome.Failed)
			assert.Equal(t, []string{sources["b.txt"].ID}, outcome.FailedIDs)

			assert.Equal(t, storage.StatusFailed, sources["b.txt"].ProcessingStatus)
			assert.Empty(t, sources["b.txt"].FilePath)
			assert.Equal(t, storage.StatusProcessing, sources["a.pdf"].ProcessingStatus)
			assert.Equal(t, storage.StatusProcessing, sources["c.mp3"].ProcessingStatus)

			notes := f.notifier.all()
			require.Len(t, notes, 2)
			assert.Equal(t, "Files added", notes[0].Title)
			assert.Equal(t, "Processing issues", notes[1].Title)
			assert.Contains(t, notes[1].Description, "1 file(s)")
			assert.Equal(t, storage.VariantDestructive, notes[1].Variant)
		})
	}
}

func TestIngestFiles_RemoteProcessingFailureCompletesSource(t *testing.T) {
	tests := []struct {
		name       string
		procErr    error
		genErr     error
		wantGenRun bool
	}{
		{name: "processing fails", procErr: errBoom},
		{name: "generation fails", genErr: errBoom, wantGenRun: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t, service.IngestConfig{})

			f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(uploadOK)
			f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.procErr)
			if tt.wantGenRun {
				f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tt.genErr)
			}

			sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles()[:1], nil)
			require.NoError(t, err)

			assert.Equal(t, service.Outcome{Succeeded: 1}, sub.Wait())

			src, err := f.store.Get(testContext(), sub.Sources[0].ID)
			require.NoError(t, err)
			assert.Equal(t, storage.StatusCompleted, src.ProcessingStatus)
			assert.NotEmpty(t, src.FilePath)
			assert.Equal(t, []string{"Files added"}, f.notifier.titles())
		})
	}
}

func TestIngestFiles_MissingNotebook(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	dialog := &recordingDialog{}

	sub, err := f.svc.IngestFiles(testContext(), "", threeFiles(), dialog)
	require.Error(t, err)
	assert.Nil(t, sub)

	var missing *service.MissingContextError
	assert.True(t, errors.As(err, &missing))
	assert.Empty(t, f.store.createCalls())
	assert.Empty(t, dialog.recorded())

	notes := f.notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Error", notes[0].Title)
	assert.Equal(t, "No notebook selected", notes[0].Description)
	assert.Equal(t, storage.VariantDestructive, notes[0].Variant)
}

func TestIngestFiles_NoFiles(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})

	_, err := f.svc.IngestFiles(testContext(), "nb-1", nil, nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)
	assert.Empty(t, f.store.createCalls())
}

func TestIngestFiles_CreationFailure(t *testing.T) {
	tests := []struct {
		name        string
		failOn      int
		wantRecords int
	}{
		{name: "first record fails", failOn: 0, wantRecords: 0},
		{name: "later record fails", failOn: 2, wantRecords: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t, service.IngestConfig{})
			f.store.failing = func(n int, _ storage.SourceDraft) error {
				if n == tt.failOn {
					return errBoom
				}
				return nil
			}
			dialog := &recordingDialog{}

			sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles(), dialog)
			require.Error(t, err)
			assert.Nil(t, sub)

			var persistence *service.PersistenceError
			require.True(t, errors.As(err, &persistence))
			assert.ErrorIs(t, err, errBoom)

			assert.Equal(t, []string{"busy", "idle"}, dialog.recorded())
			assert.Len(t, f.store.mustList(t, "nb-1"), tt.wantRecords)
			assert.Equal(t, 0, f.registry.Len())

			notes := f.notifier.all()
			require.Len(t, notes, 1)
			assert.Equal(t, "Error", notes[0].Title)
			assert.Equal(t, storage.VariantDestructive, notes[0].Variant)
		})
	}
}

func TestIngestFiles_FirstRecordCreatedAlone(t *testing.T) {
	const stagger = 40 * time.Millisecond
	f := newIngestFixture(t, service.IngestConfig{StaggerDelay: stagger})

	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(uploadOK).Times(3)
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles(), nil)
	require.NoError(t, err)
	sub.Wait()

	calls := f.store.createCalls()
	require.Len(t, calls, 3)
	assert.True(t, calls[0].draft.FirstInBatch)
	assert.Equal(t, "a.pdf", calls[0].draft.Title)
	for _, c := range calls[1:] {
		assert.False(t, c.draft.FirstInBatch)
		assert.GreaterOrEqual(t, c.start.Sub(calls[0].end), stagger)
	}
}

func TestIngestFiles_MaxParallel(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{MaxParallel: 1})

	var active, peak atomic.Int32
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, nb, id, name, mime string, data []byte) (string, error) {
			n := active.Add(1)
			defer active.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			return uploadOK(ctx, nb, id, name, mime, data)
		}).Times(3)
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	sub, err := f.svc.IngestFiles(testContext(), "nb-1", threeFiles(), nil)
	require.NoError(t, err)

	assert.Equal(t, service.Outcome{Succeeded: 3}, sub.Wait())
	assert.Equal(t, int32(1), peak.Load())
}

func TestIngestFiles_SurvivesCallerCancellation(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	ctx, cancel := context.WithCancel(testContext())

	release := make(chan struct{})
	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, nb, id, name, mime string, data []byte) (string, error) {
			<-release
			if err := ctx.Err(); err != nil {
				return "", err
			}
			return uploadOK(ctx, nb, id, name, mime, data)
		})
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	sub, err := f.svc.IngestFiles(ctx, "nb-1", threeFiles()[:1], nil)
	require.NoError(t, err)
	assert.Equal(t, 1, f.registry.Len())

	cancel()
	close(release)

	assert.Equal(t, service.Outcome{Succeeded: 1}, sub.Wait())
}

func TestIngestFiles_ResubmitCreatesNewRecords(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})

	f.uploader.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(uploadOK).Times(2)
	f.processor.EXPECT().ProcessDocument(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.generator.EXPECT().GenerateNotebookContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	files := threeFiles()[:1]
	first, err := f.svc.IngestFiles(testContext(), "nb-1", files, nil)
	require.NoError(t, err)
	first.Wait()
	second, err := f.svc.IngestFiles(testContext(), "nb-1", files, nil)
	require.NoError(t, err)
	second.Wait()

	assert.NotEqual(t, first.Sources[0].ID, second.Sources[0].ID)
	assert.Len(t, f.store.mustList(t, "nb-1"), 2)
}

func TestIngestText(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	dialog := &recordingDialog{}

	var got backend.AdditionalSourcesRequest
	f.webhook.EXPECT().ProcessAdditionalSources(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req backend.AdditionalSourcesRequest) error {
			got = req
			return nil
		})

	src, err := f.svc.IngestText(testContext(), "nb-1", "  Notes  ", "  hello world  ", dialog)
	require.NoError(t, err)
	require.NotNil(t, src)

	assert.Equal(t, "Notes", src.Title)
	assert.Equal(t, "hello world", src.Content)
	assert.Equal(t, storage.SourceTypeText, src.Type)
	assert.Equal(t, storage.StatusProcessing, src.ProcessingStatus)

	stored, err := f.store.Get(testContext(), src.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(11), stored.Metadata["characterCount"])
	assert.Equal(t, true, stored.Metadata["webhookProcessed"])

	assert.Equal(t, backend.KindCopiedText, got.Type)
	assert.Equal(t, "nb-1", got.NotebookID)
	assert.Equal(t, "Notes", got.Title)
	assert.Equal(t, "hello world", got.Content)
	assert.Equal(t, []string{src.ID}, got.SourceIDs)
	assert.False(t, got.Timestamp.IsZero())

	assert.Equal(t, []string{"busy", "idle", "close"}, dialog.recorded())
	notes := f.notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Success", notes[0].Title)
	assert.Equal(t, "Text has been added and sent for processing", notes[0].Description)
}

func TestIngestText_CharacterCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{name: "ascii", content: "hello", want: 5},
		{name: "accented", content: "café", want: 4},
		{name: "emoji counts two units", content: "hi 😀", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t, service.IngestConfig{})
			f.webhook.EXPECT().ProcessAdditionalSources(gomock.Any(), gomock.Any()).Return(nil)

			src, err := f.svc.IngestText(testContext(), "nb-1", "Notes", tt.content, nil)
			require.NoError(t, err)

			stored, err := f.store.Get(testContext(), src.ID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, stored.Metadata["characterCount"])
		})
	}
}

func TestIngestText_CallOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	dialog := mocks.NewMockDialog(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)
	webhook := mocks.NewMockSourceWebhook(ctrl)

	svc := service.NewIngestService(service.IngestDeps{
		Store:    newRecordingStore(t),
		Webhook:  webhook,
		Notifier: notifier,
	}, service.IngestConfig{})

	gomock.InOrder(
		dialog.EXPECT().SetProcessing(true),
		webhook.EXPECT().ProcessAdditionalSources(gomock.Any(), gomock.Any()).Return(nil),
		notifier.EXPECT().Notify(gomock.Any(), storage.Notification{
			NotebookID:  "nb-1",
			Title:       "Success",
			Description: "Text has been added and sent for processing",
			Variant:     storage.VariantDefault,
		}),
		dialog.EXPECT().SetProcessing(false),
		dialog.EXPECT().Close(),
	)

	_, err := svc.IngestText(testContext(), "nb-1", "Notes", "body", dialog)
	require.NoError(t, err)
}

func TestIngestText_Validation(t *testing.T) {
	tests := []struct {
		name       string
		notebookID string
		title      string
		content    string
		wantErr    error
	}{
		{name: "blank title", notebookID: "nb-1", title: "   ", content: "body", wantErr: service.ErrInvalidInput},
		{name: "blank content", notebookID: "nb-1", title: "Notes", content: " \n\t ", wantErr: service.ErrInvalidInput},
		{name: "missing notebook", notebookID: "", title: "Notes", content: "body", wantErr: service.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newIngestFixture(t, service.IngestConfig{})
			dialog := &recordingDialog{}

			src, err := f.svc.IngestText(testContext(), tt.notebookID, tt.title, tt.content, dialog)
			assert.Nil(t, src)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.store.createCalls())
			assert.Empty(t, dialog.recorded())
		})
	}
}

func TestIngestText_WebhookFailure(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	dialog := &recordingDialog{}

	f.webhook.EXPECT().ProcessAdditionalSources(gomock.Any(), gomock.Any()).Return(errBoom)

	src, err := f.svc.IngestText(testContext(), "nb-1", "Notes", "body", dialog)
	require.Error(t, err)

	var remote *service.RemoteInvocationError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, backend.KindCopiedText, remote.Kind)
	assert.ErrorIs(t, err, errBoom)

	require.NotNil(t, src)
	assert.Len(t, f.store.mustList(t, "nb-1"), 1)
	assert.Equal(t, []string{"busy", "idle", "close"}, dialog.recorded())

	notes := f.notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to add text source", notes[0].Description)
	assert.Equal(t, storage.VariantDestructive, notes[0].Variant)
}

func TestIngestText_CreateFailure(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	f.store.failing = func(int, storage.SourceDraft) error { return errBoom }
	dialog := &recordingDialog{}

	src, err := f.svc.IngestText(testContext(), "nb-1", "Notes", "body", dialog)
	assert.Nil(t, src)

	var persistence *service.PersistenceError
	require.True(t, errors.As(err, &persistence))
	assert.Equal(t, []string{"busy", "idle", "close"}, dialog.recorded())
	assert.Equal(t, []string{"Error"}, f.notifier.titles())
}

func TestIngestWebsites(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	dialog := &recordingDialog{}

	var got backend.AdditionalSourcesRequest
	f.webhook.EXPECT().ProcessAdditionalSources(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req backend.AdditionalSourcesRequest) error {
			got = req
			return nil
		}).Times(1)

	urls := []string{" https://a.example ", "", "https://b.example", "   "}
	sources, err := f.svc.IngestWebsites(testContext(), "nb-1", urls, dialog)
	require.NoError(t, err)
	require.Len(t, sources, 2)

	assert.Equal(t, "Website 1: https://a.example", sources[0].Title)
	assert.Equal(t, "Website 2: https://b.example", sources[1].Title)
	assert.True(t, sources[0].FirstInBatch)
	for _, src := range sources {
		assert.Equal(t, storage.SourceTypeWebsite, src.Type)
		assert.Equal(t, storage.StatusProcessing, src.ProcessingStatus)
		assert.Equal(t, src.URL, src.Metadata["originalUrl"])
		assert.Equal(t, true, src.Metadata["webhookProcessed"])
	}

	assert.Equal(t, backend.KindMultipleWebsites, got.Type)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, got.URLs)
	assert.Equal(t, []string{sources[0].ID, sources[1].ID}, got.SourceIDs)

	assert.Equal(t, []string{"busy", "idle", "close"}, dialog.recorded())
	notes := f.notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "2 websites added and sent for processing", notes[0].Description)
}

func TestIngestWebsites_WebhookFailureKeepsRecords(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})
	dialog := &recordingDialog{}

	f.webhook.EXPECT().ProcessAdditionalSources(gomock.Any(), gomock.Any()).Return(errBoom)

	urls := make([]string, 5)
	for i := range urls {
		urls[i] = fmt.Sprintf("https://site%d.example", i+1)
	}
	sources, err := f.svc.IngestWebsites(testContext(), "nb-1", urls, dialog)
	require.Error(t, err)
	assert.Len(t, sources, 5)

	var remote *service.RemoteInvocationError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, backend.KindMultipleWebsites, remote.Kind)

	stored := f.store.mustList(t, "nb-1")
	assert.Len(t, stored, 5)
	for _, src := range stored {
		assert.Equal(t, storage.StatusProcessing, src.ProcessingStatus)
	}

	assert.Equal(t, []string{"busy", "idle"}, dialog.recorded())
	notes := f.notifier.all()
	require.Len(t, notes, 1)
	assert.Equal(t, "Failed to add websites", notes[0].Description)
}

func TestIngestWebsites_Validation(t *testing.T) {
	f := newIngestFixture(t, service.IngestConfig{})

	_, err := f.svc.IngestWebsites(testContext(), "nb-1", []string{"", "  "}, nil)
	assert.ErrorIs(t, err, service.ErrInvalidInput)

	_, err = f.svc.IngestWebsites(testContext(), "", []string{"https://a.example"}, nil)
	var missing *service.MissingContextError
	assert.True(t, errors.As(err, &missing))

	assert.Empty(t, f.store.createCalls())
}
