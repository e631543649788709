package service_test

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"notebook-ai/internal/storage"
)

func init() {
	// Set default logger to discard output for cleaner test output
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testContext() context.Context {
	return context.Background()
}

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, storage.Migrate(db))
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

type createCall struct {
	draft storage.SourceDraft
	start time.Time
	end   time.Time
}

// recordingStore wraps a real SourceRepo and records every Create call.
type recordingStore struct {
	*storage.SourceRepo

	mu      sync.Mutex
	calls   []createCall
	failing func(n int, draft storage.SourceDraft) error
}

func newRecordingStore(t *testing.T) *recordingStore {
	return &recordingStore{SourceRepo: storage.NewSourceRepo(newTestDB(t))}
}

func (s *recordingStore) Create(ctx context.Context, draft storage.SourceDraft) (*storage.Source, error) {
	start := time.Now()
	s.mu.Lock()
	n := len(s.calls)
	s.calls = append(s.calls, createCall{draft: draft, start: start})
	failing := s.failing
	s.mu.Unlock()

	var (
		src *storage.Source
		err error
	)
	if failing != nil {
		err = failing(n, draft)
	}
	if err == nil {
		src, err = s.SourceRepo.Create(ctx, draft)
	}

	s.mu.Lock()
	s.calls[n].end = time.Now()
	s.mu.Unlock()
	return src, err
}

func (s *recordingStore) createCalls() []createCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]createCall(nil), s.calls...)
}

func (s *recordingStore) mustList(t *testing.T, notebookID string) []*storage.Source {
	t.Helper()
	sources, err := s.ListByNotebook(testContext(), notebookID)
	require.NoError(t, err)
	return sources
}

var errBoom = errors.New("boom")

// recordingNotifier collects notifications in delivery order.
type recordingNotifier struct {
	mu    sync.Mutex
	items []storage.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, note storage.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, note)
}

func (n *recordingNotifier) all() []storage.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]storage.Notification(nil), n.items...)
}

func (n *recordingNotifier) titles() []string {
	var out []string
	for _, item := range n.all() {
		out = append(out, item.Title)
	}
	return out
}

// recordingDialog records interactions as "busy", "idle" and "close".
type recordingDialog struct {
	mu     sync.Mutex
	events []string
}

func (d *recordingDialog) SetProcessing(busy bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if busy {
		d.events = append(d.events, "busy")
	} else {
		d.events = append(d.events, "idle")
	}
}

func (d *recordingDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, "close")
}

func (d *recordingDialog) recorded() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.events...)
}
