// Package audio keeps signed audio overview URLs fresh.
package audio

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_signer.go -package=mocks notebook-ai/internal/audio Signer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"notebook-ai/internal/backend"
	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/storage"
)

// ErrRefreshInProgress is returned when a refresh for the same notebook is already running.
var ErrRefreshInProgress = errors.New("audio refresh already in progress")

// SignerError reports a failure of the backend that signs audio URLs.
type SignerError struct {
	NotebookID string
	Err        error
}

func (e *SignerError) Error() string {
	return fmt.Sprintf("failed to refresh audio url for notebook %s: %v", e.NotebookID, e.Err)
}

func (e *SignerError) Unwrap() error {
	return e.Err
}

// Store persists notebook audio state.
type Store interface {
	SetAudio(ctx context.Context, notebookID, url string, expiresAt time.Time) error
	GetAudio(ctx context.Context, notebookID string) (*storage.NotebookAudio, error)
	ListExpiredAudio(ctx context.Context, now time.Time) ([]*storage.NotebookAudio, error)
}

// Signer issues a fresh signed URL for a notebook's audio overview.
type Signer interface {
	RefreshAudioURL(ctx context.Context, notebookID string) (backend.AudioURL, error)
}

// Refresher re-signs expired audio URLs, on demand and on a fixed interval.
type Refresher struct {
	store    Store
	signer   Signer
	interval time.Duration
	now      func() time.Time

	mu       sync.Mutex
	inflight map[string]bool
}

// NewRefresher creates a new Refresher.
func NewRefresher(store Store, signer Signer, interval time.Duration) *Refresher {
	return &Refresher{
		store:    store,
		signer:   signer,
		interval: interval,
		now:      time.Now,
		inflight: make(map[string]bool),
	}
}

// Run refreshes expired URLs immediately and then on every tick until ctx is done.
func (r *Refresher) Run(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "audio refresher started", "interval", r.interval)

	r.sweep(ctx, logger)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "audio refresher stopped")
			return ctx.Err()
		case <-ticker.C:
			r.sweep(ctx, logger)
		}
	}
}

func (r *Refresher) sweep(ctx context.Context, logger *slog.Logger) {
	refreshed, err := r.RefreshExpired(ctx)
	if err != nil {
		logger.WarnContext(ctx, "audio refresh sweep incomplete", "refreshed", refreshed, "error", err)
		return
	}
	if refreshed > 0 {
		logger.InfoContext(ctx, "audio urls refreshed", "count", refreshed)
	}
}

// RefreshExpired re-signs every expired URL and returns how many were refreshed.
// Failures for individual notebooks are joined into the returned error.
func (r *Refresher) RefreshExpired(ctx context.Context) (int, error) {
	expired, err := r.store.ListExpiredAudio(ctx, r.now())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired audio: %w", err)
	}

	var (
		mu        sync.Mutex
		refreshed int
		errs      []error
	)
	var g errgroup.Group
	g.SetLimit(4)
	for _, a := range expired {
		g.Go(func() error {
			_, err := r.Refresh(ctx, a.NotebookID)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, ErrRefreshInProgress):
			case err != nil:
				errs = append(errs, err)
			default:
				refreshed++
			}
			return nil
		})
	}
	_ = g.Wait()
	return refreshed, errors.Join(errs...)
}

// Refresh re-signs the audio URL of a notebook regardless of its expiry.
func (r *Refresher) Refresh(ctx context.Context, notebookID string) (*storage.NotebookAudio, error) {
	if !r.acquire(notebookID) {
		return nil, ErrRefreshInProgress
	}
	defer r.release(notebookID)

	signed, err := r.signer.RefreshAudioURL(ctx, notebookID)
	if err != nil {
		return nil, &SignerError{NotebookID: notebookID, Err: err}
	}
	return r.SetAudio(ctx, notebookID, signed.URL, signed.ExpiresAt)
}

// RefreshIfExpired returns the current audio state, refreshing it first when
// the URL has expired. The bool reports whether a refresh happened.
func (r *Refresher) RefreshIfExpired(ctx context.Context, notebookID string) (*storage.NotebookAudio, bool, error) {
	current, err := r.store.GetAudio(ctx, notebookID)
	if err != nil {
		return nil, false, err
	}
	if !current.Expired(r.now()) {
		return current, false, nil
	}

	refreshed, err := r.Refresh(ctx, notebookID)
	if errors.Is(err, ErrRefreshInProgress) {
		return current, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return refreshed, true, nil
}

// SetAudio stores a URL and its expiry for a notebook.
func (r *Refresher) SetAudio(ctx context.Context, notebookID, url string, expiresAt time.Time) (*storage.NotebookAudio, error) {
	if url == "" {
		return nil, fmt.Errorf("audio url is required")
	}
	if err := r.store.SetAudio(ctx, notebookID, url, expiresAt); err != nil {
		return nil, fmt.Errorf("failed to store audio url: %w", err)
	}
	return r.store.GetAudio(ctx, notebookID)
}

func (r *Refresher) acquire(notebookID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inflight[notebookID] {
		return false
	}
	r.inflight[notebookID] = true
	return true
}

func (r *Refresher) release(notebookID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.inflight, notebookID)
}
