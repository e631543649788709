package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_notification_service.go -package=mocks -mock_names=NotificationService=MockNotificationService notebook-ai/internal/service NotificationService

import (
	"context"
	"log/slog"

	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/storage"
)

// NotificationStore persists notifications.
type NotificationStore interface {
	Insert(ctx context.Context, n *storage.Notification) error
	ListByNotebook(ctx context.Context, notebookID string, limit int) ([]*storage.Notification, error)
}

// NotificationService records ingestion outcomes and serves them back per notebook.
type NotificationService interface {
	Notifier
	// List returns the newest notifications of a notebook. A limit <= 0 returns all.
	List(ctx context.Context, notebookID string, limit int) ([]*storage.Notification, error)
}

// notificationFeed implements NotificationService.
type notificationFeed struct {
	store NotificationStore
}

// NewNotificationService creates a NotificationService backed by store.
func NewNotificationService(store NotificationStore) NotificationService {
	return &notificationFeed{store: store}
}

// Notify persists n and logs it. A failed write is logged and dropped.
func (f *notificationFeed) Notify(ctx context.Context, n storage.Notification) {
	logger := contextutil.LoggerFromContext(ctx)

	level := slog.LevelInfo
	if n.Variant == storage.VariantDestructive {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, "notification", "notebook_id", n.NotebookID, "title", n.Title, "description", n.Description)

	if err := f.store.Insert(ctx, &n); err != nil {
		logger.ErrorContext(ctx, "failed to store notification", "notebook_id", n.NotebookID, "error", err)
	}
}

func (f *notificationFeed) List(ctx context.Context, notebookID string, limit int) ([]*storage.Notification, error) {
	if notebookID == "" {
		return nil, &MissingContextError{Field: "notebook_id"}
	}
	out, err := f.store.ListByNotebook(ctx, notebookID, limit)
	if err != nil {
		return nil, &PersistenceError{Op: "list notifications", Err: err}
	}
	return out, nil
}
