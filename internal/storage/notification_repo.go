package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NotificationRepo persists user-facing notifications per notebook.
type NotificationRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewNotificationRepo creates a new NotificationRepo.
func NewNotificationRepo(db *sql.DB) *NotificationRepo {
	return &NotificationRepo{db: db, now: time.Now}
}

// Insert stores a notification, filling in ID, variant and timestamp when unset.
func (r *NotificationRepo) Insert(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Variant == "" {
		n.Variant = VariantDefault
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO notifications (id, notebook_id, title, description, variant, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		n.ID, n.NotebookID, n.Title, n.Description, n.Variant, formatTime(n.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert notification: %w", err)
	}
	return nil
}

// ListByNotebook returns the newest notifications of a notebook first.
// A non-positive limit returns all of them.
func (r *NotificationRepo) ListByNotebook(ctx context.Context, notebookID string, limit int) ([]*Notification, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, notebook_id, title, description, variant, created_at
		 FROM notifications WHERE notebook_id = ?
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		notebookID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := []*Notification{}
	for rows.Next() {
		var n Notification
		var createdAt string
		if err := rows.Scan(&n.ID, &n.NotebookID, &n.Title, &n.Description, &n.Variant, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}
		if n.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		out = append(out, &n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}
