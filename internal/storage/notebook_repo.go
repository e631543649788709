package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// NotebookRepo stores the audio overview state of notebooks.
type NotebookRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewNotebookRepo creates a new NotebookRepo.
func NewNotebookRepo(db *sql.DB) *NotebookRepo {
	return &NotebookRepo{db: db, now: time.Now}
}

// SetAudio records the current audio overview URL of a notebook.
func (r *NotebookRepo) SetAudio(ctx context.Context, notebookID, url string, expiresAt time.Time) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO notebook_audio (notebook_id, audio_overview_url, audio_url_expires_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (notebook_id) DO UPDATE SET
		 audio_overview_url = excluded.audio_overview_url,
		 audio_url_expires_at = excluded.audio_url_expires_at,
		 updated_at = excluded.updated_at`,
		notebookID, url, formatTime(expiresAt), formatTime(r.now()),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert notebook audio: %w", err)
	}
	return nil
}

// GetAudio returns the audio overview of a notebook.
// Returns nil and ErrNotFound if the notebook has none.
func (r *NotebookRepo) GetAudio(ctx context.Context, notebookID string) (*NotebookAudio, error) {
	var a NotebookAudio
	var expiresAt, updatedAt string
	err := r.db.QueryRowContext(ctx,
		"SELECT notebook_id, audio_overview_url, audio_url_expires_at, updated_at FROM notebook_audio WHERE notebook_id = ?",
		notebookID,
	).Scan(&a.NotebookID, &a.URL, &expiresAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query notebook audio: %w", err)
	}
	if a.ExpiresAt, err = parseTime(expiresAt); err != nil {
		return nil, err
	}
	if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

// ListExpiredAudio returns notebooks whose audio URL expires at or before now.
func (r *NotebookRepo) ListExpiredAudio(ctx context.Context, now time.Time) ([]*NotebookAudio, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT notebook_id, audio_overview_url, audio_url_expires_at, updated_at
		 FROM notebook_audio WHERE audio_url_expires_at <= ? ORDER BY audio_url_expires_at`,
		formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query expired audio: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	out := []*NotebookAudio{}
	for rows.Next() {
		var a NotebookAudio
		var expiresAt, updatedAt string
		if err := rows.Scan(&a.NotebookID, &a.URL, &expiresAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan notebook audio: %w", err)
		}
		if a.ExpiresAt, err = parseTime(expiresAt); err != nil {
			return nil, err
		}
		if a.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return out, nil
}
