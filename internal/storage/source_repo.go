package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_source_store.go -package=mocks notebook-ai/internal/storage SourceStore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SourceStore defines the interface for source storage operations.
type SourceStore interface {
	// Create inserts a new source and returns it with its assigned ID.
	Create(ctx context.Context, draft SourceDraft) (*Source, error)
	// Update applies the non-nil fields of upd to the source.
	// Returns ErrNotFound if the source does not exist and ErrInvalidTransition
	// if the status change would move the source backwards.
	Update(ctx context.Context, id string, upd SourceUpdate) error
	// Get gets a source by ID. Returns ErrNotFound if not found.
	Get(ctx context.Context, id string) (*Source, error)
	// ListByNotebook returns the sources of a notebook, oldest first.
	ListByNotebook(ctx context.Context, notebookID string) ([]*Source, error)
}

// SourceRepo provides methods for source operations.
// It implements the SourceStore interface.
type SourceRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewSourceRepo creates a new SourceRepo.
func NewSourceRepo(db *sql.DB) *SourceRepo {
	return &SourceRepo{db: db, now: time.Now}
}

const sourceColumns = `id, notebook_id, title, type, content, url, file_path, file_size,
	processing_status, metadata, first_in_batch, created_at, updated_at`

// Create inserts a new source. A UUID is generated for every new source.
func (r *SourceRepo) Create(ctx context.Context, draft SourceDraft) (*Source, error) {
	if draft.NotebookID == "" {
		return nil, fmt.Errorf("notebook id is required")
	}
	if !draft.Type.Valid() {
		return nil, fmt.Errorf("unknown source type %q", draft.Type)
	}
	status := draft.ProcessingStatus
	if status == "" {
		status = StatusPending
	}
	if !status.Valid() {
		return nil, fmt.Errorf("unknown processing status %q", status)
	}

	meta := draft.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}

	now := r.now().UTC()
	src := &Source{
		ID:               uuid.New().String(),
		NotebookID:       draft.NotebookID,
		Title:            draft.Title,
		Type:             draft.Type,
		Content:          draft.Content,
		URL:              draft.URL,
		FileSize:         draft.FileSize,
		ProcessingStatus: status,
		Metadata:         meta,
		FirstInBatch:     draft.FirstInBatch,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO sources (`+sourceColumns+`)
		 VALUES (?, ?, ?, ?, ?, ?, '', ?, ?, ?, ?, ?, ?)`,
		src.ID, src.NotebookID, src.Title, string(src.Type), src.Content, src.URL, src.FileSize,
		string(src.ProcessingStatus), string(metaJSON), src.FirstInBatch,
		formatTime(now), formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert source: %w", err)
	}

	return src, nil
}

// Update applies a partial update. The status guard is part of the UPDATE
// statement, so a regression is refused atomically.
func (r *SourceRepo) Update(ctx context.Context, id string, upd SourceUpdate) error {
	sets := []string{}
	args := []any{}
	if upd.ProcessingStatus != nil {
		sets = append(sets, "processing_status = ?")
		args = append(args, string(*upd.ProcessingStatus))
	}
	if upd.FilePath != nil {
		sets = append(sets, "file_path = ?")
		args = append(args, *upd.FilePath)
	}
	if upd.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *upd.Title)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(r.now()))
	query := "UPDATE sources SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	if upd.ProcessingStatus != nil {
		next := *upd.ProcessingStatus
		if !next.Valid() {
			return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
		}
		from := allowedPredecessors(next)
		query += " AND processing_status IN (?" + strings.Repeat(", ?", len(from)-1) + ")"
		for _, s := range from {
			args = append(args, string(s))
		}
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update source: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n > 0 {
		return nil
	}

	// Nothing matched: either the source is gone or the guard refused the status.
	current, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if upd.ProcessingStatus == nil {
		return ErrNotFound
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.ProcessingStatus, *upd.ProcessingStatus)
}

// allowedPredecessors lists every status that may move to next.
func allowedPredecessors(next ProcessingStatus) []ProcessingStatus {
	all := []ProcessingStatus{StatusPending, StatusUploading, StatusProcessing, StatusCompleted, StatusFailed}
	from := make([]ProcessingStatus, 0, len(all))
	for _, s := range all {
		if s.CanTransition(next) {
			from = append(from, s)
		}
	}
	return from
}

// Get gets a source by ID.
// Returns nil and ErrNotFound if not found.
func (r *SourceRepo) Get(ctx context.Context, id string) (*Source, error) {
	row := r.db.QueryRowContext(ctx, "SELECT "+sourceColumns+" FROM sources WHERE id = ?", id)
	src, err := scanSource(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return src, nil
}

// ListByNotebook returns all sources for a notebook ordered by creation time.
// Returns an empty slice if the notebook has no sources.
func (r *SourceRepo) ListByNotebook(ctx context.Context, notebookID string) ([]*Source, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+sourceColumns+" FROM sources WHERE notebook_id = ? ORDER BY created_at, rowid",
		notebookID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query sources: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	sources := []*Source{}
	for rows.Next() {
		src, err := scanSource(rows)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	return sources, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSource(row rowScanner) (*Source, error) {
	var (
		src                  Source
		typ, status, meta    string
		createdAt, updatedAt string
	)
	err := row.Scan(&src.ID, &src.NotebookID, &src.Title, &typ, &src.Content, &src.URL,
		&src.FilePath, &src.FileSize, &status, &meta, &src.FirstInBatch, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan source: %w", err)
	}
	src.Type = SourceType(typ)
	src.ProcessingStatus = ProcessingStatus(status)

	if err := json.Unmarshal([]byte(meta), &src.Metadata); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	if src.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if src.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return &src, nil
}
