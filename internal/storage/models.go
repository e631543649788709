package storage

import (
	"errors"
	"time"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidTransition is returned when a status update would move a source backwards.
	ErrInvalidTransition = errors.New("invalid processing status transition")
)

// SourceType is the kind of content a source holds.
type SourceType string

const (
	SourceTypePDF     SourceType = "pdf"
	SourceTypeText    SourceType = "text"
	SourceTypeWebsite SourceType = "website"
	SourceTypeYouTube SourceType = "youtube"
	SourceTypeAudio   SourceType = "audio"
)

// Valid reports whether t is a known source type.
func (t SourceType) Valid() bool {
	switch t {
	case SourceTypePDF, SourceTypeText, SourceTypeWebsite, SourceTypeYouTube, SourceTypeAudio:
		return true
	}
	return false
}

// ProcessingStatus is the lifecycle state of a source.
type ProcessingStatus string

const (
	StatusPending    ProcessingStatus = "pending"
	StatusUploading  ProcessingStatus = "uploading"
	StatusProcessing ProcessingStatus = "processing"
	StatusCompleted  ProcessingStatus = "completed"
	StatusFailed     ProcessingStatus = "failed"
)

// rank orders the forward path; failed sits outside it.
var statusRank = map[ProcessingStatus]int{
	StatusPending:    0,
	StatusUploading:  1,
	StatusProcessing: 2,
	StatusCompleted:  3,
}

// Valid reports whether s is a known status.
func (s ProcessingStatus) Valid() bool {
	if s == StatusFailed {
		return true
	}
	_, ok := statusRank[s]
	return ok
}

// Terminal reports whether no further transitions are allowed out of s.
func (s ProcessingStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether a source in status s may move to next.
// Rewriting the current status is always allowed.
func (s ProcessingStatus) CanTransition(next ProcessingStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s.Terminal() {
		return false
	}
	if next == StatusFailed {
		return true
	}
	return statusRank[next] > statusRank[s]
}

// Source is a unit of ingested content belonging to a notebook.
type Source struct {
	ID               string           `json:"id"`
	NotebookID       string           `json:"notebook_id"`
	Title            string           `json:"title"`
	Type             SourceType       `json:"type"`
	Content          string           `json:"content,omitempty"`
	URL              string           `json:"url,omitempty"`
	FilePath         string           `json:"file_path,omitempty"`
	FileSize         int64            `json:"file_size,omitempty"`
	ProcessingStatus ProcessingStatus `json:"processing_status"`
	Metadata         map[string]any   `json:"metadata,omitempty"`
	FirstInBatch     bool             `json:"first_in_batch"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// SourceDraft is the input for creating a source. The ID is assigned by the store.
type SourceDraft struct {
	NotebookID       string
	Title            string
	Type             SourceType
	Content          string
	URL              string
	FileSize         int64
	ProcessingStatus ProcessingStatus
	Metadata         map[string]any
	// FirstInBatch marks the source whose creation may trigger notebook-level generation.
	FirstInBatch bool
}

// SourceUpdate holds the fields to change on a source. Nil fields are left untouched.
type SourceUpdate struct {
	Title            *string
	FilePath         *string
	ProcessingStatus *ProcessingStatus
}

// Notification is a user-facing message about an ingestion outcome.
type Notification struct {
	ID          string    `json:"id"`
	NotebookID  string    `json:"notebook_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Variant     string    `json:"variant"`
	CreatedAt   time.Time `json:"created_at"`
}

const (
	VariantDefault     = "default"
	VariantDestructive = "destructive"
)

// NotebookAudio is the audio overview state of a notebook.
type NotebookAudio struct {
	NotebookID string    `json:"notebook_id"`
	URL        string    `json:"audio_overview_url"`
	ExpiresAt  time.Time `json:"audio_url_expires_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Expired reports whether the audio URL is no longer valid at now.
func (a NotebookAudio) Expired(now time.Time) bool {
	return !a.ExpiresAt.After(now)
}
