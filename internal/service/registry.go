package service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"notebook-ai/internal/storage"
)

// Outcome summarises a settled submission.
type Outcome struct {
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
	FailedIDs []string `json:"failed_ids,omitempty"`
}

// SubmissionStatus is a point-in-time view of a submission.
type SubmissionStatus struct {
	ID         string    `json:"id"`
	NotebookID string    `json:"notebook_id"`
	Total      int       `json:"total"`
	Settled    int       `json:"settled"`
	Failed     int       `json:"failed"`
	StartedAt  time.Time `json:"started_at"`
}

// Submission tracks the background pipelines of one file batch.
type Submission struct {
	ID         string
	NotebookID string
	Sources    []*storage.Source
	StartedAt  time.Time

	mu        sync.Mutex
	settled   int
	failedIDs []string
	outcome   Outcome
	done      chan struct{}
}

func newSubmission(notebookID string, sources []*storage.Source, now time.Time) *Submission {
	return &Submission{
		ID:         uuid.New().String(),
		NotebookID: notebookID,
		Sources:    sources,
		StartedAt:  now,
		done:       make(chan struct{}),
	}
}

func (s *Submission) record(sourceID string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settled++
	if err != nil {
		s.failedIDs = append(s.failedIDs, sourceID)
	}
}

func (s *Submission) tally() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	failed := append([]string(nil), s.failedIDs...)
	sort.Strings(failed)
	return Outcome{
		Succeeded: s.settled - len(failed),
		Failed:    len(failed),
		FailedIDs: failed,
	}
}

func (s *Submission) finish(o Outcome) {
	s.mu.Lock()
	s.outcome = o
	s.mu.Unlock()
	close(s.done)
}

// Done is closed once every pipeline has settled and the outcome is reported.
func (s *Submission) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the submission settles and returns its outcome.
func (s *Submission) Wait() Outcome {
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

// Status returns the current progress of the submission.
func (s *Submission) Status() SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SubmissionStatus{
		ID:         s.ID,
		NotebookID: s.NotebookID,
		Total:      len(s.Sources),
		Settled:    s.settled,
		Failed:     len(s.failedIDs),
		StartedAt:  s.StartedAt,
	}
}

// Registry holds the submissions whose pipelines are still running.
// Entries are removed when they settle.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*Submission
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*Submission)}
}

func (r *Registry) add(s *Submission) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[s.ID] = s
}

func (r *Registry) remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
}

// Get returns the in-flight submission with the given ID.
func (r *Registry) Get(id string) (*Submission, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.entries[id]
	return s, ok
}

// Lookup returns the status of the in-flight submission with the given ID.
func (r *Registry) Lookup(id string) (SubmissionStatus, bool) {
	s, ok := r.Get(id)
	if !ok {
		return SubmissionStatus{}, false
	}
	return s.Status(), true
}

// List returns the status of every in-flight submission, oldest first.
func (r *Registry) List() []SubmissionStatus {
	r.mu.RLock()
	subs := make([]*Submission, 0, len(r.entries))
	for _, s := range r.entries {
		subs = append(subs, s)
	}
	r.mu.RUnlock()

	out := make([]SubmissionStatus, 0, len(subs))
	for _, s := range subs {
		out = append(out, s.Status())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartedAt.Equal(out[j].StartedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartedAt.Before(out[j].StartedAt)
	})
	return out
}

// Len returns the number of in-flight submissions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}
