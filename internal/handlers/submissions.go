package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"notebook-ai/internal/service"
)

// SubmissionTracker reports on in-flight file submissions.
// *service.Registry implements it.
type SubmissionTracker interface {
	List() []service.SubmissionStatus
	Lookup(id string) (service.SubmissionStatus, bool)
}

// SubmissionsResponse lists in-flight submissions.
//
// swagger:model SubmissionsResponse
type SubmissionsResponse struct {
	Submissions []service.SubmissionStatus `json:"submissions"`
}

// SubmissionsHandler lists in-flight submissions, or one when an ID is routed.
type SubmissionsHandler struct {
	tracker SubmissionTracker
}

// NewSubmissionsHandler creates a new SubmissionsHandler.
func NewSubmissionsHandler(tracker SubmissionTracker) *SubmissionsHandler {
	return &SubmissionsHandler{tracker: tracker}
}

// ServeHTTP handles HTTP requests for submission progress.
//
// swagger:route GET /api/submissions listSubmissions
// swagger:route GET /api/submissions/{submissionID} getSubmission
func (h *SubmissionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if id := chi.URLParam(r, "submissionID"); id != "" {
		status, ok := h.tracker.Lookup(id)
		if !ok {
			writeError(w, http.StatusNotFound, "Submission not found or already settled")
			return
		}
		writeJSON(ctx, w, http.StatusOK, status)
		return
	}

	writeJSON(ctx, w, http.StatusOK, SubmissionsResponse{Submissions: h.tracker.List()})
}
