package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/service"
	"notebook-ai/internal/storage"
)

// ListSourcesResponse lists the sources of a notebook.
//
// swagger:model ListSourcesResponse
type ListSourcesResponse struct {
	Sources []*storage.Source `json:"sources"`
}

// ListSourcesHandler lists the sources of a notebook.
type ListSourcesHandler struct {
	sources service.SourceService
}

// NewListSourcesHandler creates a new ListSourcesHandler.
func NewListSourcesHandler(sources service.SourceService) *ListSourcesHandler {
	return &ListSourcesHandler{sources: sources}
}

// ServeHTTP handles HTTP requests for listing sources.
//
// swagger:route GET /api/notebooks/{notebookID}/sources listSources
func (h *ListSourcesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	sources, err := h.sources.List(ctx, chi.URLParam(r, "notebookID"))
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to list sources")
		return
	}
	writeJSON(ctx, w, http.StatusOK, ListSourcesResponse{Sources: sources})
}

// RenameSourceRequest is the payload for renaming a source.
//
// swagger:model RenameSourceRequest
type RenameSourceRequest struct {
	Title string `json:"title"`
}

// RenameSourceHandler renames a source.
type RenameSourceHandler struct {
	sources service.SourceService
}

// NewRenameSourceHandler creates a new RenameSourceHandler.
func NewRenameSourceHandler(sources service.SourceService) *RenameSourceHandler {
	return &RenameSourceHandler{sources: sources}
}

// ServeHTTP handles HTTP requests for renaming a source.
//
// swagger:route PATCH /api/sources/{sourceID} renameSource
func (h *RenameSourceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req RenameSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	src, err := h.sources.Rename(ctx, chi.URLParam(r, "sourceID"), req.Title)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to rename source")
		return
	}
	writeJSON(ctx, w, http.StatusOK, src)
}

// SourceStatusRequest is the payload the remote processor sends to report progress.
//
// swagger:model SourceStatusRequest
type SourceStatusRequest struct {
	Status storage.ProcessingStatus `json:"processing_status"`
}

// SourceStatusHandler records a processing status reported for a source.
type SourceStatusHandler struct {
	sources service.SourceService
}

// NewSourceStatusHandler creates a new SourceStatusHandler.
func NewSourceStatusHandler(sources service.SourceService) *SourceStatusHandler {
	return &SourceStatusHandler{sources: sources}
}

// ServeHTTP handles HTTP requests for source status updates.
//
// swagger:route PUT /api/sources/{sourceID}/status updateSourceStatus
func (h *SourceStatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req SourceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	src, err := h.sources.UpdateStatus(ctx, chi.URLParam(r, "sourceID"), req.Status)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to update source status")
		return
	}
	writeJSON(ctx, w, http.StatusOK, src)
}
