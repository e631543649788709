package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"

	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/service"
	"notebook-ai/internal/storage"
)

const maxUploadMemory = 32 << 20

// requestDialog records what the service asked of the dialog so the client can mirror it.
type requestDialog struct {
	mu     sync.Mutex
	closed bool
}

func (d *requestDialog) SetProcessing(bool) {}

func (d *requestDialog) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
}

func (d *requestDialog) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}

// IngestFilesResponse is returned once every file has a source record.
//
// swagger:model IngestFilesResponse
type IngestFilesResponse struct {
	SubmissionID string            `json:"submission_id"`
	Sources      []*storage.Source `json:"sources"`
	CloseDialog  bool              `json:"close_dialog"`
}

// IngestFilesHandler handles multipart file uploads for a notebook.
type IngestFilesHandler struct {
	ingest service.IngestService
}

// NewIngestFilesHandler creates a new IngestFilesHandler.
func NewIngestFilesHandler(ingest service.IngestService) *IngestFilesHandler {
	return &IngestFilesHandler{ingest: ingest}
}

// ServeHTTP handles HTTP requests for file ingestion.
//
// swagger:route POST /api/notebooks/{notebookID}/sources/files ingestFiles
//
// Creates one source per uploaded file and starts background processing.
// Responds 202 once the records exist.
func (h *IngestFilesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		logger.WarnContext(ctx, "invalid multipart body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid multipart body")
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "At least one file is required")
		return
	}

	files := make([]service.FileInput, 0, len(headers))
	for _, fh := range headers {
		f, err := readPart(fh)
		if err != nil {
			logger.WarnContext(ctx, "failed to read uploaded file", "file_name", fh.Filename, "error", err)
			writeError(w, http.StatusBadRequest, fmt.Sprintf("Failed to read file %s", fh.Filename))
			return
		}
		files = append(files, f)
	}

	dialog := &requestDialog{}
	sub, err := h.ingest.IngestFiles(ctx, chi.URLParam(r, "notebookID"), files, dialog)
	if err != nil {
		handleServiceError(ctx, w, err, "Failed to add files")
		return
	}

	writeJSON(ctx, w, http.StatusAccepted, IngestFilesResponse{
		SubmissionID: sub.ID,
		Sources:      sub.Sources,
		CloseDialog:  dialog.isClosed(),
	})
}

func readPart(fh *multipart.FileHeader) (service.FileInput, error) {
	f, err := fh.Open()
	if err != nil {
		return service.FileInput{}, err
	}
	defer func() {
		_ = f.Close()
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return service.FileInput{}, err
	}
	return service.FileInput{
		Name:     fh.Filename,
		MIMEType: detectMIME(fh.Filename, fh.Header.Get("Content-Type"), data),
		Size:     int64(len(data)),
		Data:     data,
	}, nil
}

// detectMIME prefers the declared part type, then the file extension, then content sniffing.
func detectMIME(name, declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}

// IngestTextRequest is the payload for adding copied text.
//
// swagger:model IngestTextRequest
type IngestTextRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// IngestTextResponse wraps the created text source. Error is set when the
// source was created but could not be handed to the remote processor.
//
// swagger:model IngestTextResponse
type IngestTextResponse struct {
	Source      *storage.Source `json:"source,omitempty"`
	CloseDialog bool            `json:"close_dialog"`
	Error       string          `json:"error,omitempty"`
}

// IngestTextHandler handles copied-text ingestion.
type IngestTextHandler struct {
	ingest service.IngestService
}

// NewIngestTextHandler creates a new IngestTextHandler.
func NewIngestTextHandler(ingest service.IngestService) *IngestTextHandler {
	return &IngestTextHandler{ingest: ingest}
}

// ServeHTTP handles HTTP requests for text ingestion.
//
// swagger:route POST /api/notebooks/{notebookID}/sources/text ingestText
func (h *IngestTextHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req IngestTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dialog := &requestDialog{}
	src, err := h.ingest.IngestText(ctx, chi.URLParam(r, "notebookID"), req.Title, req.Content, dialog)
	if err != nil && !dialog.isClosed() {
		handleServiceError(ctx, w, err, "Failed to add text source")
		return
	}
	if err != nil {
		// Past validation the dialog is closed whatever the outcome.
		logger.ErrorContext(ctx, "service error", "error", err)
		statusCode, message := serviceErrorStatus(err, "Failed to add text source")
		writeJSON(ctx, w, statusCode, IngestTextResponse{Source: src, CloseDialog: true, Error: message})
		return
	}

	writeJSON(ctx, w, http.StatusCreated, IngestTextResponse{Source: src, CloseDialog: dialog.isClosed()})
}

// IngestWebsitesRequest is the payload for adding websites.
//
// swagger:model IngestWebsitesRequest
type IngestWebsitesRequest struct {
	URLs []string `json:"urls"`
}

// IngestWebsitesResponse lists the created website sources.
//
// swagger:model IngestWebsitesResponse
type IngestWebsitesResponse struct {
	Sources     []*storage.Source `json:"sources"`
	CloseDialog bool              `json:"close_dialog"`
}

// IngestWebsitesHandler handles website ingestion.
type IngestWebsitesHandler struct {
	ingest service.IngestService
}

// NewIngestWebsitesHandler creates a new IngestWebsitesHandler.
func NewIngestWebsitesHandler(ingest service.IngestService) *IngestWebsitesHandler {
	return &IngestWebsitesHandler{ingest: ingest}
}

// ServeHTTP handles HTTP requests for website ingestion.
//
// swagger:route POST /api/notebooks/{notebookID}/sources/websites ingestWebsites
func (h *IngestWebsitesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodPost {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req IngestWebsitesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	dialog := &requestDialog{}
	sources, err := h.ingest.IngestWebsites(ctx, chi.URLParam(r, "notebookID"), req.URLs, dialog)
	if err != nil {
		var remoteErr *service.RemoteInvocationError
		if errors.As(err, &remoteErr) && len(sources) > 0 {
			logger.WarnContext(ctx, "website sources created but not handed off", "count", len(sources), "error", err)
		}
		handleServiceError(ctx, w, err, "Failed to add websites")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, IngestWebsitesResponse{Sources: sources, CloseDialog: dialog.isClosed()})
}
