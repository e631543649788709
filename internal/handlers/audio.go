package handlers

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_audio_service.go -package=mocks notebook-ai/internal/handlers AudioService

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"notebook-ai/internal/audio"
	"notebook-ai/internal/contextutil"
	"notebook-ai/internal/storage"
)

// AudioService manages the audio overview URL of a notebook.
// *audio.Refresher implements it.
type AudioService interface {
	RefreshIfExpired(ctx context.Context, notebookID string) (*storage.NotebookAudio, bool, error)
	Refresh(ctx context.Context, notebookID string) (*storage.NotebookAudio, error)
	SetAudio(ctx context.Context, notebookID, url string, expiresAt time.Time) (*storage.NotebookAudio, error)
}

// AudioResponse is the audio overview state of a notebook.
//
// swagger:model AudioResponse
type AudioResponse struct {
	*storage.NotebookAudio
	Refreshed bool `json:"refreshed"`
}

// SetAudioRequest is the payload for recording a new audio overview URL.
//
// swagger:model SetAudioRequest
type SetAudioRequest struct {
	URL       string    `json:"audio_overview_url"`
	ExpiresAt time.Time `json:"audio_url_expires_at"`
}

// AudioHandler reads (GET) and records (PUT) a notebook's audio overview URL.
// GET refreshes the URL first when it has expired.
type AudioHandler struct {
	audio AudioService
}

// NewAudioHandler creates a new AudioHandler.
func NewAudioHandler(audio AudioService) *AudioHandler {
	return &AudioHandler{audio: audio}
}

// ServeHTTP handles HTTP requests for a notebook's audio overview.
//
// swagger:route GET /api/notebooks/{notebookID}/audio getAudio
// swagger:route PUT /api/notebooks/{notebookID}/audio setAudio
func (h *AudioHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)
	notebookID := chi.URLParam(r, "notebookID")

	switch r.Method {
	case http.MethodGet:
		a, refreshed, err := h.audio.RefreshIfExpired(ctx, notebookID)
		if err != nil {
			handleAudioError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, AudioResponse{NotebookAudio: a, Refreshed: refreshed})

	case http.MethodPut:
		var req SetAudioRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WarnContext(ctx, "invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.URL == "" || req.ExpiresAt.IsZero() {
			writeError(w, http.StatusBadRequest, "audio_overview_url and audio_url_expires_at are required")
			return
		}
		a, err := h.audio.SetAudio(ctx, notebookID, req.URL, req.ExpiresAt)
		if err != nil {
			handleAudioError(ctx, w, err)
			return
		}
		writeJSON(ctx, w, http.StatusOK, AudioResponse{NotebookAudio: a})

	default:
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// AudioRefreshHandler forces a new signed audio URL.
type AudioRefreshHandler struct {
	audio AudioService
}

// NewAudioRefreshHandler creates a new AudioRefreshHandler.
func NewAudioRefreshHandler(audio AudioService) *AudioRefreshHandler {
	return &AudioRefreshHandler{audio: audio}
}

// ServeHTTP handles HTTP requests for audio URL refresh.
//
// swagger:route POST /api/notebooks/{notebookID}/audio/refresh refreshAudio
func (h *AudioRefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	a, err := h.audio.Refresh(ctx, chi.URLParam(r, "notebookID"))
	if err != nil {
		handleAudioError(ctx, w, err)
		return
	}
	writeJSON(ctx, w, http.StatusOK, AudioResponse{NotebookAudio: a, Refreshed: true})
}

func handleAudioError(ctx context.Context, w http.ResponseWriter, err error) {
	logger := contextutil.LoggerFromContext(ctx)

	var signerErr *audio.SignerError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, "Notebook has no audio overview")
	case errors.Is(err, audio.ErrRefreshInProgress):
		writeError(w, http.StatusConflict, "Audio refresh already in progress")
	case errors.As(err, &signerErr):
		logger.ErrorContext(ctx, "audio url signing failed", "error", err)
		writeError(w, http.StatusBadGateway, "Failed to refresh audio")
	default:
		logger.ErrorContext(ctx, "audio request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to load audio")
	}
}
