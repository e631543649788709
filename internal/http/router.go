package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"notebook-ai/internal/handlers"
	"notebook-ai/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	IngestService       service.IngestService
	SourceService       service.SourceService
	NotificationService service.NotificationService
	Submissions         handlers.SubmissionTracker
	Audio               handlers.AudioService
	DB                  handlers.Pinger
	// Inflight reports running file submissions for the health check. May be nil.
	Inflight func() int
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	// Add CORS middleware
	r.Use(CORS)

	ingestFiles := handlers.NewIngestFilesHandler(deps.IngestService)
	ingestText := handlers.NewIngestTextHandler(deps.IngestService)
	ingestWebsites := handlers.NewIngestWebsitesHandler(deps.IngestService)
	listSources := handlers.NewListSourcesHandler(deps.SourceService)
	renameSource := handlers.NewRenameSourceHandler(deps.SourceService)
	sourceStatus := handlers.NewSourceStatusHandler(deps.SourceService)
	notifications := handlers.NewNotificationsHandler(deps.NotificationService)
	submissions := handlers.NewSubmissionsHandler(deps.Submissions)
	audio := handlers.NewAudioHandler(deps.Audio)
	audioRefresh := handlers.NewAudioRefreshHandler(deps.Audio)
	health := handlers.NewHealthHandler(deps.DB, deps.Inflight)

	// Register API routes
	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", health)

		r.Route("/notebooks/{notebookID}", func(r chi.Router) {
			r.Method(http.MethodGet, "/sources", listSources)
			r.Method(http.MethodPost, "/sources/files", ingestFiles)
			r.Method(http.MethodPost, "/sources/text", ingestText)
			r.Method(http.MethodPost, "/sources/websites", ingestWebsites)
			r.Method(http.MethodGet, "/notifications", notifications)
			r.Method(http.MethodGet, "/audio", audio)
			r.Method(http.MethodPut, "/audio", audio)
			r.Method(http.MethodPost, "/audio/refresh", audioRefresh)
		})

		r.Method(http.MethodPatch, "/sources/{sourceID}", renameSource)
		r.Method(http.MethodPut, "/sources/{sourceID}/status", sourceStatus)

		r.Method(http.MethodGet, "/submissions", submissions)
		r.Method(http.MethodGet, "/submissions/{submissionID}", submissions)
	})

	return r
}
