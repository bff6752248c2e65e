package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/wirereport/pkg/domain/interfaces"
)

// maxRequestBodySize bounds JSON request bodies
const maxRequestBodySize = 1 << 20

// Server represents the HTTP server
type Server struct {
	*http.Server
	router chi.Router
}

// NewServer creates a new HTTP server
func NewServer(
	ctx context.Context,
	addr string,
	reportUC interfaces.ReportGenerator,
	teamsUC interfaces.TeamLister,
) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	reportHandler := NewReportHandler(reportUC)
	teamsHandler := NewTeamsHandler(teamsUC)

	router.Get("/health", handleHealth)

	router.Route("/api", func(r chi.Router) {
		r.Post("/report/generate", reportHandler.HandleGenerate)
		r.Post("/teams", teamsHandler.HandleList)
	})

	return &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router: router,
	}
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "wirereport",
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		ctxlog.From(ctx).Error("Failed to encode response", "error", err)
	}
}

// writeError writes a sanitized error message. Details stay in server logs.
func writeError(ctx context.Context, w http.ResponseWriter, status int, message string) {
	writeJSON(ctx, w, status, map[string]string{
		"error": message,
	})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(v)
}
