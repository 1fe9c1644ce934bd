// Package transport exposes the web surface: a JSON API, htmx partials
// for the dashboard, and an optional MCP mount. All domain decisions live
// in the services; handlers only translate.
package transport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/report"
	"github.com/rpggio/punchclock/internal/domain/session"
)

// ProjectService defines project operations needed by the web surface.
type ProjectService interface {
	Create(ctx context.Context, name string) (*project.Project, error)
	Get(ctx context.Context, name string) (*project.Project, error)
	List(ctx context.Context) ([]project.Summary, error)
	Delete(ctx context.Context, name string) error
}

// SessionService defines session operations needed by the web surface.
type SessionService interface {
	Toggle(ctx context.Context, projectName string) (*session.Session, error)
	Latest(ctx context.Context, projectName string) (*session.Session, error)
	Delete(ctx context.Context, id int64) error
}

// ReportService defines the history listing.
type ReportService interface {
	History(ctx context.Context) ([]report.Row, error)
}

// Services contains the domain services the router dispatches to.
type Services struct {
	Projects ProjectService
	Sessions SessionService
	Reports  ReportService
}

// Server wires HTTP handlers.
type Server struct {
	services Services
	logger   *slog.Logger
}

// NewRouter creates the application router. mcpHandler, when non-nil, is
// mounted at /mcp on the same listener.
func NewRouter(services Services, logger *slog.Logger, mcpHandler http.Handler) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}
	srv := &Server{services: services, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(RequestLogger(logger))

	r.Get("/", srv.handleDashboard)
	r.Get("/health", srv.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/project/{name}", srv.handleGetProject)
		r.Post("/project/{name}", srv.handleCreateProject)
		r.Get("/session/{name}", srv.handleLatestSession)
		r.Post("/session/{name}", srv.handleToggleSession)
	})

	r.Route("/htmx", func(r chi.Router) {
		r.Post("/project", srv.handleCreateTracker)
		r.Post("/project/{name}", srv.handleCreateTracker)
		r.Post("/session/{name}", srv.handleToggleWidget)
		r.Patch("/session/{name}", srv.handleToggleWidget)
		r.Delete("/deleteProject/{name}", srv.handleDeleteProject)
		r.Delete("/deleteSession/{id}", srv.handleDeleteSession)
	})

	if mcpHandler != nil {
		r.Handle("/mcp", mcpHandler)
		r.Handle("/mcp/", mcpHandler)
	}

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
