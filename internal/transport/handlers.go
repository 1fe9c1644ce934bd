package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/rpggio/punchclock/internal/domain/session"
)

type sessionResponse struct {
	Session *session.Session `json:"session"`
	Action  string           `json:"action"`
}

func (s *Server) handleGetProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.services.Projects.Get(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	proj, err := s.services.Projects.Create(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, proj)
}

func (s *Server) handleLatestSession(w http.ResponseWriter, r *http.Request) {
	latest, err := s.services.Sessions.Latest(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{
		Session: latest,
		Action:  session.NextAction(latest),
	})
}

func (s *Server) handleToggleSession(w http.ResponseWriter, r *http.Request) {
	toggled, err := s.services.Sessions.Toggle(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sessionResponse{
		Session: toggled,
		Action:  session.NextAction(toggled),
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.services.Projects.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	history, err := s.services.Reports.History(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	trackers := make([]trackerView, 0, len(summaries))
	for _, summary := range summaries {
		trackers = append(trackers, newTrackerView(summary))
	}

	s.render(w, http.StatusOK, "dashboard", dashboardView{
		Trackers: trackers,
		History:  history,
	})
}

// handleCreateTracker creates a project and returns its tracker widget.
// The name comes from the URL when present, otherwise from the dashboard
// creator form.
func (s *Server) handleCreateTracker(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		name = r.FormValue("name")
	}

	proj, err := s.services.Projects.Create(r.Context(), name)
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.render(w, http.StatusOK, "tracker", newTrackerView(projectSummary(proj)))
}

// handleToggleWidget toggles a project and returns the refreshed button,
// relabeled with the next action.
func (s *Server) handleToggleWidget(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	toggled, err := s.services.Sessions.Toggle(r.Context(), name)
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.render(w, http.StatusOK, "toggle", toggleView{
		Name:   name,
		Action: session.NextAction(toggled),
	})
}

func (s *Server) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.services.Projects.Delete(r.Context(), chi.URLParam(r, "name")); err != nil {
		s.renderError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.renderError(w, session.ErrInvalidInput)
		return
	}
	if err := s.services.Sessions.Delete(r.Context(), id); err != nil {
		s.renderError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
		http.Error(w, "internal error", status)
		return
	}
	http.Error(w, err.Error(), status)
}
