package transport

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/report"
	"github.com/rpggio/punchclock/internal/domain/session"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type dashboardView struct {
	Trackers []trackerView
	History  []report.Row
}

type trackerView struct {
	ID           int64
	Name         string
	SessionCount int
	Action       string
}

type toggleView struct {
	Name   string
	Action string
}

func newTrackerView(summary project.Summary) trackerView {
	action := session.ActionStart
	if summary.Running {
		action = session.ActionEnd
	}
	return trackerView{
		ID:           summary.ID,
		Name:         summary.Name,
		SessionCount: summary.SessionCount,
		Action:       action,
	}
}

func projectSummary(proj *project.Project) project.Summary {
	return project.Summary{
		ID:        proj.ID,
		Name:      proj.Name,
		CreatedAt: proj.CreatedAt,
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("rendering template", "template", name, "error", err)
	}
}
