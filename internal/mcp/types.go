package mcp

import (
	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/report"
	"github.com/rpggio/punchclock/internal/domain/session"
)

type CreateProjectParams struct {
	Name string `json:"name"`
}

type CreateProjectResult struct {
	Project *project.Project `json:"project"`
}

type DeleteProjectParams struct {
	Name string `json:"name"`
}

type ListProjectsParams struct{}

type ListProjectsResult struct {
	Projects []project.Summary `json:"projects"`
}

type ToggleTimerParams struct {
	Project string `json:"project"`
}

type TimerStatusParams struct {
	Project string `json:"project"`
}

// TimerResult reports a session together with what the next toggle on
// its project will do.
type TimerResult struct {
	Session *session.Session `json:"session,omitempty"`
	Action  string           `json:"action"`
}

type ListSessionsParams struct{}

type ListSessionsResult struct {
	Sessions []report.Row `json:"sessions"`
}

type DeleteSessionParams struct {
	ID int64 `json:"id"`
}

type DeletedResult struct {
	Deleted bool `json:"deleted"`
}
