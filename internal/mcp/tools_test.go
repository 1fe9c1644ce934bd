package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/report"
	"github.com/rpggio/punchclock/internal/domain/session"
	"github.com/rpggio/punchclock/internal/sqlite"
)

func newTestHandlers(t *testing.T) *toolHandlers {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { _ = db.Close() })

	projectRepo := sqlite.NewProjectRepository(db)
	sessionRepo := sqlite.NewSessionRepository(db)
	uow := sqlite.NewUnitOfWork(db)

	return &toolHandlers{services: Services{
		Projects: project.NewService(projectRepo, nil),
		Sessions: session.NewService(sessionRepo, uow, nil),
		Reports:  report.NewService(sessionRepo, nil),
	}}
}

func TestToolHandlers_ProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	_, created, err := h.createProject(ctx, nil, CreateProjectParams{Name: "website"})
	require.NoError(t, err)
	require.Equal(t, "website", created.Project.Name)

	_, listed, err := h.listProjects(ctx, nil, ListProjectsParams{})
	require.NoError(t, err)
	require.Len(t, listed.Projects, 1)

	_, deleted, err := h.deleteProject(ctx, nil, DeleteProjectParams{Name: "website"})
	require.NoError(t, err)
	require.True(t, deleted.Deleted)

	_, listed, err = h.listProjects(ctx, nil, ListProjectsParams{})
	require.NoError(t, err)
	require.Empty(t, listed.Projects)
}

func TestToolHandlers_TimerRoundTrip(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	_, _, err := h.createProject(ctx, nil, CreateProjectParams{Name: "website"})
	require.NoError(t, err)

	// No sessions yet: status reports start with no session attached
	_, status, err := h.timerStatus(ctx, nil, TimerStatusParams{Project: "website"})
	require.NoError(t, err)
	require.Nil(t, status.Session)
	require.Equal(t, session.ActionStart, status.Action)

	_, started, err := h.toggleTimer(ctx, nil, ToggleTimerParams{Project: "website"})
	require.NoError(t, err)
	require.True(t, started.Session.Open())
	require.Equal(t, session.ActionEnd, started.Action)

	_, stopped, err := h.toggleTimer(ctx, nil, ToggleTimerParams{Project: "website"})
	require.NoError(t, err)
	require.Equal(t, started.Session.ID, stopped.Session.ID)
	require.Equal(t, session.ActionStart, stopped.Action)

	_, sessions, err := h.listSessions(ctx, nil, ListSessionsParams{})
	require.NoError(t, err)
	require.Len(t, sessions.Sessions, 1)
	require.NotEmpty(t, sessions.Sessions[0].Duration)

	_, deleted, err := h.deleteSession(ctx, nil, DeleteSessionParams{ID: stopped.Session.ID})
	require.NoError(t, err)
	require.True(t, deleted.Deleted)
}

func TestToolHandlers_ToggleUnknownProject(t *testing.T) {
	ctx := context.Background()
	h := newTestHandlers(t)

	_, _, err := h.toggleTimer(ctx, nil, ToggleTimerParams{Project: "ghost"})
	require.ErrorIs(t, err, session.ErrProjectNotFound)
}
