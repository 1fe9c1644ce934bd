package mcp

import (
	"context"
	"errors"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/punchclock/internal/domain/session"
)

func registerTools(server *sdkmcp.Server, services Services) {
	h := &toolHandlers{services: services}

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project to track time against",
	}, h.createProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List all projects with session counts and running state",
	}, h.listProjects)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project and all of its recorded sessions",
	}, h.deleteProject)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_timer",
		Description: "Start tracking time for a project, or stop the running session",
	}, h.toggleTimer)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "timer_status",
		Description: "Get the latest session for a project and what the next toggle will do",
	}, h.timerStatus)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_sessions",
		Description: "List completed sessions with formatted durations, newest first",
	}, h.listSessions)

	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_session",
		Description: "Delete a single recorded session by ID",
	}, h.deleteSession)
}

type toolHandlers struct {
	services Services
}

func (h *toolHandlers) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateProjectParams) (*sdkmcp.CallToolResult, CreateProjectResult, error) {
	proj, err := h.services.Projects.Create(ctx, params.Name)
	if err != nil {
		return nil, CreateProjectResult{}, err
	}
	return nil, CreateProjectResult{Project: proj}, nil
}

func (h *toolHandlers) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListProjectsParams) (*sdkmcp.CallToolResult, ListProjectsResult, error) {
	projects, err := h.services.Projects.List(ctx)
	if err != nil {
		return nil, ListProjectsResult{}, err
	}
	return nil, ListProjectsResult{Projects: projects}, nil
}

func (h *toolHandlers) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteProjectParams) (*sdkmcp.CallToolResult, DeletedResult, error) {
	if err := h.services.Projects.Delete(ctx, params.Name); err != nil {
		return nil, DeletedResult{}, err
	}
	return nil, DeletedResult{Deleted: true}, nil
}

func (h *toolHandlers) toggleTimer(ctx context.Context, _ *sdkmcp.CallToolRequest, params ToggleTimerParams) (*sdkmcp.CallToolResult, TimerResult, error) {
	toggled, err := h.services.Sessions.Toggle(ctx, params.Project)
	if err != nil {
		return nil, TimerResult{}, err
	}
	return nil, TimerResult{
		Session: toggled,
		Action:  session.NextAction(toggled),
	}, nil
}

func (h *toolHandlers) timerStatus(ctx context.Context, _ *sdkmcp.CallToolRequest, params TimerStatusParams) (*sdkmcp.CallToolResult, TimerResult, error) {
	latest, err := h.services.Sessions.Latest(ctx, params.Project)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			return nil, TimerResult{Action: session.ActionStart}, nil
		}
		return nil, TimerResult{}, err
	}
	return nil, TimerResult{
		Session: latest,
		Action:  session.NextAction(latest),
	}, nil
}

func (h *toolHandlers) listSessions(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListSessionsParams) (*sdkmcp.CallToolResult, ListSessionsResult, error) {
	rows, err := h.services.Reports.History(ctx)
	if err != nil {
		return nil, ListSessionsResult{}, err
	}
	return nil, ListSessionsResult{Sessions: rows}, nil
}

func (h *toolHandlers) deleteSession(ctx context.Context, _ *sdkmcp.CallToolRequest, params DeleteSessionParams) (*sdkmcp.CallToolResult, DeletedResult, error) {
	if err := h.services.Sessions.Delete(ctx, params.ID); err != nil {
		return nil, DeletedResult{}, err
	}
	return nil, DeletedResult{Deleted: true}, nil
}
