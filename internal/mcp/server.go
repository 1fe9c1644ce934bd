// Package mcp exposes the tracker to MCP clients so agents can punch the
// clock alongside the web dashboard.
package mcp

import (
	"context"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/report"
	"github.com/rpggio/punchclock/internal/domain/session"
)

// ProjectService defines project operations needed by MCP.
type ProjectService interface {
	Create(ctx context.Context, name string) (*project.Project, error)
	List(ctx context.Context) ([]project.Summary, error)
	Delete(ctx context.Context, name string) error
}

// SessionService defines session operations needed by MCP.
type SessionService interface {
	Toggle(ctx context.Context, projectName string) (*session.Session, error)
	Latest(ctx context.Context, projectName string) (*session.Session, error)
	Delete(ctx context.Context, id int64) error
}

// ReportService defines the history listing needed by MCP.
type ReportService interface {
	History(ctx context.Context) ([]report.Row, error)
}

// Services contains all domain services needed by MCP.
type Services struct {
	Projects ProjectService
	Sessions SessionService
	Reports  ReportService
}

// Config contains server configuration.
type Config struct {
	Services Services
	Logger   *slog.Logger
}

// NewServer creates and configures an MCP server with all tools and
// resources.
func NewServer(cfg Config) *sdkmcp.Server {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "punchclock",
		Version: "0.1.0",
	}, &sdkmcp.ServerOptions{
		Instructions: serverInstructions,
		Logger:       cfg.Logger,
	})

	registerDocResources(server)

	server.AddReceivingMiddleware(trafficLoggingMiddleware(cfg.Logger, "inbound"))
	server.AddSendingMiddleware(trafficLoggingMiddleware(cfg.Logger, "outbound"))

	registerTools(server, cfg.Services)

	return server
}
