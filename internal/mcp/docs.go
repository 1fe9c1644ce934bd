package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `Punchclock tracks time per project with a single toggle.

Call toggle_timer with a project name to start tracking; call it again to
stop. A project has at most one running session at a time. Use
timer_status to see whether the next toggle will "start" or "end", and
list_sessions for completed sessions with formatted durations.`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "punchclock://docs/usage",
		Name:        "usage",
		Title:       "Punchclock usage",
		Description: "How the toggle model works",
		Content: `# Punchclock usage

## The toggle model

Every project is either idle or running. toggle_timer flips it:

- idle -> a new open session begins at the current instant
- running -> the open session ends at the current instant

The action returned by timer_status and toggle_timer tells you what the
NEXT toggle will do ("start" or "end"). It is derived from the latest
session on every call, never cached.

## History

list_sessions returns only completed sessions, newest first, with
durations formatted for display (e.g. "30.00 seconds", "1.50 minutes").
A running session appears in history only after it is stopped.

## Cleanup

delete_project removes a project and every session recorded against it.
delete_session removes a single entry from the history.`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		doc := doc

		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
