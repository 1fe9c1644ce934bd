// Package report derives the read-only history view from recorded
// sessions. Open sessions never appear here; they are only visible
// through the per-project toggle widget.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/punchclock/internal/domain/session"
)

// Row is one closed session rendered for the history table.
type Row struct {
	SessionID   int64     `json:"session_id"`
	ProjectName string    `json:"project_name"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Duration    string    `json:"duration"`
}

// SessionLister provides the ordered session feed the report consumes.
type SessionLister interface {
	List(ctx context.Context) ([]session.Session, error)
}

// Service builds history rows.
type Service struct {
	sessions SessionLister
	logger   *slog.Logger
}

// NewService creates a new report service.
func NewService(sessions SessionLister, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sessions: sessions, logger: logger}
}

// History returns one row per closed session, newest first. Sessions
// that are still open are filtered out before formatting.
func (s *Service) History(ctx context.Context) ([]Row, error) {
	sessions, err := s.sessions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing sessions: %w", err)
	}

	rows := make([]Row, 0, len(sessions))
	for _, sess := range sessions {
		if sess.End == nil {
			continue
		}
		rows = append(rows, Row{
			SessionID:   sess.ID,
			ProjectName: sess.ProjectName,
			Start:       sess.Start,
			End:         *sess.End,
			Duration:    FormatDuration(sess.Start, *sess.End),
		})
	}
	return rows, nil
}
