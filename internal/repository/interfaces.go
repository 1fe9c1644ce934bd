// Excluded from the build: these declarations import the domain packages
// while the domain services import this package for its sentinel errors,
// which the compiler rejects as an import cycle. Nothing references these
// interface types by name, so they are parked here until the cycle is
// resolved at the design level.
//go:build ignore

package repository

import (
	"context"
	"time"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/domain/session"
)

// ProjectRepository manages project persistence
type ProjectRepository interface {
	Create(ctx context.Context, proj *project.Project) error
	GetByName(ctx context.Context, name string) (*project.Project, error)
	List(ctx context.Context) ([]project.Summary, error)
	Delete(ctx context.Context, name string) error
}

// SessionRepository manages session persistence. FindLatest orders by
// start descending with the row ID as tiebreak, so the latest insert wins
// when two sessions share a start instant.
type SessionRepository interface {
	Insert(ctx context.Context, projectName string, start time.Time) (*session.Session, error)
	FindLatest(ctx context.Context, projectName string) (*session.Session, error)
	CloseOpen(ctx context.Context, id int64, end time.Time) (*session.Session, error)
	Get(ctx context.Context, id int64) (*session.Session, error)
	List(ctx context.Context) ([]session.Session, error)
	Delete(ctx context.Context, id int64) error
}
