package session

import (
	"context"
	"time"

	"github.com/rpggio/punchclock/internal/domain/project"
)

// Repository provides persistence for sessions.
type Repository interface {
	Insert(ctx context.Context, projectName string, start time.Time) (*Session, error)
	FindLatest(ctx context.Context, projectName string) (*Session, error)
	CloseOpen(ctx context.Context, id int64, end time.Time) (*Session, error)
	Get(ctx context.Context, id int64) (*Session, error)
	List(ctx context.Context) ([]Session, error)
	Delete(ctx context.Context, id int64) error
}

// ProjectRepository provides project lookups for toggle validation.
type ProjectRepository interface {
	GetByName(ctx context.Context, name string) (*project.Project, error)
}

// Repositories bundles the transaction-scoped repositories a toggle needs.
type Repositories struct {
	Sessions Repository
	Projects ProjectRepository
}

// UnitOfWork runs a function within a single storage transaction. The
// toggle's find-latest-then-write sequence must not interleave with
// another toggle on the same project.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos Repositories) error) error
}
