package sqlite

import (
	"context"
	"fmt"

	"github.com/rpggio/punchclock/internal/domain/session"
)

// UnitOfWork implements session.UnitOfWork using database/sql
// transactions. The callback receives repositories scoped to the
// transaction, so the toggle's find-latest-then-write sequence commits or
// rolls back as one.
type UnitOfWork struct {
	db *DB
}

// NewUnitOfWork creates a UnitOfWork backed by the given database.
func NewUnitOfWork(db *DB) *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (u *UnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context, repos session.Repositories) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	repos := session.Repositories{
		Sessions: NewSessionRepository(tx),
		Projects: NewProjectRepository(tx),
	}

	if err := fn(ctx, repos); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
