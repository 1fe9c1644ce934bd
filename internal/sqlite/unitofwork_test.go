package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rpggio/punchclock/internal/domain/session"
)

func TestUnitOfWork_Commit(t *testing.T) {
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	createProject(t, projects, "website")

	err := uow.WithinTx(ctx, func(ctx context.Context, repos session.Repositories) error {
		_, err := repos.Projects.GetByName(ctx, "website")
		if err != nil {
			return err
		}
		_, err = repos.Sessions.Insert(ctx, "website", time.Now().UTC())
		return err
	})
	require.NoError(t, err)

	sessions := NewSessionRepository(db)
	list, err := sessions.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUnitOfWork_RollbackOnError(t *testing.T) {
	db := NewTestDB(t)
	projects := NewProjectRepository(db)
	uow := NewUnitOfWork(db)
	ctx := context.Background()

	createProject(t, projects, "website")

	boom := errors.New("boom")
	err := uow.WithinTx(ctx, func(ctx context.Context, repos session.Repositories) error {
		if _, err := repos.Sessions.Insert(ctx, "website", time.Now().UTC()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	sessions := NewSessionRepository(db)
	list, err := sessions.List(ctx)
	require.NoError(t, err)
	require.Empty(t, list, "insert should have been rolled back")
}
