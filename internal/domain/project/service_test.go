package project_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rpggio/punchclock/internal/domain/project"
	"github.com/rpggio/punchclock/internal/repository"
	"github.com/rpggio/punchclock/internal/repository/mocks"
)

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*project.Project")).Return(nil)

	svc := project.NewService(repo, nil)
	proj, err := svc.Create(ctx, "website")
	require.NoError(t, err)
	require.Equal(t, "website", proj.Name)
	require.False(t, proj.CreatedAt.IsZero())
}

func TestProjectService_CreateValidation(t *testing.T) {
	ctx := context.Background()
	svc := project.NewService(&mocks.ProjectRepository{}, nil)

	_, err := svc.Create(ctx, "")
	require.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = svc.Create(ctx, strings.Repeat("x", project.MaxNameLength+1))
	require.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectService_CreateDuplicate(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Create", ctx, mock.Anything).Return(repository.ErrConflict)

	svc := project.NewService(repo, nil)
	_, err := svc.Create(ctx, "website")
	require.ErrorIs(t, err, project.ErrProjectExists)
}

func TestProjectService_GetNotFound(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("GetByName", ctx, "ghost").Return(nil, repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	_, err := svc.Get(ctx, "ghost")
	require.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()

	summaries := []project.Summary{
		{ID: 2, Name: "api", SessionCount: 3, Running: true, CreatedAt: time.Now()},
		{ID: 1, Name: "website", SessionCount: 0, CreatedAt: time.Now().Add(-time.Hour)},
	}
	repo := &mocks.ProjectRepository{}
	repo.On("List", ctx).Return(summaries, nil)

	svc := project.NewService(repo, nil)
	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Equal(t, summaries, got)
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := &mocks.ProjectRepository{}
	repo.On("Delete", ctx, "website").Return(nil)
	repo.On("Delete", ctx, "ghost").Return(repository.ErrNotFound)

	svc := project.NewService(repo, nil)
	require.NoError(t, svc.Delete(ctx, "website"))
	require.ErrorIs(t, svc.Delete(ctx, "ghost"), project.ErrProjectNotFound)
	require.ErrorIs(t, svc.Delete(ctx, ""), project.ErrInvalidInput)
}
