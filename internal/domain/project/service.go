package project

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/punchclock/internal/repository"
)

// Service handles project operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new project service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create creates a new project with the given name. The name is the unique
// business key; a duplicate fails with ErrProjectExists.
func (s *Service) Create(ctx context.Context, name string) (*Project, error) {
	if name == "" || len(name) > MaxNameLength {
		return nil, ErrInvalidInput
	}

	proj := &Project{
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, proj); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, ErrProjectExists
		}
		return nil, fmt.Errorf("creating project: %w", err)
	}

	s.logger.Info("project created", "name", proj.Name, "id", proj.ID)
	return proj, nil
}

// Get fetches a project by name.
func (s *Service) Get(ctx context.Context, name string) (*Project, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}
	proj, err := s.repo.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("getting project: %w", err)
	}
	return proj, nil
}

// List returns dashboard summaries for all projects.
func (s *Service) List(ctx context.Context) ([]Summary, error) {
	return s.repo.List(ctx)
}

// Delete removes a project and, through the storage cascade, all of its
// sessions.
func (s *Service) Delete(ctx context.Context, name string) error {
	if name == "" {
		return ErrInvalidInput
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("deleting project: %w", err)
	}
	s.logger.Info("project deleted", "name", name)
	return nil
}
