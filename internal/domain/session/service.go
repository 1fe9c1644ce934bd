package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rpggio/punchclock/internal/repository"
)

// Service handles session toggling and lookups.
type Service struct {
	sessions Repository
	uow      UnitOfWork
	logger   *slog.Logger
}

// NewService creates a new session service. The plain repository serves
// reads; writes go through the unit of work.
func NewService(sessions Repository, uow UnitOfWork, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{sessions: sessions, uow: uow, logger: logger}
}

// Toggle starts tracking for a project when no session is open and stops
// the open session otherwise. It performs exactly one write: an insert of
// a fresh open session, or an update setting End on the latest one.
//
// The lookup and the write share a transaction so that two concurrent
// toggles on the same project cannot both observe "no open session".
func (s *Service) Toggle(ctx context.Context, projectName string) (*Session, error) {
	if projectName == "" {
		return nil, ErrInvalidInput
	}

	var result *Session
	err := s.uow.WithinTx(ctx, func(ctx context.Context, repos Repositories) error {
		if _, err := repos.Projects.GetByName(ctx, projectName); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrProjectNotFound
			}
			return fmt.Errorf("checking project: %w", err)
		}

		latest, err := repos.Sessions.FindLatest(ctx, projectName)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("finding latest session: %w", err)
		}

		now := time.Now().UTC()
		if !latest.Open() {
			created, err := repos.Sessions.Insert(ctx, projectName, now)
			if err != nil {
				return fmt.Errorf("starting session: %w", err)
			}
			result = created
			return nil
		}

		closed, err := repos.Sessions.CloseOpen(ctx, latest.ID, now)
		if err != nil {
			return fmt.Errorf("stopping session: %w", err)
		}
		result = closed
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("session toggled",
		"project", projectName, "session_id", result.ID, "next_action", NextAction(result))
	return result, nil
}

// Latest returns the most recent session for a project, open or closed.
func (s *Service) Latest(ctx context.Context, projectName string) (*Session, error) {
	if projectName == "" {
		return nil, ErrInvalidInput
	}
	latest, err := s.sessions.FindLatest(ctx, projectName)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("finding latest session: %w", err)
	}
	return latest, nil
}

// Action reports what the next toggle on a project will do. A project
// with no sessions yet starts from ActionStart.
func (s *Service) Action(ctx context.Context, projectName string) (string, error) {
	latest, err := s.Latest(ctx, projectName)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return ActionStart, nil
		}
		return "", err
	}
	return NextAction(latest), nil
}

// Delete removes a single session by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.sessions.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("deleting session: %w", err)
	}
	s.logger.Info("session deleted", "session_id", id)
	return nil
}
