package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rpggio/punchclock/internal/domain/session"
	"github.com/rpggio/punchclock/internal/repository"
)

// SessionRepository implements repository.SessionRepository for SQLite
type SessionRepository struct {
	db DBTX
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Insert creates a new open session starting at the given instant
func (r *SessionRepository) Insert(ctx context.Context, projectName string, start time.Time) (*session.Session, error) {
	query := `
		INSERT INTO sessions (project_name, start_at, end_at)
		VALUES (?, ?, NULL)
	`

	result, err := r.db.ExecContext(ctx, query, projectName, formatTime(start))
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			// The one-open-session index rejected a second open row.
			return nil, repository.ErrConflict
		}
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read session id: %w", err)
	}

	return &session.Session{
		ID:          id,
		ProjectName: projectName,
		Start:       start.UTC(),
	}, nil
}

// FindLatest returns the most recent session for a project, ordered by
// start descending with ID breaking ties (latest insert wins).
func (r *SessionRepository) FindLatest(ctx context.Context, projectName string) (*session.Session, error) {
	query := `
		SELECT id, project_name, start_at, end_at
		FROM sessions
		WHERE project_name = ?
		ORDER BY start_at DESC, id DESC
		LIMIT 1
	`

	return r.scanSession(r.db.QueryRowContext(ctx, query, projectName))
}

// CloseOpen sets the end timestamp on a session, guarded so only a
// still-open row is updated. Start is never touched.
func (r *SessionRepository) CloseOpen(ctx context.Context, id int64, end time.Time) (*session.Session, error) {
	query := `
		UPDATE sessions
		SET end_at = ?
		WHERE id = ? AND end_at IS NULL
	`

	result, err := r.db.ExecContext(ctx, query, formatTime(end), id)
	if err != nil {
		return nil, fmt.Errorf("failed to close session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, repository.ErrNotFound
	}

	return r.Get(ctx, id)
}

// Get retrieves a session by ID
func (r *SessionRepository) Get(ctx context.Context, id int64) (*session.Session, error) {
	query := `
		SELECT id, project_name, start_at, end_at
		FROM sessions
		WHERE id = ?
	`

	return r.scanSession(r.db.QueryRowContext(ctx, query, id))
}

// List returns all sessions, newest first
func (r *SessionRepository) List(ctx context.Context) ([]session.Session, error) {
	query := `
		SELECT id, project_name, start_at, end_at
		FROM sessions
		ORDER BY start_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []session.Session
	for rows.Next() {
		var sess session.Session
		var startAt string
		var endAt sql.NullString
		if err := rows.Scan(&sess.ID, &sess.ProjectName, &startAt, &endAt); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		if sess.Start, err = parseTime(startAt); err != nil {
			return nil, err
		}
		if sess.End, err = parseNullableTime(endAt); err != nil {
			return nil, err
		}
		sessions = append(sessions, sess)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

// Delete removes a session by ID
func (r *SessionRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *SessionRepository) scanSession(row *sql.Row) (*session.Session, error) {
	var sess session.Session
	var startAt string
	var endAt sql.NullString

	err := row.Scan(&sess.ID, &sess.ProjectName, &startAt, &endAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}

	if sess.Start, err = parseTime(startAt); err != nil {
		return nil, err
	}
	if sess.End, err = parseNullableTime(endAt); err != nil {
		return nil, err
	}

	return &sess, nil
}
