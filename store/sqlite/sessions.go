package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

const sessionColumns = `id, task_id, started_at, completed_at, duration, phase,
	completed, rounds, preset_name`

func scanSession(row scanner) (*models.Session, error) {
	var (
		sess        models.Session
		taskID      sql.NullString
		startedAt   string
		completedAt sql.NullString
		duration    int64
		completed   int
	)

	err := row.Scan(
		&sess.ID,
		&taskID,
		&startedAt,
		&completedAt,
		&duration,
		&sess.Phase,
		&completed,
		&sess.Rounds,
		&sess.PresetName,
	)
	if err != nil {
		return nil, err
	}

	if taskID.Valid {
		sess.TaskID = &taskID.String
	}

	sess.StartedAt, err = parseTime(startedAt)
	if err != nil {
		return nil, err
	}

	sess.CompletedAt, err = parseNullTime(completedAt)
	if err != nil {
		return nil, err
	}

	sess.Duration = time.Duration(duration)
	sess.Completed = completed == 1

	return &sess, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}

	return sql.NullString{String: *s, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func (s *Store) CreateSession(ctx context.Context, sess *models.Session) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (`+sessionColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sess.ID,
		nullString(sess.TaskID),
		formatTime(sess.StartedAt),
		nullTime(sess.CompletedAt),
		int64(sess.Duration),
		sess.Phase,
		boolToInt(sess.Completed),
		sess.Rounds,
		sess.PresetName,
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}

	return nil
}

func (s *Store) UpdateSession(ctx context.Context, sess *models.Session) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE sessions SET task_id = ?, started_at = ?, completed_at = ?,
		duration = ?, phase = ?, completed = ?, rounds = ?, preset_name = ?
		WHERE id = ?`,
		nullString(sess.TaskID),
		formatTime(sess.StartedAt),
		nullTime(sess.CompletedAt),
		int64(sess.Duration),
		sess.Phase,
		boolToInt(sess.Completed),
		sess.Rounds,
		sess.PresetName,
		sess.ID,
	)
	if err != nil {
		return fmt.Errorf("update session %s: %w", sess.ID, err)
	}

	return checkAffected(res)
}

func (s *Store) GetSession(ctx context.Context, id string) (*models.Session, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE id = ?`,
		id,
	)

	sess, err := scanSession(row)
	if err != nil {
		return nil, notFound(err)
	}

	return sess, nil
}

func (s *Store) ListSessions(
	ctx context.Context,
	filter store.SessionFilter,
) ([]*models.Session, error) {
	var (
		where []string
		args  []any
	)

	if !filter.Since.IsZero() {
		where = append(where, "started_at >= ?")
		args = append(args, formatTime(filter.Since))
	}

	if !filter.Until.IsZero() {
		where = append(where, "started_at <= ?")
		args = append(args, formatTime(filter.Until))
	}

	if filter.TaskID != "" {
		where = append(where, "task_id = ?")
		args = append(args, filter.TaskID)
	}

	query := `SELECT ` + sessionColumns + ` FROM sessions`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " ORDER BY started_at DESC, id"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session

	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}

		sessions = append(sessions, sess)
	}

	return sessions, rows.Err()
}

func (s *Store) DeleteSessions(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")

	args := make([]any, len(ids))
	for i := range ids {
		args[i] = ids[i]
	}

	_, err := s.db.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE id IN (`+placeholders+`)`,
		args...,
	)
	if err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}

	return nil
}
