package sqlite

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ayoisaiah/lumen/internal/models"
)

const taskColumns = `id, title, description, color, icon, tags, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*models.Task, error) {
	var (
		t         models.Task
		tags      string
		createdAt string
	)

	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Color,
		&t.Icon,
		&tags,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return nil, fmt.Errorf("decode tags for task %s: %w", t.ID, err)
	}

	t.CreatedAt, err = parseTime(createdAt)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func encodeTags(tags []string) (string, error) {
	if tags == nil {
		tags = []string{}
	}

	b, err := json.Marshal(tags)

	return string(b), err
}

func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	tags, err := encodeTags(task.Tags)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO tasks (`+taskColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.ID,
		task.Title,
		task.Description,
		task.Color,
		task.Icon,
		tags,
		formatTime(task.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}

	return nil
}

func (s *Store) UpdateTask(ctx context.Context, task *models.Task) error {
	if err := task.Validate(); err != nil {
		return err
	}

	tags, err := encodeTags(task.Tags)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE tasks SET title = ?, description = ?, color = ?, icon = ?, tags = ?
		WHERE id = ?`,
		task.Title,
		task.Description,
		task.Color,
		task.Icon,
		tags,
		task.ID,
	)
	if err != nil {
		return fmt.Errorf("update task %s: %w", task.ID, err)
	}

	return checkAffected(res)
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`,
		id,
	)

	t, err := scanTask(row)
	if err != nil {
		return nil, notFound(err)
	}

	return t, nil
}

func (s *Store) ListTasks(ctx context.Context) ([]*models.Task, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task

	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}

		tasks = append(tasks, t)
	}

	return tasks, rows.Err()
}

// DeleteTask removes a task. The foreign key on sessions.task_id is declared
// ON DELETE SET NULL, so owned sessions survive with no task.
func (s *Store) DeleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}

	return checkAffected(res)
}
