// Package tasks validates and manages the tasks a user focuses on.
package tasks

import (
	"context"
	"slices"
	"strings"

	"github.com/maruel/natural"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/store"
)

// Service wraps a task store with input validation.
type Service struct {
	store store.TaskStore
}

// New returns a task service backed by s.
func New(s store.TaskStore) *Service {
	return &Service{store: s}
}

// Add validates and persists a new task. Invalid input is rejected before
// the store is touched.
func (s *Service) Add(
	ctx context.Context,
	title, description string,
	tags ...string,
) (*models.Task, error) {
	task := models.NewTask(title, normalizeTags(tags)...)
	task.Description = strings.TrimSpace(description)

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// Rename changes the title of an existing task.
func (s *Service) Rename(ctx context.Context, id, title string) (*models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, models.ErrEmptyTitle
	}

	task, err := s.store.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Title = title

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.store.UpdateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// List returns all tasks ordered naturally by title.
func (s *Service) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(tasks, func(a, b *models.Task) int {
		switch {
		case natural.Less(a.Title, b.Title):
			return -1
		case natural.Less(b.Title, a.Title):
			return 1
		}

		return 0
	})

	return tasks, nil
}

// Find resolves a task by ID or, failing that, by a case-insensitive title
// match.
func (s *Service) Find(ctx context.Context, ref string) (*models.Task, error) {
	task, err := s.store.GetTask(ctx, ref)
	if err == nil {
		return task, nil
	}

	tasks, listErr := s.store.ListTasks(ctx)
	if listErr != nil {
		return nil, listErr
	}

	for _, t := range tasks {
		if strings.EqualFold(t.Title, strings.TrimSpace(ref)) {
			return t, nil
		}
	}

	return nil, errTaskNotFound.Fmt(ref)
}

// Delete removes a task. Sessions that referenced it are kept without a
// task.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteTask(ctx, id)
}

func normalizeTags(tags []string) []string {
	var out []string

	for _, tag := range tags {
		for _, t := range strings.Split(tag, ",") {
			t = strings.TrimSpace(t)
			if t != "" && !slices.Contains(out, t) {
				out = append(out, t)
			}
		}
	}

	return out
}
