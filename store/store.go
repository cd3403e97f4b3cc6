// Package store defines the persistence gateway for tasks, sessions, presets
// and garden plants. Concrete drivers live in the boltdb and sqlite
// subpackages.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/ayoisaiah/lumen/internal/apperr"
	"github.com/ayoisaiah/lumen/internal/models"
)

var (
	ErrNotFound = &apperr.Error{
		Message: "record not found",
	}

	ErrDuplicatePreset = &apperr.Error{
		Message: "a preset named %q already exists",
	}

	ErrUnknownDriver = &apperr.Error{
		Message: "unknown store driver %q",
	}

	ErrLocked = &apperr.Error{
		Message: "is lumen already running? Only one instance can be active at a time",
	}
)

// SessionFilter narrows the sessions returned by ListSessions. Zero values
// leave the corresponding bound open.
type SessionFilter struct {
	Since  time.Time
	Until  time.Time
	TaskID string
}

// Match reports whether sess satisfies the filter.
func (f SessionFilter) Match(sess *models.Session) bool {
	if !f.Since.IsZero() && sess.StartedAt.Before(f.Since) {
		return false
	}

	if !f.Until.IsZero() && sess.StartedAt.After(f.Until) {
		return false
	}

	if f.TaskID != "" && !sess.HasTask(f.TaskID) {
		return false
	}

	return true
}

// TaskStore persists tasks. DeleteTask must leave every session that
// referenced the task in place with a nil TaskID.
type TaskStore interface {
	CreateTask(ctx context.Context, task *models.Task) error
	UpdateTask(ctx context.Context, task *models.Task) error
	GetTask(ctx context.Context, id string) (*models.Task, error)
	ListTasks(ctx context.Context) ([]*models.Task, error)
	DeleteTask(ctx context.Context, id string) error
}

// SessionStore persists timer runs.
type SessionStore interface {
	CreateSession(ctx context.Context, sess *models.Session) error
	UpdateSession(ctx context.Context, sess *models.Session) error
	GetSession(ctx context.Context, id string) (*models.Session, error)
	// ListSessions returns sessions ordered by start time, newest first.
	ListSessions(ctx context.Context, filter SessionFilter) ([]*models.Session, error)
	DeleteSessions(ctx context.Context, ids ...string) error
}

// PresetStore persists timer presets. Preset names are unique.
type PresetStore interface {
	CreatePreset(ctx context.Context, preset *models.Preset) error
	UpdatePreset(ctx context.Context, preset *models.Preset) error
	GetPresetByName(ctx context.Context, name string) (*models.Preset, error)
	ListPresets(ctx context.Context) ([]*models.Preset, error)
	DeletePreset(ctx context.Context, id string) error
}

// PlantStore persists garden plants.
type PlantStore interface {
	CreatePlant(ctx context.Context, plant *models.GardenPlant) error
	UpdatePlant(ctx context.Context, plant *models.GardenPlant) error
	GetPlant(ctx context.Context, id string) (*models.GardenPlant, error)
	ListPlants(ctx context.Context) ([]*models.GardenPlant, error)
	DeletePlant(ctx context.Context, id string) error
}

// DB is the database storage interface.
type DB interface {
	TaskStore
	SessionStore
	PresetStore
	PlantStore
	// Close ends the database connection
	Close() error
}

// Seed creates the default presets if the store holds no presets.
func Seed(ctx context.Context, db PresetStore) error {
	existing, err := db.ListPresets(ctx)
	if err != nil {
		return err
	}

	if len(existing) > 0 {
		return nil
	}

	for _, p := range models.DefaultPresets() {
		err = db.CreatePreset(ctx, p)
		if err != nil && !errors.Is(err, ErrDuplicatePreset) {
			return err
		}
	}

	return nil
}
