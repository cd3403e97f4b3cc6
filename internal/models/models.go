// Package models defines the records persisted by lumen.
package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Phase identifies a segment of a focus cycle.
type Phase string

const (
	Work       Phase = "work"
	ShortBreak Phase = "short_break"
	LongBreak  Phase = "long_break"
	Paused     Phase = "paused"
)

// String returns the display name of the phase.
func (p Phase) String() string {
	switch p {
	case Work:
		return "Work"
	case ShortBreak:
		return "Short break"
	case LongBreak:
		return "Long break"
	case Paused:
		return "Paused"
	}

	return string(p)
}

// Valid reports whether p is one of the known phases.
func (p Phase) Valid() bool {
	switch p {
	case Work, ShortBreak, LongBreak, Paused:
		return true
	}

	return false
}

const (
	maxTitleLen = 200
	maxNameLen  = 100

	DefaultTaskColor = "blue"
	DefaultTaskIcon  = "circle"
)

// Task is something the user focuses on. Sessions may reference a task.
type Task struct {
	CreatedAt   time.Time `json:"created_at"`
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        string    `json:"icon"`
	Tags        []string  `json:"tags"`
}

// NewTask returns a task with a fresh ID and default presentation values.
func NewTask(title string, tags ...string) *Task {
	return &Task{
		ID:        uuid.NewString(),
		Title:     strings.TrimSpace(title),
		Color:     DefaultTaskColor,
		Icon:      DefaultTaskIcon,
		Tags:      tags,
		CreatedAt: time.Now(),
	}
}

// Validate checks the task before it is written.
func (t *Task) Validate() error {
	title := strings.TrimSpace(t.Title)

	if title == "" {
		return ErrEmptyTitle
	}

	if utf8.RuneCountInString(title) > maxTitleLen {
		return errTitleTooLong.Fmt(maxTitleLen)
	}

	return nil
}

// Preset is a named template of phase durations and a round count.
type Preset struct {
	CreatedAt  time.Time     `json:"created_at"`
	ID         string        `json:"id"`
	Name       string        `json:"name"`
	Work       time.Duration `json:"work"`
	ShortBreak time.Duration `json:"short_break"`
	LongBreak  time.Duration `json:"long_break"`
	Rounds     int           `json:"rounds"`
}

// Duration returns the configured length of phase p.
func (p *Preset) Duration(phase Phase) time.Duration {
	switch phase {
	case Work:
		return p.Work
	case ShortBreak:
		return p.ShortBreak
	case LongBreak:
		return p.LongBreak
	}

	return 0
}

// Validate checks that the preset has a name and positive rounds. Phase
// durations are stored as whole seconds, so each must be at least one
// second with no fractional part.
func (p *Preset) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if utf8.RuneCountInString(strings.TrimSpace(p.Name)) > maxNameLen {
		return errNameTooLong.Fmt(maxNameLen)
	}

	for _, phase := range []Phase{Work, ShortBreak, LongBreak} {
		d := p.Duration(phase)
		if d < time.Second || d%time.Second != 0 {
			return ErrInvalidDuration.Fmt(phase)
		}
	}

	if p.Rounds <= 0 {
		return ErrInvalidRounds
	}

	return nil
}

const (
	PomodoroPreset   = "Pomodoro"
	QuickFocusPreset = "Quick Focus"
)

// DefaultPresets returns the presets that exist in every new store.
func DefaultPresets() []*Preset {
	now := time.Now()

	return []*Preset{
		{
			ID:         uuid.NewString(),
			Name:       PomodoroPreset,
			Work:       1500 * time.Second,
			ShortBreak: 300 * time.Second,
			LongBreak:  900 * time.Second,
			Rounds:     4,
			CreatedAt:  now,
		},
		{
			ID:         uuid.NewString(),
			Name:       QuickFocusPreset,
			Work:       900 * time.Second,
			ShortBreak: 180 * time.Second,
			LongBreak:  600 * time.Second,
			Rounds:     6,
			CreatedAt:  now,
		},
	}
}

// Session is one persisted timer run, completed or abandoned.
type Session struct {
	StartedAt   time.Time     `json:"started_at"`
	CompletedAt *time.Time    `json:"completed_at,omitempty"`
	TaskID      *string       `json:"task_id,omitempty"`
	ID          string        `json:"id"`
	Phase       Phase         `json:"phase"`
	PresetName  string        `json:"preset_name"`
	Duration    time.Duration `json:"duration"`
	Rounds      int           `json:"rounds"`
	Completed   bool          `json:"completed"`
}

// Finish stamps the end of the session. The duration always equals the
// difference between the completion and start times.
func (s *Session) Finish(at time.Time, completed bool) {
	s.CompletedAt = &at
	s.Duration = at.Sub(s.StartedAt)
	s.Completed = completed
}

// Ended reports whether the session has a completion timestamp.
func (s *Session) Ended() bool {
	return s.CompletedAt != nil
}

// HasTask reports whether the session is linked to the task with the given
// ID.
func (s *Session) HasTask(id string) bool {
	return s.TaskID != nil && *s.TaskID == id
}

const (
	MaxGrowthLevel     = 5
	MaxWaterLevel      = 100
	DefaultWaterNeeded = 3
	DefaultPlantColor  = "green"
)

// GardenPlant is a reward earned by completing focus sessions.
type GardenPlant struct {
	CreatedAt   time.Time  `json:"created_at"`
	LastWatered *time.Time `json:"last_watered,omitempty"`
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	PlantType   string     `json:"plant_type"`
	Color       string     `json:"color"`
	GrowthLevel int        `json:"growth_level"`
	WaterLevel  int        `json:"water_level"`
	WaterCount  int        `json:"water_count"`
	WaterNeeded int        `json:"water_needed"`
}

// Clamp forces the growth and water levels into their valid ranges.
func (p *GardenPlant) Clamp() {
	p.GrowthLevel = min(max(p.GrowthLevel, 0), MaxGrowthLevel)
	p.WaterLevel = min(max(p.WaterLevel, 0), MaxWaterLevel)

	if p.WaterNeeded <= 0 {
		p.WaterNeeded = DefaultWaterNeeded
	}

	p.WaterCount = min(max(p.WaterCount, 0), p.WaterNeeded)
}

// Validate checks the plant before it is written.
func (p *GardenPlant) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrEmptyName
	}

	if strings.TrimSpace(p.PlantType) == "" {
		return ErrEmptyPlantType
	}

	return nil
}
