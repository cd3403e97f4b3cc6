// Package timer renders the interactive countdown and feeds key presses and
// clock ticks into the session machine.
package timer

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/session"
)

const (
	padding  = 2
	maxWidth = 80

	// extraTime is added to the current phase by the add time key.
	extraTime = 5 * time.Minute
)

// TaskAdder creates tasks from the new task prompt.
type TaskAdder interface {
	Add(
		ctx context.Context,
		title, description string,
		tags ...string,
	) (*models.Task, error)
}

// Options controls the presentation of the timer.
type Options struct {
	DarkTheme      bool
	TwentyFourHour bool
}

// Style holds the lipgloss styles used by the views.
type Style struct {
	Base       lipgloss.Style
	Main       lipgloss.Style
	Secondary  lipgloss.Style
	Hint       lipgloss.Style
	Alert      lipgloss.Style
	Work       lipgloss.Style
	ShortBreak lipgloss.Style
	LongBreak  lipgloss.Style
}

func newStyle(dark bool) Style {
	main, secondary, hint := lipgloss.Color("#1a1a1a"), lipgloss.Color("#4a4a4a"), lipgloss.Color("#767676")
	if dark {
		main, secondary, hint = lipgloss.Color("#ffffff"), lipgloss.Color("#c0c0c0"), lipgloss.Color("#8a8a8a")
	}

	label := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		MarginRight(1).
		Foreground(lipgloss.Color("#ffffff"))

	return Style{
		Base:       lipgloss.NewStyle().Padding(1, padding),
		Main:       lipgloss.NewStyle().Bold(true).Foreground(main),
		Secondary:  lipgloss.NewStyle().Foreground(secondary),
		Hint:       lipgloss.NewStyle().Foreground(hint),
		Alert:      lipgloss.NewStyle().Foreground(lipgloss.Color("#e06c75")),
		Work:       label.Background(lipgloss.Color("#b8336a")),
		ShortBreak: label.Background(lipgloss.Color("#2a9d8f")),
		LongBreak:  label.Background(lipgloss.Color("#3d5a80")),
	}
}

type keymap struct {
	togglePlay key.Binding
	skip       key.Binding
	stop       key.Binding
	addTime    key.Binding
	newTask    key.Binding
	esc        key.Binding
	quit       key.Binding
}

var defaultKeymap = keymap{
	togglePlay: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "start/pause"),
	),
	skip: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "skip"),
	),
	stop: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "stop"),
	),
	addTime: key.NewBinding(
		key.WithKeys("+"),
		key.WithHelp("+", "add 5 min"),
	),
	newTask: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "new task"),
	),
	esc: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

type tickMsg time.Time

// Timer is the bubbletea model for a focus session.
type Timer struct {
	ctx      context.Context
	machine  *session.Machine
	tasks    TaskAdder
	form     *huh.Form
	style    Style
	help     help.Model
	progress progress.Model
	opts     Options
	now      func() time.Time

	taskTitle string
	status    string
	failed    bool
}

// New returns a timer model driving m. tasks may be nil, in which case the
// new task prompt is disabled.
func New(
	ctx context.Context,
	m *session.Machine,
	tasks TaskAdder,
	opts Options,
) *Timer {
	return &Timer{
		ctx:      ctx,
		machine:  m,
		tasks:    tasks,
		opts:     opts,
		style:    newStyle(opts.DarkTheme),
		help:     help.New(),
		progress: progress.New(progress.WithDefaultGradient()),
		now:      time.Now,
	}
}

// Run starts the interactive timer and blocks until the user quits.
func Run(
	ctx context.Context,
	m *session.Machine,
	tasks TaskAdder,
	opts Options,
) error {
	p := tea.NewProgram(New(ctx, m, tasks, opts), tea.WithContext(ctx))

	_, err := p.Run()
	if err != nil {
		return err
	}

	slog.Debug("timer closed", "state", m.State())

	return nil
}

func tick() tea.Cmd {
	return tea.Tick(session.Tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (t *Timer) Init() tea.Cmd {
	return tick()
}
