package timer

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/davecgh/go-spew/spew"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/session"
)

// report turns an outcome into the status line shown under the clock.
func (t *Timer) report(out session.Outcome) {
	if !out.Applied {
		return
	}

	t.failed = out.Degraded()

	switch {
	case out.Completed:
		t.status = "Session complete. Press space to go again."
	case out.Transition != nil:
		t.status = fmt.Sprintf(
			"%s finished, %s is up",
			out.Transition.From,
			strings.ToLower(out.Transition.To.String()),
		)
	case t.failed:
		t.status = ""
	default:
		return
	}

	if !t.failed {
		return
	}

	effects := make([]string, len(out.Failures))
	for i, f := range out.Failures {
		effects[i] = string(f.Effect)
	}

	msg := "some actions failed: " + strings.Join(effects, ", ")
	if t.status != "" {
		msg = t.status + " (" + msg + ")"
	}

	t.status = msg
}

// handleTick advances the machine by one second.
func (t *Timer) handleTick() (tea.Model, tea.Cmd) {
	t.report(t.machine.Tick(t.ctx))

	return t, tick()
}

func (t *Timer) togglePlay() {
	s := t.machine.State()

	switch {
	case !s.Running:
		t.status = ""
		t.report(t.machine.Start(t.ctx))
	case s.Paused:
		t.report(t.machine.Resume(t.ctx))
	default:
		t.report(t.machine.Pause(t.ctx))
	}
}

// openTaskForm prompts for the title of a task to focus on. Tasks can only
// be changed while the timer is stopped.
func (t *Timer) openTaskForm() tea.Cmd {
	if t.tasks == nil || t.machine.State().Running {
		return nil
	}

	t.taskTitle = ""

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What are you working on?").
				Value(&t.taskTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return models.ErrEmptyTitle
					}

					return nil
				}),
		),
	).WithShowHelp(false)

	return t.form.Init()
}

func (t *Timer) handleFormMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, defaultKeymap.esc) {
		t.form = nil
		return t, nil
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		t.form = nil
		t.addTask()

		return t, nil
	case huh.StateAborted:
		t.form = nil
		return t, nil
	}

	return t, cmd
}

func (t *Timer) addTask() {
	task, err := t.tasks.Add(t.ctx, t.taskTitle, "")
	if err != nil {
		t.failed = true
		t.status = err.Error()

		return
	}

	if err := t.machine.SelectTask(task); err != nil {
		t.failed = true
		t.status = err.Error()

		return
	}

	t.failed = false
	t.status = "Focusing on " + task.Title
}

func (t *Timer) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	slog.Debug("key pressed", "msg", spew.Sdump(msg))

	switch {
	case key.Matches(msg, defaultKeymap.quit):
		t.report(t.machine.Stop(t.ctx))

		return t, tea.Batch(tea.ClearScreen, tea.Quit)

	case key.Matches(msg, defaultKeymap.togglePlay):
		t.togglePlay()

	case key.Matches(msg, defaultKeymap.skip):
		t.report(t.machine.Skip(t.ctx))

	case key.Matches(msg, defaultKeymap.stop):
		if t.machine.Stop(t.ctx).Applied {
			t.status = "Session stopped"
			t.failed = false
		}

	case key.Matches(msg, defaultKeymap.addTime):
		t.report(t.machine.AddTime(extraTime))

	case key.Matches(msg, defaultKeymap.newTask):
		return t, t.openTaskForm()
	}

	return t, nil
}

func (t *Timer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); ok {
		return t.handleTick()
	}

	if t.form != nil {
		return t.handleFormMsg(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return t.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		t.progress.Width = min(msg.Width-padding*2-4, maxWidth)

		return t, nil

	// FrameMsg is sent when the progress bar wants to animate itself
	case progress.FrameMsg:
		progressModel, cmd := t.progress.Update(msg)
		t.progress, _ = progressModel.(progress.Model)

		return t, cmd
	}

	return t, nil
}
