package timer

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/session"
	"github.com/ayoisaiah/lumen/internal/tasks"
	"github.com/ayoisaiah/lumen/internal/testutil"
	"github.com/ayoisaiah/lumen/store"
	"github.com/ayoisaiah/lumen/store/sqlite"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

func newTestTimer(t *testing.T) (*Timer, *sqlite.Store) {
	t.Helper()

	ctx := context.Background()

	db := testutil.NewStore(t)

	preset, err := db.GetPresetByName(ctx, models.PomodoroPreset)
	require.NoError(t, err)

	m, err := session.New(preset, session.Deps{Store: db})
	require.NoError(t, err)

	return New(ctx, m, tasks.New(db), Options{}), db
}

func (t *Timer) send(msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	for _, msg := range msgs {
		_, cmd = t.Update(msg)
	}

	return cmd
}

func TestTogglePlay(t *testing.T) {
	tm, _ := newTestTimer(t)

	tm.send(space)
	s := tm.machine.State()
	assert.True(t, s.Running)
	assert.False(t, s.Paused)

	tm.send(space)
	assert.True(t, tm.machine.State().Paused)

	tm.send(space)
	assert.False(t, tm.machine.State().Paused)
}

func TestTickCountsDown(t *testing.T) {
	tm, _ := newTestTimer(t)

	assert.NotNil(t, tm.Init())

	// ticks before start keep the clock idle
	cmd := tm.send(tickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.Equal(t, 1500*time.Second, tm.machine.State().Remaining)

	tm.send(space, tickMsg(time.Now()), tickMsg(time.Now()))
	assert.Equal(t, 1498*time.Second, tm.machine.State().Remaining)

	tm.send(runes("+"))
	assert.Equal(t, 1798*time.Second, tm.machine.State().Remaining)
}

func TestSkipAndStop(t *testing.T) {
	tm, db := newTestTimer(t)

	tm.send(space, runes("s"))

	s := tm.machine.State()
	assert.Equal(t, models.ShortBreak, s.Phase)
	assert.Contains(t, tm.status, "Work finished")

	tm.send(runes("x"))
	assert.False(t, tm.machine.State().Running)
	assert.Equal(t, "Session stopped", tm.status)

	sessions, err := db.ListSessions(context.Background(), store.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.False(t, sessions[0].Completed)
	assert.True(t, sessions[0].Ended())
}

func TestQuitStopsRunningSession(t *testing.T) {
	tm, db := newTestTimer(t)

	tm.send(space)

	cmd := tm.send(runes("q"))
	assert.NotNil(t, cmd)
	assert.False(t, tm.machine.State().Running)

	sessions, err := db.ListSessions(context.Background(), store.SessionFilter{})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Ended())
}

func TestTaskPrompt(t *testing.T) {
	tm, db := newTestTimer(t)

	tm.send(runes("t"))
	require.NotNil(t, tm.form)
	assert.Contains(t, tm.View(), "What are you working on?")

	tm.send(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, tm.form)

	tm.taskTitle = "Write docs"
	tm.addTask()

	s := tm.machine.State()
	require.NotNil(t, s.Task)
	assert.Equal(t, "Write docs", s.Task.Title)
	assert.Contains(t, tm.View(), "Task: Write docs")

	list, err := db.ListTasks(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	tm.taskTitle = "  "
	tm.addTask()
	assert.True(t, tm.failed)

	tm.send(space, runes("t"))
	assert.Nil(t, tm.form, "tasks cannot change while running")
}

func TestView(t *testing.T) {
	tm, _ := newTestTimer(t)

	view := tm.View()
	assert.Contains(t, view, "Work")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "Pomodoro 1/4")
	assert.Contains(t, view, "[Stopped]")

	tm.send(space, space)
	assert.Contains(t, tm.View(), "[Paused]")
}

func TestReport(t *testing.T) {
	tm, _ := newTestTimer(t)

	tm.report(session.Outcome{
		Applied: true,
		Failures: []session.EffectError{
			{Effect: session.EffectNotify},
			{Effect: session.EffectSound},
		},
	})

	assert.True(t, tm.failed)
	assert.Equal(t, "some actions failed: notify, sound", tm.status)

	tm.report(session.Outcome{Applied: true, Completed: true})
	assert.False(t, tm.failed)
	assert.True(t, strings.HasPrefix(tm.status, "Session complete"))

	tm.report(session.Outcome{})
	assert.True(t, strings.HasPrefix(tm.status, "Session complete"))
}

func TestFormatTimeRemaining(t *testing.T) {
	cases := map[time.Duration]string{
		0:                            "00:00",
		59 * time.Second:             "00:59",
		25 * time.Minute:             "25:00",
		90 * time.Minute:             "90:00",
		61*time.Minute + time.Second: "61:01",
	}

	for d, want := range cases {
		assert.Equal(t, want, formatTimeRemaining(session.State{Remaining: d}))
	}
}
