package timer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/session"
)

// formatTimeRemaining returns the remaining time formatted as "MM:SS".
// Phases longer than an hour keep counting minutes past 59.
func formatTimeRemaining(s session.State) string {
	secs := int(s.Remaining.Seconds())

	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}

func (t *Timer) phaseLabel(s session.State) string {
	switch s.Phase {
	case models.ShortBreak:
		return t.style.ShortBreak.Render(s.Phase.String())
	case models.LongBreak:
		return t.style.LongBreak.Render(s.Phase.String())
	}

	return t.style.Work.Render(s.Phase.String())
}

func (t *Timer) headerView(s session.State) string {
	var b strings.Builder

	b.WriteString(t.phaseLabel(s))

	round := min(s.Round, s.TotalRounds)

	b.WriteString(t.style.Hint.Render(
		fmt.Sprintf("%s %d/%d ", s.PresetName, round, s.TotalRounds),
	))

	timeFormat := "03:04:05 PM"
	if t.opts.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	switch {
	case s.Paused:
		b.WriteString(t.style.Secondary.Render("[Paused]"))
	case s.Running:
		end := t.now().Add(s.Remaining)

		b.WriteString(t.style.Hint.Render("until " + end.Format(timeFormat)))
	default:
		b.WriteString(t.style.Secondary.Render("[Stopped]"))
	}

	return b.String()
}

func (t *Timer) helpView(s session.State) string {
	if !s.Running {
		bindings := []key.Binding{defaultKeymap.togglePlay}
		if t.tasks != nil {
			bindings = append(bindings, defaultKeymap.newTask)
		}

		return t.help.ShortHelpView(append(bindings, defaultKeymap.quit))
	}

	return t.help.ShortHelpView([]key.Binding{
		defaultKeymap.togglePlay,
		defaultKeymap.skip,
		defaultKeymap.stop,
		defaultKeymap.addTime,
		defaultKeymap.quit,
	})
}

func (t *Timer) timerView() string {
	var b strings.Builder

	s := t.machine.State()

	b.WriteString(t.headerView(s))

	if s.Task != nil {
		b.WriteString("\n" + t.style.Secondary.Render("Task: "+s.Task.Title))
	}

	var percent float64
	if s.PhaseLength > 0 {
		percent = 1 - s.Remaining.Seconds()/s.PhaseLength.Seconds()
	}

	b.WriteString("\n\n")
	b.WriteString(t.style.Main.Render(formatTimeRemaining(s)))
	b.WriteString("\n\n")
	b.WriteString(t.progress.ViewAs(min(max(percent, 0), 1)))

	if t.status != "" {
		style := t.style.Hint
		if t.failed {
			style = t.style.Alert
		}

		b.WriteString("\n\n" + style.Render(t.status))
	}

	b.WriteString("\n\n" + t.helpView(s))

	return b.String()
}

func (t *Timer) View() string {
	if t.form != nil {
		return t.style.Base.Render(
			t.form.View() + "\n\n" + t.help.ShortHelpView([]key.Binding{
				defaultKeymap.esc,
			}),
		)
	}

	return t.style.Base.Render(t.timerView())
}
