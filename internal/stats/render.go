package stats

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/hako/durafmt"
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/lumen/internal/timeutil"
	"github.com/ayoisaiah/lumen/internal/ui"
)

const barChartChar = "▇"

// humanize formats d using its two largest units, never larger than hours.
func humanize(d time.Duration) string {
	//nolint:gomnd // limit to first 2 units
	return durafmt.Parse(d.Round(time.Second)).
		LimitToUnit("hours").
		LimitFirstN(2).
		String()
}

func getSummary(s Summary) string {
	header := fmt.Sprintf("%s\n", ui.Blue("Summary"))

	sessions := fmt.Sprintln("Sessions:", ui.Green(s.Total))
	completed := fmt.Sprintln("Sessions completed:", ui.Green(s.Completed))

	focus := fmt.Sprintf("Focus time: %s\n", ui.Green(humanize(s.FocusTime)))
	avg := fmt.Sprintf("Average session: %s\n", ui.Green(humanize(s.AverageFocus)))

	return header + sessions + completed + focus + avg
}

func getStreaks(s Summary) string {
	header := fmt.Sprintf("\n%s\n", ui.Blue("Streaks"))

	current := fmt.Sprintf("Current streak: %s\n", ui.Green(days(s.CurrentStreak)))
	longest := fmt.Sprintf("Longest streak: %s\n", ui.Green(days(s.LongestStreak)))

	return header + current + longest
}

func days(n int) string {
	if n == 1 {
		return "1 day"
	}

	return strconv.Itoa(n) + " days"
}

func getWeekdayChart(s Summary) string {
	if s.FocusTime == 0 {
		return ""
	}

	header := ui.Blue("\nWeekly breakdown (minutes)")

	bars := make(pterm.Bars, 0, len(s.Weekdays))

	for i, d := range s.Weekdays {
		bars = append(bars, pterm.Bar{
			Value: timeutil.Round(d.Minutes()),
			Label: time.Weekday(i).String(),
		})
	}

	chart, err := pterm.DefaultBarChart.WithHorizontalBarCharacter(barChartChar).
		WithHorizontal().
		WithShowValue().
		WithBars(bars).
		Srender()
	if err != nil {
		pterm.Error.Println(err)
		return ""
	}

	return header + chart
}

func getTopTasks(s Summary) [][]string {
	data := [][]string{{"#", "TASK", "SESSIONS", "FOCUS TIME"}}

	for i, t := range s.TopTasks {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			t.Title,
			strconv.Itoa(t.Sessions),
			humanize(t.Focus),
		})
	}

	return data
}

// Render writes a human readable report to w.
func Render(w io.Writer, s Summary) {
	header := pterm.DefaultHeader.WithBackgroundStyle(pterm.NewStyle(pterm.BgYellow)).
		WithTextStyle(pterm.NewStyle(pterm.FgBlack)).
		Sprintfln("Focus statistics")

	output := fmt.Sprint(
		header,
		getSummary(s),
		getStreaks(s),
		getWeekdayChart(s),
	)

	fmt.Fprintln(w, strings.TrimSpace(output))

	if len(s.TopTasks) == 0 {
		return
	}

	fmt.Fprintf(w, "\n%s\n", ui.Blue("Top tasks"))
	ui.PrintTable(getTopTasks(s), w)
}

// RenderJSON writes the summary as indented JSON.
func RenderJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
