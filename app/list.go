package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hako/durafmt"

	"github.com/ayoisaiah/lumen/internal/garden"
	"github.com/ayoisaiah/lumen/internal/models"
	"github.com/ayoisaiah/lumen/internal/ui"
)

const (
	noSessionsMsg = "No sessions found for the specified time range"
	noTasksMsg    = "No tasks yet. Add one with 'lumen task add <title>'"
	noPlantsMsg   = "Your garden is empty. Complete a session to grow your first plant"
	dateLayout    = "Jan 02, 2006 03:04 PM"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// printSessionsTable prints a session table to w. titles maps task IDs to
// titles.
func printSessionsTable(
	w io.Writer,
	sessions []*models.Session,
	titles map[string]string,
) {
	tableBody := make([][]string, len(sessions))

	for i, sess := range sessions {
		statusText := ui.Green("completed")
		if !sess.Completed {
			statusText = ui.Red("abandoned")
		}

		if !sess.Ended() {
			statusText = ui.Cyan("in progress")
		}

		var endDate, duration string
		if sess.Ended() {
			endDate = sess.CompletedAt.Format(dateLayout)
			duration = durafmt.ParseShort(sess.Duration).String()
		}

		var task string
		if sess.TaskID != nil {
			task = titles[*sess.TaskID]
		}

		tableBody[i] = []string{
			strconv.Itoa(i + 1),
			sess.StartedAt.Format(dateLayout),
			endDate,
			duration,
			sess.PresetName,
			fmt.Sprintf("%d", sess.Rounds),
			task,
			statusText,
		}
	}

	tableBody = append([][]string{
		{"#", "START DATE", "END DATE", "DURATION", "PRESET", "ROUNDS", "TASK", "STATUS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func printTasksTable(w io.Writer, tasks []*models.Task) {
	tableBody := make([][]string, len(tasks))

	for i, t := range tasks {
		tableBody[i] = []string{
			t.ID,
			ui.Highlight(t.Title),
			t.Description,
			strings.Join(t.Tags, " · "),
			t.CreatedAt.Format(dateLayout),
		}
	}

	tableBody = append([][]string{
		{"ID", "TITLE", "DESCRIPTION", "TAGS", "CREATED"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

func printPresetsTable(w io.Writer, presets []*models.Preset) {
	tableBody := make([][]string, len(presets))

	for i, p := range presets {
		tableBody[i] = []string{
			ui.Highlight(p.Name),
			durafmt.ParseShort(p.Work).String(),
			durafmt.ParseShort(p.ShortBreak).String(),
			durafmt.ParseShort(p.LongBreak).String(),
			strconv.Itoa(p.Rounds),
		}
	}

	tableBody = append([][]string{
		{"NAME", "WORK", "SHORT BREAK", "LONG BREAK", "ROUNDS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}

// growthBar draws the growth level as filled and empty leaves.
func growthBar(level int) string {
	return strings.Repeat("●", level) +
		strings.Repeat("○", models.MaxGrowthLevel-level)
}

func printPlantsTable(w io.Writer, plants []*models.GardenPlant) {
	tableBody := make([][]string, len(plants))

	for i, p := range plants {
		water := fmt.Sprintf("%d%%", p.WaterLevel)
		if garden.Thirsty(p) {
			water = ui.Red(water + " thirsty")
		}

		tableBody[i] = []string{
			p.ID,
			ui.Highlight(p.Name),
			garden.DisplayName(p.PlantType),
			ui.Green(growthBar(p.GrowthLevel)),
			water,
			fmt.Sprintf("%d/%d", p.WaterCount, p.WaterNeeded),
		}
	}

	tableBody = append([][]string{
		{"ID", "NAME", "TYPE", "GROWTH", "WATER", "WATERINGS"},
	}, tableBody...)

	ui.PrintTable(tableBody, w)
}
