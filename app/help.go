package app

import (
	"strings"

	"github.com/pterm/pterm"
)

type helpSection struct {
	title string
	body  string
}

// helpText renders the top level help as a cli template.
func helpText() string {
	sections := []helpSection{
		{"DESCRIPTION", "\t\t{{.Usage}}"},
		{"USAGE", "\t\t{{.HelpName}} {{if .UsageText}}{{ .UsageText }}{{end}}"},
		{"VERSION", "\t\t{{.Version}}"},
		{
			"COMMANDS",
			"{{range .Commands}}{{if not .HideHelp}}   " +
				pterm.Green("{{join .Names `, `}}") +
				"{{ `\t`}}{{.Usage}}{{ `\n` }}{{end}}{{end}}",
		},
		{
			"OPTIONS",
			"{{range .VisibleFlags}}\t\t{{if .Aliases}}{{range $element := .Aliases}}" +
				pterm.Green("-{{$element}}") + ",{{end}}{{end}} " +
				pterm.Green("--{{.Name}} {{.DefaultText}}") +
				"\n\t\t\t\t{{.Usage}}\n{{end}}",
		},
		{"ENVIRONMENTAL VARIABLES", envHelp()},
		{"KEYS", keysHelp()},
		{"WEBSITE", "\t\thttps://github.com/ayoisaiah/lumen"},
	}

	var b strings.Builder

	for _, s := range sections {
		b.WriteString(pterm.Yellow(s.title))
		b.WriteString("\n")
		b.WriteString(s.body)
		b.WriteString("\n\n")
	}

	return b.String()
}

func envHelp() string {
	return `
		LUMEN_NO_COLOR, NO_COLOR: set to any value to avoid printing ANSI escape sequences for color output.

		LUMEN_ENV: keep a separate config file, database and log for the named environment (e.g. "test").`
}

func keysHelp() string {
	return `
		space  start, pause or resume the timer
		s      skip to the next phase (no rewards)
		x      stop the session
		+      add five minutes to the current phase
		t      pick a new task while stopped
		q      stop and quit`
}
