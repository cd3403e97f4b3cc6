package platform

import (
	"context"
	"os/exec"
	"strings"

	"github.com/kballard/go-shellquote"
)

// CommandFocusMode runs user supplied shell commands to turn an OS
// do-not-disturb mode on and off.
type CommandFocusMode struct {
	EnableCmd  string
	DisableCmd string
}

// NewCommandFocusMode returns a focus mode driven by the given commands.
// Either may be empty.
func NewCommandFocusMode(enableCmd, disableCmd string) *CommandFocusMode {
	return &CommandFocusMode{
		EnableCmd:  strings.TrimSpace(enableCmd),
		DisableCmd: strings.TrimSpace(disableCmd),
	}
}

// RequestAccess checks that the configured programs can be found.
func (f *CommandFocusMode) RequestAccess(context.Context) error {
	if f.EnableCmd == "" && f.DisableCmd == "" {
		return ErrUnsupported.Fmt("focus mode")
	}

	for _, cmd := range []string{f.EnableCmd, f.DisableCmd} {
		if cmd == "" {
			continue
		}

		args, err := parseCommand(cmd)
		if err != nil {
			return err
		}

		if _, err := exec.LookPath(args[0]); err != nil {
			return errFocusCommand.Fmt(cmd).Wrap(err)
		}
	}

	return nil
}

func (f *CommandFocusMode) Enable(ctx context.Context) error {
	return runCommand(ctx, f.EnableCmd)
}

func (f *CommandFocusMode) Disable(ctx context.Context) error {
	return runCommand(ctx, f.DisableCmd)
}

func parseCommand(cmd string) ([]string, error) {
	args, err := shellquote.Split(cmd)
	if err != nil {
		return nil, errFocusCommand.Fmt(cmd).Wrap(err)
	}

	if len(args) == 0 {
		return nil, errEmptyCommand.Fmt(cmd)
	}

	return args, nil
}

func runCommand(ctx context.Context, cmd string) error {
	if cmd == "" {
		return nil
	}

	args, err := parseCommand(cmd)
	if err != nil {
		return err
	}

	//nolint:gosec // command comes from the user's own config file
	c := exec.CommandContext(ctx, args[0], args[1:]...)

	out, err := c.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return errFocusCommand.Fmt(cmd).Wrap(
				&commandError{err: err, output: msg},
			)
		}

		return errFocusCommand.Fmt(cmd).Wrap(err)
	}

	return nil
}

type commandError struct {
	err    error
	output string
}

func (e *commandError) Error() string {
	return e.err.Error() + ": " + e.output
}

func (e *commandError) Unwrap() error {
	return e.err
}
