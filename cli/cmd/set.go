package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ardnew/shlog/log"
	"github.com/ardnew/shlog/pkg"
)

// Set updates the persisted logger configuration.
type Set struct {
	Level     SetLevel     `cmd:"" help:"Set the minimum severity"`
	Formatter SetFormatter `cmd:"" help:"Set brief or verbose console formatting"`
	Output    SetOutput    `cmd:"" help:"Suppress or restore console output"`
	File      SetFile      `cmd:"" help:"Set the append-only log file path"`
}

// SetLevel sets the minimum severity threshold.
type SetLevel struct {
	Export bool   `help:"Publish LOG_LEVEL for child processes"                            short:"x"`
	Value  string `arg:"" help:"debug|info|warning|error|critical (or an alias)" optional:""`
}

// Run executes the set level command.
func (c *SetLevel) Run(ctx context.Context) error {
	if c.Value == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("level")
	}

	level, err := log.ParseLevel(c.Value)
	if err != nil {
		return err
	}

	return persist(ctx, c.Export, log.EnvLevel, level.String(),
		func(s *State) { s.Level = strings.ToLower(level.String()) })
}

// SetFormatter sets the console rendering format.
type SetFormatter struct {
	Export bool   `help:"Publish LOG_FORMATTER for child processes"  short:"x"`
	Value  string `arg:"" help:"brief|verbose (or an alias)" optional:""`
}

// Run executes the set formatter command.
func (c *SetFormatter) Run(ctx context.Context) error {
	if c.Value == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("formatter")
	}

	format, err := log.ParseFormat(c.Value)
	if err != nil {
		return err
	}

	return persist(ctx, c.Export, log.EnvFormatter, strings.ToUpper(format.String()),
		func(s *State) { s.Formatter = format.String() })
}

// SetOutput enables or disables console output suppression.
type SetOutput struct {
	Export bool   `help:"Publish SUPPRESS_CONSOLE for child processes"    short:"x"`
	Value  string `arg:"" help:"true|false (or an alias) to suppress the console" optional:""`
}

// Run executes the set output command.
func (c *SetOutput) Run(ctx context.Context) error {
	if c.Value == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("switch")
	}

	suppress, err := log.ParseSwitch(c.Value)
	if err != nil {
		return err
	}

	token := strconv.FormatBool(suppress)

	return persist(ctx, c.Export, log.EnvSuppressConsole, strings.ToUpper(token),
		func(s *State) { s.SuppressConsole = token })
}

// SetFile sets the log file path, creating the file with owner-only
// permissions if needed.
type SetFile struct {
	Export bool   `help:"Publish LOG_FILE for child processes"  short:"x"`
	Value  string `arg:"" help:"Path of the append-only log file" optional:"" type:"path"`
}

// Run executes the set file command.
func (c *SetFile) Run(ctx context.Context) error {
	if c.Value == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("log file path")
	}

	// The file must exist, owned by the user, mode 0600, before the
	// first write. Failure here is fatal.
	if err := log.EnsureLogFile(c.Value); err != nil {
		return err
	}

	return persist(ctx, c.Export, log.EnvLogFile, c.Value,
		func(s *State) { s.LogFile = c.Value })
}

// persist applies an update to the persisted configuration and, when
// export is requested, publishes the value into the process environment
// and prints an eval-able export line so the calling shell can adopt it:
//
//	eval "$(shlog set level debug --export)"
func persist(
	ctx context.Context,
	export bool,
	env, value string,
	update func(*State),
) error {
	path := stateFileFrom(ctx)

	state, err := LoadState(path)
	if err != nil {
		return err
	}

	update(&state)

	if err := state.Save(path); err != nil {
		return err
	}

	if !export {
		return nil
	}

	if err := os.Setenv(env, value); err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout(ctx), "export %s=%q\n", env, value)

	return err
}
