package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/shlog/cli/cmd"
	"github.com/ardnew/shlog/pkg"
)

// CLI is the top-level command-line interface for shlog.
type CLI struct {
	Pprof pprofConfig `embed:"" group:"pprof" prefix:"pprof-"`

	Version kong.VersionFlag `help:"Print version and exit" short:"V"`

	Log   cmd.Log   `cmd:"" help:"Emit a leveled log message"`
	Set   cmd.Set   `cmd:"" help:"Update the persisted logger configuration"`
	Check cmd.Check `cmd:"" help:"Fail fast when an exit status is non-zero"`
	Run   cmd.Run   `cmd:"" help:"Run a command, logging any failure before exiting"`
}

// Run executes the shlog CLI with the given context and arguments.
// The exit function is called with the appropriate exit code upon
// completion. Every fatal path returns a non-nil error after writing a
// human-readable diagnostic; the caller terminates with exit status 1.
func Run(
	ctx context.Context,
	exit func(code int),
	args ...string,
) error {
	var cli CLI

	err := mkdirAllRequired()
	if err != nil {
		return err
	}

	vars := kong.Vars{
		cmd.StateIdentifier: statePath(),
		"version":           pkg.Name + " " + strings.TrimSpace(pkg.Version),
	}.CloneWith(cli.Pprof.vars())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var groups []kong.Group
	if group := cli.Pprof.group(); group.Key != "" {
		groups = append(groups, group)
	}

	parser, err := kong.New(&cli,
		kong.Name(pkg.Name),
		kong.Description(pkg.Description),
		kong.UsageOnError(),
		kong.Exit(exit),
		kong.ExplicitGroups(groups),
		kong.BindSingletonProvider(func() context.Context {
			return ctx
		}),
		vars,
	)
	if err != nil {
		return err
	}

	ktx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Stuff additional context values for use by commands
	ctx = cmd.WithContext(ctx, ktx)

	// [pprofConfig.start] is no-op unless built with tag pprof and enabled.
	defer cli.Pprof.start()()

	err = ktx.Run()

	// Usage-class errors print command usage before the caller terminates.
	if errors.Is(err, pkg.ErrMissingOperand) || errors.Is(err, pkg.ErrInvalidOption) {
		_ = ktx.PrintUsage(false)
	}

	return err
}
