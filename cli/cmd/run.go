package cmd

import (
	"context"

	"github.com/ardnew/shlog/log"
	"github.com/ardnew/shlog/pkg"
)

// Run executes a command under a failure guard: its standard error is
// captured, and a non-zero exit produces one ERROR record carrying the
// command text, exit status, and captured diagnostics before the
// invocation fails.
type Run struct {
	Args []string `arg:"" help:"Command and arguments to run" optional:"" passthrough:""`
}

// Run executes the run command.
func (c *Run) Run(ctx context.Context) error {
	if len(c.Args) == 0 {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("command")
	}

	guard, err := log.InstallGuard(makeLogger(ctx))
	if err != nil {
		return err
	}
	defer guard.Close()

	return guard.Run(ctx, c.Args[0], c.Args[1:]...)
}
