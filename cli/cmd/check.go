package cmd

import (
	"context"

	"github.com/ardnew/shlog/pkg"
)

// Check converts an exit status into a logged, fail-fast assertion.
// A zero status succeeds silently; anything else logs one CRITICAL
// record and fails the invocation.
type Check struct {
	Status string `arg:"" help:"Exit status to assert (typically \"$?\")" optional:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) error {
	if c.Status == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("status")
	}

	_, err := makeLogger(ctx).CheckStatus(c.Status)

	return err
}
