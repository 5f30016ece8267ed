package log

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/ardnew/shlog/pkg"
)

// capturePlaceholder is logged in place of diagnostic output when a
// failed operation produced none.
const capturePlaceholder = "(no error output captured from failed command)"

// FailedCommandError reports a guarded operation that exited non-zero.
// It is the error a guard returns after logging the failure, and it
// carries the context needed by callers that terminate the process.
type FailedCommandError struct {
	// Command is the text of the failed command or operation label.
	Command string
	// Status is the non-zero exit status.
	Status int
}

// Error implements the error interface.
func (e *FailedCommandError) Error() string {
	return fmt.Sprintf("command %q failed with status %d", e.Command, e.Status)
}

// Guard owns one temporary error-capture file and intercepts the first
// failing operation run under it, forwarding the failure into the
// logging pipeline as a verbose-forced, console-and-file ERROR record.
//
// A guard is one-shot: once its handler has fired, further runs are
// refused with [pkg.ErrGuardFired]. Re-arm by installing a fresh guard.
// The owner must call [Guard.Close] on scope exit, which removes the
// capture file unconditionally, whether or not the guard fired.
type Guard struct {
	mu      sync.Mutex
	logger  Logger
	capture string
	fired   bool
	closed  bool
}

// InstallGuard arms a new guard bound to the given logger, creating its
// temporary capture file.
func InstallGuard(logger Logger) (*Guard, error) {
	f, err := os.CreateTemp("", pkg.Name+"-capture-*")
	if err != nil {
		return nil, pkg.MakeErrorf("create capture file").Wrap(err)
	}

	if err := f.Close(); err != nil {
		return nil, pkg.MakeErrorf("create capture file").Wrap(err)
	}

	return &Guard{logger: logger, capture: f.Name()}, nil
}

// CapturePath returns the path of the temporary capture file, or "" once
// the guard is closed.
func (g *Guard) CapturePath() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return ""
	}

	return g.capture
}

// Fired reports whether the guard's failure handler has already run.
func (g *Guard) Fired() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.fired
}

// Run executes the named command with its standard error redirected to
// the capture file. On non-zero exit the guard fires: the captured
// diagnostics become the message of a single ERROR record carrying the
// command text and exit status, and a [*FailedCommandError] is returned
// for the caller to escalate (the CLI terminates with exit status 1).
//
// The child inherits the current environment, so configuration exported
// by the setters is visible to it. Standard output passes through.
func (g *Guard) Run(ctx context.Context, name string, args ...string) error {
	if err := g.check(); err != nil {
		return err
	}

	capture, err := os.OpenFile(g.capture, os.O_WRONLY|os.O_TRUNC, logFileMode)
	if err != nil {
		return pkg.MakeErrorf("open capture file").Wrap(err)
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = capture

	runErr := cmd.Run()

	if err := capture.Close(); err != nil && runErr == nil {
		return pkg.MakeErrorf("close capture file").Wrap(err)
	}

	if runErr == nil {
		return nil
	}

	status := 1

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) && exitErr.ExitCode() > 0 {
		status = exitErr.ExitCode()
	}

	return g.fire(strings.Join(append([]string{name}, args...), " "), status)
}

// Do runs a guarded in-process operation, the decorator counterpart of
// [Guard.Run] for embedders. The operation's error text is captured as
// the diagnostic; a [*FailedCommandError] with status 1 is returned
// after the failure is logged.
func (g *Guard) Do(ctx context.Context, label string, op func(context.Context) error) error {
	if err := g.check(); err != nil {
		return err
	}

	opErr := op(ctx)
	if opErr == nil {
		return nil
	}

	if err := os.WriteFile(g.capture, []byte(opErr.Error()), logFileMode); err != nil {
		return pkg.MakeErrorf("write capture file").Wrap(err)
	}

	status := 1

	var failed *FailedCommandError
	if errors.As(opErr, &failed) && failed.Status > 0 {
		status = failed.Status
	}

	return g.fire(label, status)
}

// Close removes the capture file. It is safe to call more than once and
// must run on scope exit regardless of whether the guard fired.
func (g *Guard) Close() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return nil
	}

	g.closed = true

	if err := os.Remove(g.capture); err != nil && !errors.Is(err, os.ErrNotExist) {
		return pkg.MakeErrorf("remove capture file").Wrap(err)
	}

	return nil
}

// check refuses runs on a guard that already fired or was closed.
func (g *Guard) check() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closed {
		return pkg.MakeError(pkg.ErrGuardFired).Wrapf("guard is closed")
	}

	if g.fired {
		return pkg.MakeError(pkg.ErrGuardFired)
	}

	return nil
}

// fire transitions the guard to its terminal state and forwards the
// failure through the standard dispatch path. The record is
// verbose-forced and console output is unsuppressed so a failure is
// never rendered without its command context.
func (g *Guard) fire(command string, status int) error {
	g.mu.Lock()

	if g.fired {
		g.mu.Unlock()

		return pkg.MakeError(pkg.ErrGuardFired)
	}

	g.fired = true
	capture := g.capture
	g.mu.Unlock()

	data, _ := os.ReadFile(capture)

	msg := strings.TrimSpace(string(data))
	if msg == "" {
		msg = capturePlaceholder
	}

	_, _ = g.logger.
		Wrap(WithFormat(FormatVerbose), WithSuppressConsole(false)).
		LogCommand(LevelError, msg, command, status)

	return &FailedCommandError{Command: command, Status: status}
}
