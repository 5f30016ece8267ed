package cmd

import (
	"context"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/ardnew/shlog/log"
)

// StateIdentifier is the kong variable naming the persisted
// configuration file path.
const StateIdentifier = "statefile"

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given
// kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// stateFileFrom returns the persisted configuration file path, or ""
// when no kong context is available.
func stateFileFrom(ctx context.Context) string {
	ktx := kongContextFrom(ctx)
	if ktx == nil {
		return ""
	}

	return ktx.Model.Vars()[StateIdentifier]
}

// makeLogger constructs the effective logger for a command invocation:
// library defaults, overlaid by the persisted state file, overlaid by
// the environment mirrors. Environment values win over the file so that
// configuration exported into a shell session behaves like in-shell
// inheritance. Labels are colorized when stderr supports it.
func makeLogger(ctx context.Context) log.Logger {
	opts := []log.Option{log.WithColor(true)}

	if path := stateFileFrom(ctx); path != "" {
		if state, err := LoadState(path); err == nil {
			opts = append(opts, state.Options()...)
		}
	}

	opts = append(opts, log.FromEnv())

	return log.Make(opts...)
}

// stdout returns the writer for command output (not log lines). It
// honors the writer configured on the kong parser so tests can capture
// it, falling back to the process stdout.
func stdout(ctx context.Context) io.Writer {
	if ktx := kongContextFrom(ctx); ktx != nil && ktx.Stdout != nil {
		return ktx.Stdout
	}

	return os.Stdout
}
