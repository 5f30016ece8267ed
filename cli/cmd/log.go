package cmd

import (
	"context"
	"strings"

	"github.com/ardnew/shlog/log"
	"github.com/ardnew/shlog/pkg"
)

// Log emits a single leveled log message through the configured sinks.
type Log struct {
	MessageFile string `help:"Read the message from the first line of PATH"           placeholder:"PATH" short:"f" type:"existingfile"`
	Command     string `help:"Failing command text to include as context"             placeholder:"CMD"`
	Status      int    `default:"-1"                                                  help:"Exit status of the command given with --command"`
	Origin      string `help:"Call site to attribute, as script:function:line"        placeholder:"ORIGIN"`
	Brief       bool   `help:"Force brief console formatting for this message"        xor:"format"`
	Verbose     bool   `help:"Force verbose console formatting for this message"      xor:"format"`
	Quiet       bool   `help:"Suppress console output for this message"`

	Level   string   `arg:"" help:"Severity: debug|info|warning|error|critical (or an alias)" optional:""`
	Message []string `arg:"" help:"Message text"                                              optional:""`
}

// Run executes the log command.
func (c *Log) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if c.Level == "" {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("level")
	}

	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return err
	}

	logger := makeLogger(ctx).Wrap(c.options()...)

	if c.MessageFile != "" {
		if len(c.Message) > 0 {
			return pkg.MakeError(pkg.ErrInvalidOption).
				Wrapf("message text and --message-file are mutually exclusive")
		}

		_, err := logger.LogFrom(level, c.MessageFile)

		return err
	}

	if len(c.Message) == 0 {
		return pkg.MakeError(pkg.ErrMissingOperand).Wrapf("message")
	}

	msg := strings.Join(c.Message, " ")

	if c.Command != "" && c.Status >= 0 {
		_, err := logger.LogCommand(level, msg, c.Command, c.Status)

		return err
	}

	_, err = logger.Log(level, msg)

	return err
}

// options converts the per-call override flags into scoped logger
// options. The overrides apply only to this invocation's logger clone;
// the persisted configuration is untouched.
func (c *Log) options() []log.Option {
	var opts []log.Option

	switch {
	case c.Brief:
		opts = append(opts, log.WithFormat(log.FormatBrief))
	case c.Verbose:
		opts = append(opts, log.WithFormat(log.FormatVerbose))
	}

	if c.Quiet {
		opts = append(opts, log.WithSuppressConsole(true))
	}

	if c.Origin != "" {
		origin := log.ParseOrigin(c.Origin)
		opts = append(opts, log.WithOriginProvider(func() log.Origin {
			return origin
		}))
	}

	return opts
}
