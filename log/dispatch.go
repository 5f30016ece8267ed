package log

import (
	"fmt"
	"os"

	"github.com/ardnew/shlog/pkg"
)

// Outcome is the tri-state result of a dispatch attempt.
type Outcome int

const (
	// Suppressed reports that the record fell below the configured
	// severity threshold and no I/O was performed at all.
	Suppressed Outcome = iota
	// FileOnly reports that the record was appended to the log file and
	// console output was suppressed by configuration.
	FileOnly
	// PrintedBoth reports that the record reached the console and, when
	// a log file is configured, the file as well.
	PrintedBoth
)

// String returns a short name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Suppressed:
		return "suppressed"
	case FileOnly:
		return "file-only"
	default:
		return "printed"
	}
}

// dispatch filters, renders, and routes a record according to the
// current configuration. The severity gate runs first: a suppressed
// record performs no I/O of any kind. The file sink is written before
// the console sink so failures there do not lose the console line.
func (c config) dispatch(r Record) (Outcome, error) {
	if !ShouldEmit(r.Level, c.level) {
		return Suppressed, nil
	}

	var fileErr error
	if c.logFile != "" {
		fileErr = appendLine(c.logFile, renderFile(r))
	}

	if c.suppress {
		return FileOnly, fileErr
	}

	line := renderVerbose(r, c.label)
	if c.format == FormatBrief {
		line = renderBrief(r, c.label)
	}

	if _, err := fmt.Fprintln(c.console, line); err != nil {
		return PrintedBoth, pkg.MakeError(err).Wrapf("write console")
	}

	return PrintedBoth, fileErr
}

// appendLine appends a single rendered line to the log file. The sink is
// append-only: it is never truncated or rotated here. The file is
// created with owner-only permissions if the configured path does not
// yet exist.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFileMode)
	if err != nil {
		return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
	}
	defer f.Close()

	if _, err := fmt.Fprintln(f, line); err != nil {
		return pkg.MakeError(pkg.ErrLogFile).Wrap(err)
	}

	return nil
}
