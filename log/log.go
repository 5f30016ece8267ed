package log

import (
	"bufio"
	"os"

	"github.com/ardnew/shlog/pkg"
)

// Logger provides leveled logging to a console stream and an optional
// append-only log file.
//
// The zero value is usable: its first log call behaves as if configured
// with [WithDefaults] on [os.Stderr] overlaid with [FromEnv].
type Logger struct {
	config
}

// Make creates a new [Logger] with the default configuration, overridden
// by any provided options.
//
// Optional configuration can be applied using functional options like
// [WithLevel], [WithFormat], [WithSuppressConsole], and [WithLogFile].
func Make(opts ...Option) Logger {
	// No need to lock the mutex here since we have the only reference to
	// the new config. The functional options will lock it as needed.
	return Logger{config: makeConfig(opts...)}
}

// Wrap returns a new [Logger] that overlays the current configuration
// with the provided options.
//
// The clone carries its own lock and never mutates the receiver, so a
// wrapped logger is the per-call override mechanism: callers of the
// original logger cannot observe the overridden values.
func (l Logger) Wrap(opts ...Option) Logger {
	if l.console == nil {
		return Logger{config: makeConfig(append([]Option{FromEnv()}, opts...)...)}
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return Logger{config: l.clone(opts...)}
}

// Level returns the current severity threshold.
func (l Logger) Level() Level {
	if l.console == nil {
		return DefaultLevel
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.level
}

// Format returns the current console rendering format.
func (l Logger) Format() Format {
	if l.console == nil {
		return DefaultFormat
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.format
}

// LogFile returns the configured log file path, or "" when file output
// is disabled.
func (l Logger) LogFile() string {
	if l.console == nil {
		return ""
	}

	l.mutex.RLock()
	defer l.mutex.RUnlock()

	return l.logFile
}

// Log emits a message at the given severity and reports how it was
// routed.
func (l Logger) Log(level Level, msg string) (Outcome, error) {
	return l.emit(Record{Level: level, Message: msg})
}

// LogCommand emits a message carrying failing-command context: the
// command text and its exit status are rendered in their own bracketed
// segment on verbose and file lines.
func (l Logger) LogCommand(level Level, msg, command string, status int) (Outcome, error) {
	return l.emit(Record{
		Level:      level,
		Message:    msg,
		Command:    command,
		Status:     status,
		HasCommand: true,
	})
}

// LogFrom emits a message read from the first line of the named file.
func (l Logger) LogFrom(level Level, path string) (Outcome, error) {
	msg, err := firstLine(path)
	if err != nil {
		return Suppressed, err
	}

	return l.emit(Record{Level: level, Message: msg})
}

// Debug emits a message at [LevelDebug].
func (l Logger) Debug(msg string) (Outcome, error) { return l.Log(LevelDebug, msg) }

// Info emits a message at [LevelInfo].
func (l Logger) Info(msg string) (Outcome, error) { return l.Log(LevelInfo, msg) }

// Warning emits a message at [LevelWarning].
func (l Logger) Warning(msg string) (Outcome, error) { return l.Log(LevelWarning, msg) }

// Error emits a message at [LevelError].
func (l Logger) Error(msg string) (Outcome, error) { return l.Log(LevelError, msg) }

// Critical emits a message at [LevelCritical].
func (l Logger) Critical(msg string) (Outcome, error) { return l.Log(LevelCritical, msg) }

// emit stamps the record with its origin, time, and identity, then
// dispatches it under the configuration lock. The lock also serializes
// the file append so concurrent callers sharing a logger cannot
// interleave partial lines.
func (l Logger) emit(r Record) (Outcome, error) {
	cfg := l.config
	if cfg.console == nil {
		// Zero value logger: apply lazy defaults for this call only.
		cfg = makeConfig(FromEnv())
	}

	cfg.mutex.Lock()
	defer cfg.mutex.Unlock()

	r.Time = cfg.clock()
	r.Identity = processIdentity()

	if r.Origin.IsZero() {
		r.Origin = cfg.origin()
	}

	return cfg.dispatch(r)
}

// firstLine reads the entire first line of the named file.
func firstLine(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", pkg.MakeError(pkg.ErrReadMessage).Wrap(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", pkg.MakeError(pkg.ErrReadMessage).Wrap(err)
		}

		return "", nil
	}

	return scanner.Text(), nil
}
