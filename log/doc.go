// Package log provides leveled logging for shell-style scripting: a
// console sink, an optional append-only log file with restricted
// permissions, and guarded command execution that captures the first
// failure and forwards it through the same pipeline.
//
// # Basic Usage
//
//	logger := log.Make(log.WithLevel(log.LevelDebug))
//	logger.Info("starting backup")
//	logger.Log(log.LevelWarning, "disk nearly full")
//
// # Severity Filtering
//
// Five severities are defined in increasing rank: [LevelDebug],
// [LevelInfo], [LevelWarning], [LevelError], and [LevelCritical]. A
// message is emitted iff its rank is at least the configured threshold;
// below-threshold messages perform no I/O at all. The default threshold
// is [LevelError].
//
// # Console and File Rendering
//
// The console sink renders either a brief form
//
//	[LEVEL] message
//
// or a verbose form with call-site origin and optional failing-command
// context
//
//	[LEVEL] [script:function:line] [command:status] [message]
//
// selected by [WithFormat]. The file sink is always verbose and is
// additionally stamped with a local timestamp and the process identity:
//
//	[2006-01-02 15:04:05] [LEVEL] [user:group] [script:function:line] [message]
//
// # Per-Call Overrides
//
// [Logger.Wrap] returns a clone with options overlaid; the original
// logger is never mutated, so a wrapped logger is the mechanism for
// per-call format or suppression overrides:
//
//	logger.Wrap(log.WithFormat(log.FormatBrief)).Info("terse")
//	logger.Info("back to the ambient format")
//
// # Environment Mirrors
//
// Configuration can be published to and seeded from the environment
// variables LOG_LEVEL, LOG_FORMATTER, SUPPRESS_CONSOLE, and LOG_FILE
// via [Logger.Export] and [FromEnv], allowing child processes to
// inherit the active configuration.
//
// # Guarded Execution
//
// [InstallGuard] arms a one-shot [Guard] that runs commands (or
// in-process operations) with their error output captured to a
// temporary file. The first non-zero exit fires the guard: the captured
// diagnostics, command text, and exit status are logged as a single
// verbose ERROR record before the failure is returned to the caller.
package log
