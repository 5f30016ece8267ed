// Package cli implements the shlog command-line interface.
//
// The CLI is the shell-facing surface of the logging library: scripts
// invoke subcommands to emit messages, adjust the persisted
// configuration, assert exit statuses, and run commands under a failure
// guard.
//
//	shlog log info "backup started"
//	shlog set level debug --export
//	shlog set file /var/log/backup.log
//	shlog check "$?"
//	shlog run -- rsync -a src/ dst/
//
// Configuration set by the setters persists across invocations in a
// YAML state file under the user configuration directory (overridable
// with SHLOG_CONFIG_DIR). The environment mirrors LOG_LEVEL,
// LOG_FORMATTER, SUPPRESS_CONSOLE, and LOG_FILE overlay the state file,
// so values exported into a shell session take precedence for every
// process in that session.
//
// Usage errors (missing operands, unrecognized tokens) print command
// usage and terminate with exit status 1, as do filesystem failures
// while preparing the log file, fired failure guards, and non-zero
// statuses passed to check.
package cli
