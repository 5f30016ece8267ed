// Package cmd implements the subcommands of the shlog CLI: log, set
// (level, formatter, output, file), check, and run.
//
// Commands construct their logger per invocation from the persisted
// state file overlaid with the LOG_LEVEL, LOG_FORMATTER,
// SUPPRESS_CONSOLE, and LOG_FILE environment mirrors.
package cmd
