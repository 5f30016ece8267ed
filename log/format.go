package log

import (
	"fmt"
	"iter"
	"strings"
)

// Format represents the console rendering mode for log messages.
//
// File rendering is unaffected by the format: the file sink always
// receives the verbose form with a timestamp and identity stamp.
type Format int

const (
	FormatBrief   Format = iota // brief
	FormatVerbose               // verbose
)

// DefaultFormat is the console format used when none is configured.
const DefaultFormat = FormatVerbose

// String returns the lowercase name of the format.
func (f Format) String() string {
	if f == FormatBrief {
		return "brief"
	}

	return "verbose"
}

// Formats returns an iterator over all defined console formats.
func Formats() iter.Seq[Format] {
	return func(yield func(Format) bool) {
		for _, format := range []Format{
			FormatBrief,
			FormatVerbose,
		} {
			if !yield(format) {
				return
			}
		}
	}
}

// formatToken maps every recognized format token, including short
// aliases, to its Format. Tokens are matched case-insensitively.
var formatToken = map[string]Format{
	"b":       FormatBrief,
	"brief":   FormatBrief,
	"v":       FormatVerbose,
	"verbose": FormatVerbose,
}

// ParseFormat parses a string representation of a console format.
// Valid tokens are "brief" and "verbose" plus their single-letter
// aliases, case-insensitively.
func ParseFormat(s string) (Format, error) {
	format, ok := formatToken[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultFormat, invalidToken("formatter", s, []string{"brief", "verbose"})
	}

	return format, nil
}

// switchToken maps every recognized boolean token to its value.
var switchToken = map[string]bool{
	"true":  true,
	"t":     true,
	"yes":   true,
	"y":     true,
	"on":    true,
	"1":     true,
	"false": false,
	"f":     false,
	"no":    false,
	"n":     false,
	"off":   false,
	"0":     false,
}

// ParseSwitch parses a string representation of a boolean setting such
// as console suppression. Valid tokens are "true" and "false" plus
// common aliases (t/f, yes/no, y/n, on/off, 1/0), case-insensitively.
func ParseSwitch(s string) (bool, error) {
	v, ok := switchToken[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, invalidToken("switch", s, []string{"true", "false"})
	}

	return v, nil
}

// fileTimeLayout is the zero-padded, second-resolution timestamp layout
// used on every file-rendered line.
const fileTimeLayout = "2006-01-02 15:04:05"

// renderBrief renders the brief console form: the level label followed
// by the message, with no origin or command context.
func renderBrief(r Record, label func(Level) string) string {
	return label(r.Level) + " " + r.Message
}

// renderVerbose renders the verbose console form: level, origin, an
// optional failing-command segment, and the bracketed message.
// A missing origin omits its bracketed segment entirely.
func renderVerbose(r Record, label func(Level) string) string {
	parts := make([]string, 0, 4)
	parts = append(parts, label(r.Level))

	if !r.Origin.IsZero() {
		parts = append(parts, "["+r.Origin.String()+"]")
	}

	if r.HasCommand {
		parts = append(parts, fmt.Sprintf("[%s:%d]", r.Command, r.Status))
	}

	return strings.Join(append(parts, "["+r.Message+"]"), " ")
}

// renderFile renders the file form, which is always verbose and is
// additionally stamped with the local timestamp and process identity.
func renderFile(r Record) string {
	parts := make([]string, 0, 6)
	parts = append(parts,
		"["+r.Time.Format(fileTimeLayout)+"]",
		"["+r.Level.String()+"]",
		"["+r.Identity+"]",
	)

	if !r.Origin.IsZero() {
		parts = append(parts, "["+r.Origin.String()+"]")
	}

	if r.HasCommand {
		parts = append(parts, fmt.Sprintf("[%s:%d]", r.Command, r.Status))
	}

	return strings.Join(append(parts, "["+r.Message+"]"), " ")
}
