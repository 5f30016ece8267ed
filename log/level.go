package log

import (
	"iter"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/shlog/pkg"
)

// Level represents the severity of a log message.
//
// Ranks are fixed, strictly increasing, and totally ordered so that
// severities can be compared numerically.
type Level int

const (
	LevelDebug    Level = 10
	LevelInfo     Level = 20
	LevelWarning  Level = 30
	LevelError    Level = 40
	LevelCritical Level = 50
)

// DefaultLevel is the severity threshold used when none is configured.
const DefaultLevel = LevelError

// String returns the canonical uppercase label for the level.
// The label appears verbatim in rendered log lines.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// Levels returns an iterator over all defined log levels in increasing
// severity order.
func Levels() iter.Seq[Level] {
	return func(yield func(Level) bool) {
		for _, level := range []Level{
			LevelDebug,
			LevelInfo,
			LevelWarning,
			LevelError,
			LevelCritical,
		} {
			if !yield(level) {
				return
			}
		}
	}
}

// ShouldEmit reports whether a message at the candidate severity passes
// the configured threshold. It is a pure comparison of ranks.
func ShouldEmit(candidate, threshold Level) bool {
	return candidate >= threshold
}

// levelToken maps every recognized level token, including short aliases,
// to its Level. Tokens are matched case-insensitively.
var levelToken = map[string]Level{
	"d":        LevelDebug,
	"dbg":      LevelDebug,
	"debug":    LevelDebug,
	"i":        LevelInfo,
	"inf":      LevelInfo,
	"info":     LevelInfo,
	"w":        LevelWarning,
	"warn":     LevelWarning,
	"warning":  LevelWarning,
	"e":        LevelError,
	"err":      LevelError,
	"error":    LevelError,
	"c":        LevelCritical,
	"crit":     LevelCritical,
	"critical": LevelCritical,
}

// ParseLevel parses a string representation of a log level.
//
// Canonical names and their short aliases are accepted case-insensitively
// (for example "ERROR", "err", and "e" all parse to [LevelError]).
// Unrecognized tokens are an invalid-option error carrying the nearest
// recognized token as a suggestion.
func ParseLevel(s string) (Level, error) {
	level, ok := levelToken[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return DefaultLevel, invalidToken("level", s, levelTokens())
	}

	return level, nil
}

// levelTokens returns the canonical level names accepted by ParseLevel.
func levelTokens() []string {
	names := make([]string, 0, 5)
	for level := range Levels() {
		names = append(names, strings.ToLower(level.String()))
	}

	return names
}

// invalidToken constructs the invalid-option error returned by the token
// parsers. When a candidate token is close enough to a recognized one,
// the error names it as a suggestion.
func invalidToken(kind, token string, candidates []string) error {
	err := pkg.MakeError(pkg.ErrInvalidOption).Wrapf("%s %q", kind, token)

	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(token)), slices.Sorted(slices.Values(candidates)))
	if len(matches) > 0 {
		err = err.Wrapf("did you mean %q", matches[0].Str)
	}

	return err
}
