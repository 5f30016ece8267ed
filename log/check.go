package log

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ardnew/shlog/pkg"
)

// StatusError reports a non-zero status passed to [Logger.CheckStatus].
type StatusError struct {
	// Status is the non-zero exit status that failed the check.
	Status int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("exit status %d", e.Status)
}

// CheckStatus converts an exit-status token into a logged, fail-fast
// assertion.
//
// The token must be a non-negative integer literal; anything else is an
// invalid-option error rejected before any record is produced. A zero
// status returns (0, nil) with no side effect. A non-zero status emits
// one verbose-forced CRITICAL record naming the value and returns a
// [*StatusError] for the caller to escalate (the CLI terminates with
// exit status 1).
func (l Logger) CheckStatus(token string) (int, error) {
	status, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil || status < 0 {
		return 0, pkg.MakeError(pkg.ErrInvalidOption).
			Wrapf("status %q is not a non-negative integer", token)
	}

	if status == 0 {
		return 0, nil
	}

	_, _ = l.
		Wrap(WithFormat(FormatVerbose), WithSuppressConsole(false)).
		Log(LevelCritical, fmt.Sprintf("exit status %d", status))

	return status, &StatusError{Status: status}
}
