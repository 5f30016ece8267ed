package log

import (
	"os/user"
	"sync"
	"time"
)

// Record is the transient value rendered by the formatter. It is created
// per log call and consumed immediately; it is never persisted.
type Record struct {
	// Time is the wall-clock time the record was created.
	// It appears only on file-rendered lines.
	Time time.Time
	// Level is the severity of the message.
	Level Level
	// Message is the log message text.
	Message string
	// Origin identifies the call site that produced the record.
	Origin Origin
	// Command is the failing command text when the record carries
	// command context (guarded execution or an explicit log call).
	Command string
	// Status is the exit status of Command.
	Status int
	// HasCommand reports whether Command and Status are meaningful.
	HasCommand bool
	// Identity is the "user:group" stamp of the logging process.
	// It appears only on file-rendered lines.
	Identity string
}

// processIdentity resolves the current process owner as "user:group",
// once per process. An unresolvable group falls back to the numeric GID.
var processIdentity = sync.OnceValue(
	func() string {
		u, err := user.Current()
		if err != nil {
			return ""
		}

		group := u.Gid
		if g, err := user.LookupGroupId(u.Gid); err == nil {
			group = g.Name
		}

		return u.Username + ":" + group
	},
)
