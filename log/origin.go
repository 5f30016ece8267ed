package log

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Origin identifies the call site that produced a log record: the source
// file (script), enclosing function, and line number of the first stack
// frame outside this package.
type Origin struct {
	Script   string
	Function string
	Line     int
}

// IsZero reports whether no origin information is available.
func (o Origin) IsZero() bool { return o == Origin{} }

// String returns the "script:function:line" form used in verbose and
// file-rendered lines.
func (o Origin) String() string {
	return o.Script + ":" + o.Function + ":" + strconv.Itoa(o.Line)
}

// OriginProvider supplies the origin for a log record. The default
// provider walks the call stack; callers on platforms or in contexts
// without useful stack information may inject their own location via
// [WithOriginProvider].
type OriginProvider func() Origin

// selfPkg is the function-name prefix of this package, used to skip
// frames internal to the logging library when resolving the caller.
const selfPkg = "github.com/ardnew/shlog/log."

// CallerOrigin walks the active call stack and returns the first frame
// that does not belong to this package. The zero Origin is returned when
// every visible frame is internal.
func CallerOrigin() Origin {
	pcs := make([]uintptr, 32)

	n := runtime.Callers(2, pcs)
	if n == 0 {
		return Origin{}
	}

	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()

		if frame.Function != "" && !internalFrame(frame) {
			return Origin{
				Script:   filepath.Base(frame.File),
				Function: bareFunction(frame.Function),
				Line:     frame.Line,
			}
		}

		if !more {
			return Origin{}
		}
	}
}

// internalFrame reports whether the frame belongs to the logging library
// itself. Test files in this package are treated as external callers so
// the resolver remains observable under test.
func internalFrame(frame runtime.Frame) bool {
	return strings.HasPrefix(frame.Function, selfPkg) &&
		!strings.HasSuffix(frame.File, "_test.go")
}

// ParseOrigin parses a "script:function:line" tuple supplied by a
// caller that resolves its own location (for example a shell script
// passing "$0:${FUNCNAME[0]}:$LINENO"). Missing or non-numeric trailing
// fields are left at their zero values.
func ParseOrigin(s string) Origin {
	var o Origin

	parts := strings.SplitN(s, ":", 3)

	if len(parts) > 0 {
		o.Script = parts[0]
	}

	if len(parts) > 1 {
		o.Function = parts[1]
	}

	if len(parts) > 2 {
		if line, err := strconv.Atoi(parts[2]); err == nil {
			o.Line = line
		}
	}

	return o
}

// bareFunction strips the package path and receiver qualifiers from a
// fully-qualified function name, leaving only the function identifier.
func bareFunction(qualified string) string {
	name := qualified
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}

	return name
}
