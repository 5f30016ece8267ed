package log

import (
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// DefaultSuppressConsole is the default console suppression setting.
const DefaultSuppressConsole = false

// DefaultColor is the default setting for colorized level labels on the
// console sink.
const DefaultColor = false

// Environment variable names mirroring the process-wide configuration.
// Exported values are inherited by child processes.
const (
	EnvLevel           = "LOG_LEVEL"
	EnvFormatter       = "LOG_FORMATTER"
	EnvSuppressConsole = "SUPPRESS_CONSOLE"
	EnvLogFile         = "LOG_FILE"
)

// config holds the configuration options for a Logger.
type config struct {
	mutex    *sync.RWMutex
	console  io.Writer
	label    func(Level) string
	origin   OriginProvider
	clock    func() time.Time
	logFile  string
	level    Level
	format   Format
	suppress bool
	color    bool
}

// makeConfig creates a new config with defaults applied, overridden by
// any provided options.
func makeConfig(opts ...Option) config {
	var c config

	c.mutex = &sync.RWMutex{}

	return apply(apply(c, WithDefaults(os.Stderr)), opts...)
}

// clone creates a copy of the config with a separate mutex and applies
// any provided options.
func (c config) clone(opts ...Option) config {
	c.mutex = &sync.RWMutex{}

	return apply(c, opts...)
}

// relabel rebinds the console label renderer to the current sink and
// color setting.
func (c config) relabel() config {
	if c.color {
		c.label = styledLabel(c.console)
	} else {
		c.label = plainLabel
	}

	return c
}

// WithDefaults returns a functional option that sets the default
// configuration: threshold [DefaultLevel], [DefaultFormat] console
// rendering, console output enabled, no log file, plain labels, the
// stack-walking origin provider, and the system clock.
func WithDefaults(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.console = w
		c.level = DefaultLevel
		c.format = DefaultFormat
		c.suppress = DefaultSuppressConsole
		c.color = DefaultColor
		c.logFile = ""
		c.origin = CallerOrigin
		c.clock = time.Now

		return c.relabel()
	}
}

// WithConsole returns a functional option that sets the console sink for
// rendered log lines. If a nil writer is provided, [io.Discard] is used
// instead.
func WithConsole(w io.Writer) Option {
	return func(c config) config {
		if w == nil {
			w = io.Discard
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.console = w

		return c.relabel()
	}
}

// WithLevel returns a functional option that sets the minimum severity.
// Messages below this level are discarded without any I/O.
func WithLevel(level Level) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.level = level

		return c
	}
}

// WithFormat returns a functional option that sets the console rendering
// format. File rendering is always verbose and is not affected.
func WithFormat(format Format) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.format = format

		return c
	}
}

// WithSuppressConsole returns a functional option that controls whether
// console output is suppressed. File output is not affected.
func WithSuppressConsole(suppress bool) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.suppress = suppress

		return c
	}
}

// WithLogFile returns a functional option that sets the append-only log
// file path. An empty path disables file output. The path is used as
// given; see [EnsureLogFile] for creating it with restricted permissions.
func WithLogFile(path string) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.logFile = path

		return c
	}
}

// WithColor returns a functional option that controls whether console
// level labels are colorized. The sink's color support is detected at
// configuration time, so enabling color on a colorless sink still
// produces plain text.
func WithColor(enable bool) Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.color = enable

		return c.relabel()
	}
}

// WithOriginProvider returns a functional option that sets the origin
// provider consulted for each record. A nil provider restores the
// default stack-walking resolver.
func WithOriginProvider(provider OriginProvider) Option {
	return func(c config) config {
		if provider == nil {
			provider = CallerOrigin
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.origin = provider

		return c
	}
}

// WithClock returns a functional option that sets the clock used to
// timestamp file-rendered lines. A nil clock restores the system clock.
func WithClock(clock func() time.Time) Option {
	return func(c config) config {
		if clock == nil {
			clock = time.Now
		}

		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		c.clock = clock

		return c
	}
}

// FromEnv returns a functional option that overlays configuration from
// the environment mirrors [EnvLevel], [EnvFormatter],
// [EnvSuppressConsole], and [EnvLogFile]. Unset or unparsable values
// leave the corresponding setting unchanged: exported values are written
// by the setters and are valid by construction, so a foreign value is
// ignored rather than fatal.
func FromEnv() Option {
	return func(c config) config {
		if c.mutex == nil {
			c.mutex = &sync.RWMutex{}
		} else {
			c.mutex.Lock()
			defer c.mutex.Unlock()
		}

		if v, ok := os.LookupEnv(EnvLevel); ok {
			if level, err := ParseLevel(v); err == nil {
				c.level = level
			}
		}

		if v, ok := os.LookupEnv(EnvFormatter); ok {
			if format, err := ParseFormat(v); err == nil {
				c.format = format
			}
		}

		if v, ok := os.LookupEnv(EnvSuppressConsole); ok {
			if suppress, err := ParseSwitch(v); err == nil {
				c.suppress = suppress
			}
		}

		if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
			c.logFile = v
		}

		return c
	}
}

// Export publishes the logger's current configuration into the process
// environment so child processes inherit it. The log file mirror is set
// only when a log file is configured.
func (l Logger) Export() error {
	if l.mutex != nil {
		l.mutex.RLock()
		defer l.mutex.RUnlock()
	}

	env := map[string]string{
		EnvLevel:           l.level.String(),
		EnvFormatter:       strings.ToUpper(l.format.String()),
		EnvSuppressConsole: strings.ToUpper(strconv.FormatBool(l.suppress)),
	}

	if l.logFile != "" {
		env[EnvLogFile] = l.logFile
	}

	for name, value := range env {
		if err := os.Setenv(name, value); err != nil {
			return err
		}
	}

	return nil
}
