package cmd

import (
	"errors"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/shlog/log"
	"github.com/ardnew/shlog/pkg"
)

// stateFileMode restricts the persisted configuration to its owner, the
// same policy applied to the log file itself.
const stateFileMode os.FileMode = 0o600

// State is the logger configuration persisted between shlog
// invocations. Fields hold the canonical token form so the file remains
// hand-editable; they are validated by the setters before being written.
type State struct {
	Level           string `yaml:"level,omitempty"`
	Formatter       string `yaml:"formatter,omitempty"`
	SuppressConsole string `yaml:"suppress-console,omitempty"`
	LogFile         string `yaml:"log-file,omitempty"`
}

// LoadState reads the persisted configuration from path. A missing file
// is not an error: it yields the zero State, which applies no options.
func LoadState(path string) (State, error) {
	var s State

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}

	if err != nil {
		return s, pkg.MakeErrorf("read configuration").Wrap(err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, pkg.MakeErrorf("parse configuration").Wrap(err)
	}

	return s, nil
}

// Save writes the configuration to path with owner-only permissions.
func (s State) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return pkg.MakeError(pkg.ErrWriteState).Wrap(err)
	}

	if err := os.WriteFile(path, data, stateFileMode); err != nil {
		return pkg.MakeError(pkg.ErrWriteState).Wrap(err)
	}

	return nil
}

// Options converts the persisted fields into logger options. The fields
// were validated when written, so a value that no longer parses (for
// example after hand-editing) is skipped rather than fatal.
func (s State) Options() []log.Option {
	var opts []log.Option

	if s.Level != "" {
		if level, err := log.ParseLevel(s.Level); err == nil {
			opts = append(opts, log.WithLevel(level))
		}
	}

	if s.Formatter != "" {
		if format, err := log.ParseFormat(s.Formatter); err == nil {
			opts = append(opts, log.WithFormat(format))
		}
	}

	if s.SuppressConsole != "" {
		if suppress, err := log.ParseSwitch(s.SuppressConsole); err == nil {
			opts = append(opts, log.WithSuppressConsole(suppress))
		}
	}

	if s.LogFile != "" {
		opts = append(opts, log.WithLogFile(s.LogFile))
	}

	return opts
}
