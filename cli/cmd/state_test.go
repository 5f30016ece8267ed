package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ardnew/shlog/log"
)

func TestState_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	saved := State{
		Level:           "debug",
		Formatter:       "brief",
		SuppressConsole: "true",
		LogFile:         "/tmp/shlog.log",
	}

	if err := saved.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := LoadState(path)
	if err != nil {
		t.Fatalf("LoadState returned error: %v", err)
	}

	if loaded != saved {
		t.Errorf("LoadState = %+v, want %+v", loaded, saved)
	}
}

func TestState_SaveRestrictsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := (State{Level: "info"}).Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}

	if perm := info.Mode().Perm(); perm != stateFileMode {
		t.Errorf("state file mode = %o, want %o", perm, stateFileMode)
	}
}

func TestState_SaveOmitsEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	if err := (State{Level: "warning"}).Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(string(data), "level: warning") {
		t.Errorf("state file missing level entry: %q", string(data))
	}

	if strings.Contains(string(data), "log-file") {
		t.Errorf("state file contains empty log-file entry: %q", string(data))
	}
}

func TestLoadState_MissingFileYieldsZeroState(t *testing.T) {
	state, err := LoadState(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadState returned error: %v", err)
	}

	if state != (State{}) {
		t.Errorf("LoadState = %+v, want zero State", state)
	}
}

func TestLoadState_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadState(path); err == nil {
		t.Error("LoadState succeeded on malformed YAML")
	}
}

func TestState_Options(t *testing.T) {
	state := State{
		Level:           "debug",
		Formatter:       "brief",
		SuppressConsole: "true",
		LogFile:         "/tmp/shlog.log",
	}

	logger := log.Make(state.Options()...)

	if logger.Level() != log.LevelDebug {
		t.Errorf("Level() = %s, want %s", logger.Level(), log.LevelDebug)
	}

	if logger.Format() != log.FormatBrief {
		t.Errorf("Format() = %s, want %s", logger.Format(), log.FormatBrief)
	}

	if logger.LogFile() != "/tmp/shlog.log" {
		t.Errorf("LogFile() = %q, want %q", logger.LogFile(), "/tmp/shlog.log")
	}
}

func TestState_OptionsSkipsUnparsableFields(t *testing.T) {
	// A hand-edited file with a bad token falls back to defaults for
	// that field instead of failing the whole invocation.
	state := State{Level: "loud", Formatter: "brief"}

	opts := state.Options()
	if len(opts) != 1 {
		t.Fatalf("Options returned %d options, want 1", len(opts))
	}

	logger := log.Make(opts...)

	if logger.Level() != log.DefaultLevel {
		t.Errorf("Level() = %s, want default", logger.Level())
	}

	if logger.Format() != log.FormatBrief {
		t.Errorf("Format() = %s, want %s", logger.Format(), log.FormatBrief)
	}
}

func TestState_ZeroStateAppliesNoOptions(t *testing.T) {
	if opts := (State{}).Options(); len(opts) != 0 {
		t.Errorf("zero State produced %d options, want 0", len(opts))
	}
}
