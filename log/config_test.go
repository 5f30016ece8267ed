package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWithDefaults_NilWriterDiscards(t *testing.T) {
	logger := Make(WithConsole(nil))

	if logger.config.console != io.Discard {
		t.Error("nil console writer was not replaced with io.Discard")
	}
}

func TestWithOptions_Combined(t *testing.T) {
	var buf bytes.Buffer

	path := filepath.Join(t.TempDir(), "shlog.log")

	logger := Make(
		WithConsole(&buf),
		WithLevel(LevelWarning),
		WithFormat(FormatBrief),
		WithSuppressConsole(true),
		WithLogFile(path),
	)

	if logger.Level() != LevelWarning {
		t.Errorf("Level() = %s, want %s", logger.Level(), LevelWarning)
	}

	if logger.Format() != FormatBrief {
		t.Errorf("Format() = %s, want %s", logger.Format(), FormatBrief)
	}

	if !logger.config.suppress {
		t.Error("suppress = false, want true")
	}

	if logger.LogFile() != path {
		t.Errorf("LogFile() = %q, want %q", logger.LogFile(), path)
	}
}

func TestWithClock_NilRestoresSystemClock(t *testing.T) {
	logger := Make(WithClock(nil))

	if logger.config.clock == nil {
		t.Fatal("clock is nil")
	}

	now := logger.config.clock()
	if time.Since(now) > time.Minute {
		t.Errorf("clock returned %v, want approximately now", now)
	}
}

func TestFromEnv_OverlaysConfiguration(t *testing.T) {
	t.Setenv(EnvLevel, "DEBUG")
	t.Setenv(EnvFormatter, "BRIEF")
	t.Setenv(EnvSuppressConsole, "TRUE")
	t.Setenv(EnvLogFile, "/tmp/from-env.log")

	logger := Make(FromEnv())

	if logger.Level() != LevelDebug {
		t.Errorf("Level() = %s, want %s", logger.Level(), LevelDebug)
	}

	if logger.Format() != FormatBrief {
		t.Errorf("Format() = %s, want %s", logger.Format(), FormatBrief)
	}

	if !logger.config.suppress {
		t.Error("suppress = false, want true")
	}

	if logger.LogFile() != "/tmp/from-env.log" {
		t.Errorf("LogFile() = %q, want %q", logger.LogFile(), "/tmp/from-env.log")
	}
}

func TestFromEnv_IgnoresUnparsableValues(t *testing.T) {
	t.Setenv(EnvLevel, "LOUD")
	t.Setenv(EnvFormatter, "")
	t.Setenv(EnvSuppressConsole, "perhaps")

	logger := Make(FromEnv())

	if logger.Level() != DefaultLevel {
		t.Errorf("Level() = %s, want default %s", logger.Level(), DefaultLevel)
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("Format() = %s, want default %s", logger.Format(), DefaultFormat)
	}

	if logger.config.suppress != DefaultSuppressConsole {
		t.Errorf("suppress = %v, want default %v", logger.config.suppress, DefaultSuppressConsole)
	}
}

func TestExport_PublishesEnvironmentMirrors(t *testing.T) {
	// t.Setenv registers cleanup restoring the previous values.
	t.Setenv(EnvLevel, "")
	t.Setenv(EnvFormatter, "")
	t.Setenv(EnvSuppressConsole, "")
	t.Setenv(EnvLogFile, "")

	logger := Make(
		WithLevel(LevelDebug),
		WithFormat(FormatBrief),
		WithSuppressConsole(true),
		WithLogFile("/tmp/export.log"),
	)

	if err := logger.Export(); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	cases := []struct {
		env  string
		want string
	}{
		{EnvLevel, "DEBUG"},
		{EnvFormatter, "BRIEF"},
		{EnvSuppressConsole, "TRUE"},
		{EnvLogFile, "/tmp/export.log"},
	}

	for _, c := range cases {
		if got := os.Getenv(c.env); got != c.want {
			t.Errorf("%s = %q, want %q", c.env, got, c.want)
		}
	}
}

func TestExport_OmitsLogFileWhenUnset(t *testing.T) {
	t.Setenv(EnvLogFile, "")

	if err := Make(WithLevel(LevelInfo)).Export(); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	if got := os.Getenv(EnvLogFile); got != "" {
		t.Errorf("%s = %q, want empty", EnvLogFile, got)
	}
}

func TestExport_ChildProcessInheritsLevel(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("/bin/sh unavailable")
	}

	t.Setenv(EnvLevel, "")

	logger := Make(WithConsole(io.Discard), WithLevel(LevelDebug))
	if err := logger.Export(); err != nil {
		t.Fatalf("Export returned error: %v", err)
	}

	guard, err := InstallGuard(logger)
	if err != nil {
		t.Fatalf("InstallGuard returned error: %v", err)
	}
	defer guard.Close()

	if err := guard.Run(t.Context(), "/bin/sh", "-c", `test "$LOG_LEVEL" = DEBUG`); err != nil {
		t.Errorf("child process did not observe LOG_LEVEL=DEBUG: %v", err)
	}
}
