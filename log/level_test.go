package log

import (
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/shlog/pkg"
)

func TestLevel_String(t *testing.T) {
	cases := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarning, "WARNING"},
		{LevelError, "ERROR"},
		{LevelCritical, "CRITICAL"},
		{Level(0), "UNKNOWN"},
	}

	for _, c := range cases {
		if got := c.level.String(); got != c.want {
			t.Errorf("Level(%d).String() = %q, want %q", int(c.level), got, c.want)
		}
	}
}

func TestLevels_StrictlyIncreasing(t *testing.T) {
	prev := Level(0)

	count := 0
	for level := range Levels() {
		if level <= prev {
			t.Errorf("level %s (%d) not greater than previous (%d)", level, int(level), int(prev))
		}

		prev = level
		count++
	}

	if count != 5 {
		t.Errorf("Levels() yielded %d levels, want 5", count)
	}
}

func TestShouldEmit(t *testing.T) {
	cases := []struct {
		name      string
		candidate Level
		threshold Level
		want      bool
	}{
		{"DebugAtDebug", LevelDebug, LevelDebug, true},
		{"DebugAtInfo", LevelDebug, LevelInfo, false},
		{"DebugAtCritical", LevelDebug, LevelCritical, false},
		{"InfoAtDebug", LevelInfo, LevelDebug, true},
		{"InfoAtError", LevelInfo, LevelError, false},
		{"WarningAtWarning", LevelWarning, LevelWarning, true},
		{"ErrorAtError", LevelError, LevelError, true},
		{"ErrorAtCritical", LevelError, LevelCritical, false},
		{"CriticalAtDebug", LevelCritical, LevelDebug, true},
		{"CriticalAtCritical", LevelCritical, LevelCritical, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ShouldEmit(c.candidate, c.threshold); got != c.want {
				t.Errorf("ShouldEmit(%s, %s) = %v, want %v", c.candidate, c.threshold, got, c.want)
			}
		})
	}
}

func TestShouldEmit_DebugThresholdAdmitsAll(t *testing.T) {
	for level := range Levels() {
		if !ShouldEmit(level, LevelDebug) {
			t.Errorf("ShouldEmit(%s, DEBUG) = false, want true", level)
		}
	}
}

func TestParseLevel(t *testing.T) {
	cases := []struct {
		token string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"d", LevelDebug},
		{"dbg", LevelDebug},
		{"info", LevelInfo},
		{"i", LevelInfo},
		{"inf", LevelInfo},
		{"warning", LevelWarning},
		{"Warn", LevelWarning},
		{"w", LevelWarning},
		{"error", LevelError},
		{"ERR", LevelError},
		{"e", LevelError},
		{"critical", LevelCritical},
		{"crit", LevelCritical},
		{"C", LevelCritical},
		{"  info  ", LevelInfo},
	}

	for _, c := range cases {
		t.Run(c.token, func(t *testing.T) {
			got, err := ParseLevel(c.token)
			if err != nil {
				t.Fatalf("ParseLevel(%q) returned error: %v", c.token, err)
			}

			if got != c.want {
				t.Errorf("ParseLevel(%q) = %s, want %s", c.token, got, c.want)
			}
		})
	}
}

func TestParseLevel_Invalid(t *testing.T) {
	for _, token := range []string{"", "notice", "42", "warnning"} {
		t.Run("token="+token, func(t *testing.T) {
			_, err := ParseLevel(token)
			if err == nil {
				t.Fatalf("ParseLevel(%q) succeeded, want invalid-option error", token)
			}

			if !errors.Is(err, pkg.ErrInvalidOption) {
				t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidOption", token, err)
			}
		})
	}
}

func TestParseLevel_InvalidSuggestsNearestToken(t *testing.T) {
	_, err := ParseLevel("eror")
	if err == nil {
		t.Fatal("ParseLevel(\"eror\") succeeded, want invalid-option error")
	}

	if !strings.Contains(err.Error(), `did you mean "error"`) {
		t.Errorf("error %q does not suggest \"error\"", err.Error())
	}
}
