package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestCallerOrigin_ResolvesCallingFrame(t *testing.T) {
	origin := CallerOrigin()

	if origin.IsZero() {
		t.Fatal("CallerOrigin returned the zero Origin")
	}

	if origin.Script != "origin_test.go" {
		t.Errorf("Script = %q, want %q", origin.Script, "origin_test.go")
	}

	if origin.Function != "TestCallerOrigin_ResolvesCallingFrame" {
		t.Errorf("Function = %q, want the test function", origin.Function)
	}

	if origin.Line <= 0 {
		t.Errorf("Line = %d, want positive", origin.Line)
	}
}

func TestCallerOrigin_SkipsLoggerFrames(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(
		WithConsole(&buf),
		WithLevel(LevelDebug),
		WithFormat(FormatVerbose),
	)

	if _, err := logger.Info("where am I"); err != nil {
		t.Fatal(err)
	}

	// The resolver must attribute the record to this test, not to any
	// frame inside the logging pipeline itself.
	if got := buf.String(); !strings.Contains(got, "[origin_test.go:TestCallerOrigin_SkipsLoggerFrames:") {
		t.Errorf("console line = %q, want origin of the calling test", got)
	}
}

func TestOrigin_String(t *testing.T) {
	o := Origin{Script: "deploy.sh", Function: "main", Line: 42}

	if got := o.String(); got != "deploy.sh:main:42" {
		t.Errorf("String() = %q, want %q", got, "deploy.sh:main:42")
	}
}

func TestOrigin_IsZero(t *testing.T) {
	if !(Origin{}).IsZero() {
		t.Error("zero Origin reported non-zero")
	}

	if (Origin{Script: "a"}).IsZero() {
		t.Error("non-zero Origin reported zero")
	}
}

func TestParseOrigin(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  Origin
	}{
		{"Full", "deploy.sh:main:42", Origin{Script: "deploy.sh", Function: "main", Line: 42}},
		{"MissingLine", "deploy.sh:main", Origin{Script: "deploy.sh", Function: "main"}},
		{"ScriptOnly", "deploy.sh", Origin{Script: "deploy.sh"}},
		{"NonNumericLine", "deploy.sh:main:oops", Origin{Script: "deploy.sh", Function: "main"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := ParseOrigin(c.input); got != c.want {
				t.Errorf("ParseOrigin(%q) = %+v, want %+v", c.input, got, c.want)
			}
		})
	}
}

func TestBareFunction(t *testing.T) {
	cases := []struct {
		qualified string
		want      string
	}{
		{"github.com/ardnew/shlog/log.CallerOrigin", "CallerOrigin"},
		{"main.main", "main"},
		{"github.com/ardnew/shlog/log.(*Guard).Run", "Run"},
		{"run", "run"},
	}

	for _, c := range cases {
		if got := bareFunction(c.qualified); got != c.want {
			t.Errorf("bareFunction(%q) = %q, want %q", c.qualified, got, c.want)
		}
	}
}
