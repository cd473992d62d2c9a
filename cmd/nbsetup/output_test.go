package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/conn-castle/nebula-setup/internal/doctor"
)

func TestPrintResults(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var out bytes.Buffer
	hasFail := printResults(&out, []doctor.Result{
		{Status: doctor.StatusOK, CheckName: "test-ok", Message: "OK message"},
		{Status: doctor.StatusWarn, CheckName: "test-warn", Message: "Warn message"},
		{Status: doctor.StatusFail, CheckName: "test-fail", Message: "Fail message", Recommendation: "line one\n\nline three"},
	})
	if !hasFail {
		t.Fatal("expected failure")
	}
	got := out.String()
	for _, want := range []string{"[OK]", "test-ok", "[WARN]", "[FAIL]", "Fail message", "line one", "line three"} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintResultsNoFailures(t *testing.T) {
	var out bytes.Buffer
	if printResults(&out, []doctor.Result{{Status: doctor.StatusOK, CheckName: "ok"}}) {
		t.Fatal("unexpected failure")
	}
}
