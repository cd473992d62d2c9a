package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

func TestMainVersion(t *testing.T) {
	var out bytes.Buffer
	if err := execute([]string{"nbsetup", "--version"}, &out, &out); err != nil {
		t.Fatalf("execute error: %v", err)
	}
	if !strings.Contains(out.String(), Version) {
		t.Fatalf("expected version output, got %q", out.String())
	}
}

func TestMainUnknownCommand(t *testing.T) {
	var out bytes.Buffer
	err := execute([]string{"nbsetup", "unknown"}, &out, &out)
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestRunMainSuccess(t *testing.T) {
	var out bytes.Buffer
	called := false
	runMain([]string{"nbsetup", "--version"}, &out, &out, func(code int) {
		called = true
	})
	if called {
		t.Fatalf("unexpected exit")
	}
}

func TestRunMainError(t *testing.T) {
	var out bytes.Buffer
	code := 0
	runMain([]string{"nbsetup", "unknown"}, &out, &out, func(exitCode int) {
		code = exitCode
	})
	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(out.String(), "unknown command") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestMainCallsExecute(t *testing.T) {
	originalArgs := os.Args
	defer func() { os.Args = originalArgs }()

	os.Args = []string{"nbsetup", "--version"}
	main()
}

func stubExecute(t *testing.T, err error) {
	t.Helper()
	orig := executeFunc
	executeFunc = func([]string, io.Writer, io.Writer) error { return err }
	t.Cleanup(func() { executeFunc = orig })
}

func TestRunMainSilentExit(t *testing.T) {
	stubExecute(t, &SilentExitError{Code: 1})

	var out bytes.Buffer
	code := -1
	runMain([]string{"nbsetup"}, &out, &out, func(c int) { code = c })
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainRestartRequiredExitsCleanly(t *testing.T) {
	stubExecute(t, fmt.Errorf("setup: %w", vulkan.ErrRestartRequired))

	var out bytes.Buffer
	called := false
	runMain([]string{"nbsetup"}, &out, &out, func(int) { called = true })
	if called {
		t.Fatal("installer launch should not call exit")
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}

func TestRunMainExitError(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	stubExecute(t, exitErr)

	var out bytes.Buffer
	code := 0
	runMain([]string{"nbsetup"}, &out, &out, func(c int) { code = c })
	if code != 3 {
		t.Fatalf("expected exit 3, got %d", code)
	}
}

func TestRunMainGenericError(t *testing.T) {
	stubExecute(t, errors.New("boom"))

	var out bytes.Buffer
	code := 0
	runMain([]string{"nbsetup"}, &out, &out, func(c int) { code = c })
	if code != 1 {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("expected error output, got %q", out.String())
	}
}

func TestVersionString(t *testing.T) {
	origVersion, origCommit, origBuild := Version, Commit, BuildDate
	t.Cleanup(func() { Version, Commit, BuildDate = origVersion, origCommit, origBuild })

	Version, Commit, BuildDate = "v1.2.3", "unknown", "unknown"
	if got := versionString(); got != "v1.2.3" {
		t.Fatalf("versionString() = %q", got)
	}

	Commit, BuildDate = "abc123", "2026-01-02"
	if got := versionString(); got != "v1.2.3 (commit abc123, built 2026-01-02)" {
		t.Fatalf("versionString() = %q", got)
	}
}

func TestSilentExitErrorMessage(t *testing.T) {
	if got := (SilentExitError{Code: 2}).Error(); got != "exit 2" {
		t.Fatalf("Error() = %q", got)
	}
}
