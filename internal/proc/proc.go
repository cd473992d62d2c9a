// Package proc runs external commands for setup steps.
package proc

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"runtime"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

var (
	execCommandContext = exec.CommandContext
	execCommand        = exec.Command
)

// Runner runs commands with their standard streams attached to the given readers and writers.
type Runner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes name with args in dir and waits for it to exit.
// dir may be empty to inherit the working directory.
func (r Runner) Run(ctx context.Context, dir string, name string, args ...string) error {
	cmd := execCommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Output executes name with args and returns combined stdout and stderr.
func Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return execCommandContext(ctx, name, args...).CombinedOutput()
}

// LookPath searches PATH for an executable.
func LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Open hands path to the OS default handler and returns without waiting.
func Open(path string) error {
	name, args, err := openCommand(runtime.GOOS, path)
	if err != nil {
		return err
	}
	cmd := execCommand(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf(messages.ProcStartFmt, name, err)
	}
	return cmd.Process.Release()
}

// openCommand returns the launcher invocation for goos.
func openCommand(goos string, path string) (string, []string, error) {
	switch goos {
	case "windows":
		// The empty argument is the window title start expects before a quoted path.
		return "cmd", []string{"/c", "start", "", path}, nil
	case "darwin":
		return "open", []string{path}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{path}, nil
	default:
		return "", nil, fmt.Errorf(messages.ProcOpenUnsupportedFmt, goos)
	}
}
