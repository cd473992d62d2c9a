package python

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/proc"
)

// System abstracts the interpreter calls needed by the validators.
// Tests substitute a fake so no Python needs to be installed.
type System interface {
	// Version returns the raw output of `<exe> --version`.
	Version(ctx context.Context, exe string) (string, error)
	// HasPackage reports whether name is importable by exe.
	HasPackage(ctx context.Context, exe string, name string) (bool, error)
	// InstallPackage runs `<exe> -m pip install <name>`.
	InstallPackage(ctx context.Context, exe string, name string) error
}

// RealSystem runs the interpreter as a subprocess.
type RealSystem struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Version runs --version. Python 2 prints it on stderr, so both streams are read.
func (RealSystem) Version(ctx context.Context, exe string) (string, error) {
	out, err := proc.Output(ctx, exe, "--version")
	return string(out), err
}

// HasPackage asks the interpreter's import machinery for name without importing it.
func (RealSystem) HasPackage(ctx context.Context, exe string, name string) (bool, error) {
	_, err := proc.Output(ctx, exe, "-c", messages.PythonProbeScript, name)
	if err == nil {
		return true, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return false, nil
	}
	return false, err
}

// InstallPackage streams pip output to the configured writers.
func (s RealSystem) InstallPackage(ctx context.Context, exe string, name string) error {
	r := proc.Runner{Stdout: s.Stdout, Stderr: s.Stderr}
	return r.Run(ctx, "", exe, "-m", "pip", "install", name)
}
