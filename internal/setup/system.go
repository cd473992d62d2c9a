package setup

import (
	"context"
	"io"
	"os"

	"github.com/conn-castle/nebula-setup/internal/proc"
)

// System runs the process-level steps of the pipeline.
type System interface {
	Chdir(dir string) error
	UpdateSubmodules(ctx context.Context) error
	RunScript(ctx context.Context, script string, args ...string) error
}

// RealSystem runs git and the generator script with inherited standard streams.
type RealSystem struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Chdir changes the process working directory.
func (RealSystem) Chdir(dir string) error {
	return os.Chdir(dir)
}

// UpdateSubmodules runs `git submodule update --init --recursive` in the working directory.
func (s RealSystem) UpdateSubmodules(ctx context.Context) error {
	return s.runner().Run(ctx, "", "git", "submodule", "update", "--init", "--recursive")
}

// RunScript executes script with args in the working directory.
func (s RealSystem) RunScript(ctx context.Context, script string, args ...string) error {
	return s.runner().Run(ctx, "", script, args...)
}

func (s RealSystem) runner() proc.Runner {
	return proc.Runner{Stdin: s.Stdin, Stdout: s.Stdout, Stderr: s.Stderr}
}
