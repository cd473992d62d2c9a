// Package python validates the Python interpreter and the packages the engine scripts import.
package python

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/prompt"
)

var versionPattern = regexp.MustCompile(`(\d+)\.(\d+)(?:\.(\d+))?`)

// Validator checks the interpreter version and installs missing packages on request.
type Validator struct {
	Sys        System
	Prompt     prompt.Prompter
	Out        io.Writer
	Executable string
	MinVersion *semver.Version
}

// NewValidator builds a Validator. minVersion is a "major.minor" string such as "3.3".
func NewValidator(sys System, p prompt.Prompter, out io.Writer, exe string, minVersion string) (*Validator, error) {
	minV, err := semver.NewVersion(minVersion)
	if err != nil {
		return nil, fmt.Errorf(messages.PythonMinVersionInvalidFmt, minVersion, err)
	}
	return &Validator{Sys: sys, Prompt: p, Out: out, Executable: exe, MinVersion: minV}, nil
}

// ParseVersion extracts the first X.Y[.Z] triple from interpreter output such as "Python 3.10.4".
func ParseVersion(output string) (*semver.Version, error) {
	m := versionPattern.FindStringSubmatch(output)
	if m == nil {
		return nil, fmt.Errorf(messages.PythonUnparsableVersionFmt, strings.TrimSpace(output))
	}
	patch := m[3]
	if patch == "" {
		patch = "0"
	}
	return semver.NewVersion(m[1] + "." + m[2] + "." + patch)
}

// MeetsMinimum reports whether v is at least min on major and minor, compared numerically.
// The patch component is ignored.
func MeetsMinimum(v *semver.Version, minV *semver.Version) bool {
	if v.Major() != minV.Major() {
		return v.Major() > minV.Major()
	}
	return v.Minor() >= minV.Minor()
}

// DetectVersion runs the interpreter and parses its version.
func (v *Validator) DetectVersion(ctx context.Context) (*semver.Version, error) {
	if err := v.check(); err != nil {
		return nil, err
	}
	out, err := v.Sys.Version(ctx, v.Executable)
	if err != nil {
		return nil, err
	}
	return ParseVersion(out)
}

// ValidateRuntime prints the detected version and reports whether it meets MinVersion.
// A missing or unparsable interpreter is reported as a failed check, not an error.
func (v *Validator) ValidateRuntime(ctx context.Context) (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	detected, err := v.DetectVersion(ctx)
	if err != nil {
		_, _ = fmt.Fprintf(v.Out, messages.PythonNotFoundFmt, v.Executable, err)
		return false, nil
	}
	_, _ = fmt.Fprintf(v.Out, messages.PythonVersionDetectedFmt, detected.Major(), detected.Minor(), detected.Patch())
	if !MeetsMinimum(detected, v.MinVersion) {
		_, _ = fmt.Fprintf(v.Out, messages.PythonInvalidVersionFmt, v.MinVersion.Major(), v.MinVersion.Minor())
		return false, nil
	}
	return true, nil
}

// ValidatePackage succeeds silently when name is importable. Otherwise it asks
// before installing with pip, then checks once more. Installer failures are returned as errors.
func (v *Validator) ValidatePackage(ctx context.Context, name string) (bool, error) {
	if err := v.check(); err != nil {
		return false, err
	}
	ok, err := v.Sys.HasPackage(ctx, v.Executable, name)
	if err != nil {
		return false, fmt.Errorf(messages.PythonProbeFailedFmt, name, err)
	}
	if ok {
		return true, nil
	}
	return v.installPackage(ctx, name)
}

func (v *Validator) installPackage(ctx context.Context, name string) (bool, error) {
	accepted, err := v.Prompt.Confirm(fmt.Sprintf(messages.PythonInstallPromptFmt, name))
	if err != nil {
		return false, err
	}
	if !accepted {
		return false, nil
	}

	_, _ = fmt.Fprintf(v.Out, messages.PythonInstallingFmt, name)
	if err := v.Sys.InstallPackage(ctx, v.Executable, name); err != nil {
		return false, fmt.Errorf(messages.PythonInstallFailedFmt, name, err)
	}

	ok, err := v.Sys.HasPackage(ctx, v.Executable, name)
	if err != nil {
		return false, fmt.Errorf(messages.PythonProbeFailedFmt, name, err)
	}
	if !ok {
		return false, fmt.Errorf(messages.PythonStillMissingFmt, name)
	}
	return true, nil
}

// ValidatePackages validates names in order and stops at the first failure.
func (v *Validator) ValidatePackages(ctx context.Context, names []string) (bool, error) {
	for _, name := range names {
		ok, err := v.ValidatePackage(ctx, name)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

// Validate runs ValidateRuntime and then ValidatePackages.
func (v *Validator) Validate(ctx context.Context, names []string) (bool, error) {
	ok, err := v.ValidateRuntime(ctx)
	if err != nil || !ok {
		return false, err
	}
	return v.ValidatePackages(ctx, names)
}

func (v *Validator) check() error {
	if v.Sys == nil {
		return fmt.Errorf(messages.PythonSystemRequired)
	}
	if v.Executable == "" {
		return fmt.Errorf(messages.PythonExecutableRequired)
	}
	if v.MinVersion == nil {
		return fmt.Errorf(messages.PythonMinVersionRequired)
	}
	if v.Out == nil {
		v.Out = io.Discard
	}
	return nil
}
