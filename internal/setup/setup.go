// Package setup runs the bootstrap pipeline: validate prerequisites, update
// submodules, and generate project files.
package setup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/doctor"
	"github.com/conn-castle/nebula-setup/internal/messages"
)

// ErrPrerequisites is returned when the Python runtime or a required package is missing.
var ErrPrerequisites = errors.New(messages.SetupPrerequisitesFailed)

// PythonStep validates the interpreter and its packages.
type PythonStep interface {
	ValidateRuntime(ctx context.Context) (bool, error)
	ValidatePackages(ctx context.Context, names []string) (bool, error)
}

// PremakeStep locates or installs Premake.
type PremakeStep interface {
	Validate(ctx context.Context) (bool, error)
	Available() bool
	BinaryPath() (string, error)
}

// VulkanStep checks the Vulkan SDK.
type VulkanStep interface {
	CheckSDK(ctx context.Context) (bool, error)
	CheckDebugLibs() bool
	SDKRoot() (string, bool)
}

// Pipeline wires the validators to the process steps.
type Pipeline struct {
	Sys      System
	Python   PythonStep
	Packages []string
	Premake  PremakeStep
	Vulkan   VulkanStep
	Out      io.Writer
	Root     string
	Project  config.ProjectConfig
	// VulkanEnvVar names the SDK variable in result messages.
	VulkanEnvVar string
	// GOOS defaults to runtime.GOOS.
	GOOS string
}

// Outcome summarizes a pipeline run.
type Outcome struct {
	Results          []doctor.Result
	PremakeAvailable bool
	Completed        bool
}

func (o *Outcome) add(status doctor.Status, step string, message string) {
	o.Results = append(o.Results, doctor.Result{Status: status, CheckName: step, Message: message})
}

// Run executes the pipeline. It returns ErrPrerequisites when Python or a package
// is missing, and passes through vulkan.ErrRestartRequired once the SDK installer
// has been launched. Submodule and generator failures are recorded in the outcome
// and do not stop the run.
func (p *Pipeline) Run(ctx context.Context) (Outcome, error) {
	var outcome Outcome
	if err := p.check(); err != nil {
		return outcome, err
	}

	ok, err := p.Python.ValidateRuntime(ctx)
	if err != nil {
		return outcome, err
	}
	if !ok {
		outcome.add(doctor.StatusFail, messages.PythonStepRuntime, messages.SetupRuntimeFailed)
		return outcome, ErrPrerequisites
	}
	outcome.add(doctor.StatusOK, messages.PythonStepRuntime, messages.SetupRuntimeOK)

	ok, err = p.Python.ValidatePackages(ctx, p.Packages)
	if err != nil {
		return outcome, err
	}
	if !ok {
		outcome.add(doctor.StatusFail, messages.PythonStepPackages, fmt.Sprintf(messages.PythonPackageMissingFmt, strings.Join(p.Packages, ", ")))
		return outcome, ErrPrerequisites
	}
	outcome.add(doctor.StatusOK, messages.PythonStepPackages, p.packagesMessage())

	if err := p.Sys.Chdir(p.Root); err != nil {
		return outcome, fmt.Errorf(messages.SetupChdirFailedFmt, p.Root, err)
	}

	premakeOK, err := p.Premake.Validate(ctx)
	if err != nil {
		return outcome, err
	}
	bin, _ := p.Premake.BinaryPath()
	if premakeOK {
		outcome.add(doctor.StatusOK, messages.PremakeStepName, fmt.Sprintf(messages.PremakeOKFmt, bin))
	} else {
		outcome.add(doctor.StatusFail, messages.PremakeStepName, fmt.Sprintf(messages.PremakeMissingFmt, bin))
	}

	sdkOK, err := p.Vulkan.CheckSDK(ctx)
	if err != nil {
		return outcome, err
	}
	if sdkOK {
		sdkRoot, _ := p.Vulkan.SDKRoot()
		outcome.add(doctor.StatusOK, messages.VulkanStepSDK, fmt.Sprintf(messages.SetupSDKOKFmt, sdkRoot))
	} else {
		_, _ = fmt.Fprintln(p.Out, messages.VulkanNotInstalledCorrectly)
		outcome.add(doctor.StatusFail, messages.VulkanStepSDK, messages.VulkanNotInstalledCorrectly)
	}

	if p.Vulkan.CheckDebugLibs() {
		outcome.add(doctor.StatusOK, messages.VulkanStepDebugLibs, messages.SetupDebugLibsOK)
	} else {
		_, _ = fmt.Fprintln(p.Out, messages.VulkanNoDebugLibs)
		_, _ = fmt.Fprintln(p.Out, messages.VulkanDebugDisabled)
		outcome.add(doctor.StatusWarn, messages.VulkanStepDebugLibs, messages.VulkanDebugLibsMissing)
	}

	outcome.PremakeAvailable = p.Premake.Available()
	if outcome.PremakeAvailable {
		outcome.add(doctor.StatusOK, messages.PremakeStepRecheck, fmt.Sprintf(messages.PremakeRecheckOKFmt, bin))
	} else {
		outcome.add(doctor.StatusFail, messages.PremakeStepRecheck, fmt.Sprintf(messages.PremakeMissingFmt, bin))
	}
	if sdkRoot, set := p.Vulkan.SDKRoot(); set {
		outcome.add(doctor.StatusOK, messages.VulkanStepRecheck, fmt.Sprintf(messages.VulkanRecheckOKFmt, p.VulkanEnvVar, sdkRoot))
	} else {
		outcome.add(doctor.StatusWarn, messages.VulkanStepRecheck, fmt.Sprintf(messages.VulkanRecheckMissingFmt, p.VulkanEnvVar))
	}

	_, _ = fmt.Fprintln(p.Out, messages.SetupUpdatingSubmodules)
	if err := p.Sys.UpdateSubmodules(ctx); err != nil {
		if ctx.Err() != nil {
			return outcome, ctx.Err()
		}
		outcome.add(doctor.StatusFail, messages.SetupStepSubmodules, fmt.Errorf(messages.SetupSubmodulesFailedFmt, err).Error())
	} else {
		outcome.add(doctor.StatusOK, messages.SetupStepSubmodules, messages.SetupSubmodulesOK)
	}

	if err := p.generate(ctx, &outcome); err != nil {
		return outcome, err
	}

	if outcome.PremakeAvailable {
		_, _ = fmt.Fprintln(p.Out, messages.SetupCompleted)
		outcome.Completed = true
	} else {
		_, _ = fmt.Fprintln(p.Out, messages.SetupRequiresPremake)
	}
	return outcome, nil
}

// generate runs the project generator when Premake is available on the generator OS.
func (p *Pipeline) generate(ctx context.Context, outcome *Outcome) error {
	goos := p.goos()
	switch {
	case !outcome.PremakeAvailable:
		outcome.add(doctor.StatusWarn, messages.SetupStepGenerate, messages.SetupGenerateNoPremake)
		return nil
	case goos != p.Project.GeneratorOS:
		outcome.add(doctor.StatusOK, messages.SetupStepGenerate, fmt.Sprintf(messages.SetupGenerateSkippedOSFmt, goos))
		return nil
	}

	script, err := config.ResolvePath(p.Root, p.Project.GenerateScript)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(p.Out, messages.SetupRunningGenerator)
	if err := p.Sys.RunScript(ctx, script, p.Project.GenerateArgs...); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		outcome.add(doctor.StatusFail, messages.SetupStepGenerate, fmt.Errorf(messages.SetupGeneratorFailedFmt, p.Project.GenerateScript, err).Error())
		return nil
	}
	outcome.add(doctor.StatusOK, messages.SetupStepGenerate, fmt.Sprintf(messages.SetupGenerateOKFmt, p.Project.GenerateScript))
	return nil
}

func (p *Pipeline) packagesMessage() string {
	if len(p.Packages) == 0 {
		return messages.PythonPackagesNoneRequired
	}
	return fmt.Sprintf(messages.PythonPackagesOKFmt, strings.Join(p.Packages, ", "))
}

func (p *Pipeline) goos() string {
	if p.GOOS != "" {
		return p.GOOS
	}
	return runtime.GOOS
}

func (p *Pipeline) check() error {
	if p.Sys == nil || p.Python == nil || p.Premake == nil || p.Vulkan == nil {
		return fmt.Errorf(messages.SetupSystemRequired)
	}
	if p.Out == nil {
		p.Out = io.Discard
	}
	return nil
}
