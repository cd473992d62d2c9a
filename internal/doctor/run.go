package doctor

import (
	"context"
	"io"
	"runtime"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/premake"
	"github.com/conn-castle/nebula-setup/internal/python"
	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

// Options select the project and the system seams a report runs against.
type Options struct {
	Root       string
	ConfigPath string
	Env        config.Env
	Python     python.System
	Vulkan     vulkan.System
	Premake    premake.System
	// GOOS defaults to runtime.GOOS.
	GOOS string
}

// Run executes every check in order and returns the results. It never prompts,
// installs, or downloads.
func Run(ctx context.Context, opts Options) []Result {
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	results, cfg := CheckConfig(opts.ConfigPath)
	opts.Env.Apply(cfg)

	exe := cfg.Python.PythonExecutable()
	validator, err := python.NewValidator(opts.Python, nil, io.Discard, exe, cfg.Python.MinVersion)
	if err != nil {
		results = append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.PythonStepRuntime,
			Message:        err.Error(),
			Recommendation: messages.DoctorConfigLoadRecommend,
		})
	} else {
		runtimeResult := CheckPython(ctx, validator)
		results = append(results, runtimeResult)
		if runtimeResult.Status == StatusOK {
			results = append(results, CheckPackages(ctx, opts.Python, exe, cfg.Python.Packages)...)
		}
	}

	vk := vulkan.NewChecker(opts.Vulkan, nil, io.Discard, cfg.Vulkan, opts.Root)
	results = append(results, CheckVulkan(vk), CheckDebugLibs(vk))

	pm := premake.NewChecker(opts.Premake, nil, io.Discard, cfg.Premake, opts.Root)
	pm.GOOS = goos
	results = append(results, CheckPremake(pm))

	results = append(results, CheckGit(opts.Root)...)
	results = append(results, CheckGenerator(opts.Root, cfg.Project, goos))
	return results
}
