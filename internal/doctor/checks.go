package doctor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/premake"
	"github.com/conn-castle/nebula-setup/internal/proc"
	"github.com/conn-castle/nebula-setup/internal/python"
	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

var (
	loadConfigFunc = config.Load
	lookPathFunc   = proc.LookPath
)

// CheckConfig loads the config file at path. A load failure is reported and the
// built-in defaults are returned so the remaining checks still run.
func CheckConfig(path string) ([]Result, *config.Config) {
	cfg, found, err := loadConfigFunc(path)
	if err != nil {
		defaults := config.Default()
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, &defaults
	}
	msg := messages.DoctorConfigDefaults
	if found {
		msg = fmt.Sprintf(messages.DoctorConfigLoadedFmt, path)
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   msg,
	}}, cfg
}

// CheckPython reports the interpreter version against the minimum.
func CheckPython(ctx context.Context, v *python.Validator) Result {
	detected, err := v.DetectVersion(ctx)
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.PythonStepRuntime,
			Message:        fmt.Sprintf(messages.PythonRuntimeMissingFmt, err),
			Recommendation: messages.PythonRuntimeRecommend,
		}
	}
	if !python.MeetsMinimum(detected, v.MinVersion) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.PythonStepRuntime,
			Message:        fmt.Sprintf(messages.PythonRuntimeFailFmt, detected, v.MinVersion.Original()),
			Recommendation: messages.PythonRuntimeRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.PythonStepRuntime,
		Message:   fmt.Sprintf(messages.PythonRuntimeOKFmt, detected, v.MinVersion.Original()),
	}
}

// CheckPackages probes each package without offering to install it.
func CheckPackages(ctx context.Context, sys python.System, exe string, names []string) []Result {
	if len(names) == 0 {
		return []Result{{
			Status:    StatusOK,
			CheckName: messages.PythonStepPackages,
			Message:   messages.PythonPackagesNoneRequired,
		}}
	}

	var results []Result
	for _, name := range names {
		ok, err := sys.HasPackage(ctx, exe, name)
		if err != nil {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.PythonStepPackages,
				Message:        fmt.Errorf(messages.PythonProbeFailedFmt, name, err).Error(),
				Recommendation: messages.PythonRuntimeRecommend,
			})
			continue
		}
		if !ok {
			results = append(results, Result{
				Status:         StatusFail,
				CheckName:      messages.PythonStepPackages,
				Message:        fmt.Sprintf(messages.PythonPackageMissingFmt, name),
				Recommendation: fmt.Sprintf(messages.PythonPackageRecommendFmt, name),
			})
		}
	}
	if len(results) > 0 {
		return results
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.PythonStepPackages,
		Message:   fmt.Sprintf(messages.PythonPackagesOKFmt, strings.Join(names, ", ")),
	}}
}

// CheckVulkan reports whether the SDK env var is set to the required version.
func CheckVulkan(c *vulkan.Checker) Result {
	recommend := fmt.Sprintf(messages.VulkanSDKRecommendFmt, c.Config.DefaultVersion)
	sdkRoot, ok := c.SDKRoot()
	if !ok {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.VulkanStepSDK,
			Message:        fmt.Sprintf(messages.VulkanSDKMissingFmt, c.Config.EnvVar),
			Recommendation: recommend,
		}
	}
	required := strings.TrimSuffix(c.Config.RequiredVersion, ".")
	if !c.HasRequiredVersion(sdkRoot) {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.VulkanStepSDK,
			Message:        fmt.Sprintf(messages.VulkanSDKWrongVersionFmt, c.Config.EnvVar, sdkRoot, required),
			Recommendation: recommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.VulkanStepSDK,
		Message:   fmt.Sprintf(messages.VulkanSDKOKFmt, required, sdkRoot),
	}
}

// CheckDebugLibs reports the debug library probe. A miss only disables the debug
// configuration, so it is a warning.
func CheckDebugLibs(c *vulkan.Checker) Result {
	if c.CheckDebugLibs() {
		path, _ := c.DebugLibPath()
		return Result{
			Status:    StatusOK,
			CheckName: messages.VulkanStepDebugLibs,
			Message:   fmt.Sprintf(messages.VulkanDebugLibsOKFmt, path),
		}
	}
	return Result{
		Status:         StatusWarn,
		CheckName:      messages.VulkanStepDebugLibs,
		Message:        messages.VulkanDebugLibsMissing,
		Recommendation: messages.VulkanDebugLibsRecommend,
	}
}

// CheckPremake reports whether the vendored Premake binary exists.
func CheckPremake(c *premake.Checker) Result {
	bin, err := c.BinaryPath()
	if err != nil {
		bin = c.Config.Dir
	}
	if c.Available() {
		return Result{
			Status:    StatusOK,
			CheckName: messages.PremakeStepName,
			Message:   fmt.Sprintf(messages.PremakeOKFmt, bin),
		}
	}
	return Result{
		Status:         StatusFail,
		CheckName:      messages.PremakeStepName,
		Message:        fmt.Sprintf(messages.PremakeMissingFmt, bin),
		Recommendation: messages.PremakeRecommend,
	}
}

// CheckGit verifies git is on PATH and that the project declares submodules.
func CheckGit(root string) []Result {
	path, err := lookPathFunc("git")
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameGit,
			Message:        messages.DoctorGitMissing,
			Recommendation: messages.DoctorGitRecommend,
		}}
	}
	results := []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameGit,
		Message:   fmt.Sprintf(messages.DoctorGitFoundFmt, path),
	}}
	if _, err := os.Stat(filepath.Join(root, ".gitmodules")); err != nil {
		results = append(results, Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameGit,
			Message:   messages.DoctorGitmodulesMissing,
		})
	}
	return results
}

// CheckGenerator verifies the project generation script exists on the OS that runs it.
func CheckGenerator(root string, cfg config.ProjectConfig, goos string) Result {
	if goos != cfg.GeneratorOS {
		return Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameGenerator,
			Message:   fmt.Sprintf(messages.DoctorGeneratorSkippedFmt, goos),
		}
	}
	script, err := config.ResolvePath(root, cfg.GenerateScript)
	if err == nil {
		_, err = os.Stat(script)
	}
	if err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameGenerator,
			Message:        fmt.Sprintf(messages.DoctorGeneratorMissingFmt, cfg.GenerateScript),
			Recommendation: messages.DoctorGeneratorRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameGenerator,
		Message:   fmt.Sprintf(messages.DoctorGeneratorFoundFmt, cfg.GenerateScript),
	}
}
