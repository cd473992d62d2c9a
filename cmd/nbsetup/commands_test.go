package main

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/testutil"
	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

type project struct {
	root    string
	bin     string
	gitLog  string
	sdkRoot string
}

// newProject lays out a Nebula checkout with stubbed python and git and a
// complete SDK, so every step of the pipeline passes.
func newProject(t *testing.T, pythonVersion string) project {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell stubs require a POSIX shell")
	}
	p := project{root: t.TempDir(), bin: t.TempDir()}
	writeFile(t, filepath.Join(p.root, "premake5.lua"), "workspace 'Nebula'\n")
	writeFile(t, filepath.Join(p.root, ".gitmodules"), "")
	writeFile(t, filepath.Join(p.root, "vendor", "premake", "bin", "premake5"), "#!/bin/sh\n")

	python := testutil.WriteScript(t, p.bin, "python", `if [ "$1" = "--version" ]; then echo "Python `+pythonVersion+`"; fi
exit 0
`)
	t.Setenv("NB_PYTHON", python)

	p.gitLog = filepath.Join(p.bin, "git.log")
	testutil.WriteRecordingStub(t, p.bin, "git", p.gitLog, 0)
	testutil.PrependPath(t, p.bin)

	p.sdkRoot = filepath.Join(t.TempDir(), "VulkanSDK", "1.3.204.1")
	writeFile(t, filepath.Join(p.sdkRoot, "Lib", "shaderc_sharedd.lib"), "")
	t.Setenv("VULKAN_SDK", p.sdkRoot)

	unsetEnv(t, "NB_SETUP_CONFIG")
	unsetEnv(t, "NB_PLAIN")
	t.Setenv("NB_NO_NETWORK", "1")
	stubInteractive(t, false)
	return p
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func stubInteractive(t *testing.T, interactive bool) {
	t.Helper()
	orig := isInteractiveFunc
	isInteractiveFunc = func() bool { return interactive }
	t.Cleanup(func() { isInteractiveFunc = orig })
}

func runCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	var err error
	testutil.WithWorkingDir(t, t.TempDir(), func() {
		err = cmd.Execute()
	})
	return out.String(), err
}

func TestSetupCommandCompletes(t *testing.T) {
	p := newProject(t, "3.11.4")

	out, err := runCmd(t, "", "--root", p.root)
	require.NoError(t, err)
	assert.Contains(t, out, "Python version 3.11.4 detected")
	assert.Contains(t, out, "Correct Vulkan SDK located at "+p.sdkRoot)
	assert.Contains(t, out, "Updating submodules...")
	assert.Contains(t, out, "Setup completed!")
	assert.Contains(t, out, "Summary:")

	data, err := os.ReadFile(p.gitLog)
	require.NoError(t, err)
	assert.Equal(t, "submodule update --init --recursive\n", string(data))
}

func TestSetupSubcommandQuiet(t *testing.T) {
	p := newProject(t, "3.11.4")

	out, err := runCmd(t, "", "setup", "--root", p.root, "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, out, "Setup completed!")
	assert.NotContains(t, out, "Summary:")
}

func TestSetupCommandOldPythonExitsSilently(t *testing.T) {
	p := newProject(t, "3.2.1")

	out, err := runCmd(t, "", "--root", p.root)
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent), "err = %v", err)
	assert.Equal(t, 1, silent.Code)
	assert.Contains(t, out, "Invalid Python Version, expected 3.3 or higher")
	assert.NotContains(t, out, "Updating submodules...")
	_, statErr := os.Stat(p.gitLog)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSetupCommandMissingPremakeDeclined(t *testing.T) {
	p := newProject(t, "3.11.4")
	require.NoError(t, os.Remove(filepath.Join(p.root, "vendor", "premake", "bin", "premake5")))

	out, err := runCmd(t, "n\n", "--root", p.root, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Would you like to download Premake 5.0.0-beta2? [Y/N]: ")
	assert.Contains(t, out, "Nebula requires Premake to generate project files.")
	assert.NotContains(t, out, "Setup completed!")
}

func TestSetupCommandDownloadRefusedOffline(t *testing.T) {
	p := newProject(t, "3.11.4")
	t.Setenv("VULKAN_SDK", "")

	_, err := runCmd(t, "y\n", "--root", p.root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "network access disabled")
}

func TestSetupCommandInstallerLaunchSkipsSummary(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("installer launch stub targets xdg-open")
	}
	p := newProject(t, "3.11.4")
	t.Setenv("VULKAN_SDK", "")
	unsetEnv(t, "NB_NO_NETWORK")
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	launchLog := filepath.Join(p.bin, "xdg-open.log")
	testutil.WriteRecordingStub(t, p.bin, "xdg-open", launchLog, 0)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("installer"))
	}))
	defer srv.Close()
	writeFile(t, config.DefaultConfigPath(p.root), "[vulkan]\ndownload_url = \""+srv.URL+"/VulkanSDK-{version}-Installer.exe\"\n")

	out, err := runCmd(t, "y\n", "--root", p.root, "--plain")
	require.ErrorIs(t, err, vulkan.ErrRestartRequired)
	assert.Contains(t, out, "Re-run this script after installation!")
	assert.NotContains(t, out, "Summary:")
	assert.NotContains(t, out, "Updating submodules...")
}

func TestPythonCommand(t *testing.T) {
	p := newProject(t, "3.12.0")

	out, err := runCmd(t, "", "python", "--root", p.root)
	require.NoError(t, err)
	assert.Contains(t, out, "Python version 3.12.0 detected")
}

func TestPythonCommandFailure(t *testing.T) {
	p := newProject(t, "2.7.18")

	_, err := runCmd(t, "", "python", "--root", p.root)
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent))
}

func TestVulkanCommand(t *testing.T) {
	p := newProject(t, "3.11.4")

	out, err := runCmd(t, "", "vulkan", "--root", p.root)
	require.NoError(t, err)
	assert.Contains(t, out, "Correct Vulkan SDK located at")
	assert.NotContains(t, out, "debug libs")
}

func TestVulkanCommandWrongVersionDeclined(t *testing.T) {
	p := newProject(t, "3.11.4")
	t.Setenv("VULKAN_SDK", filepath.Join(p.root, "VulkanSDK", "1.2.198.0"))

	out, err := runCmd(t, "n\n", "vulkan", "--root", p.root)
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent), "err = %v", err)
	assert.Contains(t, out, "You don't have the correct Vulkan SDK version! (Engine requires 1.3.)")
	assert.Contains(t, out, "Vulkan SDK not installed correctly.")
}

func TestPremakeCommand(t *testing.T) {
	p := newProject(t, "3.11.4")

	out, err := runCmd(t, "", "premake", "--root", p.root)
	require.NoError(t, err)
	assert.Contains(t, out, "Premake located at")
}

func TestDoctorCommand(t *testing.T) {
	p := newProject(t, "3.11.4")

	out, err := runCmd(t, "", "doctor", "--root", p.root)
	require.NoError(t, err)
	assert.Contains(t, out, "Checking Nebula setup in "+p.root)
	assert.Contains(t, out, "All checks passed.")
}

func TestDoctorCommandFailure(t *testing.T) {
	p := newProject(t, "3.11.4")
	t.Setenv("VULKAN_SDK", "")

	out, err := runCmd(t, "", "doctor", "--root", p.root)
	require.Error(t, err)
	assert.Contains(t, out, "VULKAN_SDK is not set")
	assert.Contains(t, out, "Some checks failed.")
	_, statErr := os.Stat(filepath.Join(p.root, "Nebula", "Modules", "VulkanSDK"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExplicitConfigMustExist(t *testing.T) {
	p := newProject(t, "3.11.4")

	_, err := runCmd(t, "", "python", "--root", p.root, "--config", filepath.Join(p.root, "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.toml")
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	p := newProject(t, "3.11.4")
	writeFile(t, config.DefaultConfigPath(p.root), "[python]\nmin_version = \"3.12\"\n")

	out, err := runCmd(t, "", "python", "--root", p.root)
	var silent *SilentExitError
	require.True(t, errors.As(err, &silent), "err = %v", err)
	assert.Contains(t, out, "expected 3.12 or higher")
}

func TestMissingProjectRoot(t *testing.T) {
	stubInteractive(t, false)
	orig := getwd
	dir := t.TempDir()
	getwd = func() (string, error) { return dir, nil }
	t.Cleanup(func() { getwd = orig })

	_, err := runCmd(t, "", "python")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no Nebula project found")
}

func TestResolveProjectRootFromCwd(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "premake5.lua"), "")
	nested := filepath.Join(root, "scripts")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	orig := getwd
	getwd = func() (string, error) { return nested, nil }
	t.Cleanup(func() { getwd = orig })

	got, err := resolveProjectRoot("")
	require.NoError(t, err)
	assert.Equal(t, root, got)
}

func TestResolveProjectRootRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "premake5.lua")
	writeFile(t, file, "")

	_, err := resolveProjectRoot(file)
	require.Error(t, err)
}

func TestResolveConfigPath(t *testing.T) {
	path, explicit := resolveConfigPath(&rootFlags{config: "a.toml"}, config.Env{ConfigPath: "b.toml"}, "/work")
	assert.Equal(t, "a.toml", path)
	assert.True(t, explicit)

	path, explicit = resolveConfigPath(&rootFlags{}, config.Env{ConfigPath: "b.toml"}, "/work")
	assert.Equal(t, "b.toml", path)
	assert.True(t, explicit)

	path, explicit = resolveConfigPath(&rootFlags{}, config.Env{}, "/work")
	assert.Equal(t, filepath.Join("/work", "scripts", "setup.toml"), path)
	assert.False(t, explicit)
}
