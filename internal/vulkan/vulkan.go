// Package vulkan checks the Vulkan SDK installation and offers to download its installer.
package vulkan

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/prompt"
)

// ErrRestartRequired is returned after the installer has been launched.
// Nothing after the SDK check should run in the same process.
var ErrRestartRequired = errors.New(messages.VulkanErrRestartRequired)

// State tracks the SDK check within one run.
type State int

// States. No transition leads back to PresentCorrectVersion.
const (
	Unchecked State = iota
	PresentCorrectVersion
	AbsentOrWrongVersion
	Installing
	ProcessTerminated
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Unchecked:
		return "unchecked"
	case PresentCorrectVersion:
		return "present"
	case AbsentOrWrongVersion:
		return "absent"
	case Installing:
		return "installing"
	case ProcessTerminated:
		return "terminated"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Checker validates VULKAN_SDK against the configured version.
type Checker struct {
	Sys    System
	Prompt prompt.Prompter
	Out    io.Writer
	Config config.VulkanConfig
	// Root anchors a relative install dir.
	Root string

	state State
}

// NewChecker returns a Checker in the Unchecked state.
func NewChecker(sys System, p prompt.Prompter, out io.Writer, cfg config.VulkanConfig, root string) *Checker {
	return &Checker{Sys: sys, Prompt: p, Out: out, Config: cfg, Root: root}
}

// State reports the current state.
func (c *Checker) State() State {
	return c.state
}

// SDKRoot returns the SDK env var value and whether it is set to a non-empty value.
func (c *Checker) SDKRoot() (string, bool) {
	if c.Sys == nil {
		return "", false
	}
	value, ok := c.Sys.LookupEnv(c.Config.EnvVar)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// HasRequiredVersion reports whether sdkRoot contains the required version substring.
func (c *Checker) HasRequiredVersion(sdkRoot string) bool {
	return strings.Contains(sdkRoot, c.Config.RequiredVersion)
}

// CheckSDK reports whether the SDK is present at the required version. On a miss
// it runs InstallSDK, which returns ErrRestartRequired when the installer starts.
func (c *Checker) CheckSDK(ctx context.Context) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	sdkRoot, ok := c.SDKRoot()
	if !ok {
		_, _ = fmt.Fprintln(c.Out, messages.VulkanNotInstalled)
		c.state = AbsentOrWrongVersion
		return false, c.InstallSDK(ctx)
	}
	_, _ = fmt.Fprintf(c.Out, messages.VulkanLocatedFmt, sdkRoot)

	if !c.HasRequiredVersion(sdkRoot) {
		_, _ = fmt.Fprintf(c.Out, messages.VulkanWrongVersionFmt, c.Config.RequiredVersion)
		c.state = AbsentOrWrongVersion
		return false, c.InstallSDK(ctx)
	}

	_, _ = fmt.Fprintf(c.Out, messages.VulkanCorrectFmt, sdkRoot)
	c.state = PresentCorrectVersion
	return true, nil
}

// CheckDebugLibs reports whether the debug library probe exists under the SDK root.
// It does not depend on the version check, but an unset SDK root never matches.
func (c *Checker) CheckDebugLibs() bool {
	path, ok := c.DebugLibPath()
	if !ok {
		return false
	}
	_, err := c.Sys.Stat(path)
	return err == nil
}

// DebugLibPath returns the debug library probe path. It reports false when the
// SDK env var is unset, since the probe has no root to live under.
func (c *Checker) DebugLibPath() (string, bool) {
	sdkRoot, ok := c.SDKRoot()
	if !ok {
		return "", false
	}
	return filepath.Join(sdkRoot, filepath.FromSlash(c.Config.DebugLib)), true
}

// InstallerURL expands the download template for the default version.
func (c *Checker) InstallerURL() string {
	return config.ExpandURL(c.Config.DownloadURL, map[string]string{
		"version":  c.Config.DefaultVersion,
		"platform": c.Config.Platform,
	})
}

// InstallerPath is where the installer is downloaded: the URL's file name under the install dir.
func (c *Checker) InstallerPath() (string, error) {
	dir, err := config.ResolvePath(c.Root, c.Config.InstallDir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, path.Base(c.InstallerURL())), nil
}

// InstallSDK asks before downloading and launching the installer. A declined
// prompt returns nil. A launched installer returns ErrRestartRequired.
func (c *Checker) InstallSDK(ctx context.Context) error {
	if err := c.check(); err != nil {
		return err
	}
	accepted, err := c.Prompt.Confirm(fmt.Sprintf(messages.VulkanInstallPromptFmt, c.Config.DefaultVersion))
	if err != nil {
		return err
	}
	if !accepted {
		return nil
	}

	c.state = Installing
	url := c.InstallerURL()
	dest, err := c.InstallerPath()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(c.Out, messages.VulkanDownloadingFmt, url, dest)
	if err := c.Sys.Download(ctx, url, dest); err != nil {
		return fmt.Errorf(messages.VulkanDownloadInstallerFmt, err)
	}

	_, _ = fmt.Fprintln(c.Out, messages.VulkanRunningInstaller)
	if err := c.Sys.Launch(dest); err != nil {
		return fmt.Errorf(messages.VulkanLaunchInstallerFmt, dest, err)
	}
	_, _ = fmt.Fprintln(c.Out, messages.VulkanRerun)
	c.state = ProcessTerminated
	return ErrRestartRequired
}

// Validate runs CheckSDK and, when it passes, CheckDebugLibs, printing the
// standalone outcome messages.
func (c *Checker) Validate(ctx context.Context) (bool, error) {
	ok, err := c.CheckSDK(ctx)
	if err != nil {
		return false, err
	}
	if !ok {
		_, _ = fmt.Fprintln(c.Out, messages.VulkanNotInstalledCorrectly)
		return false, nil
	}
	if !c.CheckDebugLibs() {
		_, _ = fmt.Fprintln(c.Out, messages.VulkanNoDebugLibs)
		_, _ = fmt.Fprintln(c.Out, messages.VulkanDebugDisabled)
	}
	return true, nil
}

func (c *Checker) check() error {
	if c.Sys == nil {
		return fmt.Errorf(messages.VulkanSystemRequired)
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	return nil
}
