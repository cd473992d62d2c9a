// Package premake locates the vendored Premake binary and downloads a release when it is missing.
package premake

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"runtime"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/prompt"
)

const licenseFile = "LICENSE.txt"

// Checker validates and installs Premake under the project root.
type Checker struct {
	Sys    System
	Prompt prompt.Prompter
	Out    io.Writer
	Config config.PremakeConfig
	Root   string
	// GOOS selects the binary name and release asset; empty means runtime.GOOS.
	GOOS string
}

// NewChecker returns a Checker for the host OS.
func NewChecker(sys System, p prompt.Prompter, out io.Writer, cfg config.PremakeConfig, root string) *Checker {
	return &Checker{Sys: sys, Prompt: p, Out: out, Config: cfg, Root: root}
}

// BinaryName returns premake5.exe on Windows and premake5 elsewhere.
func BinaryName(goos string) string {
	if goos == "windows" {
		return "premake5.exe"
	}
	return "premake5"
}

// platformAsset maps goos to the release platform name and archive extension.
func platformAsset(goos string) (platform string, ext string, err error) {
	switch goos {
	case "windows":
		return "windows", "zip", nil
	case "darwin":
		return "macosx", "tar.gz", nil
	case "linux":
		return "linux", "tar.gz", nil
	default:
		return "", "", fmt.Errorf(messages.PremakeUnsupportedOSFmt, goos)
	}
}

// Dir returns the resolved Premake directory.
func (c *Checker) Dir() (string, error) {
	return config.ResolvePath(c.Root, c.Config.Dir)
}

// BinaryPath returns the expected location of the Premake binary.
func (c *Checker) BinaryPath() (string, error) {
	dir, err := c.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, BinaryName(c.goos())), nil
}

// ArchiveURL expands the release template for this OS.
func (c *Checker) ArchiveURL() (string, error) {
	platform, ext, err := platformAsset(c.goos())
	if err != nil {
		return "", err
	}
	return config.ExpandURL(c.Config.DownloadURL, map[string]string{
		"version":  c.Config.Version,
		"platform": platform,
		"ext":      ext,
	}), nil
}

// Available reports whether the binary exists. It never prompts.
func (c *Checker) Available() bool {
	if c.Sys == nil {
		return false
	}
	bin, err := c.BinaryPath()
	if err != nil {
		return false
	}
	_, err = c.Sys.Stat(bin)
	return err == nil
}

// Validate reports whether Premake is available, offering a download when it is not.
func (c *Checker) Validate(ctx context.Context) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	bin, err := c.BinaryPath()
	if err != nil {
		return false, err
	}
	if c.Available() {
		_, _ = fmt.Fprintf(c.Out, messages.PremakeFoundFmt, bin)
		return true, nil
	}
	_, _ = fmt.Fprintf(c.Out, messages.PremakeNotFoundFmt+"\n", bin)
	return c.Install(ctx)
}

// Install asks before downloading the release archive and license into the Premake dir.
// It returns false without error when the user declines.
func (c *Checker) Install(ctx context.Context) (bool, error) {
	if err := c.check(); err != nil {
		return false, err
	}
	accepted, err := c.Prompt.Confirm(fmt.Sprintf(messages.PremakeInstallPromptFmt, c.Config.Version))
	if err != nil {
		return false, err
	}
	if !accepted {
		return false, nil
	}

	dir, err := c.Dir()
	if err != nil {
		return false, err
	}
	url, err := c.ArchiveURL()
	if err != nil {
		return false, err
	}
	archivePath := filepath.Join(dir, path.Base(url))

	_, _ = fmt.Fprintf(c.Out, messages.PremakeDownloadingFmt, url, archivePath)
	if err := c.Sys.Download(ctx, url, archivePath); err != nil {
		return false, fmt.Errorf(messages.PremakeDownloadArchiveFmt, err)
	}
	_, _ = fmt.Fprintf(c.Out, messages.PremakeExtractingFmt, archivePath)
	if err := c.Sys.Extract(archivePath, dir); err != nil {
		return false, fmt.Errorf(messages.PremakeExtractArchiveFmt, err)
	}
	if err := c.Sys.Remove(archivePath); err != nil {
		return false, fmt.Errorf(messages.PremakeRemoveArchiveFmt, archivePath, err)
	}

	licensePath := filepath.Join(dir, licenseFile)
	_, _ = fmt.Fprintf(c.Out, messages.PremakeDownloadingFmt, c.Config.LicenseURL, licensePath)
	if err := c.Sys.Download(ctx, c.Config.LicenseURL, licensePath); err != nil {
		return false, fmt.Errorf(messages.PremakeDownloadLicenseFmt, err)
	}

	if !c.Available() {
		return false, fmt.Errorf(messages.PremakeMissingAfterExtract, BinaryName(c.goos()))
	}
	_, _ = fmt.Fprintf(c.Out, messages.PremakeInstalledFmt, c.Config.Version, dir)
	return true, nil
}

func (c *Checker) goos() string {
	if c.GOOS != "" {
		return c.GOOS
	}
	return runtime.GOOS
}

func (c *Checker) check() error {
	if c.Sys == nil {
		return fmt.Errorf(messages.PremakeSystemRequired)
	}
	if c.Out == nil {
		c.Out = io.Discard
	}
	return nil
}
