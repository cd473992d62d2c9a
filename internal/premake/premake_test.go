package premake

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/nebula-setup/internal/config"
)

type fakeSystem struct {
	files       map[string]bool
	downloadErr error
	extractErr  error
	// extracts lists files Extract creates, relative to destDir.
	extracts  []string
	downloads []string
	removed   []string
}

func (f *fakeSystem) Stat(path string) (os.FileInfo, error) {
	if f.files[path] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (f *fakeSystem) Download(_ context.Context, url string, destPath string) error {
	f.downloads = append(f.downloads, url)
	if f.downloadErr != nil {
		return f.downloadErr
	}
	f.mark(destPath)
	return nil
}

func (f *fakeSystem) Extract(_ string, destDir string) error {
	if f.extractErr != nil {
		return f.extractErr
	}
	for _, name := range f.extracts {
		f.mark(filepath.Join(destDir, name))
	}
	return nil
}

func (f *fakeSystem) Remove(path string) error {
	f.removed = append(f.removed, path)
	delete(f.files, path)
	return nil
}

func (f *fakeSystem) mark(path string) {
	if f.files == nil {
		f.files = map[string]bool{}
	}
	f.files[path] = true
}

type fakePrompter struct {
	answer    bool
	questions []string
}

func (p *fakePrompter) Confirm(question string) (bool, error) {
	p.questions = append(p.questions, question)
	return p.answer, nil
}

func newTestChecker(sys *fakeSystem, p *fakePrompter, goos string) (*Checker, *bytes.Buffer) {
	var out bytes.Buffer
	c := NewChecker(sys, p, &out, config.Default().Premake, "/work")
	c.GOOS = goos
	return c, &out
}

func TestBinaryName(t *testing.T) {
	assert.Equal(t, "premake5.exe", BinaryName("windows"))
	assert.Equal(t, "premake5", BinaryName("linux"))
	assert.Equal(t, "premake5", BinaryName("darwin"))
}

func TestArchiveURLPerPlatform(t *testing.T) {
	tests := map[string]string{
		"windows": "https://github.com/premake/premake-core/releases/download/v5.0.0-beta2/premake-5.0.0-beta2-windows.zip",
		"darwin":  "https://github.com/premake/premake-core/releases/download/v5.0.0-beta2/premake-5.0.0-beta2-macosx.tar.gz",
		"linux":   "https://github.com/premake/premake-core/releases/download/v5.0.0-beta2/premake-5.0.0-beta2-linux.tar.gz",
	}
	for goos, want := range tests {
		c, _ := newTestChecker(&fakeSystem{}, &fakePrompter{}, goos)
		got, err := c.ArchiveURL()
		require.NoError(t, err, goos)
		assert.Equal(t, want, got)
	}

	c, _ := newTestChecker(&fakeSystem{}, &fakePrompter{}, "plan9")
	_, err := c.ArchiveURL()
	require.Error(t, err)
}

func TestValidateFound(t *testing.T) {
	bin := filepath.Join("/work", "vendor", "premake", "bin", "premake5")
	sys := &fakeSystem{files: map[string]bool{bin: true}}
	p := &fakePrompter{}
	c, out := newTestChecker(sys, p, "linux")

	ok, err := c.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, out.String(), "Premake located at "+bin)
	assert.Empty(t, p.questions)
}

func TestValidateDeclined(t *testing.T) {
	sys := &fakeSystem{}
	p := &fakePrompter{answer: false}
	c, out := newTestChecker(sys, p, "windows")

	ok, err := c.Validate(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, out.String(), "Premake not found at")
	assert.Equal(t, []string{"Would you like to download Premake 5.0.0-beta2?"}, p.questions)
	assert.Empty(t, sys.downloads)
}

func TestValidateInstalls(t *testing.T) {
	sys := &fakeSystem{extracts: []string{"premake5"}}
	c, out := newTestChecker(sys, &fakePrompter{answer: true}, "linux")

	ok, err := c.Validate(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	dir := filepath.Join("/work", "vendor", "premake", "bin")
	archivePath := filepath.Join(dir, "premake-5.0.0-beta2-linux.tar.gz")
	assert.Equal(t, []string{
		"https://github.com/premake/premake-core/releases/download/v5.0.0-beta2/premake-5.0.0-beta2-linux.tar.gz",
		config.Default().Premake.LicenseURL,
	}, sys.downloads)
	assert.Equal(t, []string{archivePath}, sys.removed)
	assert.True(t, sys.files[filepath.Join(dir, "LICENSE.txt")])
	assert.Contains(t, out.String(), "Premake 5.0.0-beta2 has been downloaded to "+dir)
}

func TestInstallArchiveWithoutBinary(t *testing.T) {
	sys := &fakeSystem{extracts: []string{"README.txt"}}
	c, _ := newTestChecker(sys, &fakePrompter{answer: true}, "windows")

	ok, err := c.Install(context.Background())
	require.Error(t, err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "premake5.exe")
}

func TestInstallDownloadError(t *testing.T) {
	sys := &fakeSystem{downloadErr: errors.New("offline")}
	c, _ := newTestChecker(sys, &fakePrompter{answer: true}, "linux")

	_, err := c.Install(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "offline")
	assert.Empty(t, sys.removed)
}

func TestInstallExtractError(t *testing.T) {
	sys := &fakeSystem{extractErr: errors.New("corrupt")}
	c, _ := newTestChecker(sys, &fakePrompter{answer: true}, "linux")

	_, err := c.Install(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestAvailableWithoutSystem(t *testing.T) {
	assert.False(t, (&Checker{}).Available())
}
