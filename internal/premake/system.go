package premake

import (
	"context"
	"os"

	"github.com/conn-castle/nebula-setup/internal/archive"
	"github.com/conn-castle/nebula-setup/internal/download"
)

// System is the filesystem and network surface the Premake step uses.
type System interface {
	Stat(path string) (os.FileInfo, error)
	Download(ctx context.Context, url string, destPath string) error
	Extract(archivePath string, destDir string) error
	Remove(path string) error
}

// RealSystem is the production System.
type RealSystem struct {
	Options download.Options
}

// Stat calls os.Stat.
func (RealSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Download fetches url into destPath.
func (s RealSystem) Download(ctx context.Context, url string, destPath string) error {
	return download.File(ctx, url, destPath, s.Options)
}

// Extract unpacks a zip or tar.gz archive into destDir.
func (RealSystem) Extract(archivePath string, destDir string) error {
	return archive.Extract(archivePath, destDir)
}

// Remove deletes path.
func (RealSystem) Remove(path string) error {
	return os.Remove(path)
}
