package vulkan

import (
	"context"
	"os"

	"github.com/conn-castle/nebula-setup/internal/download"
	"github.com/conn-castle/nebula-setup/internal/proc"
)

// System is the OS surface the SDK checks touch.
type System interface {
	LookupEnv(key string) (string, bool)
	Stat(path string) (os.FileInfo, error)
	Download(ctx context.Context, url string, destPath string) error
	// Launch starts path detached and does not wait for it.
	Launch(path string) error
}

// RealSystem is the production System.
type RealSystem struct {
	Options download.Options
}

// LookupEnv reads the process environment.
func (RealSystem) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Stat calls os.Stat.
func (RealSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// Download fetches url into destPath.
func (s RealSystem) Download(ctx context.Context, url string, destPath string) error {
	return download.File(ctx, url, destPath, s.Options)
}

// Launch opens path with the OS default handler.
func (RealSystem) Launch(path string) error {
	return proc.Open(path)
}
