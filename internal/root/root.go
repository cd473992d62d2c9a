// Package root locates the Nebula project root.
package root

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

// Markers identify a Nebula project root, in priority order per directory.
var Markers = []string{"premake5.lua", ".gitmodules"}

// FindProjectRoot searches upwards from start for a directory containing one of Markers.
// It returns the root path, whether it was found, and any stat error other than not-exist.
func FindProjectRoot(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, err
	}
	for {
		for _, marker := range Markers {
			info, err := os.Stat(filepath.Join(dir, marker))
			if err == nil {
				if info.IsDir() {
					return "", false, fmt.Errorf(messages.RootMarkerIsDirFmt, filepath.Join(dir, marker))
				}
				return dir, true, nil
			}
			if !os.IsNotExist(err) {
				return "", false, err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}
