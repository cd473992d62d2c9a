package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

// DefaultConfigPath returns scripts/setup.toml under root.
func DefaultConfigPath(root string) string {
	return filepath.Join(root, "scripts", "setup.toml")
}

// ResolvePath expands a leading ~ and anchors relative paths at root.
func ResolvePath(root string, p string) (string, error) {
	expanded, err := homedir.Expand(p)
	if err != nil {
		return "", fmt.Errorf(messages.ConfigExpandPathFmt, p, err)
	}
	if filepath.IsAbs(expanded) {
		return filepath.Clean(expanded), nil
	}
	return filepath.Join(root, filepath.FromSlash(expanded)), nil
}

// ExpandURL substitutes {placeholder} tokens in a URL template.
// vars maps placeholder names (without braces) to values.
func ExpandURL(template string, vars map[string]string) string {
	pairs := make([]string, 0, len(vars)*2)
	for name, value := range vars {
		pairs = append(pairs, "{"+strings.Trim(name, "{}")+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
