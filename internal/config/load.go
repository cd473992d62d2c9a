package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

// ErrConfigValidation wraps validation failures, as opposed to read or TOML syntax errors.
var ErrConfigValidation = errors.New("config validation failed")

// Load reads setup.toml from path and overlays it on the defaults.
// A missing file is not an error; found reports whether the file existed.
func Load(path string) (cfg *Config, found bool, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			def := Default()
			return &def, false, nil
		}
		return nil, false, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	cfg, err = Parse(data, path)
	if err != nil {
		return nil, true, err
	}
	return cfg, true, nil
}

// Parse decodes TOML data, fills unset fields from the defaults, and validates the result.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidConfigFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnrecognizedKeysFmt, ErrConfigValidation, source, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return &cfg, nil
}

// decodeStrict re-decodes with unknown-field rejection to catch misspelled keys.
func decodeStrict(data []byte) error {
	var cfg Config
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&cfg)
}

// Validate ensures the config is usable.
func (c *Config) Validate(source string) error {
	if _, err := semver.NewVersion(c.Python.MinVersion); err != nil {
		return fmt.Errorf(messages.ConfigInvalidMinVersionFmt, source, c.Python.MinVersion, err)
	}
	required := []struct {
		key   string
		value string
	}{
		{"vulkan.env_var", c.Vulkan.EnvVar},
		{"vulkan.required_version", c.Vulkan.RequiredVersion},
		{"vulkan.default_version", c.Vulkan.DefaultVersion},
		{"vulkan.install_dir", c.Vulkan.InstallDir},
		{"vulkan.download_url", c.Vulkan.DownloadURL},
		{"vulkan.debug_lib", c.Vulkan.DebugLib},
		{"premake.version", c.Premake.Version},
		{"premake.dir", c.Premake.Dir},
		{"premake.download_url", c.Premake.DownloadURL},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf(messages.ConfigFieldRequiredFmt, source, field.key)
		}
	}
	if !strings.Contains(c.Vulkan.DownloadURL, PlaceholderVersion) {
		return fmt.Errorf(messages.ConfigPlaceholderMissingFmt, source, "vulkan.download_url", PlaceholderVersion)
	}
	if !strings.Contains(c.Premake.DownloadURL, PlaceholderPlatform) {
		return fmt.Errorf(messages.ConfigPlaceholderMissingFmt, source, "premake.download_url", PlaceholderPlatform)
	}
	if c.Download.Timeout != "" {
		if _, err := time.ParseDuration(c.Download.Timeout); err != nil {
			return fmt.Errorf(messages.ConfigInvalidTimeoutFmt, source, c.Download.Timeout, err)
		}
	}
	if c.Download.MaxBytes < 0 {
		return fmt.Errorf(messages.ConfigNegativeMaxBytesFmt, source)
	}
	return nil
}

// DownloadTimeout returns the parsed download timeout, or zero for none.
// Validate has already rejected malformed values.
func (c DownloadConfig) DownloadTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return d
}
