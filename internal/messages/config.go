package messages

// Config messages for setup.toml and environment loading.
const (
	// ConfigReadFileFmt formats config read errors.
	ConfigReadFileFmt           = "read config %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized keys: %v"
	ConfigParseEnvFmt           = "parse env: %w"
	ConfigExpandPathFmt         = "expand path %s: %w"
	ConfigFieldRequiredFmt      = "%s: %s is required"
	ConfigPlaceholderMissingFmt = "%s: %s must contain %s"
	ConfigInvalidMinVersionFmt  = "%s: python.min_version %q is not a version: %v"
	ConfigInvalidTimeoutFmt     = "%s: download.timeout %q is not a duration: %v"
	ConfigNegativeMaxBytesFmt   = "%s: download.max_bytes must not be negative"
)
