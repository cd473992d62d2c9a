package config

// Config defines the setup.toml schema. Every field has a built-in default so the
// file is optional.
type Config struct {
	Python   PythonConfig   `toml:"python"`
	Vulkan   VulkanConfig   `toml:"vulkan"`
	Premake  PremakeConfig  `toml:"premake"`
	Project  ProjectConfig  `toml:"project"`
	Download DownloadConfig `toml:"download"`
}

// PythonConfig controls the Python runtime and package checks.
type PythonConfig struct {
	// Executable is the interpreter to run. Empty selects python on Windows and python3 elsewhere.
	Executable string   `toml:"executable"`
	MinVersion string   `toml:"min_version"`
	Packages   []string `toml:"packages"`
}

// VulkanConfig controls the Vulkan SDK check and installer download.
type VulkanConfig struct {
	EnvVar          string `toml:"env_var"`
	RequiredVersion string `toml:"required_version"`
	DefaultVersion  string `toml:"default_version"`
	Platform        string `toml:"platform"`
	InstallDir      string `toml:"install_dir"`
	DownloadURL     string `toml:"download_url"`
	DebugLib        string `toml:"debug_lib"`
}

// PremakeConfig controls where Premake lives and where it is downloaded from.
type PremakeConfig struct {
	Version     string `toml:"version"`
	Dir         string `toml:"dir"`
	DownloadURL string `toml:"download_url"`
	LicenseURL  string `toml:"license_url"`
}

// ProjectConfig controls project file generation.
type ProjectConfig struct {
	GenerateScript string   `toml:"generate_script"`
	GenerateArgs   []string `toml:"generate_args"`
	GeneratorOS    string   `toml:"generator_os"`
}

// DownloadConfig tunes HTTP downloads.
type DownloadConfig struct {
	// Timeout is a Go duration string. Empty means no timeout.
	Timeout  string `toml:"timeout"`
	MaxBytes int64  `toml:"max_bytes"`
}
