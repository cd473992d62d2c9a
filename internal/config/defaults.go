package config

import "runtime"

// Placeholders recognized in URL templates.
const (
	PlaceholderVersion  = "{version}"
	PlaceholderPlatform = "{platform}"
	PlaceholderExt      = "{ext}"
)

// DefaultMaxDownloadBytes caps a single download at 2 GiB.
const DefaultMaxDownloadBytes = int64(2 * 1024 * 1024 * 1024)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Python: PythonConfig{
			MinVersion: "3.3",
			Packages:   []string{"requests"},
		},
		Vulkan: VulkanConfig{
			EnvVar:          "VULKAN_SDK",
			RequiredVersion: "1.3.",
			DefaultVersion:  "1.3.204.1",
			Platform:        "windows",
			InstallDir:      "Nebula/Modules/VulkanSDK",
			DownloadURL:     "https://sdk.lunarg.com/sdk/download/{version}/{platform}/VulkanSDK-{version}-Installer.exe",
			DebugLib:        "Lib/shaderc_sharedd.lib",
		},
		Premake: PremakeConfig{
			Version:     "5.0.0-beta2",
			Dir:         "vendor/premake/bin",
			DownloadURL: "https://github.com/premake/premake-core/releases/download/v{version}/premake-{version}-{platform}.{ext}",
			LicenseURL:  "https://raw.githubusercontent.com/premake/premake-core/master/LICENSE.txt",
		},
		Project: ProjectConfig{
			GenerateScript: "scripts/Win-GenProjects - vs2022.bat",
			GenerateArgs:   []string{"nopause"},
			GeneratorOS:    "windows",
		},
		Download: DownloadConfig{
			MaxBytes: DefaultMaxDownloadBytes,
		},
	}
}

// PythonExecutable returns the configured interpreter or the platform default.
func (c PythonConfig) PythonExecutable() string {
	if c.Executable != "" {
		return c.Executable
	}
	return defaultPython(runtime.GOOS)
}

func defaultPython(goos string) string {
	if goos == "windows" {
		return "python"
	}
	return "python3"
}

// applyDefaults fills zero-valued fields from Default. A list explicitly set to
// [] stays empty.
func (c *Config) applyDefaults() {
	def := Default()
	fillString(&c.Python.MinVersion, def.Python.MinVersion)
	if c.Python.Packages == nil {
		c.Python.Packages = def.Python.Packages
	}

	fillString(&c.Vulkan.EnvVar, def.Vulkan.EnvVar)
	fillString(&c.Vulkan.RequiredVersion, def.Vulkan.RequiredVersion)
	fillString(&c.Vulkan.DefaultVersion, def.Vulkan.DefaultVersion)
	fillString(&c.Vulkan.Platform, def.Vulkan.Platform)
	fillString(&c.Vulkan.InstallDir, def.Vulkan.InstallDir)
	fillString(&c.Vulkan.DownloadURL, def.Vulkan.DownloadURL)
	fillString(&c.Vulkan.DebugLib, def.Vulkan.DebugLib)

	fillString(&c.Premake.Version, def.Premake.Version)
	fillString(&c.Premake.Dir, def.Premake.Dir)
	fillString(&c.Premake.DownloadURL, def.Premake.DownloadURL)
	fillString(&c.Premake.LicenseURL, def.Premake.LicenseURL)

	fillString(&c.Project.GenerateScript, def.Project.GenerateScript)
	if c.Project.GenerateArgs == nil {
		c.Project.GenerateArgs = def.Project.GenerateArgs
	}
	fillString(&c.Project.GeneratorOS, def.Project.GeneratorOS)

	if c.Download.MaxBytes == 0 {
		c.Download.MaxBytes = def.Download.MaxBytes
	}
}

func fillString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}
