package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "nbsetup"
	// RootShort is the short description for the root command.
	RootShort = "Nebula development environment setup"
	RootLong  = "Check the Nebula build prerequisites and prepare the checkout for Premake.\n\nRunning nbsetup without a subcommand runs the full setup."

	RootVersionFlag       = "Print version and exit"
	RootFlagRoot          = "Nebula project root (defaults to the nearest directory containing premake5.lua or .gitmodules)"
	RootFlagConfig        = "Path to setup.toml (defaults to scripts/setup.toml under the project root)"
	RootFlagPlain         = "Use plain [Y/N] line prompts even in an interactive terminal"
	RootFlagQuiet         = "Suppress informational output and the step summary"
	RootMissingProjectFmt = "no Nebula project found from %s (looked for premake5.lua or .gitmodules); pass --root"
	RootConfigNotFoundFmt = "config file %s not found"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// SetupUse is the setup command name.
	SetupUse   = "setup"
	SetupShort = "Run the full setup pipeline"

	PythonUse   = "python"
	PythonShort = "Validate the Python runtime and required packages"

	VulkanUse   = "vulkan"
	VulkanShort = "Validate the Vulkan SDK and offer to install it"

	PremakeUse   = "premake"
	PremakeShort = "Validate the Premake binary and offer to download it"

	// PromptYesNoFmt formats yes/no prompts. The answer is reduced to its first character.
	PromptYesNoFmt         = "%s [Y/N]: "
	PromptRetryYesNo       = "Please enter y or n."
	PromptRequiresTerminal = "interactive prompts require a terminal"
	PromptAborted          = "prompt aborted"
	PromptAffirmative      = "Yes"
	PromptNegative         = "No"

	SummaryHeader = "\nSummary:"
)
