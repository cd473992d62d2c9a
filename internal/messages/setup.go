package messages

// Setup pipeline messages.
const (
	SetupSystemRequired      = "setup system is required"
	SetupPrerequisitesFailed = "setup prerequisites not met"
	SetupChdirFailedFmt      = "change to project root %s: %w"
	SetupUpdatingSubmodules  = "\nUpdating submodules..."
	SetupSubmodulesFailedFmt = "update submodules: %w"
	SetupRunningGenerator    = "\nRunning premake..."
	SetupGeneratorFailedFmt  = "run %s: %w"
	SetupCompleted           = "\nSetup completed!"
	SetupRequiresPremake     = "Nebula requires Premake to generate project files."
	SetupGeneratorSkippedFmt = "Project generation is only automated on %s; run premake manually for your toolchain."

	SetupStepSubmodules       = "Submodules"
	SetupStepGenerate         = "Generate"
	SetupSubmodulesOK         = "Submodules updated"
	SetupRuntimeOK            = "Python runtime accepted"
	SetupRuntimeFailed        = "Python runtime is missing or too old"
	SetupSDKOKFmt             = "Vulkan SDK located at %s"
	SetupDebugLibsOK          = "Debug libs found"
	SetupGenerateOKFmt        = "Generated project files with %s"
	SetupGenerateSkippedOSFmt = "Skipped on %s"
	SetupGenerateNoPremake    = "Skipped; Premake is not available"
)
