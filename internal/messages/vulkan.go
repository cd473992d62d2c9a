package messages

// Vulkan SDK validation and installer messages.
const (
	VulkanSystemRequired        = "vulkan system is required"
	VulkanNotInstalled          = "\nYou don't have the Vulkan SDK installed!"
	VulkanLocatedFmt            = "\nLocated Vulkan SDK at %s\n"
	VulkanWrongVersionFmt       = "You don't have the correct Vulkan SDK version! (Engine requires %s)\n"
	VulkanCorrectFmt            = "Correct Vulkan SDK located at %s\n"
	VulkanInstallPromptFmt      = "Would you like to install VulkanSDK %s?"
	VulkanDownloadingFmt        = "Downloading %s to %s\n"
	VulkanRunningInstaller      = "Running Vulkan SDK installer..."
	VulkanRerun                 = "Re-run this script after installation!"
	VulkanNotInstalledCorrectly = "Vulkan SDK not installed correctly."
	VulkanNoDebugLibs           = "\nNo Vulkan SDK debug libs found. Please install Vulkan SDK with debug libs"
	VulkanDebugDisabled         = "Debug configuration disabled"
	VulkanErrRestartRequired    = "vulkan sdk installer launched; re-run setup after installation"
	VulkanDownloadInstallerFmt  = "download vulkan sdk installer: %w"
	VulkanLaunchInstallerFmt    = "launch vulkan sdk installer %s: %w"

	VulkanStepSDK            = "VulkanSDK"
	VulkanStepDebugLibs      = "VulkanDebugLibs"
	VulkanStepRecheck        = "VulkanRecheck"
	VulkanSDKOKFmt           = "Vulkan SDK %s found at %s"
	VulkanSDKMissingFmt      = "%s is not set"
	VulkanSDKWrongVersionFmt = "%s points at %s, which is not a %s SDK"
	VulkanSDKRecommendFmt    = "Run `nbsetup vulkan` to download and install Vulkan SDK %s, then open a new terminal."
	VulkanDebugLibsOKFmt     = "Debug libs found: %s"
	VulkanDebugLibsMissing   = "Debug libs not found; debug configuration disabled"
	VulkanDebugLibsRecommend = "Re-run the Vulkan SDK installer and select the debuggable shader API libraries."
	VulkanRecheckOKFmt       = "%s is still set to %s"
	VulkanRecheckMissingFmt  = "%s is still not set in this process"
)
