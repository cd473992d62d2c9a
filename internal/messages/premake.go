package messages

// Premake validation and download messages.
const (
	PremakeSystemRequired      = "premake system is required"
	PremakeFoundFmt            = "Premake located at %s\n"
	PremakeNotFoundFmt         = "\nPremake not found at %s"
	PremakeInstallPromptFmt    = "Would you like to download Premake %s?"
	PremakeDownloadingFmt      = "Downloading %s to %s\n"
	PremakeExtractingFmt       = "Extracting %s\n"
	PremakeInstalledFmt        = "Premake %s has been downloaded to %s\n"
	PremakeUnsupportedOSFmt    = "no premake release archive for OS %q"
	PremakeDownloadArchiveFmt  = "download premake archive: %w"
	PremakeDownloadLicenseFmt  = "download premake license: %w"
	PremakeExtractArchiveFmt   = "extract premake archive: %w"
	PremakeRemoveArchiveFmt    = "remove premake archive %s: %w"
	PremakeMissingAfterExtract = "premake archive did not contain %s"

	PremakeStepName     = "Premake"
	PremakeStepRecheck  = "PremakeRecheck"
	PremakeOKFmt        = "Premake found at %s"
	PremakeMissingFmt   = "Premake not found at %s"
	PremakeRecommend    = "Run `nbsetup premake` to download Premake into vendor/premake/bin."
	PremakeRecheckOKFmt = "Premake still available at %s"
)
