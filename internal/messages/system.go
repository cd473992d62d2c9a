package messages

// System messages for downloads, archives, and external processes.
const (
	DownloadNetworkDisabled     = "network access disabled"
	DownloadNetworkDisabledFmt  = "download %s: network access disabled via %s: %w"
	DownloadCreateDirFmt        = "create download dir: %w"
	DownloadCreateTempFileFmt   = "create temp file: %w"
	DownloadSyncTempFileFmt     = "sync temp file: %w"
	DownloadCloseTempFileFmt    = "close temp file: %w"
	DownloadMoveFileFmt         = "move download into place: %w"
	DownloadCreateRequestFmt    = "create request for %s: %w"
	DownloadFailedFmt           = "download %s: %w"
	Download404Fmt              = "download %s: not found (404)"
	DownloadUnexpectedStatusFmt = "download %s: unexpected status %s"
	DownloadTooLargeFmt         = "download %s: response exceeded %d bytes"
	DownloadCreateLockDirFmt    = "create lock dir: %w"
	DownloadOpenLockFmt         = "open lock %s: %w"
	DownloadLockFmt             = "lock %s: %w"
	DownloadLockTimeoutFmt      = "timed out after %s waiting for download lock"
	DownloadProgressFmt         = "\r%s %s / %s"
	DownloadProgressUnknownFmt  = "\r%s downloaded"

	ArchiveUnsupportedFmt = "unsupported archive format %s"
	ArchiveOpenFmt        = "open archive %s: %w"
	ArchiveReadFmt        = "read archive %s: %w"
	ArchiveIllegalPathFmt = "archive entry %q escapes destination"
	ArchiveWriteEntryFmt  = "write %s: %w"

	ProcOpenUnsupportedFmt = "opening files is not supported on %s"
	ProcStartFmt           = "start %s: %w"

	RootMarkerIsDirFmt = "%s exists but is a directory"
)
