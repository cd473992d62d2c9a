// Package download streams HTTP resources to disk.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/messages"
)

// ErrNetworkDisabled is returned when downloads are turned off via NB_NO_NETWORK.
var ErrNetworkDisabled = errors.New(messages.DownloadNetworkDisabled)

var (
	osCreateTemp = os.CreateTemp
	osRename     = os.Rename
)

// Options control a single download.
type Options struct {
	// Client defaults to a client with no timeout.
	Client *http.Client
	// MaxBytes caps the body size; zero uses config.DefaultMaxDownloadBytes.
	MaxBytes int64
	// Progress receives a redrawn progress bar when non-nil.
	Progress io.Writer
	// NoNetwork refuses the download without touching the network.
	NoNetwork bool
}

// File downloads url to destPath. The body is streamed into a temp file in the
// destination directory and renamed into place, so destPath is never partially written.
// Concurrent downloads of the same destPath are serialized by a lock file in the user cache dir.
func File(ctx context.Context, url string, destPath string, opts Options) error {
	if opts.NoNetwork {
		return fmt.Errorf(messages.DownloadNetworkDisabledFmt, url, config.EnvNoNetwork, ErrNetworkDisabled)
	}
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf(messages.DownloadCreateDirFmt, err)
	}
	lock, err := lockPath(destPath)
	if err != nil {
		return err
	}
	return withFileLock(lock, func() error {
		return downloadLocked(ctx, url, destPath, opts)
	})
}

func downloadLocked(ctx context.Context, url string, destPath string, opts Options) error {
	tmp, err := osCreateTemp(filepath.Dir(destPath), filepath.Base(destPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf(messages.DownloadCreateTempFileFmt, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if err := fetch(ctx, url, tmp, opts); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf(messages.DownloadSyncTempFileFmt, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf(messages.DownloadCloseTempFileFmt, err)
	}
	if err := osRename(tmpName, destPath); err != nil {
		return fmt.Errorf(messages.DownloadMoveFileFmt, err)
	}
	committed = true
	return nil
}

// fetch performs one GET and copies the body into dest.
func fetch(ctx context.Context, url string, dest io.Writer, opts Options) error {
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = config.DefaultMaxDownloadBytes
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf(messages.DownloadCreateRequestFmt, url, err)
	}
	req.Header.Set("User-Agent", "nbsetup")
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf(messages.DownloadFailedFmt, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf(messages.Download404Fmt, url)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf(messages.DownloadUnexpectedStatusFmt, url, resp.Status)
	}

	w := dest
	var bar *progressWriter
	if opts.Progress != nil {
		bar = newProgressWriter(opts.Progress, resp.ContentLength)
		w = io.MultiWriter(dest, bar)
	}
	n, err := io.Copy(w, io.LimitReader(resp.Body, maxBytes+1))
	if bar != nil {
		bar.finish()
	}
	if err != nil {
		return fmt.Errorf(messages.DownloadFailedFmt, url, err)
	}
	if n > maxBytes {
		return fmt.Errorf(messages.DownloadTooLargeFmt, url, maxBytes)
	}
	return nil
}
