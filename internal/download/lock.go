package download

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

var (
	lockSleep    = time.Sleep
	userCacheDir = os.UserCacheDir
)

var (
	lockWaitTimeout = 30 * time.Minute
	lockPollEvery   = 250 * time.Millisecond
)

// lockPath returns the lock file for destPath. Locks live under the user cache dir,
// or the temp dir when there is none, keyed by the absolute destination path.
func lockPath(destPath string) (string, error) {
	abs, err := filepath.Abs(destPath)
	if err != nil {
		return "", err
	}
	base, err := userCacheDir()
	if err != nil || base == "" {
		base = os.TempDir()
	}
	dir := filepath.Join(base, "nbsetup", "locks")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf(messages.DownloadCreateLockDirFmt, err)
	}
	sum := sha256.Sum256([]byte(abs))
	return filepath.Join(dir, hex.EncodeToString(sum[:8])+".lock"), nil
}

// withFileLock acquires an exclusive lock on path, runs fn, and releases the lock.
// A concurrent holder keeps the lock for a whole transfer; waiting gives up after lockWaitTimeout.
func withFileLock(path string, fn func() error) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return fmt.Errorf(messages.DownloadOpenLockFmt, path, err)
	}
	defer func() { _ = file.Close() }()

	deadline := time.Now().Add(lockWaitTimeout)
	for {
		busy, err := tryLock(file)
		if err != nil {
			return fmt.Errorf(messages.DownloadLockFmt, path, err)
		}
		if !busy {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf(messages.DownloadLockTimeoutFmt, lockWaitTimeout)
		}
		lockSleep(lockPollEvery)
	}
	defer func() { _ = unlock(file) }()
	return fn()
}
