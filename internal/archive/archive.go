// Package archive extracts release archives.
package archive

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

// Extract unpacks a .zip, .tar.gz, or .tgz archive into destDir.
// Entries that would land outside destDir are rejected.
func Extract(archivePath string, destDir string) error {
	lower := strings.ToLower(archivePath)
	switch {
	case strings.HasSuffix(lower, ".zip"):
		return extractZip(archivePath, destDir)
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		return extractTarGz(archivePath, destDir)
	default:
		return fmt.Errorf(messages.ArchiveUnsupportedFmt, archivePath)
	}
}

func extractZip(archivePath string, destDir string) error {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf(messages.ArchiveOpenFmt, archivePath, err)
	}
	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		target, err := safeJoin(destDir, file.Name)
		if err != nil {
			return err
		}
		if file.FileInfo().IsDir() {
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
			}
			continue
		}
		src, err := file.Open()
		if err != nil {
			return fmt.Errorf(messages.ArchiveReadFmt, archivePath, err)
		}
		err = writeEntry(target, src, file.Mode().Perm())
		_ = src.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTarGz(archivePath string, destDir string) error {
	f, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf(messages.ArchiveOpenFmt, archivePath, err)
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return fmt.Errorf(messages.ArchiveOpenFmt, archivePath, err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf(messages.ArchiveReadFmt, archivePath, err)
		}
		target, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
			}
		case tar.TypeReg:
			if err := writeEntry(target, tr, os.FileMode(hdr.Mode).Perm()); err != nil {
				return err
			}
		}
		// Links and special files are skipped; premake archives contain neither.
	}
}

func writeEntry(target string, src io.Reader, perm os.FileMode) error {
	if perm == 0 {
		perm = 0o644
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
	}
	if _, err := io.Copy(out, src); err != nil {
		_ = out.Close()
		return fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf(messages.ArchiveWriteEntryFmt, target, err)
	}
	return nil
}

// safeJoin joins name onto destDir and rejects paths that escape it.
func safeJoin(destDir string, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	rel, err := filepath.Rel(destDir, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) || filepath.IsAbs(name) {
		return "", fmt.Errorf(messages.ArchiveIllegalPathFmt, name)
	}
	return target, nil
}
