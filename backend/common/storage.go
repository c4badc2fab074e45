package common

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"
)

// EnsureUploadDirs creates the upload and avatar directories if missing.
func EnsureUploadDirs() error {
	for _, dir := range []string{UploadPath, AvatarPath} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// StoredFileName builds the on-disk name for an uploaded file:
// "<millis>-<original>", matching the paths already referenced by
// existing event attachments.
func StoredFileName(original string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(original))
}

// AvatarFileName builds the on-disk name for an uploaded avatar,
// keeping only the original extension.
func AvatarFileName(original string) string {
	return fmt.Sprintf("avatar-%d%s", time.Now().UnixMilli(), filepath.Ext(original))
}

// SaveUploadedFile writes a multipart file under dir with the given stored
// name and returns the full disk path.
func SaveUploadedFile(fileHeader *multipart.FileHeader, dir string, storedName string) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file %s: %w", fileHeader.Filename, err)
	}
	defer src.Close()

	diskPath := filepath.Join(dir, storedName)
	dst, err := os.Create(diskPath)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", diskPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write file %s: %w", diskPath, err)
	}
	return diskPath, nil
}

// DeleteLocalFile removes a stored file from disk. A missing file is not an
// error: attachment references may outlive their File records.
func DeleteLocalFile(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
