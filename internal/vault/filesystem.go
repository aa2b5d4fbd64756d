package vault

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"profilekit/internal/profile"
)

const (
	mimeSuffix      = ".mime"
	defaultMIMEType = "application/octet-stream"
)

// FileSystemVault stores media as plain files:
//
//	<root>/
//	  <id>        (raw bytes)
//	  <id>.mime   (media type)
type FileSystemVault struct {
	root string
}

// NewFileSystemVault creates a vault rooted at root, creating it if needed.
func NewFileSystemVault(root string) (*FileSystemVault, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create vault directory: %w", err)
	}
	return &FileSystemVault{root: root}, nil
}

func (v *FileSystemVault) path(id string) (string, error) {
	if id == "" || id == "." || id == ".." || strings.ContainsAny(id, `/\`) || strings.HasSuffix(id, mimeSuffix) {
		return "", fmt.Errorf("invalid media id: %q", id)
	}
	return filepath.Join(v.root, id), nil
}

// PutMedia stores media under id. The bytes and the media type are each
// written atomically; the bytes go first so a reader never sees a type
// without content.
func (v *FileSystemVault) PutMedia(id string, r io.Reader, size int64, mimeType string) error {
	dest, err := v.path(id)
	if err != nil {
		return err
	}
	if err := v.writeFile(dest, r, size); err != nil {
		return err
	}
	return v.writeFile(dest+mimeSuffix, strings.NewReader(mimeType), int64(len(mimeType)))
}

// GetMedia writes the media stored under id to w and returns its media type.
func (v *FileSystemVault) GetMedia(id string, w io.Writer) (string, error) {
	src, err := v.path(id)
	if err != nil {
		return "", err
	}

	f, err := os.Open(src)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", profile.ErrMediaNotFound, id)
		}
		return "", fmt.Errorf("failed to open media: %w", err)
	}
	defer f.Close()

	mimeType := defaultMIMEType
	if data, err := os.ReadFile(src + mimeSuffix); err == nil {
		mimeType = strings.TrimSpace(string(data))
	}

	if _, err := io.Copy(w, f); err != nil {
		return "", fmt.Errorf("failed to read media: %w", err)
	}
	return mimeType, nil
}

// ValidateSetup verifies that the vault root is an accessible directory.
func (v *FileSystemVault) ValidateSetup() error {
	info, err := os.Stat(v.root)
	if err != nil {
		return fmt.Errorf("vault root not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("vault root is not a directory: %s", v.root)
	}
	return nil
}

// writeFile writes r to destPath through a temp file and rename.
func (v *FileSystemVault) writeFile(destPath string, r io.Reader, expectedSize int64) error {
	tmpFile, err := os.CreateTemp(v.root, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	written, err := io.Copy(tmpFile, r)
	if err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write data: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if written != expectedSize {
		return fmt.Errorf("size mismatch: expected %d bytes, got %d", expectedSize, written)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	success = true
	return nil
}

var _ profile.MediaVault = (*FileSystemVault)(nil)
