package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	planningapp "github.com/estate/backend/internal/application/planning"
)

// Ensure LocalAttachmentStorage implements AttachmentStorage
var _ planningapp.AttachmentStorage = (*LocalAttachmentStorage)(nil)

// LocalAttachmentStorage keeps attachments on the local filesystem.
// Use this for development and single-node deployments without a bucket.
type LocalAttachmentStorage struct {
	dir string
}

// NewLocalAttachmentStorage creates a new LocalAttachmentStorage rooted at dir
func NewLocalAttachmentStorage(dir string) (*LocalAttachmentStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalAttachmentStorage{dir: dir}, nil
}

// Store writes the blob under dir and returns a file:// reference to it
func (s *LocalAttachmentStorage) Store(_ context.Context, name string, data []byte) (string, error) {
	if name == "" {
		return "", errors.New("attachment name is required")
	}

	path, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create attachment directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write attachment: %w", err)
	}

	return "file://" + path, nil
}

// Delete removes a previously stored blob by its reference
func (s *LocalAttachmentStorage) Delete(_ context.Context, ref string) error {
	path := strings.TrimPrefix(ref, "file://")
	if path == ref {
		return fmt.Errorf("reference %q is not a local attachment", ref)
	}

	rel, err := filepath.Rel(s.dir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return fmt.Errorf("reference %q lies outside the storage directory", ref)
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// resolve maps an attachment name to a path inside dir, rejecting traversal
func (s *LocalAttachmentStorage) resolve(name string) (string, error) {
	cleaned := filepath.Clean(name)
	if cleaned == "." || strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid attachment name %q", name)
	}
	return filepath.Join(s.dir, cleaned), nil
}
