package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	catalogapp "github.com/greenhub/backend/internal/application/catalog"
)

var _ catalogapp.ObjectStorage = (*LocalObjectStorage)(nil)

// LocalObjectStorage writes objects to a directory on disk. Meant for
// development; production deployments use S3ObjectStorage.
type LocalObjectStorage struct {
	dir     string
	baseURL string
}

// NewLocalObjectStorage creates a LocalObjectStorage rooted at dir
func NewLocalObjectStorage(dir, baseURL string) (*LocalObjectStorage, error) {
	if dir == "" {
		return nil, errors.New("storage directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if baseURL == "" {
		baseURL = "/uploads"
	}
	return &LocalObjectStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Upload writes data under the given key and returns its serving URL
func (s *LocalObjectStorage) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}
	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", err
	}
	return s.baseURL + "/" + key, nil
}

// Delete removes a stored object. Missing objects are not an error.
func (s *LocalObjectStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	path, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// PresignDownload returns the plain serving URL; local files need no signing
func (s *LocalObjectStorage) PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	if expiresIn <= 0 {
		expiresIn = 24 * time.Hour
	}
	return s.baseURL + "/" + key, time.Now().Add(expiresIn), nil
}

// resolve maps a key to a path inside the storage root, rejecting traversal
func (s *LocalObjectStorage) resolve(key string) (string, error) {
	path := filepath.Join(s.dir, filepath.FromSlash(key))
	root, err := filepath.Abs(s.dir)
	if err != nil {
		return "", err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if !strings.HasPrefix(abs, root+string(os.PathSeparator)) {
		return "", errors.New("storage key escapes the storage root")
	}
	return path, nil
}
