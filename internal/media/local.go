package media

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalStore keeps media files below a root directory.
type LocalStore struct {
	rootDir string
}

func NewLocalStore(rootDir string) *LocalStore {
	return &LocalStore{
		rootDir: rootDir,
	}
}

// filePath maps key below the root directory. Keys that would leave it are rejected.
func (s *LocalStore) filePath(key string) (string, error) {
	relPath := filepath.FromSlash(key)
	if !filepath.IsLocal(relPath) {
		return "", fmt.Errorf("media key %q is outside the media directory", key)
	}
	return filepath.Join(s.rootDir, relPath), nil
}

func (s *LocalStore) Exists(_ context.Context, key string) (bool, error) {
	localFilePath, err := s.filePath(key)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(localFilePath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("os.Stat > %w", err)
}

// Put writes data to a temporary file first so a partial download never shows up under key.
func (s *LocalStore) Put(_ context.Context, key string, data []byte) error {
	localFilePath, err := s.filePath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(localFilePath), 0755); err != nil {
		return fmt.Errorf("os.MkdirAll > %w", err)
	}

	file, err := os.CreateTemp(filepath.Dir(localFilePath), ".media-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp > %w", err)
	}
	defer func() {
		_ = os.Remove(file.Name())
	}()

	if _, err := file.Write(data); err != nil {
		_ = file.Close()
		return fmt.Errorf("file.Write > %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("file.Close > %w", err)
	}
	if err := os.Rename(file.Name(), localFilePath); err != nil {
		return fmt.Errorf("os.Rename > %w", err)
	}
	return nil
}
