package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage resolves input and report files on disk under a base directory.
type LocalStorage struct {
	baseDir string
}

// NewLocalStorage returns a handle rooted at baseDir, creating it if missing.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "."
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

// Open returns a read-only handle for the named file.
func (s *LocalStorage) Open(filename string) (io.ReadCloser, error) {
	file, err := os.Open(s.resolve(filename))
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	return file, nil
}

// Create truncates or creates the named file for writing, preparing parent
// directories as needed.
func (s *LocalStorage) Create(filename string) (io.WriteCloser, error) {
	path := s.resolve(filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("prepare output directory: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create file: %w", err)
	}
	return file, nil
}

// Path exposes the resolved path of a file.
func (s *LocalStorage) Path(filename string) string {
	return s.resolve(filename)
}

func (s *LocalStorage) resolve(filename string) string {
	if filepath.IsAbs(filename) {
		return filename
	}
	return filepath.Join(s.baseDir, filename)
}
