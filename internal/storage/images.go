package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// ImageStore owns the directory downloaded images are written to
type ImageStore struct {
	dir string
}

func NewImageStore(dir string) *ImageStore {
	return &ImageStore{dir: dir}
}

func (s *ImageStore) Dir() string {
	return s.dir
}

// Path returns the file an image with this basename and extension is written to
func (s *ImageStore) Path(basename, ext string) string {
	name := SanitizeFilename(basename)
	if ext != "" {
		name += "." + ext
	}
	return filepath.Join(s.dir, name)
}

// Save writes data to {dir}/{sanitized basename}.{ext}, creating the
// directory on first use and overwriting an existing file
func (s *ImageStore) Save(basename, ext string, data []byte) (string, error) {
	// MkdirAll succeeds when a concurrent call created the directory first
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create image directory %s: %w", s.dir, err)
	}

	path := s.Path(basename, ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write image %s: %w", path, err)
	}

	return path, nil
}
