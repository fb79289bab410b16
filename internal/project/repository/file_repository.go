// Package repository provides file-backed storage for project documents and
// presets. Documents are single local JSON files chosen by the user; there is
// no database or network target.
package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/allisson/hdrivault/internal/errors"
)

// FileRepository reads and writes document files on the local filesystem.
type FileRepository struct{}

// NewFileRepository creates a new FileRepository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Read returns the raw bytes of the document at path.
func (r *FileRepository) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", errors.ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// Write stores data at path atomically: the bytes land in a temporary file in
// the target directory first and are renamed into place, so a failed save
// never leaves a truncated document behind.
func (r *FileRepository) Write(_ context.Context, path string, data []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to move document into place: %w", err)
	}
	return nil
}
