// Package storage keeps uploaded PDF files on the local filesystem,
// keyed by a generated filename recorded on the owning work.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type FileStore struct {
	dataDir string
}

// NewFileStore creates the data directory if it does not exist.
func NewFileStore(dataDir string) (*FileStore, error) {
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dataDir, err)
	}

	return &FileStore{dataDir: dataDir}, nil
}

func (fs *FileStore) DataDir() string {
	return fs.dataDir
}

// StorageName derives the on-disk filename for a work's attachment from the
// work id and the caller-supplied filename. The result is deterministic and
// always a bare basename, so caller input can never escape the data
// directory.
func (fs *FileStore) StorageName(workID uint, originalFilename string) string {
	return fmt.Sprintf("work_%d_%s", workID, sanitizeBasename(originalFilename))
}

// Save writes the contents of reader under the given name. The write goes
// through a temp file and an atomic rename so a crash mid-write cannot
// leave a partial file under the final name.
func (fs *FileStore) Save(name string, reader io.Reader) error {
	fullPath := filepath.Join(fs.dataDir, name)
	tmpPath := fullPath + ".tmp"

	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(f, reader); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write file data: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpPath, fullPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// Open returns a reader over a stored file. The caller must close it.
func (fs *FileStore) Open(name string) (*os.File, error) {
	return os.Open(filepath.Join(fs.dataDir, name))
}

// Exists reports whether a file with the given name is present on disk.
func (fs *FileStore) Exists(name string) bool {
	info, err := os.Stat(filepath.Join(fs.dataDir, name))
	return err == nil && !info.IsDir()
}

// Path returns the absolute location of a stored file.
func (fs *FileStore) Path(name string) string {
	return filepath.Join(fs.dataDir, name)
}

// sanitizeBasename strips any directory components from a caller-supplied
// filename and replaces characters outside [A-Za-z0-9._-]. Windows-style
// separators are treated as directory separators too.
func sanitizeBasename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "file"
	}
	return name
}
