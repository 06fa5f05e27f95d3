package blob

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("blob not found")

// Store keeps raw file content on the local filesystem, one file per blob,
// addressed by a generated identifier under the root directory. Blobs are
// immutable once written.
type Store struct {
	root string
}

func NewStore(root string) *Store {
	return &Store{root: root}
}

// Write persists data under a fresh identifier and returns it. The bytes are
// written to a temporary name and renamed into place, so a crash mid-write
// never leaves a partial blob behind.
func (s *Store) Write(data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create blob root: %w", err)
	}

	id := uuid.NewString()
	final := filepath.Join(s.root, id)

	tmp, err := os.CreateTemp(s.root, id+".tmp*")
	if err != nil {
		return "", fmt.Errorf("create blob: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}
	if err := os.Rename(tmp.Name(), final); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob: %w", err)
	}

	return id, nil
}

func (s *Store) Read(id string) ([]byte, error) {
	path, err := s.safePath(id)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	return data, nil
}

func (s *Store) Exists(id string) bool {
	path, err := s.safePath(id)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// Path returns the on-disk location a blob id maps to.
func (s *Store) Path(id string) string {
	return filepath.Join(s.root, id)
}

// safePath rejects identifiers that would escape the root directory.
func (s *Store) safePath(id string) (string, error) {
	if id == "" || id != filepath.Base(id) || strings.HasPrefix(id, ".") {
		return "", ErrNotFound
	}
	return filepath.Join(s.root, id), nil
}
