package scores

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileStore keeps the table in a YAML file holding a sequence of integers.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by path. The file is created on the first Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (f *FileStore) Path() string {
	return f.path
}

// Load reads the table. A missing file is an empty table. Entries are re-sorted and
// truncated so a hand-edited file still yields a valid table.
func (f *FileStore) Load() ([]int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []int{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read score file: %w", err)
	}

	var list []int
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrCorrupt, f.path, err)
	}
	return normalize(list), nil
}

// Save inserts score and rewrites the file. An unreadable or corrupt file is
// replaced by a table holding only the new score.
func (f *FileStore) Save(score int) error {
	list, err := f.Load()
	if err != nil {
		list = nil
	}
	list = Insert(list, score)

	data, err := yaml.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal scores: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create score directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".scores-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temporary score file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write score file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write score file: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace score file: %w", err)
	}
	return nil
}
