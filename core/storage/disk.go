package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"sort"

	"github.com/spf13/afero"
)

// DiskStore keeps templates in a directory of a local filesystem.
type DiskStore struct {
	fs  afero.Fs
	dir string
}

// NewDiskStore creates the directory if needed and confines all access to it.
// A nil base uses the OS filesystem.
func NewDiskStore(base afero.Fs, dir string) (*DiskStore, error) {
	if base == nil {
		base = afero.NewOsFs()
	}
	if dir == "" {
		dir = "templates"
	}
	if err := base.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create template directory %s: %w", dir, err)
	}
	return &DiskStore{fs: afero.NewBasePathFs(base, dir), dir: dir}, nil
}

// Dir returns the directory backing the store.
func (s *DiskStore) Dir() string {
	return s.dir
}

func (s *DiskStore) Save(_ context.Context, name string, r io.Reader, _ int64) error {
	clean, err := CleanName(name)
	if err != nil {
		return err
	}
	if err := afero.WriteReader(s.fs, clean, r); err != nil {
		return fmt.Errorf("failed to write template %s: %w", clean, err)
	}
	return nil
}

func (s *DiskStore) Open(_ context.Context, name string) (io.ReadCloser, error) {
	clean, err := CleanName(name)
	if err != nil {
		return nil, err
	}
	info, err := s.fs.Stat(clean)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
		}
		return nil, fmt.Errorf("failed to stat template %s: %w", clean, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, clean)
	}
	f, err := s.fs.Open(clean)
	if err != nil {
		return nil, fmt.Errorf("failed to open template %s: %w", clean, err)
	}
	return f, nil
}

func (s *DiskStore) List(_ context.Context) ([]Object, error) {
	entries, err := afero.ReadDir(s.fs, "/")
	if err != nil {
		return nil, fmt.Errorf("failed to read template directory: %w", err)
	}

	objects := make([]Object, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		objects = append(objects, Object{Name: e.Name(), Size: e.Size(), Modified: e.ModTime()})
	}
	sort.Slice(objects, func(i, j int) bool { return objects[i].Name < objects[j].Name })
	return objects, nil
}
