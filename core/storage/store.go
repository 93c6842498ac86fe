package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"
)

var (
	// ErrNotFound is returned when a template does not exist in storage.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidName is returned for names that cannot be stored safely.
	ErrInvalidName = errors.New("invalid template name")
	// ErrUnsupportedDriver is returned for an unknown storage driver.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")
)

// Object describes a stored template.
type Object struct {
	Name     string    `json:"name"`
	Size     int64     `json:"size"`
	Modified time.Time `json:"modified"`
}

// Store persists uploaded templates under flat names.
type Store interface {
	// Save writes the content under name, replacing any previous object.
	Save(ctx context.Context, name string, r io.Reader, size int64) error
	// Open returns the stored content. Missing names yield ErrNotFound.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// List returns the stored objects sorted by name.
	List(ctx context.Context) ([]Object, error)
}

// New builds the Store selected by cfg.Driver.
func New(ctx context.Context, cfg Config) (Store, error) {
	switch cfg.Driver {
	case "", DriverDisk:
		return NewDiskStore(nil, cfg.Directory)
	case DriverS3:
		client, err := NewClient(cfg)
		if err != nil {
			return nil, err
		}
		store := NewObjectStore(client, cfg.Bucket, cfg.Region)
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// CleanName reduces an uploaded filename to its final path element.
// Directory components (either separator) are dropped so a name can never
// escape the storage root.
func CleanName(name string) (string, error) {
	name = strings.ReplaceAll(name, "\\", "/")
	base := path.Base(path.Clean("/" + name))
	switch base {
	case "", ".", "..", "/":
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsRune(base, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return base, nil
}
