package files

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	htmlSuffix = ".html"
	// readConcurrency bounds the number of files read at once.
	readConcurrency = 8
)

// File is an HTML document found in a listed directory.
type File struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

// Service reads HTML documents from a filesystem.
type Service struct {
	fs     afero.Fs
	logger *zap.Logger
}

// NewService creates a file service on fs. A nil fs uses the OS filesystem.
func NewService(fs afero.Fs, logger *zap.Logger) *Service {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Service{fs: fs, logger: logger}
}

// List returns every .html file in dir with its content, in directory order.
// Files that cannot be read are left out.
func (s *Service) List(ctx context.Context, dir string) ([]File, error) {
	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), htmlSuffix) {
			continue
		}
		names = append(names, e.Name())
	}

	results := make([]*File, len(names))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(readConcurrency)

	for i, name := range names {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			data, err := afero.ReadFile(s.fs, filepath.Join(dir, name))
			if err != nil {
				s.logger.Debug("Skipping unreadable file", zap.String("file", name), zap.Error(err))
				return nil
			}
			results[i] = &File{Name: name, Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]File, 0, len(results))
	for _, f := range results {
		if f != nil {
			out = append(out, *f)
		}
	}
	return out, nil
}
