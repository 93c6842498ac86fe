package templates

import (
	"context"
	"fmt"
	"io"

	"livecast/core/metrics"
	"livecast/core/storage"

	"go.uber.org/zap"
)

// Service stores and serves uploaded templates.
type Service struct {
	store   storage.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new templates service.
func NewService(store storage.Store, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{store: store, metrics: m, logger: logger}
}

// Upload stores r under the cleaned form of filename and returns the stored name.
func (s *Service) Upload(ctx context.Context, filename string, r io.Reader, size int64) (string, error) {
	name, err := storage.CleanName(filename)
	if err != nil {
		return "", err
	}
	if err := s.store.Save(ctx, name, r, size); err != nil {
		return "", fmt.Errorf("failed to store template %s: %w", name, err)
	}
	s.metrics.TemplatesUploaded.Inc()
	return name, nil
}

// Open returns the content of a stored template.
func (s *Service) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	clean, err := storage.CleanName(name)
	if err != nil {
		return nil, err
	}
	return s.store.Open(ctx, clean)
}

// List returns the stored templates sorted by name.
func (s *Service) List(ctx context.Context) ([]storage.Object, error) {
	objects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list templates: %w", err)
	}
	return objects, nil
}
