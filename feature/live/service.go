package live

import (
	"context"
	"errors"
	"sync"

	"livecast/core/broadcast"
	"livecast/core/geo"
	"livecast/core/metrics"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"
)

// Push channel event names.
const (
	EventNewConnection      = "new-connection"
	EventAllConnections     = "all-connections"
	EventUpdateLiveTemplate = "update-live-template"
	EventCloseConnection    = "close-connection"
)

// DefaultHistoryLimit is used when no limit is requested.
const DefaultHistoryLimit = 50

var (
	// ErrEmptyContent is returned when a pushed template has no content.
	ErrEmptyContent = errors.New("no content provided")
	// ErrHistoryDisabled is returned when no database is configured.
	ErrHistoryDisabled = errors.New("visit history is disabled")
)

// Dependencies wires the live service.
type Dependencies struct {
	Hub      *broadcast.Hub
	Resolver geo.Resolver
	// History is optional; nil disables visit recording.
	History *HistoryRepository
	Clock   clockwork.Clock
	Metrics *metrics.Metrics
	Logger  *zap.Logger
	// EvictOnDisconnect removes a claimed record when its stream ends.
	EvictOnDisconnect bool
}

// Service owns the connection registry and the live template.
type Service struct {
	registry *Registry
	template *TemplateStore
	hub      *broadcast.Hub
	resolver geo.Resolver
	history  *HistoryRepository
	clock    clockwork.Clock
	metrics  *metrics.Metrics
	logger   *zap.Logger
	evict    bool

	// pushMu keeps publish order equal to write order.
	pushMu sync.Mutex
}

// NewService creates a live service with an empty registry and the default template.
func NewService(deps Dependencies) *Service {
	clock := deps.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Service{
		registry: NewRegistry(clock),
		template: NewTemplateStore(),
		hub:      deps.Hub,
		resolver: deps.Resolver,
		history:  deps.History,
		clock:    clock,
		metrics:  deps.Metrics,
		logger:   deps.Logger,
		evict:    deps.EvictOnDisconnect,
	}
}

// RegisterViewer records a visit from ip and announces it to subscribers.
// A failing history write is logged and does not fail the visit.
func (s *Service) RegisterViewer(ctx context.Context, ip string) ConnectionRecord {
	if ip == "" {
		ip = "0.0.0.0"
	}

	rec := s.registry.Register(ip, s.resolver.Lookup(ip))
	s.metrics.ViewersRegistered.Inc()
	s.hub.Publish(EventNewConnection, rec)

	if s.history != nil {
		if err := s.history.Record(ctx, rec, s.clock.Now()); err != nil {
			s.logger.Warn("Failed to record visit", zap.Int64("connection_id", rec.ID), zap.Error(err))
		}
	}
	return rec
}

// Connections returns the registry snapshot in insertion order.
func (s *Service) Connections() []ConnectionRecord {
	return s.registry.List()
}

// Connection returns the registered record with the given id.
func (s *Service) Connection(id int64) (ConnectionRecord, bool) {
	return s.registry.Get(id)
}

// Template returns the current live template.
func (s *Service) Template() string {
	return s.template.Get()
}

// SendTemplate replaces the live template and publishes it.
func (s *Service) SendTemplate(content string) error {
	if content == "" {
		return ErrEmptyContent
	}

	s.pushMu.Lock()
	defer s.pushMu.Unlock()

	s.template.Set(content)
	n := s.hub.Publish(EventUpdateLiveTemplate, content)
	s.metrics.TemplatesPushed.Inc()

	s.logger.Info("Live template updated", zap.Int("bytes", len(content)), zap.Int("delivered", n))
	return nil
}

// Subscribe opens a push subscription that starts with the all-connections snapshot.
func (s *Service) Subscribe() *broadcast.Subscription {
	return s.hub.Subscribe(func() []broadcast.Event {
		return []broadcast.Event{{Name: EventAllConnections, Data: s.registry.List()}}
	})
}

// Disconnect ends a subscription. When viewer names a record claimed by the
// stream and eviction is enabled, the record is removed and close-connection
// is published.
func (s *Service) Disconnect(sub *broadcast.Subscription, viewer int64) {
	s.hub.Unsubscribe(sub)

	if !s.evict || viewer == 0 {
		return
	}
	if s.registry.Remove(viewer) {
		s.metrics.ViewersEvicted.Inc()
		s.hub.Publish(EventCloseConnection, viewer)
	}
}

// History returns up to limit recent visits, newest first.
func (s *Service) History(ctx context.Context, limit int) ([]Visit, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.history.Recent(ctx, limit)
}
