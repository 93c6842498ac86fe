package broadcast

import (
	"sync"

	"livecast/core/metrics"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Subscription is one subscriber's queue of pending events.
type Subscription struct {
	id     string
	events chan Event
}

// ID returns the subscriber id.
func (s *Subscription) ID() string {
	return s.id
}

// Events returns the queue. It is closed when the subscriber is removed.
func (s *Subscription) Events() <-chan Event {
	return s.events
}

// Hub fans events out to all current subscribers.
//
// Delivery is best-effort: each subscriber owns a bounded queue and an event
// is dropped for a subscriber whose queue is full. Late subscribers never see
// past events.
type Hub struct {
	mu        sync.RWMutex
	subs      map[string]*Subscription
	closed    bool
	queueSize int
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

// NewHub creates an empty hub.
func NewHub(cfg Config, m *metrics.Metrics, logger *zap.Logger) *Hub {
	return &Hub{
		subs:      make(map[string]*Subscription),
		queueSize: cfg.queueSize(),
		metrics:   m,
		logger:    logger,
	}
}

// Subscribe registers a new subscriber. The events returned by initial are
// queued before any event published after Subscribe returns.
// Subscribing to a closed hub returns a subscription whose queue is already closed.
func (h *Hub) Subscribe(initial func() []Event) *Subscription {
	sub := &Subscription{
		id:     uuid.NewString(),
		events: make(chan Event, h.queueSize),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		close(sub.events)
		return sub
	}

	if initial != nil {
		for _, ev := range initial() {
			h.deliver(sub, ev)
		}
	}
	h.subs[sub.id] = sub
	h.metrics.Subscribers.Inc()

	h.logger.Debug("Subscriber added", zap.String("subscriber", sub.id), zap.Int("subscribers", len(h.subs)))
	return sub
}

// Unsubscribe removes the subscriber and closes its queue. Unknown or
// already removed subscriptions are ignored.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subs[sub.id]; !ok {
		return
	}
	delete(h.subs, sub.id)
	close(sub.events)
	h.metrics.Subscribers.Dec()

	h.logger.Debug("Subscriber removed", zap.String("subscriber", sub.id), zap.Int("subscribers", len(h.subs)))
}

// Publish queues the event for every current subscriber and returns how many
// queues accepted it.
func (h *Hub) Publish(name string, data any) int {
	ev := Event{Name: name, Data: data}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for _, sub := range h.subs {
		if h.deliver(sub, ev) {
			delivered++
		}
	}
	h.metrics.EventsPublished.WithLabelValues(name).Inc()
	return delivered
}

// Len returns the number of subscribers.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Close removes every subscriber, ending their streams, and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for id, sub := range h.subs {
		delete(h.subs, id)
		close(sub.events)
		h.metrics.Subscribers.Dec()
	}
}

// deliver must be called with h.mu held.
func (h *Hub) deliver(sub *Subscription, ev Event) bool {
	select {
	case sub.events <- ev:
		return true
	default:
		h.metrics.EventsDropped.WithLabelValues(ev.Name).Inc()
		h.logger.Warn("Subscriber queue full, dropping event",
			zap.String("subscriber", sub.id),
			zap.String("event", ev.Name),
		)
		return false
	}
}
