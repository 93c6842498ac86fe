package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "livecast"

// Metrics holds the Prometheus collectors of the service.
type Metrics struct {
	ViewersRegistered prometheus.Counter
	ViewersEvicted    prometheus.Counter
	Subscribers       prometheus.Gauge
	EventsPublished   *prometheus.CounterVec
	EventsDropped     *prometheus.CounterVec
	TemplatesUploaded prometheus.Counter
	TemplatesPushed   prometheus.Counter
}

// New creates and registers the collectors on the given registry.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ViewersRegistered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "viewers",
			Name:      "registered_total",
			Help:      "Total number of live page visits registered.",
		}),
		ViewersEvicted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "viewers",
			Name:      "evicted_total",
			Help:      "Total number of connection records evicted on disconnect.",
		}),
		Subscribers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "broadcast",
			Name:      "subscribers",
			Help:      "Number of currently subscribed push connections.",
		}),
		EventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "broadcast",
			Name:      "events_published_total",
			Help:      "Total number of events published by event name.",
		}, []string{"event"}),
		EventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "broadcast",
			Name:      "events_dropped_total",
			Help:      "Total number of per-subscriber deliveries dropped on a full queue.",
		}, []string{"event"}),
		TemplatesUploaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "templates",
			Name:      "uploaded_total",
			Help:      "Total number of template files uploaded.",
		}),
		TemplatesPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "templates",
			Name:      "pushed_total",
			Help:      "Total number of live template replacements.",
		}),
	}

	reg.MustRegister(
		m.ViewersRegistered,
		m.ViewersEvicted,
		m.Subscribers,
		m.EventsPublished,
		m.EventsDropped,
		m.TemplatesUploaded,
		m.TemplatesPushed,
	)
	return m
}

// NewNop returns collectors registered on a throwaway registry.
func NewNop() *Metrics {
	return New(prometheus.NewRegistry())
}

// RegisterRoutes exposes the gatherer on GET /metrics.
func RegisterRoutes(app fiber.Router, g prometheus.Gatherer) {
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{})))
}
