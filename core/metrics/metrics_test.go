package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"

	"livecast/core/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	m.ViewersRegistered.Inc()
	m.EventsPublished.WithLabelValues("new-connection").Add(2)
	m.Subscribers.Set(3)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ViewersRegistered))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("new-connection")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.Subscribers))
}

func TestNew_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)
	assert.Panics(t, func() { metrics.New(reg) })
}

func TestRegisterRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.TemplatesUploaded.Inc()

	app := fiber.New()
	metrics.RegisterRoutes(app, reg)

	resp, err := app.Test(httptest.NewRequest("GET", "/metrics", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "livecast_templates_uploaded_total 1")
}
