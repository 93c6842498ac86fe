package requestlog_test

import (
	"net/http/httptest"
	"testing"

	"livecast/core/middleware/rayid"
	"livecast/core/middleware/requestlog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(rayid.New())
	app.Use(requestlog.New(zap.New(core)))
	app.Get("/ok", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return fiber.ErrTeapot
	})

	_, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	_, err = app.Test(httptest.NewRequest("GET", "/fail", nil))
	require.NoError(t, err)

	handled := logs.FilterMessage("Request handled").All()
	require.Len(t, handled, 1)
	fields := handled[0].ContextMap()
	assert.Equal(t, "GET", fields["method"])
	assert.Equal(t, "/ok", fields["path"])
	assert.NotEmpty(t, fields["ray_id"])

	failed := logs.FilterMessage("Request error").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "/fail", failed[0].ContextMap()["path"])
}

func TestNew_FieldsSurviveContextReuse(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	app := fiber.New()
	app.Use(requestlog.New(zap.New(core)))
	app.All("/*", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})

	requests := []struct{ method, path string }{
		{"GET", "/first/path"},
		{"POST", "/zzzzzzzzzzzzzzzz"},
		{"DELETE", "/yyyyyyyyyyyyyyyyyyyyyyyy"},
	}
	for _, r := range requests {
		_, err := app.Test(httptest.NewRequest(r.method, r.path, nil))
		require.NoError(t, err)
	}

	entries := logs.FilterMessage("Request handled").All()
	require.Len(t, entries, len(requests))
	for i, r := range requests {
		fields := entries[i].ContextMap()
		assert.Equal(t, r.method, fields["method"])
		assert.Equal(t, r.path, fields["path"])
		assert.Equal(t, "0.0.0.0", fields["ip"])
	}
}
