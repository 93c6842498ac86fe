package live_test

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"livecast/core/broadcast"
	"livecast/core/database"
	"livecast/core/geo"
	"livecast/core/metrics"
	"livecast/core/server"
	"livecast/feature/live"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type liveFixture struct {
	app     *fiber.App
	hub     *broadcast.Hub
	service *live.Service
}

func setupLiveApp(t *testing.T, history *live.HistoryRepository) *liveFixture {
	t.Helper()
	return mountLiveFeature(t, server.New(server.Config{BodyLimitMB: 1}, zap.NewNop()), history)
}

// mountLiveFeature loads the live feature on app.
func mountLiveFeature(t *testing.T, app *fiber.App, history *live.HistoryRepository) *liveFixture {
	t.Helper()
	logger := zap.NewNop()
	m := metrics.NewNop()

	cfg := broadcast.Config{QueueSize: 32, WriteTimeoutSeconds: 2, KeepAliveSeconds: 30, EvictOnDisconnect: true}
	hub := broadcast.NewHub(cfg, m, logger)

	feature := live.NewFeature(live.Dependencies{
		Hub:      hub,
		Resolver: geo.NewRandomResolver(rand.NewSource(1)),
		History:  history,
		Metrics:  m,
		Logger:   logger,
	}, cfg)

	require.NoError(t, feature.Load(app))

	return &liveFixture{app: app, hub: hub, service: feature.Service()}
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(body)
}

func sendTemplate(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/live/send-template", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleLivePage(t *testing.T) {
	fx := setupLiveApp(t, nil)

	t.Run("Default Template", func(t *testing.T) {
		resp, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/live", nil))
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		body := readBody(t, resp)
		assert.Contains(t, body, live.DefaultTemplate)
		assert.Contains(t, body, `id="live-container"`)
	})

	t.Run("Unique Viewers", func(t *testing.T) {
		before := len(fx.service.Connections())
		for i := 0; i < 5; i++ {
			resp, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/live", nil))
			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		}

		conns := fx.service.Connections()
		require.Len(t, conns, before+5)
		seen := make(map[int64]bool)
		for _, c := range conns {
			assert.False(t, seen[c.ID])
			seen[c.ID] = true
			assert.Equal(t, geo.PlaceholderISP, c.ISP)
		}
	})
}

func TestHandleSendTemplate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		fx := setupLiveApp(t, nil)
		sub := fx.service.Subscribe()
		defer fx.hub.Unsubscribe(sub)
		<-sub.Events()

		resp := sendTemplate(t, fx.app, `{"content":"<b>hi</b>"}`)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"success":true}`, readBody(t, resp))

		select {
		case ev := <-sub.Events():
			assert.Equal(t, live.EventUpdateLiveTemplate, ev.Name)
			assert.Equal(t, "<b>hi</b>", ev.Data)
		case <-time.After(2 * time.Second):
			t.Fatal("no update-live-template event")
		}

		page, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/live", nil))
		require.NoError(t, err)
		assert.Contains(t, readBody(t, page), "<b>hi</b>")

		current, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/api/live/template", nil))
		require.NoError(t, err)
		assert.JSONEq(t, `{"content":"<b>hi</b>"}`, readBody(t, current))
	})

	for name, body := range map[string]string{
		"Empty Body":    "",
		"Empty Object":  "{}",
		"Empty Content": `{"content":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			fx := setupLiveApp(t, nil)

			resp := sendTemplate(t, fx.app, body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.JSONEq(t, `{"error":"No content provided"}`, readBody(t, resp))
			assert.Equal(t, live.DefaultTemplate, fx.service.Template())
		})
	}

	t.Run("Invalid JSON", func(t *testing.T) {
		fx := setupLiveApp(t, nil)

		resp := sendTemplate(t, fx.app, `{"content":`)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.JSONEq(t, `{"error":"Invalid request body"}`, readBody(t, resp))
		assert.Equal(t, live.DefaultTemplate, fx.service.Template())
	})
}

func sendTemplateForm(t *testing.T, app *fiber.App, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/live/send-template", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleSendTemplate_FormBody(t *testing.T) {
	apps := map[string]func() *fiber.App{
		"Server App": func() *fiber.App { return server.New(server.Config{BodyLimitMB: 1}, zap.NewNop()) },
		"Bare App":   func() *fiber.App { return fiber.New() },
	}

	for name, newApp := range apps {
		t.Run(name, func(t *testing.T) {
			fx := mountLiveFeature(t, newApp(), nil)
			first := strings.Repeat("A", 20)

			resp := sendTemplateForm(t, fx.app, "content="+first)
			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, first, fx.service.Template())

			// A rejected push reuses the request buffers and must leave the template alone
			resp = sendTemplateForm(t, fx.app, "zzzzzzz="+strings.Repeat("B", 20))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, first, fx.service.Template())

			for i := 0; i < 3; i++ {
				_, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/api/connections?pad="+strings.Repeat("C", 40), nil))
				require.NoError(t, err)
			}
			assert.Equal(t, first, fx.service.Template())

			page, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/live", nil))
			require.NoError(t, err)
			assert.Contains(t, readBody(t, page), first)
		})
	}
}

func TestHandleListConnections(t *testing.T) {
	fx := setupLiveApp(t, nil)

	resp, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/api/connections", nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, readBody(t, resp))

	rec := fx.service.RegisterViewer(context.Background(), "203.0.113.9")

	resp, err = fx.app.Test(httptest.NewRequest(http.MethodGet, "/api/connections", nil))
	require.NoError(t, err)

	var conns []live.ConnectionRecord
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &conns))
	require.Len(t, conns, 1)
	assert.Equal(t, rec, conns[0])
}

func TestHandleHistory(t *testing.T) {
	t.Run("Disabled", func(t *testing.T) {
		fx := setupLiveApp(t, nil)

		resp, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/api/connections/history", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	})

	t.Run("Enabled", func(t *testing.T) {
		db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
		require.NoError(t, err)
		repo := live.NewHistoryRepository(db)
		require.NoError(t, repo.Migrate())

		fx := setupLiveApp(t, repo)
		for i := 0; i < 3; i++ {
			_, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/live", nil))
			require.NoError(t, err)
		}

		resp, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/api/connections/history?limit=2", nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var out struct {
			Visits []live.Visit `json:"visits"`
		}
		require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &out))
		assert.Len(t, out.Visits, 2)
	})
}

func TestHandleSocketRequiresUpgrade(t *testing.T) {
	fx := setupLiveApp(t, nil)

	resp, err := fx.app.Test(httptest.NewRequest(http.MethodGet, "/ws", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUpgradeRequired, resp.StatusCode)
}
