package live

import (
	"bufio"
	"time"

	"livecast/core/logger"
	"livecast/core/middleware/rayid"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HandleSocket streams push events over a WebSocket connection.
// A ?viewer=<id> query claims the connection record of that live page visit.
func (h *Handler) HandleSocket(conn *websocket.Conn) {
	l := h.service.logger
	if rid, ok := conn.Locals(rayid.LocalsKey).(string); ok && rid != "" {
		l = l.With(zap.String("ray_id", rid))
	}
	viewer := h.claimViewer(conn.Query("viewer"), l)

	sub := h.service.Subscribe()
	defer h.service.Disconnect(sub, viewer)
	l.Debug("WebSocket subscriber connected", zap.String("subscriber", sub.ID()), zap.Int64("viewer", viewer))

	// Client messages are ignored; reading only detects the close
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	writeTimeout := h.cfg.WriteTimeout()
	ticker := time.NewTicker(h.cfg.KeepAlive())
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-sub.Events():
			if !ok {
				return
			}
			data, err := ev.MarshalEnvelope()
			if err != nil {
				l.Error("Failed to encode event", zap.String("event", ev.Name), zap.Error(err))
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				l.Debug("WebSocket write failed", zap.String("subscriber", sub.ID()), zap.Error(err))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		case <-closed:
			l.Debug("WebSocket subscriber disconnected", zap.String("subscriber", sub.ID()))
			return
		}
	}
}

// HandleEvents streams push events as Server-Sent Events.
// @Summary Event Stream
// @Description Server-Sent Events stream of all-connections, new-connection, update-live-template and close-connection events.
// @Tags live
// @Produce text/event-stream
// @Param viewer query int false "Connection id claimed by this stream"
// @Success 200 {string} string "Event stream"
// @Router /events [get]
func (h *Handler) HandleEvents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	viewer := h.claimViewer(c.Query("viewer"), l)

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	sub := h.service.Subscribe()
	keepAlive := h.cfg.KeepAlive()

	// The fiber context is recycled once the handler returns; the writer
	// must only touch values captured above.
	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		defer h.service.Disconnect(sub, viewer)

		ticker := time.NewTicker(keepAlive)
		defer ticker.Stop()

		for {
			select {
			case ev, ok := <-sub.Events():
				if !ok {
					return
				}
				if err := ev.WriteSSE(w); err != nil {
					l.Debug("SSE write failed", zap.String("subscriber", sub.ID()), zap.Error(err))
					return
				}
			case <-ticker.C:
				if _, err := w.WriteString(": keep-alive\n\n"); err != nil {
					return
				}
			}
			if err := w.Flush(); err != nil {
				l.Debug("SSE subscriber disconnected", zap.String("subscriber", sub.ID()))
				return
			}
		}
	})

	return nil
}

// claimViewer returns the id named by raw when it is a registered record, or 0.
func (h *Handler) claimViewer(raw string, l *zap.Logger) int64 {
	id := parseViewer(raw)
	if id == 0 {
		return 0
	}
	rec, ok := h.service.Connection(id)
	if !ok {
		l.Debug("Stream claims unknown viewer", zap.Int64("viewer", id))
		return 0
	}
	l.Debug("Stream claimed viewer", zap.Int64("viewer", rec.ID), zap.String("ip", rec.IP))
	return rec.ID
}
