package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"github.com/spf13/cobra"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print push events from a running server",
	Long:  `Subscribes to the WebSocket push channel and prints every event as one line: the event name followed by its JSON payload.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return watchEvents(ctx, url, cmd.OutOrStdout(), 0)
	},
}

type wireEvent struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// watchEvents prints events from the WebSocket at url until ctx ends, the
// server closes the stream or limit events were printed (0 means no limit).
func watchEvents(ctx context.Context, url string, out io.Writer, limit int) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", url, err)
	}
	defer conn.Close()

	// Unblock ReadMessage when ctx ends
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = conn.Close()
		case <-done:
		}
	}()

	for n := 0; limit == 0 || n < limit; n++ {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("failed to read event: %w", err)
		}

		var ev wireEvent
		if err := json.Unmarshal(msg, &ev); err != nil {
			return fmt.Errorf("malformed event %q: %w", msg, err)
		}
		fmt.Fprintf(out, "%s %s\n", ev.Event, ev.Data)
	}
	return nil
}

func init() {
	RootCmd.AddCommand(watchCmd)
	watchCmd.Flags().String("url", "ws://localhost:8080/ws", "WebSocket push channel URL")
}
