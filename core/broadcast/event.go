package broadcast

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// Event is a named payload pushed to subscribers.
type Event struct {
	Name string `json:"event"`
	Data any    `json:"data"`
}

// MarshalEnvelope encodes the event as {"event": name, "data": payload}.
func (e Event) MarshalEnvelope() ([]byte, error) {
	return json.Marshal(e)
}

// WriteSSE writes the event in Server-Sent Events framing.
func (e Event) WriteSSE(w io.Writer) error {
	data, err := json.Marshal(e.Data)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", e.Name, err)
	}
	_, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", e.Name, data)
	return err
}
