package broadcast

import "time"

// Config holds push channel settings.
type Config struct {
	// QueueSize is the number of pending events buffered per subscriber.
	QueueSize int `mapstructure:"queue_size" default:"64"`
	// WriteTimeoutSeconds bounds a single write to a subscriber connection.
	WriteTimeoutSeconds int `mapstructure:"write_timeout_seconds" default:"5"`
	// KeepAliveSeconds is the interval of keep-alive frames on idle streams.
	KeepAliveSeconds int `mapstructure:"keepalive_seconds" default:"15"`
	// EvictOnDisconnect removes a viewer's connection record when its stream ends.
	EvictOnDisconnect bool `mapstructure:"evict_on_disconnect" default:"true"`
}

// WriteTimeout returns the per-write deadline.
func (c Config) WriteTimeout() time.Duration {
	if c.WriteTimeoutSeconds <= 0 {
		return 5 * time.Second
	}
	return time.Duration(c.WriteTimeoutSeconds) * time.Second
}

// KeepAlive returns the keep-alive interval.
func (c Config) KeepAlive() time.Duration {
	if c.KeepAliveSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.KeepAliveSeconds) * time.Second
}

func (c Config) queueSize() int {
	if c.QueueSize <= 0 {
		return 64
	}
	return c.QueueSize
}
