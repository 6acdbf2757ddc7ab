package bindfeed

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
)

const (
	defaultOutboxLimit  = 1024
	defaultBatchSize    = 64
	defaultWriteTimeout = 5 * time.Second
)

// Config holds the knobs of a Feed.
type Config struct {
	// Format selects the codec, "json" or "msgpack".
	Format string `json:"format,omitempty"`
	// OutboxLimit is how many frames may wait for the sink before the
	// backlog is collapsed into a single reset frame.
	OutboxLimit int `json:"outbox_limit,omitempty"`
	// BatchSize is how many frames Run drains per wakeup.
	BatchSize int `json:"batch_size,omitempty"`
	// WriteTimeout bounds each write of a sink made by Feed.WebsocketSink.
	WriteTimeout time.Duration `json:"write_timeout,omitempty"`
	// ForwardProperties also forwards "Count" and "Item[]" notifications.
	ForwardProperties bool `json:"forward_properties,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:       FormatJSON,
		OutboxLimit:  defaultOutboxLimit,
		BatchSize:    defaultBatchSize,
		WriteTimeout: defaultWriteTimeout,
	}
}

// Merge applies non-zero values from source into c.
func (c *Config) Merge(source *Config) {
	if source.Format != "" {
		c.Format = source.Format
	}
	if source.OutboxLimit > 0 {
		c.OutboxLimit = source.OutboxLimit
	}
	if source.BatchSize > 0 {
		c.BatchSize = source.BatchSize
	}
	if source.WriteTimeout > 0 {
		c.WriteTimeout = source.WriteTimeout
	}
	if source.ForwardProperties {
		c.ForwardProperties = true
	}
}

// LoadConfig reads a JSON config file, merges it with defaults, and returns
// the resulting Config.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var loaded Config
	if err := json.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.Merge(&loaded)
	return &cfg, nil
}
