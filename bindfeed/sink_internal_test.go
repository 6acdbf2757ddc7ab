package bindfeed

import (
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bindlist/observable"
)

func TestFeed_WebsocketSinkUsesConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want time.Duration
	}{
		{name: "default", cfg: Config{}, want: defaultWriteTimeout},
		{name: "configured", cfg: Config{WriteTimeout: 250 * time.Millisecond}, want: 250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			feed, err := NewFeed(observable.New[int](), tt.cfg)
			require.NoError(t, err)
			defer feed.Close()

			sink := feed.WebsocketSink(nil)
			assert.Equal(t, tt.want, sink.writeTimeout)
			assert.Equal(t, websocket.TextMessage, sink.messageType)
		})
	}
}
