package bindfeed

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gorilla/websocket"
)

// Sink delivers encoded frames to a remote view.
type Sink interface {
	WriteFrame(ctx context.Context, data []byte) error
}

// WriterSink writes one frame per line. Use it with the JSON codec.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) WriteFrame(_ context.Context, data []byte) error {
	if _, err := s.W.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// WebsocketSink sends each frame as one websocket message.
type WebsocketSink struct {
	conn         *websocket.Conn
	messageType  int
	writeTimeout time.Duration
}

// NewWebsocketSink sends binary messages for binary codecs and text messages otherwise.
func NewWebsocketSink(conn *websocket.Conn, codec Codec, writeTimeout time.Duration) *WebsocketSink {
	messageType := websocket.TextMessage
	if codec.Binary() {
		messageType = websocket.BinaryMessage
	}
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}
	return &WebsocketSink{
		conn:         conn,
		messageType:  messageType,
		writeTimeout: writeTimeout,
	}
}

// WebsocketSink returns a sink on conn using the feed's codec and its
// Config.WriteTimeout.
func (f *Feed[T]) WebsocketSink(conn *websocket.Conn) *WebsocketSink {
	return NewWebsocketSink(conn, f.codec, f.cfg.WriteTimeout)
}

func (s *WebsocketSink) WriteFrame(ctx context.Context, data []byte) error {
	deadline := time.Now().Add(s.writeTimeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := s.conn.SetWriteDeadline(deadline); err != nil {
		return fmt.Errorf("set write deadline: %w", err)
	}
	if err := s.conn.WriteMessage(s.messageType, data); err != nil {
		return fmt.Errorf("write websocket message: %w", err)
	}
	return nil
}

// Close sends a normal closure message and closes the connection.
func (s *WebsocketSink) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = s.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(s.writeTimeout))
	return s.conn.Close()
}
