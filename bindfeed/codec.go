package bindfeed

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/shamaton/msgpack/v2"
)

const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Codec turns frames into wire bytes and back.
type Codec interface {
	Name() string
	// Binary reports whether encoded frames must travel as binary messages.
	Binary() bool
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// CodecFor returns the codec registered under format.
func CodecFor(format string) (Codec, error) {
	switch format {
	case FormatJSON, "":
		return JSONCodec{}, nil
	case FormatMsgpack:
		return MsgpackCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

type JSONCodec struct{}

func (JSONCodec) Name() string { return FormatJSON }

func (JSONCodec) Binary() bool { return false }

func (JSONCodec) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSONCodec) Decode(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return FormatMsgpack }

func (MsgpackCodec) Binary() bool { return true }

func (MsgpackCodec) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (MsgpackCodec) Decode(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
