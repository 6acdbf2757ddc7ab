package bindfeed

import "bindlist/observable"

// Kind tags what a Frame describes.
type Kind string

const (
	KindInserted Kind = "inserted"
	KindRemoved  Kind = "removed"
	// KindChanged is never produced from a Vector, whose Set fires nothing.
	// It carries ItemChanged records from hosts that raise them themselves.
	KindChanged  Kind = "changed"
	KindReset    Kind = "reset"
	KindProperty Kind = "property"
)

// Frame is one message of the feed. Seq increases by one per frame; a reset
// frame may skip numbers after the feed collapsed a backlog.
type Frame[T any] struct {
	Vector   string `json:"vector" msgpack:"vector"`
	Seq      uint64 `json:"seq" msgpack:"seq"`
	Kind     Kind   `json:"kind" msgpack:"kind"`
	Index    uint32 `json:"index,omitempty" msgpack:"index"`
	Count    int    `json:"count" msgpack:"count"`
	Property string `json:"property,omitempty" msgpack:"property"`
	Item     T      `json:"item,omitempty" msgpack:"item"`
	Items    []T    `json:"items,omitempty" msgpack:"items"`
}

func kindOf(c observable.CollectionChange) Kind {
	switch c {
	case observable.ItemInserted:
		return KindInserted
	case observable.ItemRemoved:
		return KindRemoved
	case observable.ItemChanged:
		return KindChanged
	default:
		return KindReset
	}
}
