package bindfeed

import (
	"fmt"

	"bindlist/lists"
)

// Replica rebuilds a vector's contents on the receiving side of a feed.
// The first frame it accepts must be a reset.
type Replica[T any] struct {
	items   *lists.ArrayList[T]
	seq     uint64
	started bool
}

func NewReplica[T any]() *Replica[T] {
	return &Replica[T]{items: lists.NewArrayList[T](0)}
}

// ApplyEncoded decodes data with codec and applies the frame.
func (r *Replica[T]) ApplyEncoded(codec Codec, data []byte) error {
	var frame Frame[T]
	if err := codec.Decode(data, &frame); err != nil {
		return fmt.Errorf("decode frame: %w", err)
	}
	return r.Apply(frame)
}

func (r *Replica[T]) Apply(f Frame[T]) error {
	switch {
	case f.Kind == KindReset:
		if r.started && f.Seq <= r.seq {
			return fmt.Errorf("%w: reset %d after %d", ErrFrameGap, f.Seq, r.seq)
		}
	case !r.started:
		return fmt.Errorf("%w: %s frame %d before the first reset", ErrFrameGap, f.Kind, f.Seq)
	case f.Seq != r.seq+1:
		return fmt.Errorf("%w: got %d after %d", ErrFrameGap, f.Seq, r.seq)
	}

	var err error
	switch f.Kind {
	case KindReset:
		r.items.Clear()
		r.items.Add(f.Items...)
		r.started = true
	case KindInserted:
		err = r.items.Insert(int(f.Index), f.Item)
	case KindRemoved:
		_, err = r.items.RemoveAt(int(f.Index))
	case KindChanged:
		err = r.items.Set(int(f.Index), f.Item)
	case KindProperty:
		// counts in property frames are ahead of the structural frame that follows
	default:
		return fmt.Errorf("unknown frame kind %q", f.Kind)
	}
	if err != nil {
		return fmt.Errorf("%w: %s at %d: %w", ErrDiverged, f.Kind, f.Index, err)
	}
	r.seq = f.Seq

	if f.Kind != KindProperty && r.items.Size() != f.Count {
		return fmt.Errorf("%w: have %d items, frame %d says %d", ErrDiverged, r.items.Size(), f.Seq, f.Count)
	}
	return nil
}

// Seq returns the sequence number of the last applied frame.
func (r *Replica[T]) Seq() uint64 {
	return r.seq
}

func (r *Replica[T]) Count() int {
	return r.items.Size()
}

// Items returns a copy of the replicated contents.
func (r *Replica[T]) Items() []T {
	return r.items.ToSlice()
}
