package bindfeed

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"bindlist/observable"
)

// Feed forwards a vector's notifications to a Sink as frames.
//
// Observers run on the goroutine mutating the vector and only push frames
// into the outbox; Run drains it on its own goroutine. When the sink falls
// more than OutboxLimit frames behind, the backlog is replaced by one reset
// frame carrying a full snapshot, so a slow view resynchronizes instead of
// stalling the vector.
type Feed[T any] struct {
	vec    *observable.Vector[T]
	cfg    Config
	codec  Codec
	outbox *Outbox[Frame[T]]
	log    zerolog.Logger

	seq        uint64
	resync     bool
	propHandle observable.Handle
	vecHandle  observable.Handle
	closeOnce  sync.Once
}

type Option func(*feedOptions)

type feedOptions struct {
	logger zerolog.Logger
}

// WithLogger sets the logger for resyncs and sink failures.
func WithLogger(l zerolog.Logger) Option {
	return func(o *feedOptions) {
		o.logger = l
	}
}

// NewFeed subscribes to vec and queues an initial reset frame holding its
// current contents. Must be called on the goroutine that mutates vec.
func NewFeed[T any](vec *observable.Vector[T], cfg Config, opts ...Option) (*Feed[T], error) {
	merged := DefaultConfig()
	merged.Merge(&cfg)

	codec, err := CodecFor(merged.Format)
	if err != nil {
		return nil, err
	}

	o := feedOptions{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	f := &Feed[T]{
		vec:    vec,
		cfg:    merged,
		codec:  codec,
		outbox: NewOutbox[Frame[T]](merged.BatchSize, merged.OutboxLimit),
		log: o.logger.With().
			Str("vector", vec.ID().String()).
			Str("format", codec.Name()).
			Logger(),
	}

	f.push(f.snapshot())
	f.vecHandle = vec.OnVectorChanged(f.onVectorChanged)
	if merged.ForwardProperties {
		f.propHandle = vec.OnPropertyChanged(f.onPropertyChanged)
	}
	return f, nil
}

func (f *Feed[T]) Codec() Codec {
	return f.codec
}

// Pending returns how many frames wait for the sink.
func (f *Feed[T]) Pending() int {
	return f.outbox.Size()
}

func (f *Feed[T]) nextSeq() uint64 {
	f.seq++
	return f.seq
}

func (f *Feed[T]) snapshot() Frame[T] {
	items := f.vec.ToSlice()
	return Frame[T]{
		Vector: f.vec.ID().String(),
		Seq:    f.nextSeq(),
		Kind:   KindReset,
		Count:  len(items),
		Items:  items,
	}
}

func (f *Feed[T]) onVectorChanged(e observable.VectorChangedEvent) error {
	kind := kindOf(e.Change)
	if kind == KindReset || f.resync {
		f.resync = false
		f.push(f.snapshot())
		return nil
	}

	frame := Frame[T]{
		Vector: e.Vector.String(),
		Kind:   kind,
		Index:  e.Index,
		Count:  f.vec.Count(),
	}
	if kind != KindRemoved {
		item, err := f.vec.Get(int(e.Index))
		if err != nil {
			return fmt.Errorf("read changed item: %w", err)
		}
		frame.Item = item
	}
	frame.Seq = f.nextSeq()
	f.push(frame)
	return nil
}

// onPropertyChanged runs before the structural record of the same burst, when
// the buffer already holds the mutation. A full outbox only marks a resync
// here; the snapshot is taken by the next onVectorChanged and replaces the
// structural frame, so the change reaches the view exactly once.
func (f *Feed[T]) onPropertyChanged(e observable.PropertyChangedEvent) error {
	if f.resync {
		return nil
	}
	ok, err := f.outbox.Push(Frame[T]{
		Vector:   e.Vector.String(),
		Seq:      f.nextSeq(),
		Kind:     KindProperty,
		Count:    f.vec.Count(),
		Property: e.PropertyName,
	})
	if err == nil && !ok {
		f.resync = true
	}
	return nil
}

// push never fails the vector's mutation: a closed outbox drops the frame and
// a full one is collapsed into a snapshot.
func (f *Feed[T]) push(frame Frame[T]) {
	ok, err := f.outbox.Push(frame)
	if err != nil || ok {
		return
	}

	dropped := f.outbox.Size()
	if err := f.outbox.Replace(f.snapshot()); err != nil {
		return
	}
	f.log.Warn().
		Int("dropped", dropped).
		Uint64("seq", f.seq).
		Msg("outbox full, resyncing with snapshot")
}

// Run encodes and writes frames to sink until ctx is done or the feed is
// closed and drained. A closed feed ends Run with a nil error.
func (f *Feed[T]) Run(ctx context.Context, sink Sink) error {
	batch := make([]Frame[T], f.cfg.BatchSize)
	for {
		n, err := f.outbox.DrainOrWait(ctx, batch)
		if errors.Is(err, ErrOutboxClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		for i := range batch[:n] {
			data, err := f.codec.Encode(batch[i])
			if err != nil {
				return fmt.Errorf("encode frame %d: %w", batch[i].Seq, err)
			}
			if err := sink.WriteFrame(ctx, data); err != nil {
				f.log.Error().Err(err).Uint64("seq", batch[i].Seq).Msg("sink write failed")
				return fmt.Errorf("frame %d: %w", batch[i].Seq, err)
			}
		}
		clear(batch[:n])
	}
}

// Close unsubscribes from the vector and lets Run finish once the remaining
// frames are written. Must be called on the goroutine that mutates the vector.
func (f *Feed[T]) Close() {
	f.closeOnce.Do(func() {
		f.vec.RemoveVectorChanged(f.vecHandle)
		if f.propHandle != 0 {
			f.vec.RemovePropertyChanged(f.propHandle)
		}
		f.outbox.Close()
	})
}
