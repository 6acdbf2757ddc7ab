package bindfeed

import (
	"context"
	"math/bits"
	"sync"
)

// Outbox is a bounded FIFO between the goroutine mutating a vector and the
// goroutine writing frames out. It is a ring buffer guarded by a mutex, with a
// Ready signal for consumers.
type Outbox[T any] struct {
	mu       sync.Mutex
	buf      []T // backing array, length == capacity (power of two)
	head     int // index of the first element
	size     int // number of elements held
	mask     int // capacity - 1, used for fast modulo: idx & mask
	limit    int
	notEmpty chan struct{}
	closed   bool
	doneCh   chan struct{} // Closed when the outbox is closed
}

// NewOutbox creates an Outbox with room for capacity elements before growing.
// If limit <= 0, the outbox is unbounded.
func NewOutbox[T any](capacity, limit int) *Outbox[T] {
	if capacity <= 0 {
		capacity = 16
	}
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	// next power of two >= capacity
	capacity = 1 << uint(bits.Len(uint(capacity-1)))

	return &Outbox[T]{
		buf:      make([]T, capacity),
		mask:     capacity - 1,
		limit:    limit,
		notEmpty: make(chan struct{}, 1),
		doneCh:   make(chan struct{}),
	}
}

// grow doubles the buffer until it holds need elements.
// Must be called with lock held.
func (o *Outbox[T]) grow(need int) {
	newCapacity := 1 << uint(bits.Len(uint(need-1)))
	newBuf := make([]T, newCapacity)

	if o.head+o.size <= len(o.buf) {
		copy(newBuf, o.buf[o.head:o.head+o.size])
	} else {
		// wrapped around
		n := copy(newBuf, o.buf[o.head:])
		copy(newBuf[n:], o.buf[:(o.head+o.size)&o.mask])
	}

	clear(o.buf)
	o.buf = newBuf
	o.head = 0
	o.mask = newCapacity - 1
}

// signal ensures notEmpty holds a token while there is data.
// Must be called with lock held.
func (o *Outbox[T]) signal() {
	if o.size > 0 {
		select {
		case o.notEmpty <- struct{}{}:
		default:
		}
	}
}

// Push appends value. It returns (false, nil) when the outbox is at its limit.
func (o *Outbox[T]) Push(value T) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return false, ErrOutboxClosed
	}
	if o.limit > 0 && o.size >= o.limit {
		return false, nil
	}
	if o.size == len(o.buf) {
		o.grow(o.size + 1)
	}
	o.buf[(o.head+o.size)&o.mask] = value
	o.size++
	o.signal()
	return true, nil
}

// Replace drops everything held and leaves value as the only element.
func (o *Outbox[T]) Replace(value T) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return ErrOutboxClosed
	}
	clear(o.buf)
	o.head = 0
	o.buf[0] = value
	o.size = 1
	o.signal()
	return nil
}

// TryDrainInto moves up to len(dst) elements into dst and returns how many.
func (o *Outbox[T]) TryDrainInto(dst []T) int {
	o.mu.Lock()
	defer o.mu.Unlock()

	n := min(len(dst), o.size)
	if n == 0 {
		return 0
	}
	if o.head+n <= len(o.buf) {
		copy(dst, o.buf[o.head:o.head+n])
		clear(o.buf[o.head : o.head+n])
	} else {
		// wrapped around
		part1Len := len(o.buf) - o.head
		copy(dst, o.buf[o.head:])
		copy(dst[part1Len:], o.buf[:n-part1Len])
		clear(o.buf[o.head:])
		clear(o.buf[:n-part1Len])
	}
	o.head = (o.head + n) & o.mask
	o.size -= n
	o.signal()
	return n
}

// DrainOrWait moves up to len(dst) elements into dst, blocking until data arrives.
// Once the outbox is closed, remaining elements are still handed out; after that
// it returns ErrOutboxClosed.
func (o *Outbox[T]) DrainOrWait(ctx context.Context, dst []T) (int, error) {
	for {
		if n := o.TryDrainInto(dst); n > 0 {
			return n, nil
		}
		if o.IsClosed() {
			return 0, ErrOutboxClosed
		}

		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-o.Done():
			// Retry, to hand out what was pushed before Close
		case <-o.Ready():
			// Retry
		}
	}
}

// Size returns the current number of elements held.
func (o *Outbox[T]) Size() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.size
}

// Ready returns a channel that signals when the outbox has data.
// A signal does not guarantee data is still there, because of possible races.
func (o *Outbox[T]) Ready() <-chan struct{} {
	return o.notEmpty
}

// Done returns a channel that is closed when the outbox is closed.
func (o *Outbox[T]) Done() <-chan struct{} {
	return o.doneCh
}

// Close stops accepting elements. Held elements can still be drained.
func (o *Outbox[T]) Close() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return
	}
	o.closed = true
	close(o.doneCh)
}

func (o *Outbox[T]) IsClosed() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.closed
}
