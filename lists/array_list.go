package lists

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

var (
	ErrIndexOutOfBounds       = errors.New("index out of bounds")
	ErrCapacityExceeded       = errors.New("destination capacity exceeded")
	ErrConcurrentModification = errors.New("list modified during iteration")
)

// ArrayList is a slice backed List.
// mods counts structural modifications (insert, remove, clear) so iterators can fail fast.
type ArrayList[T any] struct {
	data []T
	mods uint64
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

// NewArrayListFrom copies values into a new list.
func NewArrayListFrom[T any](values []T) *ArrayList[T] {
	al := NewArrayList[T](len(values))
	al.data = append(al.data, values...)
	return al
}

// NewArrayListFromSeq drains seq into a new list.
func NewArrayListFromSeq[T any](seq iter.Seq[T], initialCapacity int) *ArrayList[T] {
	al := NewArrayList[T](initialCapacity)
	if seq != nil {
		al.data = slices.AppendSeq(al.data, seq)
	}
	return al
}

func (al *ArrayList[T]) Add(values ...T) {
	if len(values) == 0 {
		return
	}
	al.data = append(al.data, values...)
	al.mods++
}

func (al *ArrayList[T]) Insert(index int, value T) error {
	if index < 0 || index > len(al.data) {
		return ErrIndexOutOfBounds
	}

	var zero T
	al.data = append(al.data, zero)
	copy(al.data[index+1:], al.data[index:])
	al.data[index] = value
	al.mods++
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	return al.data[index], nil
}

// Set overwrites in place. It is not a structural modification.
func (al *ArrayList[T]) Set(index int, value T) error {
	if index < 0 || index >= len(al.data) {
		return ErrIndexOutOfBounds
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) RemoveAt(index int) (T, error) {
	if index < 0 || index >= len(al.data) {
		var zero T
		return zero, ErrIndexOutOfBounds
	}
	removed := al.data[index]
	copy(al.data[index:], al.data[index+1:])
	// clear the last element, let it be GCed
	clear(al.data[len(al.data)-1:])
	al.data = al.data[:len(al.data)-1]
	al.mods++
	return removed, nil
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

// Clear always counts as a modification, even on an empty list.
func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
	al.mods++
}

func (al *ArrayList[T]) IndexOf(value T, equal func(a, b T) bool) int {
	return al.IndexFunc(func(v T) bool {
		return equal(v, value)
	})
}

// IndexFunc returns the index of the first element satisfying predicate, or -1.
func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

func (al *ArrayList[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 {
		return ErrIndexOutOfBounds
	}
	if offset > len(dst) || len(dst)-offset < len(al.data) {
		return fmt.Errorf("%w: need %d slots from offset %d, have %d",
			ErrCapacityExceeded, len(al.data), offset, len(dst))
	}
	copy(dst[offset:], al.data)
	return nil
}

// Clone returns a shallow copy of the list.
// Note: If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	return NewArrayListFrom(al.data)
}

func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

// All ranges over the live buffer. Each range starts a new pass over the current
// contents. A structural modification made while ranging panics with
// ErrConcurrentModification on the next step.
func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		expected := al.mods
		for i := 0; i < len(al.data); i++ {
			if !yield(i, al.data[i]) {
				return
			}
			if al.mods != expected {
				panic(fmt.Errorf("%w: at index %d", ErrConcurrentModification, i))
			}
		}
	}
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range al.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (al *ArrayList[T]) Iterator() Iterator[T] {
	return &arrayIterator[T]{list: al, mods: al.mods, next: 0}
}

type arrayIterator[T any] struct {
	list *ArrayList[T]
	mods uint64
	next int
	err  error
}

func (it *arrayIterator[T]) HasNext() bool {
	if it.err != nil {
		return false
	}
	if it.list.mods != it.mods {
		it.err = ErrConcurrentModification
		return false
	}
	return it.next < len(it.list.data)
}

func (it *arrayIterator[T]) Next() T {
	if !it.HasNext() {
		var zero T
		return zero
	}
	v := it.list.data[it.next]
	it.next++
	return v
}

func (it *arrayIterator[T]) Index() int {
	return it.next - 1
}

func (it *arrayIterator[T]) Err() error {
	return it.err
}
