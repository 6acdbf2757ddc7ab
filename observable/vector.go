package observable

import (
	"errors"
	"iter"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bindlist/lists"
)

// Vector is an ordered list that notifies observers of every change.
type Vector[T any] struct {
	items *lists.ArrayList[T]
	equal func(a, b T) bool
	id    uuid.UUID
	log   zerolog.Logger

	lastHandle      Handle
	propertyChanged callbacks[PropertyChangedFunc]
	vectorChanged   callbacks[VectorChangedFunc]
}

// New returns an empty Vector comparing elements with ==.
func New[T comparable](opts ...Option) *Vector[T] {
	return NewFunc[T](equalComparable[T], nil, opts...)
}

// From returns a Vector holding a copy of items.
func From[T comparable](items []T, opts ...Option) *Vector[T] {
	v := NewFunc[T](equalComparable[T], nil, append([]Option{WithCapacity(len(items))}, opts...)...)
	v.items.Add(items...)
	return v
}

// FromSeq returns a Vector holding the elements produced by seq.
func FromSeq[T comparable](seq iter.Seq[T], opts ...Option) *Vector[T] {
	return NewFunc(equalComparable[T], seq, opts...)
}

// NewFunc returns a Vector searching with equal, filled from seq when seq is not nil.
func NewFunc[T any](equal func(a, b T) bool, seq iter.Seq[T], opts ...Option) *Vector[T] {
	o := buildOptions(opts)
	return newVector(lists.NewArrayListFromSeq(seq, o.capacity), equal, o)
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.id == uuid.Nil {
		o.id = uuid.New()
	}
	return o
}

func newVector[T any](items *lists.ArrayList[T], equal func(a, b T) bool, o options) *Vector[T] {
	return &Vector[T]{
		items: items,
		equal: equal,
		id:    o.id,
		log:   o.logger.With().Str("vector", o.id.String()).Logger(),
	}
}

// Clone returns a Vector with the same elements and equality but no
// observers. It gets a new ID unless opts set one. Nothing is fired.
func (v *Vector[T]) Clone(opts ...Option) *Vector[T] {
	return newVector(v.items.Clone(), v.equal, buildOptions(opts))
}

func equalComparable[T comparable](a, b T) bool {
	return a == b
}

// ID returns the identity stamped on this vector's events.
func (v *Vector[T]) ID() uuid.UUID {
	return v.id
}

func (v *Vector[T]) Count() int {
	return v.items.Size()
}

// IsReadOnly always reports false.
func (v *Vector[T]) IsReadOnly() bool {
	return false
}

func (v *Vector[T]) Get(index int) (T, error) {
	item, err := v.items.Get(index)
	if err != nil {
		return item, v.indexError(opGet, index, err)
	}
	return item, nil
}

// Set overwrites the element at index without notifying anyone.
// Bound views will not see the new value until they re-read it.
func (v *Vector[T]) Set(index int, value T) error {
	if err := v.items.Set(index, value); err != nil {
		return v.indexError(opSet, index, err)
	}
	return nil
}

// Add appends value. It is Insert at Count().
func (v *Vector[T]) Add(value T) error {
	return v.Insert(v.Count(), value)
}

func (v *Vector[T]) Insert(index int, value T) error {
	if err := v.items.Insert(index, value); err != nil {
		return v.indexError(opInsert, index, err)
	}
	return v.notify(ItemInserted, index)
}

func (v *Vector[T]) RemoveAt(index int) error {
	if _, err := v.items.RemoveAt(index); err != nil {
		return v.indexError(opRemoveAt, index, err)
	}
	return v.notify(ItemRemoved, index)
}

// Remove removes the first element equal to value.
// found is false, and nothing is fired, when there is no such element.
func (v *Vector[T]) Remove(value T) (found bool, err error) {
	index := v.IndexOf(value)
	if index < 0 {
		return false, nil
	}
	return true, v.RemoveAt(index)
}

// Clear empties the vector and fires a single Reset, even when already empty.
func (v *Vector[T]) Clear() error {
	v.items.Clear()
	return v.notify(Reset, 0)
}

func (v *Vector[T]) Contains(value T) bool {
	return v.IndexOf(value) >= 0
}

// IndexOf returns the index of the first element equal to value, or -1.
func (v *Vector[T]) IndexOf(value T) int {
	return v.items.IndexOf(value, v.equal)
}

// CopyTo copies every element into dst starting at offset.
func (v *Vector[T]) CopyTo(dst []T, offset int) error {
	if offset < 0 {
		return &IndexError{Op: opCopyTo, Index: offset, Count: v.Count()}
	}
	return v.items.CopyTo(dst, offset)
}

// ToSlice returns a copy of the current contents.
func (v *Vector[T]) ToSlice() []T {
	return v.items.ToSlice()
}

func (v *Vector[T]) Values() iter.Seq[T] {
	return v.items.Values()
}

func (v *Vector[T]) All() iter.Seq2[int, T] {
	return v.items.All()
}

func (v *Vector[T]) Iterator() lists.Iterator[T] {
	return v.items.Iterator()
}

func (v *Vector[T]) String() string {
	return v.items.String()
}

// OnPropertyChanged registers fn for "Count" and "Item[]" notifications.
// A nil fn is ignored and the zero Handle is returned.
func (v *Vector[T]) OnPropertyChanged(fn PropertyChangedFunc) Handle {
	if fn == nil {
		return 0
	}
	return v.propertyChanged.add(v.nextHandle(), fn)
}

// RemovePropertyChanged unregisters the observer behind h.
func (v *Vector[T]) RemovePropertyChanged(h Handle) bool {
	return v.propertyChanged.remove(h)
}

// OnVectorChanged registers fn for structural change records.
// A nil fn is ignored and the zero Handle is returned.
func (v *Vector[T]) OnVectorChanged(fn VectorChangedFunc) Handle {
	if fn == nil {
		return 0
	}
	return v.vectorChanged.add(v.nextHandle(), fn)
}

// RemoveVectorChanged unregisters the observer behind h.
func (v *Vector[T]) RemoveVectorChanged(h Handle) bool {
	return v.vectorChanged.remove(h)
}

func (v *Vector[T]) nextHandle() Handle {
	v.lastHandle++
	return v.lastHandle
}

// notify fires one burst: Count, Item[], then the structural record.
// Must be called after the buffer mutation.
func (v *Vector[T]) notify(change CollectionChange, index int) error {
	if err := v.firePropertyChanged(PropertyCount); err != nil {
		return v.observerFailed(change, index, err)
	}
	if err := v.firePropertyChanged(PropertyIndexer); err != nil {
		return v.observerFailed(change, index, err)
	}
	if err := v.fireVectorChanged(change, index); err != nil {
		return v.observerFailed(change, index, err)
	}

	v.log.Debug().
		Stringer("change", change).
		Int("index", index).
		Int("count", v.items.Size()).
		Int("observers", v.propertyChanged.len()+v.vectorChanged.len()).
		Msg("vector changed")
	return nil
}

func (v *Vector[T]) firePropertyChanged(name string) error {
	e := PropertyChangedEvent{Vector: v.id, PropertyName: name}
	for _, cb := range v.propertyChanged.list() {
		if err := cb.fn(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vector[T]) fireVectorChanged(change CollectionChange, index int) error {
	e := VectorChangedEvent{Vector: v.id, Change: change, Index: uint32(index)}
	for _, cb := range v.vectorChanged.list() {
		if err := cb.fn(e); err != nil {
			return err
		}
	}
	return nil
}

func (v *Vector[T]) observerFailed(change CollectionChange, index int, err error) error {
	v.log.Warn().
		Err(err).
		Stringer("change", change).
		Int("index", index).
		Msg("observer failed, notification burst aborted")
	return err
}

func (v *Vector[T]) indexError(op string, index int, err error) error {
	if errors.Is(err, lists.ErrIndexOutOfBounds) {
		return &IndexError{Op: op, Index: index, Count: v.items.Size()}
	}
	return err
}
