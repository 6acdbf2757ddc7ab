package lists

import "iter"

// List defines the ordered, index-addressable buffer an observable vector
// stores its elements in. T can be any type.
type List[T any] interface {
	// -------------------------------------------------------
	// Positional Operations
	// -------------------------------------------------------

	// Add appends one or more elements to the end of the list
	Add(values ...T)

	// Insert inserts an element at the specified index
	// Returns an error if index < 0 or index > Size()
	Insert(index int, value T) error

	// RemoveAt removes and returns the element at the specified index
	// Returns an error if index is out of bounds
	RemoveAt(index int) (T, error)

	// Set overwrites the element at the specified index
	// Returns an error if index is out of bounds
	Set(index int, value T) error

	// Get retrieves the element at the specified index
	// Returns an error if index is out of bounds
	Get(index int) (T, error)

	// -------------------------------------------------------
	// Query Operations
	// -------------------------------------------------------

	// Size returns the current number of elements in the list
	Size() int

	// IsEmpty checks if the list is empty
	IsEmpty() bool

	// Clear removes every element, keeping the capacity
	Clear()

	// IndexOf finds the first occurrence index of an element, returns -1 if not found
	// Since T is any, an equality function must be provided
	IndexOf(value T, equal func(a, b T) bool) int

	// CopyTo copies the whole list into dst starting at offset
	// Returns an error if offset < 0 or dst cannot hold Size() elements after offset
	CopyTo(dst []T, offset int) error

	// -------------------------------------------------------
	// Transformation & Iteration
	// -------------------------------------------------------

	// ToSlice returns a copy of the elements as a native slice
	ToSlice() []T

	// Values ranges over the elements, failing fast on structural modification
	Values() iter.Seq[T]

	// All ranges over index/element pairs, failing fast on structural modification
	All() iter.Seq2[int, T]

	// Iterator returns a cursor over the elements
	Iterator() Iterator[T]
}

// Iterator defines the behavior of an iterator
// Allows users to traverse using for it.HasNext() without a range-over-func loop.
type Iterator[T any] interface {
	// HasNext checks if there is a next element.
	// It returns false once the underlying list was structurally modified; Err then reports why.
	HasNext() bool

	// Next returns the current element and advances the cursor to the next position
	// Calling Next when HasNext is false returns the zero value
	Next() T

	// Index returns the index of the element last returned by Next, -1 before the first call
	Index() int

	// Err returns ErrConcurrentModification if the list changed under the iterator
	Err() error
}
