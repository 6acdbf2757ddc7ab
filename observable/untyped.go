package observable

import (
	"reflect"
	"slices"
)

// Untyped is the element-agnostic vector for hosts that bind to plain
// interface values.
type Untyped = Vector[any]

// NewUntyped returns an Untyped holding a copy of items, searched with AnyEqual.
func NewUntyped(items []any, opts ...Option) *Untyped {
	return NewFunc(AnyEqual, slices.Values(items), append([]Option{WithCapacity(len(items))}, opts...)...)
}

// AnyEqual compares two interface values without panicking.
// Comparable values use ==, so pointers compare by identity and scalars by value.
// Maps compare by identity. Slices compare by data pointer, length and
// capacity; zero-capacity slices of one type may share a data pointer and
// are then equal.
// Anything else that is not comparable, such as funcs, is never equal.
func AnyEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	if va.Comparable() {
		return a == b
	}

	switch va.Kind() {
	case reflect.Map:
		return va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Slice:
		return va.UnsafePointer() == vb.UnsafePointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	default:
		return false
	}
}
