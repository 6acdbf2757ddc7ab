package observable

import "slices"

// Handle identifies a registered observer. Both channels of a Vector draw
// from one sequence, so a handle never names observers on both. The zero
// Handle is never issued.
type Handle uint64

type callback[F any] struct {
	handle Handle
	fn     F
}

// callbacks keeps observers in registration order.
// Removal replaces the slice instead of editing it, so a dispatch already
// ranging over the old slice is unaffected; changes made by an observer apply
// from the next notification on.
type callbacks[F any] struct {
	entries []callback[F]
}

func (c *callbacks[F]) add(h Handle, fn F) Handle {
	c.entries = append(c.entries, callback[F]{handle: h, fn: fn})
	return h
}

func (c *callbacks[F]) remove(h Handle) bool {
	i := slices.IndexFunc(c.entries, func(e callback[F]) bool {
		return e.handle == h
	})
	if i < 0 {
		return false
	}
	c.entries = slices.Delete(slices.Clone(c.entries), i, i+1)
	return true
}

func (c *callbacks[F]) len() int {
	return len(c.entries)
}

func (c *callbacks[F]) list() []callback[F] {
	return c.entries
}
