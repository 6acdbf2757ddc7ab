package lists_test

import (
	"errors"
	"slices"
	"testing"

	"bindlist/lists"
)

func intEqual(a, b int) bool { return a == b }

// RunListTests is a reusable test suite for the List interface.
// It can be used to test any implementation of lists.List[T].
func RunListTests(t *testing.T, name string, factory func(vals ...int) lists.List[int]) {
	t.Helper()

	t.Run(name+"/Basic", func(t *testing.T) {
		l := factory()
		if !l.IsEmpty() {
			t.Error("New list should be empty")
		}
		if l.Size() != 0 {
			t.Errorf("New list size should be 0, got %d", l.Size())
		}

		l.Add(10, 20, 30)
		if l.Size() != 3 {
			t.Errorf("Size should be 3, got %d", l.Size())
		}

		if v, err := l.Get(1); err != nil || v != 20 {
			t.Errorf("Get(1) = %d, %v; want 20, nil", v, err)
		}

		if err := l.Set(1, 25); err != nil {
			t.Errorf("Set(1) failed: %v", err)
		}
		if v, _ := l.Get(1); v != 25 {
			t.Errorf("Get(1) after Set = %d, want 25", v)
		}

		l.Clear()
		if !l.IsEmpty() {
			t.Error("List should be empty after Clear")
		}
	})

	t.Run(name+"/Insert_RemoveAt", func(t *testing.T) {
		l := factory(1, 2, 3)

		if err := l.Insert(1, 10); err != nil {
			t.Fatalf("Insert(1, 10) failed: %v", err)
		}
		want := []int{1, 10, 2, 3}
		if got := l.ToSlice(); !slices.Equal(got, want) {
			t.Errorf("After Insert: got %v, want %v", got, want)
		}

		// Insert at end is allowed
		if err := l.Insert(l.Size(), 99); err != nil {
			t.Fatalf("Insert(Size, 99) failed: %v", err)
		}

		val, err := l.RemoveAt(1)
		if err != nil {
			t.Fatalf("RemoveAt(1) failed: %v", err)
		}
		if val != 10 {
			t.Errorf("RemoveAt(1) returned %d, want 10", val)
		}
		want = []int{1, 2, 3, 99}
		if got := slices.Collect(l.Values()); !slices.Equal(got, want) {
			t.Errorf("After RemoveAt: got %v, want %v", got, want)
		}
	})

	t.Run(name+"/Boundary_Indices", func(t *testing.T) {
		l := factory(1, 2, 3)
		size := l.Size()

		for _, idx := range []int{-1, size, size + 1} {
			if _, err := l.Get(idx); !errors.Is(err, lists.ErrIndexOutOfBounds) {
				t.Errorf("Get(%d) err = %v, want ErrIndexOutOfBounds", idx, err)
			}
			if err := l.Set(idx, 99); !errors.Is(err, lists.ErrIndexOutOfBounds) {
				t.Errorf("Set(%d) err = %v, want ErrIndexOutOfBounds", idx, err)
			}
			if _, err := l.RemoveAt(idx); !errors.Is(err, lists.ErrIndexOutOfBounds) {
				t.Errorf("RemoveAt(%d) err = %v, want ErrIndexOutOfBounds", idx, err)
			}
		}

		// Insert allows index == size (append), but not size+1 or -1
		if err := l.Insert(-1, 99); err == nil {
			t.Error("Insert(-1) should fail")
		}
		if err := l.Insert(size+1, 99); err == nil {
			t.Error("Insert(size+1) should fail")
		}

		if got := l.ToSlice(); !slices.Equal(got, []int{1, 2, 3}) {
			t.Errorf("Failed calls modified list: %v", got)
		}
	})

	t.Run(name+"/IndexOf", func(t *testing.T) {
		l := factory(5, 7, 5, 9)

		if idx := l.IndexOf(5, intEqual); idx != 0 {
			t.Errorf("IndexOf(5) = %d, want first match 0", idx)
		}
		if idx := l.IndexOf(9, intEqual); idx != 3 {
			t.Errorf("IndexOf(9) = %d, want 3", idx)
		}
		if idx := l.IndexOf(42, intEqual); idx != -1 {
			t.Errorf("IndexOf(42) = %d, want -1", idx)
		}
	})

	t.Run(name+"/CopyTo", func(t *testing.T) {
		l := factory(1, 2, 3)

		dst := make([]int, 5)
		if err := l.CopyTo(dst, 2); err != nil {
			t.Fatalf("CopyTo(dst, 2) failed: %v", err)
		}
		if !slices.Equal(dst, []int{0, 0, 1, 2, 3}) {
			t.Errorf("CopyTo result = %v", dst)
		}

		if err := l.CopyTo(make([]int, 4), 2); !errors.Is(err, lists.ErrCapacityExceeded) {
			t.Errorf("CopyTo short dst err = %v, want ErrCapacityExceeded", err)
		}
		if err := l.CopyTo(make([]int, 3), 4); !errors.Is(err, lists.ErrCapacityExceeded) {
			t.Errorf("CopyTo offset past end err = %v, want ErrCapacityExceeded", err)
		}
		if err := l.CopyTo(dst, -1); !errors.Is(err, lists.ErrIndexOutOfBounds) {
			t.Errorf("CopyTo(-1) err = %v, want ErrIndexOutOfBounds", err)
		}

		empty := factory()
		if err := empty.CopyTo(nil, 0); err != nil {
			t.Errorf("CopyTo on empty list into nil should succeed, got %v", err)
		}
	})

	t.Run(name+"/Iteration_Restartable", func(t *testing.T) {
		l := factory(1, 2, 3)
		seq := l.Values()

		first := slices.Collect(seq)
		l.Add(4)
		second := slices.Collect(seq)

		if !slices.Equal(first, []int{1, 2, 3}) {
			t.Errorf("first pass = %v", first)
		}
		if !slices.Equal(second, []int{1, 2, 3, 4}) {
			t.Errorf("second pass should see current state, got %v", second)
		}
	})

	t.Run(name+"/Iteration_FailFast", func(t *testing.T) {
		l := factory(1, 2, 3)

		defer func() {
			r := recover()
			err, ok := r.(error)
			if !ok || !errors.Is(err, lists.ErrConcurrentModification) {
				t.Errorf("recover() = %v, want ErrConcurrentModification", r)
			}
		}()
		for v := range l.Values() {
			if v == 1 {
				l.Add(100)
			}
		}
		t.Error("ranging over a modified list should panic")
	})

	t.Run(name+"/Iteration_SetAllowed", func(t *testing.T) {
		l := factory(1, 2, 3)
		for i, v := range l.All() {
			_ = l.Set(i, v*10)
		}
		if got := l.ToSlice(); !slices.Equal(got, []int{10, 20, 30}) {
			t.Errorf("Set during iteration: got %v", got)
		}
	})

	t.Run(name+"/Iterator", func(t *testing.T) {
		l := factory(4, 5, 6)
		it := l.Iterator()
		if it.Index() != -1 {
			t.Errorf("Index before Next = %d, want -1", it.Index())
		}

		var got []int
		for it.HasNext() {
			got = append(got, it.Next())
		}
		if !slices.Equal(got, []int{4, 5, 6}) {
			t.Errorf("Iterator yielded %v", got)
		}
		if it.Index() != 2 {
			t.Errorf("Index after last Next = %d, want 2", it.Index())
		}
		if it.Err() != nil {
			t.Errorf("Err() = %v, want nil", it.Err())
		}

		it = l.Iterator()
		it.Next()
		if _, err := l.RemoveAt(0); err != nil {
			t.Fatal(err)
		}
		if it.HasNext() {
			t.Error("HasNext after removal should be false")
		}
		if !errors.Is(it.Err(), lists.ErrConcurrentModification) {
			t.Errorf("Err() = %v, want ErrConcurrentModification", it.Err())
		}
		if v := it.Next(); v != 0 {
			t.Errorf("Next on invalidated iterator = %d, want zero value", v)
		}
	})
}

func TestArrayList_Specifics(t *testing.T) {
	t.Run("Clone", func(t *testing.T) {
		l := lists.NewArrayListFrom([]int{1, 2, 3})
		clone := l.Clone()

		if !slices.Equal(l.ToSlice(), clone.ToSlice()) {
			t.Error("Clone content mismatch")
		}

		// Verify independence
		_ = l.Set(0, 99)
		if v, _ := clone.Get(0); v == 99 {
			t.Error("Clone should be independent of original")
		}
	})

	t.Run("FromSlice_Copies", func(t *testing.T) {
		src := []int{1, 2}
		l := lists.NewArrayListFrom(src)
		src[0] = 42
		if v, _ := l.Get(0); v != 1 {
			t.Errorf("list shares storage with its input: Get(0) = %d", v)
		}
	})

	t.Run("FromSeq", func(t *testing.T) {
		l := lists.NewArrayListFromSeq(slices.Values([]int{7, 8, 9}), 0)
		if got := l.ToSlice(); !slices.Equal(got, []int{7, 8, 9}) {
			t.Errorf("FromSeq = %v", got)
		}
		if l := lists.NewArrayListFromSeq[int](nil, 4); !l.IsEmpty() {
			t.Error("nil seq should give an empty list")
		}
	})

	t.Run("String", func(t *testing.T) {
		l := lists.NewArrayList[int](0)
		l.Add(1, 2)
		if s := l.String(); s != "[1 2]" {
			t.Errorf("String() = %q, want \"[1 2]\"", s)
		}
	})

	t.Run("StructuralChanges", func(t *testing.T) {
		l := lists.NewArrayList[int](0)
		l.Add(1)
		it := l.Iterator()

		l.Add()
		_ = l.Set(0, 2)
		if !it.HasNext() || it.Err() != nil {
			t.Fatalf("empty Add and Set should not invalidate the iterator, err = %v", it.Err())
		}
		if v := it.Next(); v != 2 {
			t.Errorf("Next() = %d, want 2", v)
		}

		empty := lists.NewArrayList[int](0)
		it = empty.Iterator()
		empty.Clear()
		if it.HasNext() || !errors.Is(it.Err(), lists.ErrConcurrentModification) {
			t.Errorf("Clear on an empty list should still invalidate the iterator, err = %v", it.Err())
		}
	})

	t.Run("IndexFunc", func(t *testing.T) {
		l := lists.NewArrayListFrom([]int{1, 4, 6})
		if idx := l.IndexFunc(func(v int) bool { return v%2 == 0 }); idx != 1 {
			t.Errorf("IndexFunc(even) = %d, want 1", idx)
		}
		if idx := l.IndexFunc(func(v int) bool { return v > 9 }); idx != -1 {
			t.Errorf("IndexFunc(>9) = %d, want -1", idx)
		}
	})
}

func TestArrayList(t *testing.T) {
	RunListTests(t, "ArrayList", func(vals ...int) lists.List[int] {
		l := lists.NewArrayList[int](len(vals))
		l.Add(vals...)
		return l
	})
}
