package lists

import (
	"fmt"
	"iter"
	"slices"

	"github.com/cockroachdb/errors"

	"kit/precond"
)

// ErrIndexOutOfBounds is returned for any index outside the list.
// It is precond.ErrOutOfRange, so either sentinel matches with errors.Is.
var ErrIndexOutOfBounds = precond.ErrOutOfRange

// ArrayList is a slice-backed list. It is the storage behind History.
type ArrayList[T any] struct {
	data []T
}

func NewArrayList[T any](initialCapacity int) *ArrayList[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	return &ArrayList[T]{
		data: make([]T, 0, initialCapacity),
	}
}

func (al *ArrayList[T]) Add(values ...T) {
	al.data = append(al.data, values...)
}

func (al *ArrayList[T]) checkIndex(index, size int) error {
	if index < 0 || index >= size {
		return errors.Wrapf(ErrIndexOutOfBounds, "index %d, size %d", index, len(al.data))
	}
	return nil
}

// Insert places value at index, shifting later elements right. index == Size() appends.
func (al *ArrayList[T]) Insert(index int, value T) error {
	if err := al.checkIndex(index, len(al.data)+1); err != nil {
		return err
	}
	al.data = slices.Insert(al.data, index, value)
	return nil
}

func (al *ArrayList[T]) Get(index int) (T, error) {
	if err := al.checkIndex(index, len(al.data)); err != nil {
		var zero T
		return zero, err
	}
	return al.data[index], nil
}

func (al *ArrayList[T]) Set(index int, value T) error {
	if err := al.checkIndex(index, len(al.data)); err != nil {
		return err
	}
	al.data[index] = value
	return nil
}

func (al *ArrayList[T]) Remove(index int) (T, error) {
	if err := al.checkIndex(index, len(al.data)); err != nil {
		var zero T
		return zero, err
	}
	removed := al.data[index]
	// slices.Delete zeroes the vacated tail slot
	al.data = slices.Delete(al.data, index, index+1)
	return removed, nil
}

// RemoveRange removes elements from index 'start' (inclusive) to 'end' (exclusive).
func (al *ArrayList[T]) RemoveRange(start, end int) error {
	if start < 0 || end > len(al.data) || start > end {
		return errors.Wrapf(ErrIndexOutOfBounds, "range [%d, %d), size %d", start, end, len(al.data))
	}
	al.data = slices.Delete(al.data, start, end)
	return nil
}

// Truncate drops every element from index n on. n >= Size() is a no-op.
func (al *ArrayList[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n >= len(al.data) {
		return
	}
	clear(al.data[n:])
	al.data = al.data[:n]
}

func (al *ArrayList[T]) Size() int {
	return len(al.data)
}

func (al *ArrayList[T]) IsEmpty() bool {
	return len(al.data) == 0
}

func (al *ArrayList[T]) Clear() {
	// clear the underlying array to let elements be GCed
	clear(al.data)
	al.data = al.data[:0]
}

// Clone returns a shallow copy of the list.
// If T is a pointer or reference type, the referenced data is shared.
func (al *ArrayList[T]) Clone() *ArrayList[T] {
	return &ArrayList[T]{data: slices.Clone(al.data)}
}

// String implements fmt.Stringer for easier debugging.
func (al *ArrayList[T]) String() string {
	return fmt.Sprintf("%v", al.data)
}

func (al *ArrayList[T]) IndexFunc(predicate func(T) bool) int {
	return slices.IndexFunc(al.data, predicate)
}

func (al *ArrayList[T]) Values() iter.Seq[T] {
	return slices.Values(al.data)
}

func (al *ArrayList[T]) All() iter.Seq2[int, T] {
	return slices.All(al.data)
}

func (al *ArrayList[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(al.data)
}

// ToSlice returns a copy of the elements.
func (al *ArrayList[T]) ToSlice() []T {
	return slices.Clone(al.data)
}
