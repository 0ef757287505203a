package sliceutil

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"

	"kit/mathx"
	"kit/precond"
)

// Segment is a fixed window [offset, offset+count) over a slice.
// Reads and writes go through to the underlying slice; the window never grows.
type Segment[T any] struct {
	data   []T
	offset int
	count  int
}

// NewSegment returns the window of count elements starting at offset.
func NewSegment[T any](data []T, offset, count int) (Segment[T], error) {
	if err := precond.InRange("offset", offset, 0, len(data), mathx.RightInclusive()); err != nil {
		return Segment[T]{}, err
	}
	if err := precond.InRange("count", count, 0, len(data)-offset, mathx.RightInclusive()); err != nil {
		return Segment[T]{}, err
	}
	return Segment[T]{data: data, offset: offset, count: count}, nil
}

// Segments splits data into consecutive windows of size elements, the last one possibly shorter.
func Segments[T any](data []T, size int) ([]Segment[T], error) {
	if err := precond.Positive("size", size); err != nil {
		return nil, err
	}
	res := make([]Segment[T], 0, chunkCount(len(data), size))
	for i := 0; i < len(data); i += size {
		res = append(res, Segment[T]{data: data, offset: i, count: min(size, len(data)-i)})
	}
	return res, nil
}

func (s Segment[T]) Len() int { return s.count }

// Offset returns where the window starts in the underlying slice.
func (s Segment[T]) Offset() int { return s.offset }

func (s Segment[T]) Get(index int) (T, error) {
	if err := precond.InRange("index", index, 0, s.count); err != nil {
		var zero T
		return zero, err
	}
	return s.data[s.offset+index], nil
}

func (s Segment[T]) Set(index int, value T) error {
	if err := precond.InRange("index", index, 0, s.count); err != nil {
		return err
	}
	s.data[s.offset+index] = value
	return nil
}

// IndexFunc returns the first index within the window satisfying predicate, or -1.
func (s Segment[T]) IndexFunc(predicate func(T) bool) int {
	for i, v := range s.All() {
		if predicate(v) {
			return i
		}
	}
	return -1
}

// Slice narrows the window to start at index and run to its current end.
func (s Segment[T]) Slice(index int) (Segment[T], error) {
	return s.SliceN(index, s.count-index)
}

// SliceN narrows the window to count elements starting at index.
func (s Segment[T]) SliceN(index, count int) (Segment[T], error) {
	if err := precond.InRange("index", index, 0, s.count, mathx.RightInclusive()); err != nil {
		return Segment[T]{}, err
	}
	if count < 0 || count > s.count-index {
		return Segment[T]{}, errors.Wrapf(precond.ErrOutOfRange,
			"count %d exceeds the %d elements left after index %d", count, s.count-index, index)
	}
	return Segment[T]{data: s.data, offset: s.offset + index, count: count}, nil
}

// View returns the window as a slice sharing the underlying array.
func (s Segment[T]) View() []T {
	return s.data[s.offset : s.offset+s.count : s.offset+s.count]
}

func (s Segment[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.View() {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Segment[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.View() {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (s Segment[T]) String() string {
	return fmt.Sprintf("%v", s.View())
}
