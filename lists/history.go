package lists

import (
	"fmt"
	"iter"

	"github.com/cockroachdb/errors"
)

/*
History is a list with a movable cursor, like browser history or an undo stack.

Indexes taken by Get, Set, Insert, RemoveAt and Move are relative to the
cursor: 0 is the current item, -1 the previous one, +1 the next one. Adding
while the cursor is not at the last item discards everything after the
cursor first, the way a new edit drops the redo branch.

History is not safe for concurrent use.
*/
type History[T any] struct {
	items   *ArrayList[T]
	current int // -1 iff items is empty
	limit   int
}

type historyConfig struct {
	limit    int
	capacity int
}

type HistoryOption func(*historyConfig)

// WithLimit bounds the number of items kept. When an Add would exceed it the
// oldest item is dropped. n <= 0 means unbounded.
func WithLimit(n int) HistoryOption {
	return func(cfg *historyConfig) {
		cfg.limit = n
	}
}

// WithCapacity preallocates room for n items.
func WithCapacity(n int) HistoryOption {
	return func(cfg *historyConfig) {
		cfg.capacity = n
	}
}

func NewHistory[T any](opts ...HistoryOption) *History[T] {
	cfg := &historyConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	capacity := cfg.capacity
	if cfg.limit > 0 && capacity > cfg.limit {
		capacity = cfg.limit
	}
	return &History[T]{
		items:   NewArrayList[T](capacity),
		current: -1,
		limit:   max(cfg.limit, 0),
	}
}

// HistoryOf returns a history holding values with the cursor on the last one.
func HistoryOf[T any](values ...T) *History[T] {
	h := NewHistory[T](WithCapacity(len(values)))
	h.Add(values...)
	return h
}

// Add appends each value in turn. Items after the cursor are dropped first and
// the cursor ends on the last value added.
func (h *History[T]) Add(values ...T) {
	for _, v := range values {
		h.items.Truncate(h.current + 1)
		h.items.Add(v)
		h.current = h.items.Size() - 1
		if over := h.items.Size() - h.limit; h.limit > 0 && over > 0 {
			_ = h.items.RemoveRange(0, over)
			h.current -= over
		}
	}
}

// abs translates a relative index into an absolute one, checking it against [0, size).
func (h *History[T]) abs(rel, size int) (int, error) {
	i := h.current + rel
	if i < 0 || i >= size {
		return 0, errors.Wrapf(ErrIndexOutOfBounds,
			"relative index %d from cursor %d, size %d", rel, h.current, h.items.Size())
	}
	return i, nil
}

// Move shifts the cursor by offset. The cursor is left untouched on error.
func (h *History[T]) Move(offset int) error {
	i, err := h.abs(offset, h.items.Size())
	if err != nil {
		return err
	}
	h.current = i
	return nil
}

// Back moves to the previous item.
func (h *History[T]) Back() error { return h.Move(-1) }

// Forward moves to the next item.
func (h *History[T]) Forward() error { return h.Move(1) }

func (h *History[T]) CanBack() bool { return h.current > 0 }

func (h *History[T]) CanForward() bool { return h.current < h.items.Size()-1 }

// TryBack moves back if possible and reports whether it did.
func (h *History[T]) TryBack() bool {
	if !h.CanBack() {
		return false
	}
	h.current--
	return true
}

// TryForward moves forward if possible and reports whether it did.
func (h *History[T]) TryForward() bool {
	if !h.CanForward() {
		return false
	}
	h.current++
	return true
}

// Current returns the item under the cursor. An empty history is out of bounds.
func (h *History[T]) Current() (T, error) {
	return h.Get(0)
}

func (h *History[T]) Get(rel int) (T, error) {
	i, err := h.abs(rel, h.items.Size())
	if err != nil {
		var zero T
		return zero, err
	}
	return h.items.Get(i)
}

func (h *History[T]) Set(rel int, value T) error {
	i, err := h.abs(rel, h.items.Size())
	if err != nil {
		return err
	}
	return h.items.Set(i, value)
}

// Insert places value at cursor+rel, which may be one past the last item.
// The cursor index is not adjusted, so Get(rel) returns value afterwards.
// On an empty history only rel 0 is valid and the value becomes current.
func (h *History[T]) Insert(rel int, value T) error {
	if h.items.IsEmpty() {
		if rel != 0 {
			return errors.Wrapf(ErrIndexOutOfBounds, "relative index %d into empty history", rel)
		}
		h.items.Add(value)
		h.current = 0
		return nil
	}
	i, err := h.abs(rel, h.items.Size()+1)
	if err != nil {
		return err
	}
	return h.items.Insert(i, value)
}

// Clone returns an independent copy with the same items, cursor and limit.
func (h *History[T]) Clone() *History[T] {
	return &History[T]{
		items:   h.items.Clone(),
		current: h.current,
		limit:   h.limit,
	}
}

// RemoveAt removes the item at cursor+rel and returns it.
func (h *History[T]) RemoveAt(rel int) (T, error) {
	i, err := h.abs(rel, h.items.Size())
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := h.items.Remove(i)
	if err != nil {
		return v, err
	}
	h.removed(i)
	return v, nil
}

// Remove deletes the first item, searching from the start, for which equal reports true.
func (h *History[T]) Remove(value T, equal func(a, b T) bool) bool {
	i := h.items.IndexFunc(func(x T) bool { return equal(x, value) })
	if i < 0 {
		return false
	}
	_, _ = h.items.Remove(i)
	h.removed(i)
	return true
}

// removed fixes the cursor after the item at absolute index i went away.
// Removing at or before the cursor steps it back, but never past the first item.
func (h *History[T]) removed(i int) {
	switch {
	case h.items.IsEmpty():
		h.current = -1
	case i <= h.current && h.current > 0:
		h.current--
	}
}

// IndexOf returns the position of the first match relative to the cursor.
func (h *History[T]) IndexOf(value T, equal func(a, b T) bool) (int, bool) {
	i := h.items.IndexFunc(func(x T) bool { return equal(x, value) })
	if i < 0 {
		return 0, false
	}
	return i - h.current, true
}

func (h *History[T]) Contains(value T, equal func(a, b T) bool) bool {
	_, ok := h.IndexOf(value, equal)
	return ok
}

func (h *History[T]) Clear() {
	h.items.Clear()
	h.current = -1
}

func (h *History[T]) Len() int { return h.items.Size() }

func (h *History[T]) IsEmpty() bool { return h.items.IsEmpty() }

// Cursor returns the absolute index of the current item, or -1 when empty.
func (h *History[T]) Cursor() int { return h.current }

// CountPrevious returns how many items lie before the cursor.
func (h *History[T]) CountPrevious() int { return max(h.current, 0) }

// CountNext returns how many items lie after the cursor.
func (h *History[T]) CountNext() int { return max(h.items.Size()-1-h.current, 0) }

// Values yields all items from oldest to newest.
func (h *History[T]) Values() iter.Seq[T] {
	return h.items.Values()
}

// All yields items from oldest to newest keyed by their index relative to the cursor.
func (h *History[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range h.items.All() {
			if !yield(i-h.current, v) {
				return
			}
		}
	}
}

// Ahead yields the items after the cursor, nearest first.
func (h *History[T]) Ahead() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, v := range h.items.All() {
			if i > h.current && !yield(v) {
				return
			}
		}
	}
}

// Behind yields the items before the cursor, nearest first.
func (h *History[T]) Behind() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i, v := range h.items.Backward() {
			if i < h.current && !yield(v) {
				return
			}
		}
	}
}

func (h *History[T]) ToSlice() []T {
	return h.items.ToSlice()
}

func (h *History[T]) String() string {
	return fmt.Sprintf("History%v@%d", h.items, h.current)
}
