package lists_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kit/lists"
)

func eq(a, b int) bool { return a == b }

func current(t *testing.T, h *lists.History[int]) int {
	t.Helper()
	v, err := h.Current()
	require.NoError(t, err)
	return v
}

func TestHistoryEmpty(t *testing.T) {
	h := lists.NewHistory[int]()

	assert.True(t, h.IsEmpty())
	assert.Equal(t, -1, h.Cursor())
	assert.Zero(t, h.CountPrevious())
	assert.Zero(t, h.CountNext())
	assert.False(t, h.TryBack())
	assert.False(t, h.TryForward())

	_, err := h.Current()
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, h.Move(0), lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, h.Set(0, 1), lists.ErrIndexOutOfBounds)
	_, err = h.RemoveAt(0)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)

	h.Add(7)
	assert.Equal(t, 0, h.Cursor())
	assert.Equal(t, 7, current(t, h))
}

func TestHistoryDivergentAdd(t *testing.T) {
	tests := []struct {
		name   string
		start  []int
		move   int
		add    int
		want   []int
		cursor int
	}{
		{"at tail appends", []int{1, 2, 3, 4}, 0, 5, []int{1, 2, 3, 4, 5}, 4},
		{"two back drops redo branch", []int{1, 2, 3, 4}, -2, 5, []int{1, 2, 5}, 2},
		{"one back", []int{1, 2}, -1, 3, []int{1, 3}, 1},
		{"back to first", []int{1, 2, 3}, -2, 9, []int{1, 9}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := lists.HistoryOf(tt.start...)
			require.NoError(t, h.Move(tt.move))
			h.Add(tt.add)
			assert.Equal(t, tt.want, h.ToSlice())
			assert.Equal(t, tt.cursor, h.Cursor())
			assert.Equal(t, tt.add, current(t, h))
			assert.False(t, h.CanForward())
		})
	}
}

func TestHistoryNavigation(t *testing.T) {
	h := lists.HistoryOf(1, 2, 3)

	require.NoError(t, h.Back())
	require.NoError(t, h.Back())
	assert.Equal(t, 1, current(t, h))
	assert.ErrorIs(t, h.Back(), lists.ErrIndexOutOfBounds)
	assert.Equal(t, 0, h.Cursor(), "failed move must not change the cursor")

	assert.True(t, h.TryForward())
	assert.Equal(t, 2, current(t, h))
	require.NoError(t, h.Forward())
	assert.False(t, h.TryForward())
	assert.ErrorIs(t, h.Move(1), lists.ErrIndexOutOfBounds)
	assert.True(t, h.TryBack())
	assert.Equal(t, 2, current(t, h))

	require.NoError(t, h.Move(0))
	require.NoError(t, h.Move(1))
	assert.Equal(t, 3, current(t, h))
}

func TestHistoryRelativeBounds(t *testing.T) {
	h := lists.HistoryOf(1, 2, 3, 4)
	require.NoError(t, h.Move(-2))

	// cursor on index 1: valid relative indexes are [-1, 2]
	tests := []struct {
		rel  int
		want int
		ok   bool
	}{
		{-2, 0, false},
		{-1, 1, true},
		{0, 2, true},
		{2, 4, true},
		{3, 0, false},
	}
	for _, tt := range tests {
		v, err := h.Get(tt.rel)
		if !tt.ok {
			assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds, "Get(%d)", tt.rel)
			continue
		}
		require.NoError(t, err, "Get(%d)", tt.rel)
		assert.Equal(t, tt.want, v, "Get(%d)", tt.rel)
	}

	require.NoError(t, h.Set(-1, 10))
	assert.Equal(t, []int{10, 2, 3, 4}, h.ToSlice())
}

func TestHistoryInsert(t *testing.T) {
	h := lists.HistoryOf(1, 2, 3)

	tests := []struct {
		rel    int
		value  int
		items  []int
		cursor int
	}{
		{0, 9, []int{1, 2, 9, 3}, 2},
		{2, 7, []int{1, 2, 9, 3, 7}, 2},
		{-2, 0, []int{0, 1, 2, 9, 3, 7}, 2},
		{4, 8, []int{0, 1, 2, 9, 3, 7, 8}, 2},
	}
	for _, tt := range tests {
		require.NoError(t, h.Insert(tt.rel, tt.value), "Insert(%d)", tt.rel)
		assert.Equal(t, tt.items, h.ToSlice(), "Insert(%d)", tt.rel)
		assert.Equal(t, tt.cursor, h.Cursor(), "Insert(%d)", tt.rel)

		got, err := h.Get(tt.rel)
		require.NoError(t, err)
		assert.Equal(t, tt.value, got, "Get(%d) after Insert(%d)", tt.rel, tt.rel)
	}
	assert.Equal(t, 2, current(t, h))

	assert.ErrorIs(t, h.Insert(-3, 0), lists.ErrIndexOutOfBounds)
	assert.ErrorIs(t, h.Insert(6, 0), lists.ErrIndexOutOfBounds)

	empty := lists.NewHistory[int]()
	assert.ErrorIs(t, empty.Insert(1, 5), lists.ErrIndexOutOfBounds)
	require.NoError(t, empty.Insert(0, 5))
	assert.Equal(t, 5, current(t, empty))
}

func TestHistoryRemoveAt(t *testing.T) {
	h := lists.HistoryOf(1, 2, 3, 4)

	v, err := h.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
	assert.Equal(t, 3, current(t, h))

	v, err = h.RemoveAt(-2)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, []int{2, 3}, h.ToSlice())
	assert.Equal(t, 3, current(t, h))

	require.NoError(t, h.Back())
	_, err = h.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 0, h.Cursor(), "cursor stays on the first item")
	assert.Equal(t, 3, current(t, h))

	_, err = h.RemoveAt(1)
	assert.ErrorIs(t, err, lists.ErrIndexOutOfBounds)

	_, err = h.RemoveAt(0)
	require.NoError(t, err)
	assert.True(t, h.IsEmpty())
	assert.Equal(t, -1, h.Cursor())

	h = lists.HistoryOf(1, 2, 3)
	require.NoError(t, h.Move(-2))
	_, err = h.RemoveAt(2)
	require.NoError(t, err)
	assert.Equal(t, 1, current(t, h), "removing after the cursor leaves it in place")
}

func TestHistoryRemoveAndSearch(t *testing.T) {
	h := lists.HistoryOf(1, 2, 3, 2)

	rel, ok := h.IndexOf(1, eq)
	assert.True(t, ok)
	assert.Equal(t, -3, rel)
	_, ok = h.IndexOf(9, eq)
	assert.False(t, ok)
	assert.True(t, h.Contains(3, eq))

	assert.True(t, h.Remove(2, eq))
	assert.Equal(t, []int{1, 3, 2}, h.ToSlice())
	assert.Equal(t, 2, h.Cursor())
	assert.Equal(t, 2, current(t, h))

	assert.False(t, h.Remove(9, eq))
	assert.Equal(t, 3, h.Len())
}

func TestHistoryCountsAndIteration(t *testing.T) {
	h := lists.HistoryOf(1, 2, 3, 4)
	require.NoError(t, h.Move(-1))

	assert.Equal(t, 2, h.CountPrevious())
	assert.Equal(t, 1, h.CountNext())
	assert.True(t, h.CanBack())
	assert.True(t, h.CanForward())

	assert.Equal(t, []int{1, 2, 3, 4}, slices.Collect(h.Values()))
	assert.Equal(t, []int{4}, slices.Collect(h.Ahead()))
	assert.Equal(t, []int{2, 1}, slices.Collect(h.Behind()))

	rels := map[int]int{}
	for rel, v := range h.All() {
		rels[rel] = v
	}
	assert.Equal(t, map[int]int{-2: 1, -1: 2, 0: 3, 1: 4}, rels)

	// early break stops the iteration
	var first []int
	for v := range h.Behind() {
		first = append(first, v)
		break
	}
	assert.Equal(t, []int{2}, first)

	assert.Equal(t, "History[1 2 3 4]@2", h.String())

	h.Clear()
	assert.True(t, h.IsEmpty())
	assert.Equal(t, -1, h.Cursor())
	assert.Empty(t, slices.Collect(h.Values()))
}

func TestHistoryLimit(t *testing.T) {
	h := lists.NewHistory[int](lists.WithLimit(3), lists.WithCapacity(10))
	h.Add(1, 2, 3, 4, 5)
	assert.Equal(t, []int{3, 4, 5}, h.ToSlice())
	assert.Equal(t, 2, h.Cursor())

	require.NoError(t, h.Back())
	h.Add(6)
	assert.Equal(t, []int{3, 4, 6}, h.ToSlice())
	assert.Equal(t, 6, current(t, h))
}

func TestHistoryClone(t *testing.T) {
	h := lists.NewHistory[int](lists.WithLimit(3))
	h.Add(1, 2, 3)
	require.NoError(t, h.Back())

	c := h.Clone()
	assert.Equal(t, h.ToSlice(), c.ToSlice())
	assert.Equal(t, h.Cursor(), c.Cursor())

	c.Add(9)
	assert.Equal(t, []int{1, 2, 9}, c.ToSlice())
	assert.Equal(t, []int{1, 2, 3}, h.ToSlice(), "clone must not share storage")
	assert.Equal(t, 2, current(t, h))

	c.Add(10)
	assert.Equal(t, []int{2, 9, 10}, c.ToSlice(), "clone keeps the limit")
}
