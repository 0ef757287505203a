package guard

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

// Guarded holds a value that is reachable only through a Handle.
type Guarded[T any] struct {
	guard *Guard
	value atomic.Pointer[T]
}

// Handle is a held permit of a Guarded value. It stops working once released.
type Handle[T any] struct {
	permit *Permit
	owner  *Guarded[T]
}

// NewGuarded wraps value behind a Guard of maxCount permits.
func NewGuarded[T any](value T, maxCount int) (*Guarded[T], error) {
	g, err := New(maxCount)
	if err != nil {
		return nil, err
	}
	gv := &Guarded[T]{guard: g}
	gv.value.Store(&value)
	return gv, nil
}

// Exclusive wraps value so that at most one handle exists at a time.
func Exclusive[T any](value T) *Guarded[T] {
	gv, err := NewGuarded(value, 1)
	if err != nil {
		// 1 is always a valid count
		panic(err)
	}
	return gv
}

func (gv *Guarded[T]) handle(a *Access) *Handle[T] {
	return &Handle[T]{permit: a.permit, owner: gv}
}

func (gv *Guarded[T]) Acquire() (*Handle[T], error) {
	return gv.AcquireContext(context.Background())
}

func (gv *Guarded[T]) AcquireContext(ctx context.Context) (*Handle[T], error) {
	a, err := gv.guard.AcquireContext(ctx)
	if err != nil {
		return nil, err
	}
	return gv.handle(a), nil
}

func (gv *Guarded[T]) TryAcquire(timeout time.Duration) (*Handle[T], bool, error) {
	return gv.TryAcquireContext(context.Background(), timeout)
}

func (gv *Guarded[T]) TryAcquireContext(ctx context.Context, timeout time.Duration) (*Handle[T], bool, error) {
	a, ok, err := gv.guard.TryAcquireContext(ctx, timeout)
	if err != nil || !ok {
		return nil, false, err
	}
	return gv.handle(a), true, nil
}

// Do runs fn with a handle and releases it afterwards, panics included.
func (gv *Guarded[T]) Do(ctx context.Context, fn func(h *Handle[T]) error) error {
	h, err := gv.AcquireContext(ctx)
	if err != nil {
		return err
	}
	defer h.Release()
	return fn(h)
}

func (gv *Guarded[T]) Dispose()          { gv.guard.Dispose() }
func (gv *Guarded[T]) IsDisposed() bool  { return gv.guard.IsDisposed() }
func (gv *Guarded[T]) CurrentCount() int { return gv.guard.CurrentCount() }
func (gv *Guarded[T]) MaxCount() int     { return gv.guard.MaxCount() }

func (gv *Guarded[T]) String() string {
	return fmt.Sprintf("Guarded[%T](%d/%d free)", *new(T), gv.CurrentCount(), gv.MaxCount())
}

// Value returns the protected value, or ErrReleased once the handle is released.
func (h *Handle[T]) Value() (T, error) {
	if h.permit.IsReleased() {
		var zero T
		return zero, ErrReleased
	}
	return *h.owner.value.Load(), nil
}

// Set replaces the protected value, or returns ErrReleased once the handle is released.
func (h *Handle[T]) Set(value T) error {
	if h.permit.IsReleased() {
		return ErrReleased
	}
	h.owner.value.Store(&value)
	return nil
}

// Release returns the permit. Calling it again returns ErrReleased.
func (h *Handle[T]) Release() error { return h.permit.Release() }

func (h *Handle[T]) Close() error { return h.permit.Release() }
