/*
Package guard bounds how many callers may be inside a section at once.

A Guard hands out at most MaxCount permits. Acquire blocks until one is free,
AcquireContext additionally gives up when its context ends, and TryAcquire
waits at most a timeout and reports a miss as (nil, false, nil) rather than
an error. Every permit is released exactly once: a second Release reports
ErrReleased and does not change the count.

Waiters are not admitted in any particular order; do not rely on FIFO.

Guarded wraps a value so that it can only be read or written through a held
handle. With MaxCount > 1 several handles may be live at once, so use
Exclusive when the value needs mutual exclusion.
*/
package guard

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/semaphore"

	"kit/precond"
)

type Guard struct {
	sem      *semaphore.Weighted
	maxCount int
	inUse    atomic.Int64
	disposed atomic.Bool
	once     sync.Once

	// life ends on Dispose and interrupts every pending wait
	life context.Context
	kill context.CancelFunc
}

// Access is a held permit of a Guard.
type Access struct {
	permit *Permit
}

// Release returns the permit. Calling it again returns ErrReleased.
func (a *Access) Release() error { return a.permit.Release() }

// Close is Release, for defer and io.Closer.
func (a *Access) Close() error { return a.permit.Release() }

func (a *Access) IsReleased() bool { return a.permit.IsReleased() }

// New returns a Guard admitting maxCount holders at a time.
func New(maxCount int) (*Guard, error) {
	if err := precond.Positive("maxCount", maxCount); err != nil {
		return nil, err
	}
	life, kill := context.WithCancel(context.Background())
	return &Guard{
		sem:      semaphore.NewWeighted(int64(maxCount)),
		maxCount: maxCount,
		life:     life,
		kill:     kill,
	}, nil
}

// Acquire blocks until a permit is free or the guard is disposed.
func (g *Guard) Acquire() (*Access, error) {
	return g.AcquireContext(context.Background())
}

// AcquireContext waits for a permit. If ctx ends first it returns ctx.Err()
// without taking a permit.
func (g *Guard) AcquireContext(ctx context.Context) (*Access, error) {
	p, _, err := g.enter(ctx, 0, true)
	if err != nil {
		return nil, err
	}
	return &Access{permit: p}, nil
}

// TryAcquire waits at most timeout for a permit.
func (g *Guard) TryAcquire(timeout time.Duration) (*Access, bool, error) {
	return g.TryAcquireContext(context.Background(), timeout)
}

// TryAcquireContext is TryAcquire that also gives up when ctx ends, returning ctx.Err().
func (g *Guard) TryAcquireContext(ctx context.Context, timeout time.Duration) (*Access, bool, error) {
	p, ok, err := g.enter(ctx, timeout, false)
	if err != nil || !ok {
		return nil, false, err
	}
	return &Access{permit: p}, true, nil
}

func (g *Guard) enter(ctx context.Context, timeout time.Duration, wait bool) (*Permit, bool, error) {
	if g.disposed.Load() {
		return nil, false, ErrDisposed
	}

	wctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(g.life, cancel)
	defer stop()

	var (
		p   *Permit
		ok  bool
		err error
	)
	if wait {
		p, err = Enter(wctx, g.sem)
		ok = err == nil
	} else {
		p, ok, err = TryEnter(wctx, g.sem, timeout)
	}
	if err != nil {
		if ctx.Err() == nil && g.disposed.Load() {
			err = ErrDisposed
		}
		return nil, false, err
	}
	if !ok {
		return nil, false, nil
	}
	if g.disposed.Load() {
		_ = p.Release()
		return nil, false, ErrDisposed
	}

	// counted only once the permit is really held, so waiters never show as in use
	g.inUse.Add(1)
	p.onRelease = func() { g.inUse.Add(-1) }
	return p, true, nil
}

// Do runs fn while holding a permit. The permit is released however fn exits, panics included.
func (g *Guard) Do(ctx context.Context, fn func() error) error {
	a, err := g.AcquireContext(ctx)
	if err != nil {
		return err
	}
	defer a.Release()
	return fn()
}

// Dispose stops the guard. Pending and future acquisitions fail with ErrDisposed;
// permits already handed out stay valid and can still be released.
// Calling Dispose more than once is a no-op.
func (g *Guard) Dispose() {
	g.once.Do(func() {
		g.disposed.Store(true)
		g.kill()
	})
}

func (g *Guard) IsDisposed() bool {
	return g.disposed.Load()
}

// CurrentCount returns how many permits are free. It is a snapshot: a holder
// is counted from the moment its acquisition returns until its Release, so
// while an acquisition is completing the count may briefly read one higher
// than the semaphore, never lower. It always lies within [0, MaxCount].
func (g *Guard) CurrentCount() int {
	return g.maxCount - int(g.inUse.Load())
}

func (g *Guard) MaxCount() int {
	return g.maxCount
}

func (g *Guard) String() string {
	state := ""
	if g.IsDisposed() {
		state = ", disposed"
	}
	return fmt.Sprintf("Guard(%d/%d free%s)", g.CurrentCount(), g.maxCount, state)
}
