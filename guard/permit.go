package guard

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/semaphore"
)

var (
	// ErrDisposed is returned by every acquisition on a disposed Guard,
	// including waits that were in progress when Dispose was called.
	ErrDisposed = errors.New("guard: disposed")
	// ErrReleased is returned when a permit is released twice or a handle is used after release.
	ErrReleased = errors.New("guard: permit already released")
)

// Permit is one unit taken from a weighted semaphore. Release gives it back exactly once.
type Permit struct {
	sem       *semaphore.Weighted
	released  atomic.Bool
	onRelease func()
}

// Enter waits for one unit of sem. On cancellation it returns ctx.Err() and takes nothing.
func Enter(ctx context.Context, sem *semaphore.Weighted) (*Permit, error) {
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	return &Permit{sem: sem}, nil
}

// TryEnter waits up to timeout for one unit of sem.
// Running out of time is not an error: it returns (nil, false, nil).
// A timeout <= 0 makes a single non-blocking attempt.
func TryEnter(ctx context.Context, sem *semaphore.Weighted, timeout time.Duration) (*Permit, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	if timeout <= 0 {
		if !sem.TryAcquire(1) {
			return nil, false, nil
		}
		return &Permit{sem: sem}, true, nil
	}

	tctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := sem.Acquire(tctx, 1); err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, false, nil
	}
	return &Permit{sem: sem}, true, nil
}

// Release returns the unit to the semaphore. A second call returns ErrReleased
// and leaves the semaphore untouched.
func (p *Permit) Release() error {
	if !p.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	if p.onRelease != nil {
		p.onRelease()
	}
	p.sem.Release(1)
	return nil
}

// Close is Release, so a Permit can be deferred or used as an io.Closer.
func (p *Permit) Close() error {
	return p.Release()
}

func (p *Permit) IsReleased() bool {
	return p.released.Load()
}
