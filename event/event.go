/*
Package event implements an in-process event with context-aware handlers.

Handlers run in the order they were added. Invoke works on a snapshot of the
handler list, so adding or removing handlers while an invocation is running
affects only later invocations.

Without an error handler the first failing handler aborts Invoke and its
error is returned. With one, every failure (a returned error or a recovered
panic) is passed to it and dispatch carries on.
*/
package event

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"kit/union"
)

// Handler reacts to one invocation of an event.
type Handler[T any] func(ctx context.Context, args T) error

// ErrorHandler receives handler failures. It may be called from several goroutines by InvokeParallel.
type ErrorHandler func(ctx context.Context, sub Subscription, err error)

// Subscription identifies an added handler.
type Subscription uint64

type entry[T any] struct {
	sub Subscription
	fn  Handler[T]
}

type config struct {
	name        string
	onError     ErrorHandler
	concurrency int
}

type Option func(*config)

// WithName sets the name used in log fields.
func WithName(name string) Option {
	return func(cfg *config) {
		cfg.name = name
	}
}

// WithErrorHandler makes failures go to h instead of aborting the invocation.
func WithErrorHandler(h ErrorHandler) Option {
	if h == nil {
		panic("event.WithErrorHandler: error handler cannot be nil")
	}
	return func(cfg *config) {
		cfg.onError = h
	}
}

// WithLogger installs an error handler that logs each failure at error level.
func WithLogger(logger *zap.Logger) Option {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(cfg *config) {
		cfg.onError = func(_ context.Context, sub Subscription, err error) {
			logger.Error("event handler failed",
				zap.String("event", cfg.name),
				zap.Uint64("handler", uint64(sub)),
				zap.Error(err))
		}
	}
}

// WithConcurrency caps how many handlers InvokeParallel runs at once. n <= 0 means no cap.
func WithConcurrency(n int) Option {
	return func(cfg *config) {
		cfg.concurrency = n
	}
}

type Event[T any] struct {
	mu       sync.Mutex
	handlers atomic.Pointer[[]entry[T]]
	nextID   Subscription
	cfg      config
}

// New returns an event configured by opts. The zero Event is ready to use with defaults.
func New[T any](opts ...Option) *Event[T] {
	e := &Event[T]{}
	for _, opt := range opts {
		opt(&e.cfg)
	}
	return e
}

func (e *Event[T]) snapshot() []entry[T] {
	if p := e.handlers.Load(); p != nil {
		return *p
	}
	return nil
}

// Add registers h and returns the subscription needed to remove it.
func (e *Event[T]) Add(h Handler[T]) Subscription {
	if h == nil {
		panic("event.Add: handler cannot be nil")
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nextID++
	next := append(slices.Clone(e.snapshot()), entry[T]{sub: e.nextID, fn: h})
	e.handlers.Store(&next)
	return e.nextID
}

// Remove unregisters the handler behind sub and reports whether it was registered.
func (e *Event[T]) Remove(sub Subscription) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	cur := e.snapshot()
	i := slices.IndexFunc(cur, func(en entry[T]) bool { return en.sub == sub })
	if i < 0 {
		return false
	}
	next := slices.Delete(slices.Clone(cur), i, i+1)
	e.handlers.Store(&next)
	return true
}

func (e *Event[T]) Len() int {
	return len(e.snapshot())
}

// Invoke calls every handler in order. It stops early when ctx ends, returning ctx.Err().
func (e *Event[T]) Invoke(ctx context.Context, args T) error {
	for _, en := range e.snapshot() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.dispatch(ctx, en, args); err != nil {
			return err
		}
	}
	return nil
}

// InvokeParallel calls every handler concurrently and waits for all of them.
// Without an error handler the first failure cancels the context seen by the others.
func (e *Event[T]) InvokeParallel(ctx context.Context, args T) error {
	g, gctx := errgroup.WithContext(ctx)
	if e.cfg.concurrency > 0 {
		g.SetLimit(e.cfg.concurrency)
	}
	for _, en := range e.snapshot() {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			return e.dispatch(gctx, en, args)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

// dispatch runs one handler. The returned error is non-nil only when no error handler took it.
func (e *Event[T]) dispatch(ctx context.Context, en entry[T], args T) error {
	err := union.Do(func() error { return en.fn(ctx, args) }).Err()
	if err == nil {
		return nil
	}
	if e.cfg.onError != nil {
		e.cfg.onError(ctx, en.sub, err)
		return nil
	}
	name := e.cfg.name
	if name == "" {
		name = "event"
	}
	return errors.Wrapf(err, "%s: handler %d", name, en.sub)
}
