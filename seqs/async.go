package seqs

import (
	"context"
	"iter"
	"sync/atomic"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"kit/precond"
)

// Predicate is a check that may block, fail, or observe cancellation.
type Predicate[T any] func(ctx context.Context, v T) (bool, error)

type asyncConfig struct {
	parallel bool
	limit    int
}

type AsyncOption func(*asyncConfig)

// WithParallel runs the predicate for all elements concurrently instead of one by one.
func WithParallel(parallel bool) AsyncOption {
	return func(cfg *asyncConfig) {
		cfg.parallel = parallel
	}
}

// WithLimit caps the number of predicates running at once in parallel mode. n <= 0 means no cap.
func WithLimit(n int) AsyncOption {
	return func(cfg *asyncConfig) {
		cfg.limit = n
	}
}

// errDecided short-circuits a parallel run once the answer is known.
var errDecided = errors.New("seqs: result decided")

// AllAsync reports whether predicate holds for every element.
// The first predicate error is returned. In parallel mode the remaining
// predicates see a cancelled context once the answer is known.
func AllAsync[T any](ctx context.Context, seq iter.Seq[T], predicate Predicate[T], opts ...AsyncOption) (bool, error) {
	miss, err := findAsync(ctx, seq, predicate, false, opts)
	return !miss, err
}

// AnyAsync reports whether predicate holds for some element.
func AnyAsync[T any](ctx context.Context, seq iter.Seq[T], predicate Predicate[T], opts ...AsyncOption) (bool, error) {
	return findAsync(ctx, seq, predicate, true, opts)
}

// findAsync reports whether some element's predicate result equals want.
func findAsync[T any](ctx context.Context, seq iter.Seq[T], predicate Predicate[T], want bool, opts []AsyncOption) (bool, error) {
	if err := precond.NotNil("predicate", predicate); err != nil {
		return false, err
	}
	cfg := asyncConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	if !cfg.parallel {
		for v := range seq {
			if err := ctx.Err(); err != nil {
				return false, err
			}
			ok, err := predicate(ctx, v)
			if err != nil {
				return false, err
			}
			if ok == want {
				return true, nil
			}
		}
		return false, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	if cfg.limit > 0 {
		g.SetLimit(cfg.limit)
	}
	var found atomic.Bool
	for v := range seq {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			ok, err := predicate(gctx, v)
			if err != nil {
				return err
			}
			if ok == want {
				found.Store(true)
				return errDecided
			}
			return nil
		})
	}
	err := g.Wait()
	switch {
	case errors.Is(err, errDecided):
		return true, nil
	case err != nil:
		return false, err
	case ctx.Err() != nil:
		return false, ctx.Err()
	}
	return found.Load(), nil
}

// AggregateAsync folds seq using its first element as the seed.
// An empty seq is precond.ErrEmpty.
func AggregateAsync[T any](ctx context.Context, seq iter.Seq[T], fn func(ctx context.Context, acc, v T) (T, error)) (T, error) {
	var (
		acc    T
		seeded bool
	)
	for v := range seq {
		if !seeded {
			acc, seeded = v, true
			continue
		}
		if err := ctx.Err(); err != nil {
			return acc, err
		}
		next, err := fn(ctx, acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	if !seeded {
		return acc, errors.Wrap(precond.ErrEmpty, "aggregate")
	}
	return acc, nil
}

// FoldAsync folds seq into initial, element by element.
func FoldAsync[T, A any](ctx context.Context, seq iter.Seq[T], initial A, fn func(ctx context.Context, acc A, v T) (A, error)) (A, error) {
	acc := initial
	for v := range seq {
		if err := ctx.Err(); err != nil {
			return acc, err
		}
		next, err := fn(ctx, acc, v)
		if err != nil {
			return acc, err
		}
		acc = next
	}
	return acc, nil
}

// Collect drains ch into a slice until ch is closed.
// If ctx ends first it returns what was read so far together with ctx.Err().
func Collect[T any](ctx context.Context, ch <-chan T) ([]T, error) {
	var out []T
	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case v, ok := <-ch:
			if !ok {
				return out, nil
			}
			out = append(out, v)
		}
	}
}
