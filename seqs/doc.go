/*
Package seqs provides helpers for Go iterators (iter.Seq).

It covers:

  - **Shaping**: [Enumerate], [Chunk], [Take], [Skip].
  - **Queries**: [First], [Any], [All], [Count], and the count bounds
    [Minimum] and [Maximum], which stop reading as soon as the answer is known.
  - **Async predicates**: [AllAsync], [AnyAsync], [AggregateAsync] and
    [FoldAsync] take context-aware callbacks that may block or fail.
  - **Channels**: [Collect] drains a channel into a slice.

# Concurrency

[AllAsync] and [AnyAsync] run predicates one at a time by default. With
[WithParallel] every element gets its own goroutine from an errgroup, bounded
by [WithLimit]; as soon as the result is decided the shared context is
cancelled so the remaining predicates can stop early.

	ok, err := seqs.AllAsync(ctx, urls, reachable,
		seqs.WithParallel(true),
		seqs.WithLimit(8),
	)

# Error Handling

Invalid arguments (a chunk size or count below 1, a nil predicate) fail up
front with an error wrapping precond.ErrOutOfRange or precond.ErrNilArgument.
The first predicate error is returned as is.
*/
package seqs
