package util

import "sync"

// ParReduce reduces a set of items in parallel using go-routines.  The items
// are divided into (roughly) equally sized chunks, each chunk is reduced by
// the given function in its own go-routine, and the partial results are then
// joined.  The join function must be associative and commutative, and the
// reduce function must agree with it (i.e. reduce over a concatenation
// equals join of the reduces); under those conditions the result is
// identical to a single serial reduce, regardless of how the work is
// partitioned.  The items slice must be non-empty.
func ParReduce[T any, R any](items []T, chunks uint, reduce func([]T) R, join func(R, R) R) R {
	n := uint(len(items))
	//
	if n == 0 {
		panic("cannot reduce empty set of items")
	}
	// Fall back to a plain scan when splitting is pointless.
	if chunks <= 1 || n < chunks*2 {
		return reduce(items)
	}
	//
	var (
		parts = make([]R, chunks)
		wg    sync.WaitGroup
		step  = n / chunks
	)
	// Fork one go-routine per chunk, with the last chunk absorbing the
	// remainder.
	for i := uint(0); i < chunks; i++ {
		lo, hi := i*step, (i+1)*step
		//
		if i+1 == chunks {
			hi = n
		}
		//
		wg.Add(1)
		//
		go func(i, lo, hi uint) {
			defer wg.Done()
			parts[i] = reduce(items[lo:hi])
		}(i, lo, hi)
	}
	// Join
	wg.Wait()
	//
	acc := parts[0]
	//
	for _, part := range parts[1:] {
		acc = join(acc, part)
	}
	// Done
	return acc
}
