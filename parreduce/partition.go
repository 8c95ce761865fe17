package parreduce

import "fmt"

// Partitions splits the index range [0,n) into at most workers
// contiguous, non-overlapping, non-empty partitions that cover the
// whole range. It returns min(n, workers) partitions so that a short
// input never yields an empty one, and no partitions at all when n is
// zero.
//
// Sizes are as equal as possible; when n does not divide evenly, the
// earlier partitions absorb the remainder: n=7, workers=2 gives
// [0,4) [4,7).
func Partitions(n, workers int) ([]Partition, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	if n < 0 {
		return nil, fmt.Errorf("parreduce: negative input length %d", n)
	}
	if n == 0 {
		return nil, nil
	}

	count := min(n, workers)
	base, rem := n/count, n%count

	parts := make([]Partition, 0, count)
	start := 0
	for i := range count {
		size := base
		if i < rem {
			size++
		}
		parts = append(parts, Partition{Start: start, End: start + size})
		start += size
	}

	return parts, nil
}
