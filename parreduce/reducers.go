package parreduce

import (
	"cmp"
	"context"
	"slices"
)

// Number covers the types Sum can add up.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Min returns the smallest element of elems, reduced across workers.
// A workers value of zero picks the default.
func Min[T cmp.Ordered](ctx context.Context, elems []T, workers int) (T, error) {
	return Compute(ctx, elems, workers,
		func(_ context.Context, s []T, p Partition) (T, error) {
			return slices.Min(s[p.Start:p.End]), nil
		},
		func(x, y T) T { return min(x, y) },
	)
}

// Max returns the largest element of elems, reduced across workers.
func Max[T cmp.Ordered](ctx context.Context, elems []T, workers int) (T, error) {
	return Compute(ctx, elems, workers,
		func(_ context.Context, s []T, p Partition) (T, error) {
			return slices.Max(s[p.Start:p.End]), nil
		},
		func(x, y T) T { return max(x, y) },
	)
}

// Sum adds up elems across workers. For floating point elements the
// grouping of additions depends on the partitioning, so the result can
// differ from a sequential sum by rounding.
func Sum[T Number](ctx context.Context, elems []T, workers int) (T, error) {
	return Compute(ctx, elems, workers,
		func(_ context.Context, s []T, p Partition) (T, error) {
			var sum T
			for _, v := range s[p.Start:p.End] {
				sum += v
			}
			return sum, nil
		},
		func(x, y T) T { return x + y },
	)
}
