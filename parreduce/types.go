package parreduce

import (
	"context"
	"fmt"
)

// ReduceFunc reduces the elements of one partition to a single value.
// It must only read elems[part.Start:part.End] and must not mutate
// shared state. The context is the run's context and should be honored
// between logical steps when the reduction is long.
type ReduceFunc[T, R any] func(ctx context.Context, elems []T, part Partition) (R, error)

// CombineFunc merges two partial results into one. It must be
// associative and commutative (min, max, sum and friends). The engine
// folds partials in ascending partition order, so the fold is
// deterministic, but commutativity is still required: non-commutative
// combines are not supported.
type CombineFunc[R any] func(x, y R) R

// Partition is a half-open index range [Start, End) into the input.
// Partitions produced by the engine are never empty.
type Partition struct {
	Start int
	End   int
}

func (p Partition) Len() int {
	return p.End - p.Start
}

func (p Partition) String() string {
	return fmt.Sprintf("[%d,%d)", p.Start, p.End)
}

// partial is the unit of work result: one per worker, consumed exactly
// once by the coordinator.
type partial[R any] struct {
	worker int
	part   Partition
	value  R
	err    error
}
