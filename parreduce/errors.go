package parreduce

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the input has no elements: the
	// reduction of nothing is undefined, so the engine refuses it
	// instead of inventing a value.
	ErrEmptyInput = errors.New("parreduce: empty input")

	// ErrInvalidWorkerCount is returned for a worker count below 1.
	ErrInvalidWorkerCount = errors.New("parreduce: worker count must be at least 1")
)

// WorkerError reports a failed worker. The cause is carried verbatim
// and reachable through errors.Is/As; the run it belongs to produced no
// result.
type WorkerError struct {
	Worker int
	Part   Partition
	Err    error
}

func (e *WorkerError) Error() string {
	return fmt.Sprintf("parreduce: worker %d %s: %v", e.Worker, e.Part, e.Err)
}

func (e *WorkerError) Unwrap() error {
	return e.Err
}
