package parreduce

import "context"

// gather is the fan-in edge between workers and the coordinator. It is
// buffered to the number of expected partials so a worker can always
// deliver and exit, even when the coordinator already gave up on a
// canceled run.
type gather[T any] struct {
	ch chan T
}

func newGather[T any](capacity int) *gather[T] {
	return &gather[T]{ch: make(chan T, capacity)}
}

// Send delivers one value. It never blocks as long as the gather was
// sized for every sender.
func (g *gather[T]) Send(ctx context.Context, data T) {
	select {
	case <-ctx.Done():
	case g.ch <- data:
	}
}

// Recv blocks until a value is available or the context is done, in
// which case it reports false.
func (g *gather[T]) Recv(ctx context.Context) (data T, ok bool) {
	select {
	case <-ctx.Done():
		return data, false
	case data = <-g.ch:
		return data, true
	}
}
