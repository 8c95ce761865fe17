package parreduce

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tymbaca/parreduce-go/pkg/tracer"
)

// forkWorker binds one worker to its own copy of the partition bounds
// and starts it. Bounds travel as explicit parameters so no worker ever
// aliases a loop variable.
func forkWorker[T, R any](ctx context.Context, log *slog.Logger, id int, elems []T, part Partition, reduceFn ReduceFunc[T, R], out *gather[partial[R]]) {
	w := &worker[T, R]{
		id:       id,
		log:      log,
		elems:    elems,
		part:     part,
		reduceFn: reduceFn,
		out:      out,
	}

	go w.run(ctx)
}

type worker[T, R any] struct {
	id  int
	log *slog.Logger

	elems    []T
	part     Partition
	reduceFn ReduceFunc[T, R]

	out *gather[partial[R]]
}

func (w *worker[T, R]) run(ctx context.Context) {
	ctx, span := tracer.Start(ctx, "worker", trace.WithAttributes(attribute.Int("id", w.id)))
	defer span.End()

	w.log.Debug("worker: reducing", "id", w.id, "partition", w.part)

	p := partial[R]{worker: w.id, part: w.part}
	p.value, p.err = w.reduce(ctx)

	if p.err != nil {
		w.log.Debug("worker: failed", "id", w.id, "partition", w.part, "error", p.err)
	} else {
		w.log.Debug("worker: done", "id", w.id, "partition", w.part)
	}

	w.out.Send(ctx, p)
	GlobalStats.Partials.Add(1)
}

// reduce invokes the user function over the worker's partition. A panic
// in the user function is recovered and reported as this worker's
// error, so one bad partition aborts the run instead of the process.
func (w *worker[T, R]) reduce(ctx context.Context) (result R, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reduce panic: %v\n%s", r, debug.Stack())
		}
	}()

	return w.reduceFn(ctx, w.elems, w.part)
}
