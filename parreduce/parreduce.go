// Package parreduce reduces a slice to a single value using several
// workers: the input is split into contiguous partitions, one worker
// goroutine reduces each partition, and the coordinator joins the
// workers and combines their partial results. All workers are forked
// before any is awaited, workers only read the shared input over
// disjoint ranges, and the coordinator folds the partials alone after
// the join, so no locks guard the data or result path.
package parreduce

import (
	"context"
	"encoding/json"
	"log/slog"
	"runtime"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/tymbaca/parreduce-go/pkg/tracer"
)

// Engine runs reductions over []T producing an R. A zero worker count
// means runtime.GOMAXPROCS(0). Engines are stateless across runs and
// safe for concurrent use.
type Engine[T, R any] struct {
	name      string
	workers   int
	reduceFn  ReduceFunc[T, R]
	combineFn CombineFunc[R]
	cache     Cache
	log       *slog.Logger
}

type config struct {
	name    string
	workers int
	cache   Cache
	log     *slog.Logger
}

type Option func(*config)

// WithName labels the engine in logs, traces and cache keys.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithWorkers sets the number of workers. Zero keeps the default of
// runtime.GOMAXPROCS(0); a negative count makes Run fail with
// ErrInvalidWorkerCount.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithCache reuses results of earlier runs over identical inputs. See
// Cache for the encoding requirements this puts on T and R.
func WithCache(cache Cache) Option {
	return func(c *config) {
		c.cache = cache
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *config) {
		c.log = log
	}
}

func New[T, R any](reduceFn ReduceFunc[T, R], combineFn CombineFunc[R], opts ...Option) *Engine[T, R] {
	cfg := config{name: "reduce"}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.log == nil {
		cfg.log = slog.Default()
	}

	return &Engine[T, R]{
		name:      cfg.name,
		workers:   cfg.workers,
		reduceFn:  reduceFn,
		combineFn: combineFn,
		cache:     cfg.cache,
		log:       cfg.log,
	}
}

// Compute is the one-call form of the engine: split elems across
// workers, reduce every partition concurrently and combine the partial
// results. A workers value of zero picks the default.
func Compute[T, R any](ctx context.Context, elems []T, workers int, reduceFn ReduceFunc[T, R], combineFn CombineFunc[R]) (R, error) {
	return New(reduceFn, combineFn, WithWorkers(workers)).Run(ctx, elems)
}

// Run reduces elems. It blocks until every worker has reported, then
// either returns the combined result or the error of the leftmost
// failed worker. There are no retries and no partial results: a failed
// worker fails the whole run, and the caller decides what to do next.
//
// Run treats elems as immutable for its duration; mutating the slice
// concurrently is the caller's bug.
func (e *Engine[T, R]) Run(ctx context.Context, elems []T) (R, error) {
	var zero R

	runID := uuid.NewString()[:8]
	log := e.log.With("name", e.name, "run", runID)

	ctx, span := tracer.Start(ctx, "run", trace.WithAttributes(
		attribute.String("name", e.name),
		attribute.String("run", runID),
		attribute.Int("len", len(elems)),
	))
	defer span.End()

	GlobalStats.Runs.Add(1)

	if len(elems) == 0 {
		GlobalStats.RunsFailed.Add(1)
		return zero, ErrEmptyInput
	}

	workers := e.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	parts, err := Partitions(len(elems), workers)
	if err != nil {
		GlobalStats.RunsFailed.Add(1)
		return zero, err
	}

	var key string
	if e.cache != nil {
		k, kerr := cacheKey(e.name, elems)
		if kerr != nil {
			log.Debug("run: input not cacheable", "error", kerr)
		} else {
			key = k
			if res, ok := e.cacheLookup(ctx, key); ok {
				GlobalStats.CacheHits.Add(1)
				log.Info("run: cache hit", "key", key)
				return res, nil
			}
			GlobalStats.CacheMisses.Add(1)
		}
	}

	log.Info("run: dispatching", "len", len(elems), "workers", workers, "partitions", len(parts))

	// fork phase: every worker starts before any is awaited
	out := newGather[partial[R]](len(parts))
	for id, part := range parts {
		forkWorker(ctx, log, id, elems, part, e.reduceFn, out)
	}

	// join phase: the only blocking point of a run
	partials := make([]partial[R], len(parts))
	for range parts {
		p, ok := out.Recv(ctx)
		if !ok {
			GlobalStats.RunsFailed.Add(1)
			log.Warn("run: canceled", "error", ctx.Err())
			return zero, ctx.Err()
		}
		partials[p.worker] = p
	}

	for i := range partials {
		if perr := partials[i].err; perr != nil {
			GlobalStats.RunsFailed.Add(1)
			log.Warn("run: worker failed", "worker", i, "partition", partials[i].part, "error", perr)
			return zero, &WorkerError{Worker: i, Part: partials[i].part, Err: perr}
		}
	}

	_, cspan := tracer.Start(ctx, "combine")
	result := partials[0].value
	for _, p := range partials[1:] {
		result = e.combineFn(result, p.value)
	}
	cspan.End()

	if e.cache != nil && key != "" {
		if raw, merr := json.Marshal(result); merr == nil {
			e.cache.Put(ctx, key, raw)
		} else {
			log.Debug("run: result not cacheable", "error", merr)
		}
	}

	log.Info("run: done", "partitions", len(parts))
	return result, nil
}

func (e *Engine[T, R]) cacheLookup(ctx context.Context, key string) (R, bool) {
	var res R

	raw, ok := e.cache.Get(ctx, key)
	if !ok {
		return res, false
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		return res, false
	}

	return res, true
}
