package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tymbaca/parreduce-go/parreduce"
	"github.com/tymbaca/parreduce-go/parreduce/cache/bolt"
	"github.com/tymbaca/parreduce-go/pkg/tracer"
)

func TestPriceStats(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	tracer.Init("localhost:4318")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dbPath := "parstats.db"
	os.Remove(dbPath)
	cache, err := bolt.New(dbPath)
	if err != nil {
		panic(err)
	}
	defer cache.Destroy()

	prices := genPrices(100_000)

	wantLo, wantHi, wantTotal := prices[0], prices[0], 0.0
	for _, p := range prices {
		wantLo = min(wantLo, p)
		wantHi = max(wantHi, p)
		wantTotal += p
	}

	start := time.Now()

	lo, err := parreduce.Min(ctx, prices, 8)
	require.NoError(t, err)
	require.Equal(t, wantLo, lo)

	hi, err := parreduce.Max(ctx, prices, 8)
	require.NoError(t, err)
	require.Equal(t, wantHi, hi)

	sum := parreduce.New(
		func(_ context.Context, prices []float64, part parreduce.Partition) (float64, error) {
			var total float64
			for _, p := range prices[part.Start:part.End] {
				total += p
			}
			return total, nil
		},
		func(x, y float64) float64 { return x + y },
		parreduce.WithName("price-sum"),
		parreduce.WithWorkers(8),
		parreduce.WithCache(cache),
	)

	total, err := sum.Run(ctx, prices)
	require.NoError(t, err)
	require.InDelta(t, wantTotal, total, 0.01)

	// same input again, served from the bolt cache this time
	again, err := sum.Run(ctx, prices)
	require.NoError(t, err)
	require.Equal(t, total, again)

	fmt.Printf("time elapsed: %s\n", time.Since(start))
	fmt.Printf("stats: %s\n", parreduce.GlobalStats)
}
