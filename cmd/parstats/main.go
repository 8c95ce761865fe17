// Command parstats generates a synthetic price series and reduces it
// three ways at once: minimum, maximum and sum, each computed by its
// own fan-out/fan-in run.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"golang.org/x/sync/errgroup"

	"github.com/tymbaca/parreduce-go/parreduce"
)

func main() {
	size := flag.Int("n", 1_000_000, "number of generated prices")
	workers := flag.Int("workers", 0, "workers per reduction (0 = GOMAXPROCS)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	prices := genPrices(*size)

	start := time.Now()

	var lo, hi, total float64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		lo, err = parreduce.Min(gctx, prices, *workers)
		return err
	})
	g.Go(func() (err error) {
		hi, err = parreduce.Max(gctx, prices, *workers)
		return err
	})
	g.Go(func() (err error) {
		total, err = parreduce.Sum(gctx, prices, *workers)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("reduction failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("prices: %d\n", len(prices))
	fmt.Printf("min: %.2f, max: %.2f, mean: %.2f\n", lo, hi, total/float64(len(prices)))
	fmt.Printf("time elapsed: %s\n", time.Since(start))
	fmt.Printf("stats: %s\n", parreduce.GlobalStats)
}

func genPrices(n int) []float64 {
	prices := make([]float64, n)
	for i := range prices {
		prices[i] = gofakeit.Price(0.01, 10_000)
	}

	return prices
}
