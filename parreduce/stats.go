package parreduce

import (
	"fmt"
	"sync/atomic"
)

// GlobalStats counts engine activity across all engines in the
// process.
var GlobalStats = &Stats{}

type Stats struct {
	Runs        atomic.Uint64
	RunsFailed  atomic.Uint64
	Partials    atomic.Uint64
	CacheHits   atomic.Uint64
	CacheMisses atomic.Uint64
}

func (s *Stats) String() string {
	runs := s.Runs.Load()
	failed := s.RunsFailed.Load()
	partials := s.Partials.Load()
	hits := s.CacheHits.Load()
	misses := s.CacheMisses.Load()
	return fmt.Sprintf("Runs: %d, RunsFailed: %d, Partials: %d, CacheHits: %d, CacheMisses: %d",
		runs, failed, partials, hits, misses)
}
