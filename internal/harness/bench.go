// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package harness

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/woozymasta/discrex"
)

// Pair names one ordered include/exclude combination of lists.
type Pair struct {
	// Include is the list whose words must match.
	Include string `json:"include" yaml:"include"`
	// Exclude is the list whose words must not match.
	Exclude string `json:"exclude" yaml:"exclude"`
}

// Key returns store key of the pair.
func (p Pair) Key() string {
	return PairKey(p.Include, p.Exclude)
}

// PairResult is the outcome of one benchmarked pair.
type PairResult struct {
	// Pair is the benchmarked list combination.
	Pair Pair
	// Current is the freshly computed entry.
	Current Entry
	// Best is the best entry known before this run.
	Best Entry
	// Status compares Current with Best.
	Status Status
	// Err is set when computing the pair failed, other fields are then zero.
	Err error
}

// Runner benchmarks every ordered pair of word lists.
type Runner struct {
	// Lists are benchmarked pairwise in insertion order.
	Lists *WordLists
	// Store keeps best results, nil means an in-memory store.
	Store *Store
	// Logger receives one record per pair, nil discards them.
	Logger *slog.Logger
	// Options are passed to every pattern computation.
	Options discrex.Options
	// Workers bounds concurrent pair computations, zero means GOMAXPROCS.
	Workers int
}

// Pairs returns ordered pairs of list names.
//
// For every i < j the pair (i, j) is followed by (j, i).
func Pairs(names []string) []Pair {
	n := len(names)
	out := make([]Pair, 0, n*(n-1))
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out,
				Pair{Include: names[i], Exclude: names[j]},
				Pair{Include: names[j], Exclude: names[i]},
			)
		}
	}

	return out
}

// Run computes every pair, records results in store and returns them in pair order.
//
// Failed pairs keep their slot with Err set and are also joined into the
// returned error. Context cancellation stops feeding new pairs.
func (r *Runner) Run(ctx context.Context) ([]PairResult, error) {
	if r.Lists == nil || r.Lists.Len() < 2 {
		return nil, fmt.Errorf("%w: at least two lists are required", ErrInvalidLists)
	}

	logger := r.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	store := r.Store
	if store == nil {
		store, _ = OpenStore("")
	}

	workers := r.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	pairs := Pairs(r.Lists.Names())
	results := make([]PairResult, len(pairs))
	jobs := make(chan int, workers*2)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				results[idx] = r.runPair(pairs[idx], store, logger)
			}
		}()
	}

	var ctxErr error
feed:
	for idx := range pairs {
		if err := ctx.Err(); err != nil {
			ctxErr = err
			break
		}

		select {
		case <-ctx.Done():
			ctxErr = ctx.Err()
			break feed
		case jobs <- idx:
		}
	}

	close(jobs)
	wg.Wait()

	if ctxErr != nil {
		return nil, ctxErr
	}

	var errs []error
	for i := range results {
		if results[i].Err != nil {
			errs = append(errs, results[i].Err)
		}
	}

	return results, errors.Join(errs...)
}

// runPair computes one pair and records it in store.
func (r *Runner) runPair(pair Pair, store *Store, logger *slog.Logger) PairResult {
	res := PairResult{Pair: pair}

	current, err := r.computeEntry(pair)
	if err != nil {
		res.Err = fmt.Errorf("pair %s: %w", pair.Key(), err)
		logger.Error("pair failed", slog.String("pair", pair.Key()), slog.Any("error", err))
		return res
	}

	res.Current = current
	res.Status, res.Best = store.Record(pair.Key(), current)

	logger.Info("pair computed",
		slog.String("pair", pair.Key()),
		slog.String("status", res.Status.String()),
		slog.Int("small_len", len(current.Small)),
		slog.Int("default_len", len(current.Default)),
		slog.Int("best_len", len(res.Best.Small)),
	)

	return res
}

// computeEntry builds discriminating pattern and whole-word baseline for one pair.
func (r *Runner) computeEntry(pair Pair) (Entry, error) {
	include, err := r.Lists.Get(pair.Include)
	if err != nil {
		return Entry{}, err
	}

	exclude, err := r.Lists.Get(pair.Exclude)
	if err != nil {
		return Entry{}, err
	}

	p, err := discrex.NewPattern(include, exclude, r.Options)
	if err != nil {
		return Entry{}, err
	}

	baseline, err := Baseline(include)
	if err != nil {
		return Entry{}, err
	}

	return Entry{Small: p.String(), Default: baseline}, nil
}

// Baseline returns the trie pattern of whole include words, the size reference for a pair.
func Baseline(include []string) (string, error) {
	src, err := discrex.TrieSynthesizer{}.Synthesize(include)
	if err != nil {
		return "", fmt.Errorf("baseline: %w", err)
	}

	return src, nil
}
