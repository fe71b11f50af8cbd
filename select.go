// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"log/slog"
	"math"
	"slices"
)

// overlap is one weighted size outcome in a fragment cost estimate.
type overlap struct {
	// size is the fragment length left after a shared prefix.
	size int
	// chance is the estimated probability of the outcome.
	chance float64
}

// selectFragments locks exactly one candidate per word and returns the locked
// values in word order.
//
// Every round re-estimates all open candidates against the previous round's
// orders, re-sorts them, then locks the best candidate of the word with the
// largest savings (gap between its best and second best estimate). Other words
// holding the same value are collapsed onto it.
func selectFragments(sets [][]candidate, logger *slog.Logger) []Fragment {
	indexes := make([]map[string]int, len(sets))

	for round := 1; !allSingle(sets); round++ {
		for i := range sets {
			indexes[i] = prefixIndex(sets[i])
		}

		for i := range sets {
			if isLocked(sets[i]) {
				continue
			}

			for k := range sets[i] {
				sets[i][k].cost = estimateCost(&sets[i][k], i, sets, indexes)
			}
		}

		best := -1
		bestSavings := math.Inf(-1)
		for i := range sets {
			if isLocked(sets[i]) {
				continue
			}

			slices.SortStableFunc(sets[i], func(a, b candidate) int {
				switch {
				case a.cost < b.cost:
					return -1
				case a.cost > b.cost:
					return 1
				default:
					return 0
				}
			})

			if s := savings(sets[i]); best < 0 || s > bestSavings {
				best = i
				bestSavings = s
			}
		}

		chosen := sets[best][0]
		chosen.locked = true
		collapsed := 0
		for i := range sets {
			if i != best && isLocked(sets[i]) {
				continue
			}

			k := slices.IndexFunc(sets[i], func(c candidate) bool { return c.value == chosen.value })
			if k < 0 {
				continue
			}

			own := sets[i][k]
			own.cost = chosen.cost
			own.locked = true
			sets[i] = []candidate{own}
			collapsed++
		}

		logger.Debug("fragment locked",
			slog.Int("round", round),
			slog.Int("word", best),
			slog.String("fragment", chosen.value),
			slog.Float64("cost", chosen.cost),
			slog.Float64("savings", bestSavings),
			slog.Int("collapsed", collapsed),
		)
	}

	out := make([]Fragment, len(sets))
	for i := range sets {
		out[i] = sets[i][0].fragment()
		out[i].Locked = true
	}

	return out
}

// estimateCost returns expected size contribution of candidate c of word self.
//
// For each other word the longest prefix of c that starts one of its
// candidates is found; the earlier that candidate ranks, the likelier the
// shared prefix is free. Outcomes are blended from the largest overlap down,
// each taking its chance of the probability mass still left.
func estimateCost(c *candidate, self int, sets [][]candidate, indexes []map[string]int) float64 {
	n := c.runeLen()
	outcomes := make([]overlap, 1, len(sets))
	outcomes[0] = overlap{size: n, chance: 1}

	for j := range sets {
		if j == self {
			continue
		}

		total := len(sets[j])
		for size := n; size > 0; size-- {
			idx, ok := indexes[j][c.prefix(size)]
			if !ok {
				continue
			}

			outcomes = append(outcomes, overlap{
				size:   n - size,
				chance: float64(total-idx) / math.Pow(float64(total), 1.5),
			})
			break
		}
	}

	slices.SortStableFunc(outcomes, func(a, b overlap) int {
		return a.size - b.size
	})

	cost := 0.0
	done := 0.0
	for _, o := range outcomes {
		ratio := (1 - done) * o.chance
		cost += float64(o.size) * ratio
		done += ratio
	}

	return cost
}

// prefixIndex maps every prefix of every candidate to the first candidate index starting with it.
func prefixIndex(set []candidate) map[string]int {
	index := make(map[string]int, len(set)*2)
	for k := range set {
		for size := 1; size <= set[k].runeLen(); size++ {
			p := set[k].prefix(size)
			if _, ok := index[p]; !ok {
				index[p] = k
			}
		}
	}

	return index
}

// savings returns cost gap between the best and second best candidate.
func savings(set []candidate) float64 {
	if len(set) < 2 {
		return math.Inf(1)
	}

	return set[1].cost - set[0].cost
}

// isLocked reports whether word candidate set was committed.
func isLocked(set []candidate) bool {
	return len(set) == 1 && set[0].locked
}

// allSingle reports whether every word has exactly one candidate left.
func allSingle(sets [][]candidate) bool {
	for _, set := range sets {
		if len(set) != 1 {
			return false
		}
	}

	return true
}
