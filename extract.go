// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import "unicode/utf8"

// Word sentinels. Both are escaped by synthesizers and restored as real anchors afterwards.
const (
	startSentinel = "^"
	endSentinel   = "$"
)

// candidate is selector-internal indexed form of one fragment.
type candidate struct {
	// value is fragment text.
	value string
	// bounds holds byte offset after each rune, so value[:bounds[n-1]] is the n-rune prefix.
	bounds []int
	// offset is rune offset of first occurrence in the wrapped word.
	offset int
	// cost is the current size estimate.
	cost float64
	// locked reports whether the word owning this candidate is committed to it.
	locked bool
}

// runeLen returns candidate length in runes.
func (c *candidate) runeLen() int {
	return len(c.bounds)
}

// prefix returns first n runes of candidate value.
func (c *candidate) prefix(n int) string {
	return c.value[:c.bounds[n-1]]
}

// fragment exports candidate as Fragment.
func (c *candidate) fragment() Fragment {
	return Fragment{
		Value:  c.value,
		Offset: c.offset,
		Cost:   c.cost,
		Locked: c.locked,
	}
}

// wrapWord surrounds word with start and end sentinels.
func wrapWord(word string) string {
	return startSentinel + word + endSentinel
}

// runeBounds returns byte offsets of every rune boundary in s, including 0 and len(s).
func runeBounds(s string) []int {
	bounds := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		bounds = append(bounds, i)
	}

	return append(bounds, len(s))
}

// extractCandidates enumerates every substring of each wrapped include word
// that no wrapped exclude word contains.
//
// Candidates of one word are ordered by length, then by position. A substring
// repeated inside one word is listed once per position.
func extractCandidates(include []string, exclude []string) [][]candidate {
	wrapped := make([]string, len(include))
	bounds := make([][]int, len(include))
	maxLen := 0
	for i, word := range include {
		wrapped[i] = wrapWord(word)
		bounds[i] = runeBounds(wrapped[i])
		if n := len(bounds[i]) - 1; n > maxLen {
			maxLen = n
		}
	}

	blocked := excludeSubstrings(exclude, maxLen)

	sets := make([][]candidate, len(include))
	for i, word := range wrapped {
		b := bounds[i]
		n := len(b) - 1
		set := make([]candidate, 0, n)

		for size := 1; size <= n; size++ {
			for pos := 0; pos+size <= n; pos++ {
				sub := word[b[pos]:b[pos+size]]
				if _, ok := blocked[sub]; ok {
					continue
				}

				set = append(set, newCandidate(sub, b[pos:pos+size+1], pos))
			}
		}

		sets[i] = set
	}

	return sets
}

// newCandidate builds candidate from its word-relative rune boundaries.
func newCandidate(value string, wordBounds []int, offset int) candidate {
	base := wordBounds[0]
	bounds := make([]int, len(wordBounds)-1)
	for i := range bounds {
		bounds[i] = wordBounds[i+1] - base
	}

	return candidate{
		value:  value,
		bounds: bounds,
		offset: offset,
		cost:   float64(len(bounds)),
	}
}

// excludeSubstrings collects every substring of wrapped exclude words up to maxLen runes.
func excludeSubstrings(exclude []string, maxLen int) map[string]struct{} {
	out := make(map[string]struct{}, len(exclude)*maxLen)
	for _, word := range exclude {
		wrapped := wrapWord(word)
		b := runeBounds(wrapped)
		n := len(b) - 1
		for pos := 0; pos < n; pos++ {
			for size := 1; size <= maxLen && pos+size <= n; size++ {
				out[wrapped[b[pos]:b[pos+size]]] = struct{}{}
			}
		}
	}

	return out
}

// capCandidateLength drops candidates longer than the longest per-word minimum.
//
// The first candidate of every word is its shortest discriminator, so the cap
// never removes the best options of the hardest word.
func capCandidateLength(sets [][]candidate) [][]candidate {
	limit := 0
	for _, set := range sets {
		if len(set) == 0 {
			continue
		}

		if n := set[0].runeLen(); n > limit {
			limit = n
		}
	}

	out := make([][]candidate, len(sets))
	for i, set := range sets {
		kept := make([]candidate, 0, len(set))
		for _, c := range set {
			if c.runeLen() <= limit {
				kept = append(kept, c)
			}
		}

		out[i] = kept
	}

	return out
}
