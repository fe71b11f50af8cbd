// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func candidateValues(set []candidate) []string {
	out := make([]string, len(set))
	for i := range set {
		out[i] = set[i].value
	}

	return out
}

func TestExtractCandidatesOrder(t *testing.T) {
	t.Parallel()

	sets := extractCandidates([]string{"cat"}, []string{"cap"})
	require.Len(t, sets, 1)
	require.Equal(t,
		[]string{"t", "at", "t$", "cat", "at$", "^cat", "cat$", "^cat$"},
		candidateValues(sets[0]),
	)

	offsets := make([]int, len(sets[0]))
	for i := range sets[0] {
		offsets[i] = sets[0][i].offset
	}
	require.Equal(t, []int{3, 2, 3, 1, 2, 0, 1, 0}, offsets)

	for i := range sets[0] {
		require.Equal(t, float64(sets[0][i].runeLen()), sets[0][i].cost)
	}
}

func TestExtractCandidatesKeepsRepeats(t *testing.T) {
	t.Parallel()

	sets := extractCandidates([]string{"aa"}, []string{"b"})
	require.Equal(t,
		[]string{"a", "a", "^a", "aa", "a$", "^aa", "aa$", "^aa$"},
		candidateValues(sets[0]),
	)
	require.Equal(t, 1, sets[0][0].offset)
	require.Equal(t, 2, sets[0][1].offset)
}

func TestExtractCandidatesSentinels(t *testing.T) {
	t.Parallel()

	// "ab" is inside "cab", but "^ab" is not inside "^cab$".
	sets := extractCandidates([]string{"ab"}, []string{"cab"})
	require.Equal(t, []string{"^a", "^ab", "^ab$"}, candidateValues(sets[0]))
}

func TestExtractCandidatesRunes(t *testing.T) {
	t.Parallel()

	sets := extractCandidates([]string{"жук"}, []string{"жир"})
	require.NotEmpty(t, sets[0])

	first := sets[0][0]
	require.Equal(t, "у", first.value)
	require.Equal(t, 1, first.runeLen())
	require.Equal(t, 2, first.offset)

	for i := range sets[0] {
		c := sets[0][i]
		require.Equal(t, c.value, c.prefix(c.runeLen()))
	}
}

func TestCapCandidateLength(t *testing.T) {
	t.Parallel()

	sets := extractCandidates([]string{"cat", "ab"}, []string{"cap", "cab"})
	require.Equal(t, "t", sets[0][0].value)
	require.Equal(t, "^a", sets[1][0].value)

	capped := capCandidateLength(sets)
	require.Equal(t, []string{"t", "at", "t$"}, candidateValues(capped[0]))
	require.Equal(t, []string{"^a"}, candidateValues(capped[1]))
}

func TestCapCandidateLengthSingleChars(t *testing.T) {
	t.Parallel()

	capped := capCandidateLength(extractCandidates([]string{"cat", "car"}, []string{"cap", "can"}))
	require.Equal(t, []string{"t"}, candidateValues(capped[0]))
	require.Equal(t, []string{"r"}, candidateValues(capped[1]))
}
