// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/woozymasta/discrex"
	"github.com/woozymasta/discrex/internal/harness"
)

func TestBuiltinListPairs(t *testing.T) {
	if testing.Short() {
		t.Skip("computes every built-in list pair")
	}

	t.Parallel()

	lists := harness.BuiltinLists()
	for _, pair := range harness.Pairs(lists.Names()) {
		t.Run(pair.Key(), func(t *testing.T) {
			t.Parallel()

			include, err := lists.Get(pair.Include)
			require.NoError(t, err)

			exclude, err := lists.Get(pair.Exclude)
			require.NoError(t, err)

			p, err := discrex.NewPattern(include, exclude, discrex.Options{})
			require.NoError(t, err)

			for _, word := range include {
				require.True(t, p.MatchString(word), "include %q", word)
			}

			for _, word := range exclude {
				require.False(t, p.MatchString(word), "exclude %q", word)
			}

			baseline, err := harness.Baseline(include)
			require.NoError(t, err)
			require.Less(t, len(p.String()), len(baseline))

			again, err := discrex.Compute(include, exclude)
			require.NoError(t, err)
			require.Equal(t, p.String(), again)
		})
	}
}

func TestBuiltinListFragments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		include string
		exclude string
		want    []string
	}{
		{
			include: "numericProps",
			exclude: "random1",
			want: []string{
				"-c", "-i", "-i", "-i", "-c", "^f", "^f", "^f",
				"^f", "^f", "^l", "^o", "^o", "^o", "-i", "op",
				"ok", "ok", "b-", "^w", "-i", "^z",
			},
		},
		{
			include: "random2",
			exclude: "numericProps",
			want: []string{
				"es$", "al", "ch", "es$", "al", "ed", "^d", "ch",
				"ch", "es$", "al", "al", "^d", "ed", "al", "^d",
				"ed", "es$", "cl", "as", "en", "^d", "ch", "cl",
				"ca", "es$", "^d", "^p", "as", "^d", "es$", "as",
				"^i", "ar", "^i", "^i", "ed", "^p", "v", "ar",
			},
		},
		{
			include: "random2",
			exclude: "pxProps",
			want: []string{
				"es", "ai", "ch", "es", "at", "ed", "es", "ch",
				"ch", "es", "pi", "pi", "ch", "ed", "es", "at",
				"ed", "es", "at", "pi", "es", "at", "ch", "cl",
				"rr", "es", "es", "pr", "ir", "at", "es", "cl",
				"c-", "rr", "es", "io", "ed", "rk", "ai", "es",
			},
		},
	}

	lists := harness.BuiltinLists()
	for _, tc := range tests {
		t.Run(harness.PairKey(tc.include, tc.exclude), func(t *testing.T) {
			t.Parallel()

			include, err := lists.Get(tc.include)
			require.NoError(t, err)

			exclude, err := lists.Get(tc.exclude)
			require.NoError(t, err)

			p, err := discrex.NewPattern(include, exclude, discrex.Options{})
			require.NoError(t, err)

			fragments := p.Fragments()
			got := make([]string, len(fragments))
			for i := range fragments {
				got[i] = fragments[i].Value
			}

			require.Equal(t, tc.want, got)
		})
	}
}

func ExampleCompute() {
	pattern, err := discrex.Compute(
		[]string{"cat", "car"},
		[]string{"cap", "can"},
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(pattern)
	// Output: r|t
}
