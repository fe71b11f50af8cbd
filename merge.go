// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

// MergeWords merges word lists preserving first occurrence order and dropping repeats.
func MergeWords(lists ...[]string) []string {
	total := 0
	for _, list := range lists {
		total += len(list)
	}

	seen := make(map[string]struct{}, total)
	out := make([]string, 0, total)
	for _, list := range lists {
		for _, word := range list {
			if _, ok := seen[word]; ok {
				continue
			}

			seen[word] = struct{}{}
			out = append(out, word)
		}
	}

	return out
}
