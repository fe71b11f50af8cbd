// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"fmt"
	"os"
)

// LoadWordsFile reads and parses a word list file.
func LoadWordsFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open words file: %w", err)
	}
	defer func() { _ = f.Close() }()

	words, err := ParseWords(f)
	if err != nil {
		return nil, fmt.Errorf("parse words file: %w", err)
	}

	return words, nil
}

// LoadWordsFiles reads word list files and merges them in the given order.
func LoadWordsFiles(paths ...string) ([]string, error) {
	lists := make([][]string, 0, len(paths))
	for _, path := range paths {
		words, err := LoadWordsFile(path)
		if err != nil {
			return nil, err
		}

		lists = append(lists, words)
	}

	return MergeWords(lists...), nil
}
