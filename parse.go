// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseWords parses a word list from reader, one word per line.
//
// Semantics:
// - blank lines and "#" comments are ignored
// - "\#" escapes a leading comment token
// - trailing "\r" is dropped
// - trailing spaces and tabs are trimmed unless escaped: "word\ " keeps one trailing space
// - leading spaces are kept
func ParseWords(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	words := make([]string, 0, 32)

	for s.Scan() {
		line := trimTrailingSpaces(strings.TrimRight(s.Text(), "\r"))
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, `\#`) {
			line = line[1:]
		}

		words = append(words, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan words: %w", err)
	}

	return words, nil
}

// trimTrailingSpaces removes trailing spaces and tabs unless escaped by "\".
func trimTrailingSpaces(s string) string {
	for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
		if len(s) >= 2 && s[len(s)-2] == '\\' {
			return s[:len(s)-2] + s[len(s)-1:]
		}

		s = s[:len(s)-1]
	}

	return s
}

// ParseWordsString parses a word list from string input.
func ParseWordsString(src string) ([]string, error) {
	return ParseWords(strings.NewReader(src))
}
