// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"fmt"
	"regexp"
)

// verifyPattern compiles src and checks it matches every include word and no exclude word.
//
// All misclassified words are reported in one *VerificationError.
func verifyPattern(src string, include []string, exclude []string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrVerification, src, err)
	}

	var matched, unmatched []string
	for _, word := range exclude {
		if re.MatchString(word) {
			matched = append(matched, word)
		}
	}

	for _, word := range include {
		if !re.MatchString(word) {
			unmatched = append(unmatched, word)
		}
	}

	if len(matched) > 0 || len(unmatched) > 0 {
		return nil, &VerificationError{
			Pattern:   src,
			Matched:   matched,
			Unmatched: unmatched,
		}
	}

	return re, nil
}
