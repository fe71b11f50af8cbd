// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"fmt"
	"strings"
)

// anchorChars are regexp anchors reserved as word start/end sentinels.
const anchorChars = "^$"

// validateWords rejects word lists the pipeline cannot separate.
func validateWords(include []string, exclude []string) error {
	if len(include) == 0 {
		return fmt.Errorf("%w: include list is empty", ErrValidation)
	}

	excluded := make(map[string]struct{}, len(exclude))
	for _, word := range exclude {
		excluded[word] = struct{}{}
	}

	for _, word := range include {
		if _, ok := excluded[word]; ok {
			return fmt.Errorf("%w: %q is included in both the include and exclude lists", ErrValidation, word)
		}
	}

	for _, list := range [][]string{include, exclude} {
		for _, word := range list {
			if strings.ContainsAny(word, anchorChars) {
				return fmt.Errorf("%w: %q contains ^ or $ which is not supported", ErrValidation, word)
			}
		}
	}

	return nil
}
