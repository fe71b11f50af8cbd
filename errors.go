// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for discrex operations.
var (
	// ErrValidation indicates include/exclude input that cannot be processed.
	ErrValidation = errors.New("invalid word lists")
	// ErrVerification indicates a computed pattern that does not separate the word lists.
	ErrVerification = errors.New("pattern verification failed")
	// ErrInvalidPattern indicates pattern source the rewriter cannot tokenize.
	ErrInvalidPattern = errors.New("invalid pattern")
	// ErrNoFragments indicates an empty fragment list passed to a synthesizer.
	ErrNoFragments = errors.New("no fragments to synthesize")
	// ErrInvalidRewriteMode indicates unsupported Options.Rewrite value.
	ErrInvalidRewriteMode = errors.New("invalid rewrite mode")
)

// VerificationError reports every word a pattern fails to classify correctly.
type VerificationError struct {
	// Pattern is the rejected pattern source.
	Pattern string
	// Matched lists exclude words the pattern wrongly matches.
	Matched []string
	// Unmatched lists include words the pattern wrongly rejects.
	Unmatched []string
}

// Error implements error.
func (e *VerificationError) Error() string {
	return fmt.Sprintf("%s: %q matched: %s; unmatched: %s",
		ErrVerification, e.Pattern, strings.Join(e.Matched, ", "), strings.Join(e.Unmatched, ", "))
}

// Unwrap lets errors.Is match ErrVerification.
func (e *VerificationError) Unwrap() error {
	return ErrVerification
}
