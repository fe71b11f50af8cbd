// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
)

// Pattern is a verified regular expression separating two word lists.
type Pattern struct {
	re          *regexp.Regexp
	source      string
	synthesized string
	fragments   []Fragment
}

// Compute returns the pattern source matching every include word and no exclude word.
func Compute(include []string, exclude []string) (string, error) {
	p, err := NewPattern(include, exclude, Options{})
	if err != nil {
		return "", err
	}

	return p.String(), nil
}

// NewPattern runs the full pipeline and returns verified pattern.
//
// Pipeline:
//   - validate word lists
//   - extract discriminating substrings per include word and cap their length
//   - lock one fragment per word
//   - synthesize fragments, restore anchors, shrink
//   - verify against both lists
func NewPattern(include []string, exclude []string, opts Options) (*Pattern, error) {
	opts.applyDefaults()
	if !opts.Rewrite.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRewriteMode, opts.Rewrite)
	}

	if err := validateWords(include, exclude); err != nil {
		return nil, err
	}

	sets := capCandidateLength(extractCandidates(include, exclude))
	fragments := selectFragments(sets, opts.Logger)

	values := make([]string, len(fragments))
	for i := range fragments {
		values[i] = fragments[i].Value
	}

	synthesized, err := opts.Synthesizer.Synthesize(values)
	if err != nil {
		return nil, fmt.Errorf("synthesize: %w", err)
	}

	src, err := unescapeAnchors(synthesized)
	if err != nil {
		return nil, fmt.Errorf("restore anchors: %w", err)
	}

	src, err = shrinkPattern(src, opts.Rewrite)
	if err != nil {
		return nil, fmt.Errorf("shrink: %w", err)
	}

	re, err := verifyPattern(src, include, exclude)
	if err != nil {
		return nil, err
	}

	opts.Logger.Debug("pattern computed",
		slog.Int("include", len(include)),
		slog.Int("exclude", len(exclude)),
		slog.Int("synthesized_len", len(synthesized)),
		slog.Int("pattern_len", len(src)),
		slog.String("pattern", src),
	)

	return &Pattern{
		re:          re,
		source:      src,
		synthesized: synthesized,
		fragments:   fragments,
	}, nil
}

// String returns pattern source.
func (p *Pattern) String() string {
	return p.source
}

// Regexp returns compiled pattern.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// MatchString reports whether s contains a match of the pattern.
func (p *Pattern) MatchString(s string) bool {
	return p.re.MatchString(s)
}

// Fragments returns locked fragments in include word order.
func (p *Pattern) Fragments() []Fragment {
	return slices.Clone(p.fragments)
}

// Synthesized returns synthesizer output before anchor restoration and shrinking.
func (p *Pattern) Synthesized() string {
	return p.synthesized
}
