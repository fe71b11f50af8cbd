// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import "log/slog"

// RewriteMode controls how the shrink rule table is applied to a synthesized pattern.
type RewriteMode string

const (
	// RewriteFixedPoint repeats the rule table until no rule fires.
	RewriteFixedPoint RewriteMode = "fixed-point"
	// RewriteSinglePass applies every rule once, in table order.
	RewriteSinglePass RewriteMode = "single-pass"
	// RewriteNone keeps the synthesized pattern as is (anchors are still restored).
	RewriteNone RewriteMode = "none"
)

// Options controls pattern computation.
type Options struct {
	// Synthesizer compiles locked fragments into a pattern. Nil means TrieSynthesizer.
	Synthesizer Synthesizer `json:"-" yaml:"-"`
	// Logger receives debug records of selector rounds. Nil discards them.
	Logger *slog.Logger `json:"-" yaml:"-"`
	// Rewrite selects shrink pass behavior. Empty means RewriteFixedPoint.
	Rewrite RewriteMode `json:"rewrite,omitempty" yaml:"rewrite,omitempty"`
}

// Fragment is one discriminating substring of a sentinel-wrapped include word.
type Fragment struct {
	// Value is the substring text, "^" and "$" mark word start and end.
	Value string `json:"value" yaml:"value"`
	// Offset is the rune offset of the first occurrence inside the wrapped word.
	Offset int `json:"offset" yaml:"offset"`
	// Cost is the estimated size contribution to the synthesized pattern.
	Cost float64 `json:"cost" yaml:"cost"`
	// Locked reports whether the fragment was committed for its word.
	Locked bool `json:"locked,omitempty" yaml:"locked,omitempty"`
}

// applyDefaults fills zero-valued options with defaults.
func (opts *Options) applyDefaults() {
	if opts.Synthesizer == nil {
		opts.Synthesizer = TrieSynthesizer{}
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	if opts.Rewrite == "" {
		opts.Rewrite = RewriteFixedPoint
	}
}

// valid reports whether rewrite mode value is supported.
func (m RewriteMode) valid() bool {
	return m == RewriteFixedPoint || m == RewriteSinglePass || m == RewriteNone
}
