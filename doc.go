// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

/*
Package discrex computes compact regular expressions that separate two word lists.

The resulting pattern matches every include word and no exclude word. Instead
of alternating whole words, it picks one short discriminating substring per
include word and synthesizes a pattern from those fragments only.

Basic flow:
  - parse word lists from text (`ParseWords`) or files (`LoadWordsFile`)
  - compute pattern source (`Compute`) or a verified pattern object (`NewPattern`)
  - match candidates (`Pattern.MatchString`)

Pipeline:
  - words are wrapped with "^" and "$" sentinels
  - every substring of a wrapped include word that no wrapped exclude word
    contains is a candidate, candidates longer than the hardest word needs are dropped
  - a greedy selector locks one candidate per word, always committing first the
    word whose best candidate beats its second best by the widest estimated margin
  - a `Synthesizer` (trie based by default) turns locked fragments into a pattern
  - sentinels become real anchors and a small rule table shrinks the text
  - the pattern is verified against both lists, an unverified pattern is never returned

Patterns search anywhere in the input, anchors are part of the pattern itself.
Words must not contain "^" or "$".
*/
package discrex
