// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import "fmt"

// rewriteRule is one local textual simplification of a pattern.
//
// apply returns rewritten tokens and whether anything changed. A rule only
// fires when the rendered pattern gets strictly shorter, which bounds the
// fixed-point loop.
type rewriteRule struct {
	name  string
	apply func(tokens []token) ([]token, bool)
}

// shrinkRules is the ordered shrink rule table.
var shrinkRules = []rewriteRule{
	{name: "plain-groups", apply: plainGroups},
	{name: "literal-hyphens", apply: literalHyphens},
	{name: "single-classes", apply: singleClasses},
	{name: "split-pair-class", apply: splitPairClass},
	{name: "distribute-pair-group", apply: distributePairGroup},
}

// unescapeAnchors turns escaped sentinels back into anchors.
//
// A class holding a sentinel becomes an alternation of the anchors and a
// class of the remaining members, since anchors cannot live inside a class.
func unescapeAnchors(src string) (string, error) {
	tokens, err := lexPattern(src)
	if err != nil {
		return "", err
	}

	out := make([]token, 0, len(tokens))
	for _, tok := range tokens {
		switch {
		case tok.kind == tokenLiteral && isSentinel(tok.r):
			out = append(out, token{kind: tokenAnchor, text: string(tok.r)})
		case tok.kind == tokenClass && !tok.negated:
			out = append(out, splitSentinelClass(tok)...)
		default:
			out = append(out, tok)
		}
	}

	return renderTokens(out), nil
}

// splitSentinelClass rewrites class with sentinel members as "(?:^|$|[rest])".
func splitSentinelClass(tok token) []token {
	anchors := make([]token, 0, 2)
	rest := make([]classMember, 0, len(tok.members))
	for _, m := range tok.members {
		if m.single() && isSentinel(m.lo) {
			anchors = append(anchors, token{kind: tokenAnchor, text: string(m.lo)})
			continue
		}

		rest = append(rest, m)
	}

	if len(anchors) == 0 {
		return []token{tok}
	}

	out := make([]token, 0, 2*len(anchors)+3)
	out = append(out, token{kind: tokenGroupOpen, text: "(?:"})
	for i, anchor := range anchors {
		if i > 0 {
			out = append(out, token{kind: tokenAlt, text: "|"})
		}

		out = append(out, anchor)
	}

	if len(rest) > 0 {
		out = append(out, token{kind: tokenAlt, text: "|"}, classToken(rest, false))
	}

	return append(out, token{kind: tokenGroupClose, text: ")"})
}

// shrinkPattern applies the shrink rule table according to mode.
func shrinkPattern(src string, mode RewriteMode) (string, error) {
	switch mode {
	case RewriteNone:
		return src, nil
	case RewriteSinglePass, RewriteFixedPoint:
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRewriteMode, mode)
	}

	tokens, err := lexPattern(src)
	if err != nil {
		return "", err
	}

	for {
		fired := false
		for _, rule := range shrinkRules {
			var changed bool
			tokens, changed = rule.apply(tokens)
			fired = fired || changed
		}

		if !fired || mode == RewriteSinglePass {
			break
		}
	}

	return renderTokens(tokens), nil
}

// plainGroups turns every non-capturing group into a plain group.
func plainGroups(tokens []token) ([]token, bool) {
	changed := false
	for i := range tokens {
		if tokens[i].kind == tokenGroupOpen && tokens[i].text != "(" {
			tokens[i].text = "("
			changed = true
		}
	}

	return tokens, changed
}

// literalHyphens drops redundant escapes of "-" outside classes.
func literalHyphens(tokens []token) ([]token, bool) {
	changed := false
	for i := range tokens {
		if tokens[i].kind == tokenLiteral && tokens[i].text == `\-` {
			tokens[i].text = "-"
			changed = true
		}
	}

	return tokens, changed
}

// singleClasses turns every one-character class into a bare literal.
func singleClasses(tokens []token) ([]token, bool) {
	changed := false
	for i := range tokens {
		tok := tokens[i]
		if tok.kind != tokenClass || tok.negated || len(tok.members) != 1 || !tok.members[0].single() {
			continue
		}

		tokens[i] = literalToken(tok.members[0].lo)
		changed = true
	}

	return tokens, changed
}

// splitPairClass rewrites the first two-character class that forms a whole
// alternative, "|[ab])" becomes "|a|b)".
func splitPairClass(tokens []token) ([]token, bool) {
	for i := range tokens {
		tok := tokens[i]
		if tok.kind != tokenClass || tok.negated || len(tok.members) != 2 {
			continue
		}

		if !tok.members[0].single() || !tok.members[1].single() {
			continue
		}

		if !altStart(tokens, i) || !altEnd(tokens, i+1) {
			continue
		}

		repl := []token{
			literalToken(tok.members[0].lo),
			{kind: tokenAlt, text: "|"},
			literalToken(tok.members[1].lo),
		}

		if out, ok := replaceIfShorter(tokens, i, i+1, repl); ok {
			return out, true
		}
	}

	return tokens, false
}

// distributePairGroup rewrites the first atom next to a two-way single-atom
// group that forms a whole alternative: "x(a|b)" becomes "xa|xb" and
// "(a|b)x" becomes "ax|bx".
func distributePairGroup(tokens []token) ([]token, bool) {
	for i := range tokens {
		if !altStart(tokens, i) || !altEnd(tokens, i+6) {
			continue
		}

		if isAtom(tokens[i]) && isPairGroup(tokens, i+1) {
			x, a, b := tokens[i], tokens[i+2], tokens[i+4]
			repl := []token{x, a, {kind: tokenAlt, text: "|"}, x, b}
			if out, ok := replaceIfShorter(tokens, i, i+6, repl); ok {
				return out, true
			}
		}

		if isPairGroup(tokens, i) && isAtom(tokens[i+5]) {
			a, b, x := tokens[i+1], tokens[i+3], tokens[i+5]
			repl := []token{a, x, {kind: tokenAlt, text: "|"}, b, x}
			if out, ok := replaceIfShorter(tokens, i, i+6, repl); ok {
				return out, true
			}
		}
	}

	return tokens, false
}

// isPairGroup reports whether tokens[i:i+5] is "(a|b)" with single atoms.
func isPairGroup(tokens []token, i int) bool {
	if i < 0 || i+5 > len(tokens) {
		return false
	}

	return tokens[i].kind == tokenGroupOpen &&
		isAtom(tokens[i+1]) &&
		tokens[i+2].kind == tokenAlt &&
		isAtom(tokens[i+3]) &&
		tokens[i+4].kind == tokenGroupClose
}

// isAtom reports whether tok is a self-contained single-position unit.
func isAtom(tok token) bool {
	switch tok.kind {
	case tokenLiteral, tokenAnchor, tokenClass, tokenOther:
		return true
	default:
		return false
	}
}

// altStart reports whether an alternative begins at index i.
func altStart(tokens []token, i int) bool {
	if i == 0 {
		return true
	}

	if i < 0 || i > len(tokens) {
		return false
	}

	kind := tokens[i-1].kind
	return kind == tokenAlt || kind == tokenGroupOpen
}

// altEnd reports whether an alternative ends right before index i.
func altEnd(tokens []token, i int) bool {
	if i == len(tokens) {
		return true
	}

	if i < 0 || i > len(tokens) {
		return false
	}

	kind := tokens[i].kind
	return kind == tokenAlt || kind == tokenGroupClose
}

// replaceIfShorter replaces tokens[from:to] with repl when rendered text gets shorter.
func replaceIfShorter(tokens []token, from int, to int, repl []token) ([]token, bool) {
	if len(renderTokens(repl)) >= len(renderTokens(tokens[from:to])) {
		return tokens, false
	}

	out := make([]token, 0, len(tokens)-(to-from)+len(repl))
	out = append(out, tokens[:from]...)
	out = append(out, repl...)
	out = append(out, tokens[to:]...)

	return out, true
}

// isSentinel reports whether r is a word start or end sentinel.
func isSentinel(r rune) bool {
	return r == '^' || r == '$'
}
