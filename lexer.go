// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// tokenKind classifies one lexed pattern token.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota + 1
	tokenAnchor
	tokenClass
	tokenGroupOpen
	tokenGroupClose
	tokenAlt
	tokenQuant
	// tokenOther is an opaque unit such as "." or "\d".
	tokenOther
)

// token is one lexical unit of a pattern.
type token struct {
	// text is exact source text of the token.
	text string
	// members are class members, set for tokenClass.
	members []classMember
	// r is matched rune, set for tokenLiteral.
	r rune
	kind tokenKind
	// negated reports "[^...]" class.
	negated bool
}

// classMember is one character or range inside a class.
type classMember struct {
	// text is member source text.
	text string
	// lo and hi are range bounds, equal for one character, -1 for opaque escapes.
	lo rune
	hi rune
}

// single reports whether member is exactly one known character.
func (m classMember) single() bool {
	return m.lo >= 0 && m.lo == m.hi
}

// lexPattern splits regexp source into tokens.
//
// Only the syntax produced by synthesizers and rewrite passes is understood
// structurally; other escapes are kept as opaque tokens.
func lexPattern(src string) ([]token, error) {
	tokens := make([]token, 0, len(src))

	for i := 0; i < len(src); {
		r, size := utf8.DecodeRuneInString(src[i:])

		switch r {
		case '\\':
			esc, escSize := utf8.DecodeRuneInString(src[i+size:])
			if escSize == 0 {
				return nil, fmt.Errorf("%w: trailing backslash in %q", ErrInvalidPattern, src)
			}

			text := src[i : i+size+escSize]
			if isAlnum(esc) {
				tokens = append(tokens, token{kind: tokenOther, text: text})
			} else {
				tokens = append(tokens, token{kind: tokenLiteral, text: text, r: esc})
			}

			i += size + escSize
		case '[':
			tok, end, err := lexClass(src, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, tok)
			i = end
		case '(':
			switch {
			case strings.HasPrefix(src[i:], "(?:"):
				tokens = append(tokens, token{kind: tokenGroupOpen, text: "(?:"})
				i += 3
			case strings.HasPrefix(src[i:], "(?"):
				return nil, fmt.Errorf("%w: unsupported group syntax at offset %d in %q", ErrInvalidPattern, i, src)
			default:
				tokens = append(tokens, token{kind: tokenGroupOpen, text: "("})
				i++
			}
		case ')':
			tokens = append(tokens, token{kind: tokenGroupClose, text: ")"})
			i++
		case '|':
			tokens = append(tokens, token{kind: tokenAlt, text: "|"})
			i++
		case '?', '*', '+':
			end := i + 1
			if end < len(src) && src[end] == '?' {
				end++
			}

			tokens = append(tokens, token{kind: tokenQuant, text: src[i:end]})
			i = end
		case '{':
			if end := repeatEnd(src, i); end > 0 {
				tokens = append(tokens, token{kind: tokenQuant, text: src[i:end]})
				i = end
				continue
			}

			tokens = append(tokens, token{kind: tokenLiteral, text: "{", r: '{'})
			i++
		case '^', '$':
			tokens = append(tokens, token{kind: tokenAnchor, text: string(r)})
			i++
		case '.':
			tokens = append(tokens, token{kind: tokenOther, text: "."})
			i++
		default:
			tokens = append(tokens, token{kind: tokenLiteral, text: src[i : i+size], r: r})
			i += size
		}
	}

	return tokens, nil
}

// lexClass parses a "[...]" class starting at start and returns token and end offset.
func lexClass(src string, start int) (token, int, error) {
	tok := token{kind: tokenClass}
	idx := start + 1
	if idx < len(src) && src[idx] == '^' {
		tok.negated = true
		idx++
	}

	first := true
	for idx < len(src) {
		if src[idx] == ']' && !first {
			tok.text = src[start : idx+1]
			return tok, idx + 1, nil
		}

		first = false
		lo, loEnd, err := lexClassChar(src, idx)
		if err != nil {
			return token{}, 0, err
		}

		member := classMember{text: src[idx:loEnd], lo: lo, hi: lo}
		// "a-z" is a range unless "-" is the last class character.
		if loEnd+1 < len(src) && src[loEnd] == '-' && src[loEnd+1] != ']' {
			hi, hiEnd, err := lexClassChar(src, loEnd+1)
			if err != nil {
				return token{}, 0, err
			}

			member = classMember{text: src[idx:hiEnd], lo: lo, hi: hi}
			if lo < 0 || hi < 0 {
				member.lo, member.hi = -1, -1
			}

			loEnd = hiEnd
		}

		tok.members = append(tok.members, member)
		idx = loEnd
	}

	return token{}, 0, fmt.Errorf("%w: unterminated class at offset %d in %q", ErrInvalidPattern, start, src)
}

// lexClassChar reads one possibly escaped class character.
// Alphanumeric escapes such as "\d" are reported as -1.
func lexClassChar(src string, idx int) (rune, int, error) {
	r, size := utf8.DecodeRuneInString(src[idx:])
	if r != '\\' {
		return r, idx + size, nil
	}

	esc, escSize := utf8.DecodeRuneInString(src[idx+size:])
	if escSize == 0 {
		return 0, 0, fmt.Errorf("%w: trailing backslash in %q", ErrInvalidPattern, src)
	}

	if isAlnum(esc) {
		return -1, idx + size + escSize, nil
	}

	return esc, idx + size + escSize, nil
}

// repeatEnd returns end offset of "{n}", "{n,}" or "{n,m}" at start, or 0.
func repeatEnd(src string, start int) int {
	idx := start + 1
	digits := 0
	for idx < len(src) && src[idx] >= '0' && src[idx] <= '9' {
		idx++
		digits++
	}

	if digits == 0 || idx >= len(src) {
		return 0
	}

	if src[idx] == ',' {
		idx++
		for idx < len(src) && src[idx] >= '0' && src[idx] <= '9' {
			idx++
		}
	}

	if idx < len(src) && src[idx] == '}' {
		return idx + 1
	}

	return 0
}

// renderTokens joins token texts back into pattern source.
func renderTokens(tokens []token) string {
	var b strings.Builder
	for i := range tokens {
		b.WriteString(tokens[i].text)
	}

	return b.String()
}

// literalToken builds canonical literal token for r outside a class.
func literalToken(r rune) token {
	return token{kind: tokenLiteral, text: escapeLiteral(r, false), r: r}
}

// classToken builds canonical class token from members.
func classToken(members []classMember, negated bool) token {
	var b strings.Builder
	b.WriteByte('[')
	if negated {
		b.WriteByte('^')
	}

	for _, m := range members {
		if m.single() {
			b.WriteString(escapeClassMember(m.lo))
			continue
		}

		b.WriteString(m.text)
	}

	b.WriteByte(']')

	return token{
		kind:    tokenClass,
		text:    b.String(),
		members: members,
		negated: negated,
	}
}
