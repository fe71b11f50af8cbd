// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/discrex

package discrex

import (
	"slices"
	"strings"
)

// Synthesizer compiles a set of strings into a pattern matching exactly their union.
//
// Fragments are plain text: "^" and "$" are ordinary characters for a
// synthesizer and must come out escaped.
type Synthesizer interface {
	Synthesize(fragments []string) (string, error)
}

// SynthesizerFunc adapts a function to Synthesizer.
type SynthesizerFunc func(fragments []string) (string, error)

// Synthesize calls f(fragments).
func (f SynthesizerFunc) Synthesize(fragments []string) (string, error) {
	return f(fragments)
}

// AlternationSynthesizer joins sorted unique escaped fragments with "|".
type AlternationSynthesizer struct{}

// Synthesize implements Synthesizer.
func (AlternationSynthesizer) Synthesize(fragments []string) (string, error) {
	if len(fragments) == 0 {
		return "", ErrNoFragments
	}

	unique := slices.Clone(fragments)
	slices.Sort(unique)
	unique = slices.Compact(unique)

	var b strings.Builder
	for i, fragment := range unique {
		if i > 0 {
			b.WriteByte('|')
		}

		for _, r := range fragment {
			b.WriteString(escapeLiteral(r, true))
		}
	}

	return b.String(), nil
}

// TrieSynthesizer builds a rune trie of fragments and emits it as nested alternations.
//
// Sibling branches with identical remainders share one character class, nodes
// that end a fragment and continue make their continuation optional.
type TrieSynthesizer struct{}

// trieNode is one rune trie node.
type trieNode struct {
	children map[rune]*trieNode
	// end reports whether a fragment ends at this node.
	end bool
}

// alternative is one emitted branch of a trie node.
type alternative struct {
	text string
	// atom reports whether text is a single literal or class.
	atom bool
}

// Synthesize implements Synthesizer.
func (TrieSynthesizer) Synthesize(fragments []string) (string, error) {
	if len(fragments) == 0 {
		return "", ErrNoFragments
	}

	root := &trieNode{}
	for _, fragment := range fragments {
		root.insert(fragment)
	}

	if root.end {
		// Empty fragment matches everywhere.
		return "", nil
	}

	return joinAlternatives(root.alternatives()), nil
}

// insert adds one fragment path to the trie.
func (n *trieNode) insert(fragment string) {
	cur := n
	for _, r := range fragment {
		if cur.children == nil {
			cur.children = make(map[rune]*trieNode)
		}

		next, ok := cur.children[r]
		if !ok {
			next = &trieNode{}
			cur.children[r] = next
		}

		cur = next
	}

	cur.end = true
}

// emit returns pattern matching exactly the suffixes reachable from n.
func (n *trieNode) emit() string {
	alts := n.alternatives()
	if len(alts) == 0 {
		return ""
	}

	if len(alts) == 1 {
		switch {
		case !n.end:
			return alts[0].text
		case alts[0].atom:
			return alts[0].text + "?"
		default:
			return "(?:" + alts[0].text + ")?"
		}
	}

	group := "(?:" + joinAlternatives(alts) + ")"
	if n.end {
		return group + "?"
	}

	return group
}

// joinAlternatives joins alternative texts with "|".
func joinAlternatives(alts []alternative) string {
	texts := make([]string, len(alts))
	for i := range alts {
		texts[i] = alts[i].text
	}

	return strings.Join(texts, "|")
}

// alternatives emits child branches; heads sharing identical tails merge into a class.
func (n *trieNode) alternatives() []alternative {
	if len(n.children) == 0 {
		return nil
	}

	heads := make([]rune, 0, len(n.children))
	for r := range n.children {
		heads = append(heads, r)
	}
	slices.Sort(heads)

	tails := make([]string, 0, len(heads))
	byTail := make(map[string][]rune, len(heads))
	for _, r := range heads {
		tail := n.children[r].emit()
		if _, ok := byTail[tail]; !ok {
			tails = append(tails, tail)
		}

		byTail[tail] = append(byTail[tail], r)
	}

	alts := make([]alternative, 0, len(tails))
	for _, tail := range tails {
		runes := byTail[tail]
		head := escapeLiteral(runes[0], true)
		if len(runes) > 1 {
			head = classOf(runes)
		}

		alts = append(alts, alternative{
			text: head + tail,
			atom: tail == "",
		})
	}

	return alts
}

// classOf renders sorted runes as a character class, folding long alphanumeric runs into ranges.
func classOf(runes []rune) string {
	var b strings.Builder
	b.WriteByte('[')

	for i := 0; i < len(runes); {
		j := i
		for j+1 < len(runes) && runes[j+1] == runes[j]+1 && isAlnum(runes[j+1]) && isAlnum(runes[i]) {
			j++
		}

		if j-i+1 >= 4 {
			b.WriteRune(runes[i])
			b.WriteByte('-')
			b.WriteRune(runes[j])
			i = j + 1
			continue
		}

		b.WriteString(escapeClassMember(runes[i]))
		i++
	}

	b.WriteByte(']')
	return b.String()
}

// escapeLiteral escapes one rune for use outside a character class.
// When hyphen is true "-" is escaped as well.
func escapeLiteral(r rune, hyphen bool) string {
	switch r {
	case '.', '+', '*', '?', '(', ')', '|', '{', '}', '[', ']', '^', '$', '\\':
		return `\` + string(r)
	case '-':
		if hyphen {
			return `\-`
		}
	}

	return string(r)
}

// escapeClassMember escapes one rune for use inside a character class.
func escapeClassMember(r rune) string {
	if r < 0x80 && isPunct(r) {
		return `\` + string(r)
	}

	return string(r)
}

// isAlnum reports whether r is an ASCII letter or digit.
func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// isPunct reports whether r is printable ASCII punctuation.
func isPunct(r rune) bool {
	return r > ' ' && r < 0x7f && !isAlnum(r)
}
