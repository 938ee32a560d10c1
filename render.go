// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"strconv"
	"strings"
)

// renderNotation renders segments in one notation.
func renderNotation(segments []Segment, notation Notation) string {
	switch notation {
	case NotationDot:
		return renderDot(segments)
	case NotationBracket:
		return renderBracket(segments)
	default:
		return renderMixed(segments)
	}
}

// renderMixed renders "foo.bar[0]" style.
//
// Property names that would be ambiguous when re-parsed (empty, numeric,
// containing a dot, opening bracket, or backslash) render bracket-quoted.
func renderMixed(segments []Segment) string {
	var b strings.Builder
	b.Grow(estimateRendered(segments))

	for i, seg := range segments {
		if seg.Kind == KindIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}

		if keyNeedsQuoting(seg.Key) {
			writeQuotedKey(&b, seg.Key)
			continue
		}

		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString(seg.Key)
	}

	return b.String()
}

// renderDot renders "foo.bar.0" style, never brackets.
//
// Literal dots inside names are escaped as "\.". Names containing brackets
// cannot be expressed unambiguously in this notation.
func renderDot(segments []Segment) string {
	var b strings.Builder
	b.Grow(estimateRendered(segments))

	for i, seg := range segments {
		if i > 0 {
			b.WriteByte('.')
		}

		if seg.Kind == KindIndex {
			b.WriteString(strconv.Itoa(seg.Index))
			continue
		}

		writeDotEscapedKey(&b, seg.Key)
	}

	return b.String()
}

// renderBracket renders `["foo"]["bar"][0]` style, every segment bracketed.
func renderBracket(segments []Segment) string {
	var b strings.Builder
	b.Grow(estimateRendered(segments))

	for _, seg := range segments {
		if seg.Kind == KindIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}

		writeQuotedKey(&b, seg.Key)
	}

	return b.String()
}

// renderJSONPointer renders an RFC 6901 JSON Pointer. Root renders as "".
func renderJSONPointer(segments []Segment) string {
	if len(segments) == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(estimateRendered(segments))

	for _, seg := range segments {
		b.WriteByte('/')
		if seg.Kind == KindIndex {
			b.WriteString(strconv.Itoa(seg.Index))
			continue
		}

		writePointerToken(&b, seg.Key)
	}

	return b.String()
}

// renderJSONPath renders an RFC 9535-style JSONPath expression.
func renderJSONPath(segments []Segment) string {
	var b strings.Builder
	b.Grow(estimateRendered(segments) + 1)
	b.WriteByte('$')

	for _, seg := range segments {
		if seg.Kind == KindIndex {
			b.WriteByte('[')
			b.WriteString(strconv.Itoa(seg.Index))
			b.WriteByte(']')
			continue
		}

		if isIdentName(seg.Key) {
			b.WriteByte('.')
			b.WriteString(seg.Key)
			continue
		}

		b.WriteString("['")
		for i := 0; i < len(seg.Key); i++ {
			c := seg.Key[i]
			if c == '\'' || c == '\\' {
				b.WriteByte('\\')
			}

			b.WriteByte(c)
		}

		b.WriteString("']")
	}

	return b.String()
}

// keyNeedsQuoting reports whether a name is ambiguous as a bare mixed token.
func keyNeedsQuoting(key string) bool {
	if key == "" {
		return true
	}

	if _, ok := parseNumericToken(key); ok {
		return true
	}

	return strings.ContainsAny(key, ".[\\")
}

// writeQuotedKey writes `["name"]` with backslash escaping.
func writeQuotedKey(b *strings.Builder, key string) {
	b.WriteString(`["`)
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c == '"' || c == '\\' {
			b.WriteByte('\\')
		}

		b.WriteByte(c)
	}

	b.WriteString(`"]`)
}

// writeDotEscapedKey writes a name with literal dots escaped as "\.".
func writeDotEscapedKey(b *strings.Builder, key string) {
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			b.WriteByte('\\')
		}

		b.WriteByte(key[i])
	}
}

// writePointerToken writes one RFC 6901 reference token ("~"→"~0", "/"→"~1").
func writePointerToken(b *strings.Builder, token string) {
	for i := 0; i < len(token); i++ {
		switch token[i] {
		case '~':
			b.WriteString("~0")
		case '/':
			b.WriteString("~1")
		default:
			b.WriteByte(token[i])
		}
	}
}

// isIdentName reports whether name is safe for JSONPath ".name" shorthand.
func isIdentName(name string) bool {
	if name == "" {
		return false
	}

	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			continue
		}

		if i > 0 && c >= '0' && c <= '9' {
			continue
		}

		return false
	}

	return true
}

// estimateRendered estimates rendered length for builder preallocation.
func estimateRendered(segments []Segment) int {
	total := 0
	for _, seg := range segments {
		if seg.Kind == KindIndex {
			total += 6
			continue
		}

		total += len(seg.Key) + 4
	}

	return total
}
