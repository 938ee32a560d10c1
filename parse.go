// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// parseString parses freely mixed dot/bracket path syntax into segments.
//
// Accepted forms:
//   - bare or ".name" tokens as property names, "\." escaping a literal dot
//   - "[0]" as array index, negative values only for configured wildcards
//   - `["name"]` / `['name']` as quoted property names, backslash escaping
//     the next character inside quotes
//
// All-digit bare tokens parse as indices so dot notation round-trips.
func parseString(input string, wildcards []Segment) ([]Segment, error) {
	if input == "" {
		return nil, nil
	}

	segments := make([]Segment, 0, strings.Count(input, ".")+strings.Count(input, "[")+1)

	i := 0
	for i < len(input) {
		switch input[i] {
		case '[':
			seg, next, err := parseBracket(input, i)
			if err != nil {
				return nil, err
			}

			if err := validateIndex(seg, wildcards, i); err != nil {
				return nil, err
			}

			segments = append(segments, seg)
			i = next

		case '.':
			// Leading ".name" and separator dots share one branch; the token
			// itself always starts after the dot.
			seg, next, err := parseBareToken(input, i+1)
			if err != nil {
				return nil, err
			}

			if err := validateIndex(seg, wildcards, i); err != nil {
				return nil, err
			}

			segments = append(segments, seg)
			i = next

		default:
			if i != 0 {
				return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrInvalidPath, input[i], i)
			}

			seg, next, err := parseBareToken(input, 0)
			if err != nil {
				return nil, err
			}

			if err := validateIndex(seg, wildcards, i); err != nil {
				return nil, err
			}

			segments = append(segments, seg)
			i = next
		}
	}

	return segments, nil
}

// parseBareToken scans one unbracketed token starting at start.
func parseBareToken(input string, start int) (Segment, int, error) {
	j := start
	escaped := false
	for j < len(input) {
		if input[j] == '\\' && j+1 < len(input) && input[j+1] == '.' {
			escaped = true
			j += 2
			continue
		}

		if input[j] == '.' || input[j] == '[' {
			break
		}

		j++
	}

	raw := input[start:j]
	if raw == "" {
		return Segment{}, 0, fmt.Errorf("%w: empty segment at offset %d", ErrInvalidPath, start)
	}

	token := raw
	if escaped {
		token = unescapeDots(raw)
	}

	if index, ok := parseNumericToken(token); ok && !escaped {
		return IndexSegment(index), j, nil
	}

	return KeySegment(token), j, nil
}

// parseBracket scans one "[...]" segment starting at the opening bracket.
func parseBracket(input string, start int) (Segment, int, error) {
	j := start + 1
	if j >= len(input) {
		return Segment{}, 0, fmt.Errorf("%w: unterminated bracket at offset %d", ErrInvalidPath, start)
	}

	if quote := input[j]; quote == '"' || quote == '\'' {
		return parseQuoted(input, start, j, quote)
	}

	k := j
	if k < len(input) && input[k] == '-' {
		k++
	}

	digits := k
	for k < len(input) && input[k] >= '0' && input[k] <= '9' {
		k++
	}

	if k == digits {
		return Segment{}, 0, fmt.Errorf("%w: expected index or quoted name at offset %d", ErrInvalidPath, j)
	}

	if k >= len(input) || input[k] != ']' {
		return Segment{}, 0, fmt.Errorf("%w: unterminated bracket at offset %d", ErrInvalidPath, start)
	}

	index, err := strconv.Atoi(input[j:k])
	if err != nil {
		return Segment{}, 0, fmt.Errorf("%w: index %q at offset %d", ErrInvalidPath, input[j:k], j)
	}

	return IndexSegment(index), k + 1, nil
}

// parseQuoted scans one bracket-quoted name starting at the quote character.
func parseQuoted(input string, start, quoteAt int, quote byte) (Segment, int, error) {
	k := quoteAt + 1
	escaped := false
	for k < len(input) {
		if input[k] == '\\' && k+1 < len(input) {
			escaped = true
			k += 2
			continue
		}

		if input[k] == quote {
			break
		}

		k++
	}

	if k >= len(input) {
		return Segment{}, 0, fmt.Errorf("%w: unterminated quote at offset %d", ErrInvalidPath, quoteAt)
	}

	if k+1 >= len(input) || input[k+1] != ']' {
		return Segment{}, 0, fmt.Errorf("%w: unterminated bracket at offset %d", ErrInvalidPath, start)
	}

	raw := input[quoteAt+1 : k]
	if escaped {
		raw = unescapeBackslashes(raw)
	}

	return KeySegment(raw), k + 2, nil
}

// parseNumericToken parses an optionally negative all-digit token.
func parseNumericToken(token string) (int, bool) {
	digits := token
	if strings.HasPrefix(digits, "-") {
		digits = digits[1:]
	}

	if digits == "" {
		return 0, false
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}

	index, err := strconv.Atoi(token)
	if err != nil {
		return 0, false
	}

	return index, true
}

// unescapeDots rewrites "\." escapes to literal dots.
func unescapeDots(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) && raw[i+1] == '.' {
			b.WriteByte('.')
			i++
			continue
		}

		b.WriteByte(raw[i])
	}

	return b.String()
}

// unescapeBackslashes drops one level of backslash escaping.
func unescapeBackslashes(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))

	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			i++
		}

		b.WriteByte(raw[i])
	}

	return b.String()
}

// validateIndex rejects negative indices outside the wildcard set.
func validateIndex(seg Segment, wildcards []Segment, offset int) error {
	if seg.Kind != KindIndex || seg.Index >= 0 {
		return nil
	}

	if containsSegment(wildcards, seg) {
		return nil
	}

	return fmt.Errorf("%w: negative index %d at offset %d", ErrInvalidPath, seg.Index, offset)
}

// validateSegments validates and copies caller-supplied segments.
func validateSegments(segments []Segment, wildcards []Segment) ([]Segment, error) {
	out := make([]Segment, 0, len(segments))
	for i, seg := range segments {
		if !seg.valid() {
			return nil, fmt.Errorf("%w: entry %d has kind %d", ErrInvalidSegment, i, seg.Kind)
		}

		if seg.Kind == KindIndex && seg.Index < 0 && !containsSegment(wildcards, seg) {
			return nil, fmt.Errorf("%w: entry %d has negative index %d", ErrInvalidSegment, i, seg.Index)
		}

		out = append(out, seg)
	}

	return out, nil
}

// segmentsFromAny converts JSON-decoded-shape entries to segments.
//
// Strings become property names. Numbers must be finite, integral, and
// non-negative unless the value is a configured wildcard.
func segmentsFromAny(entries []any, wildcards []Segment) ([]Segment, error) {
	out := make([]Segment, 0, len(entries))
	for i, entry := range entries {
		switch v := entry.(type) {
		case string:
			out = append(out, KeySegment(v))

		case int:
			seg := IndexSegment(v)
			if v < 0 && !containsSegment(wildcards, seg) {
				return nil, fmt.Errorf("%w: entry %d has negative index %d", ErrInvalidSegment, i, v)
			}

			out = append(out, seg)

		case int64:
			seg := IndexSegment(int(v))
			if v < 0 && !containsSegment(wildcards, seg) {
				return nil, fmt.Errorf("%w: entry %d has negative index %d", ErrInvalidSegment, i, v)
			}

			out = append(out, seg)

		case float64:
			if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: entry %d is not a finite integer (%v)", ErrInvalidSegment, i, v)
			}

			seg := IndexSegment(int(v))
			if v < 0 && !containsSegment(wildcards, seg) {
				return nil, fmt.Errorf("%w: entry %d has negative index %v", ErrInvalidSegment, i, v)
			}

			out = append(out, seg)

		default:
			return nil, fmt.Errorf("%w: entry %d has unsupported type %T", ErrInvalidSegment, i, entry)
		}
	}

	return out, nil
}

// coerceSegments converts one supported input form to segments.
func coerceSegments(input any, cfg Config) ([]Segment, error) {
	switch v := input.(type) {
	case string:
		return parseString(v, cfg.Wildcards)
	case []Segment:
		return validateSegments(v, cfg.Wildcards)
	case []any:
		return segmentsFromAny(v, cfg.Wildcards)
	case []string:
		out := make([]Segment, 0, len(v))
		for _, name := range v {
			out = append(out, KeySegment(name))
		}

		return out, nil
	case *Path:
		if v == nil {
			return nil, fmt.Errorf("%w: nil path", ErrInvalidArgument)
		}

		return append([]Segment(nil), v.segments...), nil
	default:
		return nil, fmt.Errorf("%w: unsupported input type %T", ErrInvalidArgument, input)
	}
}
