// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"fmt"
	"strconv"
)

// SegmentKind discriminates property-name and array-index segments.
type SegmentKind uint8

const (
	// KindInvalid is unset/invalid segment kind placeholder.
	KindInvalid SegmentKind = iota
	// KindKey is a string property-name segment.
	KindKey
	// KindIndex is an integer array-index segment.
	KindIndex
)

// Segment is one path component: a property name or an array index.
// Segments are plain values compared by kind and value.
type Segment struct {
	// Key is the property name when Kind is KindKey.
	Key string `json:"key,omitempty"`
	// Index is the array index when Kind is KindIndex.
	Index int `json:"index,omitempty"`
	// Kind discriminates which field carries the value.
	Kind SegmentKind `json:"kind"`
}

// KeySegment builds a property-name segment.
func KeySegment(name string) Segment {
	return Segment{Kind: KindKey, Key: name}
}

// IndexSegment builds an array-index segment.
func IndexSegment(index int) Segment {
	return Segment{Kind: KindIndex, Index: index}
}

// String renders one segment alone, mixed-notation style.
func (s Segment) String() string {
	switch s.Kind {
	case KindKey:
		return s.Key
	case KindIndex:
		return "[" + strconv.Itoa(s.Index) + "]"
	default:
		return "<invalid>"
	}
}

// valid reports whether segment kind is supported.
func (s Segment) valid() bool {
	return s.Kind == KindKey || s.Kind == KindIndex
}

// Notation selects one textual rendering style.
type Notation uint8

const (
	// NotationUnset is unset/invalid notation placeholder.
	NotationUnset Notation = iota
	// NotationMixed renders "foo.bar[0]" style.
	NotationMixed
	// NotationDot renders "foo.bar.0" style, never brackets.
	NotationDot
	// NotationBracket renders `["foo"]["bar"][0]` style, always brackets.
	NotationBracket
)

// valid reports whether notation value is supported.
func (n Notation) valid() bool {
	return n == NotationMixed || n == NotationDot || n == NotationBracket
}

// String returns notation name.
func (n Notation) String() string {
	switch n {
	case NotationMixed:
		return "mixed"
	case NotationDot:
		return "dot"
	case NotationBracket:
		return "bracket"
	default:
		return "unset"
	}
}

// ParseNotation parses a notation name.
func ParseNotation(name string) (Notation, error) {
	switch name {
	case "mixed":
		return NotationMixed, nil
	case "dot":
		return NotationDot, nil
	case "bracket":
		return NotationBracket, nil
	default:
		return NotationUnset, fmt.Errorf("%w: %q", ErrInvalidNotation, name)
	}
}

// IndicesMode selects index comparison behavior.
type IndicesMode uint8

const (
	// IndicesUnset is unset/invalid mode placeholder.
	IndicesUnset IndicesMode = iota
	// IndicesPreserve requires equal index values (wildcards aside).
	IndicesPreserve
	// IndicesIgnore lets any index value match any other.
	IndicesIgnore
)

// valid reports whether indices mode value is supported.
func (m IndicesMode) valid() bool {
	return m == IndicesPreserve || m == IndicesIgnore
}

// String returns indices mode name.
func (m IndicesMode) String() string {
	switch m {
	case IndicesPreserve:
		return "preserve"
	case IndicesIgnore:
		return "ignore"
	default:
		return "unset"
	}
}

// ParseIndicesMode parses an indices mode name.
func ParseIndicesMode(name string) (IndicesMode, error) {
	switch name {
	case "preserve":
		return IndicesPreserve, nil
	case "ignore":
		return IndicesIgnore, nil
	default:
		return IndicesUnset, fmt.Errorf("%w: %q", ErrInvalidIndicesMode, name)
	}
}
