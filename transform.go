// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import "fmt"

// Slice returns the segments in [start, end) as a new path. Negative bounds
// count from the end; out-of-range bounds clamp. Never fails.
func (p *Path) Slice(start, end int) *Path {
	start = normalizeBound(start, len(p.segments))
	end = normalizeBound(end, len(p.segments))
	if start >= end {
		return derive(nil, p.config)
	}

	return derive(append([]Segment(nil), p.segments[start:end]...), p.config)
}

// SliceFrom returns the segments from start through the end as a new path.
func (p *Path) SliceFrom(start int) *Path {
	return p.Slice(start, len(p.segments))
}

// normalizeBound resolves one slice bound against length.
func normalizeBound(bound, length int) int {
	if bound < 0 {
		bound += length
	}

	if bound < 0 {
		return 0
	}

	if bound > length {
		return length
	}

	return bound
}

// Concat appends each part's segments in argument order as a new path.
// Parts may be path strings, segment slices, or *Path values; anything else
// fails with ErrInvalidArgument. Configuration propagates from the receiver.
func (p *Path) Concat(parts ...any) (*Path, error) {
	out := append([]Segment(nil), p.segments...)
	for i, part := range parts {
		segments, err := coerceSegments(part, p.config)
		if err != nil {
			return nil, fmt.Errorf("concat part %d: %w", i, err)
		}

		out = append(out, segments...)
	}

	return derive(out, p.config), nil
}

// Merge joins other onto the receiver, deduplicating the longest suffix of
// the receiver that matches a prefix of other under the receiver's
// comparison semantics. Concrete segments win over wildcards inside the
// overlap; with no overlap the result is plain concatenation.
func (p *Path) Merge(other *Path) *Path {
	if other == nil {
		return derive(append([]Segment(nil), p.segments...), p.config)
	}

	cc := receiverSemantics(p)
	overlap := overlapLength(p.segments, other.segments, cc)

	out := make([]Segment, 0, len(p.segments)+len(other.segments)-overlap)
	out = append(out, p.segments[:len(p.segments)-overlap]...)

	for k := 0; k < overlap; k++ {
		ours := p.segments[len(p.segments)-overlap+k]
		theirs := other.segments[k]
		if containsSegment(cc.wildcards, ours) && !containsSegment(cc.wildcards, theirs) {
			ours = theirs
		}

		out = append(out, ours)
	}

	return derive(append(out, other.segments[overlap:]...), p.config)
}

// overlapLength finds the longest suffix-of-a / prefix-of-b match, trying
// the longest candidate first so shorter accidental overlaps never win.
func overlapLength(a, b []Segment, cc compareConfig) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	for n := limit; n >= 1; n-- {
		if overlapMatchesAt(a, b, n, cc) {
			return n
		}
	}

	return 0
}

// overlapMatchesAt checks an overlap of n segments, wildcard-aware on both
// sides.
func overlapMatchesAt(a, b []Segment, n int, cc compareConfig) bool {
	at := len(a) - n
	for k := 0; k < n; k++ {
		if !segmentMatches(a[at+k], b[k], cc) {
			return false
		}
	}

	return true
}

// receiverSemantics resolves comparison semantics from the receiver's own
// configuration, used by operations the receiver drives (Merge, RelativeTo,
// CommonStart, CommonEnd).
func receiverSemantics(p *Path) compareConfig {
	return compareConfig{
		wildcards:     p.config.Wildcards,
		ignoreIndices: p.config.Indices == IndicesIgnore,
	}
}

// RelativeTo returns the suffix after base when the receiver starts with
// base under the receiver's semantics, or nil when base does not apply.
// It is the left inverse of Concat: base.Concat(full.RelativeTo(base))
// reproduces full whenever the result is non-nil.
func (p *Path) RelativeTo(base *Path) *Path {
	if base == nil {
		return derive(append([]Segment(nil), p.segments...), p.config)
	}

	if len(base.segments) > len(p.segments) {
		return nil
	}

	if !matchesAt(p.segments, base.segments, 0, receiverSemantics(p)) {
		return nil
	}

	return derive(append([]Segment(nil), p.segments[len(base.segments):]...), p.config)
}

// CommonStart returns the longest pairwise-matching prefix of the receiver
// and other, as the receiver's concrete segments. Empty when the very first
// comparison fails.
func (p *Path) CommonStart(other *Path) *Path {
	if other == nil {
		return derive(nil, p.config)
	}

	cc := receiverSemantics(p)
	limit := len(p.segments)
	if len(other.segments) < limit {
		limit = len(other.segments)
	}

	n := 0
	for n < limit && segmentMatches(p.segments[n], other.segments[n], cc) {
		n++
	}

	return p.Slice(0, n)
}

// CommonEnd returns the longest pairwise-matching suffix of the receiver
// and other, as the receiver's concrete segments.
func (p *Path) CommonEnd(other *Path) *Path {
	if other == nil {
		return derive(nil, p.config)
	}

	cc := receiverSemantics(p)
	limit := len(p.segments)
	if len(other.segments) < limit {
		limit = len(other.segments)
	}

	n := 0
	for n < limit && segmentMatches(p.segments[len(p.segments)-1-n], other.segments[len(other.segments)-1-n], cc) {
		n++
	}

	return p.Slice(len(p.segments)-n, len(p.segments))
}
