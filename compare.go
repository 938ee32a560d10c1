// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

// compareConfig is the resolved semantics for one comparison call.
type compareConfig struct {
	// wildcards match any segment of the same kind.
	wildcards []Segment
	// ignoreIndices lets any two index values match.
	ignoreIndices bool
}

// compareSemantics resolves comparison semantics from the pattern side's
// configuration, overridden by optional per-call CompareOptions.
func compareSemantics(pattern *Path, opts []CompareOptions) compareConfig {
	cc := compareConfig{
		wildcards:     pattern.config.Wildcards,
		ignoreIndices: pattern.config.Indices == IndicesIgnore,
	}

	if len(opts) == 0 {
		return cc
	}

	opt := opts[0]
	if opt.Indices.valid() {
		cc.ignoreIndices = opt.Indices == IndicesIgnore
	}

	if opt.Wildcards != nil {
		cc.wildcards = opt.Wildcards
	}

	return cc
}

// segmentMatches matches one pattern segment against one subject segment.
//
// Keys match on equality or a wildcard key on either side; indices match on
// equality, ignore mode, or a wildcard index on either side, keeping
// comparison symmetric. Mismatched kinds never match.
func segmentMatches(subject, pattern Segment, cc compareConfig) bool {
	if subject.Kind != pattern.Kind {
		return false
	}

	if pattern.Kind == KindKey {
		if subject.Key == pattern.Key {
			return true
		}
	} else if cc.ignoreIndices || subject.Index == pattern.Index {
		return true
	}

	return containsSegment(cc.wildcards, pattern) || containsSegment(cc.wildcards, subject)
}

// matchesAt reports whether pattern matches subject at offset.
// Caller guarantees offset+len(pattern) <= len(subject).
func matchesAt(subject, pattern []Segment, offset int, cc compareConfig) bool {
	for i := range pattern {
		if !segmentMatches(subject[offset+i], pattern[i], cc) {
			return false
		}
	}

	return true
}

// Equals reports whether other matches the whole path, segment by segment.
//
// Semantics come from other's configuration unless CompareOptions override.
// Under IndicesIgnore or wildcards the relation is deliberately not
// transitive.
func (p *Path) Equals(other *Path, opts ...CompareOptions) bool {
	if other == nil || len(p.segments) != len(other.segments) {
		return false
	}

	return matchesAt(p.segments, other.segments, 0, compareSemantics(other, opts))
}

// StartsWith reports whether prefix matches the start of the path.
func (p *Path) StartsWith(prefix *Path, opts ...CompareOptions) bool {
	if prefix == nil || len(prefix.segments) > len(p.segments) {
		return false
	}

	return matchesAt(p.segments, prefix.segments, 0, compareSemantics(prefix, opts))
}

// EndsWith reports whether suffix matches the end of the path.
func (p *Path) EndsWith(suffix *Path, opts ...CompareOptions) bool {
	if suffix == nil || len(suffix.segments) > len(p.segments) {
		return false
	}

	offset := len(p.segments) - len(suffix.segments)
	return matchesAt(p.segments, suffix.segments, offset, compareSemantics(suffix, opts))
}

// Includes reports whether pattern matches anywhere in the path.
func (p *Path) Includes(pattern *Path, opts ...CompareOptions) bool {
	return p.PositionOf(pattern, opts...) >= 0
}

// PositionOf returns the first offset where pattern matches, or -1.
// An empty pattern matches at offset 0.
func (p *Path) PositionOf(pattern *Path, opts ...CompareOptions) int {
	if pattern == nil || len(pattern.segments) > len(p.segments) {
		return -1
	}

	cc := compareSemantics(pattern, opts)
	last := len(p.segments) - len(pattern.segments)
	for offset := 0; offset <= last; offset++ {
		if matchesAt(p.segments, pattern.segments, offset, cc) {
			return offset
		}
	}

	return -1
}

// LastPositionOf returns the last offset where pattern matches, or -1.
// An empty pattern matches at offset Len().
func (p *Path) LastPositionOf(pattern *Path, opts ...CompareOptions) int {
	if pattern == nil || len(pattern.segments) > len(p.segments) {
		return -1
	}

	cc := compareSemantics(pattern, opts)
	for offset := len(p.segments) - len(pattern.segments); offset >= 0; offset-- {
		if matchesAt(p.segments, pattern.segments, offset, cc) {
			return offset
		}
	}

	return -1
}
