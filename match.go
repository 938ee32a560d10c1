// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

// Match locates pattern anywhere in the path, exactly as Includes would,
// and returns the subject's concrete segments at the matched window as a
// new path. Wildcards in the pattern never appear in the result. Returns
// nil when no match exists.
func (p *Path) Match(pattern *Path, opts ...CompareOptions) *Path {
	if pattern == nil {
		return nil
	}

	offset := p.PositionOf(pattern, opts...)
	if offset < 0 {
		return nil
	}

	return p.Slice(offset, offset+len(pattern.segments))
}

// MatchStart locates pattern at the start of the path, exactly as
// StartsWith would, returning the matched concrete prefix or nil.
func (p *Path) MatchStart(pattern *Path, opts ...CompareOptions) *Path {
	if pattern == nil || !p.StartsWith(pattern, opts...) {
		return nil
	}

	return p.Slice(0, len(pattern.segments))
}

// MatchEnd locates pattern at the end of the path, exactly as EndsWith
// would, returning the matched concrete suffix or nil.
func (p *Path) MatchEnd(pattern *Path, opts ...CompareOptions) *Path {
	if pattern == nil || !p.EndsWith(pattern, opts...) {
		return nil
	}

	return p.Slice(len(p.segments)-len(pattern.segments), len(p.segments))
}
