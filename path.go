// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"fmt"
	"iter"
	"sync"
)

// Path is an immutable ordered sequence of segments plus a resolved
// configuration. All operations return new instances; derived values are
// computed once per instance and cached, safe under concurrent first access.
type Path struct {
	segments []Segment
	config   Config

	// renders caches one rendered string per notation value.
	renders [notationCount]memoCell[string]
	// pointer caches the RFC 6901 export.
	pointer memoCell[string]
	// jsonPath caches the RFC 9535 export.
	jsonPath memoCell[string]
	// nodes caches the tree-node run scan.
	nodes memoCell[nodeRun]
}

// notationCount sizes the per-notation render cache (NotationUnset included).
const notationCount = 4

// memoCell is a compute-once slot for a lazily derived value.
type memoCell[T any] struct {
	once sync.Once
	v    T
}

// get returns the cached value, computing it on first access.
func (c *memoCell[T]) get(compute func() T) T {
	c.once.Do(func() { c.v = compute() })
	return c.v
}

// From builds a path from a string, a segment slice ([]Segment, []string, or
// JSON-decoded []any), or an existing *Path (copy with optional config
// override). At most one Options value applies; zero-valued option fields
// inherit from the source path's configuration or the process-wide defaults.
func From(input any, opts ...Options) (*Path, error) {
	base := defaults
	if p, ok := input.(*Path); ok && p != nil {
		base = p.config
	}

	cfg := resolveConfig(base, opts)
	segments, err := coerceSegments(input, cfg)
	if err != nil {
		return nil, err
	}

	return &Path{segments: segments, config: cfg}, nil
}

// MustFrom is From that panics on invalid input. Intended for literals.
func MustFrom(input any, opts ...Options) *Path {
	p, err := From(input, opts...)
	if err != nil {
		panic(fmt.Sprintf("pathist: MustFrom: %v", err))
	}

	return p
}

// derive builds a path from already-validated segments, inheriting cfg.
func derive(segments []Segment, cfg Config) *Path {
	return &Path{segments: segments, config: cfg}
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segments)
}

// IsRoot reports whether the path has no segments.
func (p *Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Segments returns a copy of the segment sequence.
func (p *Path) Segments() []Segment {
	return append([]Segment(nil), p.segments...)
}

// Config returns a copy of the resolved instance configuration.
func (p *Path) Config() Config {
	return cloneConfig(p.config)
}

// String renders the path in the instance's configured notation.
// The result is cached; repeated calls return the identical string.
func (p *Path) String() string {
	return p.StringAs(p.config.Notation)
}

// StringAs renders the path in the given notation, caching per notation.
// An unset or unknown notation falls back to the instance's configured one.
func (p *Path) StringAs(notation Notation) string {
	if !notation.valid() {
		notation = p.config.Notation
	}

	return p.renders[notation].get(func() string {
		return renderNotation(p.segments, notation)
	})
}

// JSONPointer exports the path as an RFC 6901 JSON Pointer. Output only;
// pointers are not accepted back as parse input.
func (p *Path) JSONPointer() string {
	return p.pointer.get(func() string {
		return renderJSONPointer(p.segments)
	})
}

// JSONPath exports the path as an RFC 9535-style JSONPath expression.
// Output only, like JSONPointer.
func (p *Path) JSONPath() string {
	return p.jsonPath.get(func() string {
		return renderJSONPath(p.segments)
	})
}

// HasWildcards reports whether any segment is a configured wildcard value.
func (p *Path) HasWildcards() bool {
	for _, seg := range p.segments {
		if containsSegment(p.config.Wildcards, seg) {
			return true
		}
	}

	return false
}

// All returns a fresh forward iterator over the segments. Each call starts
// a new traversal; no cursor state is shared between callers.
func (p *Path) All() iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for _, seg := range p.segments {
			if !yield(seg) {
				return
			}
		}
	}
}
