// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"fmt"
	"strings"
)

// Config is one resolved, immutable per-instance configuration.
//
// A Config is resolved once at construction from per-call Options over
// process-wide defaults and propagates unchanged to every derived Path.
type Config struct {
	// Notation is the rendering style used by String and derived instances.
	Notation Notation `json:"notation"`
	// Indices is the index comparison mode.
	Indices IndicesMode `json:"indices"`
	// Wildcards are segment values matching any segment of the same kind
	// during comparison. Never substituted into results.
	Wildcards []Segment `json:"wildcards,omitempty"`
	// NodeChildrenProperties are property names marking descend-into-children
	// steps for tree-node navigation.
	NodeChildrenProperties []string `json:"node_children_properties,omitempty"`
}

// Options overrides process-wide defaults for one construction.
// Zero-valued fields inherit; nil slices inherit, empty slices clear.
type Options struct {
	// Notation overrides the rendering style.
	Notation Notation `json:"notation,omitempty"`
	// Indices overrides the index comparison mode.
	Indices IndicesMode `json:"indices,omitempty"`
	// Wildcards overrides the wildcard segment set.
	Wildcards []Segment `json:"wildcards,omitempty"`
	// NodeChildrenProperties overrides the node-children property set.
	NodeChildrenProperties []string `json:"node_children_properties,omitempty"`
}

// CompareOptions overrides comparison semantics for one call without
// mutating either instance. Zero-valued fields fall back to the pattern
// side's configuration.
type CompareOptions struct {
	// Indices overrides the index comparison mode.
	Indices IndicesMode
	// Wildcards overrides the wildcard segment set. Nil inherits; an empty
	// non-nil slice disables wildcards for the call.
	Wildcards []Segment
}

// builtinDefaults is the fixed bottom layer of configuration resolution.
func builtinDefaults() Config {
	return Config{
		Notation:               NotationMixed,
		Indices:                IndicesPreserve,
		Wildcards:              []Segment{IndexSegment(-1), KeySegment("*")},
		NodeChildrenProperties: []string{"children"},
	}
}

// defaults is the process-wide default configuration. It is read at
// construction time only; configure before constructing, not safe to race.
var defaults = builtinDefaults()

// Defaults returns a snapshot of the process-wide default configuration.
func Defaults() Config {
	return cloneConfig(defaults)
}

// ResetDefaults restores built-in process-wide defaults.
func ResetDefaults() {
	defaults = builtinDefaults()
}

// SetDefaultNotation sets the process-wide default rendering notation.
func SetDefaultNotation(n Notation) error {
	if !n.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidNotation, n)
	}

	defaults.Notation = n
	return nil
}

// SetDefaultIndices sets the process-wide default index comparison mode.
func SetDefaultIndices(m IndicesMode) error {
	if !m.valid() {
		return fmt.Errorf("%w: %d", ErrInvalidIndicesMode, m)
	}

	defaults.Indices = m
	return nil
}

// SetDefaultWildcards sets the process-wide default wildcard segment set.
func SetDefaultWildcards(wildcards []Segment) error {
	normalized, err := normalizeWildcards(wildcards)
	if err != nil {
		return err
	}

	defaults.Wildcards = normalized
	return nil
}

// SetDefaultNodeChildrenProperties sets the process-wide default
// node-children property names.
func SetDefaultNodeChildrenProperties(names []string) {
	defaults.NodeChildrenProperties = normalizeProperties(names)
}

// resolveConfig resolves one construction-time configuration from optional
// per-call Options over base.
func resolveConfig(base Config, opts []Options) Config {
	cfg := cloneConfig(base)
	if len(opts) == 0 {
		return cfg
	}

	opt := opts[0]
	if opt.Notation.valid() {
		cfg.Notation = opt.Notation
	}

	if opt.Indices.valid() {
		cfg.Indices = opt.Indices
	}

	if opt.Wildcards != nil {
		if normalized, err := normalizeWildcards(opt.Wildcards); err == nil {
			cfg.Wildcards = normalized
		}
	}

	if opt.NodeChildrenProperties != nil {
		cfg.NodeChildrenProperties = normalizeProperties(opt.NodeChildrenProperties)
	}

	return cfg
}

// cloneConfig deep-copies a configuration so instances never share slices.
func cloneConfig(cfg Config) Config {
	out := cfg
	if cfg.Wildcards != nil {
		out.Wildcards = append([]Segment(nil), cfg.Wildcards...)
	}

	if cfg.NodeChildrenProperties != nil {
		out.NodeChildrenProperties = append([]string(nil), cfg.NodeChildrenProperties...)
	}

	return out
}

// normalizeWildcards validates and copies a wildcard segment set.
//
// Invalid-kind entries fail; duplicates are dropped, input order preserved.
func normalizeWildcards(wildcards []Segment) ([]Segment, error) {
	out := make([]Segment, 0, len(wildcards))
	for _, w := range wildcards {
		if !w.valid() {
			return nil, fmt.Errorf("%w: wildcard kind %d", ErrInvalidSegment, w.Kind)
		}

		if containsSegment(out, w) {
			continue
		}

		out = append(out, w)
	}

	return out, nil
}

// normalizeProperties trims and copies a property-name set.
//
// Empty values and duplicates are dropped, input order preserved.
func normalizeProperties(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if containsString(out, name) {
			continue
		}

		out = append(out, name)
	}

	return out
}

// containsSegment reports whether set holds segment by value.
func containsSegment(set []Segment, s Segment) bool {
	for _, candidate := range set {
		if candidate == s {
			return true
		}
	}

	return false
}

// containsString reports whether set holds name.
func containsString(set []string, name string) bool {
	for _, candidate := range set {
		if candidate == name {
			return true
		}
	}

	return false
}
