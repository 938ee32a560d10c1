// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import "iter"

// nodeRun is the cached result of one tree-node scan.
type nodeRun struct {
	// boundaries are positions of node-index segments, in path order.
	// Empty when the path holds no node run.
	boundaries []int
}

// scanNodes finds the maximal contiguous tree-node run from the start of
// the path: an index segment, optionally preceded by one node-children
// property, followed by (property, index) pairs. The first violation ends
// the run permanently; later segments are never reconsidered. One pass
// yields every boundary, so first and last positions come from the same
// scan.
func (p *Path) scanNodes() nodeRun {
	segs := p.segments
	var boundaries []int

	i := 0
	switch {
	case len(segs) == 0:
		return nodeRun{}
	case segs[0].Kind == KindIndex:
		boundaries = append(boundaries, 0)
		i = 1
	case segs[0].Kind == KindKey && p.isChildProperty(segs[0].Key) &&
		len(segs) > 1 && segs[1].Kind == KindIndex:
		boundaries = append(boundaries, 1)
		i = 2
	default:
		return nodeRun{}
	}

	for i+1 < len(segs) &&
		segs[i].Kind == KindKey && p.isChildProperty(segs[i].Key) &&
		segs[i+1].Kind == KindIndex {
		boundaries = append(boundaries, i+1)
		i += 2
	}

	return nodeRun{boundaries: boundaries}
}

// isChildProperty reports whether name is a configured node-children step.
func (p *Path) isChildProperty(name string) bool {
	return containsString(p.config.NodeChildrenProperties, name)
}

// nodeRunCached returns the node scan, computing it once per instance.
func (p *Path) nodeRunCached() nodeRun {
	return p.nodes.get(p.scanNodes)
}

// FirstNodePath returns the path up through the first node-index segment
// inclusive, or the root path when no node run exists.
func (p *Path) FirstNodePath() *Path {
	run := p.nodeRunCached()
	if len(run.boundaries) == 0 {
		return p.Slice(0, 0)
	}

	return p.Slice(0, run.boundaries[0]+1)
}

// LastNodePath returns the path up through the last node-index segment
// inclusive, or the root path when no node run exists.
func (p *Path) LastNodePath() *Path {
	run := p.nodeRunCached()
	if len(run.boundaries) == 0 {
		return p.Slice(0, 0)
	}

	return p.Slice(0, run.boundaries[len(run.boundaries)-1]+1)
}

// AfterNodePath returns everything after the last node segment, or the
// whole path when no node run exists.
func (p *Path) AfterNodePath() *Path {
	run := p.nodeRunCached()
	if len(run.boundaries) == 0 {
		return p.Slice(0, len(p.segments))
	}

	return p.SliceFrom(run.boundaries[len(run.boundaries)-1] + 1)
}

// NodeIndices returns the ordered index values of the node run.
func (p *Path) NodeIndices() []int {
	run := p.nodeRunCached()
	out := make([]int, 0, len(run.boundaries))
	for _, at := range run.boundaries {
		out = append(out, p.segments[at].Index)
	}

	return out
}

// FirstNodeIndex returns the first node-run index value, false when no run
// exists.
func (p *Path) FirstNodeIndex() (int, bool) {
	run := p.nodeRunCached()
	if len(run.boundaries) == 0 {
		return 0, false
	}

	return p.segments[run.boundaries[0]].Index, true
}

// LastNodeIndex returns the last node-run index value, false when no run
// exists.
func (p *Path) LastNodeIndex() (int, bool) {
	run := p.nodeRunCached()
	if len(run.boundaries) == 0 {
		return 0, false
	}

	return p.segments[run.boundaries[len(run.boundaries)-1]].Index, true
}

// NodePaths returns a lazy finite sequence of paths: the root, then the
// path through each successive node boundary up to the full run. Each call
// starts a fresh traversal.
func (p *Path) NodePaths() iter.Seq[*Path] {
	return func(yield func(*Path) bool) {
		if !yield(p.Slice(0, 0)) {
			return
		}

		for _, at := range p.nodeRunCached().boundaries {
			if !yield(p.Slice(0, at+1)) {
				return
			}
		}
	}
}

// ParentNode returns the path through the node boundary n levels up from
// the last. Values below 1 mean one level; levels beyond the available
// depth return the root path, never an error.
func (p *Path) ParentNode(n int) *Path {
	if n < 1 {
		n = 1
	}

	run := p.nodeRunCached()
	at := len(run.boundaries) - 1 - n
	if at < 0 {
		return p.Slice(0, 0)
	}

	return p.Slice(0, run.boundaries[at]+1)
}
