// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNodeRun(t *testing.T) {
	t.Parallel()

	p := MustFrom("children[2].children[3].foo.bar")

	first, ok := p.FirstNodeIndex()
	if !ok || first != 2 {
		t.Fatalf("FirstNodeIndex=%d,%v", first, ok)
	}

	last, ok := p.LastNodeIndex()
	if !ok || last != 3 {
		t.Fatalf("LastNodeIndex=%d,%v", last, ok)
	}

	if got := p.FirstNodePath().String(); got != "children[2]" {
		t.Fatalf("FirstNodePath=%q", got)
	}

	if got := p.LastNodePath().String(); got != "children[2].children[3]" {
		t.Fatalf("LastNodePath=%q", got)
	}

	if got := p.AfterNodePath().String(); got != "foo.bar" {
		t.Fatalf("AfterNodePath=%q", got)
	}

	if diff := cmp.Diff([]int{2, 3}, p.NodeIndices()); diff != "" {
		t.Fatalf("NodeIndices (-want +got):\n%s", diff)
	}
}

func TestNodeRunBreaksPermanently(t *testing.T) {
	t.Parallel()

	// The run ends at "foo"; the trailing children[2] never rejoins it.
	p := MustFrom("[0].children[1].foo.bar.children[2]")

	if diff := cmp.Diff([]int{0, 1}, p.NodeIndices()); diff != "" {
		t.Fatalf("NodeIndices (-want +got):\n%s", diff)
	}

	last, ok := p.LastNodeIndex()
	if !ok || last != 1 {
		t.Fatalf("LastNodeIndex=%d,%v", last, ok)
	}

	if got := p.AfterNodePath().String(); got != "foo.bar.children[2]" {
		t.Fatalf("AfterNodePath=%q", got)
	}
}

func TestNodeRunAbsent(t *testing.T) {
	t.Parallel()

	// "foo" is not a node-children property, so no run ever starts.
	p := MustFrom("foo.bar[0]")

	if _, ok := p.FirstNodeIndex(); ok {
		t.Fatalf("unexpected node run")
	}

	if !p.FirstNodePath().IsRoot() || !p.LastNodePath().IsRoot() {
		t.Fatalf("node paths must be root without a run")
	}

	if got := p.AfterNodePath(); !got.Equals(p) {
		t.Fatalf("AfterNodePath=%q, want the whole path", got)
	}

	if len(p.NodeIndices()) != 0 {
		t.Fatalf("NodeIndices=%v", p.NodeIndices())
	}
}

func TestNodeRunCustomProperties(t *testing.T) {
	t.Parallel()

	p := MustFrom("items[0].items[4].label", Options{NodeChildrenProperties: []string{"items"}})

	if diff := cmp.Diff([]int{0, 4}, p.NodeIndices()); diff != "" {
		t.Fatalf("NodeIndices (-want +got):\n%s", diff)
	}

	// With the default set, "items" is a plain property.
	if len(MustFrom("items[0].items[4]").NodeIndices()) != 0 {
		t.Fatalf("default configuration must not treat items as children")
	}
}

func TestNodeRunConsecutiveIndices(t *testing.T) {
	t.Parallel()

	// Two adjacent indices violate the alternating pattern.
	p := MustFrom("[0][1].children[2]")

	if diff := cmp.Diff([]int{0}, p.NodeIndices()); diff != "" {
		t.Fatalf("NodeIndices (-want +got):\n%s", diff)
	}
}

func TestNodePaths(t *testing.T) {
	t.Parallel()

	p := MustFrom("children[2].children[3].foo")
	want := []string{"", "children[2]", "children[2].children[3]"}

	collect := func() []string {
		var out []string
		for node := range p.NodePaths() {
			out = append(out, node.String())
		}

		return out
	}

	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Fatalf("NodePaths (-want +got):\n%s", diff)
	}

	// The sequence restarts fresh on every call.
	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Fatalf("second traversal (-want +got):\n%s", diff)
	}

	// Early break must not disturb later traversals.
	for range p.NodePaths() {
		break
	}

	if diff := cmp.Diff(want, collect()); diff != "" {
		t.Fatalf("after break (-want +got):\n%s", diff)
	}
}

func TestParentNode(t *testing.T) {
	t.Parallel()

	p := MustFrom("children[2].children[3].foo")

	if got := p.ParentNode(1).String(); got != "children[2]" {
		t.Fatalf("ParentNode(1)=%q", got)
	}

	if got := p.ParentNode(2); !got.IsRoot() {
		t.Fatalf("ParentNode(2)=%q", got)
	}

	if got := p.ParentNode(10); !got.IsRoot() {
		t.Fatalf("ParentNode(10)=%q", got)
	}

	// Values below one clamp to one level.
	if got := p.ParentNode(0).String(); got != "children[2]" {
		t.Fatalf("ParentNode(0)=%q", got)
	}
}

func TestIteration(t *testing.T) {
	t.Parallel()

	p := MustFrom("a[1].b")
	want := []Segment{KeySegment("a"), IndexSegment(1), KeySegment("b")}

	var got []Segment
	for seg := range p.All() {
		got = append(got, seg)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("All (-want +got):\n%s", diff)
	}

	// Fresh traversal per call; an abandoned iterator shares no cursor.
	count := 0
	for range p.All() {
		count++
		break
	}

	got = got[:0]
	for seg := range p.All() {
		got = append(got, seg)
	}

	if count != 1 || len(got) != 3 {
		t.Fatalf("restart failed: count=%d len=%d", count, len(got))
	}
}
