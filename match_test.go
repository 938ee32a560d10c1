// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMatchStartKeepsConcreteValues(t *testing.T) {
	t.Parallel()

	subject := MustFrom([]any{"foo", 2, "bar", "baz"})

	got := subject.MatchStart(MustFrom("foo[-1].bar"))
	if got == nil {
		t.Fatalf("MatchStart must find the prefix")
	}

	want := []Segment{KeySegment("foo"), IndexSegment(2), KeySegment("bar")}
	if diff := cmp.Diff(want, got.Segments()); diff != "" {
		t.Fatalf("matched segments (-want +got):\n%s", diff)
	}

	// The wildcard value must never leak into the result.
	if got.HasWildcards() {
		t.Fatalf("match result carries a wildcard: %q", got)
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	subject := MustFrom("a.items[3].name.z")

	got := subject.Match(MustFrom("items[-1].name"))
	if got == nil || got.String() != "items[3].name" {
		t.Fatalf("Match=%v", got)
	}

	if subject.Match(MustFrom("missing")) != nil {
		t.Fatalf("Match must be nil for a missing pattern")
	}

	if subject.Match(nil) != nil {
		t.Fatalf("Match(nil) must be nil")
	}

	// Root pattern matches at offset zero with an empty window.
	if got := subject.Match(MustFrom("")); got == nil || !got.IsRoot() {
		t.Fatalf("Match(root)=%v", got)
	}
}

func TestMatchEnd(t *testing.T) {
	t.Parallel()

	subject := MustFrom("a.items[3].name")

	got := subject.MatchEnd(MustFrom("[-1].name"))
	if got == nil || got.String() != "[3].name" {
		t.Fatalf("MatchEnd=%v", got)
	}

	if subject.MatchEnd(MustFrom("a.items")) != nil {
		t.Fatalf("MatchEnd must anchor at the end")
	}
}

func TestMatchAgreesWithPredicates(t *testing.T) {
	t.Parallel()

	subject := MustFrom("rows[4].cells[9].value")
	patterns := []*Path{
		MustFrom("rows[-1]"),
		MustFrom("cells[9]"),
		MustFrom("value"),
		MustFrom("missing[0]"),
	}

	for _, pattern := range patterns {
		if (subject.Match(pattern) != nil) != subject.Includes(pattern) {
			t.Fatalf("Match and Includes disagree for %q", pattern)
		}

		if (subject.MatchStart(pattern) != nil) != subject.StartsWith(pattern) {
			t.Fatalf("MatchStart and StartsWith disagree for %q", pattern)
		}

		if (subject.MatchEnd(pattern) != nil) != subject.EndsWith(pattern) {
			t.Fatalf("MatchEnd and EndsWith disagree for %q", pattern)
		}
	}
}

func TestMatchWithCompareOptions(t *testing.T) {
	t.Parallel()

	subject := MustFrom("items[0].name")

	got := subject.Match(MustFrom("items[5]"), CompareOptions{Indices: IndicesIgnore})
	if got == nil || got.String() != "items[0]" {
		t.Fatalf("Match=%v", got)
	}

	if subject.Match(MustFrom("items[5]")) != nil {
		t.Fatalf("preserve mode must not match differing indices")
	}
}
