// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package pathist

import (
	"strconv"
	"strings"
	"testing"
)

const benchSegmentCount = 64

var (
	benchStringSink string
	benchIntSink    int
	benchPathSink   *Path
	benchBoolSink   bool
)

// buildBenchmarkPath builds a deep alternating key/index path string.
func buildBenchmarkPath(segments int) string {
	var b strings.Builder
	for i := 0; i < segments; i += 2 {
		if i > 0 {
			b.WriteByte('.')
		}

		b.WriteString("prop")
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('[')
		b.WriteString(strconv.Itoa(i))
		b.WriteByte(']')
	}

	return b.String()
}

func BenchmarkFrom(b *testing.B) {
	src := buildBenchmarkPath(benchSegmentCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := From(src)
		if err != nil {
			b.Fatal(err)
		}

		benchPathSink = p
	}
}

func BenchmarkString(b *testing.B) {
	src := buildBenchmarkPath(benchSegmentCount)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// Fresh instance per iteration so the memoized render is computed,
		// not served from cache.
		p, err := From(src)
		if err != nil {
			b.Fatal(err)
		}

		benchStringSink = p.String()
	}
}

func BenchmarkStringMemoized(b *testing.B) {
	p := MustFrom(buildBenchmarkPath(benchSegmentCount))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchStringSink = p.String()
	}
}

func BenchmarkPositionOf(b *testing.B) {
	p := MustFrom(buildBenchmarkPath(benchSegmentCount))
	pattern := MustFrom("prop60[-1]")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchIntSink = p.PositionOf(pattern)
	}
}

func BenchmarkEquals(b *testing.B) {
	p := MustFrom(buildBenchmarkPath(benchSegmentCount))
	q := MustFrom(buildBenchmarkPath(benchSegmentCount))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchBoolSink = p.Equals(q)
	}
}

func BenchmarkMerge(b *testing.B) {
	p := MustFrom(buildBenchmarkPath(benchSegmentCount))
	other := p.SliceFrom(benchSegmentCount / 2)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchPathSink = p.Merge(other)
	}
}

func BenchmarkNodeScan(b *testing.B) {
	var src strings.Builder
	for i := 0; i < benchSegmentCount/2; i++ {
		src.WriteString("children[")
		src.WriteString(strconv.Itoa(i))
		src.WriteByte(']')
		if i < benchSegmentCount/2-1 {
			src.WriteByte('.')
		}
	}

	raw := src.String()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p, err := From(raw)
		if err != nil {
			b.Fatal(err)
		}

		benchIntSink = len(p.NodeIndices())
	}
}
