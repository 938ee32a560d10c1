// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

/*
Package pathist parses, renders, compares, and transforms object property
paths such as "foo.bar[0]" as immutable first-class values.

The package never reads or writes data objects; it only manipulates path
values, leaving object access to whatever library consumes the result.

Basic flow:
  - build a path from a string, a segment slice, or another path (`From`)
  - render it in any notation (`String` / `StringAs`) or export it
    (`JSONPointer` / `JSONPath`)
  - compare paths (`Equals`, `StartsWith`, `EndsWith`, `Includes`,
    `PositionOf`, `LastPositionOf`)
  - transform paths (`Slice`, `Concat`, `Merge`, `RelativeTo`,
    `CommonStart`, `CommonEnd`)
  - locate patterns (`Match`, `MatchStart`, `MatchEnd`)
  - navigate tree-node runs (`FirstNodePath`, `LastNodePath`,
    `AfterNodePath`, `NodeIndices`, `NodePaths`, `ParentNode`)

Every operation returns a new Path; instances are never mutated. Expensive
derivations (rendered strings, node-run scans) are computed once per instance
and cached.

Process-wide defaults (`SetDefaultNotation` and friends) are read only while
constructing a Path. Configure them before constructing; mutating them from
concurrent goroutines is not safe.
*/
package pathist
