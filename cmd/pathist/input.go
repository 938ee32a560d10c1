// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scott-cotton/cli"
)

// resolvePathArgs expands path arguments: "@file" reads paths from file,
// "-" reads from standard input, anything else is a path literal.
func resolvePathArgs(cc *cli.Context, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case arg == "-":
			lines, err := readPathLines(cc.In)
			if err != nil {
				return nil, fmt.Errorf("read stdin: %w", err)
			}

			out = append(out, lines...)

		case strings.HasPrefix(arg, "@"):
			lines, err := readPathFile(arg[1:])
			if err != nil {
				return nil, err
			}

			out = append(out, lines...)

		default:
			out = append(out, arg)
		}
	}

	return out, nil
}

// readPathFile reads one path per line from a file.
func readPathFile(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open path file: %w", err)
	}
	defer func() { _ = f.Close() }()

	lines, err := readPathLines(f)
	if err != nil {
		return nil, fmt.Errorf("read path file %s: %w", name, err)
	}

	return lines, nil
}

// readPathLines reads one path per line, skipping blanks and "#" comments.
func readPathLines(r io.Reader) ([]string, error) {
	s := bufio.NewScanner(r)
	lines := make([]string, 0, 16)

	for s.Scan() {
		line := strings.TrimSpace(strings.TrimRight(s.Text(), "\r"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		lines = append(lines, line)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan paths: %w", err)
	}

	return lines, nil
}
