// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	pathist "github.com/shaungrady/pathist-sub001"
)

const usageText = `pathist - parse, render, and transform object property paths

Usage:
  pathist render [--dot|--bracket] PATH...   Reparse and re-render paths
  pathist pointer PATH...                    Export as RFC 6901 JSON Pointers
  pathist jsonpath PATH...                   Export as JSONPath expressions
  pathist nodes PATH...                      Show tree-node runs
  pathist match [--start|--end] PATTERN PATH...
                                             Locate a pattern, print concrete matches
  pathist relative BASE PATH...              Strip BASE from each path

Path arguments may also be "@file" or "-" to read one path per line,
skipping blank lines and "#" comments.

Examples:
  pathist render --bracket 'foo.bar[0]'
  pathist pointer 'a.b["c.d"][2]'
  pathist match 'items[-1].name' 'items[5].name.value'
  pathist relative 'a.b' 'a.b.c.d'`

// MainConfig carries flags shared by every subcommand.
type MainConfig struct {
	Dot     bool `cli:"name=dot desc='render in dot notation'"`
	Bracket bool `cli:"name=bracket desc='render in bracket notation'"`
	Color   bool `cli:"name=color desc='force colored output'"`
	Ignore  bool `cli:"name=ignore-indices aliases=i desc='any index value matches any other'"`

	Children string `cli:"name=children desc='comma-separated node children property names'"`

	Main *cli.Command
}

// MainCommand returns the root pathist command.
func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommandAt(&cfg.Main, "pathist").
		WithSynopsis("pathist - parse, render, and transform object property paths").
		WithDescription(usageText).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			cfg.Main.Usage(cc, nil)
			return cli.ExitCodeErr(1)
		}).
		WithSubs(
			RenderCommand(cfg),
			PointerCommand(cfg),
			JSONPathCommand(cfg),
			NodesCommand(cfg),
			MatchCommand(cfg),
			RelativeCommand(cfg),
		)
}

// options resolves shared flags into per-construction options.
func (cfg *MainConfig) options() pathist.Options {
	opts := pathist.Options{}
	switch {
	case cfg.Dot:
		opts.Notation = pathist.NotationDot
	case cfg.Bracket:
		opts.Notation = pathist.NotationBracket
	}

	if cfg.Ignore {
		opts.Indices = pathist.IndicesIgnore
	}

	if cfg.Children != "" {
		opts.NodeChildrenProperties = strings.Split(cfg.Children, ",")
	}

	return opts
}

// painter returns a string decorator: colored when forced by flag or when
// writing to a terminal, identity otherwise.
func (cfg *MainConfig) painter(w io.Writer, paint func(string, ...any) string) func(string) string {
	if cfg.Color {
		return func(s string) string { return paint("%s", s) }
	}

	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return func(s string) string { return s }
	}

	return func(s string) string { return paint("%s", s) }
}

// pathPaint colors rendered paths.
var pathPaint = color.CyanString

// matchPaint colors matched windows.
var matchPaint = color.GreenString
