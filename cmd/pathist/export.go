// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	pathist "github.com/shaungrady/pathist-sub001"
)

type exportConfig struct {
	*MainConfig

	Export *cli.Command
	render func(*pathist.Path) string
}

// PointerCommand returns the pointer subcommand (RFC 6901 export).
func PointerCommand(mc *MainConfig) *cli.Command {
	cfg := &exportConfig{
		MainConfig: mc,
		render:     (*pathist.Path).JSONPointer,
	}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Export, "pointer").
		WithSynopsis("pointer PATH... - export paths as RFC 6901 JSON Pointers").
		WithOpts(opts...).
		WithRun(cfg.run)
}

// JSONPathCommand returns the jsonpath subcommand (RFC 9535-style export).
func JSONPathCommand(mc *MainConfig) *cli.Command {
	cfg := &exportConfig{
		MainConfig: mc,
		render:     (*pathist.Path).JSONPath,
	}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Export, "jsonpath").
		WithSynopsis("jsonpath PATH... - export paths as JSONPath expressions").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *exportConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	inputs, err := resolvePathArgs(cc, args)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w: at least one path required", cli.ErrUsage)
	}

	paint := cfg.painter(cc.Out, pathPaint)
	for _, raw := range inputs {
		p, err := pathist.From(raw, cfg.options())
		if err != nil {
			return fmt.Errorf("parse %q: %w", raw, err)
		}

		fmt.Fprintln(cc.Out, paint(cfg.render(p)))
	}

	return nil
}
