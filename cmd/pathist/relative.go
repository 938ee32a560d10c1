// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	pathist "github.com/shaungrady/pathist-sub001"
)

type relativeConfig struct {
	*MainConfig

	Relative *cli.Command
}

// RelativeCommand returns the relative subcommand.
func RelativeCommand(mc *MainConfig) *cli.Command {
	cfg := &relativeConfig{MainConfig: mc}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Relative, "relative").
		WithSynopsis("relative BASE PATH... - strip BASE from each path").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *relativeConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Relative.Parse(cc, args)
	if err != nil {
		cfg.Relative.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	if len(args) < 1 {
		return fmt.Errorf("%w: relative requires a base argument", cli.ErrUsage)
	}

	base, err := pathist.From(args[0], cfg.options())
	if err != nil {
		return fmt.Errorf("parse base %q: %w", args[0], err)
	}

	inputs, err := resolvePathArgs(cc, args[1:])
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w: relative requires at least one path", cli.ErrUsage)
	}

	paint := cfg.painter(cc.Out, pathPaint)
	applied := false
	for _, raw := range inputs {
		p, err := pathist.From(raw, cfg.options())
		if err != nil {
			return fmt.Errorf("parse %q: %w", raw, err)
		}

		rel := p.RelativeTo(base)
		if rel == nil {
			fmt.Fprintf(cc.Out, "%s\t-\n", p)
			continue
		}

		applied = true
		fmt.Fprintf(cc.Out, "%s\t%s\n", p, paint(rel.String()))
	}

	if !applied {
		return cli.ExitCodeErr(1)
	}

	return nil
}
