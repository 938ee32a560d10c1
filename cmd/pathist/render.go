// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	pathist "github.com/shaungrady/pathist-sub001"
)

type renderConfig struct {
	*MainConfig

	Render *cli.Command
}

// RenderCommand returns the render subcommand.
func RenderCommand(mc *MainConfig) *cli.Command {
	cfg := &renderConfig{MainConfig: mc}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Render, "render").
		WithSynopsis("render [--dot|--bracket] PATH... - reparse and re-render paths").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *renderConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Render.Parse(cc, args)
	if err != nil {
		cfg.Render.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	inputs, err := resolvePathArgs(cc, args)
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w: render requires at least one path", cli.ErrUsage)
	}

	paint := cfg.painter(cc.Out, pathPaint)
	for _, raw := range inputs {
		p, err := pathist.From(raw, cfg.options())
		if err != nil {
			return fmt.Errorf("parse %q: %w", raw, err)
		}

		fmt.Fprintln(cc.Out, paint(p.String()))
	}

	return nil
}
