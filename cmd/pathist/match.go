// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	pathist "github.com/shaungrady/pathist-sub001"
)

type matchConfig struct {
	*MainConfig

	Start bool `cli:"name=start desc='anchor the pattern at the start'"`
	End   bool `cli:"name=end desc='anchor the pattern at the end'"`

	Match *cli.Command
}

// MatchCommand returns the match subcommand.
func MatchCommand(mc *MainConfig) *cli.Command {
	cfg := &matchConfig{MainConfig: mc}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Match, "match").
		WithSynopsis("match [--start|--end] PATTERN PATH... - locate a pattern, print concrete matches").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *matchConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Match.Parse(cc, args)
	if err != nil {
		cfg.Match.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}

	if len(args) < 1 {
		return fmt.Errorf("%w: match requires a pattern argument", cli.ErrUsage)
	}

	pattern, err := pathist.From(args[0], cfg.options())
	if err != nil {
		return fmt.Errorf("parse pattern %q: %w", args[0], err)
	}

	inputs, err := resolvePathArgs(cc, args[1:])
	if err != nil {
		return err
	}

	if len(inputs) == 0 {
		return fmt.Errorf("%w: match requires at least one path", cli.ErrUsage)
	}

	paint := cfg.painter(cc.Out, matchPaint)
	matched := false
	for _, raw := range inputs {
		p, err := pathist.From(raw, cfg.options())
		if err != nil {
			return fmt.Errorf("parse %q: %w", raw, err)
		}

		var m *pathist.Path
		switch {
		case cfg.Start:
			m = p.MatchStart(pattern)
		case cfg.End:
			m = p.MatchEnd(pattern)
		default:
			m = p.Match(pattern)
		}

		if m == nil {
			fmt.Fprintf(cc.Out, "%s\t-\n", p)
			continue
		}

		matched = true
		fmt.Fprintf(cc.Out, "%s\t%s\n", p, paint(m.String()))
	}

	if !matched {
		return cli.ExitCodeErr(1)
	}

	return nil
}
