// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Shaun Grady
// Source: github.com/shaungrady/pathist-sub001

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scott-cotton/cli"

	pathist "github.com/shaungrady/pathist-sub001"
)

type nodesConfig struct {
	*MainConfig

	All bool `cli:"name=all aliases=a desc='list the path through every node boundary'"`

	Nodes *cli.Command
}

// NodesCommand returns the nodes subcommand.
func NodesCommand(mc *MainConfig) *cli.Command {
	cfg := &nodesConfig{MainConfig: mc}
	opts, _ := cli.StructOpts(cfg)
	return cli.NewCommandAt(&cfg.Nodes, "nodes").
		WithSynopsis("nodes [--all] PATH... - show tree-node runs").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func (cfg *nodesConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Nodes.Parse(cc, args)
	if err != nil {
		cfg.Nodes.Usage(cc, err)
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

		fmt.Fprintf(cc.Out, "%s\tindices=%s\tlast=%s\tafter=%s\n",
			paint(p.String()),
			joinIndices(p.NodeIndices()),
			p.LastNodePath(),
			p.AfterNodePath(),
		)

		if !cfg.All {
			continue
		}

		for node := range p.NodePaths() {
			fmt.Fprintf(cc.Out, "  %s\n", node)
		}
	}

	return nil
}

// joinIndices renders node index values as a comma list, "-" when empty.
func joinIndices(indices []int) string {
	if len(indices) == 0 {
		return "-"
	}

	parts := make([]string, 0, len(indices))
	for _, i := range indices {
		parts = append(parts, strconv.Itoa(i))
	}

	return strings.Join(parts, ",")
}
