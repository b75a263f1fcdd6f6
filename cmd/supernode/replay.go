package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supernode/core"
	"github.com/katalvlaran/supernode/dfs"
	"github.com/katalvlaran/supernode/ga"
	"github.com/katalvlaran/supernode/layout"
	"github.com/katalvlaran/supernode/loader"
	"github.com/katalvlaran/supernode/view"
)

func newReplayCmd(ctx context.Context) *cobra.Command {
	var (
		dot  bool
		show bool
	)
	cmd := &cobra.Command{
		Use:   "replay <graph file> <chromosome>",
		Short: "Apply a chromosome such as [(0,1),(4,2)] to a graph without repair",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, res, err := replayFile(args[0], args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "fake links: %d\n", res.Fitness)
			fmt.Fprintf(out, "supernodes: %d of %d\n", res.Graph.CurrentSize(), g.Size())
			if comps, err := dfs.Components(res.Graph); err == nil {
				fmt.Fprintf(out, "components: %d\n", len(comps))
			}
			if res.Skipped > 0 {
				fmt.Fprintf(out, "skipped genes: %d\n", res.Skipped)
			}
			if dot {
				fmt.Fprint(out, layout.DOT(res.Graph))
			} else {
				fmt.Fprintln(out, res.Graph)
			}
			if show {
				return showGraph(ctx, res.Graph, args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&dot, "dot", false, "print Graphviz DOT instead of the supernode list")
	cmd.Flags().BoolVar(&show, "view", false, "open the result in the terminal viewer")

	return cmd
}

func replayFile(path, chromosome string) (*core.ContractedGraph, ga.Result, error) {
	g, err := loader.ReadFile(path)
	if err != nil {
		return nil, ga.Result{}, err
	}
	res, err := ga.Replay(g, chromosome)
	if err != nil {
		return nil, ga.Result{}, err
	}
	return g, res, nil
}

func showGraph(ctx context.Context, g *core.ContractedGraph, name string) error {
	l, err := layout.Compute(g)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s  supernodes=%d  fake links=%d  (q quits)", name, g.CurrentSize(), g.TotalFakeLinks())
	return view.Show(ctx, l, title)
}
