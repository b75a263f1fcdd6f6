package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supernode/builder"
	"github.com/katalvlaran/supernode/loader"
)

func newGenerateCmd() *cobra.Command {
	var (
		n, m   int
		p      float64
		seed   int64
		output string
	)
	cmd := &cobra.Command{
		Use:   "generate <topology>",
		Short: "Write a synthetic graph in the edge-list format",
		Long:  "Topologies: " + strings.Join(builder.Names(), ", ") + ".",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctor, err := builder.ByName(args[0], n, m, p)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph(ctor, builder.WithSeed(seed))
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				return loader.Write(cmd.OutOrStdout(), g)
			}
			if err := loader.WriteFile(output, g); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d vertices, %d edges to %s\n", g.Size(), g.OriginalEdgeCount(), output)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "n", 10, "vertex count (rows for grid, left side for bipartite)")
	cmd.Flags().IntVar(&m, "m", 0, "second size (columns for grid, right side for bipartite)")
	cmd.Flags().Float64Var(&p, "p", 0.1, "edge probability for random")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for random topologies")
	cmd.Flags().StringVarP(&output, "output", "o", "-", "output file, - for stdout")

	return cmd
}
