package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supernode/loader"
)

func newViewCmd(ctx context.Context) *cobra.Command {
	var chromosome string
	cmd := &cobra.Command{
		Use:   "view <graph file>",
		Short: "Show a graph, optionally contracted by a chromosome, in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if chromosome != "" {
				_, res, err := replayFile(args[0], chromosome)
				if err != nil {
					return err
				}
				return showGraph(ctx, res.Graph, args[0])
			}
			g, err := loader.ReadFile(args[0])
			if err != nil {
				return err
			}
			return showGraph(ctx, g, args[0])
		},
	}
	cmd.Flags().StringVarP(&chromosome, "chromosome", "c", "", "chromosome to apply before showing")

	return cmd
}
