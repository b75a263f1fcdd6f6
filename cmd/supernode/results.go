package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/supernode/store"
)

func newResultsCmd() *cobra.Command {
	var (
		filter    store.Filter
		storePath string
	)
	cmd := &cobra.Command{
		Use:   "results",
		Short: "List archived experiment summaries, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := store.Open(firstNonEmpty(storePath, env.StorePath()))
			if err != nil {
				return err
			}
			defer db.Close()

			recs, err := db.List(filter)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tEXPERIMENT\tSOURCE\tTYPE\tN\tLEN\tBEST\tRUN BESTS\tELAPSED\tCHROMOSOME")
			for _, r := range recs {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%v\t%s\t%s\n",
					r.ID, r.Label, r.Source, r.Strategy, r.GraphSize, r.Params.ChromosomeLength,
					r.BestFitness, r.RunBest, r.Elapsed.Round(time.Millisecond), r.BestChromosome)
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&filter.Source, "source", "", "only this source graph")
	cmd.Flags().Var(newKindValue(&filter.Strategy), "type", "only this strategy")
	cmd.Flags().IntVar(&filter.Limit, "limit", 0, "at most this many records")
	cmd.Flags().StringVar(&storePath, "store", "", "archive path (default $SUPERNODE_STORE or XDG data dir)")

	return cmd
}
