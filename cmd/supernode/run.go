package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/supernode/config"
	"github.com/katalvlaran/supernode/runner"
	"github.com/katalvlaran/supernode/store"
)

type runFlags struct {
	dataDir   string
	outDir    string
	storePath string
	noArchive bool
	seed      int64
}

func newRunCmd(ctx context.Context) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run <experiment file>...",
		Short: "Run every experiment in the given files across the worker pool",
		Long: "Experiment files are YAML (.yaml, .yml) or legacy key/value params files.\n" +
			"Each experiment writes one CSV result file and, unless --no-archive is set,\n" +
			"one summary record in the archive.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiments(ctx, cmd, f, args)
		},
	}
	cmd.Flags().StringVarP(&f.dataDir, "data-dir", "d", "", "directory relative sources are resolved against")
	cmd.Flags().StringVarP(&f.outDir, "out-dir", "o", "", "result directory (default $SUPERNODE_OUT_DIR or XDG data dir)")
	cmd.Flags().StringVar(&f.storePath, "store", "", "archive path (default $SUPERNODE_STORE or XDG data dir)")
	cmd.Flags().BoolVar(&f.noArchive, "no-archive", false, "do not archive summaries")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "base seed for experiments without one (default $SUPERNODE_SEED)")

	return cmd
}

func runExperiments(ctx context.Context, cmd *cobra.Command, f runFlags, files []string) error {
	// a file that cannot be read becomes one failed unit
	queue := runner.NewQueue(nil)
	for _, path := range files {
		loaded, err := config.Load(path)
		if err != nil {
			log.WithError(err).WithField("file", path).Warn("experiment file rejected")
			queue.Push(config.Experiment{Name: path}, err)
			continue
		}
		for _, e := range loaded {
			env.Apply(&e)
			queue.Push(e, nil)
		}
	}
	total := queue.Len()

	pipeline := &runner.Pipeline{
		DataDir:    f.dataDir,
		ResultsDir: firstNonEmpty(f.outDir, env.ResultsDir()),
		BaseSeed:   f.seed,
	}
	if !cmd.Flags().Changed("seed") && env.HasSeed {
		pipeline.BaseSeed = env.Seed
	}
	if !f.noArchive {
		db, err := store.Open(firstNonEmpty(f.storePath, env.StorePath()), store.WithLogger(log.StandardLogger()))
		if err != nil {
			return err
		}
		defer db.Close()
		pipeline.Archive = db
	}

	n := workers
	if n == 0 {
		n = env.Workers
	}
	if n == 0 {
		n = runner.DefaultWorkers
	}
	log.WithField("units", total).WithField("workers", n).Info("starting experiments")

	outcomes := runner.New(pipeline, runner.WithWorkers(n), runner.WithLogger(log.StandardLogger())).
		Run(ctx, queue)

	failed := printOutcomes(cmd, outcomes)
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "interrupted after %d of %d units", len(outcomes), total)
	}
	if failed > 0 {
		return errors.Errorf("%d of %d units failed", failed, total)
	}

	return nil
}

func printOutcomes(cmd *cobra.Command, outcomes []runner.Outcome) (failed int) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EXPERIMENT\tBEST\tCHROMOSOME\tELAPSED\tRESULT")
	for _, o := range outcomes {
		label := o.Unit.Experiment.Label()
		if o.Err != nil {
			failed++
			fmt.Fprintf(w, "%s\t-\t-\t%s\tskipped: %v\n", label, o.Elapsed.Round(time.Millisecond), o.Err)
			continue
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", label, o.Summary.BestFitness, o.Summary.BestChromosome,
			o.Elapsed.Round(time.Millisecond), o.ResultFile)
	}
	_ = w.Flush()

	return failed
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
