package main

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/supernode/config"
)

var (
	verbose bool
	jsonLog bool
	envFile string
	workers int

	env config.Env
)

// Execute builds the command tree and runs it.
func Execute(ctx context.Context, version string) error {
	return newRootCmd(ctx, version).Execute()
}

func newRootCmd(ctx context.Context, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "supernode",
		Short:        "Compress graphs into supernodes with a genetic search over merge sequences",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			setupLogging(cmd.ErrOrStderr())
			var err error
			env, err = config.LoadEnv(envFile)
			return err
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "log as JSON")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "environment file with SUPERNODE_* overrides")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 0, "worker threads (default $SUPERNODE_WORKERS or 6)")

	rootCmd.AddCommand(
		newRunCmd(ctx),
		newReplayCmd(ctx),
		newGenerateCmd(),
		newViewCmd(ctx),
		newResultsCmd(),
	)

	return rootCmd
}

func setupLogging(out io.Writer) {
	log.SetOutput(out)
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	if jsonLog || !isTerminal(out) {
		log.SetFormatter(&log.JSONFormatter{})
		return
	}
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
