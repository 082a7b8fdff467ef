// Command features walks through a tour of language features, printing each
// demonstration to stdout.
//
// Run:
//
//	go run ./cmd/features
//	go run ./cmd/features --only shapes,switch --await
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/marcodamonte/features/internal/config"
	"github.com/marcodamonte/features/internal/demo"
	"github.com/marcodamonte/features/internal/logging"
)

type options struct {
	configPath string
	verbose    bool
	await      bool
	list       bool
	only       []string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "features",
		Short: "Tour of language features, one demonstration per section",
		Long: `Runs every demonstration section in a fixed order and prints the result.

Sections that start background work (goroutines, futures) return without
waiting for it; pass --await to let that work finish before exiting.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "path to YAML config (optional)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.Flags().BoolVar(&opts.await, "await", false, "wait for background work before exiting")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list section keys and exit")
	cmd.Flags().StringSliceVar(&opts.only, "only", nil, "comma-separated section keys to run")

	return cmd
}

func run(ctx context.Context, cmd *cobra.Command, opts options) error {
	if opts.list {
		for _, s := range demo.Sections() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-18s %s\n", s.Key, s.Title)
		}
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging, opts.verbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	keys := opts.only
	if len(keys) == 0 {
		keys = cfg.Sections
	}

	env := demo.NewEnv(cmd.OutOrStdout(), logger, cfg)
	if err := demo.Run(ctx, env, keys); err != nil {
		return err
	}

	if opts.await || cfg.Await {
		logger.Debug("waiting for background work")
		if err := env.Pending.Wait(ctx); err != nil {
			logger.Warn("background work abandoned", zap.Error(err))
		}
	}
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
