package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/hupe1980/longshot"
	"github.com/hupe1980/longshot/resource"
)

var (
	flagWorkers  int
	flagBatch    int
	flagTick     time.Duration
	flagMaxLive  int64
	flagJSONLogs bool
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:   "longshot",
	Short: "Try to brute-force a one-way derivation (you won't)",
	Long: `longshot picks a random 256-bit secret, derives its public value with a
one-way function, then throws every CPU you have at guessing the secret
back from the public value.

It runs until you interrupt it. The live status line shows exactly how
little of the space has been covered; that number staying at zero is the
whole demonstration.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func run(ctx context.Context) error {
	level := slog.LevelInfo
	if err := level.UnmarshalText([]byte(flagLogLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", flagLogLevel, err)
	}

	logger := longshot.NewTextLogger(level)
	if flagJSONLogs {
		logger = longshot.NewJSONLogger(level)
	}

	// First interrupt cancels ctx and starts graceful teardown; further
	// interrupts are swallowed while the handler stays registered, so a
	// nervous second Ctrl-C neither crashes nor hangs the teardown.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err := longshot.Run(ctx,
		longshot.WithWorkers(flagWorkers),
		longshot.WithBatchSize(flagBatch),
		longshot.WithTickInterval(flagTick),
		longshot.WithLogger(logger),
		longshot.WithResourceConfig(resource.Config{
			MaxConcurrentWorkers: flagMaxLive,
			StatusUpdatesPerSec:  30,
		}),
	)
	if err != nil {
		return err
	}

	// Found and cancelled both exit 0: "not found" after an interrupt is
	// the expected, successful outcome for this space.
	return nil
}

func init() {
	rootCmd.Flags().IntVar(&flagWorkers, "workers", 0, "worker pool size (default: available parallelism)")
	rootCmd.Flags().IntVar(&flagBatch, "batch-size", 0, "candidates per worker batch (default 100000)")
	rootCmd.Flags().DurationVar(&flagTick, "tick", 0, "progress refresh interval (default 100ms)")
	rootCmd.Flags().Int64Var(&flagMaxLive, "max-live-workers", 0, "cap on concurrently running workers (0 = no cap)")
	rootCmd.Flags().BoolVar(&flagJSONLogs, "json-logs", false, "emit logs as JSON")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
