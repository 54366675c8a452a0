package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sirmick/alfrd/internal/healthserver"
)

var (
	startOnce  bool
	startDocID string
)

var startCmd = &cobra.Command{
	Use:   "start-processor",
	Short: "Run the document-processing orchestrator",
	Long: `Start the orchestrator loop: sweep the inbox, dispatch pipeline
steps under the configured concurrency caps, and recover stale work.

With --once, run until the pipeline is quiescent and exit.
With --doc-id, drive a single document through its remaining lifecycle.`,
	RunE: runStartProcessor,
}

func init() {
	startCmd.Flags().BoolVar(&startOnce, "once", false, "process until quiescent, then exit")
	startCmd.Flags().StringVar(&startDocID, "doc-id", "", "process only this document (UUID)")
}

func runStartProcessor(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	// Background housekeeping: type registry refresh, artifact retention,
	// and the optional health endpoint. All die with ctx.
	go a.deps.Types.Run(ctx, a.cfg.Inbox.ScanInterval*10)
	if a.sweeper != nil {
		go a.sweeper.Run(ctx, a.cfg.Retention.SweepInterval)
	}
	if port := os.Getenv("HTTP_PORT"); port != "" {
		router := healthserver.New(a.db.DB(), a.cfg)
		go func() {
			if err := healthserver.Serve(ctx, router, ":"+port); err != nil {
				slog.Error("health server failed", "error", err)
			}
		}()
	}

	if startDocID != "" {
		return a.pool.RunDocument(ctx, startDocID)
	}

	err = a.pool.Run(ctx, startOnce)
	if errors.Is(err, context.Canceled) {
		slog.Info("orchestrator stopped on shutdown signal")
		return nil
	}
	return err
}
