package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/events"
)

var reprocessDocID string

var reprocessCmd = &cobra.Command{
	Use:   "reprocess",
	Short: "Reset a failed document for another pass through the pipeline",
	Long: `Reset a terminal failed document to pending with a fresh retry
budget. The next orchestrator tick (or a start-processor --doc-id run)
picks it up from the beginning.`,
	RunE: runReprocess,
}

func init() {
	reprocessCmd.Flags().StringVar(&reprocessDocID, "doc-id", "", "failed document to reset (UUID)")
	_ = reprocessCmd.MarkFlagRequired("doc-id")
}

func runReprocess(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	doc, err := a.deps.Documents.Reprocess(ctx, reprocessDocID)
	if err != nil {
		if errors.Is(err, data.ErrConcurrentModification) {
			return fmt.Errorf("document %s is not in the failed state", reprocessDocID)
		}
		return err
	}

	_ = a.deps.Events.Document(ctx, doc.ID, events.CategorySystem, events.EventManualReprocess, map[string]interface{}{
		"filename": doc.Filename,
	})
	fmt.Printf("document %s reset to pending\n", doc.ID)
	return nil
}
