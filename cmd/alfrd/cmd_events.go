package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sirmick/alfrd/ent"
	"github.com/sirmick/alfrd/ent/event"
)

var (
	eventsCategory string
	eventsFull     bool
	eventsJSON     bool
)

// detailPreviewLimit truncates event details in the default text view;
// --full shows everything.
const detailPreviewLimit = 120

var viewEventsCmd = &cobra.Command{
	Use:   "view-events <document-uuid>",
	Short: "Show the audit event trail for a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runViewEvents,
}

func init() {
	viewEventsCmd.Flags().StringVar(&eventsCategory, "category", "", "filter by category (lifecycle, lock, prompt_evolution, notify, system)")
	viewEventsCmd.Flags().BoolVar(&eventsFull, "full", false, "show full detail payloads")
	viewEventsCmd.Flags().BoolVar(&eventsJSON, "json", false, "emit JSON instead of text")
}

func runViewEvents(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	query := a.db.Client.Event.Query().
		Where(event.DocumentIDEQ(args[0])).
		Order(ent.Asc(event.FieldCreatedAt))
	if eventsCategory != "" {
		query = query.Where(event.CategoryEQ(eventsCategory))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query events: %w", err)
	}

	if eventsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	if len(rows) == 0 {
		fmt.Println("no events recorded for", args[0])
		return nil
	}

	for _, e := range rows {
		detail := ""
		if e.Details != nil {
			raw, err := json.Marshal(e.Details)
			if err == nil {
				detail = string(raw)
				if !eventsFull && len(detail) > detailPreviewLimit {
					detail = detail[:detailPreviewLimit] + "..."
				}
			}
		}
		fmt.Printf("%s  %-16s  %-32s  %s\n",
			e.CreatedAt.Format(time.RFC3339), e.Category, e.EventType, detail)
	}
	return nil
}
