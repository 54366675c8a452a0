package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sirmick/alfrd/ent/prompt"
)

var (
	promptsType     string
	promptsArchived bool
)

var viewPromptsCmd = &cobra.Command{
	Use:   "view-prompts",
	Short: "Show prompt families, versions, and performance",
	RunE:  runViewPrompts,
}

func init() {
	viewPromptsCmd.Flags().StringVar(&promptsType, "type", "", "filter by prompt type (classifier, summarizer, series_summarizer, file_summarizer, series_detector, scorer)")
	viewPromptsCmd.Flags().BoolVar(&promptsArchived, "archived", false, "include archived versions")
}

func runViewPrompts(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()

	var typeFilter *prompt.PromptType
	if promptsType != "" {
		pt := prompt.PromptType(promptsType)
		if err := prompt.PromptTypeValidator(pt); err != nil {
			return fmt.Errorf("unknown prompt type %q", promptsType)
		}
		typeFilter = &pt
	}

	rows, err := a.deps.Prompts.List(ctx, typeFilter, promptsArchived)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("no prompts found")
		return nil
	}

	for _, p := range rows {
		family := "-"
		if p.DocumentType != nil {
			family = *p.DocumentType
		} else if p.SeriesID != nil {
			family = "series:" + *p.SeriesID
		}

		state := "archived"
		if p.IsActive {
			state = "active"
		}
		avg := "unscored"
		if p.AvgScore != nil {
			avg = fmt.Sprintf("%.3f over %d docs", *p.AvgScore, p.SampleSize)
		}

		fmt.Printf("%-18s  %-40s  v%-3d  %-8s  evolve=%-5t  ceiling=%.2f  %s\n",
			p.PromptType, family, p.Version, state, p.CanEvolve, p.ScoreCeiling, avg)
	}
	return nil
}
