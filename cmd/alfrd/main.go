// Package main implements the alfrd CLI — the document-processing
// orchestrator and its operator commands.
//
// Commands:
//   - cmd_start.go     - start-processor (the orchestrator loop, --once, --doc-id)
//   - cmd_events.go    - view-events (audit trail for one document)
//   - cmd_prompts.go   - view-prompts (prompt families and versions)
//   - cmd_reprocess.go - reprocess (reset a failed document)
//
// Shared wiring lives in bootstrap.go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:   "alfrd",
	Short: "alfrd processes scanned personal documents through an LLM-assisted pipeline",
	Long: `alfrd watches an inbox of scanned documents and drives each one
through OCR, classification, summarization, series filing, and
series-specific re-extraction, evolving its extraction prompts as
quality scores improve.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir",
		envOr("ALFRD_CONFIG_DIR", "./config"),
		"directory containing alfrd.yaml and .env")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(viewEventsCmd)
	rootCmd.AddCommand(viewPromptsCmd)
	rootCmd.AddCommand(reprocessCmd)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
