package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/sirmick/alfrd/internal/adapters"
	"github.com/sirmick/alfrd/internal/config"
	"github.com/sirmick/alfrd/internal/data"
	"github.com/sirmick/alfrd/internal/database"
	"github.com/sirmick/alfrd/internal/events"
	"github.com/sirmick/alfrd/internal/inbox"
	"github.com/sirmick/alfrd/internal/locks"
	"github.com/sirmick/alfrd/internal/masking"
	"github.com/sirmick/alfrd/internal/notify"
	"github.com/sirmick/alfrd/internal/orchestrator"
	"github.com/sirmick/alfrd/internal/pipeline"
	"github.com/sirmick/alfrd/internal/regeneration"
	"github.com/sirmick/alfrd/internal/typeregistry"
)

// app holds the fully wired dependency graph shared by every command.
type app struct {
	cfg     *config.Config
	db      *database.Client
	deps    *pipeline.Deps
	pool    *orchestrator.Pool
	sweeper *regeneration.Sweeper

	closeAdapters []func() error
}

// newApp loads configuration, connects the database (running migrations),
// and wires the full pipeline dependency graph.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Initialize(ctx, configDir)
	if err != nil {
		return nil, err
	}
	setupLogging(cfg.Logging)

	db, err := database.NewClient(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	masker := masking.NewService(cfg.Masking.Enabled, cfg.Masking.PatternGroup)
	publisher := events.NewPublisher(db.Client, masker)

	lockManager := locks.NewManager(db.DB(), cfg.Locks.WaitTimeout,
		func(ctx context.Context, eventType string, details map[string]interface{}) {
			_ = publisher.System(ctx, events.CategoryLock, eventType, details)
		})

	var notifySvc *notify.Service
	if cfg.Slack != nil && cfg.Slack.Enabled {
		notifySvc = notify.NewService(os.Getenv(cfg.Slack.TokenEnv), cfg.Slack.Channel)
	}

	a := &app{cfg: cfg, db: db}

	ocr, llm, err := a.buildAdapters(cfg.Adapters)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	deps := &pipeline.Deps{
		Documents: data.NewDocumentService(db.Client),
		Tags:      data.NewTagService(db.Client),
		Series:    data.NewSeriesService(db.Client),
		Files:     data.NewFileService(db.Client),
		Prompts:   data.NewPromptService(db.Client),
		Events:    publisher,
		Locks:     lockManager,
		Types:     typeregistry.NewRegistry(db.Client, 5),
		Notify:    notifySvc,

		OCR:        ocr,
		LLM:        llm,
		OCRSem:     orchestrator.NewSemaphore(cfg.Orchestrator.TextractWorkers),
		LLMSem:     orchestrator.NewSemaphore(cfg.Orchestrator.BedrockWorkers),
		OCRTimeout: cfg.Adapters.OCRTimeout,
		LLMTimeout: cfg.Adapters.LLMTimeout,

		ArtifactsDir:           cfg.Inbox.ArtifactsDir,
		PromptUpdateThreshold:  cfg.Prompts.UpdateThreshold,
		MinSamplesForEvolution: cfg.Prompts.MinDocumentsForScoring,
		DefaultScoreCeiling:    cfg.Prompts.ScoreCeilingDefault,
		SeriesCatalogLimit:     20,

		Logger: slog.Default().With("component", "pipeline"),
	}
	a.deps = deps

	scanner := inbox.NewScanner(cfg.Inbox.WatchDir, deps.Documents, deps.Tags, publisher)
	a.pool = orchestrator.NewPool(cfg.Orchestrator, deps, scanner, regeneration.NewActivator(deps))

	if cfg.Retention.Enabled {
		a.sweeper = regeneration.NewSweeper(cfg.Inbox.ArtifactsDir, cfg.Retention.MaxAge)
	}

	return a, nil
}

func (a *app) buildAdapters(cfg config.AdapterConfig) (adapters.OCR, adapters.LLM, error) {
	if cfg.Mock {
		slog.Info("using mock OCR/LLM adapters")
		return adapters.NewMockOCR(), adapters.NewMockLLM(), nil
	}

	ocr, err := adapters.NewGRPCOCR(cfg.OCRAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to dial OCR adapter: %w", err)
	}
	llm, err := adapters.NewGRPCLLM(cfg.LLMAddr)
	if err != nil {
		_ = ocr.Close()
		return nil, nil, fmt.Errorf("failed to dial LLM adapter: %w", err)
	}

	a.closeAdapters = append(a.closeAdapters, ocr.Close, llm.Close)
	return ocr, llm, nil
}

// Close releases adapter connections and the database pool.
func (a *app) Close() {
	for _, closeFn := range a.closeAdapters {
		if err := closeFn(); err != nil {
			slog.Error("failed to close adapter", "error", err)
		}
	}
	if err := a.db.Close(); err != nil {
		slog.Error("failed to close database client", "error", err)
	}
}

func setupLogging(cfg config.LoggingConfig) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
