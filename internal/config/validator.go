package config

import "fmt"

// validate performs fail-fast validation of every configuration section.
func validate(cfg *Config) error {
	if err := validateDatabase(cfg); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := validateOrchestrator(cfg); err != nil {
		return fmt.Errorf("orchestrator: %w", err)
	}
	if err := validateAdapters(cfg); err != nil {
		return fmt.Errorf("adapters: %w", err)
	}
	if err := validateInbox(cfg); err != nil {
		return fmt.Errorf("inbox: %w", err)
	}
	if err := validatePrompts(cfg); err != nil {
		return fmt.Errorf("prompts: %w", err)
	}
	if err := validateSlack(cfg); err != nil {
		return fmt.Errorf("slack: %w", err)
	}
	return nil
}

func validateDatabase(cfg *Config) error {
	d := cfg.Database
	if d.DSN == "" {
		return newValidationError("database", "dsn", fmt.Errorf("must not be empty"))
	}
	if d.MaxOpenConns < 1 {
		return newValidationError("database", "max_open_conns", fmt.Errorf("must be at least 1, got %d", d.MaxOpenConns))
	}
	if d.MaxIdleConns < 0 || d.MaxIdleConns > d.MaxOpenConns {
		return newValidationError("database", "max_idle_conns", fmt.Errorf("must be between 0 and max_open_conns, got %d", d.MaxIdleConns))
	}
	return nil
}

func validateOrchestrator(cfg *Config) error {
	o := cfg.Orchestrator
	if o.TextractWorkers < 1 {
		return newValidationError("orchestrator", "textract_workers", fmt.Errorf("must be at least 1, got %d", o.TextractWorkers))
	}
	if o.BedrockWorkers < 1 {
		return newValidationError("orchestrator", "bedrock_workers", fmt.Errorf("must be at least 1, got %d", o.BedrockWorkers))
	}
	if o.FileGenerationWorkers < 1 {
		return newValidationError("orchestrator", "file_generation_workers", fmt.Errorf("must be at least 1, got %d", o.FileGenerationWorkers))
	}
	if o.MaxDocumentFlows < 1 {
		return newValidationError("orchestrator", "max_document_flows", fmt.Errorf("must be at least 1, got %d", o.MaxDocumentFlows))
	}
	if o.MaxFileFlows < 1 {
		return newValidationError("orchestrator", "max_file_flows", fmt.Errorf("must be at least 1, got %d", o.MaxFileFlows))
	}
	if o.PollInterval <= 0 {
		return newValidationError("orchestrator", "poll_interval", fmt.Errorf("must be positive, got %v", o.PollInterval))
	}
	if o.StaleTimeout <= o.PollInterval {
		return newValidationError("orchestrator", "stale_timeout", fmt.Errorf("must exceed poll_interval, got stale=%v poll=%v", o.StaleTimeout, o.PollInterval))
	}
	if o.MaxRetries < 0 {
		return newValidationError("orchestrator", "max_retries", fmt.Errorf("must be non-negative, got %d", o.MaxRetries))
	}
	return nil
}

func validateAdapters(cfg *Config) error {
	a := cfg.Adapters
	if a.OCRTimeout <= 0 {
		return newValidationError("adapters", "ocr_timeout", fmt.Errorf("must be positive, got %v", a.OCRTimeout))
	}
	if a.LLMTimeout <= 0 {
		return newValidationError("adapters", "llm_timeout", fmt.Errorf("must be positive, got %v", a.LLMTimeout))
	}
	if a.Mock {
		return nil
	}
	if a.OCRAddr == "" {
		return newValidationError("adapters", "ocr_addr", fmt.Errorf("required unless mock adapters are enabled"))
	}
	if a.LLMAddr == "" {
		return newValidationError("adapters", "llm_addr", fmt.Errorf("required unless mock adapters are enabled"))
	}
	return nil
}

func validateInbox(cfg *Config) error {
	i := cfg.Inbox
	if i.WatchDir == "" {
		return newValidationError("inbox", "watch_dir", fmt.Errorf("must not be empty"))
	}
	if i.ArtifactsDir == "" {
		return newValidationError("inbox", "artifacts_dir", fmt.Errorf("must not be empty"))
	}
	if i.ScanInterval <= 0 {
		return newValidationError("inbox", "scan_interval", fmt.Errorf("must be positive, got %v", i.ScanInterval))
	}
	return nil
}

func validatePrompts(cfg *Config) error {
	p := cfg.Prompts
	if p.UpdateThreshold < 0 {
		return newValidationError("prompts", "prompt_update_threshold", fmt.Errorf("must be non-negative, got %v", p.UpdateThreshold))
	}
	if p.MinDocumentsForScoring < 1 {
		return newValidationError("prompts", "min_documents_for_scoring", fmt.Errorf("must be at least 1, got %d", p.MinDocumentsForScoring))
	}
	if p.ScoreCeilingDefault <= 0 || p.ScoreCeilingDefault > 1 {
		return newValidationError("prompts", "score_ceiling_default", fmt.Errorf("must be in (0, 1], got %v", p.ScoreCeilingDefault))
	}
	return nil
}

func validateSlack(cfg *Config) error {
	if cfg.Slack == nil || !cfg.Slack.Enabled {
		return nil
	}
	if cfg.Slack.TokenEnv == "" {
		return newValidationError("slack", "token_env", fmt.Errorf("required when slack is enabled"))
	}
	if cfg.Slack.Channel == "" {
		return newValidationError("slack", "channel", fmt.Errorf("required when slack is enabled"))
	}
	return nil
}
