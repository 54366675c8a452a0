package config

import "time"

// Config is the umbrella configuration object produced by Initialize and
// threaded through cmd/alfrd into every package that needs it.
type Config struct {
	configDir string

	Database     DatabaseConfig     `yaml:"database"`
	Orchestrator OrchestratorConfig `yaml:"orchestrator"`
	Adapters     AdapterConfig      `yaml:"adapters"`
	Inbox        InboxConfig        `yaml:"inbox"`
	Prompts      PromptConfig       `yaml:"prompts"`
	Locks        LockConfig         `yaml:"locks"`
	Slack        *SlackConfig       `yaml:"slack"`
	Masking      MaskingConfig      `yaml:"masking"`
	Retention    RetentionConfig    `yaml:"retention"`
	Logging      LoggingConfig      `yaml:"logging"`
}

// ConfigDir returns the directory Initialize loaded this configuration from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// DatabaseConfig holds Postgres connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	MigrationsTable string        `yaml:"migrations_table"`
}

// OrchestratorConfig controls the per-resource worker pools and the
// cooperative scheduling loop.
type OrchestratorConfig struct {
	TextractWorkers      int           `yaml:"textract_workers"`
	BedrockWorkers       int           `yaml:"bedrock_workers"`
	FileGenerationWorkers int          `yaml:"file_generation_workers"`
	MaxDocumentFlows     int           `yaml:"max_document_flows"`
	MaxFileFlows         int           `yaml:"max_file_flows"`
	PollInterval         time.Duration `yaml:"poll_interval"`
	RecoveryInterval     time.Duration `yaml:"recovery_interval"`
	StaleTimeout         time.Duration `yaml:"stale_timeout"`
	MaxRetries           int           `yaml:"max_retries"`
	ShutdownTimeout      time.Duration `yaml:"shutdown_timeout"`
}

// AdapterConfig selects and tunes the OCR/LLM adapters. Mock swaps both
// for the deterministic in-process pair, used by local runs and tests.
type AdapterConfig struct {
	Mock       bool          `yaml:"mock"`
	OCRAddr    string        `yaml:"ocr_addr"`
	LLMAddr    string        `yaml:"llm_addr"`
	OCRTimeout time.Duration `yaml:"ocr_timeout"`
	LLMTimeout time.Duration `yaml:"llm_timeout"`
}

// InboxConfig controls the folder scanner that registers new documents and
// where per-document OCR artifacts land.
type InboxConfig struct {
	WatchDir     string        `yaml:"watch_dir"`
	ArtifactsDir string        `yaml:"artifacts_dir"`
	ScanInterval time.Duration `yaml:"scan_interval"`
}

// PromptConfig controls prompt selection and self-evolution thresholds.
type PromptConfig struct {
	UpdateThreshold       float64 `yaml:"prompt_update_threshold"`
	MinDocumentsForScoring int    `yaml:"min_documents_for_scoring"`
	ScoreCeilingDefault   float64 `yaml:"score_ceiling_default"`
}

// LockConfig controls advisory-lock wait behavior.
type LockConfig struct {
	WaitTimeout time.Duration `yaml:"lock_wait_timeout"`
}

// SlackConfig holds optional failure-notification settings. A nil *SlackConfig
// on Config, or Enabled == false, disables notify entirely (nil-safe no-op).
type SlackConfig struct {
	Enabled  bool   `yaml:"enabled"`
	TokenEnv string `yaml:"token_env"`
	Channel  string `yaml:"channel"`
}

// MaskingConfig controls PII/secret redaction of event detail payloads.
type MaskingConfig struct {
	Enabled      bool   `yaml:"enabled"`
	PatternGroup string `yaml:"pattern_group"`
}

// RetentionConfig controls the sweep that prunes aged on-disk OCR artifacts.
type RetentionConfig struct {
	Enabled       bool          `yaml:"enabled"`
	MaxAge        time.Duration `yaml:"max_age"`
	SweepInterval time.Duration `yaml:"sweep_interval"`
}

// LoggingConfig controls the root slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "json" or "text"
}

// ConfigStats reports basic counters for startup logging.
type ConfigStats struct {
	TextractWorkers int
	BedrockWorkers  int
	FileWorkers     int
}

// Stats returns a small summary used for the startup log line.
func (c *Config) Stats() ConfigStats {
	return ConfigStats{
		TextractWorkers: c.Orchestrator.TextractWorkers,
		BedrockWorkers:  c.Orchestrator.BedrockWorkers,
		FileWorkers:     c.Orchestrator.FileGenerationWorkers,
	}
}
