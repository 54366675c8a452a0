package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Initialize loads, merges, validates, and returns ready-to-use
// configuration. This is the primary entry point used by cmd/alfrd.
//
// Steps:
//  1. Load a .env file from configDir if present (best-effort, not required)
//  2. Read alfrd.yaml from configDir
//  3. Expand environment variables in the raw bytes
//  4. Unmarshal directly onto the built-in defaults (keys present in the YAML,
//     explicit zero values included, override defaults; absent keys keep them)
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("loading configuration")

	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}

	stats := cfg.Stats()
	log.Info("configuration loaded",
		"textract_workers", stats.TextractWorkers,
		"bedrock_workers", stats.BedrockWorkers,
		"file_workers", stats.FileWorkers)

	return cfg, nil
}

func load(configDir string) (*Config, error) {
	envPath := filepath.Join(configDir, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, newLoadError(".env", err)
		}
	}

	yamlPath := filepath.Join(configDir, "alfrd.yaml")
	raw, err := os.ReadFile(yamlPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, yamlPath)
		}
		return nil, newLoadError(yamlPath, err)
	}

	raw = expandEnv(raw)

	cfg := defaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, newLoadError(yamlPath, fmt.Errorf("%w: %v", ErrInvalidYAML, err))
	}
	cfg.configDir = configDir

	return cfg, nil
}
