package config

import (
	"fmt"
	"os"

	"github.com/anatolykoptev/go-kit/env"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML config file, applies environment overrides and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return finalize(cfg)
}

// Default returns the built-in configuration with environment overrides applied.
func Default() (*Config, error) {
	return finalize(&Config{})
}

func finalize(cfg *Config) (*Config, error) {
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	cfg.LLM.APIKey = env.Str(cfg.LLM.APIKeyEnv, "")
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.Transcript.Language = env.Str("TRANSCRIPT_LANGUAGE", c.Transcript.Language)

	c.LLM.Provider = env.Str("LLM_PROVIDER", c.LLM.Provider)
	c.LLM.Model = env.Str("LLM_MODEL", c.LLM.Model)
	c.LLM.BaseURL = env.Str("LLM_API_BASE", c.LLM.BaseURL)
	c.LLM.APIKeyEnv = env.Str("LLM_API_KEY_ENV", c.LLM.APIKeyEnv)
	c.LLM.Temperature = env.Float("LLM_TEMPERATURE", c.LLM.Temperature)

	c.Storage.Driver = env.Str("STORAGE_DRIVER", c.Storage.Driver)
	c.Storage.Dir = env.Str("STORAGE_DIR", c.Storage.Dir)
	c.Storage.DSN = env.Str("DATABASE_URL", c.Storage.DSN)
	c.Storage.SupabaseURL = env.Str("SUPABASE_URL", c.Storage.SupabaseURL)
	c.Storage.SupabaseKey = env.Str("SUPABASE_KEY", c.Storage.SupabaseKey)

	c.Input.File = env.Str("INPUT_FILE", c.Input.File)
	c.Input.Wait = env.Duration("INPUT_WAIT", c.Input.Wait)

	c.Logging.Level = env.Str("LOG_LEVEL", c.Logging.Level)
	c.Logging.Format = env.Str("LOG_FORMAT", c.Logging.Format)
}
