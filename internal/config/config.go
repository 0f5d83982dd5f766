package config

import (
	"fmt"
	"path/filepath"
	"time"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"

	DriverFS       = "fs"
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Transcript TranscriptConfig `yaml:"transcript"`
	LLM        LLMConfig        `yaml:"llm"`
	Storage    StorageConfig    `yaml:"storage"`
	Output     OutputConfig     `yaml:"output"`
	Input      InputConfig      `yaml:"input"`
	Logging    LoggingConfig    `yaml:"logging"`
	Pipeline   PipelineConfig   `yaml:"pipeline"`
}

type TranscriptConfig struct {
	Language     string        `yaml:"language"`
	LanguageName string        `yaml:"language_name"`
	HTTPTimeout  time.Duration `yaml:"http_timeout"`
}

type LLMConfig struct {
	Provider         string  `yaml:"provider"`
	Model            string  `yaml:"model"`
	BaseURL          string  `yaml:"base_url"`
	APIKeyEnv        string  `yaml:"api_key_env"`
	Temperature      float64 `yaml:"temperature"`
	FAQMaxTokens     int     `yaml:"faq_max_tokens"`
	SummaryMaxTokens int     `yaml:"summary_max_tokens"`
	FAQQuestions     int     `yaml:"faq_questions"`

	// APIKey is read from the APIKeyEnv variable, never from the file.
	APIKey string `yaml:"-"`
}

type StorageConfig struct {
	Driver      string `yaml:"driver"`
	Dir         string `yaml:"dir"`
	Prefix      string `yaml:"prefix"`
	DSN         string `yaml:"dsn"`
	SupabaseURL string `yaml:"supabase_url"`
	SupabaseKey string `yaml:"supabase_key"`
	Bucket      string `yaml:"bucket"`
}

type OutputConfig struct {
	DOCX bool `yaml:"docx"`
}

type InputConfig struct {
	File string        `yaml:"file"`
	Wait time.Duration `yaml:"wait"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PipelineConfig struct {
	SequentialGeneration bool `yaml:"sequential_generation"`
}

// Validate rejects unusable values and fills defaults in place.
func (c *Config) Validate() error {
	if c.Transcript.Language == "" {
		c.Transcript.Language = "pt"
	}
	if c.Transcript.LanguageName == "" {
		c.Transcript.LanguageName = "português"
	}
	if c.Transcript.HTTPTimeout == 0 {
		c.Transcript.HTTPTimeout = 30 * time.Second
	}
	if c.Transcript.HTTPTimeout < 0 {
		return fmt.Errorf("transcript.http_timeout must be positive")
	}

	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	switch c.LLM.Provider {
	case ProviderOpenAI:
		if c.LLM.Model == "" {
			c.LLM.Model = "gpt-3.5-turbo"
		}
		if c.LLM.BaseURL == "" {
			c.LLM.BaseURL = "https://api.openai.com/v1"
		}
		if c.LLM.APIKeyEnv == "" {
			c.LLM.APIKeyEnv = "OPENAI_API_KEY"
		}
	case ProviderGemini:
		if c.LLM.Model == "" {
			c.LLM.Model = "gemini-2.5-flash"
		}
		if c.LLM.APIKeyEnv == "" {
			c.LLM.APIKeyEnv = "GEMINI_API_KEY"
		}
	default:
		return fmt.Errorf("llm.provider %q is not supported", c.LLM.Provider)
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.5
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if c.LLM.FAQMaxTokens == 0 {
		c.LLM.FAQMaxTokens = 1500
	}
	if c.LLM.SummaryMaxTokens == 0 {
		c.LLM.SummaryMaxTokens = 600
	}
	if c.LLM.FAQQuestions == 0 {
		c.LLM.FAQQuestions = 30
	}
	if c.LLM.FAQMaxTokens < 0 || c.LLM.SummaryMaxTokens < 0 || c.LLM.FAQQuestions < 0 {
		return fmt.Errorf("llm token budgets and faq_questions must be positive")
	}

	if c.Storage.Driver == "" {
		c.Storage.Driver = DriverFS
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = "."
	}
	switch c.Storage.Driver {
	case DriverFS:
	case DriverSQLite:
		if c.Storage.DSN == "" {
			c.Storage.DSN = filepath.Join(c.Storage.Dir, "artifacts.db")
		}
	case DriverPostgres:
		if c.Storage.DSN == "" {
			return fmt.Errorf("storage.dsn is required for the postgres driver")
		}
	case DriverSupabase:
		if c.Storage.SupabaseURL == "" {
			return fmt.Errorf("storage.supabase_url is required for the supabase driver")
		}
		if c.Storage.SupabaseKey == "" {
			return fmt.Errorf("storage.supabase_key is required for the supabase driver")
		}
		if c.Storage.Bucket == "" {
			c.Storage.Bucket = "artifacts"
		}
	default:
		return fmt.Errorf("storage.driver %q is not supported", c.Storage.Driver)
	}

	if c.Input.Wait < 0 {
		return fmt.Errorf("input.wait must not be negative")
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}

	return nil
}
