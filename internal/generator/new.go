package generator

import (
	"fmt"
	"net/http"

	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implGenerator struct {
	provider Provider
	cfg      config.LLMConfig
	language string
	logger   logger.Logger
}

// New creates a Generator writing prompts in languageName (e.g. "português").
func New(provider Provider, cfg config.LLMConfig, languageName string, log logger.Logger) Generator {
	return &implGenerator{
		provider: provider,
		cfg:      cfg,
		language: languageName,
		logger:   log,
	}
}

// NewProvider builds the backend selected by cfg.Provider.
func NewProvider(cfg config.LLMConfig, httpClient *http.Client) (Provider, error) {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return newOpenAI(cfg.BaseURL, cfg.APIKey, cfg.Model, httpClient), nil
	case config.ProviderGemini:
		return newGemini(cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider %q", cfg.Provider)
	}
}
