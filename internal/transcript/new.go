package transcript

import (
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implAcquirer struct {
	provider Provider
	language string
	logger   logger.Logger
}

// New creates an Acquirer that requests captions in the given language.
func New(provider Provider, language string, log logger.Logger) Acquirer {
	return &implAcquirer{
		provider: provider,
		language: language,
		logger:   log,
	}
}
