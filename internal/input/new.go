package input

import (
	"time"

	"github.com/nguyentantai21042004/lecture-flow/internal/config"
	"github.com/nguyentantai21042004/lecture-flow/internal/logger"
)

type implProvider struct {
	flagValue string
	file      string
	wait      time.Duration
	settle    time.Duration
	logger    logger.Logger
}

// New creates a Provider. flagValue wins over VIDEO_URL, which wins over cfg.File.
func New(flagValue string, cfg config.InputConfig, log logger.Logger) Provider {
	return &implProvider{
		flagValue: flagValue,
		file:      cfg.File,
		wait:      cfg.Wait,
		settle:    500 * time.Millisecond,
		logger:    log,
	}
}
