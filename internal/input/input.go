package input

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anatolykoptev/go-kit/env"
)

const (
	EnvVideoURL = "VIDEO_URL"
	fileKey     = "VIDEO_URL"
)

// ErrMissing is returned when no source provides a video URL.
var ErrMissing = errors.New("video url not provided")

func (p *implProvider) VideoURL(ctx context.Context) (string, error) {
	if v := strings.TrimSpace(p.flagValue); v != "" {
		p.logger.Debug(ctx, "Video URL taken from command line")
		return v, nil
	}

	if v := strings.TrimSpace(env.Str(EnvVideoURL, "")); v != "" {
		p.logger.Debug(ctx, "Video URL taken from %s", EnvVideoURL)
		return v, nil
	}

	if p.file == "" {
		return "", ErrMissing
	}

	if p.wait > 0 {
		if err := p.waitForFile(ctx); err != nil {
			return "", err
		}
	}

	return p.readFile(ctx)
}

// readFile reads {"VIDEO_URL": "..."} from the input file.
func (p *implProvider) readFile(ctx context.Context) (string, error) {
	data, err := os.ReadFile(p.file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("input file %s does not exist: %w", p.file, ErrMissing)
		}
		return "", fmt.Errorf("read input file: %w", err)
	}

	var values map[string]any
	if err := json.Unmarshal(data, &values); err != nil {
		return "", fmt.Errorf("parse input file %s: %w", p.file, err)
	}

	v, _ := values[fileKey].(string)
	if v = strings.TrimSpace(v); v == "" {
		return "", fmt.Errorf("input file %s has no %s: %w", p.file, fileKey, ErrMissing)
	}

	p.logger.Debug(ctx, "Video URL taken from %s", p.file)
	return v, nil
}
