package transcript

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrUnavailable wraps every failure to produce a transcript.
var ErrUnavailable = errors.New("transcript unavailable")

// Acquire fetches the captions once and flattens them. No retries.
func (a *implAcquirer) Acquire(ctx context.Context, videoID string) (string, error) {
	a.logger.Info(ctx, "Fetching %q captions for video %s", a.language, videoID)

	segments, err := a.provider.Segments(ctx, videoID, a.language)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	text := Flatten(segments)
	if text == "" {
		return "", fmt.Errorf("video %s returned an empty transcript: %w", videoID, ErrUnavailable)
	}

	a.logger.Debug(ctx, "Fetched %d caption segments (%d bytes)", len(segments), len(text))
	return text, nil
}

// Flatten joins segment texts with newlines, keeping provider order.
func Flatten(segments []Segment) string {
	texts := make([]string, len(segments))
	for i, s := range segments {
		texts[i] = s.Text
	}
	return strings.Join(texts, "\n")
}
