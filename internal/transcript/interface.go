package transcript

import "context"

// Segment is one timed caption line, in playback order.
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// Provider fetches the caption segments of a video in a given language.
type Provider interface {
	Segments(ctx context.Context, videoID, language string) ([]Segment, error)
}

// Acquirer turns a video identifier into a flat plain-text transcript.
type Acquirer interface {
	Acquire(ctx context.Context, videoID string) (string, error)
}
