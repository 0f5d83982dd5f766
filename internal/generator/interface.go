package generator

import "context"

// Request carries one prompt and its generation parameters.
type Request struct {
	Model       string
	System      string
	Prompt      string
	MaxTokens   int
	Candidates  int
	Temperature float64
}

// Provider is a language-model backend.
type Provider interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Generator produces the FAQ and summary documents for a transcript.
// The two calls are independent and safe to run concurrently.
type Generator interface {
	FAQ(ctx context.Context, transcript string) (string, error)
	Summary(ctx context.Context, transcript string) (string, error)
}
