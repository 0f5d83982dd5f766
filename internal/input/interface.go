package input

import "context"

// Provider supplies the single video URL a run processes.
type Provider interface {
	VideoURL(ctx context.Context) (string, error)
}
