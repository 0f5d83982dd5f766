package pipeline

import "context"

// Pipeline processes one video reference end to end.
type Pipeline interface {
	// Run returns a non-nil error only for terminal failures; non-fatal
	// failures are logged and listed in Report.Failures.
	Run(ctx context.Context, rawURL string) (Report, error)
}
