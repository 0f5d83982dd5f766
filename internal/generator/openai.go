package generator

import (
	"context"
	"net/http"

	"github.com/anatolykoptev/go-kit/llm"
)

// openAI talks to any OpenAI-compatible chat completions endpoint.
type openAI struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func newOpenAI(baseURL, apiKey, model string, httpClient *http.Client) Provider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &openAI{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
	}
}

// Generate uses the model fixed at construction; req.Model is ignored.
func (o *openAI) Generate(ctx context.Context, req Request) (string, error) {
	client := llm.NewClient(o.baseURL, o.apiKey, o.model,
		llm.WithMaxTokens(req.MaxTokens),
		llm.WithTemperature(req.Temperature),
		llm.WithHTTPClient(o.httpClient),
	)

	return client.Complete(ctx, req.System, req.Prompt)
}
