package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	systemPrompt  = "Você é um assistente útil."
	faqPrompt     = "Baseado no conteúdo da seguinte transcrição em %s, gere %d perguntas e respostas:\n\n%s"
	summaryPrompt = "Resuma a seguinte transcrição em %s, destacando os pontos principais e as informações mais importantes:\n\n%s"
)

var (
	// ErrGeneration wraps every FAQ or summary failure.
	ErrGeneration  = errors.New("generation failed")
	errEmptyOutput = errors.New("empty model output")
)

// FAQ asks for cfg.FAQQuestions question/answer pairs.
func (g *implGenerator) FAQ(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(faqPrompt, g.language, g.cfg.FAQQuestions, transcript)
	return g.generate(ctx, "faq", prompt, g.cfg.FAQMaxTokens)
}

// Summary asks for a condensed summary of the main points.
func (g *implGenerator) Summary(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, g.language, transcript)
	return g.generate(ctx, "summary", prompt, g.cfg.SummaryMaxTokens)
}

func (g *implGenerator) generate(ctx context.Context, kind, prompt string, maxTokens int) (string, error) {
	g.logger.Info(ctx, "Generating %s with %s (max %d tokens)", kind, g.cfg.Model, maxTokens)

	text, err := g.provider.Generate(ctx, Request{
		Model:       g.cfg.Model,
		System:      systemPrompt,
		Prompt:      prompt,
		MaxTokens:   maxTokens,
		Candidates:  1,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w: %w", kind, ErrGeneration, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%s: %w: %w", kind, ErrGeneration, errEmptyOutput)
	}

	return text, nil
}
