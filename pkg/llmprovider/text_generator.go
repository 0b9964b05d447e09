package llmprovider

import (
	"context"
	"strings"
)

// TextGenerator turns a Manager into a prompt-in, text-out capability.
type TextGenerator struct {
	manager     *Manager
	temperature float64
	maxTokens   int
}

// NewTextGenerator wraps manager with fixed generation settings.
func NewTextGenerator(manager *Manager, temperature float64, maxTokens int) *TextGenerator {
	return &TextGenerator{manager: manager, temperature: temperature, maxTokens: maxTokens}
}

// Generate sends prompt as a single user message and returns the reply text.
// A reply without any text is reported as ErrEmptyResponse.
func (g *TextGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := UserPrompt(prompt)
	req.Temperature = g.temperature
	req.MaxTokens = g.maxTokens

	resp, err := g.manager.GenerateContent(ctx, req)
	if err != nil {
		return "", err
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
