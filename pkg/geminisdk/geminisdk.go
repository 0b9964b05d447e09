// Package geminisdk wraps the official google.golang.org/genai client behind
// the same narrow surface as pkg/gemini.
package geminisdk

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

const DefaultModel = "gemini-2.5-flash"

// Config holds SDK client configuration.
type Config struct {
	APIKey     string
	Model      string
	HTTPClient *http.Client
	BaseURL    string
}

// Result is the text produced by a call plus token usage.
type Result struct {
	Text         string
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Client generates text through the genai SDK.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a new SDK-backed client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("geminisdk: APIKey is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: cfg.HTTPClient,
	}
	if cfg.BaseURL != "" {
		cc.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("geminisdk: failed to create client: %w", err)
	}

	return &Client{client: client, model: cfg.Model}, nil
}

// Model returns the model being used.
func (c *Client) Model() string {
	return c.model
}

// Generate sends prompt as a single user turn.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string, temperature float32, maxTokens int32) (*Result, error) {
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: maxTokens,
	}
	if systemInstruction != "" {
		cfg.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: systemInstruction}}}
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("geminisdk: generate content: %w", err)
	}

	return toResult(resp), nil
}

func toResult(resp *genai.GenerateContentResponse) *Result {
	res := &Result{}
	if resp == nil {
		return res
	}

	if resp.UsageMetadata != nil {
		res.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		res.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
		res.TotalTokens = int(resp.UsageMetadata.TotalTokenCount)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return res
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	res.Text = sb.String()
	return res
}
