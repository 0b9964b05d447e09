package llmprovider

import (
	"context"

	"hr-recommendation/pkg/deepseek"
	"hr-recommendation/pkg/gemini"
	"hr-recommendation/pkg/geminisdk"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IGemini
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IGemini) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		SystemInstruction: convertToGeminiContent(req.SystemInstruction),
		Messages:          convertToGeminiContents(req.Messages),
		Temperature:       req.Temperature,
		MaxTokens:         req.MaxTokens,
	}

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	usage := &Usage{}
	if resp.Usage != nil {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      convertFromGeminiContent(resp.Content),
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// GeminiSDKAdapter adapts pkg/geminisdk to llmprovider.Provider interface
type GeminiSDKAdapter struct {
	client *geminisdk.Client
}

// NewGeminiSDKAdapter creates a new adapter over the official SDK
func NewGeminiSDKAdapter(client *geminisdk.Client) *GeminiSDKAdapter {
	return &GeminiSDKAdapter{client: client}
}

// GenerateContent implements Provider interface
func (a *GeminiSDKAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	system := ""
	if req.SystemInstruction != nil {
		system = joinParts(req.SystemInstruction.Parts)
	}

	prompt := ""
	for _, msg := range req.Messages {
		prompt += joinParts(msg.Parts)
	}

	res, err := a.client.Generate(ctx, system, prompt, float32(req.Temperature), int32(req.MaxTokens))
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: res.Text}}},
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  res.InputTokens,
			OutputTokens: res.OutputTokens,
			TotalTokens:  res.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiSDKAdapter) Name() string {
	return "gemini-sdk"
}

// Model returns model name
func (a *GeminiSDKAdapter) Model() string {
	return a.client.Model()
}

// DeepSeekAdapter adapts pkg/deepseek (any OpenAI-compatible endpoint) to
// llmprovider.Provider interface
type DeepSeekAdapter struct {
	client deepseek.IDeepSeek
	name   string
}

// NewDeepSeekAdapter creates a new DeepSeek adapter. name distinguishes
// endpoints sharing the client, e.g. "deepseek" or "qwen".
func NewDeepSeekAdapter(client deepseek.IDeepSeek, name string) *DeepSeekAdapter {
	if name == "" {
		name = "deepseek"
	}
	return &DeepSeekAdapter{client: client, name: name}
}

// GenerateContent implements Provider interface
func (a *DeepSeekAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	resp, err := a.client.GenerateContent(ctx, &deepseek.Request{
		Messages:    convertToDeepSeekMessages(req),
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, &ProviderError{Provider: a.Name(), Err: err}
	}

	return convertFromDeepSeekResponse(resp, a.Name()), nil
}

// Name returns provider name
func (a *DeepSeekAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *DeepSeekAdapter) Model() string {
	return a.client.Model()
}

func convertToGeminiContent(msg *Message) *gemini.Content {
	if msg == nil {
		return nil
	}
	content := &gemini.Content{Role: msg.Role}
	for _, p := range msg.Parts {
		content.Parts = append(content.Parts, gemini.Part{Text: p.Text})
	}
	return content
}

func convertToGeminiContents(msgs []Message) []gemini.Content {
	contents := make([]gemini.Content, len(msgs))
	for i, msg := range msgs {
		contents[i] = *convertToGeminiContent(&msg)
	}
	return contents
}

func convertFromGeminiContent(content gemini.Content) Message {
	msg := Message{Role: content.Role}
	for _, p := range content.Parts {
		msg.Parts = append(msg.Parts, Part{Text: p.Text})
	}
	return msg
}

func convertToDeepSeekMessages(req *Request) []deepseek.Message {
	msgs := make([]deepseek.Message, 0, len(req.Messages)+1)
	if req.SystemInstruction != nil {
		msgs = append(msgs, deepseek.Message{Role: "system", Content: joinParts(req.SystemInstruction.Parts)})
	}
	for _, m := range req.Messages {
		role := m.Role
		if role == "" || role == "model" {
			role = "user"
		}
		msgs = append(msgs, deepseek.Message{Role: role, Content: joinParts(m.Parts)})
	}
	return msgs
}

func convertFromDeepSeekResponse(resp *deepseek.Response, name string) *Response {
	out := &Response{
		ProviderName: name,
		ModelName:    resp.Model,
		Usage: &Usage{
			InputTokens:  resp.Usage.PromptTokens,
			OutputTokens: resp.Usage.CompletionTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) > 0 {
		choice := resp.Choices[0].Message
		out.Content = Message{Role: choice.Role, Parts: []Part{{Text: choice.Content}}}
	}
	return out
}

func joinParts(parts []Part) string {
	var text string
	for _, p := range parts {
		text += p.Text
	}
	return text
}
