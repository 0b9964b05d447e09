package recommendation

import "context"

// TextGenerator is the generative-language capability: one prompt in,
// raw reply text out.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Recorder receives pipeline outcomes for monitoring.
type Recorder interface {
	RecordOutcome(source Source, reason string)
	RecordRejected(n int)
}

//go:generate mockery --name UseCase
type UseCase interface {
	// Generate never fails: any provider or parsing problem ends in the
	// rule-based fallback.
	Generate(ctx context.Context, metrics EmployeeMetrics) GenerateOutput
	Fallback(ctx context.Context, metrics EmployeeMetrics) []Recommendation
	Prompt(ctx context.Context, metrics EmployeeMetrics) PromptOutput
}
