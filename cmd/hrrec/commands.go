package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"hr-recommendation/internal/recommendation"
	"hr-recommendation/internal/recommendation/usecase"
	"hr-recommendation/pkg/llmprovider"
	"hr-recommendation/pkg/log"
)

var (
	recommendFlags = &metricFlags{}
	recommendLLM   = &providerFlags{}
	fallbackFlags  = &metricFlags{}
	promptFlags    = &metricFlags{}
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Generate recommendations with the language model, falling back to rules",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		l := newLogger()

		uc := usecase.New(l, buildGenerator(ctx, cmd, l, recommendLLM), nil)
		out := uc.Generate(ctx, recommendFlags.metrics(cmd))

		return writeResult(cmd.OutOrStdout(), outputFormat, result{
			Source:          string(out.Source),
			FallbackReason:  out.FallbackReason,
			Recommendations: out.Recommendations,
		})
	},
}

var fallbackCmd = &cobra.Command{
	Use:   "fallback",
	Short: "Generate recommendations from the threshold rules only",
	RunE: func(cmd *cobra.Command, args []string) error {
		recs := usecase.Fallback(fallbackFlags.metrics(cmd))
		return writeResult(cmd.OutOrStdout(), outputFormat, result{
			Source:          string(recommendation.SourceFallback),
			Recommendations: recs,
		})
	},
}

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt that would be sent to the language model",
	RunE: func(cmd *cobra.Command, args []string) error {
		m := promptFlags.metrics(cmd)
		fmt.Fprintf(cmd.ErrOrStderr(), "Risk level: %s\n", usecase.ClassifyRisk(m))
		fmt.Fprint(cmd.OutOrStdout(), usecase.BuildPrompt(m))
		return nil
	},
}

func init() {
	recommendFlags.register(recommendCmd.Flags())
	recommendLLM.register(recommendCmd.Flags())
	fallbackFlags.register(fallbackCmd.Flags())
	promptFlags.register(promptCmd.Flags())
}

// buildGenerator returns nil when no provider can be built, leaving the
// rule engine to answer.
func buildGenerator(ctx context.Context, cmd *cobra.Command, l log.Logger, f *providerFlags) recommendation.TextGenerator {
	cfg, ok := f.llmConfig()
	if !ok {
		fmt.Fprintf(cmd.ErrOrStderr(), "No API key for %s, using rule-based recommendations\n", f.provider)
		return nil
	}

	manager, err := llmprovider.NewManagerFromConfig(ctx, cfg, l, nil)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Provider %s unavailable (%v), using rule-based recommendations\n", f.provider, err)
		return nil
	}
	return llmprovider.NewTextGenerator(manager, defaultTemperature, defaultMaxTokens)
}

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
)
