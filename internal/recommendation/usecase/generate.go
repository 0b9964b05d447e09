package usecase

import (
	"context"

	"hr-recommendation/internal/recommendation"
)

// Generate asks the text generator for recommendations and resolves the
// reply, falling back to the rule engine on any failure.
func (uc *implUseCase) Generate(ctx context.Context, m recommendation.EmployeeMetrics) recommendation.GenerateOutput {
	if uc.gen == nil {
		out := fallbackOutput(m, recommendation.ReasonNoGenerator, 0)
		uc.record(ctx, out)
		return out
	}

	raw, err := uc.gen.Generate(ctx, BuildPrompt(m))
	if err != nil {
		uc.l.Warnf(ctx, "uc.Generate gen.Generate: %v", err)
	}

	out := Resolve(raw, err, m)
	uc.record(ctx, out)
	return out
}

func (uc *implUseCase) record(ctx context.Context, out recommendation.GenerateOutput) {
	if out.Source == recommendation.SourceFallback {
		uc.l.Info(ctx, "using rule-based recommendations",
			"reason", out.FallbackReason,
			"rejected_records", out.RejectedRecords,
			"count", len(out.Recommendations),
		)
	} else {
		uc.l.Debugf(ctx, "recommendations generated: %d", len(out.Recommendations))
	}

	if uc.rec == nil {
		return
	}
	uc.rec.RecordOutcome(out.Source, out.FallbackReason)
	if out.RejectedRecords > 0 {
		uc.rec.RecordRejected(out.RejectedRecords)
	}
}
