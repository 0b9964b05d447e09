package usecase

import (
	"context"
	"strings"

	"hr-recommendation/internal/recommendation"
)

// ClassifyRisk maps efficiency and attendance to a risk level. The first
// matching rung wins.
func ClassifyRisk(m recommendation.EmployeeMetrics) recommendation.RiskLevel {
	eff := floatOr(m.Efficiency, 0)
	att := floatOr(m.Attendance, 0)

	switch {
	case eff < highRiskEfficiency || att < highRiskAttendance:
		return recommendation.RiskHigh
	case eff < mediumRiskEfficiency || att < mediumRiskAttendance:
		return recommendation.RiskMedium
	default:
		return recommendation.RiskLow
	}
}

// BuildPrompt renders the instruction sent to the text generator.
func BuildPrompt(m recommendation.EmployeeMetrics) string {
	r := strings.NewReplacer(
		"{{name}}", stringOr(m.Name, defaultName),
		"{{designation}}", stringOr(m.Designation, defaultDesignation),
		"{{efficiency}}", formatNumber(floatOr(m.Efficiency, 0)),
		"{{attendance}}", formatNumber(floatOr(m.Attendance, 0)),
		"{{bayHours}}", formatNumber(floatOr(m.BayHours, PromptDefaultBayHours)),
		"{{clusterType}}", stringOr(m.ClusterType, defaultClusterType),
		"{{riskLevel}}", string(ClassifyRisk(m)),
	)
	return r.Replace(promptTemplate)
}

// Prompt returns the rendered prompt together with the risk level it embeds.
func (uc *implUseCase) Prompt(ctx context.Context, m recommendation.EmployeeMetrics) recommendation.PromptOutput {
	return recommendation.PromptOutput{
		Prompt:    BuildPrompt(m),
		RiskLevel: ClassifyRisk(m),
	}
}
