package usecase

import (
	"context"
	"fmt"

	"hr-recommendation/internal/recommendation"
)

// Fallback builds recommendations from fixed threshold rules. It always
// returns between 1 and 4 records and is a pure function of m.
func Fallback(m recommendation.EmployeeMetrics) []recommendation.Recommendation {
	eff := floatOr(m.Efficiency, 0)
	att := floatOr(m.Attendance, 0)
	bay := floatOr(m.BayHours, FallbackDefaultBayHours)

	var recs []recommendation.Recommendation

	if eff < lowEfficiency {
		recs = append(recs, recommendation.Recommendation{
			Icon:        "fas fa-chart-line",
			Title:       "Performance Enhancement",
			Description: fmt.Sprintf("Current efficiency is %s%%. Consider skills training and workflow optimization.", formatNumber(eff)),
			Priority:    recommendation.PriorityHigh,
		})
	} else if eff < moderateEfficiency {
		recs = append(recs, recommendation.Recommendation{
			Icon:        "fas fa-target",
			Title:       "Performance Optimization",
			Description: fmt.Sprintf("Good efficiency at %s%%. Focus on advanced productivity techniques.", formatNumber(eff)),
			Priority:    recommendation.PriorityMedium,
		})
	}

	if att < lowAttendance {
		recs = append(recs, recommendation.Recommendation{
			Icon:        "fas fa-calendar-check",
			Title:       "Attendance Improvement",
			Description: fmt.Sprintf("Attendance at %s%% needs attention. Consider flexible scheduling.", formatNumber(att)),
			Priority:    recommendation.PriorityHigh,
		})
	}

	if bay > longBayHours {
		recs = append(recs, recommendation.Recommendation{
			Icon:        "fas fa-balance-scale",
			Title:       "Work-Life Balance",
			Description: fmt.Sprintf("High office hours (%shrs). Focus on time management to prevent burnout.", formatNumber(bay)),
			Priority:    recommendation.PriorityHigh,
		})
	} else if bay < shortBayHours {
		recs = append(recs, recommendation.Recommendation{
			Icon:        "fas fa-building",
			Title:       "Office Engagement",
			Description: fmt.Sprintf("Low office hours (%shrs). Consider increasing collaborative work time.", formatNumber(bay)),
			Priority:    recommendation.PriorityMedium,
		})
	}

	if len(recs) == 0 {
		recs = append(recs, recommendation.Recommendation{
			Icon:        "fas fa-star",
			Title:       "Continuous Improvement",
			Description: "Maintain excellent performance and explore leadership opportunities.",
			Priority:    recommendation.PriorityLow,
		})
	}

	if len(recs) > recommendation.MaxRecommendations {
		recs = recs[:recommendation.MaxRecommendations]
	}
	return recs
}

func (uc *implUseCase) Fallback(ctx context.Context, m recommendation.EmployeeMetrics) []recommendation.Recommendation {
	return Fallback(m)
}
