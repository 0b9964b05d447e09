package http

import (
	"time"

	"hr-recommendation/internal/recommendation"
	"hr-recommendation/pkg/response"
)

// --- Request DTOs ---

// metricsReq mirrors recommendation.EmployeeMetrics. Numbers outside 0..100
// are accepted as is.
type metricsReq struct {
	ID          any      `json:"id"`
	Name        *string  `json:"name"`
	Designation *string  `json:"designation"`
	Efficiency  *float64 `json:"efficiency"`
	Attendance  *float64 `json:"attendance"`
	BayHours    *float64 `json:"bayHours"`
	ClusterType *string  `json:"clusterType"`
	Punctuality *float64 `json:"punctuality"`
	Score       *float64 `json:"score"`
}

func (r metricsReq) toInput() recommendation.EmployeeMetrics {
	return recommendation.EmployeeMetrics{
		ID:          r.ID,
		Name:        r.Name,
		Designation: r.Designation,
		Efficiency:  r.Efficiency,
		Attendance:  r.Attendance,
		BayHours:    r.BayHours,
		ClusterType: r.ClusterType,
		Punctuality: r.Punctuality,
		Score:       r.Score,
	}
}

// --- Response DTOs ---

type recommendationResp struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

func newRecommendationResps(recs []recommendation.Recommendation) []recommendationResp {
	out := make([]recommendationResp, len(recs))
	for i, r := range recs {
		out[i] = recommendationResp{
			Icon:        r.Icon,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
		}
	}
	return out
}

type generateResp struct {
	Recommendations []recommendationResp `json:"recommendations"`
	Source          string               `json:"source"`
	GeneratedAt     response.DateTime    `json:"generated_at" swaggertype:"string"`
}

func (h *handler) newGenerateResp(out recommendation.GenerateOutput) generateResp {
	return generateResp{
		Recommendations: newRecommendationResps(out.Recommendations),
		Source:          string(out.Source),
		GeneratedAt:     response.DateTime(time.Now()),
	}
}

type fallbackResp struct {
	Recommendations []recommendationResp `json:"recommendations"`
	GeneratedAt     response.DateTime    `json:"generated_at" swaggertype:"string"`
}

func (h *handler) newFallbackResp(recs []recommendation.Recommendation) fallbackResp {
	return fallbackResp{
		Recommendations: newRecommendationResps(recs),
		GeneratedAt:     response.DateTime(time.Now()),
	}
}

type promptResp struct {
	Prompt    string `json:"prompt"`
	RiskLevel string `json:"risk_level"`
}

func (h *handler) newPromptResp(out recommendation.PromptOutput) promptResp {
	return promptResp{
		Prompt:    out.Prompt,
		RiskLevel: string(out.RiskLevel),
	}
}
