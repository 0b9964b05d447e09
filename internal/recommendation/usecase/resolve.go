package usecase

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"hr-recommendation/internal/recommendation"
)

// arrayPattern spans from the first '[' to the last ']' across lines.
var arrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Extract pulls up to MaxRecommendations valid records out of free-form text.
// It also reports how many array elements were rejected. The error explains
// an empty result and is for diagnostics only.
func Extract(raw string) ([]recommendation.Recommendation, int, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, 0, recommendation.ErrEmptyResponse
	}

	span := arrayPattern.FindString(text)
	if span == "" {
		return nil, 0, recommendation.ErrNoArrayFound
	}

	var items []any
	if err := json.Unmarshal([]byte(span), &items); err != nil {
		return nil, 0, errors.Join(recommendation.ErrMalformedArray, err)
	}

	var (
		recs     []recommendation.Recommendation
		rejected int
	)
	for _, item := range items {
		rec, ok := Validate(item)
		if !ok {
			rejected++
			continue
		}
		recs = append(recs, rec)
	}

	if len(recs) == 0 {
		return nil, rejected, recommendation.ErrNoValidRecords
	}
	if len(recs) > recommendation.MaxRecommendations {
		recs = recs[:recommendation.MaxRecommendations]
	}
	return recs, rejected, nil
}

// Validate accepts a parsed element when it is an object whose icon, title,
// description and priority are all present and truthy. Values are not
// checked against the icon list or the priority names.
func Validate(item any) (recommendation.Recommendation, bool) {
	obj, ok := item.(map[string]any)
	if !ok {
		return recommendation.Recommendation{}, false
	}

	for _, field := range requiredFields {
		if !truthy(obj[field]) {
			return recommendation.Recommendation{}, false
		}
	}

	return recommendation.Recommendation{
		Icon:        stringify(obj["icon"]),
		Title:       stringify(obj["title"]),
		Description: stringify(obj["description"]),
		Priority:    stringify(obj["priority"]),
	}, true
}

// Resolve turns a generator result into the final recommendations. Provider
// records are used only when at least one survives validation; otherwise the
// whole answer comes from Fallback.
func Resolve(raw string, callErr error, m recommendation.EmployeeMetrics) recommendation.GenerateOutput {
	if callErr != nil {
		return fallbackOutput(m, recommendation.ReasonCallFailed, 0)
	}

	recs, rejected, err := Extract(raw)
	if err != nil {
		return fallbackOutput(m, reasonFor(err), rejected)
	}

	return recommendation.GenerateOutput{
		Recommendations: recs,
		Source:          recommendation.SourceLLM,
		RejectedRecords: rejected,
	}
}

func fallbackOutput(m recommendation.EmployeeMetrics, reason string, rejected int) recommendation.GenerateOutput {
	return recommendation.GenerateOutput{
		Recommendations: Fallback(m),
		Source:          recommendation.SourceFallback,
		FallbackReason:  reason,
		RejectedRecords: rejected,
	}
}

func reasonFor(err error) string {
	switch {
	case errors.Is(err, recommendation.ErrEmptyResponse):
		return recommendation.ReasonEmptyResponse
	case errors.Is(err, recommendation.ErrNoArrayFound):
		return recommendation.ReasonNoArray
	case errors.Is(err, recommendation.ErrMalformedArray):
		return recommendation.ReasonMalformedArray
	default:
		return recommendation.ReasonNoValidRecords
	}
}

// truthy follows JSON truthiness: null, "", false, 0, [] and {} are empty.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case bool:
		return t
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
