package usecase

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-recommendation/internal/recommendation"
)

func record(i int) string {
	return fmt.Sprintf(`{"icon":"fas fa-star","title":"T%d","description":"D%d","priority":"low"}`, i, i)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name         string
		raw          string
		wantTitles   []string
		wantRejected int
		wantErr      error
	}{
		{
			name:       "array embedded in prose",
			raw:        "Here you go:\n[{\"icon\":\"fas fa-star\",\"title\":\"T\",\"description\":\"D\",\"priority\":\"low\"}]\nThanks",
			wantTitles: []string{"T"},
		},
		{
			name:       "markdown fence",
			raw:        "```json\n[" + record(1) + ",\n" + record(2) + "]\n```",
			wantTitles: []string{"T1", "T2"},
		},
		{
			name:       "truncates to four",
			raw:        "[" + strings.Join([]string{record(1), record(2), record(3), record(4), record(5), record(6)}, ",") + "]",
			wantTitles: []string{"T1", "T2", "T3", "T4"},
		},
		{
			name:         "drops invalid records",
			raw:          `[{"icon":"x"},` + record(1) + `,"text",7,{"icon":"i","title":"t","description":"d","priority":""}]`,
			wantTitles:   []string{"T1"},
			wantRejected: 4,
		},
		{
			name:         "missing required fields",
			raw:          `[{"icon":"x"}]`,
			wantRejected: 1,
			wantErr:      recommendation.ErrNoValidRecords,
		},
		{
			name:    "empty array",
			raw:     "[]",
			wantErr: recommendation.ErrNoValidRecords,
		},
		{
			name:    "no array",
			raw:     "I cannot help with that.",
			wantErr: recommendation.ErrNoArrayFound,
		},
		{
			name:    "blank",
			raw:     "  \n\t",
			wantErr: recommendation.ErrEmptyResponse,
		},
		{
			name:    "greedy span joins two arrays",
			raw:     "[" + record(1) + "] and also [" + record(2) + "]",
			wantErr: recommendation.ErrMalformedArray,
		},
		{
			name:    "truncated json",
			raw:     `[{"icon":"fas fa-star","title":"T"]`,
			wantErr: recommendation.ErrMalformedArray,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recs, rejected, err := Extract(tt.raw)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, recs)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantTitles, titles(recs))
			}
			assert.Equal(t, tt.wantRejected, rejected)
		})
	}
}

func TestValidate(t *testing.T) {
	full := func(override map[string]any) map[string]any {
		m := map[string]any{"icon": "fas fa-star", "title": "T", "description": "D", "priority": "low"}
		for k, v := range override {
			if v == nil {
				delete(m, k)
				continue
			}
			m[k] = v
		}
		return m
	}

	tests := []struct {
		name string
		item any
		want bool
	}{
		{"complete", full(nil), true},
		{"unknown icon and priority accepted", full(map[string]any{"icon": "fa-rocket", "priority": "urgent"}), true},
		{"missing title", full(map[string]any{"title": nil}), false},
		{"explicit null", map[string]any{"icon": nil, "title": "T", "description": "D", "priority": "low"}, false},
		{"empty string", full(map[string]any{"description": ""}), false},
		{"false", full(map[string]any{"priority": false}), false},
		{"zero", full(map[string]any{"priority": float64(0)}), false},
		{"empty list", full(map[string]any{"icon": []any{}}), false},
		{"empty object", full(map[string]any{"icon": map[string]any{}}), false},
		{"not an object", "icon title description priority", false},
		{"number", float64(3), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Validate(tt.item)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestValidate_StringifiesTruthyValues(t *testing.T) {
	rec, ok := Validate(map[string]any{
		"icon":        "fas fa-star",
		"title":       float64(42),
		"description": []any{"a", "b"},
		"priority":    true,
	})

	require.True(t, ok)
	assert.Equal(t, "42", rec.Title)
	assert.Equal(t, `["a","b"]`, rec.Description)
	assert.Equal(t, "true", rec.Priority)
}

func TestResolve(t *testing.T) {
	m := metrics(68, 78, 9.2)
	fallback := Fallback(m)

	t.Run("valid reply is returned unmodified", func(t *testing.T) {
		raw := "Here you go:\n[{\"icon\":\"fas fa-star\",\"title\":\"T\",\"description\":\"D\",\"priority\":\"low\"}]\nThanks"

		out := Resolve(raw, nil, m)

		assert.Equal(t, recommendation.SourceLLM, out.Source)
		assert.Empty(t, out.FallbackReason)
		assert.Equal(t, []recommendation.Recommendation{
			{Icon: "fas fa-star", Title: "T", Description: "D", Priority: "low"},
		}, out.Recommendations)
	})

	t.Run("partial validity keeps only provider records", func(t *testing.T) {
		out := Resolve(`[{"icon":"x"},`+record(1)+`]`, nil, m)

		assert.Equal(t, recommendation.SourceLLM, out.Source)
		assert.Equal(t, []string{"T1"}, titles(out.Recommendations))
		assert.Equal(t, 1, out.RejectedRecords)
	})

	tests := []struct {
		name       string
		raw        string
		callErr    error
		wantReason string
	}{
		{"call failure", "", errors.New("quota exceeded"), recommendation.ReasonCallFailed},
		{"call failure ignores text", "[" + record(1) + "]", errors.New("timeout"), recommendation.ReasonCallFailed},
		{"empty text", "", nil, recommendation.ReasonEmptyResponse},
		{"no array", "sorry", nil, recommendation.ReasonNoArray},
		{"malformed", "[{]", nil, recommendation.ReasonMalformedArray},
		{"no valid records", `[{"icon":"x"}]`, nil, recommendation.ReasonNoValidRecords},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Resolve(tt.raw, tt.callErr, m)

			assert.Equal(t, recommendation.SourceFallback, out.Source)
			assert.Equal(t, tt.wantReason, out.FallbackReason)
			assert.Equal(t, fallback, out.Recommendations)
		})
	}
}
