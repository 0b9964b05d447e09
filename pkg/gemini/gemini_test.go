package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hr-recommendation/pkg/gemini"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		cfg := gemini.Config{}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})

	t.Run("oauth without client", func(t *testing.T) {
		cfg := gemini.Config{OAuth: true}
		if err := cfg.Validate(); err == nil {
			t.Fatal("expected error for OAuth without HTTP client")
		}
	})

	t.Run("defaults", func(t *testing.T) {
		cfg := gemini.Config{APIKey: "k"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != gemini.DefaultModel {
			t.Errorf("expected default model, got %s", cfg.Model)
		}
		if cfg.APIURL != gemini.DefaultAPIURL {
			t.Errorf("expected default API URL, got %s", cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		var req struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
			GenerationConfig *struct {
				Temperature float64 `json:"temperature"`
			} `json:"generationConfig"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "[{\"icon\":" },
							{ "text": "\"fas fa-star\"}]" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 120, "candidatesTokenCount": 30, "totalTokenCount": 150}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages:    []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}}},
			Temperature: 0.7,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Text(); got != `[{"icon":"fas fa-star"}]` {
			t.Errorf("unexpected text: %s", got)
		}
		if resp.FinishReason != "STOP" {
			t.Errorf("unexpected finish reason: %s", resp.FinishReason)
		}
		if resp.Usage.TotalTokens != 150 {
			t.Errorf("expected 150 total tokens, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatal("expected error from 500 response")
		}
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected APIError with status 500, got %v", err)
		}
	})

	t.Run("Model", func(t *testing.T) {
		if client.Model() != gemini.DefaultModel {
			t.Errorf("unexpected model %s", client.Model())
		}
	})
}

func TestGenerateContent_OAuthOmitsKey(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Has("key") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{OAuth: true, HTTPClient: ts.Client(), APIURL: ts.URL, APIKey: "ignored"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := client.GenerateContent(context.Background(), &gemini.Request{
		Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text() != "" {
		t.Errorf("expected empty text for no candidates, got %q", resp.Text())
	}
}
