package config

import (
	"strings"
	"testing"
)

func TestValidateLLMConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     LLMConfig
		wantErr string
	}{
		{
			name: "valid",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
				{Name: "deepseek", Enabled: true, Priority: 2, Model: "deepseek-chat"},
			}},
		},
		{
			name:    "no providers",
			cfg:     LLMConfig{},
			wantErr: "no LLM providers configured",
		},
		{
			name: "missing name",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: "name is required",
		},
		{
			name: "missing model",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1},
			}},
			wantErr: "model is required",
		},
		{
			name: "non positive priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 0, Model: "m"},
			}},
			wantErr: "priority must be positive",
		},
		{
			name: "duplicate priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
				{Name: "qwen", Enabled: true, Priority: 1, Model: "m"},
			}},
			wantErr: "duplicate priority",
		},
		{
			name: "disabled providers ignore priority",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m"},
				{Name: "qwen", Enabled: false, Priority: 1, Model: "m"},
			}},
		},
		{
			name: "all disabled",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: false, Priority: 1, Model: "m"},
			}},
			wantErr: "no enabled LLM providers",
		},
		{
			name: "unknown auth",
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "m", Auth: "basic"},
			}},
			wantErr: "unknown auth mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateLLMConfig(&tt.cfg)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestApplyGeminiKey(t *testing.T) {
	t.Run("adds default provider", func(t *testing.T) {
		got := applyGeminiKey(nil, "k")
		if len(got) != 1 || got[0].Name != ProviderGemini || got[0].APIKey != "k" || !got[0].Enabled {
			t.Fatalf("unexpected providers: %+v", got)
		}
	})

	t.Run("fills empty gemini keys only", func(t *testing.T) {
		in := []ProviderConfig{
			{Name: ProviderGemini},
			{Name: ProviderGeminiSDK, APIKey: "own"},
			{Name: ProviderGemini, Auth: AuthGoogle},
			{Name: ProviderDeepSeek},
		}
		got := applyGeminiKey(in, "k")
		if got[0].APIKey != "k" {
			t.Errorf("gemini key = %q, want k", got[0].APIKey)
		}
		if got[1].APIKey != "own" {
			t.Errorf("explicit key overwritten: %q", got[1].APIKey)
		}
		if got[2].APIKey != "" {
			t.Errorf("google auth provider got a key: %q", got[2].APIKey)
		}
		if got[3].APIKey != "" {
			t.Errorf("deepseek got a gemini key: %q", got[3].APIKey)
		}
	})

	t.Run("no key is a no-op", func(t *testing.T) {
		if got := applyGeminiKey(nil, ""); got != nil {
			t.Fatalf("expected nil, got %+v", got)
		}
	})
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("HRREC_TEST_KEY", "secret")

	if got := expandEnvVar("${HRREC_TEST_KEY}"); got != "secret" {
		t.Errorf("got %q, want secret", got)
	}
	if got := expandEnvVar("plain"); got != "plain" {
		t.Errorf("got %q, want plain", got)
	}
	if got := expandEnvVar("${HRREC_TEST_UNSET_KEY}"); got != "" {
		t.Errorf("unset variable should expand to empty, got %q", got)
	}
}

func TestLoadProviders(t *testing.T) {
	raw := []interface{}{
		map[string]interface{}{
			"name": "gemini", "enabled": true, "priority": 1,
			"api_key": "k", "model": "gemini-2.5-flash", "timeout": "30s",
			"auth": "google", "credentials_file": "/tmp/sa.json",
		},
		"not a map",
		map[string]interface{}{"name": "qwen", "priority": float64(2), "model": "qwen-plus"},
	}

	got := loadProviders(raw)
	if len(got) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(got))
	}
	if got[0].Auth != AuthGoogle || got[0].CredentialsFile != "/tmp/sa.json" || got[0].Priority != 1 {
		t.Errorf("unexpected first provider: %+v", got[0])
	}
	if got[1].Priority != 2 || got[1].Enabled {
		t.Errorf("unexpected second provider: %+v", got[1])
	}
}
