package llmprovider_test

import (
	"context"
	"testing"
	"time"

	"hr-recommendation/config"
	"hr-recommendation/pkg/llmprovider"
	"hr-recommendation/pkg/log"
)

// TestIntegration_ConfigToManagerFlow verifies that provider initialization
// from config and the manager work together.
func TestIntegration_ConfigToManagerFlow(t *testing.T) {
	cfg := &config.LLMConfig{
		Providers: []config.ProviderConfig{
			{Name: "qwen", Enabled: true, Priority: 1, APIKey: "test-qwen-key", Model: "qwen-plus", Timeout: "30s"},
			{Name: "gemini", Enabled: true, Priority: 2, APIKey: "test-gemini-key", Model: "gemini-2.5-flash", Timeout: "30s"},
			{Name: "deepseek", Enabled: false, Priority: 3, APIKey: "test-deepseek-key", Model: "deepseek-chat"},
		},
		RetryAttempts: 1,
		RetryDelay:    "1s",
	}

	providers, err := llmprovider.InitializeProviders(context.Background(), cfg)
	if err != nil {
		t.Fatalf("Failed to initialize providers: %v", err)
	}

	if len(providers) != 2 {
		t.Fatalf("Expected 2 providers, got %d", len(providers))
	}
	if providers[0].Name() != "qwen" {
		t.Errorf("Expected first provider to be qwen, got %s", providers[0].Name())
	}
	if providers[0].Model() != "qwen-plus" {
		t.Errorf("Expected qwen-plus model, got %s", providers[0].Model())
	}
	if providers[1].Name() != "gemini" {
		t.Errorf("Expected second provider to be gemini, got %s", providers[1].Name())
	}

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	logger := log.Init(log.ZapConfig{Level: "info", Mode: log.ModeDebug, Encoding: log.EncodingConsole})
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
	}, logger)

	if len(manager.Providers()) != 2 {
		t.Errorf("Expected manager to hold 2 providers, got %d", len(manager.Providers()))
	}
}

func TestIntegration_InitializeProviders(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.LLMConfig
		wantErr bool
	}{
		{
			name: "valid deepseek",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k", Model: "deepseek-chat"},
			}},
		},
		{
			name: "valid gemini-sdk",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini-sdk", Enabled: true, Priority: 1, APIKey: "k", Model: "gemini-2.5-flash"},
			}},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "qwen", Enabled: false, Priority: 1, APIKey: "k", Model: "qwen-plus"},
			}},
			wantErr: true,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			}},
			wantErr: true,
		},
		{
			name: "missing model",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "deepseek", Enabled: true, Priority: 1, APIKey: "k"},
			}},
			wantErr: true,
		},
		{
			name: "unknown provider",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "llama", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
			}},
			wantErr: true,
		},
		{
			name: "one bad provider is skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "llama", Enabled: true, Priority: 1, APIKey: "k", Model: "m"},
				{Name: "deepseek", Enabled: true, Priority: 2, APIKey: "k", Model: "deepseek-chat"},
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmprovider.InitializeProviders(context.Background(), tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Errorf("InitializeProviders() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
