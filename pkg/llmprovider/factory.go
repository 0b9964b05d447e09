package llmprovider

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"hr-recommendation/config"
	"hr-recommendation/pkg/deepseek"
	"hr-recommendation/pkg/gauth"
	"hr-recommendation/pkg/gemini"
	"hr-recommendation/pkg/geminisdk"
	"hr-recommendation/pkg/log"
)

// InitializeProviders creates Provider instances from config.LLMConfig
// Returns providers sorted by priority (ascending) with disabled providers filtered out
// Skips providers that fail to initialize instead of failing the entire service
func InitializeProviders(ctx context.Context, cfg *config.LLMConfig) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("LLM config is nil")
	}

	if len(cfg.Providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	if len(enabledProviders) == 0 {
		return nil, ErrNoProvidersConfigured
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	var providers []Provider
	var initErrors []string

	for _, p := range enabledProviders {
		provider, err := createProvider(ctx, p)
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("%s (priority %d): %v", p.Name, p.Priority, err))
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		return nil, fmt.Errorf("no providers successfully initialized: %s", strings.Join(initErrors, "; "))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config
func createProvider(ctx context.Context, cfg config.ProviderConfig) (Provider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("provider %s: model is required", cfg.Name)
	}

	timeout := parseTimeout(cfg.Timeout)

	switch cfg.Name {
	case config.ProviderGemini:
		if cfg.Auth == config.AuthGoogle {
			httpClient, err := gauth.NewHTTPClient(ctx, cfg.CredentialsFile)
			if err != nil {
				return nil, fmt.Errorf("failed to create google credentials: %w", err)
			}
			httpClient.Timeout = timeout
			client, err := gemini.New(gemini.Config{
				Model:      cfg.Model,
				APIURL:     cfg.BaseURL,
				HTTPClient: httpClient,
				OAuth:      true,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to create gemini client: %w", err)
			}
			return NewGeminiAdapter(client), nil
		}

		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		client, err := gemini.New(gemini.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			APIURL:     cfg.BaseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		return NewGeminiAdapter(client), nil

	case config.ProviderGeminiSDK:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		client, err := geminisdk.New(ctx, geminisdk.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    cfg.BaseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini sdk client: %w", err)
		}
		return NewGeminiSDKAdapter(client), nil

	case config.ProviderDeepSeek, config.ProviderQwen:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
		}
		baseURL := cfg.BaseURL
		if baseURL == "" && cfg.Name == config.ProviderQwen {
			baseURL = deepseek.QwenBaseURL
		}
		client, err := deepseek.New(deepseek.Config{
			APIKey:     cfg.APIKey,
			Model:      cfg.Model,
			BaseURL:    baseURL,
			HTTPClient: &http.Client{Timeout: timeout},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
		}
		return NewDeepSeekAdapter(client, cfg.Name), nil

	default:
		return nil, fmt.Errorf("unknown provider: %s", cfg.Name)
	}
}

func parseTimeout(raw string) time.Duration {
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	return gemini.DefaultTimeout
}

// NewManagerFromConfig initializes providers and wraps them in a Manager
// configured from cfg. onAttempt may be nil.
func NewManagerFromConfig(ctx context.Context, cfg *config.LLMConfig, logger log.Logger, onAttempt func(provider, model string, elapsed time.Duration, err error)) (*Manager, error) {
	providers, err := InitializeProviders(ctx, cfg)
	if err != nil {
		return nil, err
	}

	retryDelay, _ := time.ParseDuration(cfg.RetryDelay)
	maxTotal, _ := time.ParseDuration(cfg.MaxTotalTimeout)

	return NewManager(providers, &Config{
		FallbackEnabled: cfg.FallbackEnabled,
		RetryAttempts:   cfg.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: maxTotal,
		OnAttempt:       onAttempt,
	}, logger), nil
}
