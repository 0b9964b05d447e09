package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"hr-recommendation/config"
	"hr-recommendation/internal/recommendation"
)

// metricFlags holds the employee flags shared by every command.
type metricFlags struct {
	name        string
	designation string
	clusterType string
	efficiency  float64
	attendance  float64
	bayHours    float64
}

func (f *metricFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "employee name")
	fs.StringVar(&f.designation, "designation", "", "employee designation")
	fs.StringVar(&f.clusterType, "cluster-type", "", "behavioural cluster label")
	fs.Float64Var(&f.efficiency, "efficiency", 0, "efficiency percentage")
	fs.Float64Var(&f.attendance, "attendance", 0, "attendance percentage")
	fs.Float64Var(&f.bayHours, "bay-hours", 0, "average hours per day in the office")
}

// metrics builds EmployeeMetrics, leaving unset flags absent so each
// component applies its own default.
func (f *metricFlags) metrics(cmd *cobra.Command) recommendation.EmployeeMetrics {
	var m recommendation.EmployeeMetrics
	fs := cmd.Flags()

	if fs.Changed("name") {
		m.Name = recommendation.String(f.name)
	}
	if fs.Changed("designation") {
		m.Designation = recommendation.String(f.designation)
	}
	if fs.Changed("cluster-type") {
		m.ClusterType = recommendation.String(f.clusterType)
	}
	if fs.Changed("efficiency") {
		m.Efficiency = recommendation.Float64(f.efficiency)
	}
	if fs.Changed("attendance") {
		m.Attendance = recommendation.Float64(f.attendance)
	}
	if fs.Changed("bay-hours") {
		m.BayHours = recommendation.Float64(f.bayHours)
	}
	return m
}

// providerFlags selects and authenticates a single LLM provider.
type providerFlags struct {
	provider string
	apiKey   string
	model    string
	baseURL  string
	timeout  string
	auth     string
	credFile string
}

func (f *providerFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.provider, "provider", config.ProviderGemini, "LLM provider (gemini, gemini-sdk, deepseek, qwen)")
	fs.StringVar(&f.apiKey, "api-key", "", "provider API key (default from GEMINI_API_KEY, DEEPSEEK_API_KEY or QWEN_API_KEY)")
	fs.StringVar(&f.model, "model", "", "model name (provider default when empty)")
	fs.StringVar(&f.baseURL, "base-url", "", "override the provider endpoint")
	fs.StringVar(&f.timeout, "timeout", "30s", "provider call timeout")
	fs.StringVar(&f.auth, "auth", config.AuthAPIKey, "gemini auth mode (api_key, google)")
	fs.StringVar(&f.credFile, "credentials-file", "", "service account JSON for --auth google (default: application default credentials)")
}

var envKeys = map[string]string{
	config.ProviderGemini:    "GEMINI_API_KEY",
	config.ProviderGeminiSDK: "GEMINI_API_KEY",
	config.ProviderDeepSeek:  "DEEPSEEK_API_KEY",
	config.ProviderQwen:      "QWEN_API_KEY",
}

var defaultModels = map[string]string{
	config.ProviderGemini:    "gemini-2.5-flash",
	config.ProviderGeminiSDK: "gemini-2.5-flash",
	config.ProviderDeepSeek:  "deepseek-chat",
	config.ProviderQwen:      "qwen-plus",
}

// llmConfig returns the provider config, or false when no credentials are
// available and the rule engine should answer alone.
func (f *providerFlags) llmConfig() (*config.LLMConfig, bool) {
	key := f.apiKey
	if key == "" {
		key = os.Getenv(envKeys[f.provider])
	}
	if key == "" && f.auth != config.AuthGoogle {
		return nil, false
	}

	model := f.model
	if model == "" {
		model = defaultModels[f.provider]
	}

	return &config.LLMConfig{
		Providers: []config.ProviderConfig{{
			Name:            f.provider,
			Enabled:         true,
			Priority:        1,
			APIKey:          key,
			BaseURL:         f.baseURL,
			Model:           model,
			Timeout:         f.timeout,
			Auth:            f.auth,
			CredentialsFile: f.credFile,
		}},
		RetryAttempts: 1,
	}, true
}
