package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type mockProvider struct {
	name      string
	model     string
	err       error
	text      string
	callCount int
}

func (m *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	m.callCount++
	if m.err != nil {
		return nil, m.err
	}
	return &Response{
		Content:      Message{Role: "assistant", Parts: []Part{{Text: m.text}}},
		ProviderName: m.name,
		ModelName:    m.model,
		Usage:        &Usage{InputTokens: 10, OutputTokens: 5, TotalTokens: 15},
	}, nil
}

func (m *mockProvider) Name() string  { return m.name }
func (m *mockProvider) Model() string { return m.model }

// mockLogger records the first argument of Info and Warn calls.
type mockLogger struct {
	mu           sync.Mutex
	infoMessages []string
	warnMessages []string
}

func (m *mockLogger) record(dst *[]string, arg []any) {
	if len(arg) == 0 {
		return
	}
	if msg, ok := arg[0].(string); ok {
		m.mu.Lock()
		*dst = append(*dst, msg)
		m.mu.Unlock()
	}
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    { m.record(&m.infoMessages, arg) }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    { m.record(&m.warnMessages, arg) }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                  {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

var errMock = errors.New("mock provider error")

func TestGenerateContent(t *testing.T) {
	tests := []struct {
		name          string
		primaryErr    error
		secondaryErr  error
		cfg           Config
		wantErr       error
		wantProvider  string
		wantPrimary   int
		wantSecondary int
		wantWarns     int
	}{
		{
			name:         "primary succeeds",
			cfg:          Config{FallbackEnabled: true, RetryAttempts: 3},
			wantProvider: "primary",
			wantPrimary:  1,
		},
		{
			name:          "fallback to secondary",
			primaryErr:    errMock,
			cfg:           Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantProvider:  "secondary",
			wantPrimary:   2,
			wantSecondary: 1,
			wantWarns:     1,
		},
		{
			name:          "all providers fail",
			primaryErr:    errMock,
			secondaryErr:  errMock,
			cfg:           Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			wantErr:       ErrAllProvidersFailed,
			wantPrimary:   2,
			wantSecondary: 2,
			wantWarns:     2,
		},
		{
			name:        "no fallback when disabled",
			primaryErr:  errMock,
			cfg:         Config{FallbackEnabled: false, RetryAttempts: 1},
			wantErr:     ErrAllProvidersFailed,
			wantPrimary: 1,
			wantWarns:   1,
		},
		{
			name:        "zero retry attempts means one call",
			primaryErr:  errMock,
			cfg:         Config{},
			wantErr:     ErrAllProvidersFailed,
			wantPrimary: 1,
			wantWarns:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &mockProvider{name: "primary", model: "p-model", err: tt.primaryErr, text: "from primary"}
			secondary := &mockProvider{name: "secondary", model: "s-model", err: tt.secondaryErr, text: "from secondary"}
			logger := &mockLogger{}
			cfg := tt.cfg

			m := NewManager([]Provider{primary, secondary}, &cfg, logger)
			resp, err := m.GenerateContent(context.Background(), UserPrompt("Hello"))

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if resp != nil {
					t.Errorf("expected nil response, got %+v", resp)
				}
			} else {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if resp.ProviderName != tt.wantProvider {
					t.Errorf("expected provider %s, got %s", tt.wantProvider, resp.ProviderName)
				}
				if len(logger.infoMessages) != 1 {
					t.Errorf("expected 1 info message, got %d", len(logger.infoMessages))
				}
			}

			if primary.callCount != tt.wantPrimary {
				t.Errorf("primary calls = %d, want %d", primary.callCount, tt.wantPrimary)
			}
			if secondary.callCount != tt.wantSecondary {
				t.Errorf("secondary calls = %d, want %d", secondary.callCount, tt.wantSecondary)
			}
			if len(logger.warnMessages) != tt.wantWarns {
				t.Errorf("warn messages = %d, want %d", len(logger.warnMessages), tt.wantWarns)
			}
		})
	}
}

func TestGenerateContent_NoProvidersConfigured(t *testing.T) {
	m := NewManager(nil, &Config{FallbackEnabled: true}, &mockLogger{})

	resp, err := m.GenerateContent(context.Background(), UserPrompt("Hello"))
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Fatalf("expected ErrNoProvidersConfigured, got %v", err)
	}
	if resp != nil {
		t.Errorf("expected nil response, got %+v", resp)
	}
}

func TestGenerateContent_OnAttempt(t *testing.T) {
	type attempt struct {
		provider string
		failed   bool
	}
	var got []attempt

	primary := &mockProvider{name: "primary", model: "p", err: errMock}
	secondary := &mockProvider{name: "secondary", model: "s", text: "ok"}
	cfg := &Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		OnAttempt: func(provider, model string, elapsed time.Duration, err error) {
			got = append(got, attempt{provider: provider, failed: err != nil})
		},
	}

	m := NewManager([]Provider{primary, secondary}, cfg, &mockLogger{})
	if _, err := m.GenerateContent(context.Background(), UserPrompt("Hello")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []attempt{{"primary", true}, {"secondary", false}}
	if len(got) != len(want) {
		t.Fatalf("expected %d attempts, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("attempt %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestGenerateContent_GlobalTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	primary := &mockProvider{name: "primary", model: "p", text: "ok"}
	m := NewManager([]Provider{primary}, &Config{MaxTotalTimeout: time.Second}, &mockLogger{})

	if _, err := m.GenerateContent(ctx, UserPrompt("Hello")); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if primary.callCount != 0 {
		t.Errorf("expected no provider call, got %d", primary.callCount)
	}
}

func TestTextGenerator_Generate(t *testing.T) {
	tests := []struct {
		name     string
		provider *mockProvider
		want     string
		wantErr  error
	}{
		{
			name:     "returns reply text",
			provider: &mockProvider{name: "p", model: "m", text: `[{"icon":"fas fa-star"}]`},
			want:     `[{"icon":"fas fa-star"}]`,
		},
		{
			name:     "blank reply",
			provider: &mockProvider{name: "p", model: "m", text: "  \n"},
			wantErr:  ErrEmptyResponse,
		},
		{
			name:     "provider failure",
			provider: &mockProvider{name: "p", model: "m", err: errMock},
			wantErr:  ErrAllProvidersFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewTextGenerator(NewManager([]Provider{tt.provider}, &Config{}, &mockLogger{}), 0.7, 1000)

			got, err := gen.Generate(context.Background(), "prompt")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResponse_Text(t *testing.T) {
	var nilResp *Response
	if nilResp.Text() != "" {
		t.Error("nil response should have empty text")
	}

	resp := &Response{Content: Message{Parts: []Part{{Text: "a"}, {Text: "b"}}}}
	if resp.Text() != "ab" {
		t.Errorf("got %q, want %q", resp.Text(), "ab")
	}
}
