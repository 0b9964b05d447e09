package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // "production" or "debug"
	Encoding     string // "console" or "json"
	ColorEnabled bool

	// Optional rotated file sink. Empty FilePath logs to stdout only.
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type ctxKey struct{}
