package httpserver

import "time"

const (
	EnvironmentProduction = "production"

	defaultShutdownTimeout = 10 * time.Second
	defaultMetricsPath     = "/metrics"
)
