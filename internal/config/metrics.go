package config

const defaultServiceName = "nba-dashboard-service"

// MetricsConfig controls telemetry export: a Prometheus scrape port and an
// optional OTLP push endpoint (host:port).
type MetricsConfig struct {
	Enabled      bool
	Port         string `validate:"omitempty,numeric"`
	OtlpEndpoint string `validate:"omitempty,hostname_port"`
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
