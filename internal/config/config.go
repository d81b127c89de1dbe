package config

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds runtime configuration for the server.
type Config struct {
	Port string `validate:"required,numeric"`
	// CORSOrigins lists browser origins allowed to call the API.
	CORSOrigins []string        `validate:"min=1"`
	Upstream    UpstreamConfig  `validate:"required"`
	Cache       CacheConfig     `validate:"required"`
	Broadcast   BroadcastConfig `validate:"required"`
	Scheduler   SchedulerConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, []string{"*"}),
		Upstream:    loadUpstream(),
		Cache:       loadCache(),
		Broadcast:   loadBroadcast(),
		Scheduler:   loadScheduler(),
		Metrics:     loadMetrics(),
	}
}

// Validate checks field constraints; a failing config should abort startup.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}
	return nil
}
