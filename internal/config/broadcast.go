package config

// BroadcastConfig controls score broadcasting and the trigger endpoint.
type BroadcastConfig struct {
	CronSecret   string // bearer token for the trigger endpoint; empty rejects every call
	Channel      string `validate:"required"`
	Event        string `validate:"required"`
	PollEnabled  bool
	PollInterval Duration `validate:"gt=0"`
}

// SchedulerConfig controls background jobs.
type SchedulerConfig struct {
	IndexRefreshCron string // empty disables the nightly index refresh
}

func loadBroadcast() BroadcastConfig {
	return BroadcastConfig{
		CronSecret:   envOrDefault(envCronSecret, ""),
		Channel:      envOrDefault(envChannel, defaultChannel),
		Event:        envOrDefault(envEvent, defaultEvent),
		PollEnabled:  boolEnvOrDefault(envPollEnabled, false),
		PollInterval: durationEnvOrDefault(envPollInterval, defaultPollInterval),
	}
}

func loadScheduler() SchedulerConfig {
	return SchedulerConfig{
		IndexRefreshCron: stringEnvOrDefault(envIndexRefreshCron, defaultIndexRefreshCron),
	}
}
