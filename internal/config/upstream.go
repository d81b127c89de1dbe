package config

// UpstreamConfig controls how we reach the ESPN API and how hard we retry it.
type UpstreamConfig struct {
	SiteBaseURL      string   `validate:"required,url"`
	CommonBaseURL    string   `validate:"required,url"`
	StandingsBaseURL string   `validate:"required,url"`
	MaxAttempts      int      `validate:"min=1,max=10"`
	BaseDelay        Duration `validate:"gt=0"`
	HTTPTimeout      Duration `validate:"gt=0"`
	BreakerFailures  int      `validate:"gte=0"` // 0 disables the circuit breaker
	BreakerCooldown  Duration
	TeamCount        int  `validate:"min=1,max=64"`
	TeamDiscovery    bool // read team ids from the teams listing instead of 1..TeamCount
	FanOutLimit      int  `validate:"gte=0"` // 0 means one goroutine per team
}

func loadUpstream() UpstreamConfig {
	return UpstreamConfig{
		SiteBaseURL:      envOrDefault(envSiteBaseURL, defaultSiteBaseURL),
		CommonBaseURL:    envOrDefault(envCommonBaseURL, defaultCommonBaseURL),
		StandingsBaseURL: envOrDefault(envStandingsBaseURL, defaultStandingsBaseURL),
		MaxAttempts:      intEnvOrDefault(envMaxAttempts, defaultMaxAttempts),
		BaseDelay:        durationEnvOrDefault(envBaseDelay, defaultBaseDelay),
		HTTPTimeout:      durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		BreakerFailures:  intEnvOrDefault(envBreakerFailures, defaultBreakerFailures),
		BreakerCooldown:  durationEnvOrDefault(envBreakerCooldown, defaultBreakerCooldown),
		TeamCount:        intEnvOrDefault(envTeamCount, defaultTeamCount),
		TeamDiscovery:    boolEnvOrDefault(envTeamDiscovery, false),
		FanOutLimit:      intEnvOrDefault(envFanOutLimit, 0),
	}
}
