package upstream

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/cockroachdb/errors"
	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
)

const (
	defaultName            = "espn"
	defaultMaxAttempts     = 3
	defaultBaseDelay       = time.Second
	defaultHTTPTimeout     = 10 * time.Second
	defaultBreakerCooldown = 30 * time.Second
)

// Config controls retry, timeout and circuit-breaking behavior for a Fetcher.
type Config struct {
	Name            string
	MaxAttempts     int
	BaseDelay       time.Duration
	HTTPTimeout     time.Duration
	BreakerFailures int
	BreakerCooldown time.Duration
	HTTPClient      *http.Client
	Logger          *slog.Logger
	Metrics         *metrics.Recorder
}

// Fetcher performs GET requests against the upstream API, retrying 429, 5xx
// and network failures with exponential backoff (base, 2x base, 4x base, ...).
// Other statuses are returned to the caller untouched.
type Fetcher struct {
	name        string
	client      httpDoer
	maxAttempts int
	baseDelay   time.Duration
	breaker     *gobreaker.CircuitBreaker
	logger      *slog.Logger
	metrics     *metrics.Recorder
	now         func() time.Time
}

// NewFetcher builds a Fetcher. Zero values fall back to defaults.
func NewFetcher(cfg Config) *Fetcher {
	name := cfg.Name
	if name == "" {
		name = defaultName
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	baseDelay := cfg.BaseDelay
	if baseDelay <= 0 {
		baseDelay = defaultBaseDelay
	}
	return &Fetcher{
		name:        name,
		client:      resolveHTTPClient(cfg.HTTPClient, cfg.HTTPTimeout),
		maxAttempts: maxAttempts,
		baseDelay:   baseDelay,
		breaker:     newBreaker(name, cfg.BreakerFailures, cfg.BreakerCooldown, cfg.Logger),
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
		now:         time.Now,
	}
}

// Fetch performs a GET with the configured attempt budget.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*http.Response, error) {
	return f.FetchWithAttempts(ctx, url, f.maxAttempts)
}

// FetchWithAttempts performs a GET allowing at most maxAttempts calls. The
// caller owns the returned body. Once the budget is spent the last failure is
// returned marked as domain.ErrUpstreamUnavailable.
func (f *Fetcher) FetchWithAttempts(ctx context.Context, url string, maxAttempts int) (*http.Response, error) {
	if maxAttempts <= 0 {
		maxAttempts = f.maxAttempts
	}
	if f.breaker == nil {
		return f.retry(ctx, url, maxAttempts)
	}

	out, err := f.breaker.Execute(func() (interface{}, error) {
		return f.retry(ctx, url, maxAttempts)
	})
	if err != nil {
		if breakerRejected(err) {
			logging.Warn(logging.FromContext(ctx, f.logger), "upstream circuit open",
				logging.FieldUpstream, f.name,
				logging.FieldURL, url,
			)
			return nil, errors.Mark(errors.Wrapf(err, "%s: request to %s rejected", f.name, url), domain.ErrUpstreamUnavailable)
		}
		return nil, err
	}
	return out.(*http.Response), nil
}

func (f *Fetcher) retry(ctx context.Context, url string, maxAttempts int) (*http.Response, error) {
	logger := logging.FromContext(ctx, f.logger)
	attempt := 0

	operation := func() (*http.Response, error) {
		attempt++
		start := f.now()
		resp, err := f.do(ctx, url)
		if err != nil {
			f.metrics.RecordUpstreamAttempt(f.name, f.now().Sub(start), err)
			if ctx.Err() != nil {
				return nil, backoff.Permanent(ctx.Err())
			}
			return nil, err
		}

		if success(resp.StatusCode) || !retryable(resp.StatusCode) {
			f.metrics.RecordUpstreamAttempt(f.name, f.now().Sub(start), nil)
			return resp, nil
		}

		statusErr := f.statusFailure(resp, url)
		discard(resp)
		f.metrics.RecordUpstreamAttempt(f.name, f.now().Sub(start), statusErr)
		return nil, statusErr
	}

	notify := func(err error, wait time.Duration) {
		logging.Warn(logger, "upstream fetch retry",
			logging.FieldUpstream, f.name,
			logging.FieldURL, url,
			logging.FieldAttempt, attempt,
			"max_attempts", maxAttempts,
			"wait", wait.String(),
			"err", err,
		)
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(f.newBackOff(), uint64(maxAttempts-1)), ctx)
	resp, err := backoff.RetryNotifyWithData(operation, policy, notify)
	if err == nil {
		return resp, nil
	}

	if ctx.Err() != nil {
		return nil, errors.Wrapf(ctx.Err(), "%s: fetch %s canceled after %d attempts", f.name, url, attempt)
	}
	logging.Warn(logger, "upstream fetch failed",
		logging.FieldUpstream, f.name,
		logging.FieldURL, url,
		"attempts", attempt,
		"err", err,
	)
	return nil, errors.Mark(
		errors.Wrapf(err, "%s: fetch %s failed after %d attempts", f.name, url, attempt),
		domain.ErrUpstreamUnavailable,
	)
}

// newBackOff yields base, 2*base, 4*base, ... with no jitter.
func (f *Fetcher) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = f.baseDelay
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = time.Duration(math.MaxInt64)
	b.MaxElapsedTime = 0
	return b
}

func (f *Fetcher) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, backoff.Permanent(errors.Wrapf(err, "%s: build request", f.name))
	}
	req.Header.Set("Accept", "application/json")
	return f.client.Do(req)
}

func (f *Fetcher) statusFailure(resp *http.Response, url string) error {
	if resp.StatusCode != http.StatusTooManyRequests {
		return &StatusError{Upstream: f.name, URL: url, StatusCode: resp.StatusCode}
	}
	retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"), f.now())
	f.metrics.RecordRateLimit(f.name, retryAfter)
	return &RateLimitError{
		Upstream:   f.name,
		StatusCode: resp.StatusCode,
		RetryAfter: retryAfter,
	}
}
