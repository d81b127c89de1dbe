package upstream

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sony/gobreaker"

	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

// newBreaker returns nil when failures is zero, which disables the breaker.
// A whole retry sequence counts as one breaker request.
func newBreaker(name string, failures int, cooldown time.Duration, logger *slog.Logger) *gobreaker.CircuitBreaker {
	if failures <= 0 {
		return nil
	}
	if cooldown <= 0 {
		cooldown = defaultBreakerCooldown
	}
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		IsSuccessful: func(err error) bool {
			// A caller walking away says nothing about upstream health.
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn(logger, "upstream circuit state changed",
				logging.FieldUpstream, name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})
}

func breakerRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
