package broadcast

import (
	"context"
	"log/slog"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
)

// Publisher delivers a named event to every subscriber of a channel.
type Publisher interface {
	Publish(ctx context.Context, channel, event string, payload any) error
}

// Envelope is the message body published on the channel. Subscribers switch
// on Event and decode Data.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// RedisPublisher publishes envelopes with Redis PUBLISH.
type RedisPublisher struct {
	client redis.UniversalClient
}

func NewRedisPublisher(client redis.UniversalClient) *RedisPublisher {
	return &RedisPublisher{client: client}
}

func (p *RedisPublisher) Publish(ctx context.Context, channel, event string, payload any) error {
	data, err := sonic.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return errors.Wrapf(err, "encode %s event", event)
	}
	if err := p.client.Publish(ctx, channel, data).Err(); err != nil {
		return errors.Wrapf(err, "publish %s to %s", event, channel)
	}
	return nil
}

// LogPublisher stands in when no pub/sub transport is configured; it logs the
// event instead of delivering it.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, channel, event string, _ any) error {
	logging.Info(logging.FromContext(ctx, p.logger), "broadcast skipped, no pub/sub transport",
		logging.FieldChannel, channel,
		"event", event,
	)
	return nil
}
