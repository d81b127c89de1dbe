package broadcast

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/logging"
	"github.com/preston-bernstein/nba-dashboard-service/internal/metrics"
)

const (
	DefaultChannel = "nba-scores"
	DefaultEvent   = "score-update"

	// TimestampLayout is ISO-8601 in UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

type gamesSource interface {
	Today(ctx context.Context) ([]games.Snapshot, error)
}

// Result describes one completed broadcast.
type Result struct {
	GamesCount int
	Timestamp  string
}

// Broadcaster fetches fresh scores and pushes them to subscribers.
type Broadcaster struct {
	games     gamesSource
	publisher Publisher
	channel   string
	event     string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewBroadcaster wires a Broadcaster. Empty channel or event names use the defaults.
func NewBroadcaster(source gamesSource, publisher Publisher, channel, event string, logger *slog.Logger, recorder *metrics.Recorder) *Broadcaster {
	if channel == "" {
		channel = DefaultChannel
	}
	if event == "" {
		event = DefaultEvent
	}
	return &Broadcaster{
		games:     source,
		publisher: publisher,
		channel:   channel,
		event:     event,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// Broadcast publishes the current scoreboard. Repeating it only republishes
// the latest state.
func (b *Broadcaster) Broadcast(ctx context.Context) (Result, error) {
	logger := logging.FromContext(ctx, b.logger)

	snapshots, err := b.games.Today(ctx)
	if err != nil {
		b.metrics.RecordBroadcast(b.channel, 0, err)
		return Result{}, errors.Wrap(err, "fetch scores for broadcast")
	}

	timestamp := b.now().UTC().Format(TimestampLayout)
	update := games.NewScoreUpdate(snapshots, timestamp)
	if err := b.publisher.Publish(ctx, b.channel, b.event, update); err != nil {
		b.metrics.RecordBroadcast(b.channel, 0, err)
		return Result{}, err
	}

	b.metrics.RecordBroadcast(b.channel, len(update.Games), nil)
	logging.Info(logger, "scores broadcast",
		logging.FieldChannel, b.channel,
		logging.FieldCount, len(update.Games),
	)
	return Result{GamesCount: len(update.Games), Timestamp: timestamp}, nil
}
