package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/nba-dashboard-service/internal/broadcast"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/games"
	"github.com/preston-bernstein/nba-dashboard-service/internal/domain/players"
)

// StubBroadcaster is a test double for the score broadcaster.
type StubBroadcaster struct {
	Result broadcast.Result
	Err    error
	Calls  atomic.Int32
	// Notify is closed on the first call.
	Notify chan struct{}

	mu sync.Mutex
}

// Broadcast returns the configured result and error while tracking calls.
func (s *StubBroadcaster) Broadcast(ctx context.Context) (broadcast.Result, error) {
	_ = ctx
	s.mu.Lock()
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	result, err := s.Result, s.Err
	s.mu.Unlock()
	s.Calls.Add(1)
	return result, err
}

// SetErr swaps the configured error while a poller may be calling Broadcast.
func (s *StubBroadcaster) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Err = err
}

// StubGames is a test double for the games service.
type StubGames struct {
	Games []games.Snapshot
	Err   error
	Calls atomic.Int32
}

func (s *StubGames) Today(ctx context.Context) ([]games.Snapshot, error) {
	_ = ctx
	s.Calls.Add(1)
	return s.Games, s.Err
}

// StubIndexRefresher is a test double for the player index refresh.
type StubIndexRefresher struct {
	Players []players.Summary
	Err     error
	Calls atomic.Int32
	// Notify is closed on the first call.
	Notify chan struct{}

	once sync.Once
}

func (s *StubIndexRefresher) Refresh(ctx context.Context) ([]players.Summary, error) {
	_ = ctx
	s.Calls.Add(1)
	if s.Notify != nil {
		s.once.Do(func() { close(s.Notify) })
	}
	return s.Players, s.Err
}
