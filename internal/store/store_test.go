package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/preston-bernstein/nba-dashboard-service/internal/testutil"
)

type sample struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestMemoryStoreGetSet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Hour))
	got, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v"), got)
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	value := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", value, 0))
	value[0] = 'z'

	got, _, _ := s.Get(ctx, "k")
	got[1] = 'z'

	again, _, _ := s.Get(ctx, "k")
	assert.Equal(t, "abc", string(again))
}

func TestMemoryStoreExpires(t *testing.T) {
	s := NewMemoryStore()
	clock := testutil.NewClock(testutil.MustParseRFC3339("2024-01-01T00:00:00Z"))
	s.now = clock.Now
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("v"), time.Minute))
	clock.Advance(59 * time.Second)
	_, ok, _ := s.Get(ctx, "k")
	assert.True(t, ok)

	clock.Advance(time.Second)
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
	assert.Empty(t, s.entries)
}

func TestMemoryStoreZeroTTLNeverExpires(t *testing.T) {
	s := NewMemoryStore()
	clock := testutil.NewClock(time.Now())
	s.now = clock.Now
	require.NoError(t, s.Set(context.Background(), "k", []byte("v"), 0))

	clock.Advance(1000 * time.Hour)
	_, ok, _ := s.Get(context.Background(), "k")
	assert.True(t, ok)
}

func TestRedisStoreGetSet(t *testing.T) {
	s, mr := newRedisStore(t)
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "players:index", []byte(`[]`), 24*time.Hour))
	got, ok, err := s.Get(ctx, "players:index")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, string(got))
	assert.Equal(t, 24*time.Hour, mr.TTL("players:index"))

	mr.FastForward(25 * time.Hour)
	_, ok, err = s.Get(ctx, "players:index")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisStoreSurfacesConnectionErrors(t *testing.T) {
	s, mr := newRedisStore(t)
	mr.Close()

	_, _, err := s.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.Error(t, s.Set(context.Background(), "k", []byte("v"), time.Minute))
	assert.Error(t, s.Ping(context.Background()))
}

func TestOpenRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client, err := OpenRedis(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	_, err = OpenRedis(context.Background(), "not a url")
	assert.Error(t, err)
}

func TestJSONHelpersRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	in := []sample{{ID: "1", Name: "Stephen Curry"}}
	require.NoError(t, SetJSON(ctx, s, "players:index", in, time.Hour))

	out, ok, err := GetJSON[[]sample](ctx, s, "players:index")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestGetJSONMissAndDecodeFailure(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, ok, err := GetJSON[sample](ctx, s, "nope")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "bad", []byte("{not json"), time.Hour))
	_, ok, err = GetJSON[sample](ctx, s, "bad")
	assert.Error(t, err)
	assert.False(t, ok)
}
