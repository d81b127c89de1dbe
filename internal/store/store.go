package store

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"
)

// Store is a shared key/value cache with per-entry TTLs. Get reports a miss
// with ok=false and a nil error; an error means the store itself failed.
type Store interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GetJSON reads key and decodes it into a T. A value that no longer decodes
// is returned as an error so callers can treat it like a failed read.
func GetJSON[T any](ctx context.Context, s Store, key string) (T, bool, error) {
	var out T
	raw, ok, err := s.Get(ctx, key)
	if err != nil {
		return out, false, errors.Wrapf(err, "cache get %s", key)
	}
	if !ok {
		return out, false, nil
	}
	if err := sonic.Unmarshal(raw, &out); err != nil {
		return out, false, errors.Wrapf(err, "cache decode %s", key)
	}
	return out, true, nil
}

// SetJSON encodes v and writes it under key with ttl.
func SetJSON[T any](ctx context.Context, s Store, key string, v T, ttl time.Duration) error {
	raw, err := sonic.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "cache encode %s", key)
	}
	if err := s.Set(ctx, key, raw, ttl); err != nil {
		return errors.Wrapf(err, "cache set %s", key)
	}
	return nil
}
