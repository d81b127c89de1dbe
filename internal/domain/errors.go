package domain

import "github.com/cockroachdb/errors"

// Error categories. Concrete errors are tagged with errors.Mark, so callers
// must branch with github.com/cockroachdb/errors.Is; the standard library
// errors.Is does not see marks and reports false.
var (
	ErrNotFound            = errors.New("not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrCacheWrite          = errors.New("cache write failed")
	ErrMalformedPayload    = errors.New("malformed upstream payload")
)
