package server

import "time"

const (
	readTimeout = 10 * time.Second
	// The index rebuild fans out to every team on a cold cache, so writes get
	// more room than reads.
	writeTimeout = 60 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
