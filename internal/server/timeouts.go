package server

import "time"

const (
	readTimeout       = 10 * time.Second
	readHeaderTimeout = 5 * time.Second
	idleTimeout       = 60 * time.Second
)

// writeTimeout must exceed the longest render wait so a loading page can
// still be written after the wait expires.
const writeTimeout = 15 * time.Second

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
