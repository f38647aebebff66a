package server

import "time"

const (
	readTimeout = 10 * time.Second
	idleTimeout = 60 * time.Second
)

// writeTimeout must stay generous: the MCP SSE stream is a long-lived response.
const writeTimeout = 0

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
