// Package lifecycle holds shared constants for process startup and shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds startup pings and graceful shutdown of long-lived
// resources (HTTP server, database pool).
const DefaultTimeout = 30 * time.Second
