// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup and graceful-shutdown operations.
const DefaultTimeout = 10 * time.Second
