// Package lifecycle holds shared start/stop tuning for fx-managed components.
package lifecycle

import "time"

// DefaultTimeout bounds component startup checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
