// Package lifecycle holds process-wide lifecycle constants shared by servers and infra clients.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdowns.
const DefaultTimeout = 10 * time.Second
