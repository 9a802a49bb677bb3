// Package lifecycle holds process lifecycle constants shared across deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of a delivery.
const DefaultTimeout = 10 * time.Second
