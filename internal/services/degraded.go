package services

import (
	"posada/internal/logger"
	"posada/internal/metrics"
)

// warnDegraded logs a failed snapshot flush. The mutation already succeeded
// in memory, which stays authoritative for the session, so this is a
// warning rather than an operation failure. The health endpoint reports the
// degraded mode until a later flush succeeds.
func warnDegraded(operation string, flushErr error) {
	if flushErr == nil {
		return
	}
	metrics.FlushFailures.Inc()
	logger.Get().Warnw("state persisted in memory only",
		"operation", operation,
		"error", flushErr.Error(),
	)
}
