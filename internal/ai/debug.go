package ai

import "sync/atomic"

// debugEnabled gates per-decision debug logs. Decisions happen every round,
// so the flag is checked before building log attributes.
var debugEnabled atomic.Bool

// EnableDebugLogging turns decision tracing on or off.
// Called once from main after the log level is known.
func EnableDebugLogging(enabled bool) {
	debugEnabled.Store(enabled)
}

// IsDebugEnabled returns true if decision tracing is on.
func IsDebugEnabled() bool {
	return debugEnabled.Load()
}
