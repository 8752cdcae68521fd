// Package audit records player moves to the operational move log.
//
// The log is write-only at runtime and is never replayed into game state.
// Trace ids come from the active OpenTelemetry span when one exists.
package audit
