// Package logger wraps a process-wide zap logger that writes human-readable lines to stderr,
// keeping standard output free for results.
// Loggers travel in contexts: WithKV and WithName attach fields or names, and the package-level
// Debug, Info, Warn, Error and Fatal helpers (with f and KV variants) log through the context's logger.
// The level is shared and can be changed at runtime with SetLevel.
package logger
