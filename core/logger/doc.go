// Package logger provides a structured logging facility based on Zap.
//
// # Context Awareness
//
// WithRayID extracts the RayID set by core/middleware/rayid from a Fiber
// context and attaches it to the log entry, so every line about one request
// can be correlated.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json or console
//   - Output: stderr (default), stdout or a file path
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Server started")
package logger
