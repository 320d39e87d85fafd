// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Context Awareness
//
// The WithRayID helper extracts the request's RayID from a Fiber context and
// attaches it to the log entry, so all logs for a request can be correlated.
// WithOwner does the same for the owning username, which partitions every
// collection in this application.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
package logger
