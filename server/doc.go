// Package server provides a unified HTTP server for restkit applications
// using Gin with HTTP/2 h2c support.
//
// The server follows restkit's component pattern with lifecycle management,
// health endpoints, and configurable middleware.
//
// # Middleware
//
// Built-in middleware (server/middleware):
//
//   - Recovery: Panic recovery with structured logging
//   - Logging: Request/response logging with duration tracking
//   - CORS: Cross-origin resource sharing configuration
//   - RequestID: Request ID generation and propagation
//   - BodySize: Request body size limits
//   - Tracing: OpenTelemetry server spans
//
// # Endpoints
//
// Built-in endpoints (server/endpoint):
//
//   - /health: Health check aggregation
//   - /info: Application information
//   - /version: Build version information
//   - /metrics: Runtime memory and goroutine metrics
//   - /liveness, /readiness: Kubernetes probes (opt-in)
//
// # Framework log bridge
//
// RedirectFrameworkLogs replaces Gin's global writers so framework output
// flows through the structured zerolog logger.
package server
