// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the
// handler.
//
// # Components
//
//   - Auth: validates the bearer token and stores the owner's session in the
//     request context. Every owner-scoped route sits behind it.
//   - RayID: generates a unique request ID for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// These middleware components are registered globally or per-route group in
// the main application setup.
package middleware
