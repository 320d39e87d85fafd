// Package session carries the authenticated identity of a request.
//
// The auth middleware validates the bearer token, builds a Session and stores
// it in the Fiber context. Handlers extract it and hand it to services as an
// explicit argument, which keeps the engine a pure function of its inputs.
package session
