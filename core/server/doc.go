// Package server holds the HTTP server configuration.
//
// While the start command handles server startup, this package defines the
// configuration structure for server settings: the listen port and the
// session token parameters consumed by the auth middleware and the users
// feature.
package server
