// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the
// configuration structure for server settings: the listen port and the
// optional API key protecting the API.
//
// It is primarily used by the core/config package to embed server settings and
// by the auth middleware.
package server
