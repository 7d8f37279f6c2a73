// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration: the
// listen address, the request read timeout, the graceful shutdown bound, and
// the API key checked by the auth middleware.
package server
