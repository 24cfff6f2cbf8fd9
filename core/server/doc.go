// Package server holds the HTTP server configuration and constants.
//
// While the start command handles the server startup, this package defines
// the configuration structure and valid values for server settings, such as
// the runtime environment and request timeouts.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server
// settings and by the start command to configure Fiber.
package server
