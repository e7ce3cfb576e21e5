// Package server holds the shared state of the MCP server: per-account Google
// API clients with lazy initialization, and the dedicated Prometheus metrics
// server used with network transports.
package server
