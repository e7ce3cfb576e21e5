// Package logging provides shared slog attribute helpers so that log
// output stays consistent across commands, tool handlers and API clients.
package logging
