// Package cmd implements the command-line interface for gdrive-sheets.
//
// This package provides the following commands:
//   - serve: Start the MCP server to provide Drive and Sheets tools for AI assistants
//   - auth: Authorize Google Drive and Google Sheets access via OAuth
//   - version: Display version information
//
// The serve command is the default command when no subcommand is specified.
package cmd
