// Package drive_tools implements MCP tools for Google Drive operations:
// full-text search, file content reading, and file deletion by ID or name.
package drive_tools
