// Package resources exposes Google Drive files as MCP resources.
//
// Files are addressed by a gdrive:/// URI followed directly by the Drive file
// ID. Listings are paginated with a fixed page size; reads export Workspace
// files to a portable format and deliver other files as text or base64.
package resources
