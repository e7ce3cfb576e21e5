// Package content normalizes Google Drive file content for transport.
//
// Google Workspace files cannot be downloaded directly and are exported to a
// portable format instead (Docs to Markdown, Sheets to CSV, Slides to plain
// text, Drawings to PNG). All other files are downloaded as-is and delivered
// as text or base64 depending on their MIME type.
package content
