// Package sheets_tools implements MCP tools for Google Sheets operations:
// reading cell values, listing sheet tabs, range updates, row appends, row
// deletion, and spreadsheet creation.
//
// Spreadsheets can be addressed either by ID or by title; titles are resolved
// through a Drive name lookup constrained to the spreadsheet content type.
package sheets_tools
