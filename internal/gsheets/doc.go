// Package gsheets provides Google Sheets API operations for reading, writing
// and structural changes to spreadsheets.
//
// The Service interface describes the narrow Sheets surface used by the MCP
// tool handlers. Client is the production implementation backed by the
// Sheets v4 API with OAuth2 authentication.
package gsheets
