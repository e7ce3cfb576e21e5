// Package gdrive provides Google Drive API operations for searching, reading
// and deleting files.
//
// The Service interface describes the narrow Drive surface used by the MCP
// tool and resource handlers. Client is the production implementation backed
// by the Drive v3 API with OAuth2 authentication.
package gdrive
