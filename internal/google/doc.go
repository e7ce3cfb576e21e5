// Package google provides OAuth2 authentication and token management for the
// Google Drive and Sheets APIs.
//
// Tokens are stored per account in the user cache directory, which supports
// the STDIO transport where no interactive OAuth flow is possible at request
// time. The TokenProvider interface allows different token sources to be
// plugged in.
package google
