package google

// DefaultOAuthScopes are the Google OAuth scopes required for full MCP functionality.
// These scopes are used consistently across the application for OAuth configurations.
//
// The scopes provide access to:
//   - Google Drive: full access (search, read, create, delete)
//   - Google Sheets: full access (read, update, append, create)
var DefaultOAuthScopes = []string{
	// Google Drive scope
	"https://www.googleapis.com/auth/drive",

	// Google Sheets scope
	"https://www.googleapis.com/auth/spreadsheets",
}
