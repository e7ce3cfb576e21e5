package google_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/google"
	"github.com/Jadando/gdrive-sheets/internal/server"
)

// RegisterGoogleTools registers all Google OAuth-related tools with the MCP server
func RegisterGoogleTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Get OAuth URL tool
	getAuthURLTool := mcp.NewTool("google_get_auth_url",
		mcp.WithDescription("Get the OAuth URL to authorize Google Drive and Google Sheets access for a specific account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
	)

	s.AddTool(getAuthURLTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetAuthURL(ctx, request, sc)
	})

	// Save authorization code tool
	saveAuthCodeTool := mcp.NewTool("google_save_auth_code",
		mcp.WithDescription("Save the OAuth authorization code to complete Google Drive and Google Sheets authentication for a specific account"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("authCode",
			mcp.Required(),
			mcp.Description("The authorization code from Google OAuth"),
		),
	)

	s.AddTool(saveAuthCodeTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleSaveAuthCode(ctx, request, sc)
	})

	return nil
}

func handleGetAuthURL(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	// Get account name, default to "default"
	account := google.DefaultAccount
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}

	authURL := google.GetAuthURLForAccount(account)

	result := fmt.Sprintf(`To authorize Google Drive and Google Sheets access for account "%s":

1. Visit this URL in your browser:
   %s

2. Sign in with your Google account
3. Grant access to Google Drive and Google Sheets
4. Copy the authorization code

5. Call the google_save_auth_code tool with the code and account name to complete authentication`, account, authURL)

	return mcp.NewToolResultText(result), nil
}

func handleSaveAuthCode(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	// Get account name, default to "default"
	account := google.DefaultAccount
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}

	authCode, ok := args["authCode"].(string)
	if !ok || authCode == "" {
		return mcp.NewToolResultError("authCode is required"), nil
	}

	err := google.SaveTokenForAccount(ctx, account, authCode)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save authorization code for account %s: %v", account, err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Authorization successful for account '%s'! Google token saved. You can now use all Drive and Sheets tools with this account.", account)), nil
}
