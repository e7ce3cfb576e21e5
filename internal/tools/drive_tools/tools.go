package drive_tools

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/google"
	"github.com/Jadando/gdrive-sheets/internal/server"
)

// getAccountFromArgs extracts the account name from request arguments, defaulting to "default"
func getAccountFromArgs(args map[string]interface{}) string {
	account := "default"
	if accountVal, ok := args["account"].(string); ok && accountVal != "" {
		account = accountVal
	}
	return account
}

// getDriveService retrieves or creates a Drive client for the specified account
func getDriveService(ctx context.Context, account string, sc *server.ServerContext) (gdrive.Service, error) {
	client := sc.DriveClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create the client
		if !gdrive.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}

		newClient, err := gdrive.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Drive client for account %s: %w", account, err)
		}
		sc.SetDriveClientForAccount(account, newClient)
		client = newClient
	}
	return client, nil
}

// RegisterDriveTools registers all Google Drive-related tools with the MCP server
func RegisterDriveTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerSearchTools(s, sc); err != nil {
		return fmt.Errorf("failed to register search tools: %w", err)
	}

	if err := registerFileTools(s, sc); err != nil {
		return fmt.Errorf("failed to register file tools: %w", err)
	}

	return nil
}
