package sheets_tools

import (
	"context"
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/google"
	"github.com/Jadando/gdrive-sheets/internal/gsheets"
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

// getSheetsService retrieves or creates a Sheets client for the specified account
func getSheetsService(ctx context.Context, account string, sc *server.ServerContext) (gsheets.Service, error) {
	client := sc.SheetsClientForAccount(account)
	if client == nil {
		// Check if token exists before trying to create the client
		if !gsheets.HasTokenForAccount(account) {
			errorMsg := google.GetAuthenticationErrorMessage(account)
			return nil, fmt.Errorf("%s", errorMsg)
		}

		newClient, err := gsheets.NewClientForAccount(ctx, account)
		if err != nil {
			return nil, fmt.Errorf("failed to create Sheets client for account %s: %w", account, err)
		}
		sc.SetSheetsClientForAccount(account, newClient)
		client = newClient
	}
	return client, nil
}

// getDriveServiceForSheets retrieves or creates a Drive client for the
// specified account. The Drive API is needed for title-based spreadsheet
// resolution.
func getDriveServiceForSheets(ctx context.Context, account string, sc *server.ServerContext) (gdrive.Service, error) {
	client := sc.DriveClientForAccount(account)
	if client == nil {
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

// RegisterSheetsTools registers all Google Sheets-related tools with the MCP server
func RegisterSheetsTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register read tools: %w", err)
	}

	if err := registerWriteTools(s, sc); err != nil {
		return fmt.Errorf("failed to register write tools: %w", err)
	}

	return nil
}
