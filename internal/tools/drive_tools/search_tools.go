package drive_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/server"
	"github.com/Jadando/gdrive-sheets/internal/tools/common"
)

const defaultSearchPageSize = 10

// buildSearchQuery builds a full-text Drive query from raw user input.
// The input is escaped so that quotes cannot break out of the string literal.
func buildSearchQuery(query string) string {
	return fmt.Sprintf("fullText contains '%s'", gdrive.EscapeQueryTerm(query))
}

// searchFiles runs a full-text search and renders the result listing
func searchFiles(ctx context.Context, svc gdrive.Service, query, pageToken string, pageSize int64) (string, error) {
	if pageSize <= 0 {
		pageSize = defaultSearchPageSize
	}

	files, nextPageToken, err := svc.ListFiles(ctx, &gdrive.ListOptions{
		Query:     buildSearchQuery(query),
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return "", fmt.Errorf("failed to search files: %w", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d files:\n", len(files))
	for _, f := range files {
		fmt.Fprintf(&sb, "%s (%s)\n", f.Name, f.MimeType)
	}
	if nextPageToken != "" {
		fmt.Fprintf(&sb, "\nNext page token: %s", nextPageToken)
	}

	return sb.String(), nil
}

// registerSearchTools registers the Drive search tool
func registerSearchTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	searchTool := mcp.NewTool("search",
		mcp.WithDescription("Search for files in Google Drive by full-text query"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query. Matched against file content and names."),
		),
		mcp.WithNumber("pageSize",
			mcp.Description("Maximum number of files to return (default: 10)"),
		),
		mcp.WithString("pageToken",
			mcp.Description("Page token for retrieving the next page of results"),
		),
	)

	s.AddTool(searchTool, common.InstrumentedToolHandlerWithService("search", "drive", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			query, ok := args["query"].(string)
			if !ok || query == "" {
				return mcp.NewToolResultError("query is required"), nil
			}

			svc, err := getDriveService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			var pageSize int64
			if size, ok := args["pageSize"].(float64); ok && size > 0 {
				pageSize = int64(size)
			}

			pageToken, _ := args["pageToken"].(string)

			listing, err := searchFiles(ctx, svc, query, pageToken, pageSize)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(listing), nil
		}))

	return nil
}
