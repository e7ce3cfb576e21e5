package drive_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/content"
	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/server"
	"github.com/Jadando/gdrive-sheets/internal/tools/common"
)

// resolveFileByName finds a file by exact name match and returns its metadata
func resolveFileByName(ctx context.Context, svc gdrive.Service, fileName string) (*gdrive.FileInfo, error) {
	query := fmt.Sprintf("name = '%s'", gdrive.EscapeQueryTerm(fileName))
	files, _, err := svc.ListFiles(ctx, &gdrive.ListOptions{
		Query:    query,
		PageSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to look up file by name: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no file found with name %q", fileName)
	}
	return files[0], nil
}

// deleteDriveFile deletes a file identified by ID or, failing that, by name.
// It validates its inputs before making any remote call.
func deleteDriveFile(ctx context.Context, svc gdrive.Service, fileID, fileName string) (string, error) {
	if fileID == "" && fileName == "" {
		return "", fmt.Errorf("either fileID or fileName is required")
	}

	name := fileName
	if fileID == "" {
		info, err := resolveFileByName(ctx, svc, fileName)
		if err != nil {
			return "", err
		}
		fileID = info.ID
		name = info.Name
	}

	if err := svc.DeleteFile(ctx, fileID); err != nil {
		return "", err
	}

	if name != "" {
		return fmt.Sprintf("File %q (%s) deleted successfully", name, fileID), nil
	}
	return fmt.Sprintf("File %s deleted successfully", fileID), nil
}

// registerFileTools registers file-level Drive tools
func registerFileTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Delete file tool
	deleteFileTool := mcp.NewTool("delete_google_drive_file",
		mcp.WithDescription("Permanently delete a file from Google Drive by ID or by name"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileID",
			mcp.Description("The ID of the file to delete. Takes precedence over fileName."),
		),
		mcp.WithString("fileName",
			mcp.Description("The exact name of the file to delete. Used when fileID is not provided."),
		),
	)

	s.AddTool(deleteFileTool, common.InstrumentedToolHandlerWithService("delete_google_drive_file", "drive", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			fileID, _ := args["fileID"].(string)
			fileName, _ := args["fileName"].(string)

			// Validate before touching the API so a bad request never
			// costs a remote round trip
			if fileID == "" && fileName == "" {
				return mcp.NewToolResultError("either fileID or fileName is required"), nil
			}

			svc, err := getDriveService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := deleteDriveFile(ctx, svc, fileID, fileName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(msg), nil
		}))

	// Read file tool
	readFileTool := mcp.NewTool("read_drive_file",
		mcp.WithDescription("Read the content of a Google Drive file. Google Workspace files are exported to a portable format (Docs to Markdown, Sheets to CSV, Slides to plain text, Drawings to PNG); other files are downloaded as-is."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("fileID",
			mcp.Required(),
			mcp.Description("The ID of the file to read"),
		),
	)

	s.AddTool(readFileTool, common.InstrumentedToolHandlerWithService("read_drive_file", "drive", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			fileID, ok := args["fileID"].(string)
			if !ok || fileID == "" {
				return mcp.NewToolResultError("fileID is required"), nil
			}

			svc, err := getDriveService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			fileContent, err := content.Read(ctx, svc, fileID)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to read file: %v", err)), nil
			}

			if fileContent.IsText {
				return mcp.NewToolResultText(fileContent.Text), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Binary content (%s), base64-encoded:\n%s", fileContent.MimeType, fileContent.Blob)), nil
		}))

	return nil
}
