package sheets_tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/gsheets"
	"github.com/Jadando/gdrive-sheets/internal/server"
	"github.com/Jadando/gdrive-sheets/internal/tools/common"
)

// updateSheetRange overwrites the given range with a single row of raw values
func updateSheetRange(ctx context.Context, drv gdrive.Service, svc gsheets.Service, title, spreadsheetID, writeRange string, row []any) (string, error) {
	id, err := resolveSpreadsheetID(ctx, drv, title, spreadsheetID)
	if err != nil {
		return "", err
	}

	if err := svc.UpdateValues(ctx, id, writeRange, [][]any{row}); err != nil {
		return "", err
	}

	return fmt.Sprintf("Range %s updated successfully", writeRange), nil
}

// appendSheetRow appends a row after the last data row of the anchor range
func appendSheetRow(ctx context.Context, drv gdrive.Service, svc gsheets.Service, title, spreadsheetID, appendRange string, row []any) (string, error) {
	id, err := resolveSpreadsheetID(ctx, drv, title, spreadsheetID)
	if err != nil {
		return "", err
	}

	if err := svc.AppendRow(ctx, id, appendRange, row); err != nil {
		return "", err
	}

	return fmt.Sprintf("Row appended after %s", appendRange), nil
}

// deleteSheetRow deletes a single row from the named sheet. The sheet title
// must match exactly (case-sensitive). rowIndex is zero-based; the success
// message reports the 1-based row number.
func deleteSheetRow(ctx context.Context, drv gdrive.Service, svc gsheets.Service, title, spreadsheetID, sheetName string, rowIndex int64) (string, error) {
	id, err := resolveSpreadsheetID(ctx, drv, title, spreadsheetID)
	if err != nil {
		return "", err
	}

	meta, err := svc.GetSpreadsheet(ctx, id)
	if err != nil {
		return "", err
	}

	var sheetID int64
	found := false
	for _, sheet := range meta.Sheets {
		if sheet.Title == sheetName {
			sheetID = sheet.SheetID
			found = true
			break
		}
	}
	if !found {
		return "", fmt.Errorf("sheet %q not found in spreadsheet", sheetName)
	}

	if err := svc.DeleteRow(ctx, id, sheetID, rowIndex); err != nil {
		return "", err
	}

	return fmt.Sprintf("Row %d deleted from sheet %q", rowIndex+1, sheetName), nil
}

// createSheet creates a new spreadsheet with the given title
func createSheet(ctx context.Context, svc gsheets.Service, title string) (string, error) {
	info, err := svc.CreateSpreadsheet(ctx, title)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Spreadsheet %q created with ID %s", info.Title, info.ID), nil
}

// parseValuesArg extracts the row of values from the "values" argument
func parseValuesArg(args map[string]interface{}) ([]any, error) {
	raw, ok := args["values"].([]any)
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("values is required and must be a non-empty array")
	}
	return raw, nil
}

// registerWriteTools registers mutating Sheets tools
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	updateRangeTool := mcp.NewTool("update_google_sheet_range",
		mcp.WithDescription("Overwrite a range in a Google Sheets spreadsheet with a row of values. Values are written raw, without formula evaluation."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("The title of the spreadsheet. Ignored when spreadsheetID is given."),
		),
		mcp.WithString("spreadsheetID",
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("A1-notation range to overwrite (e.g. 'Sheet1!A2:C2')"),
		),
		mcp.WithArray("values",
			mcp.Required(),
			mcp.Description("The row of cell values to write"),
		),
	)

	s.AddTool(updateRangeTool, common.InstrumentedToolHandlerWithService("update_google_sheet_range", "sheets", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			title, _ := args["title"].(string)
			spreadsheetID, _ := args["spreadsheetID"].(string)
			if title == "" && spreadsheetID == "" {
				return mcp.NewToolResultError("either title or spreadsheetID is required"), nil
			}

			writeRange, ok := args["range"].(string)
			if !ok || writeRange == "" {
				return mcp.NewToolResultError("range is required"), nil
			}

			row, err := parseValuesArg(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			drv, err := getDriveServiceForSheets(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			svc, err := getSheetsService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := updateSheetRange(ctx, drv, svc, title, spreadsheetID, writeRange, row)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(msg), nil
		}))

	appendRowTool := mcp.NewTool("append_google_sheet_row",
		mcp.WithDescription("Append a row to a Google Sheets spreadsheet. The row is inserted at the first empty row at or after the anchor range."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("The title of the spreadsheet. Ignored when spreadsheetID is given."),
		),
		mcp.WithString("spreadsheetID",
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("range",
			mcp.Required(),
			mcp.Description("A1-notation anchor range for the append (e.g. 'Sheet1!A1')"),
		),
		mcp.WithArray("values",
			mcp.Required(),
			mcp.Description("The row of cell values to append"),
		),
	)

	s.AddTool(appendRowTool, common.InstrumentedToolHandlerWithService("append_google_sheet_row", "sheets", "append", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			title, _ := args["title"].(string)
			spreadsheetID, _ := args["spreadsheetID"].(string)
			if title == "" && spreadsheetID == "" {
				return mcp.NewToolResultError("either title or spreadsheetID is required"), nil
			}

			appendRange, ok := args["range"].(string)
			if !ok || appendRange == "" {
				return mcp.NewToolResultError("range is required"), nil
			}

			row, err := parseValuesArg(args)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			drv, err := getDriveServiceForSheets(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			svc, err := getSheetsService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := appendSheetRow(ctx, drv, svc, title, spreadsheetID, appendRange, row)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(msg), nil
		}))

	deleteRowTool := mcp.NewTool("delete_google_sheet_row",
		mcp.WithDescription("Delete a single row from a sheet in a Google Sheets spreadsheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("The title of the spreadsheet. Ignored when spreadsheetID is given."),
		),
		mcp.WithString("spreadsheetID",
			mcp.Description("The ID of the spreadsheet"),
		),
		mcp.WithString("sheetName",
			mcp.Required(),
			mcp.Description("The exact title of the sheet tab to delete the row from (case-sensitive)"),
		),
		mcp.WithNumber("rowIndex",
			mcp.Required(),
			mcp.Description("The zero-based index of the row to delete"),
		),
	)

	s.AddTool(deleteRowTool, common.InstrumentedToolHandlerWithService("delete_google_sheet_row", "sheets", "delete", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			title, _ := args["title"].(string)
			spreadsheetID, _ := args["spreadsheetID"].(string)
			if title == "" && spreadsheetID == "" {
				return mcp.NewToolResultError("either title or spreadsheetID is required"), nil
			}

			sheetName, ok := args["sheetName"].(string)
			if !ok || sheetName == "" {
				return mcp.NewToolResultError("sheetName is required"), nil
			}

			rowIndexVal, ok := args["rowIndex"].(float64)
			if !ok || rowIndexVal < 0 {
				return mcp.NewToolResultError("rowIndex is required and must not be negative"), nil
			}

			drv, err := getDriveServiceForSheets(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			svc, err := getSheetsService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := deleteSheetRow(ctx, drv, svc, title, spreadsheetID, sheetName, int64(rowIndexVal))
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(msg), nil
		}))

	createSheetTool := mcp.NewTool("create_google_sheet",
		mcp.WithDescription("Create a new Google Sheets spreadsheet with a single default sheet"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new spreadsheet"),
		),
	)

	s.AddTool(createSheetTool, common.InstrumentedToolHandlerWithService("create_google_sheet", "sheets", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			title, ok := args["title"].(string)
			if !ok || title == "" {
				return mcp.NewToolResultError("title is required"), nil
			}

			svc, err := getSheetsService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			msg, err := createSheet(ctx, svc, title)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(msg), nil
		}))

	return nil
}
