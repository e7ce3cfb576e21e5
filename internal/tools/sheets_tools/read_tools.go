package sheets_tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/gsheets"
	"github.com/Jadando/gdrive-sheets/internal/server"
	"github.com/Jadando/gdrive-sheets/internal/tools/common"
)

// defaultRangeBlock is the cell block read when no range is supplied
const defaultRangeBlock = "A1:Z20"

// formatCell renders a single cell value as text
func formatCell(v any) string {
	return fmt.Sprintf("%v", v)
}

// formatRow joins the cells of a row with " | "
func formatRow(row []any) string {
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = formatCell(c)
	}
	return strings.Join(cells, " | ")
}

// renderRows renders all rows with 1-based row numbers
func renderRows(values [][]any) string {
	var sb strings.Builder
	for i, row := range values {
		fmt.Fprintf(&sb, "Row %d: %s\n", i+1, formatRow(row))
	}
	return sb.String()
}

// renderColumn renders a single named column. The first row is treated as the
// header; data row numbers are offset by it so they match the sheet's own
// numbering.
func renderColumn(values [][]any, columnName string) (string, error) {
	header := values[0]
	columnIndex := -1
	for i, cell := range header {
		if formatCell(cell) == columnName {
			columnIndex = i
			break
		}
	}
	if columnIndex == -1 {
		return "", fmt.Errorf("column %q not found in header row", columnName)
	}

	var sb strings.Builder
	for i, row := range values[1:] {
		value := ""
		if columnIndex < len(row) {
			value = formatCell(row[columnIndex])
		}
		fmt.Fprintf(&sb, "Row %d: %s\n", i+2, value)
	}
	return sb.String(), nil
}

// readSheet resolves the spreadsheet, defaults the range to the first sheet's
// A1:Z20 block when none is given, and renders the cell values.
func readSheet(ctx context.Context, drv gdrive.Service, svc gsheets.Service, title, spreadsheetID, readRange, columnName string) (string, error) {
	id, err := resolveSpreadsheetID(ctx, drv, title, spreadsheetID)
	if err != nil {
		return "", err
	}

	if readRange == "" {
		meta, err := svc.GetSpreadsheet(ctx, id)
		if err != nil {
			return "", err
		}
		if len(meta.Sheets) == 0 {
			return "", fmt.Errorf("spreadsheet %s has no sheets", id)
		}
		readRange = meta.Sheets[0].Title + "!" + defaultRangeBlock
	}

	values, err := svc.GetValues(ctx, id, readRange)
	if err != nil {
		return "", err
	}

	if len(values) == 0 {
		return fmt.Sprintf("No data found in range %s", readRange), nil
	}

	if columnName != "" {
		return renderColumn(values, columnName)
	}
	return renderRows(values), nil
}

// listSheets renders the sheet tabs of a spreadsheet
func listSheets(ctx context.Context, drv gdrive.Service, svc gsheets.Service, title, spreadsheetID string) (string, error) {
	id, err := resolveSpreadsheetID(ctx, drv, title, spreadsheetID)
	if err != nil {
		return "", err
	}

	meta, err := svc.GetSpreadsheet(ctx, id)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Spreadsheet %q has %d sheets:\n", meta.Title, len(meta.Sheets))
	for _, sheet := range meta.Sheets {
		fmt.Fprintf(&sb, "%s (sheetId %d)\n", sheet.Title, sheet.SheetID)
	}
	return sb.String(), nil
}

// registerReadTools registers read-only Sheets tools
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	readSheetsTool := mcp.NewTool("read_sheets",
		mcp.WithDescription("Read cell values from a Google Sheets spreadsheet. Defaults to the first sheet's A1:Z20 block when no range is given."),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("The title of the spreadsheet to read. Ignored when spreadsheetID is given."),
		),
		mcp.WithString("spreadsheetID",
			mcp.Description("The ID of the spreadsheet to read"),
		),
		mcp.WithString("range",
			mcp.Description("A1-notation range to read (e.g. 'Sheet1!A1:D10'). Defaults to the first sheet's A1:Z20 block."),
		),
		mcp.WithString("columnName",
			mcp.Description("When given, only this column is returned. The first row is treated as the header row."),
		),
	)

	s.AddTool(readSheetsTool, common.InstrumentedToolHandlerWithService("read_sheets", "sheets", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			title, _ := args["title"].(string)
			spreadsheetID, _ := args["spreadsheetID"].(string)
			if title == "" && spreadsheetID == "" {
				return mcp.NewToolResultError("either title or spreadsheetID is required"), nil
			}

			readRange, _ := args["range"].(string)
			columnName, _ := args["columnName"].(string)

			drv, err := getDriveServiceForSheets(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			svc, err := getSheetsService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			output, err := readSheet(ctx, drv, svc, title, spreadsheetID, readRange, columnName)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(output), nil
		}))

	listSheetsTool := mcp.NewTool("list_google_sheets",
		mcp.WithDescription("List the sheet tabs of a Google Sheets spreadsheet with their titles and sheet IDs"),
		mcp.WithString("account",
			mcp.Description("Account name (default: 'default'). Used to manage multiple Google accounts."),
		),
		mcp.WithString("title",
			mcp.Description("The title of the spreadsheet. Ignored when spreadsheetID is given."),
		),
		mcp.WithString("spreadsheetID",
			mcp.Description("The ID of the spreadsheet"),
		),
	)

	s.AddTool(listSheetsTool, common.InstrumentedToolHandlerWithService("list_google_sheets", "sheets", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			args := request.GetArguments()
			account := getAccountFromArgs(args)

			title, _ := args["title"].(string)
			spreadsheetID, _ := args["spreadsheetID"].(string)
			if title == "" && spreadsheetID == "" {
				return mcp.NewToolResultError("either title or spreadsheetID is required"), nil
			}

			drv, err := getDriveServiceForSheets(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			svc, err := getSheetsService(ctx, account, sc)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			output, err := listSheets(ctx, drv, svc, title, spreadsheetID)
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}

			return mcp.NewToolResultText(output), nil
		}))

	return nil
}
