package gsheets

import "context"

// SheetInfo describes a single sheet (tab) within a spreadsheet
type SheetInfo struct {
	Title   string `json:"title"`
	SheetID int64  `json:"sheetId"`
}

// SpreadsheetInfo describes a spreadsheet and its sheets
type SpreadsheetInfo struct {
	ID     string      `json:"id"`
	Title  string      `json:"title"`
	Sheets []SheetInfo `json:"sheets"`
}

// Service is the narrow Sheets surface the tool handlers depend on.
// The production implementation is Client; tests substitute fakes.
type Service interface {
	// GetSpreadsheet retrieves spreadsheet metadata including its sheet list
	GetSpreadsheet(ctx context.Context, spreadsheetID string) (*SpreadsheetInfo, error)

	// GetValues reads cell values from an A1-notation range
	GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)

	// UpdateValues writes raw values into an A1-notation range
	UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]any) error

	// AppendRow appends a single row after the last data row of the range
	AppendRow(ctx context.Context, spreadsheetID, appendRange string, row []any) error

	// DeleteRow removes a single row (zero-based index) from the given sheet
	DeleteRow(ctx context.Context, spreadsheetID string, sheetID, rowIndex int64) error

	// CreateSpreadsheet creates a new spreadsheet with a single default sheet
	CreateSpreadsheet(ctx context.Context, title string) (*SpreadsheetInfo, error)
}
