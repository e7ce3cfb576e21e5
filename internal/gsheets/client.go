package gsheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	sheets "google.golang.org/api/sheets/v4"

	"github.com/Jadando/gdrive-sheets/internal/google"
)

// Client wraps the Google Sheets API service
type Client struct {
	service *sheets.Service
	account string // The account this client is associated with
}

// Account returns the account name this client is associated with
func (c *Client) Account() string {
	return c.account
}

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	return google.HasTokenForAccount(account)
}

// NewClientForAccount creates a new Google Sheets client with OAuth2
// authentication for a specific account. Returns an error if no valid token
// exists - use HasTokenForAccount() to check first.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	sheetsService, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Sheets service: %w", err)
	}

	return &Client{
		service: sheetsService,
		account: account,
	}, nil
}

// NewClient creates a new Google Sheets client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, google.DefaultAccount)
}

// GetSpreadsheet retrieves spreadsheet metadata including its sheet list
func (c *Client) GetSpreadsheet(ctx context.Context, spreadsheetID string) (*SpreadsheetInfo, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}

	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).
		Context(ctx).
		Fields("spreadsheetId, properties.title, sheets.properties(sheetId,title)").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet %s: %w", spreadsheetID, err)
	}

	return convertToSpreadsheetInfo(spreadsheet), nil
}

// GetValues reads cell values from an A1-notation range
func (c *Client) GetValues(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheetID is required")
	}
	if readRange == "" {
		return nil, fmt.Errorf("range is required")
	}

	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, readRange).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	return resp.Values, nil
}

// UpdateValues writes raw values into an A1-notation range. Values are written
// as-is without input parsing, so strings stay strings.
func (c *Client) UpdateValues(ctx context.Context, spreadsheetID, writeRange string, values [][]any) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if writeRange == "" {
		return fmt.Errorf("range is required")
	}

	valueRange := &sheets.ValueRange{Values: values}
	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, writeRange, valueRange).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", writeRange, err)
	}

	return nil
}

// AppendRow appends a single row after the last data row of the given range
func (c *Client) AppendRow(ctx context.Context, spreadsheetID, appendRange string, row []any) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if appendRange == "" {
		return fmt.Errorf("range is required")
	}

	valueRange := &sheets.ValueRange{Values: [][]any{row}}
	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, appendRange, valueRange).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row to %s: %w", appendRange, err)
	}

	return nil
}

// DeleteRow removes a single row from the given sheet. rowIndex is zero-based;
// the deleted range is [rowIndex, rowIndex+1).
func (c *Client) DeleteRow(ctx context.Context, spreadsheetID string, sheetID, rowIndex int64) error {
	if spreadsheetID == "" {
		return fmt.Errorf("spreadsheetID is required")
	}
	if rowIndex < 0 {
		return fmt.Errorf("rowIndex must not be negative")
	}

	request := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					Range: &sheets.DimensionRange{
						SheetId:    sheetID,
						Dimension:  "ROWS",
						StartIndex: rowIndex,
						EndIndex:   rowIndex + 1,
					},
				},
			},
		},
	}

	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, request).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to delete row %d: %w", rowIndex, err)
	}

	return nil
}

// CreateSpreadsheet creates a new spreadsheet with a single default sheet
func (c *Client) CreateSpreadsheet(ctx context.Context, title string) (*SpreadsheetInfo, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	spreadsheet := &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title:  title,
			Locale: "en_US",
		},
		Sheets: []*sheets.Sheet{
			{
				Properties: &sheets.SheetProperties{
					Title: "Sheet1",
				},
			},
		},
	}

	created, err := c.service.Spreadsheets.Create(spreadsheet).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create spreadsheet: %w", err)
	}

	return convertToSpreadsheetInfo(created), nil
}

// convertToSpreadsheetInfo converts a Sheets API Spreadsheet to our SpreadsheetInfo type
func convertToSpreadsheetInfo(s *sheets.Spreadsheet) *SpreadsheetInfo {
	info := &SpreadsheetInfo{
		ID: s.SpreadsheetId,
	}
	if s.Properties != nil {
		info.Title = s.Properties.Title
	}
	for _, sheet := range s.Sheets {
		if sheet.Properties == nil {
			continue
		}
		info.Sheets = append(info.Sheets, SheetInfo{
			Title:   sheet.Properties.Title,
			SheetID: sheet.Properties.SheetId,
		})
	}
	return info
}
