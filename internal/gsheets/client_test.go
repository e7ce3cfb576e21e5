package gsheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	sheets "google.golang.org/api/sheets/v4"
)

func TestConvertToSpreadsheetInfo(t *testing.T) {
	s := &sheets.Spreadsheet{
		SpreadsheetId: "abc123",
		Properties: &sheets.SpreadsheetProperties{
			Title: "Budget",
		},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: "Sheet1", SheetId: 0}},
			{Properties: &sheets.SheetProperties{Title: "Q2", SheetId: 12345}},
			{Properties: nil},
		},
	}

	info := convertToSpreadsheetInfo(s)
	assert.Equal(t, "abc123", info.ID)
	assert.Equal(t, "Budget", info.Title)
	assert.Equal(t, []SheetInfo{
		{Title: "Sheet1", SheetID: 0},
		{Title: "Q2", SheetID: 12345},
	}, info.Sheets)
}

func TestConvertToSpreadsheetInfoMissingProperties(t *testing.T) {
	info := convertToSpreadsheetInfo(&sheets.Spreadsheet{SpreadsheetId: "x"})
	assert.Equal(t, "x", info.ID)
	assert.Empty(t, info.Title)
	assert.Empty(t, info.Sheets)
}
