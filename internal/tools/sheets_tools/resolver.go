package sheets_tools

import (
	"context"
	"fmt"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
)

// resolveSpreadsheetID resolves a spreadsheet reference to an identifier.
// An explicit spreadsheetID is passed through unchanged without any remote
// call; otherwise the title is looked up by exact name match constrained to
// the spreadsheet content type. Lookups are never cached, so a rename or
// delete is picked up on the next call.
func resolveSpreadsheetID(ctx context.Context, drv gdrive.Service, title, spreadsheetID string) (string, error) {
	if spreadsheetID != "" {
		return spreadsheetID, nil
	}
	if title == "" {
		return "", fmt.Errorf("either title or spreadsheetID is required")
	}

	query := fmt.Sprintf("name = '%s' and mimeType = '%s'",
		gdrive.EscapeQueryTerm(title), gdrive.SpreadsheetMimeType)

	files, _, err := drv.ListFiles(ctx, &gdrive.ListOptions{
		Query:    query,
		PageSize: 1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to look up spreadsheet by title: %w", err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("no spreadsheet found with title %q", title)
	}

	return files[0].ID, nil
}
