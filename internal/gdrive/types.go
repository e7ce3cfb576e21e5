package gdrive

import (
	"context"
	"strings"
)

const (
	// SpreadsheetMimeType is the MIME type for Google Sheets spreadsheets
	SpreadsheetMimeType = "application/vnd.google-apps.spreadsheet"

	// FolderMimeType is the MIME type for Google Drive folders
	FolderMimeType = "application/vnd.google-apps.folder"
)

// FileInfo represents metadata about a Google Drive file
type FileInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size,omitempty"`
	ModifiedTime string `json:"modifiedTime,omitempty"`
}

// ListOptions contains options for listing Drive files
type ListOptions struct {
	// Query is a Drive API query expression, e.g. "fullText contains 'report'"
	Query string
	// PageSize limits the number of files returned per page
	PageSize int64
	// PageToken resumes a previous listing
	PageToken string
}

// FileContent is the raw content of a downloaded or exported file
type FileContent struct {
	MimeType string
	Data     []byte
}

// Service is the narrow Drive surface the tool and resource handlers depend
// on. The production implementation is Client; tests substitute fakes.
type Service interface {
	// ListFiles lists files matching the options and returns the next page token
	ListFiles(ctx context.Context, options *ListOptions) ([]*FileInfo, string, error)

	// GetFile retrieves metadata for a single file
	GetFile(ctx context.Context, fileID string) (*FileInfo, error)

	// ExportFile exports a Google Workspace file to the given MIME type
	ExportFile(ctx context.Context, fileID, mimeType string) ([]byte, error)

	// DownloadFile downloads the raw content of a non-Workspace file
	DownloadFile(ctx context.Context, fileID string) ([]byte, error)

	// DeleteFile permanently deletes a file
	DeleteFile(ctx context.Context, fileID string) error
}

// EscapeQueryTerm escapes user input for safe interpolation into a
// single-quoted Drive query string literal. Backslashes are escaped before
// quotes so that the escape characters themselves survive.
func EscapeQueryTerm(term string) string {
	escaped := strings.ReplaceAll(term, `\`, `\\`)
	return strings.ReplaceAll(escaped, `'`, `\'`)
}
