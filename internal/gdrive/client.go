package gdrive

import (
	"context"
	"fmt"
	"io"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"github.com/Jadando/gdrive-sheets/internal/google"
)

// Client wraps the Google Drive API service
type Client struct {
	service *drive.Service
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

// NewClientForAccount creates a new Google Drive client with OAuth2 authentication
// for a specific account. Returns an error if no valid token exists - use
// HasTokenForAccount() to check first.
func NewClientForAccount(ctx context.Context, account string) (*Client, error) {
	client, err := google.GetHTTPClientForAccount(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s. Please authorize access first: %w", account, err)
	}

	driveService, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create Drive service: %w", err)
	}

	return &Client{
		service: driveService,
		account: account,
	}, nil
}

// NewClient creates a new Google Drive client for the default account
func NewClient(ctx context.Context) (*Client, error) {
	return NewClientForAccount(ctx, google.DefaultAccount)
}

// ListFiles lists files in Google Drive with optional filtering
func (c *Client) ListFiles(ctx context.Context, options *ListOptions) ([]*FileInfo, string, error) {
	call := c.service.Files.List().
		Context(ctx).
		Fields("nextPageToken, files(id, name, mimeType, size, modifiedTime)")

	if options != nil {
		if options.Query != "" {
			call = call.Q(options.Query)
		}
		if options.PageSize > 0 {
			call = call.PageSize(options.PageSize)
		}
		if options.PageToken != "" {
			call = call.PageToken(options.PageToken)
		}
	}

	fileList, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("failed to list files: %w", err)
	}

	files := make([]*FileInfo, len(fileList.Files))
	for i, f := range fileList.Files {
		files[i] = convertToFileInfo(f)
	}

	return files, fileList.NextPageToken, nil
}

// GetFile retrieves metadata for a specific file
func (c *Client) GetFile(ctx context.Context, fileID string) (*FileInfo, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	file, err := c.service.Files.Get(fileID).
		Context(ctx).
		Fields("id, name, mimeType, size, modifiedTime").
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get file %s: %w", fileID, err)
	}

	return convertToFileInfo(file), nil
}

// ExportFile exports a Google Workspace file (Docs, Sheets, Slides, Drawings)
// to the requested MIME type
func (c *Client) ExportFile(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}
	if mimeType == "" {
		return nil, fmt.Errorf("export mimeType is required")
	}

	resp, err := c.service.Files.Export(fileID, mimeType).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to export file %s as %s: %w", fileID, mimeType, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read exported content of %s: %w", fileID, err)
	}

	return data, nil
}

// DownloadFile downloads the raw content of a non-Workspace file
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	if fileID == "" {
		return nil, fmt.Errorf("fileID is required")
	}

	resp, err := c.service.Files.Get(fileID).
		Context(ctx).
		Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download file %s: %w", fileID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read content of %s: %w", fileID, err)
	}

	return data, nil
}

// DeleteFile permanently deletes a file from Google Drive
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	if fileID == "" {
		return fmt.Errorf("fileID is required")
	}

	err := c.service.Files.Delete(fileID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fileID, err)
	}

	return nil
}

// convertToFileInfo converts a Drive API File to our FileInfo type
func convertToFileInfo(f *drive.File) *FileInfo {
	return &FileInfo{
		ID:           f.Id,
		Name:         f.Name,
		MimeType:     f.MimeType,
		Size:         f.Size,
		ModifiedTime: f.ModifiedTime,
	}
}
