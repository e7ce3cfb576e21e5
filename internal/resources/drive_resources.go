package resources

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/Jadando/gdrive-sheets/internal/content"
	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/server"
)

const (
	// URIScheme is the locator prefix for Drive file resources. The file ID
	// follows the prefix directly.
	URIScheme = "gdrive:///"

	// listPageSize is the fixed page size for resource listings
	listPageSize = 10
)

// effectiveMIMEType returns the media type a file's content is delivered as:
// the export target for Workspace-native files, the declared type otherwise.
func effectiveMIMEType(mimeType string) string {
	if exportMime, native := content.ExportMimeType(mimeType); native {
		return exportMime
	}
	return mimeType
}

// List returns one page of Drive files as resource descriptors together with
// the cursor for the next page. An empty cursor return signals the end of the
// listing.
func List(ctx context.Context, svc gdrive.Service, cursor string) ([]mcp.Resource, string, error) {
	files, nextCursor, err := svc.ListFiles(ctx, &gdrive.ListOptions{
		PageSize:  listPageSize,
		PageToken: cursor,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to list files: %w", err)
	}

	result := make([]mcp.Resource, 0, len(files))
	for _, f := range files {
		result = append(result, mcp.NewResource(
			URIScheme+f.ID,
			f.Name,
			mcp.WithMIMEType(effectiveMIMEType(f.MimeType)),
		))
	}

	return result, nextCursor, nil
}

// Read resolves a resource URI to its file content. Workspace-native files
// are exported, other files downloaded; binary payloads are delivered as
// base64 blobs.
func Read(ctx context.Context, svc gdrive.Service, uri string) ([]mcp.ResourceContents, error) {
	fileID := strings.TrimPrefix(uri, URIScheme)
	if fileID == "" || fileID == uri {
		return nil, fmt.Errorf("invalid resource URI %q", uri)
	}

	fileContent, err := content.Read(ctx, svc, fileID)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileID, err)
	}

	if fileContent.IsText {
		return []mcp.ResourceContents{
			&mcp.TextResourceContents{
				URI:      uri,
				MIMEType: fileContent.MimeType,
				Text:     fileContent.Text,
			},
		}, nil
	}

	return []mcp.ResourceContents{
		&mcp.BlobResourceContents{
			URI:      uri,
			MIMEType: fileContent.MimeType,
			Blob:     fileContent.Blob,
		},
	}, nil
}

// listingEntry is the JSON shape of one file in the index resource
type listingEntry struct {
	URI      string `json:"uri"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
}

// RegisterDriveResources registers the Drive file resources with the MCP server:
// an index resource listing the first page of files, and a URI template for
// reading individual files.
func RegisterDriveResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	indexResource := mcp.NewResource(
		URIScheme,
		"Google Drive Files",
		mcp.WithResourceDescription("Listing of files in Google Drive"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(indexResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		svc := sc.DriveClient()
		if svc == nil {
			return nil, fmt.Errorf("no valid Google OAuth token found. Please authorize access first")
		}

		descriptors, nextCursor, err := List(ctx, svc, "")
		if err != nil {
			return nil, err
		}

		entries := make([]listingEntry, 0, len(descriptors))
		for _, d := range descriptors {
			entries = append(entries, listingEntry{
				URI:      d.URI,
				Name:     d.Name,
				MimeType: d.MIMEType,
			})
		}

		listing := struct {
			Files      []listingEntry `json:"files"`
			NextCursor string         `json:"nextCursor,omitempty"`
		}{
			Files:      entries,
			NextCursor: nextCursor,
		}

		data, err := json.MarshalIndent(listing, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal listing: %w", err)
		}

		return []mcp.ResourceContents{
			&mcp.TextResourceContents{
				URI:      request.Params.URI,
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	})

	fileTemplate := mcp.NewResourceTemplate(
		URIScheme+"{fileID}",
		"Google Drive File",
		mcp.WithTemplateDescription("Content of a Google Drive file. Workspace files are exported to a portable format."),
	)

	s.AddResourceTemplate(fileTemplate, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		svc := sc.DriveClient()
		if svc == nil {
			return nil, fmt.Errorf("no valid Google OAuth token found. Please authorize access first")
		}

		return Read(ctx, svc, request.Params.URI)
	})

	return nil
}
