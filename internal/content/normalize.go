package content

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
)

const workspacePrefix = "application/vnd.google-apps."

// Content is the normalized representation of a Drive file's content.
// Exactly one of Text and Blob is populated, selected by IsText.
type Content struct {
	// MimeType is the effective MIME type after any export conversion
	MimeType string
	// Text holds the content for textual MIME types
	Text string
	// Blob holds base64-encoded content for binary MIME types
	Blob string
	// IsText reports whether Text is the populated field
	IsText bool
}

// ExportMimeType returns the export target for a Google Workspace MIME type
// and whether the source type is a Workspace-native type at all.
func ExportMimeType(sourceMimeType string) (string, bool) {
	if !strings.HasPrefix(sourceMimeType, workspacePrefix) {
		return "", false
	}
	switch sourceMimeType {
	case "application/vnd.google-apps.document":
		return "text/markdown", true
	case "application/vnd.google-apps.spreadsheet":
		return "text/csv", true
	case "application/vnd.google-apps.presentation":
		return "text/plain", true
	case "application/vnd.google-apps.drawing":
		return "image/png", true
	default:
		return "text/plain", true
	}
}

// IsTextual reports whether content of the given MIME type is delivered as
// text rather than a base64 blob.
func IsTextual(mimeType string) bool {
	if strings.HasPrefix(mimeType, "text/") {
		return true
	}
	return mimeType == "application/json"
}

// Read fetches a file's content and normalizes it. Workspace-native files are
// exported to a portable format; other files are downloaded as-is and encoded
// according to their MIME type.
func Read(ctx context.Context, svc gdrive.Service, fileID string) (*Content, error) {
	info, err := svc.GetFile(ctx, fileID)
	if err != nil {
		return nil, err
	}

	if exportMime, native := ExportMimeType(info.MimeType); native {
		data, err := svc.ExportFile(ctx, fileID, exportMime)
		if err != nil {
			return nil, err
		}
		return normalize(exportMime, data), nil
	}

	data, err := svc.DownloadFile(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return normalize(info.MimeType, data), nil
}

func normalize(mimeType string, data []byte) *Content {
	if IsTextual(mimeType) {
		return &Content{
			MimeType: mimeType,
			Text:     string(data),
			IsText:   true,
		}
	}
	return &Content{
		MimeType: mimeType,
		Blob:     base64.StdEncoding.EncodeToString(data),
	}
}
