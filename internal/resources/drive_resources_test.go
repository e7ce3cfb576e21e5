package resources

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
)

// fakeDriveService implements gdrive.Service for resource tests
type fakeDriveService struct {
	files      []*gdrive.FileInfo
	contents   map[string][]byte
	nextToken  string
	pageSizes  []int64
	pageTokens []string
}

func (f *fakeDriveService) ListFiles(ctx context.Context, options *gdrive.ListOptions) ([]*gdrive.FileInfo, string, error) {
	if options != nil {
		f.pageSizes = append(f.pageSizes, options.PageSize)
		f.pageTokens = append(f.pageTokens, options.PageToken)
	}
	return f.files, f.nextToken, nil
}

func (f *fakeDriveService) GetFile(ctx context.Context, fileID string) (*gdrive.FileInfo, error) {
	for _, file := range f.files {
		if file.ID == fileID {
			return file, nil
		}
	}
	return nil, fmt.Errorf("file not found: %s", fileID)
}

func (f *fakeDriveService) ExportFile(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	data, ok := f.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	return data, nil
}

func (f *fakeDriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	data, ok := f.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	return data, nil
}

func (f *fakeDriveService) DeleteFile(ctx context.Context, fileID string) error {
	return nil
}

func TestListBuildsDescriptors(t *testing.T) {
	svc := &fakeDriveService{
		files: []*gdrive.FileInfo{
			{ID: "doc1", Name: "Notes", MimeType: "application/vnd.google-apps.document"},
			{ID: "pdf1", Name: "report.pdf", MimeType: "application/pdf"},
		},
		nextToken: "cursor-2",
	}

	descriptors, next, err := List(context.Background(), svc, "")
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if next != "cursor-2" {
		t.Errorf("next cursor = %q, want cursor-2", next)
	}
	if len(descriptors) != 2 {
		t.Fatalf("expected 2 descriptors, got %d", len(descriptors))
	}

	if descriptors[0].URI != "gdrive:///doc1" {
		t.Errorf("URI = %q, want gdrive:///doc1", descriptors[0].URI)
	}
	if descriptors[0].Name != "Notes" {
		t.Errorf("Name = %q, want Notes", descriptors[0].Name)
	}
	// Workspace files advertise their export format
	if descriptors[0].MIMEType != "text/markdown" {
		t.Errorf("MIMEType = %q, want text/markdown", descriptors[0].MIMEType)
	}
	if descriptors[1].MIMEType != "application/pdf" {
		t.Errorf("MIMEType = %q, want application/pdf", descriptors[1].MIMEType)
	}

	if len(svc.pageSizes) != 1 || svc.pageSizes[0] != listPageSize {
		t.Errorf("expected fixed page size %d, got %v", listPageSize, svc.pageSizes)
	}
}

func TestListPassesCursor(t *testing.T) {
	svc := &fakeDriveService{}

	if _, _, err := List(context.Background(), svc, "page-2"); err != nil {
		t.Fatalf("List() error: %v", err)
	}
	if len(svc.pageTokens) != 1 || svc.pageTokens[0] != "page-2" {
		t.Errorf("cursor should be forwarded as page token, got %v", svc.pageTokens)
	}
}

func TestReadTextFile(t *testing.T) {
	svc := &fakeDriveService{
		files: []*gdrive.FileInfo{
			{ID: "doc1", Name: "Notes", MimeType: "application/vnd.google-apps.document"},
		},
		contents: map[string][]byte{
			"doc1": []byte("# Notes"),
		},
	}

	contents, err := Read(context.Background(), svc, "gdrive:///doc1")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("expected exactly one content item, got %d", len(contents))
	}

	text, ok := contents[0].(*mcp.TextResourceContents)
	if !ok {
		t.Fatalf("expected text contents, got %T", contents[0])
	}
	if text.URI != "gdrive:///doc1" {
		t.Errorf("URI = %q, want gdrive:///doc1", text.URI)
	}
	if text.MIMEType != "text/markdown" {
		t.Errorf("MIMEType = %q, want text/markdown", text.MIMEType)
	}
	if text.Text != "# Notes" {
		t.Errorf("Text = %q, want # Notes", text.Text)
	}
}

func TestReadBinaryFile(t *testing.T) {
	pdf := []byte("%PDF-1.4")
	svc := &fakeDriveService{
		files: []*gdrive.FileInfo{
			{ID: "pdf1", Name: "report.pdf", MimeType: "application/pdf"},
		},
		contents: map[string][]byte{
			"pdf1": pdf,
		},
	}

	contents, err := Read(context.Background(), svc, "gdrive:///pdf1")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	blob, ok := contents[0].(*mcp.BlobResourceContents)
	if !ok {
		t.Fatalf("expected blob contents, got %T", contents[0])
	}
	if blob.MIMEType != "application/pdf" {
		t.Errorf("MIMEType = %q, want application/pdf", blob.MIMEType)
	}
	if blob.Blob != base64.StdEncoding.EncodeToString(pdf) {
		t.Error("Blob should be base64 of the raw bytes")
	}
}

func TestReadRejectsForeignURI(t *testing.T) {
	svc := &fakeDriveService{}

	if _, err := Read(context.Background(), svc, "other://abc"); err == nil {
		t.Error("expected error for URI with wrong scheme")
	}
	if _, err := Read(context.Background(), svc, URIScheme); err == nil {
		t.Error("expected error for URI without file ID")
	}
}
