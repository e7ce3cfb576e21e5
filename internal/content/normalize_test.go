package content

import (
	"context"
	"encoding/base64"
	"fmt"
	"testing"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
)

// fakeDriveService implements gdrive.Service for normalization tests
type fakeDriveService struct {
	files     map[string]*gdrive.FileInfo
	contents  map[string][]byte
	exports   int
	downloads int
}

func (f *fakeDriveService) ListFiles(ctx context.Context, options *gdrive.ListOptions) ([]*gdrive.FileInfo, string, error) {
	return nil, "", nil
}

func (f *fakeDriveService) GetFile(ctx context.Context, fileID string) (*gdrive.FileInfo, error) {
	info, ok := f.files[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	return info, nil
}

func (f *fakeDriveService) ExportFile(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	f.exports++
	data, ok := f.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	return data, nil
}

func (f *fakeDriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	f.downloads++
	data, ok := f.contents[fileID]
	if !ok {
		return nil, fmt.Errorf("file not found: %s", fileID)
	}
	return data, nil
}

func (f *fakeDriveService) DeleteFile(ctx context.Context, fileID string) error {
	return nil
}

func TestExportMimeType(t *testing.T) {
	tests := []struct {
		source     string
		wantExport string
		wantNative bool
	}{
		{"application/vnd.google-apps.document", "text/markdown", true},
		{"application/vnd.google-apps.spreadsheet", "text/csv", true},
		{"application/vnd.google-apps.presentation", "text/plain", true},
		{"application/vnd.google-apps.drawing", "image/png", true},
		{"application/vnd.google-apps.form", "text/plain", true},
		{"application/vnd.google-apps.folder", "text/plain", true},
		{"application/pdf", "", false},
		{"text/plain", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			export, native := ExportMimeType(tt.source)
			if native != tt.wantNative {
				t.Errorf("ExportMimeType(%q) native = %v, want %v", tt.source, native, tt.wantNative)
			}
			if export != tt.wantExport {
				t.Errorf("ExportMimeType(%q) = %q, want %q", tt.source, export, tt.wantExport)
			}
		})
	}
}

func TestIsTextual(t *testing.T) {
	textual := []string{"text/plain", "text/csv", "text/markdown", "application/json"}
	for _, m := range textual {
		if !IsTextual(m) {
			t.Errorf("IsTextual(%q) = false, want true", m)
		}
	}

	binary := []string{"image/png", "application/pdf", "application/octet-stream", ""}
	for _, m := range binary {
		if IsTextual(m) {
			t.Errorf("IsTextual(%q) = true, want false", m)
		}
	}
}

func TestReadExportsWorkspaceDocument(t *testing.T) {
	svc := &fakeDriveService{
		files: map[string]*gdrive.FileInfo{
			"doc1": {ID: "doc1", Name: "Notes", MimeType: "application/vnd.google-apps.document"},
		},
		contents: map[string][]byte{
			"doc1": []byte("# Notes\n\nhello"),
		},
	}

	got, err := Read(context.Background(), svc, "doc1")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if svc.exports != 1 || svc.downloads != 0 {
		t.Errorf("expected one export and no downloads, got %d exports, %d downloads", svc.exports, svc.downloads)
	}
	if got.MimeType != "text/markdown" {
		t.Errorf("MimeType = %q, want text/markdown", got.MimeType)
	}
	if !got.IsText || got.Text != "# Notes\n\nhello" {
		t.Errorf("unexpected text content: %+v", got)
	}
}

func TestReadExportsDrawingAsBlob(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}
	svc := &fakeDriveService{
		files: map[string]*gdrive.FileInfo{
			"draw1": {ID: "draw1", Name: "Diagram", MimeType: "application/vnd.google-apps.drawing"},
		},
		contents: map[string][]byte{
			"draw1": png,
		},
	}

	got, err := Read(context.Background(), svc, "draw1")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.MimeType != "image/png" {
		t.Errorf("MimeType = %q, want image/png", got.MimeType)
	}
	if got.IsText {
		t.Error("drawing export should be delivered as a blob")
	}
	if got.Blob != base64.StdEncoding.EncodeToString(png) {
		t.Errorf("Blob = %q, want base64 of PNG bytes", got.Blob)
	}
}

func TestReadDownloadsPlainFile(t *testing.T) {
	svc := &fakeDriveService{
		files: map[string]*gdrive.FileInfo{
			"cfg": {ID: "cfg", Name: "config.json", MimeType: "application/json"},
		},
		contents: map[string][]byte{
			"cfg": []byte(`{"a":1}`),
		},
	}

	got, err := Read(context.Background(), svc, "cfg")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if svc.downloads != 1 || svc.exports != 0 {
		t.Errorf("expected one download and no exports, got %d downloads, %d exports", svc.downloads, svc.exports)
	}
	if !got.IsText || got.Text != `{"a":1}` {
		t.Errorf("unexpected content: %+v", got)
	}
}

func TestReadDownloadsBinaryFile(t *testing.T) {
	pdf := []byte("%PDF-1.4 fake")
	svc := &fakeDriveService{
		files: map[string]*gdrive.FileInfo{
			"pdf1": {ID: "pdf1", Name: "report.pdf", MimeType: "application/pdf"},
		},
		contents: map[string][]byte{
			"pdf1": pdf,
		},
	}

	got, err := Read(context.Background(), svc, "pdf1")
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got.IsText {
		t.Error("PDF should be delivered as a blob")
	}
	if got.MimeType != "application/pdf" {
		t.Errorf("MimeType = %q, want application/pdf", got.MimeType)
	}
	if got.Blob != base64.StdEncoding.EncodeToString(pdf) {
		t.Error("Blob should be base64 of the raw bytes")
	}
}

func TestReadUnknownFile(t *testing.T) {
	svc := &fakeDriveService{files: map[string]*gdrive.FileInfo{}}
	if _, err := Read(context.Background(), svc, "missing"); err == nil {
		t.Error("Read() should fail for an unknown file")
	}
}
