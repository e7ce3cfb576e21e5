package drive_tools

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
)

// fakeDriveService implements gdrive.Service for handler-level tests
type fakeDriveService struct {
	files       []*gdrive.FileInfo
	listQueries []string
	deleted     []string
	calls       int
}

func (f *fakeDriveService) ListFiles(ctx context.Context, options *gdrive.ListOptions) ([]*gdrive.FileInfo, string, error) {
	f.calls++
	if options != nil {
		f.listQueries = append(f.listQueries, options.Query)
	}
	return f.files, "", nil
}

func (f *fakeDriveService) GetFile(ctx context.Context, fileID string) (*gdrive.FileInfo, error) {
	f.calls++
	for _, file := range f.files {
		if file.ID == fileID {
			return file, nil
		}
	}
	return nil, fmt.Errorf("file not found: %s", fileID)
}

func (f *fakeDriveService) ExportFile(ctx context.Context, fileID, mimeType string) ([]byte, error) {
	f.calls++
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeDriveService) DownloadFile(ctx context.Context, fileID string) ([]byte, error) {
	f.calls++
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeDriveService) DeleteFile(ctx context.Context, fileID string) error {
	f.calls++
	f.deleted = append(f.deleted, fileID)
	return nil
}

func TestBuildSearchQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  string
	}{
		{
			name:  "plain query",
			query: "quarterly report",
			want:  "fullText contains 'quarterly report'",
		},
		{
			name:  "query with single quote",
			query: "O'Brien",
			want:  `fullText contains 'O\'Brien'`,
		},
		{
			name:  "query with backslash",
			query: `a\b`,
			want:  `fullText contains 'a\\b'`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildSearchQuery(tt.query); got != tt.want {
				t.Errorf("buildSearchQuery(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchFiles(t *testing.T) {
	svc := &fakeDriveService{
		files: []*gdrive.FileInfo{
			{ID: "1", Name: "Budget", MimeType: "application/vnd.google-apps.spreadsheet"},
			{ID: "2", Name: "notes.txt", MimeType: "text/plain"},
		},
	}

	listing, err := searchFiles(context.Background(), svc, "budget", "", 0)
	if err != nil {
		t.Fatalf("searchFiles() error: %v", err)
	}

	if !strings.HasPrefix(listing, "Found 2 files:") {
		t.Errorf("listing should start with count header, got %q", listing)
	}
	if !strings.Contains(listing, "Budget (application/vnd.google-apps.spreadsheet)") {
		t.Errorf("listing should contain the spreadsheet entry, got %q", listing)
	}
	if !strings.Contains(listing, "notes.txt (text/plain)") {
		t.Errorf("listing should contain the text file entry, got %q", listing)
	}

	if len(svc.listQueries) != 1 || svc.listQueries[0] != "fullText contains 'budget'" {
		t.Errorf("unexpected list queries: %v", svc.listQueries)
	}
}

func TestSearchFilesEmpty(t *testing.T) {
	svc := &fakeDriveService{}

	listing, err := searchFiles(context.Background(), svc, "nothing", "", 0)
	if err != nil {
		t.Fatalf("searchFiles() error: %v", err)
	}
	if !strings.HasPrefix(listing, "Found 0 files:") {
		t.Errorf("empty search should still report a count, got %q", listing)
	}
}

func TestDeleteDriveFileRequiresIdentifier(t *testing.T) {
	svc := &fakeDriveService{}

	_, err := deleteDriveFile(context.Background(), svc, "", "")
	if err == nil {
		t.Fatal("expected error when neither fileID nor fileName is given")
	}
	if svc.calls != 0 {
		t.Errorf("validation failure must not reach the API, got %d calls", svc.calls)
	}
}

func TestDeleteDriveFileByID(t *testing.T) {
	svc := &fakeDriveService{}

	msg, err := deleteDriveFile(context.Background(), svc, "abc123", "")
	if err != nil {
		t.Fatalf("deleteDriveFile() error: %v", err)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "abc123" {
		t.Errorf("expected abc123 to be deleted, got %v", svc.deleted)
	}
	if !strings.Contains(msg, "abc123") {
		t.Errorf("message should mention the file ID, got %q", msg)
	}
}

func TestDeleteDriveFileByName(t *testing.T) {
	svc := &fakeDriveService{
		files: []*gdrive.FileInfo{
			{ID: "f42", Name: "old-report"},
		},
	}

	msg, err := deleteDriveFile(context.Background(), svc, "", "old-report")
	if err != nil {
		t.Fatalf("deleteDriveFile() error: %v", err)
	}
	if len(svc.deleted) != 1 || svc.deleted[0] != "f42" {
		t.Errorf("expected f42 to be deleted, got %v", svc.deleted)
	}
	if !strings.Contains(msg, "old-report") {
		t.Errorf("message should mention the file name, got %q", msg)
	}
	if len(svc.listQueries) != 1 || svc.listQueries[0] != "name = 'old-report'" {
		t.Errorf("unexpected lookup query: %v", svc.listQueries)
	}
}

func TestDeleteDriveFileByNameNotFound(t *testing.T) {
	svc := &fakeDriveService{}

	_, err := deleteDriveFile(context.Background(), svc, "", "missing")
	if err == nil {
		t.Fatal("expected error for unknown file name")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Errorf("error should mention the file name, got %v", err)
	}
	if len(svc.deleted) != 0 {
		t.Errorf("nothing should be deleted, got %v", svc.deleted)
	}
}

func TestResolveFileByNameEscapesQuotes(t *testing.T) {
	svc := &fakeDriveService{
		files: []*gdrive.FileInfo{
			{ID: "f1", Name: "O'Brien's list"},
		},
	}

	if _, err := resolveFileByName(context.Background(), svc, "O'Brien's list"); err != nil {
		t.Fatalf("resolveFileByName() error: %v", err)
	}
	want := `name = 'O\'Brien\'s list'`
	if len(svc.listQueries) != 1 || svc.listQueries[0] != want {
		t.Errorf("lookup query = %v, want %q", svc.listQueries, want)
	}
}
