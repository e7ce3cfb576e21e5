package google

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestParseTokenFile(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		wantAccess  string
		wantRefresh string
		wantErr     bool
	}{
		{
			name:        "valid token",
			data:        "access-token refresh-token",
			wantAccess:  "access-token",
			wantRefresh: "refresh-token",
		},
		{
			name:        "trailing newline",
			data:        "access refresh\n",
			wantAccess:  "access",
			wantRefresh: "refresh",
		},
		{
			name:    "empty file",
			data:    "",
			wantErr: true,
		},
		{
			name:    "single field",
			data:    "access-only",
			wantErr: true,
		},
		{
			name:    "too many fields",
			data:    "a b c",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			access, refresh, err := parseTokenFile(tt.data)
			if tt.wantErr {
				if err == nil {
					t.Error("parseTokenFile() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("parseTokenFile() unexpected error: %v", err)
			}
			if access != tt.wantAccess {
				t.Errorf("access token = %q, want %q", access, tt.wantAccess)
			}
			if refresh != tt.wantRefresh {
				t.Errorf("refresh token = %q, want %q", refresh, tt.wantRefresh)
			}
		})
	}
}

func TestTokenFileForAccount(t *testing.T) {
	defaultFile := tokenFileForAccount(DefaultAccount)
	if filepath.Base(defaultFile) != "google.token" {
		t.Errorf("default token file = %q, want base google.token", defaultFile)
	}

	emptyFile := tokenFileForAccount("")
	if emptyFile != defaultFile {
		t.Errorf("empty account should map to default token file, got %q", emptyFile)
	}

	workFile := tokenFileForAccount("work")
	if filepath.Base(workFile) != "google-work.token" {
		t.Errorf("work token file = %q, want base google-work.token", workFile)
	}
	if !strings.Contains(workFile, cacheDirName) {
		t.Errorf("token file %q should live under the %s cache directory", workFile, cacheDirName)
	}
}

func TestGetAuthenticationErrorMessage(t *testing.T) {
	for _, account := range []string{"default", "work"} {
		msg := GetAuthenticationErrorMessage(account)
		if msg == "" {
			t.Error("GetAuthenticationErrorMessage() should return non-empty message")
		}
		if !strings.Contains(msg, account) {
			t.Errorf("GetAuthenticationErrorMessage() should mention account %s", account)
		}
	}
}

func TestHasTokenForAccount(t *testing.T) {
	// An account name that cannot have a token file should report false
	if HasTokenForAccount("nonexistent-test-account-xyz") {
		t.Error("HasTokenForAccount() should return false for an account without a token")
	}
}
