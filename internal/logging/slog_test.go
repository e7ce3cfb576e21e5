package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestErr(t *testing.T) {
	attr := Err(errors.New("boom"))
	if attr.Key != KeyError {
		t.Errorf("expected key %q, got %q", KeyError, attr.Key)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("expected value %q, got %q", "boom", attr.Value.String())
	}
}

func TestErrNil(t *testing.T) {
	attr := Err(nil)
	if attr.Key != "" {
		t.Errorf("expected empty key for nil error, got %q", attr.Key)
	}
	if attr.Value.Kind() != slog.KindGroup {
		t.Errorf("expected group kind for nil error, got %v", attr.Value.Kind())
	}
}

func TestAttributeHelpers(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want string
	}{
		{"operation", Operation("search"), KeyOperation, "search"},
		{"service", Service("drive"), KeyService, "drive"},
		{"account", Account("default"), KeyAccount, "default"},
		{"tool", Tool("read_sheets"), KeyTool, "read_sheets"},
		{"status", Status(StatusSuccess), KeyStatus, "success"},
		{"file_id", FileID("abc123"), KeyFileID, "abc123"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.attr.Key != tt.key {
				t.Errorf("expected key %q, got %q", tt.key, tt.attr.Key)
			}
			if tt.attr.Value.String() != tt.want {
				t.Errorf("expected value %q, got %q", tt.want, tt.attr.Value.String())
			}
		})
	}
}
