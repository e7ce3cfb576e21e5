package cmd

import (
	"testing"
)

func TestServeCmdFlagDefaults(t *testing.T) {
	cmd := newServeCmd()

	tests := []struct {
		flag     string
		expected string
	}{
		{"transport", "stdio"},
		{"http-addr", ":8080"},
		{"debug", "false"},
		{"metrics-enabled", "true"},
		{"metrics-addr", ":9090"},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			f := cmd.Flags().Lookup(tt.flag)
			if f == nil {
				t.Fatalf("flag %q not registered", tt.flag)
			}
			if f.DefValue != tt.expected {
				t.Errorf("flag %q default = %q, want %q", tt.flag, f.DefValue, tt.expected)
			}
		})
	}
}

func TestAuthCmdRejectsExtraArgs(t *testing.T) {
	cmd := newAuthCmd()

	if err := cmd.Args(cmd, []string{"code1", "code2"}); err == nil {
		t.Error("expected error for more than one positional argument")
	}
	if err := cmd.Args(cmd, []string{"code1"}); err != nil {
		t.Errorf("unexpected error for single argument: %v", err)
	}
	if err := cmd.Args(cmd, nil); err != nil {
		t.Errorf("unexpected error for no arguments: %v", err)
	}
}

func TestRunServeRejectsUnknownTransport(t *testing.T) {
	err := runServe("carrier-pigeon", ":8080", false, MetricsConfig{})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
}
