package common

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Jadando/gdrive-sheets/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()
	sc, err := server.NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })
	return sc
}

func TestInstrumentedToolHandlerPassthroughWithoutMetrics(t *testing.T) {
	sc := newTestServerContext(t)

	called := false
	handler := InstrumentedToolHandler("test_tool", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		called = true
		return mcp.NewToolResultText("ok"), nil
	})

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Error("expected wrapped handler to be called")
	}
	if result == nil || result.IsError {
		t.Error("expected successful result")
	}
}

func TestInstrumentedToolHandlerPropagatesError(t *testing.T) {
	sc := newTestServerContext(t)

	wantErr := errors.New("boom")
	handler := InstrumentedToolHandler("test_tool", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return nil, wantErr
	})

	_, err := handler(context.Background(), mcp.CallToolRequest{})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped error to propagate, got %v", err)
	}
}

func TestInstrumentedToolHandlerWithServicePassthrough(t *testing.T) {
	sc := newTestServerContext(t)

	handler := InstrumentedToolHandlerWithService("test_tool", "drive", "list", sc, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultError("bad input"), nil
	})

	result, err := handler(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("expected error result to pass through unchanged")
	}
}
