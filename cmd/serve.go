package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/Jadando/gdrive-sheets/internal/instrumentation"
	"github.com/Jadando/gdrive-sheets/internal/resources"
	"github.com/Jadando/gdrive-sheets/internal/server"
	"github.com/Jadando/gdrive-sheets/internal/tools/drive_tools"
	"github.com/Jadando/gdrive-sheets/internal/tools/google_tools"
	"github.com/Jadando/gdrive-sheets/internal/tools/sheets_tools"
)

// MetricsConfig holds configuration for the metrics server.
type MetricsConfig struct {
	Enabled bool
	Addr    string
}

func newServeCmd() *cobra.Command {
	var transport string
	var httpAddr string
	var debugMode bool
	var metricsEnabled bool
	var metricsAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the MCP server",
		Long: `Start the MCP server to expose Google Drive and Google Sheets
operations as tools and resources.

The server supports two transport types:
  - stdio: communicate over stdin/stdout (default, for local MCP clients)
  - streamable-http: listen on an HTTP port

Google API access requires OAuth credentials. Set GOOGLE_CLIENT_ID and
GOOGLE_CLIENT_SECRET, then run 'gdrive-sheets auth' to obtain a token.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(transport, httpAddr, debugMode, MetricsConfig{
				Enabled: metricsEnabled,
				Addr:    metricsAddr,
			})
		},
	}

	cmd.Flags().StringVarP(&transport, "transport", "t", "stdio", "Transport type (stdio or streamable-http)")
	cmd.Flags().StringVar(&httpAddr, "http-addr", ":8080", "HTTP server address (used with streamable-http transport)")
	cmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	// Metrics server flags
	cmd.Flags().BoolVar(&metricsEnabled, "metrics-enabled", true, "Enable the metrics server on a dedicated port. Can also use METRICS_ENABLED env var.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", server.DefaultMetricsAddr, "Metrics server address. Can also use METRICS_ADDR env var.")

	return cmd
}

func runServe(transport string, httpAddr string, debugMode bool, metricsConfig MetricsConfig) error {
	// Setup graceful shutdown
	shutdownCtx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if debugMode {
		// Log to stderr so stdio transport framing is not disturbed
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	// Load metrics config from environment if not set via flags
	if !metricsConfig.Enabled {
		if os.Getenv("METRICS_ENABLED") == "true" {
			metricsConfig.Enabled = true
		}
	}
	if metricsConfig.Addr == "" || metricsConfig.Addr == server.DefaultMetricsAddr {
		if addr := os.Getenv("METRICS_ADDR"); addr != "" {
			metricsConfig.Addr = addr
		}
	}

	// Initialize instrumentation provider
	instrConfig := instrumentation.DefaultConfig()
	instrConfig.ServiceVersion = version
	if err := instrConfig.Validate(); err != nil {
		return fmt.Errorf("invalid instrumentation config: %w", err)
	}

	provider, err := instrumentation.NewProvider(shutdownCtx, instrConfig)
	if err != nil {
		return fmt.Errorf("failed to create instrumentation provider: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(shutdownCtx); err != nil {
			if transport != "stdio" {
				log.Printf("Error during instrumentation shutdown: %v", err)
			}
		}
	}()

	// Start metrics server if enabled and not in stdio mode
	var metricsServer *server.MetricsServer
	if transport != "stdio" && metricsConfig.Enabled && provider.Enabled() {
		var err error
		metricsServer, err = server.NewMetricsServer(server.MetricsServerConfig{
			Addr:                    metricsConfig.Addr,
			Enabled:                 true,
			InstrumentationProvider: provider,
		})
		if err != nil {
			return fmt.Errorf("failed to create metrics server: %w", err)
		}

		// Use ready channel to confirm metrics server started successfully
		metricsReady := make(chan struct{})
		metricsErr := make(chan error, 1)
		go func() {
			if err := metricsServer.StartWithReadySignal(metricsReady); err != nil && err != http.ErrServerClosed {
				metricsErr <- err
			}
			close(metricsErr)
		}()

		// Wait for metrics server to be ready or fail
		select {
		case <-metricsReady:
			log.Printf("Metrics server started on %s", metricsServer.Addr())
		case err := <-metricsErr:
			return fmt.Errorf("metrics server failed to start: %w", err)
		case <-time.After(5 * time.Second):
			return fmt.Errorf("metrics server startup timed out")
		}
	}

	// Create server context
	serverContext, err := server.NewServerContext(shutdownCtx)
	if err != nil {
		return fmt.Errorf("failed to create server context: %w", err)
	}

	// Set metrics on server context for tool instrumentation
	if provider.Enabled() {
		serverContext.SetMetrics(provider.Metrics())
	}
	defer func() {
		// Shutdown metrics server first
		if metricsServer != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := metricsServer.Shutdown(shutdownCtx); err != nil {
				log.Printf("Error during metrics server shutdown: %v", err)
			}
		}
		if err := serverContext.Shutdown(); err != nil {
			if transport != "stdio" {
				log.Printf("Error during server context shutdown: %v", err)
			}
		}
	}()

	// Create MCP server
	mcpSrv := mcpserver.NewMCPServer("gdrive-sheets", version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithResourceCapabilities(false, false), // Subscribe and listChanged
	)

	// Register all tools and resources
	if err := registerAllTools(mcpSrv, serverContext); err != nil {
		return err
	}

	// Start the appropriate server based on transport type
	switch transport {
	case "stdio":
		return runStdioServer(mcpSrv)
	case "streamable-http":
		fmt.Printf("Starting gdrive-sheets MCP server with %s transport...\n", transport)
		return runStreamableHTTPServer(shutdownCtx, mcpSrv, httpAddr)
	default:
		return fmt.Errorf("unsupported transport type: %s (supported: stdio, streamable-http)", transport)
	}
}

func runStdioServer(mcpSrv *mcpserver.MCPServer) error {
	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := mcpserver.ServeStdio(mcpSrv); err != nil {
			serverDone <- err
		}
	}()

	err := <-serverDone
	if err != nil {
		return fmt.Errorf("server stopped with error: %w", err)
	}
	return nil
}

func runStreamableHTTPServer(ctx context.Context, mcpSrv *mcpserver.MCPServer, addr string) error {
	httpSrv := mcpserver.NewStreamableHTTPServer(mcpSrv)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		log.Printf("HTTP server listening on %s", addr)
		if err := httpSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverDone <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.DefaultShutdownTimeout)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error during HTTP server shutdown: %w", err)
		}
		return nil
	case err := <-serverDone:
		if err != nil {
			return fmt.Errorf("server stopped with error: %w", err)
		}
		return nil
	}
}

// registerAllTools registers all MCP tools and resources
func registerAllTools(mcpSrv *mcpserver.MCPServer, ctx *server.ServerContext) error {
	type toolRegistration struct {
		name     string
		register func() error
	}

	registrations := []toolRegistration{
		{
			name: "Google Auth",
			register: func() error {
				return google_tools.RegisterGoogleTools(mcpSrv, ctx)
			},
		},
		{
			name: "Drive",
			register: func() error {
				return drive_tools.RegisterDriveTools(mcpSrv, ctx)
			},
		},
		{
			name: "Sheets",
			register: func() error {
				return sheets_tools.RegisterSheetsTools(mcpSrv, ctx)
			},
		},
		{
			name: "Drive Resources",
			register: func() error {
				return resources.RegisterDriveResources(mcpSrv, ctx)
			},
		},
	}

	for _, reg := range registrations {
		if err := reg.register(); err != nil {
			return fmt.Errorf("failed to register %s: %w", reg.name, err)
		}
	}

	return nil
}
