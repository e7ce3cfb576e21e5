package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Jadando/gdrive-sheets/internal/gdrive"
	"github.com/Jadando/gdrive-sheets/internal/google"
	"github.com/Jadando/gdrive-sheets/internal/gsheets"
	"github.com/Jadando/gdrive-sheets/internal/instrumentation"
	"github.com/Jadando/gdrive-sheets/internal/logging"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx           context.Context
	cancel        context.CancelFunc
	driveClients  map[string]gdrive.Service  // Maps account name to Drive client
	sheetsClients map[string]gsheets.Service // Maps account name to Sheets client
	tokenProvider google.TokenProvider
	metrics       *instrumentation.Metrics
	mu            sync.RWMutex
	shutdown      bool
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:           shutdownCtx,
		cancel:        cancel,
		driveClients:  make(map[string]gdrive.Service),
		sheetsClients: make(map[string]gsheets.Service),
		tokenProvider: google.NewFileTokenProvider(),
	}

	// Try to create default clients, but don't fail if the token is missing.
	// Clients are lazily initialized when first needed.
	if google.HasToken() {
		if client, err := gdrive.NewClient(shutdownCtx); err != nil {
			slog.Warn("failed to create Drive client for default account", logging.Err(err))
		} else {
			sc.driveClients[google.DefaultAccount] = client
		}
		if client, err := gsheets.NewClient(shutdownCtx); err != nil {
			slog.Warn("failed to create Sheets client for default account", logging.Err(err))
		} else {
			sc.sheetsClients[google.DefaultAccount] = client
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

// DriveClientForAccount returns the Drive client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) DriveClientForAccount(account string) gdrive.Service {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.driveClients[account]; ok {
		return client
	}

	if !sc.tokenProvider.HasTokenForAccount(account) {
		return nil
	}

	client, err := gdrive.NewClientForAccount(sc.ctx, account)
	if err != nil {
		slog.Warn("failed to create Drive client", logging.Account(account), logging.Err(err))
		return nil
	}

	sc.driveClients[account] = client
	return client
}

// DriveClient returns the Drive client for the default account
func (sc *ServerContext) DriveClient() gdrive.Service {
	return sc.DriveClientForAccount(google.DefaultAccount)
}

// SetDriveClientForAccount sets the Drive client for a specific account
func (sc *ServerContext) SetDriveClientForAccount(account string, client gdrive.Service) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.driveClients[account] = client
}

// SheetsClientForAccount returns the Sheets client for a specific account.
// Creates and caches the client if it doesn't exist yet.
// Returns nil if the account has no token.
func (sc *ServerContext) SheetsClientForAccount(account string) gsheets.Service {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if client, ok := sc.sheetsClients[account]; ok {
		return client
	}

	if !sc.tokenProvider.HasTokenForAccount(account) {
		return nil
	}

	client, err := gsheets.NewClientForAccount(sc.ctx, account)
	if err != nil {
		slog.Warn("failed to create Sheets client", logging.Account(account), logging.Err(err))
		return nil
	}

	sc.sheetsClients[account] = client
	return client
}

// SheetsClient returns the Sheets client for the default account
func (sc *ServerContext) SheetsClient() gsheets.Service {
	return sc.SheetsClientForAccount(google.DefaultAccount)
}

// SetSheetsClientForAccount sets the Sheets client for a specific account
func (sc *ServerContext) SetSheetsClientForAccount(account string, client gsheets.Service) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.sheetsClients[account] = client
}

// TokenProvider returns the OAuth token provider used to check account credentials
func (sc *ServerContext) TokenProvider() google.TokenProvider {
	return sc.tokenProvider
}

// SetTokenProvider replaces the OAuth token provider. Useful for tests and for
// transports that source tokens from somewhere other than disk.
func (sc *ServerContext) SetTokenProvider(p google.TokenProvider) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.tokenProvider = p
}

// SetMetrics sets the metrics recorder used by instrumented tool handlers
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// Metrics returns the metrics recorder, or nil if instrumentation is not configured
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
