package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// DefaultAccount is the account name used when no account is specified
	DefaultAccount = "default"

	cacheDirName = "gdrive-sheets"
)

// HasTokenForAccount checks if a valid OAuth token exists for the specified account
func HasTokenForAccount(account string) bool {
	_, err := os.ReadFile(tokenFileForAccount(account))
	return err == nil
}

// HasToken checks if a valid OAuth token exists for the default account
func HasToken() bool {
	return HasTokenForAccount(DefaultAccount)
}

// GetAuthURLForAccount returns the OAuth URL for user authorization for a specific account
func GetAuthURLForAccount(account string) string {
	conf := getOAuthConfig()
	return conf.AuthCodeURL("state-" + account)
}

// GetAuthURL returns the OAuth URL for user authorization for the default account
func GetAuthURL() string {
	return GetAuthURLForAccount(DefaultAccount)
}

// SaveTokenForAccount exchanges an authorization code for tokens and saves them
// for a specific account
func SaveTokenForAccount(ctx context.Context, account string, authCode string) error {
	conf := getOAuthConfig()

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	tokenFile := tokenFileForAccount(account)
	if err := os.MkdirAll(filepath.Dir(tokenFile), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile, []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// SaveToken exchanges an authorization code for tokens and saves them for the
// default account
func SaveToken(ctx context.Context, authCode string) error {
	return SaveTokenForAccount(ctx, DefaultAccount, authCode)
}

// getOAuthConfig returns the OAuth2 configuration for the Drive and Sheets APIs.
// Client credentials come from the environment so that deployments can use
// their own OAuth application.
func getOAuthConfig() *oauth2.Config {
	const oob = "urn:ietf:wg:oauth:2.0:oob"
	return &oauth2.Config{
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Endpoint:     google.Endpoint,
		RedirectURL:  oob,
		Scopes:       DefaultOAuthScopes,
	}
}

// GetTokenSourceForAccount returns an OAuth2 token source for the stored token
// of the specified account. Returns an error if no valid token exists.
func GetTokenSourceForAccount(ctx context.Context, account string) (oauth2.TokenSource, error) {
	conf := getOAuthConfig()

	slurp, err := os.ReadFile(tokenFileForAccount(account))
	if err != nil {
		return nil, fmt.Errorf("no valid Google OAuth token found for account %s", account)
	}

	accessToken, refreshToken, err := parseTokenFile(string(slurp))
	if err != nil {
		return nil, err
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  accessToken,
		TokenType:    "Bearer",
		RefreshToken: refreshToken,
		Expiry:       time.Unix(1, 0),
	})

	// Validate the token
	if _, err := ts.Token(); err != nil {
		return nil, fmt.Errorf("cached token is invalid: %w", err)
	}

	return ts, nil
}

// GetTokenSource returns an OAuth2 token source for the default account
func GetTokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	return GetTokenSourceForAccount(ctx, DefaultAccount)
}

// GetHTTPClientForAccount returns an HTTP client configured with OAuth2
// authentication for the specified account. The client is configured to use
// HTTP/1.1 to avoid HTTP/2 protocol errors against the Google APIs.
func GetHTTPClientForAccount(ctx context.Context, account string) (*http.Client, error) {
	ts, err := GetTokenSourceForAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	transport := client.Transport.(*oauth2.Transport)
	transport.Base = &http.Transport{
		ForceAttemptHTTP2: false,
	}

	return client, nil
}

// GetHTTPClient returns an authenticated HTTP client for the default account
func GetHTTPClient(ctx context.Context) (*http.Client, error) {
	return GetHTTPClientForAccount(ctx, DefaultAccount)
}

// GetAuthenticationErrorMessage returns a user-facing message explaining how
// to authorize access for an account that has no stored token.
func GetAuthenticationErrorMessage(account string) string {
	return fmt.Sprintf("No Google OAuth token found for account %q. "+
		"Run 'gdrive-sheets auth' to authorize access, then retry. "+
		"Authorization URL: %s", account, GetAuthURLForAccount(account))
}

// parseTokenFile parses the persisted token format: access and refresh token
// separated by whitespace.
func parseTokenFile(data string) (accessToken, refreshToken string, err error) {
	f := strings.Fields(strings.TrimSpace(data))
	if len(f) != 2 {
		return "", "", fmt.Errorf("invalid token format")
	}
	return f[0], f[1], nil
}

// tokenFileForAccount returns the token file path for the specified account
func tokenFileForAccount(account string) string {
	name := "google.token"
	if account != "" && account != DefaultAccount {
		name = "google-" + account + ".token"
	}
	return filepath.Join(userCacheDir(), cacheDirName, name)
}

func userCacheDir() string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir(), "Library", "Caches")
	case "windows":
		for _, ev := range []string{"TEMP", "TMP"} {
			if v := os.Getenv(ev); v != "" {
				return v
			}
		}
		panic("No Windows TEMP or TMP environment variables found")
	}
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return xdg
	}
	return filepath.Join(homeDir(), ".cache")
}

func homeDir() string {
	if runtime.GOOS == "windows" {
		return os.Getenv("HOMEDRIVE") + os.Getenv("HOMEPATH")
	}
	return os.Getenv("HOME")
}
