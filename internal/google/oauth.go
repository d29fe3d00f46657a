package google

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"

	"github.com/BobFrankston/gcal/internal/config"
)

// oauthScopes returns the scope set for the requested access level. A
// read-write token also satisfies read-only access, so TokenSource
// falls back to the read-write token when only that one is cached.
func oauthScopes(readOnly bool) []string {
	if readOnly {
		return []string{calendar.CalendarReadonlyScope}
	}
	return []string{calendar.CalendarScope}
}

var accountNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.@-]+$`)

// validateAccountName rejects account names that could escape the token
// directory or produce surprising file names.
func validateAccountName(account string) error {
	if account == "" {
		return fmt.Errorf("account name is empty")
	}
	if strings.Contains(account, "..") || !accountNamePattern.MatchString(account) {
		return fmt.Errorf("invalid account name %q: use letters, digits, '.', '@', '-' and '_' only", account)
	}
	return nil
}

// tokenFile returns the cache path of the token for an account at the
// given access level.
func tokenFile(account string, readOnly bool) string {
	scope := "readwrite"
	if readOnly {
		scope = "readonly"
	}
	return filepath.Join(config.CacheDir(), fmt.Sprintf("%s.%s.token", account, scope))
}

// OAuthConfig builds the OAuth2 client configuration from the user's
// credentials file.
func OAuthConfig(readOnly bool) (*oauth2.Config, error) {
	data, err := os.ReadFile(config.CredentialsFile())
	if err != nil {
		return nil, fmt.Errorf("failed to read OAuth credentials (download an OAuth client JSON from the Google Cloud console and save it as %s): %w", config.CredentialsFile(), err)
	}

	conf, err := google.ConfigFromJSON(data, oauthScopes(readOnly)...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", config.CredentialsFile(), err)
	}
	if conf.RedirectURL == "" {
		conf.RedirectURL = "urn:ietf:wg:oauth:2.0:oob"
	}
	return conf, nil
}

// HasToken checks if a cached token exists for the account at the given
// access level.
func HasToken(account string, readOnly bool) bool {
	if validateAccountName(account) != nil {
		return false
	}
	if _, err := os.Stat(tokenFile(account, readOnly)); err == nil {
		return true
	}
	if readOnly {
		_, err := os.Stat(tokenFile(account, false))
		return err == nil
	}
	return false
}

// AuthURL returns the OAuth URL for user authorization.
func AuthURL(readOnly bool) (string, error) {
	conf, err := OAuthConfig(readOnly)
	if err != nil {
		return "", err
	}
	return conf.AuthCodeURL("state", oauth2.AccessTypeOffline), nil
}

// SaveToken exchanges an authorization code for tokens and caches them
// for the account.
func SaveToken(ctx context.Context, account, authCode string, readOnly bool) error {
	if err := validateAccountName(account); err != nil {
		return err
	}

	conf, err := OAuthConfig(readOnly)
	if err != nil {
		return err
	}

	t, err := conf.Exchange(ctx, authCode)
	if err != nil {
		return fmt.Errorf("failed to exchange auth code: %w", err)
	}

	if err := os.MkdirAll(config.CacheDir(), 0700); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tokenData := t.AccessToken + " " + t.RefreshToken
	if err := os.WriteFile(tokenFile(account, readOnly), []byte(tokenData), 0600); err != nil {
		return fmt.Errorf("failed to write token file: %w", err)
	}

	return nil
}

// ClearToken removes all cached tokens for the account, forcing the
// next auth run through the full authorization flow.
func ClearToken(account string) error {
	if err := validateAccountName(account); err != nil {
		return err
	}
	for _, readOnly := range []bool{false, true} {
		if err := os.Remove(tokenFile(account, readOnly)); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// TokenSource returns a self-refreshing OAuth2 token source for the
// account's cached token.
func TokenSource(ctx context.Context, account string, readOnly bool) (oauth2.TokenSource, error) {
	if err := validateAccountName(account); err != nil {
		return nil, err
	}

	conf, err := OAuthConfig(readOnly)
	if err != nil {
		return nil, err
	}

	slurp, err := os.ReadFile(tokenFile(account, readOnly))
	if err != nil && readOnly {
		slurp, err = os.ReadFile(tokenFile(account, false))
	}
	if err != nil {
		return nil, fmt.Errorf("no cached token for account %q, run 'gcal auth' first", account)
	}

	f := strings.Fields(strings.TrimSpace(string(slurp)))
	if len(f) != 2 {
		return nil, fmt.Errorf("invalid token file for account %q, run 'gcal auth --force'", account)
	}

	ts := conf.TokenSource(ctx, &oauth2.Token{
		AccessToken:  f[0],
		TokenType:    "Bearer",
		RefreshToken: f[1],
		// Treat the cached access token as expired so the source
		// refreshes it on first use.
		Expiry: time.Unix(1, 0),
	})

	return ts, nil
}

// HTTPClient returns an HTTP client configured with OAuth2
// authentication. The client is configured to use HTTP/1.1 to avoid
// HTTP/2 protocol errors.
func HTTPClient(ctx context.Context, account string, readOnly bool) (*http.Client, error) {
	ts, err := TokenSource(ctx, account, readOnly)
	if err != nil {
		return nil, err
	}

	client := oauth2.NewClient(ctx, ts)

	// Force HTTP/1.1 by disabling HTTP/2
	if transport, ok := client.Transport.(*oauth2.Transport); ok {
		transport.Base = &http.Transport{
			ForceAttemptHTTP2: false,
		}
	}

	return client, nil
}
