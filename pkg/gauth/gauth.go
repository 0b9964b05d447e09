// Package gauth builds HTTP clients authenticated with Google credentials,
// for calling Gemini without an API key.
package gauth

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	htransport "google.golang.org/api/transport/http"
)

// Scopes requested for Gemini calls.
var Scopes = []string{
	"https://www.googleapis.com/auth/cloud-platform",
	"https://www.googleapis.com/auth/generative-language",
}

// NewHTTPClient returns an authenticated client. With a credentials path it
// uses that service account key; otherwise Application Default Credentials.
func NewHTTPClient(ctx context.Context, credentialsPath string) (*http.Client, error) {
	ts, err := TokenSource(ctx, credentialsPath)
	if err != nil {
		return nil, err
	}

	client, _, err := htransport.NewClient(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("gauth: failed to create transport: %w", err)
	}
	return client, nil
}

// TokenSource resolves an oauth2 token source for the Gemini scopes.
func TokenSource(ctx context.Context, credentialsPath string) (oauth2.TokenSource, error) {
	if credentialsPath == "" {
		creds, err := google.FindDefaultCredentials(ctx, Scopes...)
		if err != nil {
			return nil, fmt.Errorf("gauth: no default credentials: %w", err)
		}
		return creds.TokenSource, nil
	}

	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("gauth: failed to read credentials file: %w", err)
	}
	return TokenSourceFromJSON(ctx, data)
}

// TokenSourceFromJSON builds a token source from service account JSON.
func TokenSourceFromJSON(ctx context.Context, credentialsJSON []byte) (oauth2.TokenSource, error) {
	cfg, err := google.JWTConfigFromJSON(credentialsJSON, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("gauth: unsupported credentials format: %w", err)
	}
	return cfg.TokenSource(ctx), nil
}
