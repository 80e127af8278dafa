package auth

import (
	"golang.org/x/oauth2"
)

const (
	// Oura OAuth endpoints
	AuthURL  = "https://cloud.ouraring.com/oauth/authorize"
	TokenURL = "https://api.ouraring.com/oauth/token"
)

// Scopes required for our app
var Scopes = []string{
	"personal", "daily", "heartrate", "session", "workout", "spo2",
}

// Config holds the OAuth client credentials
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g., "http://localhost:8089/callback"
}

// NewOAuthConfig creates an oauth2.Config from our Config
func NewOAuthConfig(cfg Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  AuthURL,
			TokenURL: TokenURL,
		},
		RedirectURL: cfg.RedirectURL,
		Scopes:      Scopes,
	}
}

// AuthResult is the outcome of a completed OAuth flow
type AuthResult struct {
	Token *oauth2.Token
}
