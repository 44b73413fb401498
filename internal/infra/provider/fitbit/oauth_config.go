// Package fitbit is the Fitbit Web API client: OAuth token endpoint and daily data reads.
package fitbit

import (
	"wearsync/config"

	"golang.org/x/oauth2"
)

// NewOAuthConfig builds the OAuth client registration shared by the authorization flow and the client.
// Client credentials travel as HTTP Basic auth.
func NewOAuthConfig(cfg *config.Config) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.Fitbit.ClientID,
		ClientSecret: cfg.Fitbit.ClientSecret,
		RedirectURL:  cfg.Fitbit.RedirectURL,
		Scopes:       cfg.Fitbit.Scopes,
		Endpoint: oauth2.Endpoint{
			AuthURL:   cfg.Fitbit.AuthURL,
			TokenURL:  cfg.Fitbit.TokenURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
}
