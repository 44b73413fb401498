package entity

import "time"

// ProviderType names the wearable provider a connection or record belongs to.
type ProviderType string

const (
	ProviderFitbit ProviderType = "fitbit"
)

// Connection is the stored OAuth token pair of one user at one provider.
// AccessToken and RefreshToken hold vault ciphertext, never plaintext.
type Connection struct {
	UserID         string
	Provider       ProviderType
	ProviderUserID string
	AccessToken    string
	RefreshToken   string
	ExpiresAt      time.Time
	Scope          string
	LastSyncAt     *time.Time
	UpdatedAt      time.Time
}

// NeedsRefresh reports whether the access token is expired or will expire within skew.
func (c *Connection) NeedsRefresh(now time.Time, skew time.Duration) bool {
	return !now.Before(c.ExpiresAt.Add(-skew))
}

// TokenGrant is a token endpoint answer, either from a code exchange or a refresh.
type TokenGrant struct {
	AccessToken    string
	RefreshToken   string
	ExpiresIn      int64
	Scope          string
	ProviderUserID string
}
