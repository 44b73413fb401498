package entity

import "time"

// PendingAuthorization is one in-flight authorization attempt, kept by the client between start and callback.
type PendingAuthorization struct {
	Verifier  string    `json:"v"`
	State     string    `json:"s"`
	UserID    string    `json:"u"`
	CreatedAt time.Time `json:"c"`
}

// Expired reports whether the attempt is older than ttl.
func (p *PendingAuthorization) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(p.CreatedAt) > ttl
}

// AuthorizationRequest is everything produced when an authorization starts.
type AuthorizationRequest struct {
	Verifier    string
	Challenge   string
	State       string
	RedirectURL string
	Pending     *PendingAuthorization
}
