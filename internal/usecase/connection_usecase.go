package usecase

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"
)

// StoreTokensInput is a token grant to persist for one user at one provider.
type StoreTokensInput struct {
	UserID   string
	Provider entity.ProviderType
	Grant    *entity.TokenGrant
}

// ConnectionStatus is the user-facing view of one provider connection.
type ConnectionStatus struct {
	Connected bool       `json:"connected"`
	LastSync  *time.Time `json:"lastSync"`
}

// ConnectionUsecase owns the stored token pair of a user.
type ConnectionUsecase interface {
	// StoreTokens encrypts and upserts the grant. Repeating it with the same input leaves one row.
	StoreTokens(ctx context.Context, input *StoreTokensInput) error

	// GetValidAccessToken returns a plaintext access token that stays valid for at least the refresh skew,
	// refreshing it first when needed. A user without a connection gets NotConnected.
	GetValidAccessToken(ctx context.Context, userID string) (string, error)

	// GetStatus reports whether the user is connected and when the last sync happened.
	GetStatus(ctx context.Context, userID string) (*ConnectionStatus, error)
}
