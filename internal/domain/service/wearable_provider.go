package service

import (
	"context"

	"wearsync/internal/domain/entity"
)

// WearableProvider is the external OAuth and data API of a wearable vendor.
// No call is retried; retry policy belongs to the caller.
type WearableProvider interface {
	// Provider returns which provider this client talks to.
	Provider() entity.ProviderType

	// ExchangeCode trades an authorization code and its PKCE verifier for tokens.
	// Non-success answers are ExchangeError.
	ExchangeCode(ctx context.Context, code, verifier string) (*entity.TokenGrant, error)

	// RefreshToken trades a refresh token for a new pair. Non-success answers are RefreshError.
	// A response without a rotated refresh token carries the one passed in.
	RefreshToken(ctx context.Context, refreshToken string) (*entity.TokenGrant, error)

	// FetchDailyMetrics reads activity, sleep and heart-rate data for date (YYYY-MM-DD).
	// Only the activity call is mandatory; its failure is a ProviderAPIError.
	FetchDailyMetrics(ctx context.Context, accessToken, date string) (*entity.RawProviderPayload, error)
}
