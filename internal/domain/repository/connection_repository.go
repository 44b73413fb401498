// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for connection persistence.
var (
	// ErrConnectionNotFound is returned when a user has no connection for a provider.
	ErrConnectionNotFound = errors.New("connection not found")
	// ErrConcurrentTokenUpdate is returned when a conditional token update lost against another writer.
	ErrConcurrentTokenUpdate = errors.New("connection tokens were updated concurrently")
)

// TokenUpdate is the set of columns rewritten by a token refresh.
type TokenUpdate struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	UpdatedAt    time.Time
}

// ConnectionRepository defines persistence of provider connections, addressed by (user_id, provider).
type ConnectionRepository interface {
	// UpsertConnection inserts the connection or overwrites the existing row with the same (user_id, provider).
	// last_sync_at of an existing row is left untouched.
	UpsertConnection(ctx context.Context, conn *entity.Connection) error

	// FindConnection returns ErrConnectionNotFound when no row exists.
	FindConnection(ctx context.Context, userID string, provider entity.ProviderType) (*entity.Connection, error)

	// FindConnectionForRead is FindConnection routed to a read replica when one is configured.
	FindConnectionForRead(ctx context.Context, userID string, provider entity.ProviderType) (*entity.Connection, error)

	// UpdateTokensIfUnchanged rewrites the token columns only while expires_at still equals expectedExpiresAt.
	// It returns ErrConcurrentTokenUpdate when the guard matched no row.
	UpdateTokensIfUnchanged(ctx context.Context, userID string, provider entity.ProviderType, expectedExpiresAt time.Time, update *TokenUpdate) error

	// TouchLastSync sets last_sync_at.
	TouchLastSync(ctx context.Context, userID string, provider entity.ProviderType, at time.Time) error
}
