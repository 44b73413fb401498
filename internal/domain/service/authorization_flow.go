package service

import (
	"context"

	"wearsync/internal/domain/entity"
)

// AuthorizationFlow issues PKCE challenges and binds callbacks to the attempt that started them.
type AuthorizationFlow interface {
	// Begin creates a fresh verifier, challenge and signed state for userID
	// and the provider URL the browser must visit.
	Begin(ctx context.Context, userID string) (*entity.AuthorizationRequest, error)

	// Complete checks the state returned by the provider against the pending one and recovers the user id.
	// It fails with StateMismatchError before looking inside either state.
	Complete(ctx context.Context, pendingState, receivedState string) (string, error)
}
