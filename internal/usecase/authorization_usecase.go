package usecase

import (
	"context"

	"wearsync/internal/domain/entity"
)

// CallbackInput is what the browser brings back from the provider consent screen.
type CallbackInput struct {
	Pending *entity.PendingAuthorization
	Code    string
	State   string
}

// AuthorizationUsecase links a user account to the provider through the PKCE authorization code flow.
type AuthorizationUsecase interface {
	// Start issues a new attempt for userID. The caller keeps Pending and sends the browser to RedirectURL.
	Start(ctx context.Context, userID string) (*entity.AuthorizationRequest, error)

	// Callback validates the returned state against the pending attempt, exchanges the code
	// and stores the tokens. It returns the linked user id.
	Callback(ctx context.Context, input *CallbackInput) (string, error)
}
