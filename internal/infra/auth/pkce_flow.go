package auth

import (
	"context"
	"crypto/subtle"
	"strings"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"

	"golang.org/x/oauth2"
)

// pkceFlow implements service.AuthorizationFlow with S256 PKCE and signed state.
type pkceFlow struct {
	oauthCfg *oauth2.Config
	signer   *StateSigner
}

// NewAuthorizationFlow is the constructor for pkceFlow.
func NewAuthorizationFlow(cfg *config.Config, oauthCfg *oauth2.Config) (service.AuthorizationFlow, error) {
	signer, err := NewStateSigner(cfg.Security.StateSecret, cfg.OAuth.PendingTTL)
	if err != nil {
		return nil, err
	}

	return newPKCEFlow(oauthCfg, signer), nil
}

func newPKCEFlow(oauthCfg *oauth2.Config, signer *StateSigner) *pkceFlow {
	return &pkceFlow{
		oauthCfg: oauthCfg,
		signer:   signer,
	}
}

// Begin generates the verifier, its S256 challenge and a signed state bound to userID.
func (f *pkceFlow) Begin(_ context.Context, userID string) (*entity.AuthorizationRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingUserID)
	}

	verifier := oauth2.GenerateVerifier()
	state, err := f.signer.Sign(userID)
	if err != nil {
		return nil, err
	}

	return &entity.AuthorizationRequest{
		Verifier:    verifier,
		Challenge:   oauth2.S256ChallengeFromVerifier(verifier),
		State:       state,
		RedirectURL: f.oauthCfg.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)),
		Pending: &entity.PendingAuthorization{
			Verifier:  verifier,
			State:     state,
			UserID:    userID,
			CreatedAt: f.signer.now(),
		},
	}, nil
}

// Complete compares the states before parsing either of them.
func (f *pkceFlow) Complete(_ context.Context, pendingState, receivedState string) (string, error) {
	if receivedState == "" {
		return "", errors.WithStack(domainerrors.NewValidationError("missing state"))
	}

	if subtle.ConstantTimeCompare([]byte(pendingState), []byte(receivedState)) != 1 {
		return "", errors.WithStack(domainerrors.ErrStateMismatch)
	}

	return f.signer.Verify(receivedState)
}
