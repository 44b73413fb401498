package impl

import (
	"context"
	"log/slog"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"
	"wearsync/internal/usecase"

	"go.uber.org/fx"
)

// authorizationService implements the AuthorizationUsecase interface.
type authorizationService struct {
	flow        service.AuthorizationFlow
	provider    service.WearableProvider
	connections usecase.ConnectionUsecase
	pendingTTL  time.Duration
	logger      *slog.Logger
	now         func() time.Time
}

// AuthorizationServiceParams holds dependencies for AuthorizationService, injected by Fx.
type AuthorizationServiceParams struct {
	fx.In

	Flow        service.AuthorizationFlow
	Provider    service.WearableProvider
	Connections usecase.ConnectionUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthorizationService is the constructor for authorizationService.
func NewAuthorizationService(params AuthorizationServiceParams) usecase.AuthorizationUsecase {
	ttl := 10 * time.Minute
	if params.Config != nil && params.Config.OAuth != nil && params.Config.OAuth.PendingTTL > 0 {
		ttl = params.Config.OAuth.PendingTTL
	}

	return &authorizationService{
		flow:        params.Flow,
		provider:    params.Provider,
		connections: params.Connections,
		pendingTTL:  ttl,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// Start begins a PKCE attempt for userID.
func (s *authorizationService) Start(ctx context.Context, userID string) (*entity.AuthorizationRequest, error) {
	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingUserID)
	}

	return s.flow.Begin(ctx, userID)
}

// Callback binds the provider redirect to its pending attempt before anything is sent to the provider.
func (s *authorizationService) Callback(ctx context.Context, input *usecase.CallbackInput) (string, error) {
	if input == nil || input.Pending == nil {
		return "", errors.WithStack(domainerrors.ErrMissingPKCECookie)
	}
	if input.Code == "" {
		return "", errors.WithStack(domainerrors.NewValidationError("missing code"))
	}
	if input.State == "" {
		return "", errors.WithStack(domainerrors.NewValidationError("missing state"))
	}
	if input.Pending.Expired(s.now(), s.pendingTTL) {
		return "", errors.WithStack(domainerrors.ErrPendingAuthorizationExpired)
	}

	userID, err := s.flow.Complete(ctx, input.Pending.State, input.State)
	if err != nil {
		return "", err
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(slog.String("userID", userID))

	grant, err := s.provider.ExchangeCode(ctx, input.Code, input.Pending.Verifier)
	if err != nil {
		logger.WarnContext(ctx, "Authorization code exchange failed", slog.Any("error", err))

		return "", err
	}

	err = s.connections.StoreTokens(ctx, &usecase.StoreTokensInput{
		UserID:   userID,
		Provider: s.provider.Provider(),
		Grant:    grant,
	})
	if err != nil {
		return "", err
	}

	logger.InfoContext(ctx, "Wearable connected", slog.String("provider", string(s.provider.Provider())))

	return userID, nil
}
