// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"wearsync/config"
	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"
	"wearsync/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const defaultTokenLifetime = 28800 * time.Second

// connectionService implements the ConnectionUsecase interface.
type connectionService struct {
	connRepo    repository.ConnectionRepository
	vault       service.TokenVault
	provider    service.WearableProvider
	recorder    service.MetricsRecorder
	refreshSkew time.Duration
	refreshes   singleflight.Group
	logger      *slog.Logger
	now         func() time.Time
}

// ConnectionServiceParams holds dependencies for ConnectionService, injected by Fx.
type ConnectionServiceParams struct {
	fx.In

	ConnRepo repository.ConnectionRepository
	Vault    service.TokenVault
	Provider service.WearableProvider
	Recorder service.MetricsRecorder
	Config   *config.Config
	Logger   *slog.Logger
}

// NewConnectionService is the constructor for connectionService.
func NewConnectionService(params ConnectionServiceParams) usecase.ConnectionUsecase {
	skew := 60 * time.Second
	if params.Config != nil && params.Config.OAuth != nil && params.Config.OAuth.RefreshSkew > 0 {
		skew = params.Config.OAuth.RefreshSkew
	}

	return &connectionService{
		connRepo:    params.ConnRepo,
		vault:       params.Vault,
		provider:    params.Provider,
		recorder:    params.Recorder,
		refreshSkew: skew,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// StoreTokens seals both tokens and upserts the connection keyed by (user_id, provider).
func (s *connectionService) StoreTokens(ctx context.Context, input *usecase.StoreTokensInput) error {
	if input == nil || input.Grant == nil {
		return errors.WithStack(domainerrors.NewValidationError("missing token grant"))
	}
	if input.UserID == "" {
		return errors.WithStack(domainerrors.ErrMissingUserID)
	}

	provider := input.Provider
	if provider == "" {
		provider = s.provider.Provider()
	}

	accessToken, err := s.vault.Encrypt(ctx, input.Grant.AccessToken)
	if err != nil {
		return err
	}
	refreshToken, err := s.vault.Encrypt(ctx, input.Grant.RefreshToken)
	if err != nil {
		return err
	}

	now := s.now()
	conn := &entity.Connection{
		UserID:         input.UserID,
		Provider:       provider,
		ProviderUserID: input.Grant.ProviderUserID,
		AccessToken:    accessToken,
		RefreshToken:   refreshToken,
		ExpiresAt:      now.Add(tokenLifetime(input.Grant.ExpiresIn)),
		Scope:          input.Grant.Scope,
		UpdatedAt:      now,
	}

	if err := s.connRepo.UpsertConnection(ctx, conn); err != nil {
		return errors.Wrap(err, "failed to store connection")
	}

	return nil
}

// GetValidAccessToken returns the stored access token, refreshing it when it is inside the skew window.
func (s *connectionService) GetValidAccessToken(ctx context.Context, userID string) (string, error) {
	if userID == "" {
		return "", errors.WithStack(domainerrors.ErrMissingUserID)
	}

	conn, err := s.loadConnection(ctx, userID)
	if err != nil {
		return "", err
	}

	if !conn.NeedsRefresh(s.now(), s.refreshSkew) {
		return s.vault.Decrypt(ctx, conn.AccessToken)
	}

	// One refresh per user in this process; concurrent callers share its result.
	token, err, _ := s.refreshes.Do(userID+":"+string(conn.Provider), func() (any, error) {
		return s.refresh(context.WithoutCancel(ctx), conn)
	})
	if err != nil {
		return "", err
	}

	return token.(string), nil
}

// GetStatus reads from a replica when one is configured.
func (s *connectionService) GetStatus(ctx context.Context, userID string) (*usecase.ConnectionStatus, error) {
	if userID == "" {
		return &usecase.ConnectionStatus{}, nil
	}

	conn, err := s.connRepo.FindConnectionForRead(ctx, userID, s.provider.Provider())
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return &usecase.ConnectionStatus{}, nil
		}

		return nil, errors.Wrap(err, "failed to load connection status")
	}

	return &usecase.ConnectionStatus{Connected: true, LastSync: conn.LastSyncAt}, nil
}

func (s *connectionService) loadConnection(ctx context.Context, userID string) (*entity.Connection, error) {
	conn, err := s.connRepo.FindConnection(ctx, userID, s.provider.Provider())
	if err != nil {
		if errors.Is(err, repository.ErrConnectionNotFound) {
			return nil, errors.WithStack(domainerrors.ErrNotConnected)
		}

		return nil, errors.Wrap(err, "failed to load connection")
	}

	return conn, nil
}

// refresh rotates the token pair and persists it only if nobody else did first.
func (s *connectionService) refresh(ctx context.Context, conn *entity.Connection) (string, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("userID", conn.UserID),
		slog.String("provider", string(conn.Provider)),
	)

	refreshToken, err := s.vault.Decrypt(ctx, conn.RefreshToken)
	if err != nil {
		s.recorder.ObserveTokenRefresh(service.OutcomeFailure)

		return "", err
	}

	grant, err := s.provider.RefreshToken(ctx, refreshToken)
	if err != nil {
		s.recorder.ObserveTokenRefresh(service.OutcomeFailure)
		logger.WarnContext(ctx, "Token refresh rejected", slog.Any("error", err))

		return "", err
	}

	accessCipher, err := s.vault.Encrypt(ctx, grant.AccessToken)
	if err != nil {
		s.recorder.ObserveTokenRefresh(service.OutcomeFailure)

		return "", err
	}
	refreshCipher, err := s.vault.Encrypt(ctx, grant.RefreshToken)
	if err != nil {
		s.recorder.ObserveTokenRefresh(service.OutcomeFailure)

		return "", err
	}

	now := s.now()
	err = s.connRepo.UpdateTokensIfUnchanged(ctx, conn.UserID, conn.Provider, conn.ExpiresAt, &repository.TokenUpdate{
		AccessToken:  accessCipher,
		RefreshToken: refreshCipher,
		ExpiresAt:    now.Add(tokenLifetime(grant.ExpiresIn)),
		UpdatedAt:    now,
	})
	if errors.Is(err, repository.ErrConcurrentTokenUpdate) {
		// Another instance refreshed first; its pair is the one the provider still honours.
		s.recorder.ObserveTokenRefresh(service.OutcomeSkipped)
		logger.InfoContext(ctx, "Token refreshed concurrently, using stored pair")

		winner, err := s.loadConnection(ctx, conn.UserID)
		if err != nil {
			return "", err
		}

		return s.vault.Decrypt(ctx, winner.AccessToken)
	}
	if err != nil {
		s.recorder.ObserveTokenRefresh(service.OutcomeFailure)

		return "", errors.Wrap(err, "failed to persist refreshed tokens")
	}

	s.recorder.ObserveTokenRefresh(service.OutcomeSuccess)
	logger.InfoContext(ctx, "Token refreshed")

	return grant.AccessToken, nil
}

func tokenLifetime(expiresIn int64) time.Duration {
	if expiresIn <= 0 {
		return defaultTokenLifetime
	}

	return time.Duration(expiresIn) * time.Second
}
