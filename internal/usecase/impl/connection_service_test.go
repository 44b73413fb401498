package impl

import (
	"context"
	"testing"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	mockRepo "wearsync/internal/mocks/repository"
	"wearsync/internal/infra/crypto"
	mockSvc "wearsync/internal/mocks/service"
	"wearsync/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// connectionServiceFixtures holds all test dependencies for connection service tests.
type connectionServiceFixtures struct {
	service  *connectionService
	connRepo *mockRepo.MockConnectionRepository
	provider *mockSvc.MockWearableProvider
	recorder *mockSvc.MockMetricsRecorder
}

func createTestConnectionService(t *testing.T) connectionServiceFixtures {
	return createTestConnectionServiceWithVault(t, newPrefixVault(t))
}

func createTestConnectionServiceWithVault(t *testing.T, vault service.TokenVault) connectionServiceFixtures {
	connRepo := mockRepo.NewMockConnectionRepository(t)
	provider := mockSvc.NewMockWearableProvider(t)
	provider.EXPECT().Provider().Return(entity.ProviderFitbit).Maybe()
	recorder := newQuietRecorder(t)

	svc := NewConnectionService(ConnectionServiceParams{
		ConnRepo: connRepo,
		Vault:    vault,
		Provider: provider,
		Recorder: recorder,
		Config:   &config.Config{OAuth: &config.OAuthConfig{RefreshSkew: 60 * time.Second}},
		Logger:   newDiscardLogger(),
	}).(*connectionService)
	svc.now = func() time.Time { return fixedNow }

	return connectionServiceFixtures{
		service:  svc,
		connRepo: connRepo,
		provider: provider,
		recorder: recorder,
	}
}

func storedConnection(expiresAt time.Time) *entity.Connection {
	return &entity.Connection{
		UserID:       "u1",
		Provider:     entity.ProviderFitbit,
		AccessToken:  "enc:old-access",
		RefreshToken: "enc:old-refresh",
		ExpiresAt:    expiresAt,
	}
}

func TestConnectionService_StoreTokens(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	var stored []*entity.Connection
	fx.connRepo.EXPECT().
		UpsertConnection(ctx, mock.AnythingOfType("*entity.Connection")).
		RunAndReturn(func(_ context.Context, conn *entity.Connection) error {
			stored = append(stored, conn)
			return nil
		}).
		Once()

	require.NoError(t, fx.service.StoreTokens(ctx, storeTokensInput()))

	require.Len(t, stored, 1)
	conn := stored[0]
	assert.Equal(t, entity.ProviderFitbit, conn.Provider)
	assert.Equal(t, "enc:access", conn.AccessToken)
	assert.Equal(t, "enc:refresh", conn.RefreshToken)
	assert.Equal(t, fixedNow.Add(time.Hour), conn.ExpiresAt)
	assert.Equal(t, "ABC123", conn.ProviderUserID)
}

func TestConnectionService_StoreTokens_Idempotent(t *testing.T) {
	vault, err := crypto.NewVault([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = vault.Close() })

	fx := createTestConnectionServiceWithVault(t, vault)
	ctx := context.Background()

	var stored []*entity.Connection
	fx.connRepo.EXPECT().
		UpsertConnection(ctx, mock.AnythingOfType("*entity.Connection")).
		RunAndReturn(func(_ context.Context, conn *entity.Connection) error {
			stored = append(stored, conn)
			return nil
		}).
		Twice()

	require.NoError(t, fx.service.StoreTokens(ctx, storeTokensInput()))
	require.NoError(t, fx.service.StoreTokens(ctx, storeTokensInput()))
	require.Len(t, stored, 2)

	first, second := stored[0], stored[1]
	assert.Equal(t, first.UserID, second.UserID)
	assert.Equal(t, first.Provider, second.Provider)
	assert.Equal(t, first.ExpiresAt, second.ExpiresAt)
	assert.Equal(t, first.Scope, second.Scope)
	assert.Equal(t, first.ProviderUserID, second.ProviderUserID)

	// Fresh nonces make the ciphertexts differ while the tokens match.
	assert.NotEqual(t, first.AccessToken, second.AccessToken)
	for _, conn := range stored {
		access, err := vault.Decrypt(ctx, conn.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, "access", access)

		refresh, err := vault.Decrypt(ctx, conn.RefreshToken)
		require.NoError(t, err)
		assert.Equal(t, "refresh", refresh)
	}
}

func storeTokensInput() *usecase.StoreTokensInput {
	return &usecase.StoreTokensInput{
		UserID: "u1",
		Grant: &entity.TokenGrant{
			AccessToken:    "access",
			RefreshToken:   "refresh",
			ExpiresIn:      3600,
			Scope:          "activity",
			ProviderUserID: "ABC123",
		},
	}
}

func TestConnectionService_StoreTokens_DefaultLifetime(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.connRepo.EXPECT().
		UpsertConnection(ctx, mock.MatchedBy(func(conn *entity.Connection) bool {
			return conn.ExpiresAt.Equal(fixedNow.Add(28800 * time.Second))
		})).
		Return(nil)

	err := fx.service.StoreTokens(ctx, &usecase.StoreTokensInput{
		UserID: "u1",
		Grant:  &entity.TokenGrant{AccessToken: "a", RefreshToken: "r"},
	})
	require.NoError(t, err)
}

func TestConnectionService_GetValidAccessToken_Fresh(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.connRepo.EXPECT().
		FindConnection(ctx, "u1", entity.ProviderFitbit).
		Return(storedConnection(fixedNow.Add(2*time.Minute)), nil)

	token, err := fx.service.GetValidAccessToken(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "old-access", token)
}

func TestConnectionService_GetValidAccessToken_RefreshesOnceNearExpiry(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	// 30s left is inside the 60s skew.
	stale := storedConnection(fixedNow.Add(30 * time.Second))
	fx.connRepo.EXPECT().
		FindConnection(ctx, "u1", entity.ProviderFitbit).
		Return(stale, nil).
		Once()

	fx.provider.EXPECT().
		RefreshToken(mock.Anything, "old-refresh").
		Return(&entity.TokenGrant{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 28800}, nil).
		Once()

	var update *repository.TokenUpdate
	fx.connRepo.EXPECT().
		UpdateTokensIfUnchanged(mock.Anything, "u1", entity.ProviderFitbit, stale.ExpiresAt, mock.AnythingOfType("*repository.TokenUpdate")).
		RunAndReturn(func(_ context.Context, _ string, _ entity.ProviderType, _ time.Time, u *repository.TokenUpdate) error {
			update = u
			return nil
		}).
		Once()

	token, err := fx.service.GetValidAccessToken(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)

	require.NotNil(t, update)
	assert.Equal(t, "enc:new-access", update.AccessToken)
	assert.Equal(t, "enc:new-refresh", update.RefreshToken)
	assert.Equal(t, fixedNow.Add(28800*time.Second), update.ExpiresAt)

	fresh := storedConnection(update.ExpiresAt)
	fresh.AccessToken = update.AccessToken
	fx.connRepo.EXPECT().
		FindConnection(ctx, "u1", entity.ProviderFitbit).
		Return(fresh, nil).
		Once()

	token, err = fx.service.GetValidAccessToken(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "new-access", token)
}

func TestConnectionService_GetValidAccessToken_LostRefreshRace(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	stale := storedConnection(fixedNow.Add(-time.Minute))
	winner := storedConnection(fixedNow.Add(8 * time.Hour))
	winner.AccessToken = "enc:winner-access"

	fx.connRepo.EXPECT().FindConnection(ctx, "u1", entity.ProviderFitbit).Return(stale, nil).Once()
	fx.provider.EXPECT().RefreshToken(mock.Anything, "old-refresh").
		Return(&entity.TokenGrant{AccessToken: "loser-access", RefreshToken: "loser-refresh", ExpiresIn: 28800}, nil)
	fx.connRepo.EXPECT().
		UpdateTokensIfUnchanged(mock.Anything, "u1", entity.ProviderFitbit, stale.ExpiresAt, mock.Anything).
		Return(repository.ErrConcurrentTokenUpdate)
	fx.connRepo.EXPECT().FindConnection(mock.Anything, "u1", entity.ProviderFitbit).Return(winner, nil).Once()

	token, err := fx.service.GetValidAccessToken(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "winner-access", token)
	fx.recorder.AssertCalled(t, "ObserveTokenRefresh", service.OutcomeSkipped)
}

func TestConnectionService_GetValidAccessToken_RefreshRejected(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.connRepo.EXPECT().
		FindConnection(ctx, "u1", entity.ProviderFitbit).
		Return(storedConnection(fixedNow.Add(-time.Hour)), nil)
	fx.provider.EXPECT().
		RefreshToken(mock.Anything, "old-refresh").
		Return(nil, domainerrors.NewRefreshError(401, `{"errors":[{"errorType":"invalid_grant"}]}`, nil))

	_, err := fx.service.GetValidAccessToken(ctx, "u1")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindRefresh, domainerrors.KindOf(err))
	fx.connRepo.AssertNotCalled(t, "UpdateTokensIfUnchanged", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConnectionService_GetValidAccessToken_NotConnected(t *testing.T) {
	fx := createTestConnectionService(t)
	ctx := context.Background()

	fx.connRepo.EXPECT().
		FindConnection(ctx, "u1", entity.ProviderFitbit).
		Return(nil, repository.ErrConnectionNotFound)

	_, err := fx.service.GetValidAccessToken(ctx, "u1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotConnected)
	assert.Equal(t, domainerrors.KindNotConnected, domainerrors.KindOf(err))
}

func TestConnectionService_GetStatus(t *testing.T) {
	lastSync := fixedNow.Add(-time.Hour)

	tests := []struct {
		name    string
		userID  string
		setup   func(fx connectionServiceFixtures)
		want    *usecase.ConnectionStatus
		wantErr bool
	}{
		{
			name:   "no user id",
			userID: "",
			setup:  func(connectionServiceFixtures) {},
			want:   &usecase.ConnectionStatus{},
		},
		{
			name:   "not connected",
			userID: "u1",
			setup: func(fx connectionServiceFixtures) {
				fx.connRepo.EXPECT().FindConnectionForRead(mock.Anything, "u1", entity.ProviderFitbit).
					Return(nil, repository.ErrConnectionNotFound)
			},
			want: &usecase.ConnectionStatus{},
		},
		{
			name:   "connected",
			userID: "u1",
			setup: func(fx connectionServiceFixtures) {
				conn := storedConnection(fixedNow)
				conn.LastSyncAt = &lastSync
				fx.connRepo.EXPECT().FindConnectionForRead(mock.Anything, "u1", entity.ProviderFitbit).Return(conn, nil)
			},
			want: &usecase.ConnectionStatus{Connected: true, LastSync: &lastSync},
		},
		{
			name:   "storage failure",
			userID: "u1",
			setup: func(fx connectionServiceFixtures) {
				fx.connRepo.EXPECT().FindConnectionForRead(mock.Anything, "u1", entity.ProviderFitbit).
					Return(nil, domainerrors.NewStorageError(errors.New("connection refused"), "failed to load wearable connection"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestConnectionService(t)
			tt.setup(fx)

			got, err := fx.service.GetStatus(context.Background(), tt.userID)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, domainerrors.KindStorage, domainerrors.KindOf(err))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
