package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	mockRepo "wearsync/internal/mocks/repository"
	mockSvc "wearsync/internal/mocks/service"
	mockUsecase "wearsync/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const scenarioActivity = `{"summary":{"steps":"8421","distances":[{"activity":"total","distance":6.234}],"caloriesOut":"2100"}}`

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service     *syncService
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	dataRepo    *mockRepo.MockDailyMetricRepository
	connRepo    *mockRepo.MockConnectionRepository
	connections *mockUsecase.MockConnectionUsecase
	provider    *mockSvc.MockWearableProvider
	publisher   *mockSvc.MockEventPublisher
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	fx := syncServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		dataRepo:    mockRepo.NewMockDailyMetricRepository(t),
		connRepo:    mockRepo.NewMockConnectionRepository(t),
		connections: mockUsecase.NewMockConnectionUsecase(t),
		provider:    mockSvc.NewMockWearableProvider(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.provider.EXPECT().Provider().Return(entity.ProviderFitbit).Maybe()
	fx.factory.EXPECT().NewDailyMetricRepository().Return(fx.dataRepo).Maybe()
	fx.factory.EXPECT().NewConnectionRepository().Return(fx.connRepo).Maybe()

	fx.service = NewSyncService(SyncServiceParams{
		TxManager:   fx.txManager,
		Connections: fx.connections,
		Provider:    fx.provider,
		Publisher:   fx.publisher,
		Recorder:    newQuietRecorder(t),
		Logger:      newDiscardLogger(),
	}).(*syncService)
	fx.service.now = func() time.Time { return fixedNow }

	return fx
}

// runTransactions hands the callback the mock factory and returns whatever it returns.
func (fx syncServiceFixtures) runTransactions() {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func scenarioPayload(t *testing.T) *entity.RawProviderPayload {
	t.Helper()

	payload := &entity.RawProviderPayload{}
	require.NoError(t, json.Unmarshal([]byte(scenarioActivity), &payload.Activity))

	return payload
}

func TestSyncService_ReconcileDay_Scenario(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").Return("access", nil)
	fx.provider.EXPECT().FetchDailyMetrics(ctx, "access", "2024-05-01").Return(scenarioPayload(t), nil)
	fx.runTransactions()
	fx.dataRepo.EXPECT().
		FindDailyMetricForUpdate(ctx, "u1", "2024-05-01", entity.ProviderFitbit).
		Return(nil, repository.ErrDailyMetricNotFound)

	var written *entity.DailyMetricRecord
	fx.dataRepo.EXPECT().
		UpsertDailyMetric(ctx, mock.AnythingOfType("*entity.DailyMetricRecord")).
		RunAndReturn(func(_ context.Context, record *entity.DailyMetricRecord) error {
			written = record
			return nil
		})
	fx.connRepo.EXPECT().TouchLastSync(ctx, "u1", entity.ProviderFitbit, fixedNow).Return(nil)
	fx.publisher.EXPECT().
		PublishDailySynced(ctx, mock.MatchedBy(func(e *service.DailySyncedEvent) bool {
			return e.UserID == "u1" && e.Date == "2024-05-01" && e.Steps == 8421 && *e.Calories == 2100
		})).
		Return(nil)

	result, err := fx.service.ReconcileDay(ctx, "u1", "2024-05-01")
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Equal(t, "2024-05-01", result.Date)
	assert.Equal(t, 8421, result.Steps)
	require.NotNil(t, result.Calories)
	assert.Equal(t, 2100, *result.Calories)

	require.NotNil(t, written)
	assert.Equal(t, entity.ProviderMetrics{
		Steps:      8421,
		DistanceKm: 6.23,
		Calories:   intPtr(2100),
	}, written.Metrics)
	assert.Equal(t, &fixedNow, written.SyncedAt)
}

func TestSyncService_ReconcileDay_PreservesManualFields(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	stress := "low"
	existing := &entity.DailyMetricRecord{
		UserID:  "u1",
		Date:    "2024-05-01",
		Source:  entity.ProviderFitbit,
		Metrics: entity.ProviderMetrics{Steps: 10, SleepMinutes: intPtr(400)},
		Manual:  entity.ManualFields{BPSys: intPtr(120), BPDia: intPtr(80), StressLevel: &stress},
	}

	fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").Return("access", nil)
	fx.provider.EXPECT().FetchDailyMetrics(ctx, "access", "2024-05-01").Return(scenarioPayload(t), nil)
	fx.runTransactions()
	fx.dataRepo.EXPECT().FindDailyMetricForUpdate(ctx, "u1", "2024-05-01", entity.ProviderFitbit).Return(existing, nil)
	fx.dataRepo.EXPECT().
		UpsertDailyMetric(ctx, mock.MatchedBy(func(record *entity.DailyMetricRecord) bool {
			return assert.ObjectsAreEqual(existing.Manual, record.Manual) &&
				record.Metrics.Steps == 8421 &&
				record.Metrics.SleepMinutes == nil
		})).
		Return(nil)
	fx.connRepo.EXPECT().TouchLastSync(ctx, "u1", entity.ProviderFitbit, fixedNow).Return(nil)
	fx.publisher.EXPECT().PublishDailySynced(ctx, mock.Anything).Return(nil)

	_, err := fx.service.ReconcileDay(ctx, "u1", "2024-05-01")
	require.NoError(t, err)
}

func TestSyncService_ReconcileDay_LookupFailureAbortsWithoutWriting(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").Return("access", nil)
	fx.provider.EXPECT().FetchDailyMetrics(ctx, "access", "2024-05-01").Return(scenarioPayload(t), nil)
	fx.runTransactions()
	fx.dataRepo.EXPECT().
		FindDailyMetricForUpdate(ctx, "u1", "2024-05-01", entity.ProviderFitbit).
		Return(nil, domainerrors.NewStorageError(errors.New("lock timeout"), "failed to load daily metrics"))

	result, err := fx.service.ReconcileDay(ctx, "u1", "2024-05-01")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, domainerrors.KindStorage, domainerrors.KindOf(err))
	fx.dataRepo.AssertNotCalled(t, "UpsertDailyMetric", mock.Anything, mock.Anything)
	fx.connRepo.AssertNotCalled(t, "TouchLastSync", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishDailySynced", mock.Anything, mock.Anything)
}

func TestSyncService_ReconcileDay_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").Return("access", nil)
	fx.provider.EXPECT().FetchDailyMetrics(ctx, "access", "2024-05-01").Return(scenarioPayload(t), nil)
	fx.runTransactions()
	fx.dataRepo.EXPECT().FindDailyMetricForUpdate(ctx, "u1", "2024-05-01", entity.ProviderFitbit).
		Return(nil, repository.ErrDailyMetricNotFound)
	fx.dataRepo.EXPECT().UpsertDailyMetric(ctx, mock.Anything).Return(nil)
	fx.connRepo.EXPECT().TouchLastSync(ctx, "u1", entity.ProviderFitbit, fixedNow).Return(nil)
	fx.publisher.EXPECT().PublishDailySynced(ctx, mock.Anything).Return(errors.New("topic not found"))

	result, err := fx.service.ReconcileDay(ctx, "u1", "2024-05-01")
	require.NoError(t, err)
	assert.True(t, result.OK)
}

func TestSyncService_ReconcileDay_UpsertFailureRollsBack(t *testing.T) {
	fx := createTestSyncService(t)
	ctx := context.Background()

	fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").Return("access", nil)
	fx.provider.EXPECT().FetchDailyMetrics(ctx, "access", "2024-05-01").Return(scenarioPayload(t), nil)
	fx.runTransactions()
	fx.dataRepo.EXPECT().FindDailyMetricForUpdate(ctx, "u1", "2024-05-01", entity.ProviderFitbit).
		Return(nil, repository.ErrDailyMetricNotFound)
	fx.dataRepo.EXPECT().UpsertDailyMetric(ctx, mock.Anything).
		Return(domainerrors.NewStorageError(errors.New("disk full"), "failed to upsert daily metrics"))

	_, err := fx.service.ReconcileDay(ctx, "u1", "2024-05-01")
	require.Error(t, err)
	assert.Equal(t, domainerrors.KindStorage, domainerrors.KindOf(err))
	fx.connRepo.AssertNotCalled(t, "TouchLastSync", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishDailySynced", mock.Anything, mock.Anything)
}

func TestSyncService_ReconcileDay_FailuresBeforeTransactionWriteNothing(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(fx syncServiceFixtures, ctx context.Context)
		wantKind domainerrors.Kind
	}{
		{
			name: "not connected",
			setup: func(fx syncServiceFixtures, ctx context.Context) {
				fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").
					Return("", errors.WithStack(domainerrors.ErrNotConnected))
			},
			wantKind: domainerrors.KindNotConnected,
		},
		{
			name: "refresh rejected",
			setup: func(fx syncServiceFixtures, ctx context.Context) {
				fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").
					Return("", domainerrors.NewRefreshError(400, "invalid_grant", nil))
			},
			wantKind: domainerrors.KindRefresh,
		},
		{
			name: "activity call failed",
			setup: func(fx syncServiceFixtures, ctx context.Context) {
				fx.connections.EXPECT().GetValidAccessToken(ctx, "u1").Return("access", nil)
				fx.provider.EXPECT().FetchDailyMetrics(ctx, "access", "2024-05-01").
					Return(nil, domainerrors.NewProviderAPIError(429, "rate limited", nil))
			},
			wantKind: domainerrors.KindProviderAPI,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSyncService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			_, err := fx.service.ReconcileDay(ctx, "u1", "2024-05-01")
			require.Error(t, err)
			assert.Equal(t, tt.wantKind, domainerrors.KindOf(err))
			fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}

func TestSyncService_ReconcileDay_Validation(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		date   string
	}{
		{name: "missing user", userID: "", date: "2024-05-01"},
		{name: "bad date", userID: "u1", date: "2024/05/01"},
		{name: "impossible date", userID: "u1", date: "2024-02-30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSyncService(t)

			_, err := fx.service.ReconcileDay(context.Background(), tt.userID, tt.date)
			require.Error(t, err)
			assert.Equal(t, domainerrors.KindValidation, domainerrors.KindOf(err))
		})
	}
}
