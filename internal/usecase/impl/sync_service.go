package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "wearsync/internal/delivery/context"
	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/domain/service"
	"wearsync/internal/errors"
	"wearsync/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// syncService implements the SyncUsecase interface.
type syncService struct {
	txManager   repository.TransactionManager
	connections usecase.ConnectionUsecase
	provider    service.WearableProvider
	publisher   service.EventPublisher
	recorder    service.MetricsRecorder
	logger      *slog.Logger
	now         func() time.Time
}

// SyncServiceParams holds dependencies for SyncService, injected by Fx.
type SyncServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	Connections usecase.ConnectionUsecase
	Provider    service.WearableProvider
	Publisher   service.EventPublisher
	Recorder    service.MetricsRecorder
	Logger      *slog.Logger
}

// NewSyncService is the constructor for syncService.
func NewSyncService(params SyncServiceParams) usecase.SyncUsecase {
	return &syncService{
		txManager:   params.TxManager,
		connections: params.Connections,
		provider:    params.Provider,
		publisher:   params.Publisher,
		recorder:    params.Recorder,
		logger:      params.Logger,
		now:         time.Now,
	}
}

// ReconcileDay fetches the day outside any transaction, then merges and commits atomically.
func (s *syncService) ReconcileDay(ctx context.Context, userID, date string) (*usecase.SyncResult, error) {
	start := s.now()

	result, err := s.reconcile(ctx, userID, date)
	if err != nil {
		s.recorder.ObserveSync(service.OutcomeFailure, time.Since(start))

		return nil, err
	}
	s.recorder.ObserveSync(service.OutcomeSuccess, time.Since(start))

	return result, nil
}

func (s *syncService) reconcile(ctx context.Context, userID, date string) (*usecase.SyncResult, error) {
	if userID == "" {
		return nil, errors.WithStack(domainerrors.ErrMissingUserID)
	}
	if _, err := time.Parse(entity.DateLayout, date); err != nil {
		return nil, errors.WithStack(domainerrors.NewValidationError("date must be YYYY-MM-DD"))
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger).With(
		slog.String("userID", userID),
		slog.String("date", date),
	)

	accessToken, err := s.connections.GetValidAccessToken(ctx, userID)
	if err != nil {
		return nil, err
	}

	payload, err := s.provider.FetchDailyMetrics(ctx, accessToken, date)
	if err != nil {
		return nil, err
	}

	source := s.provider.Provider()
	syncedAt := s.now().UTC()
	record := &entity.DailyMetricRecord{
		UserID:   userID,
		Date:     date,
		Source:   source,
		Metrics:  normalizeDailyMetrics(payload),
		SyncedAt: &syncedAt,
	}

	err = s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		dataRepo := factory.NewDailyMetricRepository()

		existing, err := dataRepo.FindDailyMetricForUpdate(ctx, userID, date, source)
		switch {
		case err == nil:
			record.Manual = existing.Manual
		case errors.Is(err, repository.ErrDailyMetricNotFound):
		default:
			// Upserting without the prior row would null its manual columns.
			return err
		}

		if err := dataRepo.UpsertDailyMetric(ctx, record); err != nil {
			return err
		}

		if err := factory.NewConnectionRepository().TouchLastSync(ctx, userID, source, syncedAt); err != nil {
			return errors.Wrap(err, "failed to record last sync")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishSynced(ctx, logger, record)

	logger.InfoContext(ctx, "Daily metrics synced", slog.Int("steps", record.Metrics.Steps))

	return &usecase.SyncResult{
		OK:       true,
		Date:     date,
		Steps:    record.Metrics.Steps,
		Calories: record.Metrics.Calories,
	}, nil
}

// publishSynced runs after commit; the record is already durable, so a failed publish is only logged.
func (s *syncService) publishSynced(ctx context.Context, logger *slog.Logger, record *entity.DailyMetricRecord) {
	event := &service.DailySyncedEvent{
		EventID:   uuid.New().String(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		UserID:    record.UserID,
		Date:      record.Date,
		Source:    string(record.Source),
		Steps:     record.Metrics.Steps,
		Calories:  record.Metrics.Calories,
		SyncedAt:  *record.SyncedAt,
	}

	if err := s.publisher.PublishDailySynced(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish daily synced event", slog.Any("error", err))
	}
}
