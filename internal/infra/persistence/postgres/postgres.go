package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"wearsync/config"
	"wearsync/internal/domain/lifecycle"
	"wearsync/internal/errors"
	"wearsync/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolWatchInterval       = 5 * time.Second
	poolWaitWarnThreshold   = 50 * time.Millisecond
	dbStatsCollectorDBLabel = "wearsync"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// New opens the primary (and any replicas) and ties the pool to the app lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement work goes through TransactionManager.Execute.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if err := params.Metrics.RegisterDBStats(sqlDB, dbStatsCollectorDBLabel); err != nil {
		return nil, err
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB, poolWatchInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolWaits logs connection pool contention seen since the previous tick.
// Steady-state gauges are exported by the DB stats collector; this only surfaces bursts in the logs.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waits := cur.WaitCount - prev.WaitCount
			waited := cur.WaitDuration - prev.WaitDuration
			prev = cur

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= poolWaitWarnThreshold {
				level = slog.LevelWarn
			}

			logger.LogAttrs(ctx, level, "Postgres pool contention",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("inUse", cur.InUse),
				slog.Int("maxOpen", cur.MaxOpenConnections),
			)
		}
	}
}
