package repository

import (
	"context"

	"wearsync/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDailyMetricNotFound is returned when no record exists for (user_id, date, source).
var ErrDailyMetricNotFound = errors.New("daily metric record not found")

// DailyMetricRepository defines persistence of daily metric records, addressed by (user_id, date, source).
type DailyMetricRepository interface {
	// FindDailyMetricForUpdate loads the record and, inside a transaction, locks it until commit.
	// A failed lookup does not abort the surrounding transaction.
	FindDailyMetricForUpdate(ctx context.Context, userID, date string, source entity.ProviderType) (*entity.DailyMetricRecord, error)

	// UpsertDailyMetric writes every column of the record, inserting or overwriting by (user_id, date, source).
	UpsertDailyMetric(ctx context.Context, record *entity.DailyMetricRecord) error
}
