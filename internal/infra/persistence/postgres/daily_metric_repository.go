package postgres

import (
	"context"
	"time"

	"wearsync/internal/domain/entity"
	domainerrors "wearsync/internal/domain/errors"
	"wearsync/internal/domain/repository"
	"wearsync/internal/errors"
	"wearsync/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// dailyMetricRepository implements the domain.DailyMetricRepository interface.
type dailyMetricRepository struct {
	db *gorm.DB
}

// NewDailyMetricRepository is the constructor for dailyMetricRepository.
func NewDailyMetricRepository(db *gorm.DB) repository.DailyMetricRepository {
	return &dailyMetricRepository{db: db}
}

// FindDailyMetricForUpdate locks the row until the caller's transaction ends.
func (repo *dailyMetricRepository) FindDailyMetricForUpdate(
	ctx context.Context,
	userID, date string,
	source entity.ProviderType,
) (*entity.DailyMetricRecord, error) {
	day, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewValidationError("date must be YYYY-MM-DD"))
	}

	var dataM model.WearableDataModel

	err = repo.db.WithContext(ctx).Clauses(dbresolver.Write, clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ? AND date = ? AND source = ?", userID, day, string(source)).
		Take(&dataM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDailyMetricNotFound
		}

		return nil, domainerrors.NewStorageError(errors.WithStack(err), "failed to load daily metrics")
	}

	return toDailyMetricDomain(&dataM), nil
}

// UpsertDailyMetric writes every provider and manual column, keyed by (user_id, date, source).
func (repo *dailyMetricRepository) UpsertDailyMetric(ctx context.Context, record *entity.DailyMetricRecord) error {
	dataM, err := fromDailyMetricDomain(record)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "source"}},
			UpdateAll: true,
		}).
		Create(dataM).Error
	if err != nil {
		return storageError(err, "failed to upsert daily metrics")
	}

	return nil
}

// --- Mapper Functions ---

// toDailyMetricDomain converts a GORM WearableDataModel to a domain DailyMetricRecord entity.
func toDailyMetricDomain(data *model.WearableDataModel) *entity.DailyMetricRecord {
	if data == nil {
		return nil
	}

	return &entity.DailyMetricRecord{
		UserID: data.UserID,
		Date:   data.Date.Format(entity.DateLayout),
		Source: entity.ProviderType(data.Source),
		Metrics: entity.ProviderMetrics{
			Steps:        data.Steps,
			DistanceKm:   data.Distance,
			Calories:     data.Calories,
			SleepMinutes: data.SleepMinutes,
			HeartRateAvg: data.HeartRateAvg,
			HeartRateMin: data.HeartRateMin,
			HeartRateMax: data.HeartRateMax,
		},
		Manual: entity.ManualFields{
			BPSys:              data.BPSys,
			BPDia:              data.BPDia,
			OxygenLevel:        data.OxygenLevel,
			OxygenMin:          data.OxygenMin,
			OxygenMax:          data.OxygenMax,
			OxygenAvg:          data.OxygenAvg,
			StressLevel:        data.StressLevel,
			StressScore:        data.StressScore,
			NutritionKcal:      data.NutritionKcal,
			NutritionProteinG:  data.NutritionProteinG,
			NutritionCarbsG:    data.NutritionCarbsG,
			NutritionFatG:      data.NutritionFatG,
			WorkoutName:        data.WorkoutName,
			WorkoutDurationMin: data.WorkoutDurationMin,
			WorkoutDistanceKm:  data.WorkoutDistanceKm,
			WorkoutCalories:    data.WorkoutCalories,
		},
		SyncedAt: data.SyncedAt,
	}
}

// fromDailyMetricDomain converts a domain DailyMetricRecord entity to a GORM WearableDataModel.
func fromDailyMetricDomain(data *entity.DailyMetricRecord) (*model.WearableDataModel, error) {
	if data == nil {
		return nil, errors.WithStack(domainerrors.NewValidationError("missing daily metric record"))
	}

	day, err := time.Parse(entity.DateLayout, data.Date)
	if err != nil {
		return nil, errors.WithStack(domainerrors.NewValidationError("date must be YYYY-MM-DD"))
	}

	return &model.WearableDataModel{
		UserID:             data.UserID,
		Date:               day,
		Source:             string(data.Source),
		Steps:              data.Metrics.Steps,
		Distance:           data.Metrics.DistanceKm,
		Calories:           data.Metrics.Calories,
		SleepMinutes:       data.Metrics.SleepMinutes,
		HeartRateAvg:       data.Metrics.HeartRateAvg,
		HeartRateMin:       data.Metrics.HeartRateMin,
		HeartRateMax:       data.Metrics.HeartRateMax,
		SyncedAt:           data.SyncedAt,
		BPSys:              data.Manual.BPSys,
		BPDia:              data.Manual.BPDia,
		OxygenLevel:        data.Manual.OxygenLevel,
		OxygenMin:          data.Manual.OxygenMin,
		OxygenMax:          data.Manual.OxygenMax,
		OxygenAvg:          data.Manual.OxygenAvg,
		StressLevel:        data.Manual.StressLevel,
		StressScore:        data.Manual.StressScore,
		NutritionKcal:      data.Manual.NutritionKcal,
		NutritionProteinG:  data.Manual.NutritionProteinG,
		NutritionCarbsG:    data.Manual.NutritionCarbsG,
		NutritionFatG:      data.Manual.NutritionFatG,
		WorkoutName:        data.Manual.WorkoutName,
		WorkoutDurationMin: data.Manual.WorkoutDurationMin,
		WorkoutDistanceKm:  data.Manual.WorkoutDistanceKm,
		WorkoutCalories:    data.Manual.WorkoutCalories,
	}, nil
}
