package model

import (
	"time"

	"github.com/google/uuid"
)

// WearableDataModel is the GORM-specific struct for the 'wearable_data' table.
// One row per (user_id, date, source); provider columns and manual columns share it.
type WearableDataModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID string    `gorm:"type:varchar(128);not null;uniqueIndex:idx_wearable_data_user_date_source,priority:1"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:idx_wearable_data_user_date_source,priority:2"`
	Source string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_wearable_data_user_date_source,priority:3"`

	Steps        int     `gorm:"not null;default:0"`
	Distance     float64 `gorm:"type:numeric(10,2);not null;default:0"`
	Calories     *int
	SleepMinutes *int
	HeartRateAvg *int
	HeartRateMin *int
	HeartRateMax *int
	SyncedAt     *time.Time

	BPSys              *int     `gorm:"column:bp_sys"`
	BPDia              *int     `gorm:"column:bp_dia"`
	OxygenLevel        *float64 `gorm:"type:numeric(5,2)"`
	OxygenMin          *float64 `gorm:"type:numeric(5,2)"`
	OxygenMax          *float64 `gorm:"type:numeric(5,2)"`
	OxygenAvg          *float64 `gorm:"type:numeric(5,2)"`
	StressLevel        *string  `gorm:"type:varchar(32)"`
	StressScore        *int
	NutritionKcal      *int
	NutritionProteinG  *float64 `gorm:"column:nutrition_protein_g;type:numeric(7,2)"`
	NutritionCarbsG    *float64 `gorm:"column:nutrition_carbs_g;type:numeric(7,2)"`
	NutritionFatG      *float64 `gorm:"column:nutrition_fat_g;type:numeric(7,2)"`
	WorkoutName        *string  `gorm:"type:varchar(255)"`
	WorkoutDurationMin *int
	WorkoutDistanceKm  *float64 `gorm:"column:workout_distance_km;type:numeric(10,2)"`
	WorkoutCalories    *int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (WearableDataModel) TableName() string {
	return "wearable_data"
}
