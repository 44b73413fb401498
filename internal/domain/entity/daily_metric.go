package entity

import "time"

// DateLayout is the wire and storage format of a record's day.
const DateLayout = "2006-01-02"

// DailyMetricRecord is one user's health metrics for one day from one source.
// Metrics belong to the sync; Manual is entered elsewhere and only ever carried forward by it.
type DailyMetricRecord struct {
	UserID   string
	Date     string
	Source   ProviderType
	Metrics  ProviderMetrics
	Manual   ManualFields
	SyncedAt *time.Time
}

// ProviderMetrics are the provider-owned columns. Nil means the provider did not report the value.
type ProviderMetrics struct {
	Steps        int
	DistanceKm   float64
	Calories     *int
	SleepMinutes *int
	HeartRateAvg *int
	HeartRateMin *int
	HeartRateMax *int
}

// ManualFields are entered by the user and must survive every sync untouched.
type ManualFields struct {
	BPSys              *int
	BPDia              *int
	OxygenLevel        *float64
	OxygenMin          *float64
	OxygenMax          *float64
	OxygenAvg          *float64
	StressLevel        *string
	StressScore        *int
	NutritionKcal      *int
	NutritionProteinG  *float64
	NutritionCarbsG    *float64
	NutritionFatG      *float64
	WorkoutName        *string
	WorkoutDurationMin *int
	WorkoutDistanceKm  *float64
	WorkoutCalories    *int
}
