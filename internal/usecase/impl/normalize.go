package impl

import (
	"math"

	"wearsync/internal/domain/entity"
)

const totalDistanceActivity = "total"

// normalizeDailyMetrics maps a raw provider payload onto the provider-owned columns.
// Absent values stay nil; a reported zero stays zero.
func normalizeDailyMetrics(payload *entity.RawProviderPayload) entity.ProviderMetrics {
	summary := payload.Activity.Summary

	metrics := entity.ProviderMetrics{
		Steps:    summary.Steps.Int(),
		Calories: summary.CaloriesOut.IntPtr(),
	}

	for _, d := range summary.Distances {
		if d.Activity == totalDistanceActivity && d.Distance.Valid {
			metrics.DistanceKm = math.Round(d.Distance.Value*100) / 100

			break
		}
	}

	if payload.Sleep != nil {
		metrics.SleepMinutes = payload.Sleep.Summary.TotalMinutesAsleep.IntPtr()
	}

	if payload.Heart != nil && len(payload.Heart.ActivitiesHeart) > 0 {
		value := payload.Heart.ActivitiesHeart[0].Value
		metrics.HeartRateAvg = value.RestingHeartRate.IntPtr()
		metrics.HeartRateMin, metrics.HeartRateMax = zoneBounds(value.HeartRateZones)
	}

	return metrics
}

// zoneBounds returns the smallest non-zero zone minimum and the largest non-zero zone maximum.
func zoneBounds(zones []entity.HeartRateZone) (*int, *int) {
	var lo, hi *int

	for _, z := range zones {
		if v := z.Min.Int(); z.Min.Valid && v > 0 && (lo == nil || v < *lo) {
			lo = &v
		}
		if v := z.Max.Int(); z.Max.Valid && v > 0 && (hi == nil || v > *hi) {
			hi = &v
		}
	}

	return lo, hi
}
