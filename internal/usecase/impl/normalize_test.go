package impl

import (
	"encoding/json"
	"testing"

	"wearsync/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePayload(t *testing.T, activity, sleep, heart string) *entity.RawProviderPayload {
	t.Helper()

	payload := &entity.RawProviderPayload{}
	require.NoError(t, json.Unmarshal([]byte(activity), &payload.Activity))
	if sleep != "" {
		payload.Sleep = &entity.SleepPayload{}
		require.NoError(t, json.Unmarshal([]byte(sleep), payload.Sleep))
	}
	if heart != "" {
		payload.Heart = &entity.HeartPayload{}
		require.NoError(t, json.Unmarshal([]byte(heart), payload.Heart))
	}

	return payload
}

func TestNormalizeDailyMetrics(t *testing.T) {
	tests := []struct {
		name     string
		activity string
		sleep    string
		heart    string
		want     entity.ProviderMetrics
	}{
		{
			name:     "activity only",
			activity: scenarioActivity,
			want:     entity.ProviderMetrics{Steps: 8421, DistanceKm: 6.23, Calories: intPtr(2100)},
		},
		{
			name:     "empty summary",
			activity: `{"summary":{}}`,
			want:     entity.ProviderMetrics{},
		},
		{
			name:     "non numeric steps and zero calories",
			activity: `{"summary":{"steps":"many","caloriesOut":0}}`,
			want:     entity.ProviderMetrics{Steps: 0, Calories: intPtr(0)},
		},
		{
			name:     "only the total distance counts",
			activity: `{"summary":{"steps":10,"distances":[{"activity":"tracker","distance":9.9},{"activity":"total","distance":1.005}]}}`,
			want:     entity.ProviderMetrics{Steps: 10, DistanceKm: 1},
		},
		{
			name:     "sleep and heart rate",
			activity: `{"summary":{"steps":1}}`,
			sleep:    `{"summary":{"totalMinutesAsleep":431}}`,
			heart: `{"activities-heart":[{"value":{"restingHeartRate":58,"heartRateZones":[
				{"name":"Out of Range","min":30,"max":98},
				{"name":"Fat Burn","min":98,"max":137},
				{"name":"Peak","min":0,"max":0}]}}]}`,
			want: entity.ProviderMetrics{
				Steps:        1,
				SleepMinutes: intPtr(431),
				HeartRateAvg: intPtr(58),
				HeartRateMin: intPtr(30),
				HeartRateMax: intPtr(137),
			},
		},
		{
			name:     "heart rate without resting value",
			activity: `{"summary":{"steps":1}}`,
			heart:    `{"activities-heart":[{"value":{"heartRateZones":[{"min":40,"max":120}]}}]}`,
			want: entity.ProviderMetrics{
				Steps:        1,
				HeartRateMin: intPtr(40),
				HeartRateMax: intPtr(120),
			},
		},
		{
			name:     "empty heart list",
			activity: `{"summary":{"steps":1}}`,
			heart:    `{"activities-heart":[]}`,
			want:     entity.ProviderMetrics{Steps: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalizeDailyMetrics(decodePayload(t, tt.activity, tt.sleep, tt.heart))
			assert.Equal(t, tt.want, got)
		})
	}
}
