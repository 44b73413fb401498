package entity

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawProviderPayload is the decoded answer of one daily fetch.
// Sleep and Heart are nil when their calls failed; the activity call is mandatory.
type RawProviderPayload struct {
	Activity ActivityPayload
	Sleep    *SleepPayload
	Heart    *HeartPayload
}

type ActivityPayload struct {
	Summary ActivitySummary `json:"summary"`
}

type ActivitySummary struct {
	Steps       FlexNumber         `json:"steps"`
	CaloriesOut FlexNumber         `json:"caloriesOut"`
	Distances   []ActivityDistance `json:"distances"`
}

type ActivityDistance struct {
	Activity string     `json:"activity"`
	Distance FlexNumber `json:"distance"`
}

type SleepPayload struct {
	Summary struct {
		TotalMinutesAsleep FlexNumber `json:"totalMinutesAsleep"`
	} `json:"summary"`
}

type HeartPayload struct {
	ActivitiesHeart []HeartDay `json:"activities-heart"`
}

type HeartDay struct {
	DateTime string     `json:"dateTime"`
	Value    HeartValue `json:"value"`
}

type HeartValue struct {
	RestingHeartRate FlexNumber      `json:"restingHeartRate"`
	HeartRateZones   []HeartRateZone `json:"heartRateZones"`
}

type HeartRateZone struct {
	Name string     `json:"name"`
	Min  FlexNumber `json:"min"`
	Max  FlexNumber `json:"max"`
}

// FlexNumber accepts a JSON number or a numeric string.
// Valid is false when the field is absent, null, empty or not numeric, so absent and zero stay distinct.
type FlexNumber struct {
	Value float64
	Valid bool
}

func (n *FlexNumber) UnmarshalJSON(data []byte) error {
	*n = FlexNumber{}

	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}

	n.Value = v
	n.Valid = true

	return nil
}

// Int truncates the value toward zero.
func (n FlexNumber) Int() int {
	return int(n.Value)
}

// IntPtr returns nil when the number is not valid.
func (n FlexNumber) IntPtr() *int {
	if !n.Valid {
		return nil
	}
	v := n.Int()

	return &v
}
