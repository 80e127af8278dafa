package oura

import "time"

// page is the envelope every Oura v2 collection endpoint returns
type page[T any] struct {
	Data      []T     `json:"data"`
	NextToken *string `json:"next_token"`
}

// DailyActivity represents a daily activity summary document
type DailyActivity struct {
	ID             string  `json:"id"`
	Day            string  `json:"day"` // YYYY-MM-DD
	Steps          float64 `json:"steps"`
	ActiveCalories float64 `json:"active_calories"`
	TotalCalories  float64 `json:"total_calories"`
	Score          *int    `json:"score"`
}

// Sleep represents a single sleep period document
type Sleep struct {
	ID                 string   `json:"id"`
	Day                string   `json:"day"` // day the sleep is attributed to
	Type               string   `json:"type"` // "long_sleep", "nap", ...
	TotalSleepDuration float64  `json:"total_sleep_duration"` // seconds
	AverageHRV         *float64 `json:"average_hrv"`          // ms
	AverageHeartRate   *float64 `json:"average_heart_rate"`   // bpm
	LowestHeartRate    *float64 `json:"lowest_heart_rate"`    // bpm
}

// DailySpO2 represents a daily blood oxygen summary document
type DailySpO2 struct {
	ID             string `json:"id"`
	Day            string `json:"day"`
	SpO2Percentage *struct {
		Average float64 `json:"average"`
	} `json:"spo2_percentage"`
}

// Session represents a moment session (meditation, breathing, relaxation)
type Session struct {
	ID            string    `json:"id"`
	Day           string    `json:"day"`
	Type          string    `json:"type"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// Minutes returns the session duration in minutes
func (s Session) Minutes() float64 {
	return s.EndDatetime.Sub(s.StartDatetime).Minutes()
}

// Workout represents a logged workout document
type Workout struct {
	ID            string    `json:"id"`
	Day           string    `json:"day"`
	Activity      string    `json:"activity"`
	Intensity     string    `json:"intensity"`
	StartDatetime time.Time `json:"start_datetime"`
	EndDatetime   time.Time `json:"end_datetime"`
}

// Minutes returns the workout duration in minutes
func (w Workout) Minutes() float64 {
	return w.EndDatetime.Sub(w.StartDatetime).Minutes()
}

// HeartRateSample is one timestamped heart rate measurement
type HeartRateSample struct {
	BPM       float64   `json:"bpm"`
	Source    string    `json:"source"` // "awake", "rest", "sleep", "workout", ...
	Timestamp time.Time `json:"timestamp"`
}
