package service

import (
	"lifeindex/internal/oura"
	"lifeindex/internal/scoring"
)

// BuildDailyReadings folds raw Oura documents into per-day readings keyed by
// YYYY-MM-DD. A metric appears in a day's map only when the provider
// reported it; absent data stays absent so the engine can renormalize
// instead of scoring a misleading zero.
func BuildDailyReadings(
	activities []oura.DailyActivity,
	sleeps []oura.Sleep,
	spo2s []oura.DailySpO2,
	sessions []oura.Session,
	workouts []oura.Workout,
	hrSamples []oura.HeartRateSample,
) map[string]scoring.Readings {
	days := make(map[string]scoring.Readings)

	get := func(day string) scoring.Readings {
		if r, ok := days[day]; ok {
			return r
		}
		r := make(scoring.Readings)
		days[day] = r
		return r
	}

	for _, a := range activities {
		r := get(a.Day)
		r[scoring.MetricSteps] = a.Steps
		r[scoring.MetricActiveCalories] = a.ActiveCalories
	}

	// Longest non-nap sleep wins the day; naps don't define sleep duration,
	// HRV, or resting HR.
	bestSleep := make(map[string]oura.Sleep)
	for _, s := range sleeps {
		if s.Type == "nap" {
			continue
		}
		if best, ok := bestSleep[s.Day]; !ok || s.TotalSleepDuration > best.TotalSleepDuration {
			bestSleep[s.Day] = s
		}
	}
	for day, s := range bestSleep {
		r := get(day)
		r[scoring.MetricSleepDuration] = s.TotalSleepDuration / 60
		if s.AverageHRV != nil {
			r[scoring.MetricHRV] = *s.AverageHRV
		}
		if s.LowestHeartRate != nil {
			r[scoring.MetricRestingHeartRate] = *s.LowestHeartRate
		}
	}

	for _, s := range spo2s {
		if s.SpO2Percentage == nil {
			continue
		}
		// Oura reports a percentage; the catalog band is a fraction.
		get(s.Day)[scoring.MetricBloodOxygen] = s.SpO2Percentage.Average / 100
	}

	mindful := make(map[string]float64)
	for _, s := range sessions {
		if mindfulSessionTypes[s.Type] {
			mindful[s.Day] += s.Minutes()
		}
	}
	for day, minutes := range mindful {
		if minutes > 0 {
			get(day)[scoring.MetricMindfulMinutes] = minutes
		}
	}

	workoutMinutes := make(map[string]float64)
	for _, w := range workouts {
		workoutMinutes[w.Day] += w.Minutes()
	}
	for day, minutes := range workoutMinutes {
		if minutes > 0 {
			get(day)[scoring.MetricWorkoutMinutes] = minutes
		}
	}

	// Daytime heart rate: average of awake samples per day
	type hrAccum struct {
		sum   float64
		count int
	}
	hrByDay := make(map[string]*hrAccum)
	for _, sample := range hrSamples {
		if sample.Source != "awake" {
			continue
		}
		day := sample.Timestamp.Format(DateFormat)
		acc, ok := hrByDay[day]
		if !ok {
			acc = &hrAccum{}
			hrByDay[day] = acc
		}
		acc.sum += sample.BPM
		acc.count++
	}
	for day, acc := range hrByDay {
		if acc.count > 0 {
			get(day)[scoring.MetricHeartRate] = acc.sum / float64(acc.count)
		}
	}

	return days
}

// RecoveryInputsFrom extracts the three recovery factors from a day's
// readings, leaving absent metrics nil
func RecoveryInputsFrom(readings scoring.Readings) scoring.RecoveryInputs {
	var inputs scoring.RecoveryInputs
	if v, ok := readings[scoring.MetricHRV]; ok {
		inputs.HRV = &v
	}
	if v, ok := readings[scoring.MetricRestingHeartRate]; ok {
		inputs.RestingHR = &v
	}
	if v, ok := readings[scoring.MetricSleepDuration]; ok {
		inputs.SleepMinutes = &v
	}
	return inputs
}
