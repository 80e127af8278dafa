package service

import (
	"database/sql"
	"testing"
	"time"

	"lifeindex/internal/scoring"
	"lifeindex/internal/store"

	_ "modernc.org/sqlite"
)

func TestFormatMetricValue(t *testing.T) {
	tests := []struct {
		metric   scoring.MetricType
		value    float64
		expected string
	}{
		{scoring.MetricSteps, 8421, "8421"},
		{scoring.MetricBloodOxygen, 0.972, "97.2%"},
		{scoring.MetricSleepDuration, 452, "7h 32m"},
		{scoring.MetricSleepDuration, 45, "45m"},
		{scoring.MetricHeartRate, 72, "72 bpm"},
		{scoring.MetricRestingHeartRate, 48, "48 bpm"},
		{scoring.MetricHRV, 62, "62 ms"},
		{scoring.MetricActiveCalories, 512, "512 kcal"},
		{scoring.MetricMindfulMinutes, 15, "15 min"},
		{scoring.MetricWorkoutMinutes, 42, "42 min"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			got := FormatMetricValue(tt.metric, tt.value)
			if got != tt.expected {
				t.Errorf("FormatMetricValue(%q, %v) = %q, want %q", tt.metric, tt.value, got, tt.expected)
			}
		})
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h 0m"},
		{452, "7h 32m"},
		{480, "8h 0m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := formatMinutes(tt.minutes); got != tt.expected {
				t.Errorf("formatMinutes(%d) = %q, want %q", tt.minutes, got, tt.expected)
			}
		})
	}
}

func setupQueryService(t *testing.T) (*QueryService, *store.DB) {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := store.NewTestDB(sqlDB)
	if err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	engine, err := scoring.NewEngine(scoring.DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	return NewQueryService(db, engine, 30), db
}

func TestGetDashboardDataEmptyStore(t *testing.T) {
	qs, _ := setupQueryService(t)

	data, err := qs.GetDashboardData(time.Now())
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	// No data is an expected state: nil scores, never zeros
	if data.Live != nil {
		t.Errorf("Live = %+v, want nil with no readings", data.Live)
	}
	if data.Recovery != nil {
		t.Errorf("Recovery = %+v, want nil with no readings", data.Recovery)
	}
}

func TestGetDashboardDataLiveScore(t *testing.T) {
	qs, db := setupQueryService(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	today := now.Format(DateFormat)

	// 5000 steps at noon meets the half-day-scaled 10000-step goal
	if err := db.UpsertReading(today, scoring.MetricSteps, 5000); err != nil {
		t.Fatalf("UpsertReading() error: %v", err)
	}

	data, err := qs.GetDashboardData(now)
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	if data.Live == nil {
		t.Fatal("Live = nil, want a score")
	}
	if data.Live.Score != 100 {
		t.Errorf("Live.Score = %d, want 100", data.Live.Score)
	}
	if data.Recovery != nil {
		t.Errorf("Recovery = %+v, want nil without HRV/RHR/sleep", data.Recovery)
	}
}

func TestGetDashboardDataTrend(t *testing.T) {
	qs, db := setupQueryService(t)

	days := []struct {
		date  string
		score int
	}{
		{"2025-06-12", 61},
		{"2025-06-13", 75},
		{"2025-06-14", 82},
	}
	for _, d := range days {
		score := d.score
		err := db.UpsertDailyScore(&store.DailyScore{
			Date:       d.date,
			LifeIndex:  &score,
			ComputedAt: time.Now(),
		})
		if err != nil {
			t.Fatalf("UpsertDailyScore() error: %v", err)
		}
	}

	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	data, err := qs.GetDashboardData(now)
	if err != nil {
		t.Fatalf("GetDashboardData() error: %v", err)
	}

	expected := []float64{61, 75, 82}
	if len(data.TrendScores) != len(expected) {
		t.Fatalf("len(TrendScores) = %d, want %d", len(data.TrendScores), len(expected))
	}
	for i, want := range expected {
		if data.TrendScores[i] != want {
			t.Errorf("TrendScores[%d] = %v, want %v (chronological order)", i, data.TrendScores[i], want)
		}
	}
}

func TestGetHistoryExcludesToday(t *testing.T) {
	qs, db := setupQueryService(t)

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	if err := db.UpsertReading("2025-06-15", scoring.MetricSteps, 4000); err != nil {
		t.Fatalf("UpsertReading() error: %v", err)
	}
	if err := db.UpsertReadings("2025-06-14", scoring.Readings{
		scoring.MetricSteps:         10000,
		scoring.MetricSleepDuration: 450,
		scoring.MetricHRV:           70,
	}); err != nil {
		t.Fatalf("UpsertReadings() error: %v", err)
	}

	history, err := qs.GetHistory(now)
	if err != nil {
		t.Fatalf("GetHistory() error: %v", err)
	}

	if len(history) != 1 {
		t.Fatalf("len(history) = %d, want 1 (today excluded)", len(history))
	}

	day := history[0]
	if day.Date != "2025-06-14" {
		t.Errorf("Date = %q, want 2025-06-14", day.Date)
	}
	if day.Result == nil {
		t.Fatal("Result = nil, want a final score")
	}
	if day.Result.Score != 100 {
		t.Errorf("Score = %d, want 100 (all three metrics at goal)", day.Result.Score)
	}
	if day.Recovery == nil {
		t.Fatal("Recovery = nil, want a score from HRV and sleep")
	}
	if day.Recovery.Score != 100 {
		t.Errorf("Recovery.Score = %d, want 100", day.Recovery.Score)
	}
}
