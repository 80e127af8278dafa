package service

import (
	"errors"
	"fmt"
	"time"

	"lifeindex/internal/scoring"
	"lifeindex/internal/store"
)

// QueryService provides read-only queries for the TUI
type QueryService struct {
	db          *store.DB
	engine      *scoring.Engine
	historyDays int
}

// NewQueryService creates a new query service
func NewQueryService(db *store.DB, engine *scoring.Engine, historyDays int) *QueryService {
	if historyDays <= 0 {
		historyDays = DefaultSyncDays
	}
	return &QueryService{db: db, engine: engine, historyDays: historyDays}
}

// DashboardData contains all data needed for the dashboard
type DashboardData struct {
	Today string

	// Live scores for today; nil means insufficient data, not zero
	Live     *scoring.Result
	Recovery *scoring.RecoveryResult

	// Trend chart, oldest first. TrendDates parallels TrendScores.
	TrendScores []float64
	TrendDates  []string

	// Recent completed days
	RecentDays []store.DailyScore
}

// GetDashboardData assembles today's live scores and the recent trend
func (q *QueryService) GetDashboardData(now time.Time) (*DashboardData, error) {
	today := now.Format(DateFormat)
	data := &DashboardData{Today: today}

	readings, err := q.db.GetReadings(today)
	if err != nil {
		return nil, fmt.Errorf("loading today's readings: %w", err)
	}

	// Live LifeIndex: time-aware so the morning score isn't punished for
	// steps not yet walked
	live, err := q.engine.Score(readings, now)
	if err == nil {
		data.Live = live
	} else if !errors.Is(err, scoring.ErrNoReadings) {
		return nil, fmt.Errorf("scoring today: %w", err)
	}

	recovery, err := scoring.RecoveryScore(RecoveryInputsFrom(readings))
	if err == nil {
		data.Recovery = recovery
	} else if !errors.Is(err, scoring.ErrNoRecoveryData) {
		return nil, fmt.Errorf("recovery for today: %w", err)
	}

	history, err := q.db.GetScoreHistory(q.historyDays)
	if err != nil {
		return nil, fmt.Errorf("loading score history: %w", err)
	}
	data.RecentDays = history

	// History arrives newest first; the chart wants chronological order
	for i := len(history) - 1; i >= 0; i-- {
		day := history[i]
		if day.LifeIndex == nil {
			continue
		}
		data.TrendScores = append(data.TrendScores, float64(*day.LifeIndex))
		data.TrendDates = append(data.TrendDates, day.Date)
	}

	return data, nil
}

// DayDetail is one past day with its full score breakdown
type DayDetail struct {
	Date     string
	Readings scoring.Readings
	Result   *scoring.Result // nil when the day had no scorable readings
	Recovery *scoring.RecoveryResult
}

// GetHistory recomputes final scores with breakdowns for recent completed
// days, newest first. Recomputing from stored readings is cheap (the engine
// is pure) and yields the per-metric detail the cache doesn't carry.
func (q *QueryService) GetHistory(now time.Time) ([]DayDetail, error) {
	dates, err := q.db.GetReadingDates(HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("loading reading dates: %w", err)
	}

	today := now.Format(DateFormat)
	var details []DayDetail
	for _, date := range dates {
		if date >= today {
			continue
		}

		readings, err := q.db.GetReadings(date)
		if err != nil {
			return nil, fmt.Errorf("loading readings for %s: %w", date, err)
		}

		detail := DayDetail{Date: date, Readings: readings}

		result, err := q.engine.FinalScore(readings)
		if err == nil {
			detail.Result = result
		} else if !errors.Is(err, scoring.ErrNoReadings) {
			return nil, fmt.Errorf("scoring %s: %w", date, err)
		}

		recovery, err := scoring.RecoveryScore(RecoveryInputsFrom(readings))
		if err == nil {
			detail.Recovery = recovery
		} else if !errors.Is(err, scoring.ErrNoRecoveryData) {
			return nil, fmt.Errorf("recovery for %s: %w", date, err)
		}

		details = append(details, detail)
	}

	return details, nil
}

// FormatMetricValue renders a raw reading with its unit for display
func FormatMetricValue(mt scoring.MetricType, value float64) string {
	switch mt {
	case scoring.MetricSteps:
		return fmt.Sprintf("%.0f", value)
	case scoring.MetricBloodOxygen:
		return fmt.Sprintf("%.1f%%", value*100)
	case scoring.MetricSleepDuration:
		return formatMinutes(int(value))
	case scoring.MetricHeartRate, scoring.MetricRestingHeartRate:
		return fmt.Sprintf("%.0f bpm", value)
	case scoring.MetricHRV:
		return fmt.Sprintf("%.0f ms", value)
	case scoring.MetricActiveCalories:
		return fmt.Sprintf("%.0f kcal", value)
	case scoring.MetricMindfulMinutes, scoring.MetricWorkoutMinutes:
		return fmt.Sprintf("%.0f min", value)
	default:
		return fmt.Sprintf("%.1f", value)
	}
}

// formatMinutes renders a minute count as "7h 12m"
func formatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
