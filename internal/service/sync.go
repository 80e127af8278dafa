package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"lifeindex/internal/oura"
	"lifeindex/internal/scoring"
	"lifeindex/internal/store"
)

// SyncService orchestrates importing readings from Oura and finalizing
// scores for completed days
type SyncService struct {
	client *oura.Client
	db     *store.DB
	engine *scoring.Engine
}

// NewSyncService creates a new sync service
func NewSyncService(client *oura.Client, db *store.DB, engine *scoring.Engine) *SyncService {
	return &SyncService{
		client: client,
		db:     db,
		engine: engine,
	}
}

// SyncProgress reports progress during sync
type SyncProgress struct {
	Phase     string // "readings", "scores"
	Total     int
	Completed int
	Error     error
}

// SyncResult contains the results of a sync operation
type SyncResult struct {
	DaysSynced     int
	ReadingsStored int
	ScoresComputed int
	Errors         []error
}

// SyncAll imports readings for the sync window and recomputes final scores
// for every completed day in it
func (s *SyncService) SyncAll(ctx context.Context, progress chan<- SyncProgress) (*SyncResult, error) {
	if progress != nil {
		defer close(progress)
	}

	result := &SyncResult{}
	now := time.Now()

	days, err := s.syncReadings(ctx, now, progress, result)
	if err != nil {
		return result, fmt.Errorf("syncing readings: %w", err)
	}

	if err := s.finalizeScores(ctx, now, days, progress, result); err != nil {
		return result, fmt.Errorf("computing scores: %w", err)
	}

	s.db.SetSyncState(SyncStateLastSync, now.Format(DateFormat))

	return result, nil
}

// RateLimitStatus reports remaining API requests in the current window
func (s *SyncService) RateLimitStatus() int {
	return s.client.RateLimitStatus()
}

// syncWindowStart picks where the sync window begins: the last watermark
// minus a small overlap, or DefaultSyncDays back on first sync
func (s *SyncService) syncWindowStart(now time.Time) time.Time {
	lastSync, _ := s.db.GetSyncState(SyncStateLastSync)
	if lastSync == "" {
		return now.AddDate(0, 0, -DefaultSyncDays)
	}
	parsed, err := time.ParseInLocation(DateFormat, lastSync, now.Location())
	if err != nil {
		return now.AddDate(0, 0, -DefaultSyncDays)
	}
	return parsed.AddDate(0, 0, -ResyncOverlapDays)
}

func (s *SyncService) syncReadings(ctx context.Context, now time.Time, progress chan<- SyncProgress, result *SyncResult) ([]string, error) {
	start := s.syncWindowStart(now)
	startDate := start.Format(DateFormat)
	endDate := now.Format(DateFormat)

	if progress != nil {
		progress <- SyncProgress{Phase: "readings"}
	}

	activities, err := s.client.GetDailyActivity(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetching daily activity: %w", err)
	}
	sleeps, err := s.client.GetSleep(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetching sleep: %w", err)
	}
	spo2s, err := s.client.GetDailySpO2(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetching SpO2: %w", err)
	}
	sessions, err := s.client.GetSessions(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetching sessions: %w", err)
	}
	workouts, err := s.client.GetWorkouts(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("fetching workouts: %w", err)
	}
	dayStart := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	hrSamples, err := s.client.GetHeartRate(ctx, dayStart, now)
	if err != nil {
		return nil, fmt.Errorf("fetching heart rate: %w", err)
	}

	byDay := BuildDailyReadings(activities, sleeps, spo2s, sessions, workouts, hrSamples)

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	for i, day := range days {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		readings := byDay[day]
		if err := s.db.UpsertReadings(day, readings); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("storing readings for %s: %w", day, err))
			continue
		}
		result.DaysSynced++
		result.ReadingsStored += len(readings)

		if progress != nil {
			progress <- SyncProgress{Phase: "readings", Total: len(days), Completed: i + 1}
		}
	}

	return days, nil
}

// finalizeScores recomputes and caches final scores for every synced day
// before today. Today is never finalized; its live score changes with each
// refresh until the day ends.
func (s *SyncService) finalizeScores(ctx context.Context, now time.Time, days []string, progress chan<- SyncProgress, result *SyncResult) error {
	today := now.Format(DateFormat)

	if progress != nil {
		progress <- SyncProgress{Phase: "scores", Total: len(days)}
	}

	for i, day := range days {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if day >= today {
			continue
		}

		readings, err := s.db.GetReadings(day)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("loading readings for %s: %w", day, err))
			continue
		}

		score := &store.DailyScore{Date: day, ComputedAt: now}

		lifeResult, err := s.engine.FinalScore(readings)
		if err == nil {
			score.LifeIndex = &lifeResult.Score
		} else if !errors.Is(err, scoring.ErrNoReadings) {
			result.Errors = append(result.Errors, fmt.Errorf("scoring %s: %w", day, err))
			continue
		}

		recoveryResult, err := scoring.RecoveryScore(RecoveryInputsFrom(readings))
		if err == nil {
			score.Recovery = &recoveryResult.Score
			score.RestDay = recoveryResult.RestDay
		} else if !errors.Is(err, scoring.ErrNoRecoveryData) {
			result.Errors = append(result.Errors, fmt.Errorf("recovery for %s: %w", day, err))
			continue
		}

		// Days with neither score stay uncached; "no data" is an expected
		// state, not a zero.
		if score.LifeIndex == nil && score.Recovery == nil {
			continue
		}

		if err := s.db.UpsertDailyScore(score); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("caching score for %s: %w", day, err))
			continue
		}
		result.ScoresComputed++

		if progress != nil {
			progress <- SyncProgress{Phase: "scores", Total: len(days), Completed: i + 1}
		}
	}

	return nil
}
