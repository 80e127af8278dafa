package store

import (
	"database/sql"
	"errors"
	"time"
)

// UpsertDailyScore caches the final scores for a completed day
func (db *DB) UpsertDailyScore(s *DailyScore) error {
	_, err := db.Exec(`
		INSERT INTO daily_scores (date, life_index, recovery, rest_day, computed_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			life_index = excluded.life_index,
			recovery = excluded.recovery,
			rest_day = excluded.rest_day,
			computed_at = excluded.computed_at
	`, s.Date, s.LifeIndex, s.Recovery, boolToInt(s.RestDay), s.ComputedAt.Format(time.RFC3339))
	return err
}

// GetDailyScore retrieves the cached scores for one day
func (db *DB) GetDailyScore(date string) (*DailyScore, error) {
	row := db.QueryRow(`
		SELECT date, life_index, recovery, rest_day, computed_at
		FROM daily_scores
		WHERE date = ?
	`, date)

	score, err := scanDailyScore(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoScore
	}
	return score, err
}

// GetScoreHistory retrieves cached scores for the most recent days, newest first
func (db *DB) GetScoreHistory(limit int) ([]DailyScore, error) {
	rows, err := db.Query(`
		SELECT date, life_index, recovery, rest_day, computed_at
		FROM daily_scores
		ORDER BY date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []DailyScore
	for rows.Next() {
		score, err := scanDailyScore(rows)
		if err != nil {
			return nil, err
		}
		scores = append(scores, *score)
	}
	return scores, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDailyScore(row rowScanner) (*DailyScore, error) {
	var s DailyScore
	var lifeIndex, recovery *int64
	var restDay int64
	var computedAt string

	if err := row.Scan(&s.Date, &lifeIndex, &recovery, &restDay, &computedAt); err != nil {
		return nil, err
	}

	if lifeIndex != nil {
		v := int(*lifeIndex)
		s.LifeIndex = &v
	}
	if recovery != nil {
		v := int(*recovery)
		s.Recovery = &v
	}
	s.RestDay = restDay != 0

	parsed, err := time.Parse(time.RFC3339, computedAt)
	if err == nil {
		s.ComputedAt = parsed
	}
	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
