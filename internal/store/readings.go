package store

import (
	"fmt"

	"lifeindex/internal/scoring"
)

// UpsertReading stores or replaces one metric's value for a calendar day.
// Dates are YYYY-MM-DD in the user's local day.
func (db *DB) UpsertReading(date string, mt scoring.MetricType, value float64) error {
	if !scoring.ValidMetricType(string(mt)) {
		return fmt.Errorf("%w: %q", scoring.ErrUnknownMetric, mt)
	}
	_, err := db.Exec(`
		INSERT INTO readings (date, metric_type, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date, metric_type) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`, date, string(mt), value)
	return err
}

// UpsertReadings stores a full day's readings in one transaction
func (db *DB) UpsertReadings(date string, readings scoring.Readings) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO readings (date, metric_type, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date, metric_type) DO UPDATE SET
			value = excluded.value,
			updated_at = CURRENT_TIMESTAMP
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for mt, value := range readings {
		if !scoring.ValidMetricType(string(mt)) {
			return fmt.Errorf("%w: %q", scoring.ErrUnknownMetric, mt)
		}
		if _, err := stmt.Exec(date, string(mt), value); err != nil {
			return fmt.Errorf("storing %s reading: %w", mt, err)
		}
	}

	return tx.Commit()
}

// GetReadings retrieves all readings for a calendar day.
// Days with no data return an empty map, not an error.
func (db *DB) GetReadings(date string) (scoring.Readings, error) {
	rows, err := db.Query(`
		SELECT metric_type, value
		FROM readings
		WHERE date = ?
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	readings := make(scoring.Readings)
	for rows.Next() {
		var metricType string
		var value float64
		if err := rows.Scan(&metricType, &value); err != nil {
			return nil, err
		}
		readings[scoring.MetricType(metricType)] = value
	}
	return readings, rows.Err()
}

// GetReadingDates returns the distinct dates with readings, newest first
func (db *DB) GetReadingDates(limit int) ([]string, error) {
	rows, err := db.Query(`
		SELECT DISTINCT date
		FROM readings
		ORDER BY date DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}
