package store

import "database/sql"

// migrate runs all database migrations
func migrate(db *sql.DB) error {
	migrations := []string{
		// Authentication (singleton row)
		`CREATE TABLE IF NOT EXISTS auth (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			access_token TEXT NOT NULL,
			refresh_token TEXT NOT NULL,
			expires_at INTEGER NOT NULL,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Daily readings (one value per metric per calendar day)
		`CREATE TABLE IF NOT EXISTS readings (
			date TEXT NOT NULL,
			metric_type TEXT NOT NULL,
			value REAL NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (date, metric_type)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_readings_date ON readings(date)`,

		// Cached final scores for completed days. Labels are not stored;
		// they derive from the score so they can never drift out of sync.
		`CREATE TABLE IF NOT EXISTS daily_scores (
			date TEXT PRIMARY KEY,
			life_index INTEGER,
			recovery INTEGER,
			rest_day INTEGER NOT NULL DEFAULT 0,
			computed_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,

		// Sync State (key-value store for sync tracking)
		`CREATE TABLE IF NOT EXISTS sync_state (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return err
		}
	}

	return nil
}
