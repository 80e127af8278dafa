package store

import "time"

// Auth represents OAuth tokens for Oura API access
type Auth struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// DailyScore represents cached final scores for one completed day.
// Either score may be absent when the day lacked the data to compute it.
type DailyScore struct {
	Date       string // YYYY-MM-DD
	LifeIndex  *int
	Recovery   *int
	RestDay    bool
	ComputedAt time.Time
}
