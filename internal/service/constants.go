package service

const (
	// DateFormat is the YYYY-MM-DD day key used across store and API layers
	DateFormat = "2006-01-02"

	// DefaultSyncDays is how far back a first sync reaches
	DefaultSyncDays = 30

	// ResyncOverlapDays re-fetches recent days on every sync, since sleep
	// and SpO2 documents can arrive a day late
	ResyncOverlapDays = 2

	// HistoryLimit caps how many past days the history screen loads
	HistoryLimit = 90

	// Sync state keys
	SyncStateLastSync = "last_reading_sync"
)

// mindfulSessionTypes are the Oura session types counted as mindful minutes
var mindfulSessionTypes = map[string]bool{
	"meditation": true,
	"breathing":  true,
	"relaxation": true,
	"rest":       true,
}
