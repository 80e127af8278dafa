package scoring

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Readings maps metric types to a single observed value for one calendar
// day. Metrics absent from the map are skipped during aggregation, never
// treated as zero.
type Readings map[MetricType]float64

// BreakdownEntry is one metric's contribution to a composite score.
type BreakdownEntry struct {
	Metric          MetricType
	RawValue        float64
	Normalized      float64 // [0, 1]
	Weight          float64
	ContributionPct float64 // share of total weighted contribution, sums to 100
}

// Result is a computed LifeIndex score with its ranked breakdown,
// sorted descending by normalized score.
type Result struct {
	Score     int // [0, 100]
	Label     string
	Breakdown []BreakdownEntry
}

// Top returns the entry with the largest weighted contribution.
func (r *Result) Top() *BreakdownEntry {
	return r.extreme(func(a, b float64) bool { return a > b })
}

// Weakest returns the entry with the smallest weighted contribution.
func (r *Result) Weakest() *BreakdownEntry {
	return r.extreme(func(a, b float64) bool { return a < b })
}

func (r *Result) extreme(better func(a, b float64) bool) *BreakdownEntry {
	if len(r.Breakdown) == 0 {
		return nil
	}
	best := &r.Breakdown[0]
	for i := 1; i < len(r.Breakdown); i++ {
		e := &r.Breakdown[i]
		if better(e.Normalized*e.Weight, best.Normalized*best.Weight) {
			best = e
		}
	}
	return best
}

// Engine computes LifeIndex scores against an injected catalog. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	catalog Catalog
}

// NewEngine validates the catalog and returns an engine scoring against it.
func NewEngine(catalog Catalog) (*Engine, error) {
	if err := catalog.Validate(); err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}
	return &Engine{catalog: catalog}, nil
}

// Score computes the live, time-aware LifeIndex for today's readings.
// Cumulative goals are scaled by how much of now's day has elapsed, so a
// morning check-in is not penalized for steps not yet walked.
func (e *Engine) Score(readings Readings, now time.Time) (*Result, error) {
	return e.score(readings, DayProgress(now))
}

// FinalScore computes the end-of-day LifeIndex against full, unscaled
// targets. Use it for any day that is not today; the result for a completed
// day never changes.
func (e *Engine) FinalScore(readings Readings) (*Result, error) {
	return e.score(readings, 1.0)
}

func (e *Engine) score(readings Readings, factor float64) (*Result, error) {
	if len(readings) == 0 {
		return nil, ErrNoReadings
	}

	// Reject unknown metric keys up front; Readings is string-keyed so a
	// caller can hand us anything.
	for mt := range readings {
		if !ValidMetricType(string(mt)) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, mt)
		}
	}

	// Iterate in catalog order so breakdown ties stay deterministic.
	var weighted, weightSum float64
	entries := make([]BreakdownEntry, 0, len(readings))
	for _, mt := range AllMetricTypes {
		value, ok := readings[mt]
		if !ok {
			continue
		}

		target, err := e.catalog.TargetFor(mt)
		if err != nil {
			return nil, err
		}
		weight, err := e.catalog.WeightFor(mt)
		if err != nil {
			return nil, err
		}

		normalized, err := ScoreMetric(value, ScaleTarget(mt, target, factor), mt)
		if err != nil {
			return nil, err
		}

		weighted += normalized * weight
		weightSum += weight
		entries = append(entries, BreakdownEntry{
			Metric:     mt,
			RawValue:   value,
			Normalized: normalized,
			Weight:     weight,
		})
	}

	// Renormalize over only the metrics actually present: the composite is
	// always a convex combination of supplied metrics, so a day missing
	// blood-oxygen data does not lower the ceiling.
	if weightSum == 0 {
		return nil, ErrNoReadings
	}
	score := clampScore(int(math.Round(100 * weighted / weightSum)))

	if weighted > 0 {
		for i := range entries {
			entries[i].ContributionPct = entries[i].Normalized * entries[i].Weight / weighted * 100
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Normalized > entries[j].Normalized
	})

	return &Result{
		Score:     score,
		Label:     ScoreLabel(score),
		Breakdown: entries,
	}, nil
}

// ScoreLabel maps a 0-100 composite score to its qualitative tier. The TUI
// colors use the same breakpoints.
func ScoreLabel(score int) string {
	switch {
	case score >= 80:
		return "Excellent"
	case score >= 60:
		return "Good"
	case score >= 40:
		return "Fair"
	default:
		return "Poor"
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
