package scoring

import "time"

// minDayProgress floors the day-progress factor at one minute's worth of
// day. A factor of 0 at midnight would scale cumulative goals to 0 and make
// any nonzero reading look over-target.
const minDayProgress = 1.0 / 1440

// DayProgress returns the fraction of now's calendar day that has elapsed,
// clamped to [minDayProgress, 1]. The caller injects now so live scoring
// stays deterministic and testable.
func DayProgress(now time.Time) float64 {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	factor := now.Sub(startOfDay).Hours() / 24
	if factor < minDayProgress {
		factor = minDayProgress
	}
	if factor > 1 {
		factor = 1
	}
	return factor
}

// ScaleTarget adjusts a cumulative-minimum target for partial-day scoring:
// at midday a 10000-step goal becomes 5000 steps. Band targets are returned
// unchanged; a sleep or heart-rate range is not meaningfully "partial".
func ScaleTarget(mt MetricType, target TargetRange, factor float64) TargetRange {
	if mt.Direction() != CumulativeMin {
		return target
	}
	return TargetRange{
		Low:  target.Low * factor,
		High: target.High * factor,
	}
}
