package scoring

import (
	"fmt"
	"math"
)

// ScoreMetric maps one observed value to a dimensionless score in [0, 1]
// against its (possibly day-progress-scaled) target range.
//
// Band metrics score 1.0 anywhere inside [Low, High] and decay linearly to
// exactly 0 at one band-width beyond the violated bound, so the score is
// continuous and non-increasing in distance from the band.
//
// Cumulative-minimum metrics score value/Low capped at 1.0: reaching the
// goal is perfect and overshooting never hurts. High is display-only.
func ScoreMetric(value float64, target TargetRange, mt MetricType) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: non-finite value for %q", ErrInvalidValue, mt)
	}
	if value < 0 {
		return 0, fmt.Errorf("%w: negative value %.2f for %q", ErrInvalidValue, value, mt)
	}

	if mt.Direction() == CumulativeMin {
		if target.Low <= 0 {
			return 0, fmt.Errorf("%w: non-positive goal %.2f for %q", ErrInvalidValue, target.Low, mt)
		}
		return math.Min(1.0, value/target.Low), nil
	}

	// Band metric: perfect inside the range.
	if value >= target.Low && value <= target.High {
		return 1.0, nil
	}

	width := target.High - target.Low
	if width <= 0 {
		// Degenerate single-point band: anything off the point scores 0.
		return 0, nil
	}

	var dist float64
	if value < target.Low {
		dist = target.Low - value
	} else {
		dist = value - target.High
	}

	score := 1.0 - dist/width
	if score < 0 {
		score = 0
	}
	return score, nil
}
