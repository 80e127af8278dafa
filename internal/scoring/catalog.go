package scoring

import (
	"fmt"
	"math"
)

// MetricType identifies a kind of daily health reading.
type MetricType string

const (
	MetricSteps            MetricType = "steps"
	MetricHeartRate        MetricType = "heart_rate"
	MetricRestingHeartRate MetricType = "resting_heart_rate"
	MetricHRV              MetricType = "hrv"
	MetricBloodOxygen      MetricType = "blood_oxygen"
	MetricActiveCalories   MetricType = "active_calories"
	MetricSleepDuration    MetricType = "sleep_duration"
	MetricMindfulMinutes   MetricType = "mindful_minutes"
	MetricWorkoutMinutes   MetricType = "workout_minutes"
)

// AllMetricTypes lists every valid metric type in display order.
var AllMetricTypes = []MetricType{
	MetricSteps,
	MetricActiveCalories,
	MetricWorkoutMinutes,
	MetricMindfulMinutes,
	MetricSleepDuration,
	MetricHeartRate,
	MetricRestingHeartRate,
	MetricHRV,
	MetricBloodOxygen,
}

// ValidMetricType checks if a string is a valid metric type.
func ValidMetricType(s string) bool {
	for _, mt := range AllMetricTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Direction describes how a metric is scored against its target range.
type Direction int

const (
	// Band metrics are healthy inside [Low, High] and degrade outside it.
	Band Direction = iota
	// CumulativeMin metrics accumulate over the day toward the Low goal;
	// exceeding it never hurts.
	CumulativeMin
)

// Direction returns how values of this metric type are scored.
func (mt MetricType) Direction() Direction {
	switch mt {
	case MetricSteps, MetricActiveCalories, MetricMindfulMinutes, MetricWorkoutMinutes:
		return CumulativeMin
	default:
		return Band
	}
}

// Unit returns the display unit for this metric type.
func (mt MetricType) Unit() string {
	switch mt {
	case MetricSteps:
		return "steps"
	case MetricHeartRate, MetricRestingHeartRate:
		return "bpm"
	case MetricHRV:
		return "ms"
	case MetricBloodOxygen:
		return "%"
	case MetricActiveCalories:
		return "kcal"
	case MetricSleepDuration, MetricMindfulMinutes, MetricWorkoutMinutes:
		return "min"
	default:
		return ""
	}
}

// DisplayName returns a human-readable name for this metric type.
func (mt MetricType) DisplayName() string {
	switch mt {
	case MetricSteps:
		return "Steps"
	case MetricHeartRate:
		return "Heart Rate"
	case MetricRestingHeartRate:
		return "Resting HR"
	case MetricHRV:
		return "HRV"
	case MetricBloodOxygen:
		return "Blood Oxygen"
	case MetricActiveCalories:
		return "Active Calories"
	case MetricSleepDuration:
		return "Sleep"
	case MetricMindfulMinutes:
		return "Mindfulness"
	case MetricWorkoutMinutes:
		return "Workouts"
	default:
		return string(mt)
	}
}

// TargetRange is the closed interval of healthy values for a metric.
// For cumulative-minimum metrics Low is the full-day goal and High is an
// aspirational ceiling used only for display.
type TargetRange struct {
	Low  float64
	High float64
}

// MetricGoal pairs a metric's target range with its relative weight.
type MetricGoal struct {
	Target TargetRange
	Weight float64
}

// Catalog is the immutable table of targets and weights the LifeIndex
// aggregator scores against. Build one with DefaultCatalog and apply
// overrides before calling Validate; the engine never mutates it.
type Catalog struct {
	goals map[MetricType]MetricGoal
}

// DefaultCatalog returns the built-in targets and weights.
// Weights sum to 1.0 across all nine metrics.
func DefaultCatalog() Catalog {
	return Catalog{goals: map[MetricType]MetricGoal{
		MetricSteps:            {Target: TargetRange{10000, 15000}, Weight: 0.20},
		MetricSleepDuration:    {Target: TargetRange{420, 540}, Weight: 0.20},
		MetricHRV:              {Target: TargetRange{50, 120}, Weight: 0.15},
		MetricActiveCalories:   {Target: TargetRange{500, 800}, Weight: 0.10},
		MetricRestingHeartRate: {Target: TargetRange{40, 60}, Weight: 0.10},
		MetricWorkoutMinutes:   {Target: TargetRange{30, 60}, Weight: 0.10},
		MetricHeartRate:        {Target: TargetRange{60, 100}, Weight: 0.05},
		MetricBloodOxygen:      {Target: TargetRange{0.95, 1.0}, Weight: 0.05},
		MetricMindfulMinutes:   {Target: TargetRange{10, 30}, Weight: 0.05},
	}}
}

// SetGoal replaces the target and weight for one metric type.
func (c *Catalog) SetGoal(mt MetricType, goal MetricGoal) error {
	if !ValidMetricType(string(mt)) {
		return fmt.Errorf("%w: %q", ErrUnknownMetric, mt)
	}
	if c.goals == nil {
		c.goals = make(map[MetricType]MetricGoal)
	}
	c.goals[mt] = goal
	return nil
}

// TargetFor returns the target range for a metric type.
func (c Catalog) TargetFor(mt MetricType) (TargetRange, error) {
	goal, ok := c.goals[mt]
	if !ok {
		return TargetRange{}, fmt.Errorf("%w: %q", ErrUnknownMetric, mt)
	}
	return goal.Target, nil
}

// WeightFor returns the relative weight for a metric type.
func (c Catalog) WeightFor(mt MetricType) (float64, error) {
	goal, ok := c.goals[mt]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownMetric, mt)
	}
	return goal.Weight, nil
}

// weightSumTolerance allows for float drift when validating that catalog
// weights sum to 1.0.
const weightSumTolerance = 1e-6

// Validate checks that every metric has a goal, no weight is negative,
// every target is a proper interval, and weights sum to 1.0.
func (c Catalog) Validate() error {
	var sum float64
	for _, mt := range AllMetricTypes {
		goal, ok := c.goals[mt]
		if !ok {
			return fmt.Errorf("catalog missing goal for %q", mt)
		}
		if goal.Weight < 0 {
			return fmt.Errorf("negative weight %.4f for %q", goal.Weight, mt)
		}
		if goal.Target.Low < 0 || goal.Target.High < goal.Target.Low {
			return fmt.Errorf("invalid target range [%.2f, %.2f] for %q",
				goal.Target.Low, goal.Target.High, mt)
		}
		if mt.Direction() == CumulativeMin && goal.Target.Low <= 0 {
			return fmt.Errorf("cumulative goal for %q must be positive, got %.2f",
				mt, goal.Target.Low)
		}
		sum += goal.Weight
	}
	if math.Abs(sum-1.0) > weightSumTolerance {
		return fmt.Errorf("catalog weights sum to %.6f, must sum to 1.0", sum)
	}
	return nil
}
