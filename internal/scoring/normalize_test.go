package scoring

import (
	"errors"
	"math"
	"testing"
)

func TestScoreMetricBand(t *testing.T) {
	sleepBand := TargetRange{Low: 420, High: 540} // width 120

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"at low bound", 420, 1.0},
		{"at high bound", 540, 1.0},
		{"mid band", 480, 1.0},
		{"half band-width below", 360, 0.5},
		{"half band-width above", 600, 0.5},
		{"one band-width below reaches zero", 300, 0.0},
		{"one band-width above reaches zero", 660, 0.0},
		{"far below stays zero", 60, 0.0},
		{"far above stays zero", 2000, 0.0},
		{"zero value", 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreMetric(tt.value, sleepBand, MetricSleepDuration)
			if err != nil {
				t.Fatalf("ScoreMetric(%v) error: %v", tt.value, err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ScoreMetric(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestScoreMetricBandMonotonicInDistance(t *testing.T) {
	band := TargetRange{Low: 60, High: 100}

	// Walking away from the band in either direction never raises the score.
	prev := 1.0
	for value := 100.0; value <= 250; value += 5 {
		got, err := ScoreMetric(value, band, MetricHeartRate)
		if err != nil {
			t.Fatalf("ScoreMetric(%v) error: %v", value, err)
		}
		if got > prev {
			t.Fatalf("score increased from %v to %v at value %v", prev, got, value)
		}
		if got < 0 || got > 1 {
			t.Fatalf("ScoreMetric(%v) = %v, want within [0, 1]", value, got)
		}
		prev = got
	}

	prev = 1.0
	for value := 60.0; value >= 0; value -= 5 {
		got, err := ScoreMetric(value, band, MetricHeartRate)
		if err != nil {
			t.Fatalf("ScoreMetric(%v) error: %v", value, err)
		}
		if got > prev {
			t.Fatalf("score increased from %v to %v at value %v", prev, got, value)
		}
		prev = got
	}
}

func TestScoreMetricCumulative(t *testing.T) {
	stepsTarget := TargetRange{Low: 10000, High: 15000}

	tests := []struct {
		name     string
		value    float64
		expected float64
	}{
		{"zero steps", 0, 0.0},
		{"quarter of goal", 2500, 0.25},
		{"half of goal", 5000, 0.5},
		{"at goal", 10000, 1.0},
		{"over goal pins at one", 14000, 1.0},
		{"far over goal pins at one", 50000, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScoreMetric(tt.value, stepsTarget, MetricSteps)
			if err != nil {
				t.Fatalf("ScoreMetric(%v) error: %v", tt.value, err)
			}
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("ScoreMetric(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestScoreMetricCumulativeMonotonic(t *testing.T) {
	target := TargetRange{Low: 500, High: 800}

	prev := -1.0
	for value := 0.0; value <= 1000; value += 25 {
		got, err := ScoreMetric(value, target, MetricActiveCalories)
		if err != nil {
			t.Fatalf("ScoreMetric(%v) error: %v", value, err)
		}
		if got < prev {
			t.Fatalf("score decreased from %v to %v at value %v", prev, got, value)
		}
		prev = got
	}
}

func TestScoreMetricRejectsInvalidValues(t *testing.T) {
	target := TargetRange{Low: 10000, High: 15000}

	tests := []struct {
		name  string
		value float64
	}{
		{"negative", -1},
		{"nan", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ScoreMetric(tt.value, target, MetricSteps); !errors.Is(err, ErrInvalidValue) {
				t.Errorf("ScoreMetric(%v) error = %v, want ErrInvalidValue", tt.value, err)
			}
		})
	}
}

func TestScoreMetricDegenerateBand(t *testing.T) {
	point := TargetRange{Low: 60, High: 60}

	got, err := ScoreMetric(60, point, MetricRestingHeartRate)
	if err != nil {
		t.Fatalf("ScoreMetric(60) error: %v", err)
	}
	if got != 1.0 {
		t.Errorf("ScoreMetric(60) on point band = %v, want 1.0", got)
	}

	got, err = ScoreMetric(61, point, MetricRestingHeartRate)
	if err != nil {
		t.Fatalf("ScoreMetric(61) error: %v", err)
	}
	if got != 0.0 {
		t.Errorf("ScoreMetric(61) on point band = %v, want 0.0", got)
	}
}
