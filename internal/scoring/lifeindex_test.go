package scoring

import (
	"errors"
	"math"
	"testing"
	"time"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultCatalog())
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return engine
}

func TestFinalScoreSingleMetricAtGoal(t *testing.T) {
	engine := newTestEngine(t)

	result, err := engine.FinalScore(Readings{MetricSteps: 10000})
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	if result.Score != 100 {
		t.Errorf("Score = %d, want 100", result.Score)
	}
	if result.Label != "Excellent" {
		t.Errorf("Label = %q, want \"Excellent\"", result.Label)
	}
}

func TestScoreMiddayHalfwayToGoal(t *testing.T) {
	engine := newTestEngine(t)
	noon := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// 5000 steps at midday meets the scaled 5000-step goal exactly: the
	// live score must not penalize being "only" halfway to the full-day
	// goal at noon.
	result, err := engine.Score(Readings{MetricSteps: 5000}, noon)
	if err != nil {
		t.Fatalf("Score() error: %v", err)
	}

	if result.Score != 100 {
		t.Errorf("live Score = %d, want 100", result.Score)
	}
}

func TestFinalScoreShortSleep(t *testing.T) {
	engine := newTestEngine(t)

	// 300 minutes is exactly one band-width below the [420, 540] sleep
	// target, so the linear decay bottoms out at 0.
	result, err := engine.FinalScore(Readings{MetricSleepDuration: 300})
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	if result.Score != 0 {
		t.Errorf("Score = %d, want 0", result.Score)
	}
	if result.Label != "Poor" {
		t.Errorf("Label = %q, want \"Poor\"", result.Label)
	}

	// Six hours lands halfway down the decay.
	result, err = engine.FinalScore(Readings{MetricSleepDuration: 360})
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}
	if result.Score != 50 {
		t.Errorf("Score = %d, want 50", result.Score)
	}
	if result.Label != "Fair" {
		t.Errorf("Label = %q, want \"Fair\"", result.Label)
	}
}

func TestEmptyReadings(t *testing.T) {
	engine := newTestEngine(t)

	if _, err := engine.FinalScore(Readings{}); !errors.Is(err, ErrNoReadings) {
		t.Errorf("FinalScore(empty) error = %v, want ErrNoReadings", err)
	}
	if _, err := engine.Score(nil, time.Now()); !errors.Is(err, ErrNoReadings) {
		t.Errorf("Score(nil) error = %v, want ErrNoReadings", err)
	}
}

func TestWeightRenormalization(t *testing.T) {
	engine := newTestEngine(t)
	catalog := DefaultCatalog()

	// With only steps and sleep present, the composite must equal
	// round(100 * (wSteps*nSteps + wSleep*nSleep) / (wSteps + wSleep))
	// regardless of the other seven catalog weights.
	readings := Readings{
		MetricSteps:         5000, // normalized 0.5
		MetricSleepDuration: 480,  // in band, normalized 1.0
	}

	result, err := engine.FinalScore(readings)
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	wSteps, _ := catalog.WeightFor(MetricSteps)
	wSleep, _ := catalog.WeightFor(MetricSleepDuration)
	expected := int(math.Round(100 * (wSteps*0.5 + wSleep*1.0) / (wSteps + wSleep)))

	if result.Score != expected {
		t.Errorf("Score = %d, want %d", result.Score, expected)
	}
}

func TestMissingMetricsDoNotLowerCeiling(t *testing.T) {
	engine := newTestEngine(t)

	// Every present metric is perfect; absent metrics must not subtract
	// from the ceiling.
	readings := Readings{
		MetricSteps:         12000,
		MetricSleepDuration: 450,
		MetricHRV:           80,
	}

	result, err := engine.FinalScore(readings)
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}
	if result.Score != 100 {
		t.Errorf("Score = %d, want 100 with all present metrics perfect", result.Score)
	}
}

func TestScoreRejectsUnknownMetric(t *testing.T) {
	engine := newTestEngine(t)

	readings := Readings{
		MetricSteps:              8000,
		MetricType("cholestrol"): 180,
	}

	if _, err := engine.FinalScore(readings); !errors.Is(err, ErrUnknownMetric) {
		t.Errorf("FinalScore() error = %v, want ErrUnknownMetric", err)
	}
}

func TestScoreRejectsNegativeValue(t *testing.T) {
	engine := newTestEngine(t)

	if _, err := engine.FinalScore(Readings{MetricSteps: -100}); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("FinalScore() error = %v, want ErrInvalidValue", err)
	}
}

func TestContributionPercentagesSumTo100(t *testing.T) {
	engine := newTestEngine(t)

	readings := Readings{
		MetricSteps:            7000,
		MetricSleepDuration:    400,
		MetricHRV:              65,
		MetricActiveCalories:   350,
		MetricRestingHeartRate: 52,
	}

	result, err := engine.FinalScore(readings)
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	if len(result.Breakdown) != len(readings) {
		t.Fatalf("len(Breakdown) = %d, want %d", len(result.Breakdown), len(readings))
	}

	var sum float64
	for _, entry := range result.Breakdown {
		if entry.Normalized < 0 || entry.Normalized > 1 {
			t.Errorf("entry %q normalized = %v, want within [0, 1]", entry.Metric, entry.Normalized)
		}
		sum += entry.ContributionPct
	}

	if math.Abs(sum-100) > 1e-6 {
		t.Errorf("contribution percentages sum to %v, want 100", sum)
	}
}

func TestBreakdownSortedByNormalizedScore(t *testing.T) {
	engine := newTestEngine(t)

	readings := Readings{
		MetricSteps:         2000, // 0.2
		MetricSleepDuration: 450,  // 1.0
		MetricHRV:           30,   // below band
	}

	result, err := engine.FinalScore(readings)
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	for i := 1; i < len(result.Breakdown); i++ {
		if result.Breakdown[i].Normalized > result.Breakdown[i-1].Normalized {
			t.Errorf("Breakdown not sorted descending at index %d", i)
		}
	}

	if result.Breakdown[0].Metric != MetricSleepDuration {
		t.Errorf("top of breakdown = %q, want sleep_duration", result.Breakdown[0].Metric)
	}
}

func TestTopAndWeakestContributors(t *testing.T) {
	engine := newTestEngine(t)

	readings := Readings{
		MetricSteps:          10000, // 1.0 * 0.20 = 0.20 weighted
		MetricMindfulMinutes: 5,     // 0.5 * 0.05 = 0.025 weighted
	}

	result, err := engine.FinalScore(readings)
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	top := result.Top()
	if top == nil || top.Metric != MetricSteps {
		t.Errorf("Top() = %+v, want steps", top)
	}

	weakest := result.Weakest()
	if weakest == nil || weakest.Metric != MetricMindfulMinutes {
		t.Errorf("Weakest() = %+v, want mindful_minutes", weakest)
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score    int
		expected string
	}{
		{100, "Excellent"},
		{80, "Excellent"},
		{79, "Good"},
		{60, "Good"},
		{59, "Fair"},
		{40, "Fair"},
		{39, "Poor"},
		{0, "Poor"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := ScoreLabel(tt.score); got != tt.expected {
				t.Errorf("ScoreLabel(%d) = %q, want %q", tt.score, got, tt.expected)
			}
		})
	}
}

func TestNewEngineRejectsInvalidCatalog(t *testing.T) {
	catalog := DefaultCatalog()
	if err := catalog.SetGoal(MetricSteps, MetricGoal{
		Target: TargetRange{Low: 10000, High: 15000},
		Weight: 0.9,
	}); err != nil {
		t.Fatalf("SetGoal() error: %v", err)
	}

	if _, err := NewEngine(catalog); err == nil {
		t.Error("NewEngine() = nil error, want validation failure")
	}
}

func TestEngineWithAlternateWeights(t *testing.T) {
	// The catalog is injected, so a test can substitute a weight set that
	// leans entirely on two metrics.
	catalog := DefaultCatalog()
	overrides := map[MetricType]MetricGoal{
		MetricSteps:            {Target: TargetRange{10000, 15000}, Weight: 0.5},
		MetricSleepDuration:    {Target: TargetRange{420, 540}, Weight: 0.5},
		MetricHRV:              {Target: TargetRange{50, 120}, Weight: 0},
		MetricActiveCalories:   {Target: TargetRange{500, 800}, Weight: 0},
		MetricRestingHeartRate: {Target: TargetRange{40, 60}, Weight: 0},
		MetricWorkoutMinutes:   {Target: TargetRange{30, 60}, Weight: 0},
		MetricHeartRate:        {Target: TargetRange{60, 100}, Weight: 0},
		MetricBloodOxygen:      {Target: TargetRange{0.95, 1.0}, Weight: 0},
		MetricMindfulMinutes:   {Target: TargetRange{10, 30}, Weight: 0},
	}
	for mt, goal := range overrides {
		if err := catalog.SetGoal(mt, goal); err != nil {
			t.Fatalf("SetGoal(%q) error: %v", mt, err)
		}
	}

	engine, err := NewEngine(catalog)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}

	result, err := engine.FinalScore(Readings{
		MetricSteps:         5000, // 0.5
		MetricSleepDuration: 480,  // 1.0
	})
	if err != nil {
		t.Fatalf("FinalScore() error: %v", err)
	}

	if result.Score != 75 {
		t.Errorf("Score = %d, want 75 with equal weights", result.Score)
	}
}
