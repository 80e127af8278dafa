package scoring

import "math"

// Recovery weights are fixed and private to this scorer; they are not drawn
// from the catalog.
const (
	recoveryWeightHRV       = 0.40
	recoveryWeightRestingHR = 0.30
	recoveryWeightSleep     = 0.30
)

// RestThreshold is the recovery score below which a rest day is
// recommended.
const RestThreshold = 45

// Per-factor reference bands for recovery normalization.
var (
	recoveryHRVBand       = TargetRange{Low: 50, High: 120}  // ms
	recoveryRestingHRBand = TargetRange{Low: 40, High: 60}   // bpm
	recoverySleepBand     = TargetRange{Low: 420, High: 480} // minutes
)

// RecoveryInputs are the three factors recovery is scored on. A nil field
// means the factor was not measured; never encode absence as a sentinel
// value, which would corrupt the weight renormalization.
type RecoveryInputs struct {
	HRV          *float64 // ms
	RestingHR    *float64 // bpm
	SleepMinutes *float64
}

// RecoveryResult is a computed recovery score.
type RecoveryResult struct {
	Score   int // [0, 100]
	Label   string
	RestDay bool
}

// RecoveryScore combines HRV (40%), resting heart rate (30%), and sleep
// duration (30%) into a 0-100 recovery score. Weights are renormalized over
// the factors actually present, so a single supplied factor drives the whole
// score. Returns ErrNoRecoveryData when all three are absent.
func RecoveryScore(in RecoveryInputs) (*RecoveryResult, error) {
	type factor struct {
		value  *float64
		band   TargetRange
		weight float64
		metric MetricType
	}
	factors := []factor{
		{in.HRV, recoveryHRVBand, recoveryWeightHRV, MetricHRV},
		{in.RestingHR, recoveryRestingHRBand, recoveryWeightRestingHR, MetricRestingHeartRate},
		{in.SleepMinutes, recoverySleepBand, recoveryWeightSleep, MetricSleepDuration},
	}

	var weighted, weightSum float64
	for _, f := range factors {
		if f.value == nil {
			continue
		}
		normalized, err := ScoreMetric(*f.value, f.band, f.metric)
		if err != nil {
			return nil, err
		}
		weighted += normalized * f.weight
		weightSum += f.weight
	}

	if weightSum == 0 {
		return nil, ErrNoRecoveryData
	}

	score := clampScore(int(math.Round(100 * weighted / weightSum)))
	return &RecoveryResult{
		Score:   score,
		Label:   ScoreLabel(score),
		RestDay: ShouldRest(score),
	}, nil
}

// ShouldRest reports whether a recovery score warrants a rest day.
func ShouldRest(score int) bool {
	return score < RestThreshold
}
