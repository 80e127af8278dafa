package scoring

import "errors"

// ErrNoReadings is returned when a readings map has no scorable metrics.
// Missing health data is an expected state (permissions denied, watch not
// worn), so callers should surface it as "no data", never as a zero score.
var ErrNoReadings = errors.New("no readings to score")

// ErrNoRecoveryData is returned when all three recovery inputs are absent.
var ErrNoRecoveryData = errors.New("no recovery inputs present")

// ErrInvalidValue is returned for negative or non-finite metric values,
// which indicate a caller bug rather than missing data.
var ErrInvalidValue = errors.New("invalid metric value")

// ErrUnknownMetric is returned when a metric type is not in the catalog.
var ErrUnknownMetric = errors.New("unknown metric type")
