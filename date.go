package datefns

import "time"

// maxEpochMillis bounds the representable range: 100,000,000 days on
// either side of the Unix epoch.
const maxEpochMillis = 8.64e15

var (
	minTime = time.UnixMilli(-maxEpochMillis).UTC()
	maxTime = time.UnixMilli(maxEpochMillis).UTC()
)

func millisInRange(ms int64) bool {
	return ms >= -maxEpochMillis && ms <= maxEpochMillis
}

// timeInRange reports whether t is set and within [minTime, maxTime].
func timeInRange(t time.Time) bool {
	if t.IsZero() {
		return false
	}
	return !t.Before(minTime) && !t.After(maxTime)
}
