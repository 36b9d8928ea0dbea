package detection

import "time"

// shouldSuppress decides whether a new time sample adds information over the
// previously accepted one. elapsed is the monotonic time between the samples,
// claimed is the UTC delta the samples imply; their difference is the drift
// the new sample is reporting. A sample arriving within the spacing window
// whose drift is within tolerance is noise, not news.
func shouldSuppress(prev, cand Timestamped[int64], spacing, maxDrift time.Duration) bool {
	elapsed := cand.AtElapsed - prev.AtElapsed
	claimed := time.Duration(cand.Value-prev.Value) * time.Millisecond
	drift := claimed - elapsed
	if drift < 0 {
		drift = -drift
	}
	return elapsed <= spacing && drift <= maxDrift
}
