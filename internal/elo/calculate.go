package elo

import "math"

type Score float64

const (
	Win  Score = 1
	Draw Score = 0.5
	Lose Score = 0
)

// Expected is the logistic win expectation for a side rated ra playing
// a side rated rb.
func Expected(ra float64, rb float64) float64 {
	return 1.0 / (1.0 + math.Pow(10, (rb-ra)/400.0))
}

// Delta is the rating change for a side rated ra that scored s against
// a side rated rb, scaled by coefficient k. Rounding is half away from
// zero, so swapping the sides and the score negates the result exactly.
func Delta(ra float64, rb float64, k int, s Score) int {
	return int(math.Round(float64(k) * (float64(s) - Expected(ra, rb))))
}
