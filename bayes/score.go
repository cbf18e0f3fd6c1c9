package bayes

import "math"

// ScoreFunc folds a category prior and the per-word estimates of a document
// into one ranking score.
type ScoreFunc func(prior float64, estimates []float64) float64

// ProductScore multiplies the prior by every estimate. A single zero
// estimate zeroes the score.
func ProductScore(prior float64, estimates []float64) float64 {
	score := prior
	for _, p := range estimates {
		score *= p
	}
	return score
}

// MixedLogScore adds the log of every estimate to the linear prior. This is
// the reference scoring for the smoothed and tf-idf estimators; the prior is
// deliberately not logged.
func MixedLogScore(prior float64, estimates []float64) float64 {
	score := prior
	for _, p := range estimates {
		score += math.Log(p)
	}
	return score
}

// LogScore is the log-domain posterior: ln(prior) plus the sum of log
// estimates.
func LogScore(prior float64, estimates []float64) float64 {
	return MixedLogScore(math.Log(prior), estimates)
}

// DefaultScoreFunc returns the reference scoring for an estimator.
func DefaultScoreFunc(e Estimator) ScoreFunc {
	if e == Raw {
		return ProductScore
	}
	return MixedLogScore
}
