// Package analysis computes statistics over move sequences.
package analysis

import (
	"github.com/SeamusWaldron/cubemoves"
)

// FrequencyReport counts how often each move appears across sequences.
type FrequencyReport struct {
	Counts [cubemoves.MoveCount]int `json:"counts"`
	Total  int                      `json:"total"`

	// SameFaceRuns counts adjacent pairs turning the same face, e.g. "R R'".
	SameFaceRuns int `json:"same_face_runs"`
}

// Add accumulates one sequence into the report. Moves outside the
// alphabet are skipped.
func (r *FrequencyReport) Add(seq cubemoves.MoveSequence) {
	prev := -1
	for _, m := range seq.Moves() {
		if !m.Valid() {
			prev = -1
			continue
		}
		r.Counts[m]++
		r.Total++
		if prev >= 0 && cubemoves.Move(prev).Face() == m.Face() {
			r.SameFaceRuns++
		}
		prev = int(m)
	}
}

// Frequency returns the observed share of move m, or 0 for an empty report.
func (r *FrequencyReport) Frequency(m cubemoves.Move) float64 {
	if r.Total == 0 || !m.Valid() {
		return 0
	}
	return float64(r.Counts[m]) / float64(r.Total)
}

// ChiSquare returns Pearson's chi-square statistic against the uniform
// distribution over all 18 moves. With 17 degrees of freedom, values above
// about 33.4 reject uniformity at the 1% level.
func (r *FrequencyReport) ChiSquare() float64 {
	if r.Total == 0 {
		return 0
	}
	expected := float64(r.Total) / cubemoves.MoveCount
	var chi float64
	for _, c := range r.Counts {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// ChiSquareCritical1Pct is the 1% critical value of chi-square with 17
// degrees of freedom.
const ChiSquareCritical1Pct = 33.409

// Uniform reports whether the counts are consistent with a uniform draw at
// the 1% significance level.
func (r *FrequencyReport) Uniform() bool {
	return r.ChiSquare() <= ChiSquareCritical1Pct
}
