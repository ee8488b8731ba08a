// Package candidate defines the Candidate record and the append-only
// CandidateCollection that peak finding, distillation, and scoring all
// operate on.
package candidate

// Scores holds the physically-motivated quality metrics C15 attaches
// to a surviving candidate. It is optional: a freshly peak-found
// Candidate has a nil Scores until the master runs the scorer.
type Scores struct {
	DMCurveWidth        float64
	ExpectedWidth       float64
	HarmonicConsistency float64
}

// Candidate is a flat record describing one surviving detection.
// Invariant (spec.md §3, invariant 1): Frequency always equals
// BinIndex*BinWidth/2^HarmonicIndex.
type Candidate struct {
	Frequency     float64 // Hz
	Period        float64 // s
	SNR           float64
	DM            float64
	Acceleration  float64 // m/s^2
	HarmonicIndex int     // 0 = fundamental, v > 0 = 2^v-fold sum (harmonic sum v-1)
	DMTrialIdx    int
	Scores        *Scores
}

// Collection is an unordered, append-only set of Candidates.
type Collection struct {
	Cands []Candidate
}

// Append adds cands to the collection.
func (c *Collection) Append(cands []Candidate) {
	c.Cands = append(c.Cands, cands...)
}

// SortBySNRDescending sorts the collection's candidates by descending
// SNR, matching the output ordering §6 requires.
func (c *Collection) SortBySNRDescending() {
	sortBySNR(c.Cands)
}
