// Package scorer implements C15: attaching physically-motivated
// quality metrics to surviving candidates. No candidates are removed
// here.
package scorer

import (
	"math"

	"github.com/cwbudde/accelsearch/internal/candidate"
)

// Acquisition holds the filterbank parameters needed to turn a DM and
// frequency into a physical pulse-width prediction.
type Acquisition struct {
	Tsamp          float64 // s
	CenterFreq     float64 // MHz
	ChannelWidth   float64 // MHz
	TotalBandwidth float64 // MHz
}

// Scorer computes per-candidate quality metrics.
type Scorer struct {
	acq Acquisition
}

// New builds a Scorer for one acquisition setup.
func New(acq Acquisition) *Scorer {
	return &Scorer{acq: acq}
}

// Score attaches Scores to every candidate in place. dmCurve returns,
// for a candidate, the set of SNRs measured for the same signal
// across nearby DM trials (nil/empty if unavailable, in which case
// DMCurveWidth is left at zero). harmonicSNRs is the set of SNRs the
// same signal achieved across its harmonic sums.
func (s *Scorer) Score(cands []candidate.Candidate, dmCurve func(c candidate.Candidate) []float64, harmonicSNRs func(c candidate.Candidate) []float64) {
	for i := range cands {
		c := cands[i]

		scores := &candidate.Scores{
			ExpectedWidth: s.expectedWidth(c.DM, c.Frequency),
		}

		if dmCurve != nil {
			scores.DMCurveWidth = curveWidth(dmCurve(c))
		}

		if harmonicSNRs != nil {
			scores.HarmonicConsistency = consistency(harmonicSNRs(c))
		}

		cands[i].Scores = scores
	}
}

// expectedWidth predicts the smeared pulse width (s) from DM
// dispersion smearing across one channel plus the sampling time.
func (s *Scorer) expectedWidth(dm, freq float64) float64 {
	if s.acq.ChannelWidth == 0 || s.acq.CenterFreq == 0 {
		return s.acq.Tsamp
	}

	// Dispersion smearing across one channel, in ms (Lorimer & Kramer
	// eq. 5.1), converted to seconds.
	smearMs := 8.3e6 * dm * s.acq.ChannelWidth / (s.acq.CenterFreq * s.acq.CenterFreq * s.acq.CenterFreq)
	smear := smearMs / 1000.0

	return math.Sqrt(s.acq.Tsamp*s.acq.Tsamp + smear*smear)
}

// curveWidth is the full-width-at-half-max of a DM-trial SNR curve,
// measured in trial-index units.
func curveWidth(snrs []float64) float64 {
	if len(snrs) == 0 {
		return 0
	}

	peak := 0.0
	peakIdx := 0
	for i, v := range snrs {
		if v > peak {
			peak = v
			peakIdx = i
		}
	}

	if peak == 0 {
		return 0
	}

	half := peak / 2

	lo := peakIdx
	for lo > 0 && snrs[lo] >= half {
		lo--
	}

	hi := peakIdx
	for hi < len(snrs)-1 && snrs[hi] >= half {
		hi++
	}

	return float64(hi - lo)
}

// consistency scores how evenly SNR is distributed across harmonic
// sums relative to a truly harmonic signal (coefficient of variation,
// lower is more consistent).
func consistency(snrs []float64) float64 {
	if len(snrs) == 0 {
		return 0
	}

	mean := 0.0
	for _, v := range snrs {
		mean += v
	}
	mean /= float64(len(snrs))

	if mean == 0 {
		return 0
	}

	variance := 0.0
	for _, v := range snrs {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(snrs))

	return math.Sqrt(variance) / mean
}
