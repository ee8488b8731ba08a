// Package peaks implements C8: thresholding a spectrum and emitting
// candidate records at local maxima.
package peaks

import (
	"github.com/cwbudde/accelsearch/internal/candidate"
	"github.com/cwbudde/accelsearch/internal/harmonics"
)

// Finder holds the peak-finder's fixed parameters for one search run.
type Finder struct {
	minSNR  float64
	minFreq float64
	maxFreq float64
}

// New builds a Finder with a minimum SNR threshold and a frequency
// window [minFreq, maxFreq] (Hz).
func New(minSNR, minFreq, maxFreq float64) *Finder {
	return &Finder{minSNR: minSNR, minFreq: minFreq, maxFreq: maxFreq}
}

// Find scans a normalised spectrum (plain, or one harmonic sum) and
// returns Candidates for every local maximum at or above minSNR,
// within the configured frequency window. A bin k is a peak iff
// P[k] >= minSNR and P[k] > P[k-1] and P[k] >= P[k+1] (left-biased
// tie-break: a plateau is reported at its first bin). harmonicIndex
// selects the 2^(h+1) stretch used to map bin index back to frequency;
// pass -1 for the plain (fundamental) spectrum.
func (f *Finder) Find(power []float64, binWidth float64, harmonicIndex int, dm float64, dmTrialIdx int, accel float64) []candidate.Candidate {
	stretch := 1.0
	hIdx := 0

	if harmonicIndex >= 0 {
		stretch = float64(harmonics.Stretch(harmonicIndex))
		hIdx = harmonicIndex + 1
	}

	var out []candidate.Candidate

	n := len(power)
	for k := 0; k < n; k++ {
		v := power[k]
		if v < f.minSNR {
			continue
		}

		if k > 0 && power[k-1] >= v {
			continue
		}

		if k < n-1 && power[k+1] > v {
			continue
		}

		freq := float64(k) * binWidth / stretch
		if freq < f.minFreq || freq > f.maxFreq {
			continue
		}

		period := 0.0
		if freq > 0 {
			period = 1.0 / freq
		}

		out = append(out, candidate.Candidate{
			Frequency:     freq,
			Period:        period,
			SNR:           v,
			DM:            dm,
			Acceleration:  accel,
			HarmonicIndex: hIdx,
			DMTrialIdx:    dmTrialIdx,
		})
	}

	return out
}
