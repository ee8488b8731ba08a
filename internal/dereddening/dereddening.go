// Package dereddening implements C4: piecewise running-median removal
// of the red-noise floor from a Fourier power spectrum.
package dereddening

import (
	"math"

	"github.com/cwbudde/accelsearch/internal/primitives"
)

// Windows are the three running-median window sizes (in bins) applied
// below boundary5Freq, between boundary5Freq and boundary25Freq, and
// above boundary25Freq respectively.
const (
	window5   = 5
	window25  = 25
	window125 = 125
)

// Dereddener computes and applies a piecewise running-median red-noise
// model of a power spectrum.
type Dereddener struct {
	boundary5Freq  float64
	boundary25Freq float64
}

// New builds a Dereddener with the dereddening window boundaries, in Hz.
func New(boundary5Freq, boundary25Freq float64) *Dereddener {
	return &Dereddener{boundary5Freq: boundary5Freq, boundary25Freq: boundary25Freq}
}

// Median computes the piecewise running median of a power spectrum P
// (length n, bin spacing binWidth). Bins below boundary5Freq use a
// 5-bin window, bins up to boundary25Freq use a 25-bin window, and the
// remainder use a 125-bin window.
func (d *Dereddener) Median(power []float64, n int, binWidth float64) []float64 {
	b5 := freqToBin(d.boundary5Freq, binWidth)
	b25 := freqToBin(d.boundary25Freq, binWidth)

	if b5 > n {
		b5 = n
	}

	if b25 > n {
		b25 = n
	}

	med := make([]float64, n)

	if b5 > 0 {
		copy(med[:b5], primitives.RunningMedian(power[:b5], b5, window5))
	}

	if b25 > b5 {
		copy(med[b5:b25], primitives.RunningMedian(power[b5:b25], b25-b5, window25))
	}

	if n > b25 {
		copy(med[b25:n], primitives.RunningMedian(power[b25:n], n-b25, window125))
	}

	return med
}

// Deredden divides the complex spectrum z bin-by-bin by sqrt(median/ln2),
// flattening the noise floor of the power spectrum the bins imply while
// preserving each bin's phase. median is typically the result of Median
// called on the plain power spectrum of z. The ln(2) correction accounts
// for the power spectrum of white noise being chi-square(2) distributed,
// whose median (ln2 * mean) undershoots its mean; dividing by the raw
// median alone would flatten the noise floor's median to 1 and leave the
// mean at 1/ln2, violating spec.md Invariant 2.
func (d *Dereddener) Deredden(z []complex128, median []float64) {
	for k := range z {
		m := median[k]
		if m <= 0 {
			continue
		}

		scale := 1.0 / math.Sqrt(m/math.Ln2)
		z[k] = complex(real(z[k])*scale, imag(z[k])*scale)
	}
}

func freqToBin(freq, binWidth float64) int {
	if binWidth <= 0 {
		return 0
	}

	bin := int(freq / binWidth)
	if bin < 0 {
		return 0
	}

	return bin
}
