// Package primitives implements C1: the mean/stddev,
// normalisation, and running-median building blocks every later
// component is built from.
package primitives

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// MeanStd computes the mean and the sample (n-1) standard deviation of
// x[:n] via gonum's stat.MeanStdDev. It is not a single-pass
// computation: gonum takes the mean first and then a compensated sum
// of squared deviations, so x[:n] is read twice.
func MeanStd(x []float64, n int) (mean, std float64) {
	if n <= 0 {
		return 0, 0
	}

	mean, sd := stat.MeanStdDev(x[:n], nil)

	return mean, sd
}

// Normalise subtracts meanScaled and divides by stdScaled in place.
// meanScaled and stdScaled are reference statistics pre-scaled to the
// power level of x, so that the normalised bins end up in units of
// noise sigma — see §4.14, where the worker computes mean/std once on
// the cleaned interpolated spectrum and reuses mean*S^2, std*S^2
// (S the transform length) across every acceleration trial.
func Normalise(x []float64, meanScaled, stdScaled float64, n int) {
	if stdScaled == 0 {
		stdScaled = 1
	}

	if n > len(x) {
		n = len(x)
	}

	sl := x[:n]
	floats.AddConst(-meanScaled, sl)
	floats.Scale(1.0/stdScaled, sl)
}

// RunningMedian computes the median over a centred sliding window of
// 2*(window/2)+1 samples (an even window is widened by one), for x[:n].
// Where a clamped window holds an even number of samples, the upper of
// the two middle elements is taken. Window edges are clamped rather
// than wrapped, so the window shrinks near the array boundary instead
// of reading garbage.
//
// No pack library exposes a windowed-median primitive (gonum's stat
// package has no rolling-order-statistic), so this is a direct,
// dependency-free implementation — the one primitive in this package
// that is deliberately stdlib-only.
func RunningMedian(x []float64, n, window int) []float64 {
	out := make([]float64, n)

	if window < 1 {
		window = 1
	}

	half := window / 2
	buf := make([]float64, 0, window)

	for i := 0; i < n; i++ {
		lo := i - half
		hi := i + half + 1

		if lo < 0 {
			lo = 0
		}

		if hi > n {
			hi = n
		}

		buf = buf[:0]
		buf = append(buf, x[lo:hi]...)
		sort.Float64s(buf)
		out[i] = buf[len(buf)/2]
	}

	return out
}
