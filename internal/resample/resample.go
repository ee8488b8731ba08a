// Package resample implements C6: non-uniform time-domain resampling
// that compensates for a constant line-of-sight acceleration.
package resample

import (
	"math"

	accmath "github.com/cwbudde/accelsearch/internal/math"
)

// Resampler constructs the accelerated time series for a trial
// acceleration a. For acceleration a, a sample emitted at uniform time
// t in the source frame is received at t' = t + 0.5*a*t^2/c. Resample
// builds the output by, for each output sample i, computing the
// corresponding source-frame index
//
//	j = i + 0.5*(a/c)*(i - S/2)^2 * (1/tsamp)
//
// and assigning output[i] = input[round(j)] (nearest-neighbour).
// Indices outside [0,S) are clamped to padMean, the mean of the
// unpadded input, matching the "benign recovery" padding policy of
// spec.md §7.
type Resampler struct{}

// New returns a Resampler. It carries no state: every call is a pure
// function of its arguments.
func New() *Resampler { return &Resampler{} }

// Resample writes into dst (length size) the time series resampled to
// acceleration accel (m/s^2), reading from src (length size, already
// padded with padMean beyond the real samples).
func (r *Resampler) Resample(dst, src []float64, size int, tsamp, accel, padMean float64) {
	if accel == 0 {
		copy(dst[:size], src[:size])
		return
	}

	half := float64(size) / 2

	for i := 0; i < size; i++ {
		dt := float64(i) - half
		j := float64(i) + 0.5*(accel/accmath.SpeedOfLight)*dt*dt/tsamp
		idx := int(math.Round(j))

		if idx < 0 || idx >= size {
			dst[i] = padMean
			continue
		}

		dst[i] = src[idx]
	}
}
