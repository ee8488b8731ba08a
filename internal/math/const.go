// Package math holds small numeric helpers shared across the search
// pipeline that don't belong to any single component.
package math

import "math"

// TwoPi is 2*Pi with full float64 precision.
const TwoPi = 2.0 * math.Pi

// SpeedOfLight is c in m/s, used by the resampler.
const SpeedOfLight = 299792458.0
