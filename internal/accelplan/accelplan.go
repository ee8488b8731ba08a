// Package accelplan implements C9: generation of the acceleration
// trial grid for one DM.
package accelplan

import "math"

const speedOfLight = 299792458.0

// Plan holds the fixed parameters of an acceleration search grid.
type Plan struct {
	Start      float64
	End        float64
	Tol        float64
	PulseWidth float64
}

// New builds a Plan. start/end are m/s^2, tol is the template-mismatch
// tolerance (>1), pulseWidth is the assumed pulse width in seconds.
func New(start, end, tol, pulseWidth float64) Plan {
	return Plan{Start: start, End: end, Tol: tol, PulseWidth: pulseWidth}
}

// Generate returns the acceleration grid for an observation of length
// tobs seconds, stepping by the largest Δa that keeps template
// mismatch below Tol:
//
//	Δa·tobs²/(2c) ≤ pulse_width·sqrt(tol²-1)
//
// The grid always includes Start; it includes End only if a step lands
// on or before it exactly (no overshoot).
func (p Plan) Generate(tobs float64) []float64 {
	if p.End <= p.Start {
		return []float64{p.Start}
	}

	disc := p.Tol*p.Tol - 1
	if disc < 0 {
		disc = 0
	}

	step := p.PulseWidth * math.Sqrt(disc) * 2 * speedOfLight / (tobs * tobs)
	if step <= 0 {
		return []float64{p.Start}
	}

	var out []float64
	for a := p.Start; a <= p.End+1e-12; a += step {
		out = append(out, a)
	}

	if len(out) == 0 {
		out = append(out, p.Start)
	}

	return out
}
