// Package birdie implements C5: zeroing spectrum bins that fall inside
// known interference ("birdie") frequency ranges. Parsing the zap list
// file itself is an external collaborator's concern (spec.md §1); this
// package only applies an already-parsed list of intervals.
package birdie

// Zap is a single interference interval [Low, High), in Hz.
type Zap struct {
	Low, High float64
}

// Zapper applies an ordered list of zap intervals to a complex spectrum.
type Zapper struct {
	zaps []Zap
}

// New builds a Zapper from a zap list. The list does not need to be
// pre-sorted; Apply checks every interval against every bin.
func New(zaps []Zap) *Zapper {
	cp := make([]Zap, len(zaps))
	copy(cp, zaps)

	return &Zapper{zaps: cp}
}

// Apply zeroes every bin of z whose frequency k*binWidth falls inside
// any configured interval. Idempotent: re-applying to an already-zapped
// spectrum is a no-op for the affected bins.
func (z *Zapper) Apply(spec []complex128, binWidth float64) {
	if len(z.zaps) == 0 {
		return
	}

	for k := range spec {
		f := float64(k) * binWidth

		for _, zap := range z.zaps {
			if f >= zap.Low && f < zap.High {
				spec[k] = 0
				break
			}
		}
	}
}
