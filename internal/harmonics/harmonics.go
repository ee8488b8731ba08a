// Package harmonics implements C7: stretch-and-sum incoherent harmonic
// summing of a power spectrum.
package harmonics

// Sums holds H harmonic-summed power spectra derived from one plain
// power spectrum. Sum h (0-indexed) is the 2^(h+1)-fold sum.
type Sums struct {
	sums [][]float64
}

// Fold computes H harmonic sums of the plain power spectrum P (length
// n) into freshly allocated buffers, each of length n:
//
//	sum_h[k] = sum_{j=1}^{f} P[round(k*j/f)],  f = 2^(h+1)
//
// computed directly for each output bin, matching spec.md invariant 3.
// j runs 1..f inclusive so the last term (j=f) is always P[k] itself.
func Fold(plain []float64, n, h int) *Sums {
	s := &Sums{sums: make([][]float64, h)}

	for level := 0; level < h; level++ {
		factor := 1 << uint(level+1)
		sum := make([]float64, n)

		for k := 0; k < n; k++ {
			total := 0.0

			for j := 1; j <= factor; j++ {
				idx := roundDiv(k*j, factor)
				if idx >= n {
					idx = n - 1
				}

				total += plain[idx]
			}

			sum[k] = total
		}

		s.sums[level] = sum
	}

	return s
}

// Len returns H, the number of harmonic sums.
func (s *Sums) Len() int { return len(s.sums) }

// At returns harmonic sum h (0 = the 2-fold sum).
func (s *Sums) At(h int) []float64 { return s.sums[h] }

// Stretch is the harmonic factor 2^(h+1) for harmonic index h.
func Stretch(h int) int { return 1 << uint(h+1) }

// roundDiv computes round(num/den) using integer arithmetic, matching
// the "nearest-bin stretching" of spec.md §4.7/§3.
func roundDiv(num, den int) int {
	if den == 0 {
		return 0
	}

	return (2*num + den) / (2 * den)
}
