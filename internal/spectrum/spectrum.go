// Package spectrum implements C3: forming a power spectrum from a
// complex Fourier series, in its plain and bin-pair interpolated forms.
package spectrum

// BinWidth returns 1/(S*tsamp), the frequency spacing of a transform of
// length S sampled at tsamp.
func BinWidth(size int, tsamp float64) float64 {
	if size <= 0 || tsamp <= 0 {
		return 0
	}

	return 1.0 / (float64(size) * tsamp)
}

// Form computes the plain power spectrum P[k] = |z[k]|^2 into dst,
// which must have length >= len(z).
func Form(dst []float64, z []complex128) {
	for k, c := range z {
		dst[k] = real(c)*real(c) + imag(c)*imag(c)
	}
}

// FormInterpolated computes the bin-pair interpolated power spectrum:
//
//	P[k] = max(|z_k|^2, 0.5*(|z_k|^2 + |z_{k+1}|^2))
//
// which recovers most of the power a signal loses when its true
// frequency falls between two bins, at the cost of correlating
// adjacent noise bins by a factor of sqrt(2) (accepted downstream by
// the peak finder and distillers).
func FormInterpolated(dst []float64, z []complex128) {
	n := len(z)
	if n == 0 {
		return
	}

	plain := make([]float64, n)
	Form(plain, z)

	for k := 0; k < n; k++ {
		if k == n-1 {
			dst[k] = plain[k]
			continue
		}

		avg := 0.5 * (plain[k] + plain[k+1])
		if plain[k] > avg {
			dst[k] = plain[k]
		} else {
			dst[k] = avg
		}
	}
}
