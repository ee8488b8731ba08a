package resample

import "testing"

func TestResampleZeroAccelerationIsIdentity(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	dst := make([]float64, 8)

	New().Resample(dst, src, 8, 64e-6, 0, 0)

	for i := range src {
		if dst[i] != src[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], src[i])
		}
	}
}

func TestResampleCentreSampleUnmoved(t *testing.T) {
	t.Parallel()

	size := 1024
	src := make([]float64, size)
	for i := range src {
		src[i] = float64(i)
	}

	dst := make([]float64, size)
	New().Resample(dst, src, size, 64e-6, 5, 0)

	// At i == size/2, dt == 0, so the source index equals i exactly
	// regardless of acceleration.
	centre := size / 2
	if dst[centre] != src[centre] {
		t.Errorf("dst[centre] = %v, want %v", dst[centre], src[centre])
	}
}

func TestResampleOutOfRangeUsesPadMean(t *testing.T) {
	t.Parallel()

	size := 64
	src := make([]float64, size)
	dst := make([]float64, size)

	// A huge acceleration pushes the edge samples' source index out of
	// [0,size), so they should fall back to padMean.
	New().Resample(dst, src, size, 64e-6, 1e6, 42)

	if dst[0] != 42 {
		t.Errorf("dst[0] = %v, want padMean 42", dst[0])
	}
}
