package birdie

import "testing"

func TestApplyZeroesOnlyMatchingBins(t *testing.T) {
	t.Parallel()

	spec := []complex128{1, 1, 1, 1, 1, 1}
	binWidth := 10.0 // bins at 0,10,20,30,40,50 Hz

	z := New([]Zap{{Low: 15, High: 35}})
	z.Apply(spec, binWidth)

	want := []complex128{1, 1, 0, 0, 1, 1}
	for i := range spec {
		if spec[i] != want[i] {
			t.Errorf("spec[%d] = %v, want %v", i, spec[i], want[i])
		}
	}
}

func TestApplyIdempotent(t *testing.T) {
	t.Parallel()

	spec := []complex128{5, 5, 5}
	z := New([]Zap{{Low: 0, High: 100}})

	z.Apply(spec, 10)
	z.Apply(spec, 10)

	for i, v := range spec {
		if v != 0 {
			t.Errorf("spec[%d] = %v, want 0", i, v)
		}
	}
}

func TestApplyNoZapsIsNoop(t *testing.T) {
	t.Parallel()

	spec := []complex128{1, 2, 3}
	New(nil).Apply(spec, 10)

	for i, v := range spec {
		if v != complex128(complex(float64(i+1), 0)) {
			t.Errorf("spec[%d] mutated to %v", i, v)
		}
	}
}
