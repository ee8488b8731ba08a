package trials

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRejectsMismatchedTsamp(t *testing.T) {
	t.Parallel()

	_, err := New([]TimeSeries{
		{DM: 0, Tsamp: 1e-3, Samples: make([]float64, 10)},
		{DM: 10, Tsamp: 2e-3, Samples: make([]float64, 10)},
	})

	if err == nil {
		t.Fatal("expected an error for mismatched tsamp")
	}
}

func TestNewRejectsMismatchedLength(t *testing.T) {
	t.Parallel()

	_, err := New([]TimeSeries{
		{DM: 0, Tsamp: 1e-3, Samples: make([]float64, 10)},
		{DM: 10, Tsamp: 1e-3, Samples: make([]float64, 12)},
	})

	if err == nil {
		t.Fatal("expected an error for mismatched sample count")
	}
}

func TestAtReturnsExactRecord(t *testing.T) {
	t.Parallel()

	want := TimeSeries{DM: 42, Tsamp: 1e-3, Samples: []float64{1, 2, 3}, StartIdx: 100, EndIdx: 103}

	set, err := New([]TimeSeries{want})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := set.At(0)
	if err != nil {
		t.Fatalf("At(0): %v", err)
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("At(0) mismatch (-want +got):\n%s", diff)
	}
}

func TestAtOutOfRange(t *testing.T) {
	t.Parallel()

	set, err := New(nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, err := set.At(0); err == nil {
		t.Fatal("expected an out-of-range error on an empty set")
	}
}
