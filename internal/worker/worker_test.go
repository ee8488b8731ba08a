package worker

import (
	"math"
	"testing"

	"github.com/cwbudde/accelsearch/gpu"
	"github.com/cwbudde/accelsearch/internal/birdie"
	"github.com/cwbudde/accelsearch/internal/config"
	"github.com/cwbudde/accelsearch/internal/dispenser"
	"github.com/cwbudde/accelsearch/internal/trials"
)

func init() {
	gpu.RegisterMockBackend()
}

// TestRunFindsInjectedSinusoid covers scenario E2: a single DM trial
// containing a pure sinusoid should produce at least one surviving
// candidate near the injected frequency.
func TestRunFindsInjectedSinusoid(t *testing.T) {
	t.Parallel()

	const size = 1024
	const tsamp = 1e-3
	const freq = 50.0

	samples := make([]float64, size)
	for i := range samples {
		t := float64(i) * tsamp
		samples[i] = 10 * math.Sin(2*math.Pi*freq*t)
	}

	ts := trials.TimeSeries{DM: 0, Tsamp: tsamp, Samples: samples}
	set, err := trials.New([]trials.TimeSeries{ts})
	if err != nil {
		t.Fatalf("trials.New: %v", err)
	}

	cfg := config.Default()
	cfg.MinSNR = 3.0
	cfg.NHarmonics = 2
	cfg.AccStart = 0
	cfg.AccEnd = 0
	cfg.MinFreq = 1
	cfg.MaxFreq = 500

	disp := dispenser.New(set.Count(), nil)

	w := New(0, 0, cfg, set, disp, nil, size, nil)

	cands, err := w.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if w.State() != Done {
		t.Errorf("State() = %v, want Done", w.State())
	}

	found := false
	for _, c := range cands {
		if math.Abs(c.Frequency-freq) < 2.0 {
			found = true
			break
		}
	}

	if !found {
		t.Errorf("no candidate near %g Hz found in %+v", freq, cands)
	}
}

func TestRunNoSignalYieldsNoCandidates(t *testing.T) {
	t.Parallel()

	const size = 256

	ts := trials.TimeSeries{DM: 0, Tsamp: 1e-3, Samples: make([]float64, size)}
	set, err := trials.New([]trials.TimeSeries{ts})
	if err != nil {
		t.Fatalf("trials.New: %v", err)
	}

	cfg := config.Default()
	cfg.AccStart = 0
	cfg.AccEnd = 0

	disp := dispenser.New(set.Count(), nil)
	w := New(0, 0, cfg, set, disp, []birdie.Zap{}, size, nil)

	cands, err := w.Run()
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(cands) != 0 {
		t.Errorf("len(cands) = %d, want 0 for all-zero input", len(cands))
	}
}
