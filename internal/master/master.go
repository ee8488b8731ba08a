// Package master implements the top-level orchestrator: it spins up K
// worker goroutines pinned to distinct accelerator indices, joins
// their results, and runs the final cross-worker distillation and
// scoring passes.
package master

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/cwbudde/accelsearch/gpu"
	"github.com/cwbudde/accelsearch/internal/birdie"
	"github.com/cwbudde/accelsearch/internal/candidate"
	"github.com/cwbudde/accelsearch/internal/config"
	"github.com/cwbudde/accelsearch/internal/dispenser"
	"github.com/cwbudde/accelsearch/internal/distill"
	accmath "github.com/cwbudde/accelsearch/internal/math"
	"github.com/cwbudde/accelsearch/internal/scorer"
	"github.com/cwbudde/accelsearch/internal/trials"
	"github.com/cwbudde/accelsearch/internal/worker"
)

// Result is the final output of one search run.
type Result struct {
	RunID      uuid.UUID
	Candidates []candidate.Candidate
}

// Run executes the full pipeline over trialSet: K = min(cfg.MaxThreads,
// accelerator count) workers independently exhaust the dispenser,
// their candidates are joined and distilled across DM/acceleration/
// harmonic axes, then scored. zaps is the pre-parsed birdie list (may
// be nil). acq is the acquisition metadata the scorer needs.
func Run(cfg config.Config, trialSet *trials.DispersionTrialSet, zaps []birdie.Zap, acq scorer.Acquisition, log *zap.Logger) (Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	runID := uuid.New()
	log = log.With(zap.String("run_id", runID.String()))

	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("master: invalid config: %w", err)
	}

	size := resolveSize(cfg.Size, trialSet.Nsamps())

	k := workerCount(cfg.MaxThreads)

	disp := dispenser.New(trialSet.Count(), log)

	type workerOutcome struct {
		cands []candidate.Candidate
		err   error
	}

	results := make(chan workerOutcome, k)

	for w := 0; w < k; w++ {
		w := w
		deviceIndex := w
		go func() {
			wk := worker.New(w, deviceIndex, cfg, trialSet, disp, zaps, size, log)
			cands, err := wk.Run()
			results <- workerOutcome{cands: cands, err: err}
		}()
	}

	var all []candidate.Candidate
	var joinErr error

	for i := 0; i < k; i++ {
		out := <-results
		all = append(all, out.cands...)

		if out.err != nil {
			joinErr = multierr.Append(joinErr, out.err)
		}
	}

	log.Info("workers joined", zap.Int("worker_count", k), zap.Int("raw_candidates", len(all)))

	// The raw, pre-distillation candidate set is what the scorer needs:
	// distillation collapses each group of "same signal" candidates down
	// to one representative, discarding exactly the per-DM-trial and
	// per-harmonic SNR spread DMCurveWidth/HarmonicConsistency measure.
	raw := all

	all = distill.DM(all, cfg.FreqTol)
	all = distill.Harmonic(all, cfg.FreqTol, cfg.MaxHarm, true)

	sc := scorer.New(acq)
	sc.Score(all, dmCurve(raw, cfg.FreqTol), harmonicSNRs(raw, cfg.FreqTol))

	collection := candidate.Collection{Cands: all}
	collection.SortBySNRDescending()

	log.Info("search complete", zap.Int("final_candidates", len(collection.Cands)))

	return Result{RunID: runID, Candidates: collection.Cands}, joinErr
}

// workerCount computes K = min(configured_max, accelerator_count), at
// least 1.
func workerCount(maxThreads int) int {
	devices, err := accelCount()
	if err != nil || devices < 1 {
		devices = 1
	}

	k := maxThreads
	if k > devices {
		k = devices
	}

	if k < 1 {
		k = 1
	}

	return k
}

func accelCount() (int, error) {
	devices, err := gpu.AvailableDevices()
	if err != nil {
		return 0, err
	}

	return len(devices), nil
}

// resolveSize returns the configured transform length, or the previous
// power of two <= nsamps when Size is unset (0).
func resolveSize(configured, nsamps int) int {
	if configured > 0 {
		return configured
	}

	return accmath.PrevPowerOfTwo(nsamps)
}

// dmCurve builds a C15 DMCurveWidth accessor over the raw, undistilled
// candidate set: for a given candidate, every other raw candidate
// whose frequency agrees to freqTol is the same signal seen at a
// different DM trial, ordered by trial index into an SNR-vs-DM curve.
func dmCurve(raw []candidate.Candidate, freqTol float64) func(candidate.Candidate) []float64 {
	return func(c candidate.Candidate) []float64 {
		type point struct {
			idx int
			snr float64
		}

		var pts []point
		for _, o := range raw {
			if relFreqClose(o.Frequency, c.Frequency, freqTol) {
				pts = append(pts, point{idx: o.DMTrialIdx, snr: o.SNR})
			}
		}

		sort.Slice(pts, func(i, j int) bool { return pts[i].idx < pts[j].idx })

		out := make([]float64, len(pts))
		for i, p := range pts {
			out[i] = p.snr
		}

		return out
	}
}

// harmonicSNRs builds a C15 HarmonicConsistency accessor over the raw
// candidate set: every other raw candidate at the same DM and
// acceleration whose (already harmonic-corrected) frequency agrees to
// freqTol is the same signal seen in a different harmonic sum, ordered
// by harmonic index.
func harmonicSNRs(raw []candidate.Candidate, freqTol float64) func(candidate.Candidate) []float64 {
	return func(c candidate.Candidate) []float64 {
		type point struct {
			h   int
			snr float64
		}

		var pts []point
		for _, o := range raw {
			if o.DM != c.DM || o.Acceleration != c.Acceleration {
				continue
			}

			if !relFreqClose(o.Frequency, c.Frequency, freqTol) {
				continue
			}

			pts = append(pts, point{h: o.HarmonicIndex, snr: o.SNR})
		}

		sort.Slice(pts, func(i, j int) bool { return pts[i].h < pts[j].h })

		out := make([]float64, len(pts))
		for i, p := range pts {
			out[i] = p.snr
		}

		return out
	}
}

func relFreqClose(a, b, tol float64) bool {
	if b == 0 {
		return a == 0
	}

	d := a - b
	if d < 0 {
		d = -d
	}

	return d/b < tol
}
