// Package worker implements C14: the per-DM-trial state machine that
// drives one accelerator from Idle through repeated DM trials to Done
// (or Faulted on the first accelerator-side error).
package worker

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/cwbudde/accelsearch/gpu"
	"github.com/cwbudde/accelsearch/internal/accelplan"
	"github.com/cwbudde/accelsearch/internal/birdie"
	"github.com/cwbudde/accelsearch/internal/candidate"
	"github.com/cwbudde/accelsearch/internal/config"
	"github.com/cwbudde/accelsearch/internal/dereddening"
	"github.com/cwbudde/accelsearch/internal/dispenser"
	"github.com/cwbudde/accelsearch/internal/distill"
	"github.com/cwbudde/accelsearch/internal/harmonics"
	"github.com/cwbudde/accelsearch/internal/peaks"
	"github.com/cwbudde/accelsearch/internal/primitives"
	"github.com/cwbudde/accelsearch/internal/resample"
	"github.com/cwbudde/accelsearch/internal/spectrum"
	"github.com/cwbudde/accelsearch/internal/trials"
)

// State is one of the worker's state-machine states.
type State int

const (
	Idle State = iota
	Ready
	Processing
	Draining
	Done
	Faulted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Ready:
		return "ready"
	case Processing:
		return "processing"
	case Draining:
		return "draining"
	case Done:
		return "done"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// Worker owns one accelerator context for its whole lifetime and pulls
// DM trial indices from a shared Dispenser until it runs dry.
type Worker struct {
	id          int
	deviceIndex int
	cfg         config.Config
	trialSet    *trials.DispersionTrialSet
	dispenser   *dispenser.Dispenser
	log         *zap.Logger

	state State

	ctx      gpu.Context
	plan     gpu.RealFFTPlan
	deredden *dereddening.Dereddener
	zapper   *birdie.Zapper
	resamp   *resample.Resampler
	finder   *peaks.Finder
	accPlan  accelplan.Plan

	size int

	dmTrialCands []candidate.Candidate
}

// New builds a Worker. size is the transform length S (already
// resolved from config.Size, or the previous power of two <= nsamps).
func New(id, deviceIndex int, cfg config.Config, trialSet *trials.DispersionTrialSet, disp *dispenser.Dispenser, zaps []birdie.Zap, size int, log *zap.Logger) *Worker {
	if log == nil {
		log = zap.NewNop()
	}

	return &Worker{
		id:          id,
		deviceIndex: deviceIndex,
		cfg:         cfg,
		trialSet:    trialSet,
		dispenser:   disp,
		log:         log.With(zap.Int("worker", id), zap.Int("device", deviceIndex)),
		state:       Idle,
		deredden:    dereddening.New(cfg.Boundary5Freq, cfg.Boundary25Freq),
		zapper:      birdie.New(zaps),
		resamp:      resample.New(),
		finder:      peaks.New(cfg.MinSNR, cfg.MinFreq, cfg.MaxFreq),
		accPlan:     accelplan.New(cfg.AccStart, cfg.AccEnd, cfg.AccTol, cfg.AccPulseWidth),
		size:        size,
	}
}

// Run drives the worker through its whole lifetime: acquire the
// accelerator, process DM trials until the dispenser is exhausted,
// drain, and release. It returns the accumulated candidates, or an
// error if any accelerator operation failed (Faulted).
func (w *Worker) Run() ([]candidate.Candidate, error) {
	if err := w.acquire(); err != nil {
		w.state = Faulted
		return nil, fmt.Errorf("worker %d: acquire: %w", w.id, err)
	}

	w.state = Ready

	for {
		i := w.dispenser.Next()
		if i < 0 {
			break
		}

		w.state = Processing

		if err := w.processTrial(i); err != nil {
			w.state = Faulted
			w.release()
			return w.dmTrialCands, fmt.Errorf("worker %d: dm trial %d: %w", w.id, i, err)
		}

		w.state = Ready
	}

	w.state = Draining
	w.release()
	w.state = Done

	return w.dmTrialCands, nil
}

func (w *Worker) acquire() error {
	ctx, err := gpu.Open(w.deviceIndex)
	if err != nil {
		return err
	}

	plan, err := ctx.NewRealFFTPlan(w.size, gpu.PlanOptions{DeviceIndex: w.deviceIndex})
	if err != nil {
		ctx.Close()
		return err
	}

	w.ctx = ctx
	w.plan = plan

	return nil
}

func (w *Worker) release() {
	if w.plan != nil {
		w.plan.Close()
		w.plan = nil
	}

	if w.ctx != nil {
		w.ctx.Close()
		w.ctx = nil
	}
}

// processTrial runs one DM trial's full cleaning-and-search chain
// (spec.md §4.14 Processing(i)).
func (w *Worker) processTrial(i int) error {
	ts, err := w.trialSet.At(i)
	if err != nil {
		return err
	}

	size := w.size
	padded := make([]float64, size)

	n := ts.Nsamps()
	copy(padded, ts.Samples)

	if size > n {
		mean, _ := primitives.MeanStd(ts.Samples, n)
		for k := n; k < size; k++ {
			padded[k] = mean
		}
	}

	binWidth := spectrum.BinWidth(size, ts.Tsamp)
	specLen := size/2 + 1

	cleanSpec := make([]complex128, specLen)
	if err := w.plan.Forward(cleanSpec, padded); err != nil {
		return err
	}

	plainPower := make([]float64, specLen)
	spectrum.Form(plainPower, cleanSpec)

	median := w.deredden.Median(plainPower, specLen, binWidth)
	w.deredden.Deredden(cleanSpec, median)
	w.zapper.Apply(cleanSpec, binWidth)

	interp := make([]float64, specLen)
	spectrum.FormInterpolated(interp, cleanSpec)

	mean, std := primitives.MeanStd(interp, specLen)

	clean := make([]float64, size)
	if err := w.plan.Inverse(clean, cleanSpec); err != nil {
		return err
	}

	padMean, _ := primitives.MeanStd(clean, n)

	tobs := float64(size) * ts.Tsamp

	var accelTrialCands []candidate.Candidate

	resampled := make([]float64, size)
	trialSpec := make([]complex128, specLen)
	trialPower := make([]float64, specLen)

	for _, a := range w.accPlan.Generate(tobs) {
		w.resamp.Resample(resampled, clean, size, ts.Tsamp, a, padMean)

		if err := w.plan.Forward(trialSpec, resampled); err != nil {
			return err
		}

		spectrum.FormInterpolated(trialPower, trialSpec)
		// The unnormalised inverse and forward transforms scale every
		// amplitude by S, so trial powers are S^2 times the clean spectrum.
		powerGain := float64(size) * float64(size)
		primitives.Normalise(trialPower, mean*powerGain, std*powerGain, specLen)

		var accelCands []candidate.Candidate
		accelCands = append(accelCands, w.finder.Find(trialPower, binWidth, -1, ts.DM, i, a)...)

		if w.cfg.NHarmonics > 0 {
			sums := harmonics.Fold(trialPower, specLen, w.cfg.NHarmonics)
			for h := 0; h < sums.Len(); h++ {
				// A sum of f normalised bins has noise sigma sqrt(f).
				sum := sums.At(h)
				norm := 1 / math.Sqrt(float64(harmonics.Stretch(h)))
				for k := range sum {
					sum[k] *= norm
				}

				accelCands = append(accelCands, w.finder.Find(sum, binWidth, h, ts.DM, i, a)...)
			}
		}

		accelCands = distill.Harmonic(accelCands, w.cfg.FreqTol, w.cfg.MaxHarm, false)
		accelTrialCands = append(accelTrialCands, accelCands...)
	}

	accelTrialCands = distill.Accel(accelTrialCands, w.cfg.FreqTol)
	w.dmTrialCands = append(w.dmTrialCands, accelTrialCands...)

	return nil
}

// State returns the worker's current state.
func (w *Worker) State() State { return w.state }
