// Package trials defines the read-only data model the dedispersion
// collaborator hands to the search core: a DispersionTrialSet of
// TimeSeries, one per trial DM.
package trials

import "fmt"

// TimeSeries is an ordered sequence of N real samples at uniform
// spacing tsamp, tagged with the dispersion measure it was dedispersed
// to and the sample-index range it originated from.
type TimeSeries struct {
	DM       float64
	Tsamp    float64
	Samples  []float64
	StartIdx int64
	EndIdx   int64
}

// Nsamps returns the number of samples in the series.
func (t TimeSeries) Nsamps() int { return len(t.Samples) }

// DispersionTrialSet is an immutable, concurrently-readable collection
// of TimeSeries, addressable by integer index. It is owned by the
// driver (the dedispersion collaborator) and read-only to workers.
type DispersionTrialSet struct {
	series []TimeSeries
	tsamp  float64
	nsamps int
}

// New builds a DispersionTrialSet from a slice of TimeSeries that all
// share the same tsamp and sample count, matching the guarantee the
// incoherent dedisperser provides (N is fixed across all trials).
func New(series []TimeSeries) (*DispersionTrialSet, error) {
	if len(series) == 0 {
		return &DispersionTrialSet{}, nil
	}

	tsamp := series[0].Tsamp
	nsamps := series[0].Nsamps()

	for i, s := range series {
		if s.Tsamp != tsamp {
			return nil, fmt.Errorf("trials: series %d has tsamp %g, want %g", i, s.Tsamp, tsamp)
		}

		if s.Nsamps() != nsamps {
			return nil, fmt.Errorf("trials: series %d has %d samples, want %d", i, s.Nsamps(), nsamps)
		}
	}

	return &DispersionTrialSet{series: series, tsamp: tsamp, nsamps: nsamps}, nil
}

// Count returns the number of DM trials.
func (d *DispersionTrialSet) Count() int { return len(d.series) }

// Tsamp returns the sample spacing shared by every trial.
func (d *DispersionTrialSet) Tsamp() float64 { return d.tsamp }

// Nsamps returns the sample count shared by every trial.
func (d *DispersionTrialSet) Nsamps() int { return d.nsamps }

// At returns the TimeSeries at dm trial index i. The returned value is
// a copy of the header but shares the underlying Samples slice, which
// is never mutated after the set is constructed.
func (d *DispersionTrialSet) At(i int) (TimeSeries, error) {
	if i < 0 || i >= len(d.series) {
		return TimeSeries{}, fmt.Errorf("trials: index %d out of range [0,%d)", i, len(d.series))
	}

	return d.series[i], nil
}
