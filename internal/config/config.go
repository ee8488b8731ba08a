// Package config holds the search pipeline's configuration object
// (spec.md §6) and its validation.
package config

import (
	"fmt"

	"go.uber.org/multierr"
)

// Config is the full recognised option table from spec.md §6. Command
// line parsing is out of scope for the core; callers build a Config
// directly or decode one from JSON (see cmd/accelsearch).
type Config struct {
	// Size is the transform length S; 0 = previous power of two <= nsamps.
	Size int `json:"size"`

	// DM search range driving the external dedisperser's DM list.
	DMStart      float64 `json:"dm_start"`
	DMEnd        float64 `json:"dm_end"`
	DMTol        float64 `json:"dm_tol"`
	DMPulseWidth float64 `json:"dm_pulse_width"`

	// Acceleration search range driving the acceleration plan (C9).
	AccStart      float64 `json:"acc_start"`
	AccEnd        float64 `json:"acc_end"`
	AccTol        float64 `json:"acc_tol"`
	AccPulseWidth float64 `json:"acc_pulse_width"`

	// Dereddener (C4) window boundaries, in Hz.
	Boundary5Freq  float64 `json:"boundary_5_freq"`
	Boundary25Freq float64 `json:"boundary_25_freq"`

	// NHarmonics is H, the number of harmonic sums (C7).
	NHarmonics int `json:"nharmonics"`

	// MinSNR is sigma_min for the peak finder (C8).
	MinSNR float64 `json:"min_snr"`

	// Peak-finder frequency window, in Hz.
	MinFreq float64 `json:"min_freq"`
	MaxFreq float64 `json:"max_freq"`

	// MaxHarm is the maximum harmonic integer considered during
	// distillation (C10).
	MaxHarm int `json:"max_harm"`

	// FreqTol is the relative frequency tolerance used by every distiller.
	FreqTol float64 `json:"freq_tol"`

	// ZapFile is an optional path to a birdie list, parsed by an
	// external collaborator; only the already-parsed interval list is
	// ever handed to this core (internal/birdie).
	ZapFile string `json:"zapfile,omitempty"`

	// MaxThreads is the upper bound on K, the worker pool size.
	MaxThreads int `json:"max_threads"`

	Verbose     bool `json:"verbose"`
	ProgressBar bool `json:"progress_bar"`
}

// Default returns the option defaults used by the original pipeline's
// CmdLineOptions.
func Default() Config {
	return Config{
		Size:           0,
		DMStart:        0.0,
		DMEnd:          100.0,
		DMTol:          1.10,
		DMPulseWidth:   64.0,
		AccStart:       0.0,
		AccEnd:         0.0,
		AccTol:         1.10,
		AccPulseWidth:  64.0,
		Boundary5Freq:  0.05,
		Boundary25Freq: 0.5,
		NHarmonics:     4,
		MinSNR:         9.0,
		MinFreq:        0.1,
		MaxFreq:        1100.0,
		MaxHarm:        16,
		FreqTol:        0.0001,
		MaxThreads:     14,
	}
}

// Validate reports every configuration error found at once (rather than
// stopping at the first), matching §7's "Configuration errors are
// reported before any worker starts" policy.
func (c Config) Validate() error {
	var err error

	if c.DMEnd < c.DMStart {
		err = multierr.Append(err, fmt.Errorf("config: dm_end (%g) < dm_start (%g)", c.DMEnd, c.DMStart))
	}

	if c.DMTol <= 1.0 {
		err = multierr.Append(err, fmt.Errorf("config: dm_tol must be > 1.0, got %g", c.DMTol))
	}

	if c.AccEnd < c.AccStart {
		err = multierr.Append(err, fmt.Errorf("config: acc_end (%g) < acc_start (%g)", c.AccEnd, c.AccStart))
	}

	if c.AccTol <= 1.0 {
		err = multierr.Append(err, fmt.Errorf("config: acc_tol must be > 1.0, got %g", c.AccTol))
	}

	if c.Boundary5Freq <= 0 || c.Boundary25Freq <= c.Boundary5Freq {
		err = multierr.Append(err, fmt.Errorf(
			"config: need 0 < boundary_5_freq (%g) < boundary_25_freq (%g)", c.Boundary5Freq, c.Boundary25Freq))
	}

	if c.NHarmonics < 0 {
		err = multierr.Append(err, fmt.Errorf("config: nharmonics must be >= 0, got %d", c.NHarmonics))
	}

	if c.MinSNR <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: min_snr must be > 0, got %g", c.MinSNR))
	}

	if c.MaxFreq <= c.MinFreq {
		err = multierr.Append(err, fmt.Errorf("config: max_freq (%g) <= min_freq (%g)", c.MaxFreq, c.MinFreq))
	}

	if c.MaxHarm < 1 {
		err = multierr.Append(err, fmt.Errorf("config: max_harm must be >= 1, got %d", c.MaxHarm))
	}

	if c.FreqTol <= 0 {
		err = multierr.Append(err, fmt.Errorf("config: freq_tol must be > 0, got %g", c.FreqTol))
	}

	if c.MaxThreads < 1 {
		err = multierr.Append(err, fmt.Errorf("config: max_threads must be >= 1, got %d", c.MaxThreads))
	}

	return err
}
