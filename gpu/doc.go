// Package gpu provides the accelerator backend abstraction used by the
// per-DM worker pool: device discovery, buffer allocation, and the
// real<->complex FFT plan each worker drives its DM trial through.
//
// A Backend must be registered once at process start (RegisterBackend
// or one of the Register*Backend helpers). Workers acquire a Context
// tied to a fixed device index for their lifetime and never migrate.
package gpu
