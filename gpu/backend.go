package gpu

import "sync"

// Backend is implemented by accelerator backends (CUDA, OpenCL, ROCm, ...).
// It is responsible for device discovery, buffer allocation, and execution.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int) (Context, error)
}

// Context represents a backend-specific context tied to one device.
// A worker acquires exactly one Context for its entire lifetime.
type Context interface {
	Device() DeviceInfo

	// NewRealBuffer allocates a device-resident real (time-domain) buffer
	// of length n samples.
	NewRealBuffer(n int) (RealBuffer, error)

	// NewComplexBuffer allocates a device-resident complex (frequency-domain)
	// buffer of length n bins.
	NewComplexBuffer(n int) (ComplexBuffer, error)

	// NewStream creates an execution stream/queue.
	NewStream() (Stream, error)

	// NewRealFFTPlan creates a forward real->complex / inverse complex->real
	// transform of size n (the transform length S).
	NewRealFFTPlan(n int, opts PlanOptions) (RealFFTPlan, error)

	Close() error
}

// RealBuffer is a device-resident buffer of real (time-domain) samples.
type RealBuffer interface {
	Len() int
	CopyFromHost(src []float64) error
	CopyToHost(dst []float64) error
	// Fill sets every element in [start, end) to v, used to pad a trial
	// with its pre-padding mean per spec §7's benign-recovery policy.
	Fill(start, end int, v float64) error
	Close() error
}

// ComplexBuffer is a device-resident buffer of complex (frequency-domain) bins.
type ComplexBuffer interface {
	Len() int
	CopyFromHost(src []complex128) error
	CopyToHost(dst []complex128) error
	Close() error
}

// Stream represents an execution queue tied to a Context.
type Stream interface {
	Synchronize() error
	Close() error
}

// RealFFTPlan is a backend-specific forward/inverse real<->complex FFT plan
// for a fixed transform length n (C2). Forward and Inverse both take and
// return ordinary host slices; a CPU-backed Context may execute them
// directly, while a true device backend would stage them through its own
// buffers internally.
type RealFFTPlan interface {
	// Len returns the number of real (time-domain) samples, S.
	Len() int
	// SpectrumLen returns the number of complex bins, S/2+1.
	SpectrumLen() int
	// Forward computes the real->complex transform. len(src) >= Len(),
	// len(dst) >= SpectrumLen().
	Forward(dst []complex128, src []float64) error
	// Inverse computes the complex->real transform, unnormalised (the
	// caller is expected to treat the result as a new "clean" time series
	// without dividing by S). len(src) >= SpectrumLen(), len(dst) >= Len().
	Inverse(dst []float64, src []complex128) error
	Close() error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers an accelerator backend. Passing nil clears it.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()

	if b == nil {
		return BackendInfo{}, false
	}

	return b.Info(), true
}

func getBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()

	return b
}

// AvailableDevices lists the devices exposed by the currently
// registered backend, used by the master to size its worker pool.
func AvailableDevices() ([]DeviceInfo, error) {
	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}

	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	return b.Devices()
}

// Open acquires a Context from the currently registered backend at the
// given device index. It is the entry point a worker uses on its
// Idle->Ready transition (§4.14).
func Open(deviceIndex int) (Context, error) {
	b := getBackend()
	if b == nil {
		return nil, ErrNoBackend
	}

	if !b.Available() {
		return nil, ErrBackendUnavailable
	}

	return b.NewContext(deviceIndex)
}
