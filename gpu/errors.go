package gpu

import "errors"

var (
	// ErrNoBackend is returned when no accelerator backend is registered.
	ErrNoBackend = errors.New("accelsearch/gpu: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// available on the current system (e.g., no device, driver missing).
	ErrBackendUnavailable = errors.New("accelsearch/gpu: backend unavailable")

	// ErrNotImplemented is returned by stubbed operations.
	ErrNotImplemented = errors.New("accelsearch/gpu: not implemented")

	// ErrInvalidLength is returned for invalid plan or buffer sizes.
	ErrInvalidLength = errors.New("accelsearch/gpu: invalid length")

	// ErrNilSlice is returned when a required dst or src slice is nil.
	ErrNilSlice = errors.New("accelsearch/gpu: nil slice")

	// ErrLengthMismatch is returned when dst or src lengths don't match
	// the buffer's or plan's expected dimensions.
	ErrLengthMismatch = errors.New("accelsearch/gpu: length mismatch")

	// ErrDeviceRange is returned when a device index is out of range.
	ErrDeviceRange = errors.New("accelsearch/gpu: device index out of range")
)
