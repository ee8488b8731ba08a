package gpu

import (
	"fmt"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MockBackend is a CPU-backed accelerator backend used for development,
// tests, and any environment without a real CUDA/OpenCL device. It
// satisfies the full Backend/Context surface but executes everything
// in host memory, the way the teacher library's gpu.MockBackend runs
// complex FFTs on the CPU in place of a real device.
type MockBackend struct {
	device DeviceInfo
}

// NewMockBackend returns a mock backend exposing a single fake device.
func NewMockBackend() *MockBackend {
	return &MockBackend{
		device: DeviceInfo{
			Name:       "MockAccelerator",
			Vendor:     "accelsearch",
			Driver:     "mock",
			MemoryMB:   0,
			ComputeCap: "cpu",
		},
	}
}

func (b *MockBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "mock",
		Version:     "0.1",
		Description: "CPU-backed mock accelerator backend",
	}
}

func (b *MockBackend) Available() bool { return true }

func (b *MockBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

func (b *MockBackend) NewContext(deviceIndex int) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("%w: mock backend device index %d", ErrDeviceRange, deviceIndex)
	}

	return &mockContext{device: b.device}, nil
}

// RegisterMockBackend registers the mock backend as the active backend.
func RegisterMockBackend() {
	RegisterBackend(NewMockBackend())
}

type mockContext struct {
	device DeviceInfo
}

func (c *mockContext) Device() DeviceInfo { return c.device }

func (c *mockContext) NewRealBuffer(n int) (RealBuffer, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	return &mockRealBuffer{data: make([]float64, n)}, nil
}

func (c *mockContext) NewComplexBuffer(n int) (ComplexBuffer, error) {
	if n < 0 {
		return nil, ErrInvalidLength
	}

	return &mockComplexBuffer{data: make([]complex128, n)}, nil
}

func (c *mockContext) NewStream() (Stream, error) {
	return &mockStream{}, nil
}

func (c *mockContext) NewRealFFTPlan(n int, _ PlanOptions) (RealFFTPlan, error) {
	if n < 2 || n%2 != 0 {
		return nil, ErrInvalidLength
	}

	return &mockRealFFTPlan{n: n, fft: fourier.NewFFT(n)}, nil
}

func (c *mockContext) Close() error { return nil }

type mockRealBuffer struct {
	data []float64
}

func (b *mockRealBuffer) Len() int { return len(b.data) }

func (b *mockRealBuffer) CopyFromHost(src []float64) error {
	if src == nil {
		return ErrNilSlice
	}

	if len(src) < len(b.data) {
		return ErrLengthMismatch
	}

	copy(b.data, src[:len(b.data)])

	return nil
}

func (b *mockRealBuffer) CopyToHost(dst []float64) error {
	if dst == nil {
		return ErrNilSlice
	}

	if len(dst) < len(b.data) {
		return ErrLengthMismatch
	}

	copy(dst[:len(b.data)], b.data)

	return nil
}

func (b *mockRealBuffer) Fill(start, end int, v float64) error {
	if start < 0 || end > len(b.data) || start > end {
		return ErrInvalidLength
	}

	for i := start; i < end; i++ {
		b.data[i] = v
	}

	return nil
}

func (b *mockRealBuffer) Close() error {
	b.data = nil
	return nil
}

type mockComplexBuffer struct {
	data []complex128
}

func (b *mockComplexBuffer) Len() int { return len(b.data) }

func (b *mockComplexBuffer) CopyFromHost(src []complex128) error {
	if src == nil {
		return ErrNilSlice
	}

	if len(src) < len(b.data) {
		return ErrLengthMismatch
	}

	copy(b.data, src[:len(b.data)])

	return nil
}

func (b *mockComplexBuffer) CopyToHost(dst []complex128) error {
	if dst == nil {
		return ErrNilSlice
	}

	if len(dst) < len(b.data) {
		return ErrLengthMismatch
	}

	copy(dst[:len(b.data)], b.data)

	return nil
}

func (b *mockComplexBuffer) Close() error {
	b.data = nil
	return nil
}

type mockStream struct{}

func (s *mockStream) Synchronize() error { return nil }
func (s *mockStream) Close() error       { return nil }

// mockRealFFTPlan executes the real<->complex transform on the CPU via
// gonum's dsp/fourier FFT (a port of FFTPACK).
type mockRealFFTPlan struct {
	n   int
	fft *fourier.FFT
}

func (p *mockRealFFTPlan) Len() int         { return p.n }
func (p *mockRealFFTPlan) SpectrumLen() int { return p.n/2 + 1 }

func (p *mockRealFFTPlan) Forward(dst []complex128, src []float64) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(src) < p.n || len(dst) < p.SpectrumLen() {
		return ErrLengthMismatch
	}

	p.fft.Coefficients(dst[:p.SpectrumLen()], src[:p.n])

	return nil
}

// Inverse computes the unnormalised inverse transform: gonum's Sequence
// already divides by n to recover the original amplitude, so we scale
// back up by n to match the "unnormalised" contract of RealFFTPlan,
// matching cuFFT's convention that the original C++ pipeline relied on.
func (p *mockRealFFTPlan) Inverse(dst []float64, src []complex128) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < p.n || len(src) < p.SpectrumLen() {
		return ErrLengthMismatch
	}

	p.fft.Sequence(dst[:p.n], src[:p.SpectrumLen()])

	n := float64(p.n)
	for i := range dst[:p.n] {
		dst[i] *= n
	}

	return nil
}

func (p *mockRealFFTPlan) Close() error {
	p.fft = nil
	return nil
}
