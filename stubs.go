//go:build !linux

package kvm

// Device is an open handle to the kvm controller device. It is only
// functional on Linux.
type Device struct{}

// Open returns an error on non-Linux platforms.
func Open() (*Device, error) {
	return nil, ErrNotSupported
}

// Stub implementations for Device methods
func (d *Device) Close() error {
	return ErrNotSupported
}

func (d *Device) APIVersion() (int, error) {
	return 0, ErrNotSupported
}

func (d *Device) CheckExtension(c Cap) (int, error) {
	return 0, ErrNotSupported
}

func (d *Device) Supports(c Cap) (bool, error) {
	return false, ErrNotSupported
}

// ProbeExtension returns an error on non-Linux platforms.
func ProbeExtension(c Cap) (ProbeResult, error) {
	return ProbeResult{Cap: c}, ErrNotSupported
}

// Supported returns false on non-Linux platforms.
func Supported() (bool, error) {
	return false, ErrNotSupported
}
