//go:build linux

package kvm

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sys/unix"
)

// ioctl request numbers from linux/kvm.h: _IO(KVMIO, nr) with KVMIO = 0xAE.
const (
	ioctlGetAPIVersion  = 0xAE00
	ioctlCreateVM       = 0xAE01
	ioctlCheckExtension = 0xAE03
)

// Device is an open read/write handle to the kvm controller device.
type Device struct {
	fd      int
	closed  bool
	closeMu sync.Mutex // Protect against concurrent Close() and finalizer
}

// Open opens the kvm controller device for read/write access.
func Open() (*Device, error) {
	start := time.Now()

	fd, err := unix.Open(DevicePath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		recordOpenError()
		return nil, devErr(err)
	}
	recordOpen(time.Since(start))

	d := &Device{fd: fd}

	// Set finalizer as safety net in case Close() is not called
	runtime.SetFinalizer(d, (*Device).finalize)

	return d, nil
}

// Close releases the device handle. Idempotent.
func (d *Device) Close() error {
	if d == nil {
		return nil
	}

	d.closeMu.Lock()
	defer d.closeMu.Unlock()

	if d.closed {
		return nil // Already closed
	}

	if err := unix.Close(d.fd); err != nil {
		return fmt.Errorf("failed to close kvm device: %w", err)
	}

	d.closed = true
	d.fd = -1

	// Clear finalizer since we've cleaned up properly
	runtime.SetFinalizer(d, nil)

	recordClose()
	return nil
}

// finalize is called by the garbage collector as a safety net
func (d *Device) finalize() {
	if d == nil {
		return
	}
	// Use non-blocking lock to prevent deadlock in finalizers
	if d.closeMu.TryLock() {
		defer d.closeMu.Unlock()
		if !d.closed {
			d.closed = true
			unix.Close(d.fd)
			d.fd = -1
		}
	}
}

// ioctl issues a request against the open device handle.
func (d *Device) ioctl(req, arg uintptr) (int, error) {
	if d == nil || d.closed {
		return 0, ErrDeviceClosed
	}

	ret, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(d.fd), req, arg)
	if errno != 0 {
		return 0, DeviceError{Errno: errno}
	}
	return int(ret), nil
}

// APIVersion returns the KVM API version of the host device. The API
// has been stable at version 12 since Linux 2.6.22.
func (d *Device) APIVersion() (int, error) {
	return d.ioctl(ioctlGetAPIVersion, 0)
}

// CheckExtension queries the device for an extension and returns the
// raw KVM_CHECK_EXTENSION value. Generally 0 means unsupported and 1
// supported, but some extensions report additional information in the
// return value.
func (d *Device) CheckExtension(c Cap) (int, error) {
	start := time.Now()

	ret, err := d.ioctl(ioctlCheckExtension, uintptr(c))
	if err != nil {
		recordCheckError()
		return 0, err
	}

	recordCheck(time.Since(start))
	return ret, nil
}

// Supports reports whether the device advertises the extension.
func (d *Device) Supports(c Cap) (bool, error) {
	ret, err := d.CheckExtension(c)
	if err != nil {
		return false, err
	}
	return ret > 0, nil
}

// ProbeExtension runs the full probe sequence against the host: open
// the kvm device, query the extension, release the handle. The returned
// error is non-nil only when the device could not be opened; a failed
// query is recorded in ProbeResult.QueryErr and treated as unsupported.
func ProbeExtension(c Cap) (ProbeResult, error) {
	res := ProbeResult{Cap: c}

	d, err := Open()
	if err != nil {
		return res, err
	}
	defer d.Close()

	ret, err := d.CheckExtension(c)
	if err != nil {
		res.QueryErr = err
		return res, nil
	}

	res.Raw = ret
	res.Supported = ret > 0
	return res, nil
}

// Supported returns true if the kvm device is available, accessible,
// and speaks the stable API version.
func Supported() (bool, error) {
	d, err := Open()
	if err != nil {
		return false, err
	}
	defer d.Close()

	version, err := d.APIVersion()
	if err != nil {
		return false, err
	}
	return version == stableAPIVersion, nil
}

func devErr(err error) error {
	var errno unix.Errno
	if errors.As(err, &errno) {
		return DeviceError{Errno: errno}
	}
	return err
}
