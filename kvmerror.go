package kvm

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// DeviceError wraps the errno returned by the kvm device node.
// Errno stores the raw error number from the failed open or ioctl.
type DeviceError struct {
	Errno   unix.Errno
	message string // Optional custom message for specific errors
}

func (e DeviceError) Error() string {
	// Use custom message if available
	if e.message != "" {
		return e.message
	}

	// Security: Check if we should sanitize error messages
	if isProductionEnv() {
		return e.sanitizedError()
	}
	return e.detailedError()
}

// detailedError provides full error context for development
func (e DeviceError) detailedError() string {
	switch e.Errno {
	case unix.ENOENT:
		return "kvm: device node missing (ENOENT) - kvm module not loaded or virtualization disabled in firmware"
	case unix.EACCES, unix.EPERM:
		return "kvm: access denied - add the user to the kvm group or run with sufficient privileges"
	case unix.ENODEV:
		return "kvm: no device (ENODEV) - hardware virtualization unavailable on this host"
	case unix.EBUSY:
		return "kvm: device busy (EBUSY) - another hypervisor may hold the virtualization hardware"
	case unix.ENOTTY:
		return "kvm: inappropriate ioctl (ENOTTY) - target is not a kvm device node"
	case unix.EINVAL:
		return "kvm: invalid argument (EINVAL) - check the extension identifier"
	case unix.EBADF:
		return "kvm: bad file descriptor (EBADF) - device handle is not open"
	default:
		return fmt.Sprintf("kvm: device error: %v (errno %d)", unix.ErrnoName(e.Errno), int(e.Errno))
	}
}

// sanitizedError provides minimal error information for production
func (e DeviceError) sanitizedError() string {
	switch e.Errno {
	case unix.ENOENT:
		return "kvm: device node missing"
	case unix.EACCES, unix.EPERM:
		return "kvm: access denied"
	case unix.ENODEV:
		return "kvm: no device"
	case unix.EBUSY:
		return "kvm: device busy"
	case unix.ENOTTY:
		return "kvm: inappropriate ioctl"
	case unix.EINVAL:
		return "kvm: invalid argument"
	case unix.EBADF:
		return "kvm: bad file descriptor"
	default:
		return "kvm: device error"
	}
}

// isProductionEnv checks if we're running in production environment
func isProductionEnv() bool {
	env := os.Getenv("KVM_ENV")
	if env == "production" || env == "prod" {
		return true
	}

	// Check if debug mode is explicitly disabled
	if debug := os.Getenv("KVM_DEBUG"); debug != "" {
		if val, err := strconv.ParseBool(debug); err == nil && !val {
			return true
		}
	}

	return false
}

// Common specific errors for API consumers
var (
	ErrDeviceClosed = DeviceError{Errno: unix.EBADF, message: "kvm: device is closed"}
	ErrNotSupported = DeviceError{Errno: unix.ENOSYS, message: "kvm: not supported on this platform"}
)
