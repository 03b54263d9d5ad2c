package kvm

import (
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestDeviceError(t *testing.T) {
	tests := []struct {
		name     string
		errno    unix.Errno
		expected string
	}{
		{
			name:     "ENOENT",
			errno:    unix.ENOENT,
			expected: "kvm: device node missing (ENOENT) - kvm module not loaded or virtualization disabled in firmware",
		},
		{
			name:     "EACCES",
			errno:    unix.EACCES,
			expected: "kvm: access denied - add the user to the kvm group or run with sufficient privileges",
		},
		{
			name:     "EPERM",
			errno:    unix.EPERM,
			expected: "kvm: access denied - add the user to the kvm group or run with sufficient privileges",
		},
		{
			name:     "ENODEV",
			errno:    unix.ENODEV,
			expected: "kvm: no device (ENODEV) - hardware virtualization unavailable on this host",
		},
		{
			name:     "EBUSY",
			errno:    unix.EBUSY,
			expected: "kvm: device busy (EBUSY) - another hypervisor may hold the virtualization hardware",
		},
		{
			name:     "ENOTTY",
			errno:    unix.ENOTTY,
			expected: "kvm: inappropriate ioctl (ENOTTY) - target is not a kvm device node",
		},
		{
			name:     "EINVAL",
			errno:    unix.EINVAL,
			expected: "kvm: invalid argument (EINVAL) - check the extension identifier",
		},
		{
			name:     "EBADF",
			errno:    unix.EBADF,
			expected: "kvm: bad file descriptor (EBADF) - device handle is not open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := DeviceError{Errno: tt.errno}
			got := err.Error()
			if got != tt.expected {
				t.Errorf("DeviceError{Errno: %d}.Error() = %q, want %q", int(tt.errno), got, tt.expected)
			}
		})
	}
}

func TestDeviceErrorLogic(t *testing.T) {
	t.Run("custom message wins", func(t *testing.T) {
		if got := ErrDeviceClosed.Error(); got != "kvm: device is closed" {
			t.Errorf("ErrDeviceClosed.Error() = %q", got)
		}
	})

	t.Run("different errnos produce different messages", func(t *testing.T) {
		err1 := DeviceError{Errno: unix.ENOENT}
		err2 := DeviceError{Errno: unix.EBUSY}

		if err1.Error() == err2.Error() {
			t.Error("Different errnos should produce different messages")
		}
	})

	t.Run("unknown errno includes its number", func(t *testing.T) {
		err := DeviceError{Errno: unix.EXDEV}
		if !strings.Contains(err.Error(), "errno") {
			t.Errorf("Error message %q should name the errno", err.Error())
		}
	})
}

func TestDeviceErrorSanitized(t *testing.T) {
	t.Setenv("KVM_ENV", "production")

	tests := []struct {
		errno    unix.Errno
		expected string
	}{
		{unix.ENOENT, "kvm: device node missing"},
		{unix.EACCES, "kvm: access denied"},
		{unix.ENOTTY, "kvm: inappropriate ioctl"},
		{unix.EXDEV, "kvm: device error"},
	}

	for _, tt := range tests {
		err := DeviceError{Errno: tt.errno}
		if got := err.Error(); got != tt.expected {
			t.Errorf("sanitized DeviceError{Errno: %d}.Error() = %q, want %q", int(tt.errno), got, tt.expected)
		}
	}
}
