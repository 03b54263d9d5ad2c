package cmd

import (
	"errors"
	"testing"

	"github.com/blacktop/go-kvm"
	"golang.org/x/sys/unix"
)

func TestProbeStatus(t *testing.T) {
	tests := []struct {
		name     string
		res      kvm.ProbeResult
		expected int
	}{
		{
			name:     "supported",
			res:      kvm.ProbeResult{Cap: kvm.CapArmEL132Bit, Raw: 1, Supported: true},
			expected: 0,
		},
		{
			name:     "unsupported",
			res:      kvm.ProbeResult{Cap: kvm.CapArmEL132Bit, Raw: 0},
			expected: 1,
		},
		{
			name:     "query failed normalizes to unsupported",
			res:      kvm.ProbeResult{Cap: kvm.CapArmEL132Bit, QueryErr: kvm.DeviceError{Errno: unix.ENOTTY}},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := probeStatus(tt.res); got != tt.expected {
				t.Errorf("probeStatus() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestOpenStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "missing device carries negated ENOENT",
			err:      kvm.DeviceError{Errno: unix.ENOENT},
			expected: -int(unix.ENOENT),
		},
		{
			name:     "permission denied carries negated EACCES",
			err:      kvm.DeviceError{Errno: unix.EACCES},
			expected: -int(unix.EACCES),
		},
		{
			name:     "non-device error falls back to 1",
			err:      errors.New("boom"),
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := openStatus(tt.err); got != tt.expected {
				t.Errorf("openStatus() = %d, want %d", got, tt.expected)
			}
		})
	}
}
