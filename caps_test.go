package kvm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapValues(t *testing.T) {
	// Verify that our constants match the linux/kvm.h extension numbers
	expected := map[string]Cap{
		"KVM_CAP_IRQCHIP":       0,
		"KVM_CAP_USER_MEMORY":   3,
		"KVM_CAP_NR_VCPUS":      9,
		"KVM_CAP_MAX_VCPUS":     66,
		"KVM_CAP_ONE_REG":       70,
		"KVM_CAP_ARM_PSCI":      87,
		"KVM_CAP_ARM_EL1_32BIT": 93,
		"KVM_CAP_ARM_PSCI_0_2":  102,
	}

	for name, want := range expected {
		c, err := ParseCap(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, c, name)
	}
}

func TestCapString(t *testing.T) {
	tests := []struct {
		cap      Cap
		expected string
	}{
		{CapArmEL132Bit, "KVM_CAP_ARM_EL1_32BIT"},
		{CapIRQChip, "KVM_CAP_IRQCHIP"},
		{CapImmediateExit, "KVM_CAP_IMMEDIATE_EXIT"},
		{Cap(9999), "Cap(9999)"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.cap.String())
		})
	}
}

func TestParseCap(t *testing.T) {
	t.Run("full macro name", func(t *testing.T) {
		c, err := ParseCap("KVM_CAP_ARM_EL1_32BIT")
		require.NoError(t, err)
		assert.Equal(t, CapArmEL132Bit, c)
	})

	t.Run("prefix optional", func(t *testing.T) {
		c, err := ParseCap("ARM_EL1_32BIT")
		require.NoError(t, err)
		assert.Equal(t, CapArmEL132Bit, c)
	})

	t.Run("case insensitive", func(t *testing.T) {
		c, err := ParseCap("arm_el1_32bit")
		require.NoError(t, err)
		assert.Equal(t, CapArmEL132Bit, c)
	})

	t.Run("unknown extension", func(t *testing.T) {
		_, err := ParseCap("NO_SUCH_EXTENSION")
		assert.Error(t, err)
	})
}

func TestAllCaps(t *testing.T) {
	caps := AllCaps()
	require.NotEmpty(t, caps)

	// Ordered by extension number
	for i := 1; i < len(caps); i++ {
		assert.Less(t, caps[i-1], caps[i])
	}

	assert.Contains(t, caps, CapArmEL132Bit)
}
