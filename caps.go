package kvm

import (
	"fmt"
	"sort"
	"strings"
)

// Cap identifies a KVM extension that can be queried with
// KVM_CHECK_EXTENSION. Values match linux/kvm.h.
type Cap uint32

const (
	CapIRQChip           Cap = 0
	CapHLT               Cap = 1
	CapUserMemory        Cap = 3
	CapNrVCPUs           Cap = 9
	CapNrMemslots        Cap = 10
	CapMPState           Cap = 14
	CapSyncMMU           Cap = 16
	CapIRQFD             Cap = 32
	CapIOEventFD         Cap = 36
	CapMaxVCPUs          Cap = 66
	CapOneReg            Cap = 70
	CapReadonlyMem       Cap = 81
	CapArmPSCI           Cap = 87
	CapArmEL132Bit       Cap = 93
	CapArmPSCI02         Cap = 102
	CapMultiAddressSpace Cap = 118
	CapImmediateExit     Cap = 136
	CapArmVMIPASize      Cap = 165
)

// capNames maps each known extension to its linux/kvm.h macro name.
var capNames = map[Cap]string{
	CapIRQChip:           "KVM_CAP_IRQCHIP",
	CapHLT:               "KVM_CAP_HLT",
	CapUserMemory:        "KVM_CAP_USER_MEMORY",
	CapNrVCPUs:           "KVM_CAP_NR_VCPUS",
	CapNrMemslots:        "KVM_CAP_NR_MEMSLOTS",
	CapMPState:           "KVM_CAP_MP_STATE",
	CapSyncMMU:           "KVM_CAP_SYNC_MMU",
	CapIRQFD:             "KVM_CAP_IRQFD",
	CapIOEventFD:         "KVM_CAP_IOEVENTFD",
	CapMaxVCPUs:          "KVM_CAP_MAX_VCPUS",
	CapOneReg:            "KVM_CAP_ONE_REG",
	CapReadonlyMem:       "KVM_CAP_READONLY_MEM",
	CapArmPSCI:           "KVM_CAP_ARM_PSCI",
	CapArmEL132Bit:       "KVM_CAP_ARM_EL1_32BIT",
	CapArmPSCI02:         "KVM_CAP_ARM_PSCI_0_2",
	CapMultiAddressSpace: "KVM_CAP_MULTI_ADDRESS_SPACE",
	CapImmediateExit:     "KVM_CAP_IMMEDIATE_EXIT",
	CapArmVMIPASize:      "KVM_CAP_ARM_VM_IPA_SIZE",
}

func (c Cap) String() string {
	if name, ok := capNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Cap(%d)", uint32(c))
}

// AllCaps returns every extension this package knows about, ordered by
// extension number.
func AllCaps() []Cap {
	caps := make([]Cap, 0, len(capNames))
	for c := range capNames {
		caps = append(caps, c)
	}
	sort.Slice(caps, func(i, j int) bool { return caps[i] < caps[j] })
	return caps
}

// ParseCap resolves an extension by its linux/kvm.h macro name. The
// KVM_CAP_ prefix is optional and matching is case-insensitive.
func ParseCap(name string) (Cap, error) {
	n := strings.ToUpper(name)
	if !strings.HasPrefix(n, "KVM_CAP_") {
		n = "KVM_CAP_" + n
	}
	for c, macro := range capNames {
		if macro == n {
			return c, nil
		}
	}
	return 0, fmt.Errorf("kvm: unknown extension %q", name)
}
