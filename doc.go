// Package kvm provides Go bindings for probing the Linux KVM subsystem
// for guest execution capabilities via /dev/kvm.
//
// Provides device handle management and KVM_CHECK_EXTENSION queries for
// a curated set of KVM extensions, including whether a 64-bit ARM host
// can run 32-bit guest code at EL1 (KVM_CAP_ARM_EL1_32BIT).
//
// # Requirements
//
//   - Linux with the kvm kernel module loaded
//   - Read/write access to /dev/kvm (typically the kvm group or root)
//
// # Basic Usage
//
// Check if KVM is available at all:
//
//	supported, err := kvm.Supported()
//	if err != nil || !supported {
//		log.Fatal("KVM not available on this system")
//	}
//
// Query a single extension against an open device:
//
//	dev, err := kvm.Open()
//	if err != nil {
//		log.Fatal("Failed to open kvm device:", err)
//	}
//	defer dev.Close()
//
//	val, err := dev.CheckExtension(kvm.CapArmEL132Bit)
//	if err != nil {
//		log.Fatal("Extension query failed:", err)
//	}
//	fmt.Printf("32-bit EL1 guests: %v\n", val > 0)
//
// Or run the whole probe sequence (open, query, close) in one call:
//
//	res, err := kvm.ProbeExtension(kvm.CapArmEL132Bit)
//	if err != nil {
//		log.Fatal("Cannot open kvm device:", err) // device absent or inaccessible
//	}
//	if res.QueryErr != nil {
//		// the query itself failed; res.Supported is false
//	}
//
// # Error Handling
//
// All errors implement the standard Go error interface. Device-level
// failures are reported as DeviceError values carrying the underlying
// errno from the open or ioctl call.
//
// # Resource Management
//
// Device handles must be explicitly closed using Close(). Close is
// idempotent, and a finalizer provides safety net cleanup.
//
// # Platform Support
//
// Linux only. Other platforms return "not supported" errors.
package kvm
