package kvm

// DevicePath is the kvm controller device node. It is a variable so
// tests can point probes at a fake node.
var DevicePath = "/dev/kvm"

// stableAPIVersion is the value KVM_GET_API_VERSION has reported since
// the KVM API was frozen in Linux 2.6.22.
const stableAPIVersion = 12

// ProbeResult describes the outcome of a single extension probe.
type ProbeResult struct {
	Cap       Cap   `json:"extension"`
	Raw       int   `json:"value"`
	Supported bool  `json:"supported"`
	QueryErr  error `json:"-"` // set when the extension query itself failed
}
