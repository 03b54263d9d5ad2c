package kvm

import (
	"sync/atomic"
	"time"
)

// Probe metrics for monitoring device operations
var (
	// Operation counters
	openCount  uint64
	closeCount uint64
	checkCount uint64

	// Timing metrics (nanoseconds)
	totalOpenTime  uint64
	totalCheckTime uint64

	// Error counters
	openErrors  uint64
	checkErrors uint64
)

// Metrics provides access to probe metrics
type Metrics struct {
	DeviceOpens     uint64 `json:"device_opens"`
	DeviceCloses    uint64 `json:"device_closes"`
	ExtensionChecks uint64 `json:"extension_checks"`
	AvgOpenTimeNs   uint64 `json:"avg_open_time_ns"`
	AvgCheckTimeNs  uint64 `json:"avg_check_time_ns"`
	OpenErrors      uint64 `json:"open_errors"`
	CheckErrors     uint64 `json:"check_errors"`
}

// GetMetrics returns current probe metrics
func GetMetrics() Metrics {
	opens := atomic.LoadUint64(&openCount)
	checks := atomic.LoadUint64(&checkCount)

	var avgOpen, avgCheck uint64
	if opens > 0 {
		avgOpen = atomic.LoadUint64(&totalOpenTime) / opens
	}
	if checks > 0 {
		avgCheck = atomic.LoadUint64(&totalCheckTime) / checks
	}

	return Metrics{
		DeviceOpens:     opens,
		DeviceCloses:    atomic.LoadUint64(&closeCount),
		ExtensionChecks: checks,
		AvgOpenTimeNs:   avgOpen,
		AvgCheckTimeNs:  avgCheck,
		OpenErrors:      atomic.LoadUint64(&openErrors),
		CheckErrors:     atomic.LoadUint64(&checkErrors),
	}
}

// ResetMetrics clears all probe metrics
func ResetMetrics() {
	atomic.StoreUint64(&openCount, 0)
	atomic.StoreUint64(&closeCount, 0)
	atomic.StoreUint64(&checkCount, 0)
	atomic.StoreUint64(&totalOpenTime, 0)
	atomic.StoreUint64(&totalCheckTime, 0)
	atomic.StoreUint64(&openErrors, 0)
	atomic.StoreUint64(&checkErrors, 0)
}

// Internal metric recording functions
func recordOpen(duration time.Duration) {
	atomic.AddUint64(&openCount, 1)
	atomic.AddUint64(&totalOpenTime, uint64(duration.Nanoseconds()))
}

func recordClose() {
	atomic.AddUint64(&closeCount, 1)
}

func recordCheck(duration time.Duration) {
	atomic.AddUint64(&checkCount, 1)
	atomic.AddUint64(&totalCheckTime, uint64(duration.Nanoseconds()))
}

func recordOpenError() {
	atomic.AddUint64(&openErrors, 1)
}

func recordCheckError() {
	atomic.AddUint64(&checkErrors, 1)
}
