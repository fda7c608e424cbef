package sap

import "github.com/ajroetker/go-highway/hwy"

// SIMDAvailable reports whether pruning will run on the vector kernel.
// HWY_NO_SIMD=1 forces the scalar sweep regardless of hardware.
func SIMDAvailable() bool {
	return usePackedKernel()
}

// KernelName names the kernel CompleteBoxPruning dispatches to,
// e.g. "avx2", "neon" or "scalar".
func KernelName() string {
	if !usePackedKernel() {
		return "scalar"
	}
	return hwy.CurrentName()
}
