//go:build amd64

package sap

import (
	"github.com/ajroetker/go-highway/hwy"
	"golang.org/x/sys/cpu"
)

// usePackedKernel reports whether the vector sweep is worth dispatching:
// hwy must have found a vector target, and the CPU must offer the wide
// compares, byte shuffle and popcount that the left-packed reporting
// path leans on.
func usePackedKernel() bool {
	return hwy.CurrentLevel() != hwy.DispatchScalar &&
		cpu.X86.HasAVX2 && cpu.X86.HasPOPCNT && cpu.X86.HasSSSE3
}
