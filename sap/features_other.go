//go:build !amd64

package sap

import "github.com/ajroetker/go-highway/hwy"

// usePackedKernel reports whether the vector sweep is worth dispatching.
// Off amd64 the hwy dispatch level already encodes everything we need.
func usePackedKernel() bool {
	return hwy.CurrentLevel() != hwy.DispatchScalar
}
