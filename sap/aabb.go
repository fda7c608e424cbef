package sap

import "unsafe"

// Vector3 is a point in R3 with single precision components.
type Vector3 struct {
	X, Y, Z float32
}

// AABB is an axis-aligned bounding box. Min must be componentwise less
// than or equal to Max; this is assumed, not checked. The field order
// fixes the memory layout to (min.x, min.y, min.z, max.x, max.y, max.z),
// which the SoA builder relies on for its gathers.
type AABB struct {
	Min, Max Vector3
}

// The builder views a []AABB as a flat []float32 with stride 6.
var _ [unsafe.Sizeof(AABB{}) - 6*4]byte

// Overlaps reports whether a and b intersect on all three axes.
// Touching counts as overlapping. Returns false if any compared
// component is NaN.
func (a AABB) Overlaps(b AABB) bool {
	return b.Max.X >= a.Min.X && b.Min.X <= a.Max.X &&
		a.overlapsYZ(b)
}

// overlapsYZ is the Y/Z half of the overlap test, the predicate the
// sweep kernel evaluates on the candidates that already passed on X.
func (a AABB) overlapsYZ(b AABB) bool {
	return b.Max.Y >= a.Min.Y && b.Min.Y <= a.Max.Y &&
		b.Max.Z >= a.Min.Z && b.Min.Z <= a.Max.Z
}

// floatView returns boxes as a flat float32 slice, six components per box
// in declaration order.
func floatView(boxes []AABB) []float32 {
	return unsafe.Slice((*float32)(unsafe.Pointer(&boxes[0])), 6*len(boxes))
}

// Pair identifies two overlapping boxes by their positions in the input
// slice(s) they came from.
type Pair struct {
	A, B uint32
}
