package sap

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

// Field offsets of AABB within its flat float32 view.
const (
	fieldMinX = 0
	fieldMinY = 1
	fieldMinZ = 2
	fieldMaxX = 3
	fieldMaxY = 4
	fieldMaxZ = 5
)

// encodeFloatVec is the lane-parallel form of encodeFloat.
func encodeFloatVec(v hwy.Vec[float32]) hwy.Vec[int32] {
	v = hwy.Add(v, hwy.Set(plusZero)) // canonicalize -0 to +0
	s := hwy.BitCastF32ToI32(v)
	toggle := hwy.And(hwy.ShiftRight(s, 31), hwy.Set(int32(0x7fffffff)))
	return hwy.Xor(s, toggle)
}

// buildSoA fills s from boxes in remap order: lane-sized blocks gather
// the six fields of each remapped box from the flat AoS view, encode the
// X pair, and store into the six arrays; the n mod lanes tail runs
// scalar, then [n, nbpad) is stamped with sentinels that fail every
// overlap test and stop every X scan. Building twice from the same input
// writes bitwise-identical slabs.
func buildSoA(s *soaSlab, boxes []AABB, remap []uint32) {
	n := len(boxes)
	w := hwy.MaxLanes[float32]()
	flat := floatView(boxes)

	// Indices of the remapped boxes within the flat view.
	idx6 := make([]int32, n)
	for i, r := range remap[:n] {
		idx6[i] = int32(r) * 6
	}

	full := n &^ (w - 1)
	for i := 0; i < full; i += w {
		idx := hwy.Load(idx6[i:])
		minXv := hwy.GatherIndexOffset(flat, fieldMinX, idx, 1)
		maxXv := hwy.GatherIndexOffset(flat, fieldMaxX, idx, 1)
		hwy.Store(encodeFloatVec(maxXv), s.maxX[i:])
		hwy.Store(encodeFloatVec(minXv), s.minX[i:])
		hwy.Store(hwy.GatherIndexOffset(flat, fieldMaxY, idx, 1), s.maxY[i:])
		hwy.Store(hwy.GatherIndexOffset(flat, fieldMinY, idx, 1), s.minY[i:])
		hwy.Store(hwy.GatherIndexOffset(flat, fieldMaxZ, idx, 1), s.maxZ[i:])
		hwy.Store(hwy.GatherIndexOffset(flat, fieldMinZ, idx, 1), s.minZ[i:])
	}
	for i := full; i < n; i++ {
		b := boxes[remap[i]]
		s.maxX[i] = encodeFloat(b.Max.X)
		s.minX[i] = encodeFloat(b.Min.X)
		s.maxY[i] = b.Max.Y
		s.minY[i] = b.Min.Y
		s.maxZ[i] = b.Max.Z
		s.minZ[i] = b.Min.Z
	}

	negInf := float32(math.Inf(-1))
	posInf := float32(math.Inf(1))
	for i := n; i < s.nbpad; i++ {
		s.maxX[i] = math.MinInt32
		s.minX[i] = math.MaxInt32
		s.maxY[i] = negInf
		s.minY[i] = posInf
		s.maxZ[i] = negInf
		s.minZ[i] = posInf
	}
}
