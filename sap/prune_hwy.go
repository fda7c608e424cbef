package sap

//go:generate hwygen -input $GOFILE -output . -targets avx2,fallback

import (
	"github.com/ajroetker/go-highway/hwy"
)

// BaseOverlapInterval tests one axis of the overlap predicate for a block
// of candidate boxes against a broadcast anchor interval: lane k is true
// when [min1[k], max1[k]] intersects [min0, max0], endpoints included.
// min0 and max0 carry the anchor's interval broadcast to all lanes.
func BaseOverlapInterval[T hwy.Floats](max1, min1 []T, min0, max0 hwy.Vec[T]) hwy.Mask[T] {
	return hwy.MaskAnd(
		hwy.GreaterEqual(hwy.Load(max1), min0),
		hwy.LessEqual(hwy.Load(min1), max0),
	)
}

// pruneSweepHwy is the vectorized complete-pruning kernel. It walks the
// sorted order with the anchor index i0 and a persistent running cursor;
// candidates whose X range reaches the anchor get their YZ overlap tested
// a lane block at a time. n is the real box count; the slab's sentinel
// rows past n keep every block load in bounds and stop every scan.
func pruneSweepHwy(s *soaSlab, remap []uint32, n int, out *pairBuffer) {
	w := hwy.MaxLanes[float32]()

	running := 0
	for i0 := 0; i0 < n; i0++ {
		// Catch the running cursor up to the anchor's X range. The
		// trailing increment steps past the box that stopped the scan
		// (the anchor itself, absent MinX ties), which is what makes
		// each unordered pair come out exactly once.
		minLimit := s.minX[i0]
		for s.minX[running] < minLimit {
			running++
		}
		running++
		if running >= n {
			break
		}

		maxLimit := s.maxX[i0]
		id0 := remap[i0]
		aMaxY := hwy.Set(s.maxY[i0])
		aMinY := hwy.Set(s.minY[i0])
		aMaxZ := hwy.Set(s.maxZ[i0])
		aMinZ := hwy.Set(s.minZ[i0])

		j := running
		if s.minX[j+w-1] <= maxLimit {
			// Alignment prologue: snap the block start down to a lane
			// boundary and mask off the lanes before the running
			// cursor. Every later block starts lane-aligned.
			ja := j &^ (w - 1)
			hit := hwy.MaskAnd(
				BaseOverlapInterval(s.maxY[ja:], s.minY[ja:], aMinY, aMaxY),
				BaseOverlapInterval(s.maxZ[ja:], s.minZ[ja:], aMinZ, aMaxZ),
			)
			mask := hwy.BitsFromMask(hit) &^ (uint64(1)<<(j-ja) - 1)
			if mask != 0 {
				out.appendPacked(id0, remap[ja:ja+w], mask)
			}

			for j = ja + w; s.minX[j+w-1] <= maxLimit; j += w {
				hit := hwy.MaskAnd(
					BaseOverlapInterval(s.maxY[j:], s.minY[j:], aMinY, aMaxY),
					BaseOverlapInterval(s.maxZ[j:], s.minZ[j:], aMinZ, aMaxZ),
				)
				if mask := hwy.BitsFromMask(hit); mask != 0 {
					out.appendPacked(id0, remap[j:j+w], mask)
				}
			}
		}

		// Tail block: the block starts inside the anchor's X range but
		// runs past its end. Integer-compare MinX against the limit and
		// drop the out-of-range lanes from the hit mask.
		if s.minX[j] <= maxLimit {
			outside := hwy.GreaterThan(hwy.Load(s.minX[j:]), hwy.Set(maxLimit))
			hit := hwy.MaskAnd(
				BaseOverlapInterval(s.maxY[j:], s.minY[j:], aMinY, aMaxY),
				BaseOverlapInterval(s.maxZ[j:], s.minZ[j:], aMinZ, aMaxZ),
			)
			mask := hwy.BitsFromMask(hit) &^ hwy.BitsFromMask(outside)
			if mask != 0 {
				out.appendPacked(id0, remap[j:j+w], mask)
			}
		}
	}
}
