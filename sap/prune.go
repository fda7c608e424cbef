package sap

import (
	"errors"
	"math"

	"github.com/ajroetker/go-highway/hwy"
)

var (
	// ErrNoBoxes is returned when a pruning call receives an empty box set.
	ErrNoBoxes = errors.New("sap: empty box set")

	// ErrTooLarge is returned when the box count is so large the internal
	// working set would overflow the platform size type, or the int32
	// indices the SoA builder gathers with.
	ErrTooLarge = errors.New("sap: box set too large")
)

// CompleteBoxPruning returns every pair of distinct boxes that overlap on
// all three axes. Each unordered pair is reported exactly once, with the
// box that sorts first along X in Pair.A. The emission order follows the
// X sweep; sort the result if a canonical order is needed.
func CompleteBoxPruning(boxes []AABB) ([]Pair, error) {
	return completeBoxPruning(boxes, usePackedKernel())
}

func completeBoxPruning(boxes []AABB, packed bool) ([]Pair, error) {
	n := len(boxes)
	if n == 0 {
		return nil, ErrNoBoxes
	}

	lanes := hwy.MaxLanes[float32]()
	s, err := newSoaSlab(n, lanes)
	if err != nil {
		return nil, err
	}

	// Sort by min.x through the encoded keys. The appended sentinel sorts
	// last (the radix sort is stable) and spares the sweep a bounds check.
	keys := make([]int32, n+1)
	for i := range boxes {
		keys[i] = encodeFloat(boxes[i].Min.X)
	}
	keys[n] = math.MaxInt32
	ranks := sortRanks(keys)

	// The reporting path loads remap a whole lane block at a time, so it
	// gets the slab's padded length.
	remap := make([]uint32, s.nbpad)
	copy(remap, ranks[:n])

	buildSoA(s, boxes, remap)

	var host []uint32
	var pb pairBuffer
	pb.acquire(&host, lanes)
	if packed {
		pruneSweepHwy(s, remap, n, &pb)
	} else {
		pruneSweepScalar(s, remap, n, &pb)
	}
	pb.release()

	return pairsFromFlat(host), nil
}

// pruneSweepScalar is the fallback sweep used when no vector unit is
// worth dispatching to. Same traversal and predicate as pruneSweepHwy,
// one candidate at a time.
func pruneSweepScalar(s *soaSlab, remap []uint32, n int, out *pairBuffer) {
	running := 0
	for i0 := 0; i0 < n; i0++ {
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
		aMaxY, aMinY := s.maxY[i0], s.minY[i0]
		aMaxZ, aMinZ := s.maxZ[i0], s.minZ[i0]

		for j := running; s.minX[j] <= maxLimit; j++ {
			if s.maxY[j] >= aMinY && s.minY[j] <= aMaxY &&
				s.maxZ[j] >= aMinZ && s.minZ[j] <= aMaxZ {
				out.appendPair(id0, remap[j])
			}
		}
	}
}

// BipartiteBoxPruning returns every pair (i, j) with a[i] overlapping
// b[j]. Two sweeps run over the merged X order: one anchored on a, one
// anchored on b; the second uses an exclusive advance so pairs with equal
// min.x are not reported twice.
func BipartiteBoxPruning(a, b []AABB) ([]Pair, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrNoBoxes
	}

	sortedA, remapA := sortByMinX(a)
	sortedB, remapB := sortByMinX(b)

	var host []uint32
	var pb pairBuffer
	pb.acquire(&host, 1)

	// Sweep 1: anchors from a, candidates from b.
	running := 0
	for i := 0; i < len(a) && running < len(b); i++ {
		box0 := sortedA[i]
		for running < len(b) && sortedB[running].Min.X < box0.Min.X {
			running++
		}
		for j := running; sortedB[j].Min.X <= box0.Max.X; j++ {
			if box0.overlapsYZ(sortedB[j]) {
				pb.appendPair(remapA[i], remapB[j])
			}
		}
	}

	// Sweep 2: anchors from b, candidates from a. The advance compare is
	// <=, so a-boxes sharing the anchor's min.x were already paired by
	// sweep 1 and are skipped here.
	running = 0
	for i := 0; i < len(b) && running < len(a); i++ {
		box1 := sortedB[i]
		for running < len(a) && sortedA[running].Min.X <= box1.Min.X {
			running++
		}
		for j := running; sortedA[j].Min.X <= box1.Max.X; j++ {
			if sortedA[j].overlapsYZ(box1) {
				pb.appendPair(remapA[j], remapB[i])
			}
		}
	}

	pb.release()
	return pairsFromFlat(host), nil
}

// sortByMinX returns boxes in ascending min.x order plus the sorted-to-
// input remap. The sorted copy carries one sentinel box whose min.x stops
// any scan past the end.
func sortByMinX(boxes []AABB) ([]AABB, []uint32) {
	n := len(boxes)
	keys := make([]int32, n+1)
	for i := range boxes {
		keys[i] = encodeFloat(boxes[i].Min.X)
	}
	keys[n] = math.MaxInt32
	ranks := sortRanks(keys)

	sorted := make([]AABB, n+1)
	for i, r := range ranks[:n] {
		sorted[i] = boxes[r]
	}
	sorted[n].Min.X = float32(math.Inf(1))
	return sorted, ranks[:n]
}
