// Package sap implements a broadphase collision stage over axis-aligned
// bounding boxes using sweep-and-prune with vectorized overlap tests.
//
// Given one set of boxes (CompleteBoxPruning) or two disjoint sets
// (BipartiteBoxPruning), it enumerates every pair whose boxes overlap on
// all three axes. Boxes are sorted along X once, then a single sweep walks
// the sorted order; candidates whose X-projections overlap the current box
// are tested on Y and Z several at a time through the portable SIMD
// operations of github.com/ajroetker/go-highway/hwy, so the same kernel
// runs 4-, 8- or 16-wide depending on the dispatch level, with a plain Go
// sweep as the scalar fallback.
//
// The engine is one-shot: it holds no state between calls, performs no
// I/O, and is safe for concurrent use from multiple goroutines on
// distinct inputs. Touching boxes (shared face, edge or corner) count as
// overlapping. Boxes with NaN in a Y or Z component never overlap
// anything; a NaN X component carries no such guarantee.
package sap
