package sap

import "github.com/ajroetker/go-highway/hwy"

// appendPacked reports the pairs selected by mask with one left-packed
// vector store: the lane's remap ids are compressed to the low lanes,
// interleaved with the broadcast anchor id, and stored as a whole block.
// end advances by the popcount; the lanes past it are slack and get
// overwritten by the next report. This is the hot reporting path; the
// one-pair-at-a-time appendPair only serves the scalar sweeps.
func (p *pairBuffer) appendPacked(id0 uint32, remapBase []uint32, mask uint64) {
	p.ensureRoom()
	ids := hwy.Load(remapBase)
	packed, n := hwy.Compress(ids, hwy.MaskFromBits[uint32](mask))
	hwy.StoreInterleaved2(hwy.Set(id0), packed, p.data[p.end:])
	p.end += 2 * n
}
