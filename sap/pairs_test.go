package sap

import (
	"testing"

	"github.com/ajroetker/go-highway/hwy"
	"github.com/stretchr/testify/require"
)

func TestPairBufferAcquireEmpty(t *testing.T) {
	var host []uint32
	var pb pairBuffer
	pb.acquire(&host, hwy.MaxLanes[float32]())

	require.GreaterOrEqual(t, cap(pb.data), pb.slack)
	require.Equal(t, 0, pb.end)
	require.Equal(t, cap(pb.data)-pb.slack, pb.hwm)
	require.GreaterOrEqual(t, pb.slack, pairSlackMin)

	pb.release()
	require.Empty(t, host)
}

func TestPairBufferKeepsHostContent(t *testing.T) {
	host := make([]uint32, 4, 64)
	copy(host, []uint32{1, 2, 3, 4})

	var pb pairBuffer
	pb.acquire(&host, 4)
	pb.appendPair(9, 10)
	pb.release()

	require.Equal(t, []uint32{1, 2, 3, 4, 9, 10}, host)
}

func TestPairBufferGrowth(t *testing.T) {
	var host []uint32
	var pb pairBuffer
	pb.acquire(&host, hwy.MaxLanes[float32]())

	const pairs = 10000
	for i := uint32(0); i < pairs; i++ {
		pb.appendPair(i, i+1)
		require.LessOrEqual(t, pb.end, len(pb.data), "end ran past capacity")
	}
	pb.release()

	require.Len(t, host, 2*pairs)
	for i := uint32(0); i < pairs; i++ {
		require.Equal(t, i, host[2*i])
		require.Equal(t, i+1, host[2*i+1])
	}
}

func TestPairBufferAppendPacked(t *testing.T) {
	w := hwy.MaxLanes[uint32]()
	remapBase := make([]uint32, w)
	for i := range remapBase {
		remapBase[i] = uint32(100 + i)
	}

	var host []uint32
	var pb pairBuffer
	pb.acquire(&host, w)

	// Lanes 0 and 2 selected: two pairs, low lanes first.
	pb.appendPacked(7, remapBase, 0b101)
	require.Equal(t, 4, pb.end)
	require.Equal(t, []uint32{7, 100, 7, 102}, pb.data[:4])

	// The next report overwrites the slack lanes of the previous store.
	pb.appendPacked(8, remapBase, 0b10)
	require.Equal(t, 6, pb.end)
	require.Equal(t, []uint32{7, 100, 7, 102, 8, 101}, pb.data[:6])

	pb.release()
	require.Equal(t, []uint32{7, 100, 7, 102, 8, 101}, host)
}

func TestPairBufferPackedGrowth(t *testing.T) {
	w := hwy.MaxLanes[uint32]()
	remapBase := make([]uint32, w)
	for i := range remapBase {
		remapBase[i] = uint32(i)
	}
	full := uint64(1)<<w - 1

	var host []uint32
	var pb pairBuffer
	pb.acquire(&host, w)

	const blocks = 500
	for i := 0; i < blocks; i++ {
		pb.appendPacked(uint32(i), remapBase, full)
		require.LessOrEqual(t, pb.end, len(pb.data), "end ran past capacity")
	}
	pb.release()

	require.Len(t, host, 2*blocks*w)
	for i := 0; i < blocks; i++ {
		for k := 0; k < w; k++ {
			require.Equal(t, uint32(i), host[2*(i*w+k)])
			require.Equal(t, uint32(k), host[2*(i*w+k)+1])
		}
	}
}
