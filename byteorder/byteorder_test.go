package byteorder_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdfio/bdf.go/byteorder"
)

func TestReverseBytes(t *testing.T) {
	require.EqualValues(t, 0x3412, byteorder.ReverseBytes16(0x1234))
	require.EqualValues(t, 0x78563412, byteorder.ReverseBytes32(0x12345678))
	require.EqualValues(t, uint64(0xEFCDAB8967452301), byteorder.ReverseBytes64(0x0123456789ABCDEF))
}

func TestReverseBytesInvolution(t *testing.T) {
	require.EqualValues(t, 0x1234, byteorder.ReverseBytes16(byteorder.ReverseBytes16(0x1234)))
	require.EqualValues(t, 0x12345678, byteorder.ReverseBytes32(byteorder.ReverseBytes32(0x12345678)))
	require.EqualValues(t, uint64(0x0123456789ABCDEF), byteorder.ReverseBytes64(byteorder.ReverseBytes64(0x0123456789ABCDEF)))
}

func TestSwapInvolution(t *testing.T) {
	for _, width := range []int{1, 2, 4, 8} {
		original := make([]byte, width)
		for i := range original {
			original[i] = byte(i + 1)
		}

		b := append([]byte(nil), original...)
		byteorder.Swap(b)
		if width > 1 {
			require.NotEqual(t, original, b)
		}
		byteorder.Swap(b)
		require.Equal(t, original, b)
	}
}

func TestSwapSingleByteIsNoOp(t *testing.T) {
	b := []byte{0x42}
	byteorder.Swap(b)
	require.Equal(t, []byte{0x42}, b)
}

func TestSwapMatchesReverseBytes(t *testing.T) {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, 0x12345678)
	byteorder.Swap(b)
	require.EqualValues(t, byteorder.ReverseBytes32(0x12345678), binary.BigEndian.Uint32(b))
}

func TestNativeConsistency(t *testing.T) {
	if byteorder.IsLittleEndian {
		require.Equal(t, binary.LittleEndian, byteorder.Native)
		require.EqualValues(t, 0x3412, byteorder.HostToNetwork16(0x1234))
	} else {
		require.Equal(t, binary.BigEndian, byteorder.Native)
		require.EqualValues(t, 0x1234, byteorder.HostToNetwork16(0x1234))
	}
	require.EqualValues(t, 0x1234, byteorder.NetworkToHost16(byteorder.HostToNetwork16(0x1234)))
}
