// Package byteorder provides native byte-order detection and byte-swap
// primitives for fixed-width values.
package byteorder

import (
	"math/bits"
)

// ReverseBytes16 returns u with its byte order reversed.
func ReverseBytes16(u uint16) uint16 { return bits.ReverseBytes16(u) }

// ReverseBytes32 returns u with its byte order reversed.
func ReverseBytes32(u uint32) uint32 { return bits.ReverseBytes32(u) }

// ReverseBytes64 returns u with its byte order reversed.
func ReverseBytes64(u uint64) uint64 { return bits.ReverseBytes64(u) }

// Swap reverses b in place. It is its own inverse: Swap(Swap(b)) restores b.
// For a single byte it is a no-op.
func Swap(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
