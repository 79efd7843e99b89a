package stream

import (
	"bytes"
)

// ByteReader is an in-memory byte source. It exposes Len, so deserializers
// can check decoded length prefixes against the remaining data.
type ByteReader struct {
	*bytes.Reader
}

// NewByteReader creates a new ByteReader over b.
func NewByteReader(b []byte) *ByteReader {
	return &ByteReader{
		Reader: bytes.NewReader(b),
	}
}

// BytesRead returns the number of bytes consumed so far.
func (b *ByteReader) BytesRead() int {
	return int(b.Size()) - b.Len()
}
