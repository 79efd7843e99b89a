// Package stream provides in-memory byte sinks and sources for the codec,
// plus digest-computing pass-through wrappers.
package stream

import (
	"bytes"
)

// ByteBuffer is a growable in-memory byte sink implementing io.Writer.
type ByteBuffer struct {
	buf bytes.Buffer
}

// NewByteBuffer creates a new ByteBuffer, optionally pre-sizing its capacity.
func NewByteBuffer(initialCapacity ...int) *ByteBuffer {
	b := &ByteBuffer{}
	if len(initialCapacity) > 0 {
		b.buf.Grow(initialCapacity[0])
	}

	return b
}

// Write appends p to the buffer.
func (b *ByteBuffer) Write(p []byte) (n int, err error) {
	return b.buf.Write(p)
}

// Len returns the number of bytes written so far.
func (b *ByteBuffer) Len() int {
	return b.buf.Len()
}

// Bytes returns the written bytes. The slice is only valid until the next
// write.
func (b *ByteBuffer) Bytes() []byte {
	return b.buf.Bytes()
}

// Reader returns a ByteReader over the written bytes.
func (b *ByteBuffer) Reader() *ByteReader {
	return NewByteReader(b.buf.Bytes())
}
