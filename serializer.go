package bdf

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// Serializer encodes values into an io.Writer using a fixed byte order.
//
// All Write methods return the Serializer itself so calls can be chained;
// the first error encountered sticks and turns every following call into a
// no-op. The Serializer borrows the writer and performs no buffering of its
// own; it must not be used concurrently.
type Serializer struct {
	w       io.Writer
	order   binary.ByteOrder
	scratch [8]byte
	written int
	err     error
}

// NewSerializer creates a new Serializer writing to w in the given byte order.
func NewSerializer(w io.Writer, order ByteOrder) *Serializer {
	return &Serializer{w: w, order: order.resolve()}
}

// Err returns the first error encountered during serialization, if any.
func (s *Serializer) Err() error {
	return s.err
}

// Written returns the amount of bytes written so far.
func (s *Serializer) Written() int {
	return s.written
}

// Do calls f within the serialization chain if no error occurred yet.
func (s *Serializer) Do(f func()) *Serializer {
	if s.err != nil {
		return s
	}
	f()

	return s
}

// AbortIf aborts the serialization with the error produced by errProducer,
// if any.
func (s *Serializer) AbortIf(errProducer func() error) *Serializer {
	if s.err != nil {
		return s
	}
	if err := errProducer(); err != nil {
		s.err = err
	}

	return s
}

// write moves raw bytes to the underlying writer, tracking the count and
// capturing the first failure.
func (s *Serializer) write(b []byte) {
	if s.err != nil {
		return
	}
	n, err := s.w.Write(b)
	s.written += n
	switch {
	case err != nil:
		s.err = errors.Wrap(err, "unable to write to stream")
	case n != len(b):
		s.err = errors.Wrap(io.ErrShortWrite, "unable to write to stream")
	}
}

// WriteUint8 writes a uint8 to the Serializer.
func (s *Serializer) WriteUint8(v uint8) *Serializer {
	s.scratch[0] = v
	s.write(s.scratch[:OneByte])

	return s
}

// WriteUint16 writes a uint16 to the Serializer.
func (s *Serializer) WriteUint16(v uint16) *Serializer {
	if s.err != nil {
		return s
	}
	s.order.PutUint16(s.scratch[:UInt16ByteSize], v)
	s.write(s.scratch[:UInt16ByteSize])

	return s
}

// WriteUint32 writes a uint32 to the Serializer.
func (s *Serializer) WriteUint32(v uint32) *Serializer {
	if s.err != nil {
		return s
	}
	s.order.PutUint32(s.scratch[:UInt32ByteSize], v)
	s.write(s.scratch[:UInt32ByteSize])

	return s
}

// WriteUint64 writes a uint64 to the Serializer.
func (s *Serializer) WriteUint64(v uint64) *Serializer {
	if s.err != nil {
		return s
	}
	s.order.PutUint64(s.scratch[:UInt64ByteSize], v)
	s.write(s.scratch[:UInt64ByteSize])

	return s
}

// WriteInt8 writes an int8 to the Serializer.
func (s *Serializer) WriteInt8(v int8) *Serializer {
	return s.WriteUint8(uint8(v))
}

// WriteInt16 writes an int16 to the Serializer.
func (s *Serializer) WriteInt16(v int16) *Serializer {
	return s.WriteUint16(uint16(v))
}

// WriteInt32 writes an int32 to the Serializer.
func (s *Serializer) WriteInt32(v int32) *Serializer {
	return s.WriteUint32(uint32(v))
}

// WriteInt64 writes an int64 to the Serializer.
func (s *Serializer) WriteInt64(v int64) *Serializer {
	return s.WriteUint64(uint64(v))
}

// WriteFloat32 writes a float32 to the Serializer. The byte order is applied
// to the raw IEEE 754 bit pattern.
func (s *Serializer) WriteFloat32(v float32) *Serializer {
	return s.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a float64 to the Serializer. The byte order is applied
// to the raw IEEE 754 bit pattern.
func (s *Serializer) WriteFloat64(v float64) *Serializer {
	return s.WriteUint64(math.Float64bits(v))
}

// WriteBool writes a bool to the Serializer as a single byte (0 or 1).
func (s *Serializer) WriteBool(v bool) *Serializer {
	var val uint8
	if v {
		val = 1
	}

	return s.WriteUint8(val)
}

// WriteLen writes a length prefix as a uint64 in the configured byte order.
// The composite codecs use it for string, slice and map prefixes.
func (s *Serializer) WriteLen(n int) *Serializer {
	return s.WriteUint64(uint64(n))
}

// WriteString writes a string to the Serializer as a uint64 byte length
// followed by the string's raw bytes. No terminator is written, so strings
// containing NUL bytes survive the round trip.
func (s *Serializer) WriteString(v string) *Serializer {
	if s.err != nil {
		return s
	}
	s.WriteLen(len(v))
	s.write([]byte(v))

	return s
}

// WriteBytes writes a byte slice to the Serializer as a uint64 length
// followed by the raw bytes.
func (s *Serializer) WriteBytes(v []byte) *Serializer {
	if s.err != nil {
		return s
	}
	s.WriteLen(len(v))
	s.write(v)

	return s
}

// WriteBytesRaw writes the given bytes without any length prefix. The
// reading side must know the exact count, see Deserializer.ReadBytesRaw.
func (s *Serializer) WriteBytesRaw(v []byte) *Serializer {
	s.write(v)

	return s
}

// WriteTime writes a time.Time to the Serializer as int64 Unix nanoseconds.
// The zero time is written as 0.
func (s *Serializer) WriteTime(t time.Time) *Serializer {
	if t.IsZero() {
		return s.WriteInt64(0)
	}

	return s.WriteInt64(t.UnixNano())
}
