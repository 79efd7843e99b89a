package bdf

import (
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/cockroachdb/errors"
)

// lener is implemented by sources that can report how many bytes are left to
// read, like bytes.Reader or stream.ByteReader. The Deserializer uses it to
// reject length prefixes that exceed the remaining data before allocating.
type lener interface {
	Len() int
}

// DeserializerOption configures a Deserializer.
type DeserializerOption func(*Deserializer)

// WithMaxAllocation overrides the upper bound on a single decoded length
// prefix (DefaultMaxAllocation by default).
func WithMaxAllocation(maxAlloc int) DeserializerOption {
	return func(d *Deserializer) {
		d.maxAlloc = maxAlloc
	}
}

// Deserializer decodes values from an io.Reader using a fixed byte order.
//
// Read methods return the decoded value directly; the first error
// encountered sticks, turns every following read into a no-op returning the
// zero value, and is retrievable via Err. The byte order must match the one
// the data was encoded with, otherwise multi-byte values decode to silently
// wrong results.
type Deserializer struct {
	r        io.Reader
	order    binary.ByteOrder
	scratch  [8]byte
	consumed int
	maxAlloc int
	err      error
}

// NewDeserializer creates a new Deserializer reading from r in the given
// byte order.
func NewDeserializer(r io.Reader, order ByteOrder, opts ...DeserializerOption) *Deserializer {
	d := &Deserializer{r: r, order: order.resolve(), maxAlloc: DefaultMaxAllocation}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Err returns the first error encountered during deserialization, if any.
func (d *Deserializer) Err() error {
	return d.err
}

// Consumed returns the amount of bytes read so far.
func (d *Deserializer) Consumed() int {
	return d.consumed
}

// Do calls f within the deserialization chain if no error occurred yet.
func (d *Deserializer) Do(f func()) *Deserializer {
	if d.err != nil {
		return d
	}
	f()

	return d
}

// ConsumedAll errors out if the source can report its remaining length and
// still holds unread bytes.
func (d *Deserializer) ConsumedAll() *Deserializer {
	if d.err != nil {
		return d
	}
	if l, ok := d.r.(lener); ok && l.Len() > 0 {
		d.err = errors.Wrapf(ErrNotAllConsumed, "%d bytes left", l.Len())
	}

	return d
}

// read fills b completely from the underlying reader. A short read is
// reported as ErrNotEnoughData.
func (d *Deserializer) read(b []byte) {
	if d.err != nil {
		return
	}
	n, err := io.ReadFull(d.r, b)
	d.consumed += n
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			d.err = errors.Wrapf(ErrNotEnoughData, "read %d of %d bytes", n, len(b))

			return
		}
		d.err = errors.Wrap(err, "unable to read from stream")
	}
}

// ReadUint8 reads a uint8 from the Deserializer.
func (d *Deserializer) ReadUint8() uint8 {
	d.read(d.scratch[:OneByte])
	if d.err != nil {
		return 0
	}

	return d.scratch[0]
}

// ReadUint16 reads a uint16 from the Deserializer.
func (d *Deserializer) ReadUint16() uint16 {
	d.read(d.scratch[:UInt16ByteSize])
	if d.err != nil {
		return 0
	}

	return d.order.Uint16(d.scratch[:UInt16ByteSize])
}

// ReadUint32 reads a uint32 from the Deserializer.
func (d *Deserializer) ReadUint32() uint32 {
	d.read(d.scratch[:UInt32ByteSize])
	if d.err != nil {
		return 0
	}

	return d.order.Uint32(d.scratch[:UInt32ByteSize])
}

// ReadUint64 reads a uint64 from the Deserializer.
func (d *Deserializer) ReadUint64() uint64 {
	d.read(d.scratch[:UInt64ByteSize])
	if d.err != nil {
		return 0
	}

	return d.order.Uint64(d.scratch[:UInt64ByteSize])
}

// ReadInt8 reads an int8 from the Deserializer.
func (d *Deserializer) ReadInt8() int8 {
	return int8(d.ReadUint8())
}

// ReadInt16 reads an int16 from the Deserializer.
func (d *Deserializer) ReadInt16() int16 {
	return int16(d.ReadUint16())
}

// ReadInt32 reads an int32 from the Deserializer.
func (d *Deserializer) ReadInt32() int32 {
	return int32(d.ReadUint32())
}

// ReadInt64 reads an int64 from the Deserializer.
func (d *Deserializer) ReadInt64() int64 {
	return int64(d.ReadUint64())
}

// ReadFloat32 reads a float32 from the Deserializer. Any bit pattern is
// accepted, including NaN payloads.
func (d *Deserializer) ReadFloat32() float32 {
	return math.Float32frombits(d.ReadUint32())
}

// ReadFloat64 reads a float64 from the Deserializer. Any bit pattern is
// accepted, including NaN payloads.
func (d *Deserializer) ReadFloat64() float64 {
	return math.Float64frombits(d.ReadUint64())
}

// ReadBool reads a bool from the Deserializer. Bytes other than 0 and 1 are
// rejected with ErrInvalidBoolValue.
func (d *Deserializer) ReadBool() bool {
	v := d.ReadUint8()
	if d.err != nil {
		return false
	}
	if v > 1 {
		d.err = errors.Wrapf(ErrInvalidBoolValue, "%d", v)

		return false
	}

	return v == 1
}

// ReadLen reads a length prefix and validates it against the allocation
// limit and, when the source can report it, the remaining stream data.
func (d *Deserializer) ReadLen() int {
	v := d.ReadUint64()
	if d.err != nil {
		return 0
	}
	if v > uint64(math.MaxInt) || int(v) > d.maxAlloc {
		d.err = errors.Wrapf(ErrLengthInvalid, "length %d exceeds allocation limit %d", v, d.maxAlloc)

		return 0
	}
	if l, ok := d.r.(lener); ok && int(v) > l.Len() {
		d.err = errors.Wrapf(ErrLengthInvalid, "length %d exceeds remaining %d bytes", v, l.Len())

		return 0
	}

	return int(v)
}

// ReadString reads a length-prefixed string from the Deserializer.
func (d *Deserializer) ReadString() string {
	return string(d.ReadBytes())
}

// ReadBytes reads a length-prefixed byte slice from the Deserializer.
func (d *Deserializer) ReadBytes() []byte {
	n := d.ReadLen()
	if d.err != nil {
		return nil
	}

	return d.ReadBytesRaw(n)
}

// ReadBytesRaw reads exactly n bytes without any length prefix, the
// counterpart of Serializer.WriteBytesRaw. The destination is freshly
// allocated and exactly sized.
func (d *Deserializer) ReadBytesRaw(n int) []byte {
	if d.err != nil {
		return nil
	}
	b := make([]byte, n)
	d.read(b)
	if d.err != nil {
		return nil
	}

	return b
}

// ReadTime reads a time.Time from the Deserializer. A stored 0 decodes to
// the zero time.
func (d *Deserializer) ReadTime() time.Time {
	nanoSeconds := d.ReadInt64()
	if d.err != nil || nanoSeconds == 0 {
		return time.Time{}
	}

	return time.Unix(0, nanoSeconds)
}
