package bdf_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bdfio/bdf.go"
	"github.com/bdfio/bdf.go/stream"
)

func TestDeserializer_NotEnoughData(t *testing.T) {
	d := bdf.NewDeserializer(stream.NewByteReader([]byte{1, 2}), bdf.LittleEndian)
	d.ReadUint32()
	require.ErrorIs(t, d.Err(), bdf.ErrNotEnoughData)
}

func TestDeserializer_EmptySource(t *testing.T) {
	d := bdf.NewDeserializer(stream.NewByteReader(nil), bdf.BigEndian)
	d.ReadUint8()
	require.ErrorIs(t, d.Err(), bdf.ErrNotEnoughData)
}

func TestDeserializer_LengthExceedsRemaining(t *testing.T) {
	// length prefix claims 100 bytes but only 3 follow
	buffer := stream.NewByteBuffer()
	require.NoError(t, bdf.NewSerializer(buffer, bdf.LittleEndian).WriteLen(100).WriteBytesRaw([]byte{1, 2, 3}).Err())

	d := bdf.NewDeserializer(buffer.Reader(), bdf.LittleEndian)
	d.ReadString()
	require.ErrorIs(t, d.Err(), bdf.ErrLengthInvalid)
}

func TestDeserializer_LengthExceedsAllocationLimit(t *testing.T) {
	// an unbounded reader cannot report remaining bytes, the allocation
	// limit must still reject the length
	buffer := stream.NewByteBuffer()
	require.NoError(t, bdf.NewSerializer(buffer, bdf.LittleEndian).WriteLen(1<<20).Err())

	d := bdf.NewDeserializer(noLen{buffer.Reader()}, bdf.LittleEndian, bdf.WithMaxAllocation(1024))
	d.ReadBytes()
	require.ErrorIs(t, d.Err(), bdf.ErrLengthInvalid)
}

func TestDeserializer_LengthOverflow(t *testing.T) {
	buffer := stream.NewByteBuffer()
	require.NoError(t, bdf.NewSerializer(buffer, bdf.LittleEndian).WriteUint64(1<<63).Err())

	d := bdf.NewDeserializer(noLen{buffer.Reader()}, bdf.LittleEndian)
	d.ReadBytes()
	require.ErrorIs(t, d.Err(), bdf.ErrLengthInvalid)
}

func TestDeserializer_InvalidBool(t *testing.T) {
	d := bdf.NewDeserializer(stream.NewByteReader([]byte{2}), bdf.NativeOrder)
	d.ReadBool()
	require.ErrorIs(t, d.Err(), bdf.ErrInvalidBoolValue)
}

func TestDeserializer_ConsumedAll(t *testing.T) {
	d := bdf.NewDeserializer(stream.NewByteReader([]byte{1, 2, 3}), bdf.NativeOrder)
	d.ReadUint8()
	require.ErrorIs(t, d.ConsumedAll().Err(), bdf.ErrNotAllConsumed)

	d = bdf.NewDeserializer(stream.NewByteReader([]byte{1}), bdf.NativeOrder)
	d.ReadUint8()
	require.NoError(t, d.ConsumedAll().Err())
}

func TestDeserializer_StickyError(t *testing.T) {
	d := bdf.NewDeserializer(stream.NewByteReader([]byte{0xFF}), bdf.LittleEndian)
	d.ReadUint64()
	require.ErrorIs(t, d.Err(), bdf.ErrNotEnoughData)

	// every subsequent read is a no-op returning the zero value
	require.Zero(t, d.ReadUint8())
	require.Zero(t, d.ReadString())
	require.Nil(t, d.ReadBytesRaw(1))
	require.ErrorIs(t, d.Err(), bdf.ErrNotEnoughData)
}

func TestDeserializer_RawBytes(t *testing.T) {
	payload := []byte{0x00, 0xAB, 0x00}

	buffer := stream.NewByteBuffer()
	require.NoError(t, bdf.NewSerializer(buffer, bdf.BigEndian).WriteBytesRaw(payload).Err())
	require.Equal(t, payload, buffer.Bytes())

	d := bdf.NewDeserializer(buffer.Reader(), bdf.BigEndian)
	require.Equal(t, payload, d.ReadBytesRaw(len(payload)))
	require.NoError(t, d.ConsumedAll().Err())
}

// noLen hides the Len method of the wrapped reader.
type noLen struct {
	r *stream.ByteReader
}

func (n noLen) Read(p []byte) (int, error) {
	return n.r.Read(p)
}
