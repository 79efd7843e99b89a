package bdf

const (
	// OneByte is the byte size of a single byte.
	OneByte = 1
	// Int16ByteSize is the byte size of an int16.
	Int16ByteSize = 2
	// Int32ByteSize is the byte size of an int32.
	Int32ByteSize = 4
	// Int64ByteSize is the byte size of an int64.
	Int64ByteSize = 8
	// UInt16ByteSize is the byte size of a uint16.
	UInt16ByteSize = 2
	// UInt32ByteSize is the byte size of a uint32.
	UInt32ByteSize = 4
	// UInt64ByteSize is the byte size of a uint64.
	UInt64ByteSize = 8
	// Float32ByteSize is the byte size of a float32.
	Float32ByteSize = 4
	// Float64ByteSize is the byte size of a float64.
	Float64ByteSize = 8
	// BoolByteSize is the byte size of a bool.
	BoolByteSize = 1
	// LengthPrefixByteSize is the byte size of the length prefix preceding
	// strings, byte slices, slices and maps on the wire.
	LengthPrefixByteSize = UInt64ByteSize
	// TimeByteSize is the byte size of a time value (Unix nanoseconds).
	TimeByteSize = Int64ByteSize
)

// DefaultMaxAllocation is the upper bound a Deserializer puts on a single
// decoded length prefix unless overridden with WithMaxAllocation. It guards
// against corrupt or hostile length fields requesting huge allocations.
const DefaultMaxAllocation = 1 << 30
