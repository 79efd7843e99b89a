package bdf

import (
	"sort"

	"github.com/bdfio/bdf.go/constraints"
	"github.com/bdfio/bdf.go/ds"
)

// Basic is the type set the generic Write and Read functions accept: every
// fixed-width scalar plus strings.
type Basic interface {
	bool | int8 | int16 | int32 | int64 | uint8 | uint16 | uint32 | uint64 | float32 | float64 | string
}

type (
	// WriteFunc encodes a single value of type T into the Serializer.
	WriteFunc[T any] func(*Serializer, T)

	// ReadFunc decodes a single value of type T from the Deserializer.
	ReadFunc[T any] func(*Deserializer) T
)

// Encodable is implemented by types that can encode themselves into a
// Serializer.
type Encodable interface {
	Encode(s *Serializer)
}

// Decodable is implemented by types that can decode themselves from a
// Deserializer.
type Decodable interface {
	Decode(d *Deserializer)
}

// Write writes a basic value to the Serializer, dispatching on its type.
// Its signature matches WriteFunc, so it composes directly with the
// collection codecs, e.g. WriteSlice(s, xs, Write[uint32]).
func Write[T Basic](s *Serializer, v T) {
	switch v := any(v).(type) {
	case bool:
		s.WriteBool(v)
	case int8:
		s.WriteInt8(v)
	case int16:
		s.WriteInt16(v)
	case int32:
		s.WriteInt32(v)
	case int64:
		s.WriteInt64(v)
	case uint8:
		s.WriteUint8(v)
	case uint16:
		s.WriteUint16(v)
	case uint32:
		s.WriteUint32(v)
	case uint64:
		s.WriteUint64(v)
	case float32:
		s.WriteFloat32(v)
	case float64:
		s.WriteFloat64(v)
	case string:
		s.WriteString(v)
	}
}

// Read reads a basic value from the Deserializer, dispatching on its type.
func Read[T Basic](d *Deserializer) (v T) {
	switch p := any(&v).(type) {
	case *bool:
		*p = d.ReadBool()
	case *int8:
		*p = d.ReadInt8()
	case *int16:
		*p = d.ReadInt16()
	case *int32:
		*p = d.ReadInt32()
	case *int64:
		*p = d.ReadInt64()
	case *uint8:
		*p = d.ReadUint8()
	case *uint16:
		*p = d.ReadUint16()
	case *uint32:
		*p = d.ReadUint32()
	case *uint64:
		*p = d.ReadUint64()
	case *float32:
		*p = d.ReadFloat32()
	case *float64:
		*p = d.ReadFloat64()
	case *string:
		*p = d.ReadString()
	}

	return v
}

// WriteObject writes an Encodable to the Serializer.
func WriteObject[T Encodable](s *Serializer, v T) {
	v.Encode(s)
}

// ReadObject reads a T from the Deserializer via its pointer's Decodable
// implementation.
func ReadObject[T any, P interface {
	*T
	Decodable
}](d *Deserializer) T {
	var v T
	P(&v).Decode(d)

	return v
}

// WritePair writes a pair to the Serializer: the first element followed by
// the second, without any prefix.
func WritePair[A, B any](s *Serializer, p ds.Pair[A, B], writeFirst WriteFunc[A], writeSecond WriteFunc[B]) {
	writeFirst(s, p.First)
	writeSecond(s, p.Second)
}

// ReadPair reads a pair from the Deserializer, first element first.
func ReadPair[A, B any](d *Deserializer, readFirst ReadFunc[A], readSecond ReadFunc[B]) (p ds.Pair[A, B]) {
	p.First = readFirst(d)
	p.Second = readSecond(d)

	return p
}

// WriteSlice writes a slice to the Serializer as a uint64 element count
// followed by the elements in iteration order.
func WriteSlice[T any](s *Serializer, xs []T, write WriteFunc[T]) {
	s.WriteLen(len(xs))
	for _, x := range xs {
		if s.err != nil {
			return
		}
		write(s, x)
	}
}

// ReadSlice reads a slice from the Deserializer, preserving element order.
// On failure the returned slice is unspecified and must be discarded.
func ReadSlice[T any](d *Deserializer, read ReadFunc[T]) []T {
	n := d.ReadLen()
	if d.err != nil {
		return nil
	}
	xs := make([]T, n)
	for i := range xs {
		xs[i] = read(d)
		if d.err != nil {
			return nil
		}
	}

	return xs
}

// WriteMap writes a map to the Serializer as a uint64 entry count followed
// by the (key, value) pair encodings in ascending key order.
func WriteMap[K constraints.Ordered, V any](s *Serializer, m map[K]V, writeKey WriteFunc[K], writeValue WriteFunc[V]) {
	s.WriteLen(len(m))

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, k := range keys {
		if s.err != nil {
			return
		}
		writeKey(s, k)
		writeValue(s, m[k])
	}
}

// ReadMap reads a map from the Deserializer. Duplicate keys on the wire are
// tolerated, the last occurrence wins. On failure the returned map is
// unspecified and must be discarded.
func ReadMap[K constraints.Ordered, V any](d *Deserializer, readKey ReadFunc[K], readValue ReadFunc[V]) map[K]V {
	n := d.ReadLen()
	if d.err != nil {
		return nil
	}
	m := make(map[K]V, n)
	for i := 0; i < n; i++ {
		k := readKey(d)
		v := readValue(d)
		if d.err != nil {
			return nil
		}
		m[k] = v
	}

	return m
}

// WriteTreeMap writes a key-ordered TreeMap to the Serializer using the same
// wire form as WriteMap; the tree already iterates in ascending key order.
func WriteTreeMap[K constraints.Ordered, V any](s *Serializer, m *ds.TreeMap[K, V], writeKey WriteFunc[K], writeValue WriteFunc[V]) {
	s.WriteLen(m.Size())
	m.ForEach(func(k K, v V) bool {
		if s.err != nil {
			return false
		}
		writeKey(s, k)
		writeValue(s, v)

		return true
	})
}

// ReadTreeMap reads a key-ordered TreeMap from the Deserializer. Duplicate
// keys on the wire are tolerated, the last occurrence wins.
func ReadTreeMap[K constraints.Ordered, V any](d *Deserializer, readKey ReadFunc[K], readValue ReadFunc[V]) *ds.TreeMap[K, V] {
	n := d.ReadLen()
	if d.err != nil {
		return nil
	}
	m := ds.NewTreeMap[K, V]()
	for i := 0; i < n; i++ {
		k := readKey(d)
		v := readValue(d)
		if d.err != nil {
			return nil
		}
		m.Set(k, v)
	}

	return m
}
