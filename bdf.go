// Package bdf implements a typed binary serialization protocol with a
// configurable byte order.
//
// A Serializer binds a byte order to an io.Writer and a Deserializer binds
// one to an io.Reader; both expose fluent, chainable operations with a
// sticky first error. Fixed-width scalars are written as their raw bytes in
// the configured order, strings and byte slices are length-prefixed, and
// composite shapes (pairs, slices, maps) compose recursively out of the
// scalar codecs via the generic functions in this package.
//
// The byte order is not encoded into the stream: the decoding side must be
// constructed with the same order the encoding side used.
package bdf

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/bdfio/bdf.go/byteorder"
)

// ByteOrder selects the byte order a Serializer or Deserializer uses for
// multi-byte scalars. It is fixed at construction time.
type ByteOrder uint8

const (
	// NativeOrder resolves to the byte order of the host machine.
	NativeOrder ByteOrder = iota
	// LittleEndian stores the least-significant byte first.
	LittleEndian
	// BigEndian stores the most-significant byte first.
	BigEndian
)

// resolve maps the tag to a concrete encoding/binary byte order.
func (o ByteOrder) resolve() binary.ByteOrder {
	switch o {
	case LittleEndian:
		return binary.LittleEndian
	case BigEndian:
		return binary.BigEndian
	default:
		return byteorder.Native
	}
}

func (o ByteOrder) String() string {
	switch o {
	case NativeOrder:
		return "native"
	case LittleEndian:
		return "little"
	case BigEndian:
		return "big"
	default:
		return "unknown"
	}
}

// ParseByteOrder parses the textual representation of a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	switch s {
	case "native":
		return NativeOrder, nil
	case "little":
		return LittleEndian, nil
	case "big":
		return BigEndian, nil
	default:
		return 0, errors.Errorf("unknown byte order %q", s)
	}
}
