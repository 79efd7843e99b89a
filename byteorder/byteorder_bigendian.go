//go:build armbe || arm64be || mips || mips64 || mips64p32 || ppc || ppc64 || s390 || s390x || sparc || sparc64

package byteorder

import (
	"encoding/binary"
)

// Native is the byte order of the host machine.
var Native binary.ByteOrder = binary.BigEndian

// IsLittleEndian reports whether the host machine is little-endian.
const IsLittleEndian = false

// HostToNetwork16 converts u from host to network (big-endian) order.
func HostToNetwork16(u uint16) uint16 { return u }

// HostToNetwork32 converts u from host to network (big-endian) order.
func HostToNetwork32(u uint32) uint32 { return u }

// HostToNetwork64 converts u from host to network (big-endian) order.
func HostToNetwork64(u uint64) uint64 { return u }

// NetworkToHost16 converts u from network (big-endian) to host order.
func NetworkToHost16(u uint16) uint16 { return u }

// NetworkToHost32 converts u from network (big-endian) to host order.
func NetworkToHost32(u uint32) uint32 { return u }

// NetworkToHost64 converts u from network (big-endian) to host order.
func NetworkToHost64(u uint64) uint64 { return u }
