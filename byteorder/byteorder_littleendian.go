//go:build 386 || amd64 || amd64p32 || arm || arm64 || loong64 || mips64le || mips64p32le || mipsle || ppc64le || riscv64 || wasm

package byteorder

import (
	"encoding/binary"
)

// Native is the byte order of the host machine.
var Native binary.ByteOrder = binary.LittleEndian

// IsLittleEndian reports whether the host machine is little-endian.
const IsLittleEndian = true

// HostToNetwork16 converts u from host to network (big-endian) order.
func HostToNetwork16(u uint16) uint16 { return ReverseBytes16(u) }

// HostToNetwork32 converts u from host to network (big-endian) order.
func HostToNetwork32(u uint32) uint32 { return ReverseBytes32(u) }

// HostToNetwork64 converts u from host to network (big-endian) order.
func HostToNetwork64(u uint64) uint64 { return ReverseBytes64(u) }

// NetworkToHost16 converts u from network (big-endian) to host order.
func NetworkToHost16(u uint16) uint16 { return ReverseBytes16(u) }

// NetworkToHost32 converts u from network (big-endian) to host order.
func NetworkToHost32(u uint32) uint32 { return ReverseBytes32(u) }

// NetworkToHost64 converts u from network (big-endian) to host order.
func NetworkToHost64(u uint64) uint64 { return ReverseBytes64(u) }
