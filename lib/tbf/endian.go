package tbf

import (
	"encoding/binary"
	"math"
)

// This file is TBF's endianness adapter (spec §4.3). The wire format
// fixes little-endian as canonical for every multi-byte integer,
// float, length prefix, and array/vector element.
//
// The C++ reference normalizes a buffer's bytes in place, once, the
// first time each object is indexed, so that later accesses can
// reinterpret raw buffer bytes as host-native values through a
// pointer cast. Go has no safe equivalent of that cast: a []byte
// cannot become a []int32 without the unsafe package, which this
// codebase (like its teacher) does not reach for in serialization
// code. Instead, every decode below goes through
// [encoding/binary.LittleEndian] directly against the wire bytes,
// which is correct on every host by construction and needs no
// separate "has this buffer been normalized yet" bookkeeping. This
// preserves the endianness-neutrality invariant (the same buffer
// decodes to the same values on any host) without the in-place
// mutation mechanism, which was a performance device for a language
// with unchecked pointer casts, not a behavioral requirement.

// putScalar encodes an unsigned integer of the given byte width
// (1, 2, 4, or 8) to dst in little-endian form.
func putScalar(dst []byte, width int, v uint64) {
	switch width {
	case 1:
		dst[0] = byte(v)
	case 2:
		binary.LittleEndian.PutUint16(dst, uint16(v))
	case 4:
		binary.LittleEndian.PutUint32(dst, uint32(v))
	case 8:
		binary.LittleEndian.PutUint64(dst, v)
	}
}

// getScalar decodes a little-endian unsigned integer of the given
// byte width from src into a uint64.
func getScalar(src []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(src[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(src))
	case 4:
		return uint64(binary.LittleEndian.Uint32(src))
	case 8:
		return binary.LittleEndian.Uint64(src)
	}
	return 0
}

// float32ToBits and float32FromBits transport a float32 through its
// IEEE 754 bit pattern, never the floating-point domain, per spec
// §4.3 ("never on floating-point domain semantics").
func float32ToBits(v float32) uint32   { return math.Float32bits(v) }
func float32FromBits(b uint32) float32 { return math.Float32frombits(b) }
func float64ToBits(v float64) uint64   { return math.Float64bits(v) }
func float64FromBits(b uint64) float64 { return math.Float64frombits(b) }
