package tbf

// This file implements the reader-side getters for fixed-element-
// width arrays and vectors (spec §4.6/§4.7's "fixed-base array"
// case). Dynamic arrays (String/Binary/Object) have their own
// iterator types in array_reader.go because their elements are
// individually length-prefixed rather than a flat element stream.

func readFixedArray[T any](o *ObjectReader, tag Tag, typ Type, width int, decode func(raw []byte, i int) T) []T {
	entry, ok := o.find(tag)
	if !ok || entry.typ != typ {
		return nil
	}
	total := int(getScalar(o.payload[entry.offset:entry.offset+4], 4))
	start := entry.offset + 4
	elements := o.payload[start : start+total]
	if width == 0 {
		return nil
	}
	n := total / width
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = decode(elements, i)
	}
	return out
}

// ReadArrayInt8 returns the elements stored under tag, or nil if tag
// is absent or was written with a different type.
func (o *ObjectReader) ReadArrayInt8(tag Tag) []int8 {
	return readFixedArray(o, tag, TypeInt8Array, 1, func(b []byte, i int) int8 { return int8(b[i]) })
}

// ReadArrayInt16 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayInt16(tag Tag) []int16 {
	return readFixedArray(o, tag, TypeInt16Array, 2, func(b []byte, i int) int16 {
		return int16(getScalar(b[i*2:i*2+2], 2))
	})
}

// ReadArrayInt32 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayInt32(tag Tag) []int32 {
	return readFixedArray(o, tag, TypeInt32Array, 4, func(b []byte, i int) int32 {
		return int32(getScalar(b[i*4:i*4+4], 4))
	})
}

// ReadArrayInt64 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayInt64(tag Tag) []int64 {
	return readFixedArray(o, tag, TypeInt64Array, 8, func(b []byte, i int) int64 {
		return int64(getScalar(b[i*8:i*8+8], 8))
	})
}

// ReadArrayUInt8 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayUInt8(tag Tag) []uint8 {
	return readFixedArray(o, tag, TypeUInt8Array, 1, func(b []byte, i int) uint8 { return b[i] })
}

// ReadArrayUInt16 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayUInt16(tag Tag) []uint16 {
	return readFixedArray(o, tag, TypeUInt16Array, 2, func(b []byte, i int) uint16 {
		return uint16(getScalar(b[i*2:i*2+2], 2))
	})
}

// ReadArrayUInt32 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayUInt32(tag Tag) []uint32 {
	return readFixedArray(o, tag, TypeUInt32Array, 4, func(b []byte, i int) uint32 {
		return uint32(getScalar(b[i*4:i*4+4], 4))
	})
}

// ReadArrayUInt64 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayUInt64(tag Tag) []uint64 {
	return readFixedArray(o, tag, TypeUInt64Array, 8, func(b []byte, i int) uint64 {
		return getScalar(b[i*8:i*8+8], 8)
	})
}

// ReadArrayBool returns the elements stored under tag.
func (o *ObjectReader) ReadArrayBool(tag Tag) []bool {
	return readFixedArray(o, tag, TypeBoolArray, 1, func(b []byte, i int) bool { return b[i] != 0 })
}

// ReadArrayFloat16 returns the raw float16 bit patterns stored under
// tag.
func (o *ObjectReader) ReadArrayFloat16(tag Tag) []uint16 {
	return readFixedArray(o, tag, TypeFloat16Array, 2, func(b []byte, i int) uint16 {
		return uint16(getScalar(b[i*2:i*2+2], 2))
	})
}

// ReadArrayFloat32 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayFloat32(tag Tag) []float32 {
	return readFixedArray(o, tag, TypeFloat32Array, 4, func(b []byte, i int) float32 {
		return float32FromBits(uint32(getScalar(b[i*4:i*4+4], 4)))
	})
}

// ReadArrayFloat64 returns the elements stored under tag.
func (o *ObjectReader) ReadArrayFloat64(tag Tag) []float64 {
	return readFixedArray(o, tag, TypeFloat64Array, 8, func(b []byte, i int) float64 {
		return float64FromBits(getScalar(b[i*8:i*8+8], 8))
	})
}

// ReadArrayUUID returns the elements stored under tag.
func (o *ObjectReader) ReadArrayUUID(tag Tag) [][16]byte {
	return readFixedArray(o, tag, TypeUUIDArray, 16, func(b []byte, i int) [16]byte {
		var id [16]byte
		copy(id[:], b[i*16:i*16+16])
		return id
	})
}

func readVector[T any](o *ObjectReader, tag Tag, typ Type, dim int, decode func(raw []byte) T) (out [4]T, ok bool) {
	entry, found := o.find(tag)
	if !found || entry.typ != typ {
		return out, false
	}
	width := int(typ.BaseWidth())
	for i := 0; i < dim; i++ {
		out[i] = decode(o.payload[entry.offset+i*width : entry.offset+(i+1)*width])
	}
	return out, true
}

// ReadVector2Int32 returns the 2-element signed 32-bit vector stored
// under tag.
func (o *ObjectReader) ReadVector2Int32(tag Tag) ([2]int32, bool) {
	v, ok := readVector(o, tag, TypeVector2Int32, 2, func(b []byte) int32 { return int32(getScalar(b, 4)) })
	return [2]int32{v[0], v[1]}, ok
}

// ReadVector3Int32 returns the 3-element signed 32-bit vector stored
// under tag.
func (o *ObjectReader) ReadVector3Int32(tag Tag) ([3]int32, bool) {
	v, ok := readVector(o, tag, TypeVector3Int32, 3, func(b []byte) int32 { return int32(getScalar(b, 4)) })
	return [3]int32{v[0], v[1], v[2]}, ok
}

// ReadVector4Int32 returns the 4-element signed 32-bit vector stored
// under tag.
func (o *ObjectReader) ReadVector4Int32(tag Tag) ([4]int32, bool) {
	v, ok := readVector(o, tag, TypeVector4Int32, 4, func(b []byte) int32 { return int32(getScalar(b, 4)) })
	return [4]int32{v[0], v[1], v[2], v[3]}, ok
}

// ReadVector2Float32 returns the 2-element float32 vector stored
// under tag.
func (o *ObjectReader) ReadVector2Float32(tag Tag) ([2]float32, bool) {
	v, ok := readVector(o, tag, TypeVector2Float32, 2, func(b []byte) float32 { return float32FromBits(uint32(getScalar(b, 4))) })
	return [2]float32{v[0], v[1]}, ok
}

// ReadVector3Float32 returns the 3-element float32 vector stored
// under tag.
func (o *ObjectReader) ReadVector3Float32(tag Tag) ([3]float32, bool) {
	v, ok := readVector(o, tag, TypeVector3Float32, 3, func(b []byte) float32 { return float32FromBits(uint32(getScalar(b, 4))) })
	return [3]float32{v[0], v[1], v[2]}, ok
}

// ReadVector4Float32 returns the 4-element float32 vector stored
// under tag.
func (o *ObjectReader) ReadVector4Float32(tag Tag) ([4]float32, bool) {
	v, ok := readVector(o, tag, TypeVector4Float32, 4, func(b []byte) float32 { return float32FromBits(uint32(getScalar(b, 4))) })
	return [4]float32{v[0], v[1], v[2], v[3]}, ok
}

// ReadVector2Float64 returns the 2-element float64 vector stored
// under tag.
func (o *ObjectReader) ReadVector2Float64(tag Tag) ([2]float64, bool) {
	v, ok := readVector(o, tag, TypeVector2Float64, 2, func(b []byte) float64 { return float64FromBits(getScalar(b, 8)) })
	return [2]float64{v[0], v[1]}, ok
}

// ReadVector3Float64 returns the 3-element float64 vector stored
// under tag.
func (o *ObjectReader) ReadVector3Float64(tag Tag) ([3]float64, bool) {
	v, ok := readVector(o, tag, TypeVector3Float64, 3, func(b []byte) float64 { return float64FromBits(getScalar(b, 8)) })
	return [3]float64{v[0], v[1], v[2]}, ok
}

// ReadVector4Float64 returns the 4-element float64 vector stored
// under tag.
func (o *ObjectReader) ReadVector4Float64(tag Tag) ([4]float64, bool) {
	v, ok := readVector(o, tag, TypeVector4Float64, 4, func(b []byte) float64 { return float64FromBits(getScalar(b, 8)) })
	return [4]float64{v[0], v[1], v[2], v[3]}, ok
}
