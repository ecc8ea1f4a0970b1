package tbf

import (
	"github.com/google/uuid"
	"github.com/x448/float16"
)

// ObjectWriter is a cursor over a single object's fields within a
// [Writer]'s buffer. The root object is obtained from
// [Writer.RootObject]; nested objects are obtained from
// [ObjectWriter.FieldObject].
//
// An ObjectWriter is a thin, non-copyable borrow of its [Writer]: at
// most one cursor (this object, or a child array/object cursor it
// returned and has not yet finished) may append at a time. Overlapping
// unfinished children produce a corrupt buffer — this is caller
// discipline, exactly as in the C++ reference.
type ObjectWriter struct {
	w          *Writer
	sizeOffset int
	finished   bool
}

func newObjectWriter(w *Writer) *ObjectWriter {
	return &ObjectWriter{w: w, sizeOffset: w.reserveSizePlaceholder()}
}

// IsFinished reports whether [ObjectWriter.Finish] has already run.
func (o *ObjectWriter) IsFinished() bool { return o.finished }

// Finish back-patches this object's size prefix with the number of
// bytes appended since it was opened. Idempotent: calling it more
// than once has no additional effect.
func (o *ObjectWriter) Finish() {
	if o.finished {
		return
	}
	o.w.patchSize(o.sizeOffset)
	o.finished = true
}

// --- fixed-width scalar fields ---

// FieldInt8 writes a signed 8-bit field.
func (o *ObjectWriter) FieldInt8(tag Tag, v int8) {
	o.w.writeFieldHeader(tag, TypeInt8)
	o.w.appendScalar(1, uint64(uint8(v)))
}

// FieldInt16 writes a signed 16-bit field.
func (o *ObjectWriter) FieldInt16(tag Tag, v int16) {
	o.w.writeFieldHeader(tag, TypeInt16)
	o.w.appendScalar(2, uint64(uint16(v)))
}

// FieldInt32 writes a signed 32-bit field.
func (o *ObjectWriter) FieldInt32(tag Tag, v int32) {
	o.w.writeFieldHeader(tag, TypeInt32)
	o.w.appendScalar(4, uint64(uint32(v)))
}

// FieldInt64 writes a signed 64-bit field.
func (o *ObjectWriter) FieldInt64(tag Tag, v int64) {
	o.w.writeFieldHeader(tag, TypeInt64)
	o.w.appendScalar(8, uint64(v))
}

// FieldUInt8 writes an unsigned 8-bit field.
func (o *ObjectWriter) FieldUInt8(tag Tag, v uint8) {
	o.w.writeFieldHeader(tag, TypeUInt8)
	o.w.appendScalar(1, uint64(v))
}

// FieldUInt16 writes an unsigned 16-bit field.
func (o *ObjectWriter) FieldUInt16(tag Tag, v uint16) {
	o.w.writeFieldHeader(tag, TypeUInt16)
	o.w.appendScalar(2, uint64(v))
}

// FieldUInt32 writes an unsigned 32-bit field.
func (o *ObjectWriter) FieldUInt32(tag Tag, v uint32) {
	o.w.writeFieldHeader(tag, TypeUInt32)
	o.w.appendScalar(4, uint64(v))
}

// FieldUInt64 writes an unsigned 64-bit field.
func (o *ObjectWriter) FieldUInt64(tag Tag, v uint64) {
	o.w.writeFieldHeader(tag, TypeUInt64)
	o.w.appendScalar(8, v)
}

// FieldBool writes a boolean field as a single byte (0 or 1).
func (o *ObjectWriter) FieldBool(tag Tag, v bool) {
	o.w.writeFieldHeader(tag, TypeBool)
	var b uint64
	if v {
		b = 1
	}
	o.w.appendScalar(1, b)
}

// FieldFloat16 writes a float16 field from its raw IEEE 754
// half-precision bit pattern. Use [ObjectWriter.FieldFloat16Value] to
// write from a float32 instead.
func (o *ObjectWriter) FieldFloat16(tag Tag, bits uint16) {
	o.w.writeFieldHeader(tag, TypeFloat16)
	o.w.appendScalar(2, uint64(bits))
}

// FieldFloat16Value converts v to IEEE 754 half precision (via
// [github.com/x448/float16]) and writes the result as a float16
// field.
func (o *ObjectWriter) FieldFloat16Value(tag Tag, v float32) {
	o.FieldFloat16(tag, uint16(float16.Fromfloat32(v)))
}

// FieldFloat32 writes a 32-bit IEEE 754 float field.
func (o *ObjectWriter) FieldFloat32(tag Tag, v float32) {
	o.w.writeFieldHeader(tag, TypeFloat32)
	o.w.appendScalar(4, uint64(float32ToBits(v)))
}

// FieldFloat64 writes a 64-bit IEEE 754 float field.
func (o *ObjectWriter) FieldFloat64(tag Tag, v float64) {
	o.w.writeFieldHeader(tag, TypeFloat64)
	o.w.appendScalar(8, float64ToBits(v))
}

// --- variable-length scalar fields ---

// FieldUUID writes a 16-byte UUID field verbatim; UUID bytes are
// never byte-swapped.
func (o *ObjectWriter) FieldUUID(tag Tag, id [16]byte) {
	o.w.writeFieldHeader(tag, TypeUUID)
	o.w.appendBytes(id[:])
}

// FieldUUIDValue writes id as a UUID field.
func (o *ObjectWriter) FieldUUIDValue(tag Tag, id uuid.UUID) {
	o.FieldUUID(tag, id)
}

// FieldString writes a UTF-8 string field: (u16 length, bytes). s
// must be at most 65535 bytes; FieldString panics otherwise (a
// programmer error, per spec §7's writer infallibility contract for
// well-formed inputs).
func (o *ObjectWriter) FieldString(tag Tag, s string) {
	o.w.writeFieldHeader(tag, TypeString)
	o.w.writeString(s)
}

// FieldBinary writes an opaque byte field: (u32 length, bytes).
func (o *ObjectWriter) FieldBinary(tag Tag, data []byte) {
	o.w.writeFieldHeader(tag, TypeBinary)
	o.w.writeBinary(data)
}

// FieldObject opens a nested object field and returns a cursor for
// it. The caller must call [ObjectWriter.Finish] on the returned
// cursor before resuming writes on the parent; nothing finishes it
// automatically, and an unfinished child leaves its size prefix at 0.
func (o *ObjectWriter) FieldObject(tag Tag) *ObjectWriter {
	o.w.writeFieldHeader(tag, TypeObject)
	return newObjectWriter(o.w)
}

// --- fixed-width array fields ---

// FieldArrayInt8 writes a length-prefixed array of signed 8-bit
// elements.
func (o *ObjectWriter) FieldArrayInt8(tag Tag, data []int8) {
	writeFixedArray(o.w, tag, TypeInt8Array, 1, len(data), func(i int) uint64 { return uint64(uint8(data[i])) })
}

// FieldArrayInt16 writes a length-prefixed array of signed 16-bit
// elements.
func (o *ObjectWriter) FieldArrayInt16(tag Tag, data []int16) {
	writeFixedArray(o.w, tag, TypeInt16Array, 2, len(data), func(i int) uint64 { return uint64(uint16(data[i])) })
}

// FieldArrayInt32 writes a length-prefixed array of signed 32-bit
// elements.
func (o *ObjectWriter) FieldArrayInt32(tag Tag, data []int32) {
	writeFixedArray(o.w, tag, TypeInt32Array, 4, len(data), func(i int) uint64 { return uint64(uint32(data[i])) })
}

// FieldArrayInt64 writes a length-prefixed array of signed 64-bit
// elements.
func (o *ObjectWriter) FieldArrayInt64(tag Tag, data []int64) {
	writeFixedArray(o.w, tag, TypeInt64Array, 8, len(data), func(i int) uint64 { return uint64(data[i]) })
}

// FieldArrayUInt8 writes a length-prefixed array of unsigned 8-bit
// elements.
func (o *ObjectWriter) FieldArrayUInt8(tag Tag, data []uint8) {
	writeFixedArray(o.w, tag, TypeUInt8Array, 1, len(data), func(i int) uint64 { return uint64(data[i]) })
}

// FieldArrayUInt16 writes a length-prefixed array of unsigned 16-bit
// elements.
func (o *ObjectWriter) FieldArrayUInt16(tag Tag, data []uint16) {
	writeFixedArray(o.w, tag, TypeUInt16Array, 2, len(data), func(i int) uint64 { return uint64(data[i]) })
}

// FieldArrayUInt32 writes a length-prefixed array of unsigned 32-bit
// elements.
func (o *ObjectWriter) FieldArrayUInt32(tag Tag, data []uint32) {
	writeFixedArray(o.w, tag, TypeUInt32Array, 4, len(data), func(i int) uint64 { return uint64(data[i]) })
}

// FieldArrayUInt64 writes a length-prefixed array of unsigned 64-bit
// elements.
func (o *ObjectWriter) FieldArrayUInt64(tag Tag, data []uint64) {
	writeFixedArray(o.w, tag, TypeUInt64Array, 8, len(data), func(i int) uint64 { return data[i] })
}

// FieldArrayBool writes a length-prefixed array of boolean elements,
// one byte each.
func (o *ObjectWriter) FieldArrayBool(tag Tag, data []bool) {
	writeFixedArray(o.w, tag, TypeBoolArray, 1, len(data), func(i int) uint64 {
		if data[i] {
			return 1
		}
		return 0
	})
}

// FieldArrayFloat16 writes a length-prefixed array of raw float16 bit
// patterns.
func (o *ObjectWriter) FieldArrayFloat16(tag Tag, data []uint16) {
	writeFixedArray(o.w, tag, TypeFloat16Array, 2, len(data), func(i int) uint64 { return uint64(data[i]) })
}

// FieldArrayFloat32 writes a length-prefixed array of 32-bit floats.
func (o *ObjectWriter) FieldArrayFloat32(tag Tag, data []float32) {
	writeFixedArray(o.w, tag, TypeFloat32Array, 4, len(data), func(i int) uint64 { return uint64(float32ToBits(data[i])) })
}

// FieldArrayFloat64 writes a length-prefixed array of 64-bit floats.
func (o *ObjectWriter) FieldArrayFloat64(tag Tag, data []float64) {
	writeFixedArray(o.w, tag, TypeFloat64Array, 8, len(data), func(i int) uint64 { return float64ToBits(data[i]) })
}

// FieldArrayUUID writes a length-prefixed array of 16-byte UUID
// elements, never byte-swapped.
func (o *ObjectWriter) FieldArrayUUID(tag Tag, data [][16]byte) {
	o.w.writeFieldHeader(tag, TypeUUIDArray)
	sizeOffset := o.w.reserveSizePlaceholder()
	for _, id := range data {
		o.w.appendBytes(id[:])
	}
	o.w.patchSize(sizeOffset)
}

// writeFixedArray writes a fixed-element-width array field's header,
// length-prefixed body, and back-patched total byte count. get(i)
// returns element i's raw bit pattern, which appendScalar then
// encodes little-endian in width bytes.
func writeFixedArray(w *Writer, tag Tag, typ Type, width int, n int, get func(i int) uint64) {
	w.writeFieldHeader(tag, typ)
	sizeOffset := w.reserveSizePlaceholder()
	for i := 0; i < n; i++ {
		w.appendScalar(width, get(i))
	}
	w.patchSize(sizeOffset)
}

// --- vector fields ---

// FieldVector2Int32 writes a 2-element signed 32-bit vector: raw
// elements, no length prefix (the dimension is fixed by the type
// marker).
func (o *ObjectWriter) FieldVector2Int32(tag Tag, v [2]int32) {
	writeVector(o.w, tag, TypeVector2Int32, 4, 2, func(i int) uint64 { return uint64(uint32(v[i])) })
}

// FieldVector3Int32 writes a 3-element signed 32-bit vector.
func (o *ObjectWriter) FieldVector3Int32(tag Tag, v [3]int32) {
	writeVector(o.w, tag, TypeVector3Int32, 4, 3, func(i int) uint64 { return uint64(uint32(v[i])) })
}

// FieldVector4Int32 writes a 4-element signed 32-bit vector.
func (o *ObjectWriter) FieldVector4Int32(tag Tag, v [4]int32) {
	writeVector(o.w, tag, TypeVector4Int32, 4, 4, func(i int) uint64 { return uint64(uint32(v[i])) })
}

// FieldVector2Float32 writes a 2-element 32-bit float vector.
func (o *ObjectWriter) FieldVector2Float32(tag Tag, v [2]float32) {
	writeVector(o.w, tag, TypeVector2Float32, 4, 2, func(i int) uint64 { return uint64(float32ToBits(v[i])) })
}

// FieldVector3Float32 writes a 3-element 32-bit float vector.
func (o *ObjectWriter) FieldVector3Float32(tag Tag, v [3]float32) {
	writeVector(o.w, tag, TypeVector3Float32, 4, 3, func(i int) uint64 { return uint64(float32ToBits(v[i])) })
}

// FieldVector4Float32 writes a 4-element 32-bit float vector.
func (o *ObjectWriter) FieldVector4Float32(tag Tag, v [4]float32) {
	writeVector(o.w, tag, TypeVector4Float32, 4, 4, func(i int) uint64 { return uint64(float32ToBits(v[i])) })
}

// FieldVector2Float64 writes a 2-element 64-bit float vector.
func (o *ObjectWriter) FieldVector2Float64(tag Tag, v [2]float64) {
	writeVector(o.w, tag, TypeVector2Float64, 8, 2, func(i int) uint64 { return float64ToBits(v[i]) })
}

// FieldVector3Float64 writes a 3-element 64-bit float vector.
func (o *ObjectWriter) FieldVector3Float64(tag Tag, v [3]float64) {
	writeVector(o.w, tag, TypeVector3Float64, 8, 3, func(i int) uint64 { return float64ToBits(v[i]) })
}

// FieldVector4Float64 writes a 4-element 64-bit float vector.
func (o *ObjectWriter) FieldVector4Float64(tag Tag, v [4]float64) {
	writeVector(o.w, tag, TypeVector4Float64, 8, 4, func(i int) uint64 { return float64ToBits(v[i]) })
}

// writeVector writes a fixed-dimension vector field's header followed
// by dim raw width-byte elements (no length prefix: the dimension is
// fixed by the type marker itself).
func writeVector(w *Writer, tag Tag, typ Type, width int, dim int, get func(i int) uint64) {
	w.writeFieldHeader(tag, typ)
	for i := 0; i < dim; i++ {
		w.appendScalar(width, get(i))
	}
}

// --- dynamic array fields ---

// FieldStringArray opens a string array field and returns a cursor
// for adding elements. The caller must Finish the returned cursor
// before resuming writes on this object.
func (o *ObjectWriter) FieldStringArray(tag Tag) *StringArrayWriter {
	o.w.writeFieldHeader(tag, TypeStringArray)
	return &StringArrayWriter{w: o.w, sizeOffset: o.w.reserveSizePlaceholder()}
}

// FieldStringArraySlice writes a complete string array field in one
// call.
func (o *ObjectWriter) FieldStringArraySlice(tag Tag, data []string) {
	cursor := o.FieldStringArray(tag)
	for _, s := range data {
		cursor.AddElement(s)
	}
	cursor.Finish()
}

// FieldBinaryArray opens a binary array field and returns a cursor
// for adding elements.
func (o *ObjectWriter) FieldBinaryArray(tag Tag) *BinaryArrayWriter {
	o.w.writeFieldHeader(tag, TypeBinaryArray)
	return &BinaryArrayWriter{w: o.w, sizeOffset: o.w.reserveSizePlaceholder()}
}

// FieldBinaryArraySlice writes a complete binary array field in one
// call.
func (o *ObjectWriter) FieldBinaryArraySlice(tag Tag, data [][]byte) {
	cursor := o.FieldBinaryArray(tag)
	for _, d := range data {
		cursor.AddElement(d)
	}
	cursor.Finish()
}

// FieldObjectArray opens an object array field and returns a cursor
// whose [ObjectArrayWriter.CreateElement] method yields one child
// [ObjectWriter] per element. Each child must be finished before the
// next is created.
func (o *ObjectWriter) FieldObjectArray(tag Tag) *ObjectArrayWriter {
	o.w.writeFieldHeader(tag, TypeObjectArray)
	return &ObjectArrayWriter{w: o.w, sizeOffset: o.w.reserveSizePlaceholder()}
}
