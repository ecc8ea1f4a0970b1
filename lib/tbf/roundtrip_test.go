package tbf

import (
	"testing"

	"github.com/google/uuid"
)

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()

	root.FieldInt8(MustTag("i8"), -12)
	root.FieldInt16(MustTag("i16"), -1234)
	root.FieldInt32(MustTag("i32"), -123456)
	root.FieldInt64(MustTag("i64"), -123456789012)
	root.FieldUInt8(MustTag("u8"), 200)
	root.FieldUInt16(MustTag("u16"), 60000)
	root.FieldUInt32(MustTag("u32"), 4000000000)
	root.FieldUInt64(MustTag("u64"), 18000000000000000000)
	root.FieldBool(MustTag("flag"), true)
	root.FieldFloat32(MustTag("f32"), 3.5)
	root.FieldFloat64(MustTag("f64"), -2.25)
	root.FieldFloat16Value(MustTag("f16"), 1.5)
	root.Finish()
	w.Finish()

	reader := NewReader(w.Bytes(), NameMode)
	if !reader.Valid() {
		t.Fatal("expected valid buffer")
	}
	obj := reader.RootObject()

	if v, ok := obj.ReadInt8(MustTag("i8")); !ok || v != -12 {
		t.Errorf("ReadInt8 = %v, %v, want -12, true", v, ok)
	}
	if v, ok := obj.ReadInt16(MustTag("i16")); !ok || v != -1234 {
		t.Errorf("ReadInt16 = %v, %v, want -1234, true", v, ok)
	}
	if v, ok := obj.ReadInt32(MustTag("i32")); !ok || v != -123456 {
		t.Errorf("ReadInt32 = %v, %v, want -123456, true", v, ok)
	}
	if v, ok := obj.ReadInt64(MustTag("i64")); !ok || v != -123456789012 {
		t.Errorf("ReadInt64 = %v, %v, want -123456789012, true", v, ok)
	}
	if v, ok := obj.ReadUInt8(MustTag("u8")); !ok || v != 200 {
		t.Errorf("ReadUInt8 = %v, %v, want 200, true", v, ok)
	}
	if v, ok := obj.ReadUInt16(MustTag("u16")); !ok || v != 60000 {
		t.Errorf("ReadUInt16 = %v, %v, want 60000, true", v, ok)
	}
	if v, ok := obj.ReadUInt32(MustTag("u32")); !ok || v != 4000000000 {
		t.Errorf("ReadUInt32 = %v, %v, want 4000000000, true", v, ok)
	}
	if v, ok := obj.ReadUInt64(MustTag("u64")); !ok || v != 18000000000000000000 {
		t.Errorf("ReadUInt64 = %v, %v, want 18000000000000000000, true", v, ok)
	}
	if v, ok := obj.ReadBool(MustTag("flag")); !ok || !v {
		t.Errorf("ReadBool = %v, %v, want true, true", v, ok)
	}
	if v, ok := obj.ReadFloat32(MustTag("f32")); !ok || v != 3.5 {
		t.Errorf("ReadFloat32 = %v, %v, want 3.5, true", v, ok)
	}
	if v, ok := obj.ReadFloat64(MustTag("f64")); !ok || v != -2.25 {
		t.Errorf("ReadFloat64 = %v, %v, want -2.25, true", v, ok)
	}
	if v, ok := obj.ReadFloat16Value(MustTag("f16")); !ok || v != 1.5 {
		t.Errorf("ReadFloat16Value = %v, %v, want 1.5, true", v, ok)
	}
}

func TestVariableLengthRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()

	id := uuid.New()
	root.FieldUUIDValue(MustTag("id"), id)
	root.FieldString(MustTag("name"), "hello, tbf")
	root.FieldBinary(MustTag("payload"), []byte{1, 2, 3, 4, 5})

	child := root.FieldObject(MustTag("nested"))
	child.FieldInt32(MustTag("depth"), 1)
	child.Finish()

	root.Finish()
	w.Finish()

	reader := NewReader(w.Bytes(), NameMode)
	obj := reader.RootObject()

	if v, ok := obj.ReadUUIDValue(MustTag("id")); !ok || v != id {
		t.Errorf("ReadUUIDValue = %v, %v, want %v, true", v, ok, id)
	}
	if v, ok := obj.ReadString(MustTag("name")); !ok || v != "hello, tbf" {
		t.Errorf("ReadString = %q, %v, want %q, true", v, ok, "hello, tbf")
	}
	if v, ok := obj.ReadBinary(MustTag("payload")); !ok || string(v) != "\x01\x02\x03\x04\x05" {
		t.Errorf("ReadBinary = %v, %v", v, ok)
	}

	nested, ok := obj.ReadObject(MustTag("nested"))
	if !ok {
		t.Fatal("expected nested object")
	}
	if v, ok := nested.ReadInt32(MustTag("depth")); !ok || v != 1 {
		t.Errorf("nested.ReadInt32 = %v, %v, want 1, true", v, ok)
	}
}

func TestFixedArrayRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()

	root.FieldArrayInt32(MustTag("ints"), []int32{1, -2, 3})
	root.FieldArrayFloat64(MustTag("floats"), []float64{1.5, -2.5})
	root.FieldArrayBool(MustTag("bools"), []bool{true, false, true})
	root.FieldArrayUUID(MustTag("ids"), [][16]byte{{1}, {2}})
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()

	ints := obj.ReadArrayInt32(MustTag("ints"))
	if len(ints) != 3 || ints[0] != 1 || ints[1] != -2 || ints[2] != 3 {
		t.Errorf("ReadArrayInt32 = %v", ints)
	}
	floats := obj.ReadArrayFloat64(MustTag("floats"))
	if len(floats) != 2 || floats[0] != 1.5 || floats[1] != -2.5 {
		t.Errorf("ReadArrayFloat64 = %v", floats)
	}
	bools := obj.ReadArrayBool(MustTag("bools"))
	if len(bools) != 3 || !bools[0] || bools[1] || !bools[2] {
		t.Errorf("ReadArrayBool = %v", bools)
	}
	ids := obj.ReadArrayUUID(MustTag("ids"))
	if len(ids) != 2 || ids[0][0] != 1 || ids[1][0] != 2 {
		t.Errorf("ReadArrayUUID = %v", ids)
	}
}

func TestEmptyArrayIsValid(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldArrayInt32(MustTag("empty"), nil)
	cursor := root.FieldStringArray(MustTag("emptyStrings"))
	cursor.Finish()
	root.Finish()
	w.Finish()

	reader := NewReader(w.Bytes(), NameMode)
	if !reader.Valid() {
		t.Fatal("expected empty arrays to be valid")
	}
	obj := reader.RootObject()

	if got := obj.ReadArrayInt32(MustTag("empty")); len(got) != 0 {
		t.Errorf("ReadArrayInt32 = %v, want empty", got)
	}
	arr, ok := obj.ReadStringArray(MustTag("emptyStrings"))
	if !ok || arr.Len() != 0 || !arr.Valid() {
		t.Errorf("ReadStringArray = %v, %v, len %d", arr, ok, arr.Len())
	}
}

func TestVectorRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldVector3Float32(MustTag("pos"), [3]float32{1, 2, 3})
	root.FieldVector2Int32(MustTag("coord"), [2]int32{-1, 5})
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()

	pos, ok := obj.ReadVector3Float32(MustTag("pos"))
	if !ok || pos != [3]float32{1, 2, 3} {
		t.Errorf("ReadVector3Float32 = %v, %v", pos, ok)
	}
	coord, ok := obj.ReadVector2Int32(MustTag("coord"))
	if !ok || coord != [2]int32{-1, 5} {
		t.Errorf("ReadVector2Int32 = %v, %v", coord, ok)
	}
}

func TestStringArrayRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldStringArraySlice(MustTag("names"), []string{"alpha", "beta", "gamma"})
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()
	arr, ok := obj.ReadStringArray(MustTag("names"))
	if !ok {
		t.Fatal("expected string array")
	}
	if arr.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", arr.Len())
	}
	want := []string{"alpha", "beta", "gamma"}
	for i, name := range want {
		got, ok := arr.At(i)
		if !ok || got != name {
			t.Errorf("At(%d) = %q, %v, want %q, true", i, got, ok, name)
		}
	}
}

func TestBinaryArrayRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldBinaryArraySlice(MustTag("chunks"), [][]byte{{1, 2}, {}, {3}})
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()
	arr, ok := obj.ReadBinaryArray(MustTag("chunks"))
	if !ok || arr.Len() != 3 {
		t.Fatalf("ReadBinaryArray ok=%v len=%d", ok, arr.Len())
	}
	if b, ok := arr.At(0); !ok || string(b) != "\x01\x02" {
		t.Errorf("At(0) = %v, %v", b, ok)
	}
	if b, ok := arr.At(1); !ok || len(b) != 0 {
		t.Errorf("At(1) = %v, %v, want empty", b, ok)
	}
}

func TestObjectArrayRoundTrip(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()

	arrayCursor := root.FieldObjectArray(MustTag("items"))
	for i := 0; i < 3; i++ {
		elem := arrayCursor.CreateElement()
		elem.FieldInt32(MustTag("index"), int32(i))
		elem.Finish()
	}
	arrayCursor.Finish()
	root.Finish()
	w.Finish()

	reader := NewReader(w.Bytes(), NameMode)
	if !reader.Valid() {
		t.Fatal("expected valid buffer")
	}
	arr, ok := reader.RootObject().ReadObjectArray(MustTag("items"))
	if !ok || arr.Len() != 3 {
		t.Fatalf("ReadObjectArray ok=%v len=%d", ok, arr.Len())
	}
	for i := 0; i < 3; i++ {
		elem, ok := arr.At(i)
		if !ok {
			t.Fatalf("At(%d) missing", i)
		}
		if v, ok := elem.ReadInt32(MustTag("index")); !ok || v != int32(i) {
			t.Errorf("element %d index = %v, %v, want %d, true", i, v, ok, i)
		}
	}
}

func TestIDModeRoundTrip(t *testing.T) {
	w := NewWriter(IDMode)
	root := w.RootObject()
	root.FieldInt32(IDOnlyTag(7), 42)
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), IDMode).RootObject()
	if v, ok := obj.ReadInt32(IDOnlyTag(7)); !ok || v != 42 {
		t.Errorf("ReadInt32 = %v, %v, want 42, true", v, ok)
	}
	if obj.Contains(IDOnlyTag(8)) {
		t.Error("expected tag 8 to be absent")
	}
}

func TestTypeMismatchReturnsFalse(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldInt32(MustTag("value"), 5)
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()
	if _, ok := obj.ReadString(MustTag("value")); ok {
		t.Error("expected type mismatch to report ok=false")
	}
}

func TestMissingTagReturnsFalse(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldInt32(MustTag("value"), 5)
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()
	if _, ok := obj.ReadInt32(MustTag("missing")); ok {
		t.Error("expected missing tag to report ok=false")
	}
}

func TestDuplicateTagFirstWins(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldInt32(MustTag("value"), 1)
	root.FieldInt32(MustTag("value"), 2)
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()
	if v, ok := obj.ReadInt32(MustTag("value")); !ok || v != 1 {
		t.Errorf("ReadInt32 = %v, %v, want 1, true (first write wins)", v, ok)
	}
}

func TestTruncatedBufferIsInvalidNeverPanics(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldString(MustTag("text"), "a reasonably long string value")
	root.Finish()
	w.Finish()

	full := w.Bytes()
	for n := 0; n <= len(full); n++ {
		reader := NewReader(full[:n], NameMode)
		valid := reader.Valid() // must not panic regardless of truncation point
		if n < len(full) && valid {
			t.Errorf("NewReader(full[:%d]).Valid() = true, want false", n)
		}
	}
}

func TestOutOfBoundsSizeIsInvalid(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldString(MustTag("text"), "a reasonably long string value")
	root.Finish()
	w.Finish()

	full := w.Bytes()

	// S6: flip the declared root size to 0xFFFFFFFF.
	oversized := append([]byte(nil), full...)
	oversized[0], oversized[1], oversized[2], oversized[3] = 0xFF, 0xFF, 0xFF, 0xFF
	if NewReader(oversized, NameMode).Valid() {
		t.Error("expected Valid() == false when the declared size exceeds the buffer")
	}

	// Truncate well below the declared size, not just by a byte or two.
	truncated := full[:len(full)/2]
	if NewReader(truncated, NameMode).Valid() {
		t.Error("expected Valid() == false for a buffer truncated below its declared size")
	}

	if NewReader(nil, NameMode).Valid() {
		t.Error("expected Valid() == false for an empty buffer")
	}
}

func TestAllTagsPreservesWriteOrder(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldInt32(MustTag("first"), 1)
	root.FieldInt32(MustTag("second"), 2)
	root.FieldInt32(MustTag("third"), 3)
	root.Finish()
	w.Finish()

	obj := NewReader(w.Bytes(), NameMode).RootObject()
	tags := obj.AllTags()
	if len(tags) != 3 {
		t.Fatalf("AllTags() = %v, want 3 entries", tags)
	}
	want := []string{"first", "second", "third"}
	for i, name := range want {
		if tags[i].Name() != name {
			t.Errorf("tags[%d] = %q, want %q", i, tags[i].Name(), name)
		}
	}
}

func TestFinishIsIdempotent(t *testing.T) {
	w := NewWriter(NameMode)
	root := w.RootObject()
	root.FieldInt32(MustTag("value"), 1)
	root.Finish()
	sizeAfterFirstFinish := w.Size()
	root.Finish()
	if w.Size() != sizeAfterFirstFinish {
		t.Errorf("second Finish changed buffer size: %d -> %d", sizeAfterFirstFinish, w.Size())
	}
}
