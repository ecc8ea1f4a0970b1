package tbf

import "testing"

func TestTypeValid(t *testing.T) {
	cases := []struct {
		typ  Type
		want bool
	}{
		{TypeInt32, true},
		{TypeObject, true},
		{TypeInt32Array, true},
		{TypeObjectArray, true},
		{TypeVector3Float32, true},
		{TypeVector2Int8, true},
		{Type(classVector2 | baseString), false}, // vectors over dynamic bases are invalid
		{Type(classVector4 | baseObject), false},
		{TypeInvalid, false},
		{Type(0xF0), false}, // unassigned classification
	}
	for _, c := range cases {
		if got := c.typ.Valid(); got != c.want {
			t.Errorf("Type(0x%02X).Valid() = %v, want %v", byte(c.typ), got, c.want)
		}
	}
}

func TestTypeBaseWidth(t *testing.T) {
	cases := []struct {
		typ   Type
		width uint32
	}{
		{TypeInt8, 1}, {TypeBool, 1},
		{TypeInt16, 2}, {TypeFloat16, 2},
		{TypeInt32, 4}, {TypeFloat32, 4},
		{TypeInt64, 8}, {TypeFloat64, 8},
		{TypeUUID, 16},
		{TypeString, 0}, {TypeBinary, 0}, {TypeObject, 0},
	}
	for _, c := range cases {
		if got := c.typ.BaseWidth(); got != c.width {
			t.Errorf("%s.BaseWidth() = %d, want %d", c.typ, got, c.width)
		}
	}
}

func TestTypeClassificationHelpers(t *testing.T) {
	if !TypeInt32.IsPrimitive() {
		t.Error("TypeInt32 should be primitive")
	}
	if !TypeInt32Array.IsArray() {
		t.Error("TypeInt32Array should be an array")
	}
	if !TypeInt32Array.IsFixedArray() || TypeInt32Array.IsDynamicArray() {
		t.Error("TypeInt32Array should be a fixed array, not dynamic")
	}
	if !TypeStringArray.IsDynamicArray() || TypeStringArray.IsFixedArray() {
		t.Error("TypeStringArray should be dynamic, not fixed")
	}
	if !TypeVector3Float32.IsVector() || TypeVector3Float32.VectorDim() != 3 {
		t.Error("TypeVector3Float32 should be a 3-dimensional vector")
	}
}

func TestHashNameDerivation(t *testing.T) {
	// Same name always derives the same id; different names (almost
	// always) derive different ids.
	if HashName("health") != HashName("health") {
		t.Error("HashName must be deterministic")
	}
	if HashName("health") == HashName("mana") {
		t.Error("expected different names to hash differently in this case")
	}
}
