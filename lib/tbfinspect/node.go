package tbfinspect

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/electrodiux/tbf/lib/tagdict"
	"github.com/electrodiux/tbf/lib/tbf"
)

// Node is one field of a dumped object, suitable for both the
// indented-text printer and JSON encoding.
type Node struct {
	Tag      string      `json:"tag"`
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Children []Node      `json:"children,omitempty"`
}

// TagLabel returns the display label for tag: its name if it has one,
// otherwise the dictionary's name for its id if dict has an entry,
// otherwise [tbf.Tag.String].
func TagLabel(tag tbf.Tag, dict *tagdict.Dict) string {
	if tag.HasName() {
		return tag.Name()
	}
	if name := dict.Name(tag.ID()); name != "" {
		return name
	}
	return tag.String()
}

// Dump reads every field of o, in writer order, and formats it into a
// tree of [Node]s. An object whose Valid reports false dumps no
// fields: every lookup on it reports the tag as missing.
func Dump(o *tbf.ObjectReader, dict *tagdict.Dict) []Node {
	tags := o.AllTags()
	nodes := make([]Node, 0, len(tags))

	for _, tag := range tags {
		typ, ok := o.TypeOf(tag)
		if !ok {
			continue
		}
		label := TagLabel(tag, dict)

		switch {
		case typ == tbf.TypeObject:
			child, ok := o.ReadObject(tag)
			if !ok {
				continue
			}
			nodes = append(nodes, Node{Tag: label, Type: typ.String(), Children: Dump(child, dict)})

		case typ == tbf.TypeObjectArray:
			arr, ok := o.ReadObjectArray(tag)
			if !ok {
				continue
			}
			children := make([]Node, 0, arr.Len())
			arr.ForEach(func(i int, elem *tbf.ObjectReader) bool {
				children = append(children, Node{
					Tag:      fmt.Sprintf("[%d]", i),
					Type:     tbf.TypeObject.String(),
					Children: Dump(elem, dict),
				})
				return true
			})
			nodes = append(nodes, Node{Tag: label, Type: typ.String(), Children: children})

		default:
			nodes = append(nodes, Node{Tag: label, Type: typ.String(), Value: formatScalarOrArray(o, tag, typ)})
		}
	}

	return nodes
}

// formatScalarOrArray formats every field type that isn't an
// object/object-array: scalars, fixed/dynamic arrays, and the int32,
// float32, and float64 vectors. Vectors over any other base render
// as an "<unhandled type ...>" string.
func formatScalarOrArray(o *tbf.ObjectReader, tag tbf.Tag, typ tbf.Type) interface{} {
	switch typ {
	case tbf.TypeInt8:
		v, _ := o.ReadInt8(tag)
		return v
	case tbf.TypeInt16:
		v, _ := o.ReadInt16(tag)
		return v
	case tbf.TypeInt32:
		v, _ := o.ReadInt32(tag)
		return v
	case tbf.TypeInt64:
		v, _ := o.ReadInt64(tag)
		return v
	case tbf.TypeUInt8:
		v, _ := o.ReadUInt8(tag)
		return v
	case tbf.TypeUInt16:
		v, _ := o.ReadUInt16(tag)
		return v
	case tbf.TypeUInt32:
		v, _ := o.ReadUInt32(tag)
		return v
	case tbf.TypeUInt64:
		v, _ := o.ReadUInt64(tag)
		return v
	case tbf.TypeBool:
		v, _ := o.ReadBool(tag)
		return v
	case tbf.TypeFloat16:
		v, _ := o.ReadFloat16Value(tag)
		return v
	case tbf.TypeFloat32:
		v, _ := o.ReadFloat32(tag)
		return v
	case tbf.TypeFloat64:
		v, _ := o.ReadFloat64(tag)
		return v
	case tbf.TypeUUID:
		v, _ := o.ReadUUIDValue(tag)
		return v.String()
	case tbf.TypeString:
		v, _ := o.ReadString(tag)
		return v
	case tbf.TypeBinary:
		v, _ := o.ReadBinary(tag)
		return fmt.Sprintf("%d bytes: %x", len(v), v)

	case tbf.TypeStringArray:
		arr, _ := o.ReadStringArray(tag)
		out := make([]string, 0, arr.Len())
		arr.ForEach(func(_ int, s string) bool { out = append(out, s); return true })
		return out
	case tbf.TypeBinaryArray:
		arr, _ := o.ReadBinaryArray(tag)
		out := make([]string, 0, arr.Len())
		arr.ForEach(func(_ int, data []byte) bool { out = append(out, fmt.Sprintf("%x", data)); return true })
		return out

	case tbf.TypeUUIDArray:
		ids := o.ReadArrayUUID(tag)
		out := make([]string, len(ids))
		for i, id := range ids {
			out[i] = uuid.UUID(id).String()
		}
		return out

	case tbf.TypeVector2Int32:
		v, _ := o.ReadVector2Int32(tag)
		return v
	case tbf.TypeVector3Int32:
		v, _ := o.ReadVector3Int32(tag)
		return v
	case tbf.TypeVector4Int32:
		v, _ := o.ReadVector4Int32(tag)
		return v
	case tbf.TypeVector2Float32:
		v, _ := o.ReadVector2Float32(tag)
		return v
	case tbf.TypeVector3Float32:
		v, _ := o.ReadVector3Float32(tag)
		return v
	case tbf.TypeVector4Float32:
		v, _ := o.ReadVector4Float32(tag)
		return v
	case tbf.TypeVector2Float64:
		v, _ := o.ReadVector2Float64(tag)
		return v
	case tbf.TypeVector3Float64:
		v, _ := o.ReadVector3Float64(tag)
		return v
	case tbf.TypeVector4Float64:
		v, _ := o.ReadVector4Float64(tag)
		return v

	default:
		return formatFixedArray(o, tag, typ)
	}
}

func formatFixedArray(o *tbf.ObjectReader, tag tbf.Tag, typ tbf.Type) interface{} {
	switch typ {
	case tbf.TypeInt8Array:
		return o.ReadArrayInt8(tag)
	case tbf.TypeInt16Array:
		return o.ReadArrayInt16(tag)
	case tbf.TypeInt32Array:
		return o.ReadArrayInt32(tag)
	case tbf.TypeInt64Array:
		return o.ReadArrayInt64(tag)
	case tbf.TypeUInt8Array:
		return o.ReadArrayUInt8(tag)
	case tbf.TypeUInt16Array:
		return o.ReadArrayUInt16(tag)
	case tbf.TypeUInt32Array:
		return o.ReadArrayUInt32(tag)
	case tbf.TypeUInt64Array:
		return o.ReadArrayUInt64(tag)
	case tbf.TypeBoolArray:
		return o.ReadArrayBool(tag)
	case tbf.TypeFloat16Array:
		return o.ReadArrayFloat16(tag)
	case tbf.TypeFloat32Array:
		return o.ReadArrayFloat32(tag)
	case tbf.TypeFloat64Array:
		return o.ReadArrayFloat64(tag)
	default:
		return fmt.Sprintf("<unhandled type %s>", typ)
	}
}
