package tbf

import (
	"github.com/google/uuid"
	"github.com/x448/float16"
)

// initialCacheSize is a hint for the lazily-built tag map's starting
// size, matching the C++ reference's INITIAL_CACHE_SIZE.
const initialCacheSize = 100

// cacheEntry is this package's tagged-sum realization of the C++
// reference's union CacheValue (spec §9): one field records the
// observed type, one holds either an inlined scalar bit pattern or an
// offset into the object's payload for everything else.
type cacheEntry struct {
	typ    Type
	scalar uint64 // inlined fixed-width scalar, as its raw bit pattern
	offset int    // payload offset: start of a length prefix (String/Binary/Object/any array), or start of the first raw byte (UUID, vectors)
}

// ObjectReader parses one object's field payload and indexes it by
// tag on first use. Obtain the root from [Reader.RootObject]; nested
// objects are obtained from [ObjectReader.ReadObject] and elements of
// an object array from [ObjectArrayReader.At]/[ObjectArrayReader.ForEach].
//
// An ObjectReader is not safe to index concurrently from two
// goroutines on the same instance — see spec §5 ("Concurrency &
// Resource Model"). Once [ObjectReader.Valid] (or any Read method)
// has been called once, further calls from any number of goroutines
// are safe, since indexing no longer mutates anything.
type ObjectReader struct {
	payload    []byte
	mode       Mode
	cacheBuilt bool
	valid      bool
	nameCache  map[string]cacheEntry
	idCache    map[uint16]cacheEntry
	order      []Tag // insertion order, for AllTags
}

func newObjectReader(payload []byte, mode Mode) *ObjectReader {
	return &ObjectReader{payload: payload, mode: mode}
}

// newInvalidObjectReader returns an ObjectReader that is permanently
// invalid, with indexing pre-marked as already done. Used when the
// buffer's declared size does not fit: there is no payload to scan,
// and an empty payload would otherwise vacuously index as valid.
func newInvalidObjectReader(mode Mode) *ObjectReader {
	return &ObjectReader{mode: mode, cacheBuilt: true, valid: false}
}

// Valid reports whether this object's payload parsed cleanly: every
// field consumed exactly the bytes its type and lengths dictate, and
// the cursor landed exactly on the payload's end. Forces indexing if
// it has not run yet.
func (o *ObjectReader) Valid() bool {
	o.ensureIndexed()
	return o.valid
}

// Contains reports whether tag is present in this object, regardless
// of its type.
func (o *ObjectReader) Contains(tag Tag) bool {
	_, ok := o.find(tag)
	return ok
}

// TypeOf returns the wire type stored under tag, if present.
func (o *ObjectReader) TypeOf(tag Tag) (Type, bool) {
	entry, ok := o.find(tag)
	if !ok {
		return TypeInvalid, false
	}
	return entry.typ, true
}

// AllTags returns every identifier observed while indexing this
// object, in writer order. The order is stable across calls but is
// not part of the wire contract.
func (o *ObjectReader) AllTags() []Tag {
	o.ensureIndexed()
	out := make([]Tag, len(o.order))
	copy(out, o.order)
	return out
}

func (o *ObjectReader) find(tag Tag) (cacheEntry, bool) {
	o.ensureIndexed()
	if !o.valid {
		return cacheEntry{}, false
	}
	switch o.mode {
	case NameMode:
		entry, ok := o.nameCache[tag.Name()]
		return entry, ok
	default:
		entry, ok := o.idCache[tag.ID()]
		return entry, ok
	}
}

func (o *ObjectReader) ensureIndexed() {
	if o.cacheBuilt {
		return
	}
	o.cacheBuilt = true
	o.index()
}

// index performs the lazy scan described in spec §4.6: walk the
// payload field by field, validating and caching each one, stopping
// (and marking the object invalid) on the first inconsistency or on
// reaching the payload end with the cursor anywhere but exactly at
// the boundary.
func (o *ObjectReader) index() {
	if o.mode == NameMode {
		o.nameCache = make(map[string]cacheEntry, initialCacheSize)
	} else {
		o.idCache = make(map[uint16]cacheEntry, initialCacheSize)
	}

	buf := o.payload
	cursor := 0
	for cursor < len(buf) {
		typ := Type(buf[cursor])
		cursor++
		if !typ.Valid() {
			return
		}

		var name string
		var id uint16
		switch o.mode {
		case NameMode:
			if cursor >= len(buf) {
				return
			}
			nameLen := int(buf[cursor])
			cursor++
			if nameLen == 0 || cursor+nameLen > len(buf) {
				return
			}
			name = string(buf[cursor : cursor+nameLen])
			cursor += nameLen
		default:
			if cursor+2 > len(buf) {
				return
			}
			id = uint16(getScalar(buf[cursor:cursor+2], 2))
			cursor += 2
			if id == 0 {
				return
			}
		}

		entry, newCursor, ok := decodeField(buf, cursor, typ)
		if !ok {
			return
		}
		cursor = newCursor

		if o.mode == NameMode {
			if _, dup := o.nameCache[name]; !dup {
				o.nameCache[name] = entry
				o.order = append(o.order, Tag{name: name, id: HashName(name)})
			}
		} else {
			if _, dup := o.idCache[id]; !dup {
				o.idCache[id] = entry
				o.order = append(o.order, Tag{id: id})
			}
		}
	}

	o.valid = cursor == len(buf)
}

// decodeField decodes one field's payload starting at cursor (just
// past the type byte and identifier), returning the cache entry to
// store and the cursor position immediately after the payload. ok is
// false on truncation, a malformed length, or any other structural
// problem.
func decodeField(buf []byte, cursor int, typ Type) (entry cacheEntry, next int, ok bool) {
	entry.typ = typ

	switch {
	case typ.IsPrimitive() && typ.Base() != baseUUID && typ.Base() != baseString && typ.Base() != baseBinary && typ.Base() != baseObject:
		width := int(typ.BaseWidth())
		if cursor+width > len(buf) {
			return entry, 0, false
		}
		entry.scalar = getScalar(buf[cursor:cursor+width], width)
		return entry, cursor + width, true

	case typ == TypeUUID:
		if cursor+16 > len(buf) {
			return entry, 0, false
		}
		entry.offset = cursor
		return entry, cursor + 16, true

	case typ == TypeString:
		if cursor+2 > len(buf) {
			return entry, 0, false
		}
		length := int(getScalar(buf[cursor:cursor+2], 2))
		total := cursor + 2 + length
		if total > len(buf) {
			return entry, 0, false
		}
		entry.offset = cursor
		return entry, total, true

	case typ == TypeBinary || typ == TypeObject:
		if cursor+4 > len(buf) {
			return entry, 0, false
		}
		length := int(getScalar(buf[cursor:cursor+4], 4))
		total := cursor + 4 + length
		if total > len(buf) || total < cursor {
			return entry, 0, false
		}
		entry.offset = cursor
		return entry, total, true

	case typ.IsVector():
		width := int(typ.BaseWidth())
		dim := int(typ.VectorDim())
		size := width * dim
		if cursor+size > len(buf) {
			return entry, 0, false
		}
		entry.offset = cursor
		return entry, cursor + size, true

	case typ.IsArray():
		if cursor+4 > len(buf) {
			return entry, 0, false
		}
		totalBytes := int(getScalar(buf[cursor:cursor+4], 4))
		total := cursor + 4 + totalBytes
		if total > len(buf) || total < cursor {
			return entry, 0, false
		}
		if typ.IsFixedArray() {
			width := int(typ.BaseWidth())
			if width > 0 && totalBytes%width != 0 {
				return entry, 0, false
			}
		}
		entry.offset = cursor
		return entry, total, true

	default:
		return entry, 0, false
	}
}

// --- fixed-width scalar getters ---

func readScalar(o *ObjectReader, tag Tag, typ Type) (uint64, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != typ {
		return 0, false
	}
	return entry.scalar, true
}

// ReadInt8 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldInt8].
func (o *ObjectReader) ReadInt8(tag Tag) (int8, bool) {
	v, ok := readScalar(o, tag, TypeInt8)
	return int8(uint8(v)), ok
}

// ReadInt16 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldInt16].
func (o *ObjectReader) ReadInt16(tag Tag) (int16, bool) {
	v, ok := readScalar(o, tag, TypeInt16)
	return int16(uint16(v)), ok
}

// ReadInt32 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldInt32].
func (o *ObjectReader) ReadInt32(tag Tag) (int32, bool) {
	v, ok := readScalar(o, tag, TypeInt32)
	return int32(uint32(v)), ok
}

// ReadInt64 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldInt64].
func (o *ObjectReader) ReadInt64(tag Tag) (int64, bool) {
	v, ok := readScalar(o, tag, TypeInt64)
	return int64(v), ok
}

// ReadUInt8 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldUInt8].
func (o *ObjectReader) ReadUInt8(tag Tag) (uint8, bool) {
	v, ok := readScalar(o, tag, TypeUInt8)
	return uint8(v), ok
}

// ReadUInt16 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldUInt16].
func (o *ObjectReader) ReadUInt16(tag Tag) (uint16, bool) {
	v, ok := readScalar(o, tag, TypeUInt16)
	return uint16(v), ok
}

// ReadUInt32 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldUInt32].
func (o *ObjectReader) ReadUInt32(tag Tag) (uint32, bool) {
	v, ok := readScalar(o, tag, TypeUInt32)
	return uint32(v), ok
}

// ReadUInt64 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldUInt64].
func (o *ObjectReader) ReadUInt64(tag Tag) (uint64, bool) {
	return readScalar(o, tag, TypeUInt64)
}

// ReadBool returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldBool].
func (o *ObjectReader) ReadBool(tag Tag) (bool, bool) {
	v, ok := readScalar(o, tag, TypeBool)
	return v != 0, ok
}

// ReadFloat16 returns the raw IEEE 754 half-precision bit pattern
// stored under tag. Use [ObjectReader.ReadFloat16Value] to decode
// straight to a float32.
func (o *ObjectReader) ReadFloat16(tag Tag) (uint16, bool) {
	v, ok := readScalar(o, tag, TypeFloat16)
	return uint16(v), ok
}

// ReadFloat16Value decodes the float16 field stored under tag to a
// float32 via [github.com/x448/float16].
func (o *ObjectReader) ReadFloat16Value(tag Tag) (float32, bool) {
	bits, ok := o.ReadFloat16(tag)
	if !ok {
		return 0, false
	}
	return float16.Float16(bits).Float32(), true
}

// ReadFloat32 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldFloat32].
func (o *ObjectReader) ReadFloat32(tag Tag) (float32, bool) {
	v, ok := readScalar(o, tag, TypeFloat32)
	return float32FromBits(uint32(v)), ok
}

// ReadFloat64 returns the value stored under tag if it is present and
// was written with [ObjectWriter.FieldFloat64].
func (o *ObjectReader) ReadFloat64(tag Tag) (float64, bool) {
	v, ok := readScalar(o, tag, TypeFloat64)
	return float64FromBits(v), ok
}

// --- variable-length scalar getters ---

// ReadUUID returns the raw 16 bytes stored under tag.
func (o *ObjectReader) ReadUUID(tag Tag) ([16]byte, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeUUID {
		return [16]byte{}, false
	}
	var out [16]byte
	copy(out[:], o.payload[entry.offset:entry.offset+16])
	return out, true
}

// ReadUUIDValue returns the UUID stored under tag as a
// [github.com/google/uuid.UUID].
func (o *ObjectReader) ReadUUIDValue(tag Tag) (uuid.UUID, bool) {
	raw, ok := o.ReadUUID(tag)
	if !ok {
		return uuid.UUID{}, false
	}
	return uuid.UUID(raw), true
}

// ReadString returns the string stored under tag. The returned string
// is a copy of the buffer's bytes and stays valid after the buffer is
// released or modified.
func (o *ObjectReader) ReadString(tag Tag) (string, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeString {
		return "", false
	}
	length := int(getScalar(o.payload[entry.offset:entry.offset+2], 2))
	start := entry.offset + 2
	return string(o.payload[start : start+length]), true
}

// ReadBinary returns the byte slice stored under tag. The returned
// slice aliases the Reader's underlying buffer.
func (o *ObjectReader) ReadBinary(tag Tag) ([]byte, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeBinary {
		return nil, false
	}
	length := int(getScalar(o.payload[entry.offset:entry.offset+4], 4))
	start := entry.offset + 4
	return o.payload[start : start+length], true
}

// ReadObject returns a new [ObjectReader] over the object stored
// under tag. The child shares the parent's mode and indexes its own
// payload lazily on first use.
func (o *ObjectReader) ReadObject(tag Tag) (*ObjectReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeObject {
		return nil, false
	}
	length := int(getScalar(o.payload[entry.offset:entry.offset+4], 4))
	start := entry.offset + 4
	return newObjectReader(o.payload[start:start+length], o.mode), true
}
