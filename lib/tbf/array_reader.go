package tbf

// This file implements the reader side of spec §4.7's dynamic arrays:
// String, Binary, and Object arrays, whose elements are themselves
// variable-length and so cannot be addressed by a flat stride the way
// array_fixed.go's fixed-width arrays are. Each type here lazily
// scans its element stream exactly once, on first use, the same way
// [ObjectReader] lazily indexes field tags.

// dynamicArrayIndex holds the byte offset of each element's length
// prefix within the array's element stream, built by a single forward
// scan. It is shared by the three dynamic array reader types below.
type dynamicArrayIndex struct {
	elements  []byte
	lenWidth  int // 2 for String, 4 for Binary/Object
	built     bool
	valid     bool
	offsets   []int
}

func (d *dynamicArrayIndex) ensureBuilt() {
	if d.built {
		return
	}
	d.built = true
	cursor := 0
	for cursor < len(d.elements) {
		if cursor+d.lenWidth > len(d.elements) {
			return
		}
		length := int(getScalar(d.elements[cursor:cursor+d.lenWidth], d.lenWidth))
		start := cursor
		next := cursor + d.lenWidth + length
		if next > len(d.elements) || next < cursor {
			return
		}
		d.offsets = append(d.offsets, start)
		cursor = next
	}
	d.valid = cursor == len(d.elements)
}

func (d *dynamicArrayIndex) len() int {
	d.ensureBuilt()
	return len(d.offsets)
}

func (d *dynamicArrayIndex) isValid() bool {
	d.ensureBuilt()
	return d.valid
}

// elementBytes returns the element at index i, without its length
// prefix, or false if i is out of range.
func (d *dynamicArrayIndex) elementBytes(i int) ([]byte, bool) {
	d.ensureBuilt()
	if i < 0 || i >= len(d.offsets) {
		return nil, false
	}
	start := d.offsets[i]
	length := int(getScalar(d.elements[start:start+d.lenWidth], d.lenWidth))
	return d.elements[start+d.lenWidth : start+d.lenWidth+length], true
}

func newDynamicArrayIndex(entry cacheEntry, payload []byte, lenWidth int) *dynamicArrayIndex {
	total := int(getScalar(payload[entry.offset:entry.offset+4], 4))
	start := entry.offset + 4
	return &dynamicArrayIndex{elements: payload[start : start+total], lenWidth: lenWidth}
}

// StringArrayReader iterates the elements of a string array field,
// obtained from [ObjectReader.ReadStringArray].
type StringArrayReader struct {
	idx *dynamicArrayIndex
}

// Len returns the number of elements. Forces indexing if it has not
// run yet.
func (a *StringArrayReader) Len() int { return a.idx.len() }

// Valid reports whether every element parsed cleanly and the stream's
// cursor landed exactly on its end.
func (a *StringArrayReader) Valid() bool { return a.idx.isValid() }

// At returns the element at index i.
func (a *StringArrayReader) At(i int) (string, bool) {
	b, ok := a.idx.elementBytes(i)
	if !ok {
		return "", false
	}
	return string(b), true
}

// ForEach calls fn once per element, in order, stopping early if fn
// returns false.
func (a *StringArrayReader) ForEach(fn func(i int, s string) bool) {
	for i := 0; i < a.Len(); i++ {
		s, ok := a.At(i)
		if !ok || !fn(i, s) {
			return
		}
	}
}

// BinaryArrayReader iterates the elements of a binary array field,
// obtained from [ObjectReader.ReadBinaryArray].
type BinaryArrayReader struct {
	idx *dynamicArrayIndex
}

// Len returns the number of elements.
func (a *BinaryArrayReader) Len() int { return a.idx.len() }

// Valid reports whether every element parsed cleanly.
func (a *BinaryArrayReader) Valid() bool { return a.idx.isValid() }

// At returns the element at index i. The slice aliases the Reader's
// underlying buffer.
func (a *BinaryArrayReader) At(i int) ([]byte, bool) {
	return a.idx.elementBytes(i)
}

// ForEach calls fn once per element, in order, stopping early if fn
// returns false.
func (a *BinaryArrayReader) ForEach(fn func(i int, data []byte) bool) {
	for i := 0; i < a.Len(); i++ {
		b, ok := a.At(i)
		if !ok || !fn(i, b) {
			return
		}
	}
}

// ObjectArrayReader iterates the elements of an object array field,
// obtained from [ObjectReader.ReadObjectArray].
type ObjectArrayReader struct {
	idx  *dynamicArrayIndex
	mode Mode
}

// Len returns the number of elements.
func (a *ObjectArrayReader) Len() int { return a.idx.len() }

// Valid reports whether every element parsed cleanly.
func (a *ObjectArrayReader) Valid() bool { return a.idx.isValid() }

// At returns an [ObjectReader] over the element at index i. The child
// shares the array's mode and indexes its own payload lazily.
func (a *ObjectArrayReader) At(i int) (*ObjectReader, bool) {
	b, ok := a.idx.elementBytes(i)
	if !ok {
		return nil, false
	}
	return newObjectReader(b, a.mode), true
}

// ForEach calls fn once per element, in order, stopping early if fn
// returns false.
func (a *ObjectArrayReader) ForEach(fn func(i int, obj *ObjectReader) bool) {
	for i := 0; i < a.Len(); i++ {
		o, ok := a.At(i)
		if !ok || !fn(i, o) {
			return
		}
	}
}

// ReadStringArray returns an iterator over the string array stored
// under tag.
func (o *ObjectReader) ReadStringArray(tag Tag) (*StringArrayReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeStringArray {
		return nil, false
	}
	return &StringArrayReader{idx: newDynamicArrayIndex(entry, o.payload, 2)}, true
}

// ReadBinaryArray returns an iterator over the binary array stored
// under tag.
func (o *ObjectReader) ReadBinaryArray(tag Tag) (*BinaryArrayReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeBinaryArray {
		return nil, false
	}
	return &BinaryArrayReader{idx: newDynamicArrayIndex(entry, o.payload, 4)}, true
}

// ReadObjectArray returns an iterator over the object array stored
// under tag.
func (o *ObjectReader) ReadObjectArray(tag Tag) (*ObjectArrayReader, bool) {
	entry, ok := o.find(tag)
	if !ok || entry.typ != TypeObjectArray {
		return nil, false
	}
	return &ObjectArrayReader{idx: newDynamicArrayIndex(entry, o.payload, 4), mode: o.mode}, true
}
