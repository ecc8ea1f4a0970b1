// Package tbf implements the Tagged Binary Format (TBF): a
// self-describing binary serialization format for buffers built once
// and read many times.
//
// A buffer is a single root object: a byte stream of fields, each
// consisting of a one-byte type marker, an identifier (either a short
// UTF-8 name or a 16-bit id, depending on the buffer's [Mode]), and a
// payload whose shape is determined by the marker. Fields nest: an
// object field's payload is itself a stream of fields; object, string,
// and binary arrays hold length-prefixed elements.
//
// # Writing
//
// A [Writer] owns a growable byte buffer and a root [ObjectWriter].
// Each typed Field method on [ObjectWriter] appends a header and
// payload; [ObjectWriter.FieldObject] and the three array field
// methods that return a cursor (FieldStringArray, FieldBinaryArray,
// FieldObjectArray) reserve a size placeholder that is back-patched
// when the returned cursor's Finish method runs:
//
//	w := tbf.NewWriter(tbf.NameMode)
//	root := w.RootObject()
//	root.FieldInt32(tbf.MustTag("id"), 7)
//	root.FieldString(tbf.MustTag("name"), "ada")
//	w.Finish()
//	buf := w.Bytes()
//
// # Reading
//
// A [Reader] wraps a byte slice and, on first use, lazily indexes the
// root object's fields into a tag-to-entry map. Typed Read methods on
// [ObjectReader] return a zero value and false on any mismatch
// (wrong type, missing tag, or a buffer that failed to parse) rather
// than an error — see the package-level error handling note below.
//
//	r := tbf.NewReader(buf, tbf.NameMode)
//	root := r.RootObject()
//	id, ok := root.ReadInt32(tbf.MustTag("id"))
//	name, ok := root.ReadString(tbf.MustTag("name"))
//
// # Error handling
//
// Decoding never panics and never returns an error value from the
// read path: a malformed buffer, a type mismatch, or a missing field
// all surface the same way, as a false second return value (or, for
// [ObjectReader.ReadObject] and the array reader constructors, a
// false/empty result). [ObjectReader.Valid] reports whether the
// object's fields parsed cleanly and the cursor landed exactly on the
// payload boundary; once an object is invalid, every subsequent read
// against it returns "missing". Writer-side tag construction is the
// one fallible entry point exposed as a Go error: [NewTag] and
// [NewIDTag] validate their inputs and return an error for an
// out-of-alphabet or oversized name. [MustTag] panics on the same
// conditions, for the common case of a compile-time-constant literal.
//
// # Endianness
//
// All multi-byte integers, floats, array/vector elements, and length
// prefixes are little-endian on the wire. [Writer] encodes and
// [ObjectReader] decodes every such value through
// [encoding/binary.LittleEndian] directly against the wire bytes, so
// the same buffer decodes identically regardless of host byte order;
// the buffer itself is never rewritten in place. UUID bytes, boolean bytes, and
// string/binary payload bytes are never swapped.
package tbf
