package tbf

// Buffer growth bounds (spec §4.4): a floor of 1 KiB and a default of
// 1 MiB, matching the C++ reference's MIN_BUFFER_GROW_SIZE /
// DEFAULT_BUFFER_GROW_SIZE.
const (
	minBufferGrowSize     = 1024
	defaultBufferGrowSize = 1024 * 1024
)

// Writer assembles a TBF buffer. Create one with [NewWriter], append
// fields through [Writer.RootObject], then call [Writer.Finish] and
// read the result with [Writer.Bytes].
//
// A Writer is not safe for concurrent use; at most one cursor (the
// innermost currently open [ObjectWriter] or array writer) may append
// to it at a time.
type Writer struct {
	buf       []byte
	growSize  uint32
	mode      Mode
	root      *ObjectWriter
	finished  bool
}

// NewWriter creates a Writer for a new buffer in the given [Mode].
// growChunk overrides the default 1 MiB growth chunk; values below
// the 1 KiB floor are raised to it. At most one growChunk argument is
// accepted; NewWriter panics if more are given.
func NewWriter(mode Mode, growChunk ...uint32) *Writer {
	if len(growChunk) > 1 {
		panic("tbf: NewWriter accepts at most one growChunk argument")
	}
	grow := uint32(defaultBufferGrowSize)
	if len(growChunk) == 1 {
		grow = growChunk[0]
	}
	if grow < minBufferGrowSize {
		grow = minBufferGrowSize
	}

	w := &Writer{
		mode:     mode,
		growSize: grow,
	}
	w.root = newObjectWriter(w)
	return w
}

// Mode returns the identifier encoding mode this Writer was created
// with.
func (w *Writer) Mode() Mode { return w.mode }

// RootObject returns the buffer's single root object cursor. Fields
// written through it (and through any nested cursor it returns)
// become the buffer's content.
func (w *Writer) RootObject() *ObjectWriter { return w.root }

// SetGrowSize changes the buffer's growth chunk for subsequent
// reservations. Values below the 1 KiB floor are raised to it.
func (w *Writer) SetGrowSize(grow uint32) {
	if grow < minBufferGrowSize {
		grow = minBufferGrowSize
	}
	w.growSize = grow
}

// Bytes returns the buffer's current contents. The returned slice
// aliases the Writer's internal storage and is only meaningful after
// [Writer.Finish].
func (w *Writer) Bytes() []byte { return w.buf }

// Size returns the buffer's current length in bytes.
func (w *Writer) Size() int { return len(w.buf) }

// Finish finalizes the root object, back-patching its size prefix.
// Calling Finish more than once is a no-op (mirrors [ObjectWriter]'s
// idempotent-finish guarantee).
func (w *Writer) Finish() {
	if w.finished {
		return
	}
	w.root.Finish()
	w.finished = true
}

// reserve ensures at least n bytes of free capacity without changing
// the buffer's length: when fewer than n bytes are free, capacity
// grows by n plus one grow chunk.
func (w *Writer) reserve(n int) {
	have := cap(w.buf) - len(w.buf)
	if have >= n {
		return
	}
	grow := int(w.growSize)
	need := n + grow
	if need < grow {
		need = grow
	}
	next := make([]byte, len(w.buf), cap(w.buf)+need)
	copy(next, w.buf)
	w.buf = next
}

// appendBytes appends data to the buffer tail and returns the offset
// at which it was written.
func (w *Writer) appendBytes(data []byte) int {
	w.reserve(len(data))
	offset := len(w.buf)
	w.buf = append(w.buf, data...)
	return offset
}

// appendZeros appends n zero bytes and returns the offset at which
// they start. Used to reserve a size placeholder.
func (w *Writer) appendZeros(n int) int {
	w.reserve(n)
	offset := len(w.buf)
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
	return offset
}

// appendScalar appends an unsigned integer of the given byte width in
// little-endian form.
func (w *Writer) appendScalar(width int, v uint64) int {
	var tmp [8]byte
	putScalar(tmp[:width], width, v)
	return w.appendBytes(tmp[:width])
}

// reserveSizePlaceholder appends a zeroed u32 and returns its offset.
// Pair with [Writer.patchSize] once the enclosed content is written.
func (w *Writer) reserveSizePlaceholder() int {
	return w.appendZeros(4)
}

// patchSize writes "bytes appended since offset+4" as a little-endian
// u32 at offset, the back-patch step every nested cursor performs on
// Finish.
func (w *Writer) patchSize(offset int) {
	size := uint32(len(w.buf) - offset - 4)
	putScalar(w.buf[offset:offset+4], 4, uint64(size))
}

// writeFieldHeader appends a field's type byte followed by its
// identifier, encoded per the Writer's [Mode]: a (u8 length, bytes)
// name in [NameMode], or a raw u16 id in [IDMode].
func (w *Writer) writeFieldHeader(tag Tag, typ Type) {
	w.appendBytes([]byte{byte(typ)})
	switch w.mode {
	case NameMode:
		if !tag.HasName() {
			panic("tbf: writer is in NameMode but tag has no name: " + tag.String())
		}
		w.appendBytes([]byte{byte(len(tag.Name()))})
		w.appendBytes([]byte(tag.Name()))
	case IDMode:
		if !tag.HasID() {
			panic("tbf: writer is in IDMode but tag has no id: " + tag.String())
		}
		w.appendScalar(2, uint64(tag.ID()))
	}
}

// writeString appends a String payload: (u16 length, bytes).
func (w *Writer) writeString(s string) {
	if len(s) > 0xFFFF {
		panic("tbf: string field is too long (65535 byte maximum)")
	}
	w.appendScalar(2, uint64(len(s)))
	w.appendBytes([]byte(s))
}

// writeBinary appends a Binary payload: (u32 length, bytes).
func (w *Writer) writeBinary(data []byte) {
	w.appendScalar(4, uint64(len(data)))
	w.appendBytes(data)
}
