package tbf

// StringArrayWriter is a cursor for a string array field's elements,
// obtained from [ObjectWriter.FieldStringArray].
type StringArrayWriter struct {
	w          *Writer
	sizeOffset int
	finished   bool
}

// AddElement appends one length-prefixed string element.
func (a *StringArrayWriter) AddElement(s string) {
	if len(s) > 0xFFFF {
		panic("tbf: string array element is too long (65535 byte maximum)")
	}
	a.w.appendScalar(2, uint64(len(s)))
	a.w.appendBytes([]byte(s))
}

// Finish back-patches the array's total byte count. Idempotent.
func (a *StringArrayWriter) Finish() {
	if a.finished {
		return
	}
	a.w.patchSize(a.sizeOffset)
	a.finished = true
}

// IsFinished reports whether [StringArrayWriter.Finish] has already
// run.
func (a *StringArrayWriter) IsFinished() bool { return a.finished }

// BinaryArrayWriter is a cursor for a binary array field's elements,
// obtained from [ObjectWriter.FieldBinaryArray].
type BinaryArrayWriter struct {
	w          *Writer
	sizeOffset int
	finished   bool
}

// AddElement appends one length-prefixed binary element.
func (a *BinaryArrayWriter) AddElement(data []byte) {
	a.w.appendScalar(4, uint64(len(data)))
	a.w.appendBytes(data)
}

// Finish back-patches the array's total byte count. Idempotent.
func (a *BinaryArrayWriter) Finish() {
	if a.finished {
		return
	}
	a.w.patchSize(a.sizeOffset)
	a.finished = true
}

// IsFinished reports whether [BinaryArrayWriter.Finish] has already
// run.
func (a *BinaryArrayWriter) IsFinished() bool { return a.finished }

// ObjectArrayWriter is a cursor for an object array field's elements,
// obtained from [ObjectWriter.FieldObjectArray].
type ObjectArrayWriter struct {
	w          *Writer
	sizeOffset int
	finished   bool
}

// CreateElement opens a new object element and returns a cursor for
// its fields. The previous element's cursor (if any) must already be
// finished; the returned cursor must itself be finished before the
// next CreateElement call or before this array's Finish.
func (a *ObjectArrayWriter) CreateElement() *ObjectWriter {
	elementSizeOffset := a.w.reserveSizePlaceholder()
	return &ObjectWriter{w: a.w, sizeOffset: elementSizeOffset}
}

// Finish back-patches the array's total byte count. Idempotent.
func (a *ObjectArrayWriter) Finish() {
	if a.finished {
		return
	}
	a.w.patchSize(a.sizeOffset)
	a.finished = true
}

// IsFinished reports whether [ObjectArrayWriter.Finish] has already
// run.
func (a *ObjectArrayWriter) IsFinished() bool { return a.finished }
