package tlv

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Writer is an append-only cursor over a caller-owned byte buffer. Unlike
// an io.Writer-backed encoder, a Writer can checkpoint its position and
// roll back to it (bitwise-copyable save/restore, used by speculative
// encoders that try a field and undo it if it does not fit) and can
// reserve a tail of the buffer so a final close-container byte is always
// guaranteed to fit, even while the body is still being appended by a
// chunked builder.
type Writer struct {
	buf           []byte
	maxLen        int // 0 means unbounded
	reserved      int
	containerType ElementType
	depth         int
}

// NewWriter creates a Writer appending to buf (buf[:0] is a convenient
// way to reuse a backing array; len(buf) need not be 0). If maxLen is
// greater than 0, writes that would grow the buffer past maxLen fail with
// ErrBufferFull.
func NewWriter(buf []byte, maxLen int) *Writer {
	return &Writer{buf: buf, maxLen: maxLen, containerType: elementTypeNone}
}

// Bytes returns the encoded bytes written so far.
func (w *Writer) Bytes() []byte { return w.buf }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.buf) }

// WriterMark is an opaque, bitwise-copyable save point produced by
// Checkpoint and consumed by Rollback.
type WriterMark struct {
	length        int
	containerType ElementType
	depth         int
}

// Checkpoint captures the writer's current position so it can be
// restored by Rollback if a speculative encode does not pan out.
func (w *Writer) Checkpoint() WriterMark {
	return WriterMark{length: len(w.buf), containerType: w.containerType, depth: w.depth}
}

// Rollback restores the writer to a previously captured checkpoint,
// discarding anything written since.
func (w *Writer) Rollback(m WriterMark) {
	w.buf = w.buf[:m.length]
	w.containerType = m.containerType
	w.depth = m.depth
}

// ReserveBuffer withholds n bytes of the writer's remaining capacity so a
// later, smaller write (typically a single EndContainer close byte) is
// guaranteed to succeed regardless of how much the body consumed in
// between. It is a no-op on an unbounded writer.
func (w *Writer) ReserveBuffer(n int) error {
	if w.maxLen == 0 {
		return nil
	}
	if len(w.buf)+w.reserved+n > w.maxLen {
		return ErrBufferFull
	}
	w.reserved += n
	return nil
}

// UnreserveBuffer releases a reservation made by ReserveBuffer.
func (w *Writer) UnreserveBuffer(n int) {
	w.reserved -= n
	if w.reserved < 0 {
		w.reserved = 0
	}
}

func (w *Writer) remaining() int {
	if w.maxLen == 0 {
		return math.MaxInt
	}
	return w.maxLen - w.reserved - len(w.buf)
}

func (w *Writer) write(p []byte) error {
	if len(p) > w.remaining() {
		return ErrBufferFull
	}
	w.buf = append(w.buf, p...)
	return nil
}

func (w *Writer) writeControlAndTag(elemType ElementType, tag Tag) error {
	return w.writeFixedValue(elemType, tag, nil)
}

// PutInt writes a signed integer with the given tag, choosing the
// narrowest width that represents v exactly.
func (w *Writer) PutInt(tag Tag, v int64) error {
	switch {
	case v >= math.MinInt8 && v <= math.MaxInt8:
		return w.PutIntWithWidth(tag, v, 1)
	case v >= math.MinInt16 && v <= math.MaxInt16:
		return w.PutIntWithWidth(tag, v, 2)
	case v >= math.MinInt32 && v <= math.MaxInt32:
		return w.PutIntWithWidth(tag, v, 4)
	default:
		return w.PutIntWithWidth(tag, v, 8)
	}
}

// PutIntWithWidth writes a signed integer at an explicit width (1, 2, 4,
// or 8 bytes), for callers that must match a specific encoding.
func (w *Writer) PutIntWithWidth(tag Tag, v int64, width int) error {
	var elemType ElementType
	var buf [8]byte

	switch width {
	case 1:
		elemType = ElementTypeInt8
		buf[0] = byte(v)
	case 2:
		elemType = ElementTypeInt16
		binary.LittleEndian.PutUint16(buf[:2], uint16(v))
	case 4:
		elemType = ElementTypeInt32
		binary.LittleEndian.PutUint32(buf[:4], uint32(v))
	case 8:
		elemType = ElementTypeInt64
		binary.LittleEndian.PutUint64(buf[:8], uint64(v))
	default:
		return ErrInvalidElementType
	}
	return w.writeFixedValue(elemType, tag, buf[:width])
}

// PutUint writes an unsigned integer with the given tag, choosing the
// narrowest width that represents v exactly.
func (w *Writer) PutUint(tag Tag, v uint64) error {
	switch {
	case v <= math.MaxUint8:
		return w.PutUintWithWidth(tag, v, 1)
	case v <= math.MaxUint16:
		return w.PutUintWithWidth(tag, v, 2)
	case v <= math.MaxUint32:
		return w.PutUintWithWidth(tag, v, 4)
	default:
		return w.PutUintWithWidth(tag, v, 8)
	}
}

// PutUintWithWidth writes an unsigned integer at an explicit width (1, 2,
// 4, or 8 bytes).
func (w *Writer) PutUintWithWidth(tag Tag, v uint64, width int) error {
	var elemType ElementType
	var buf [8]byte

	switch width {
	case 1:
		elemType = ElementTypeUInt8
		buf[0] = byte(v)
	case 2:
		elemType = ElementTypeUInt16
		binary.LittleEndian.PutUint16(buf[:2], uint16(v))
	case 4:
		elemType = ElementTypeUInt32
		binary.LittleEndian.PutUint32(buf[:4], uint32(v))
	case 8:
		elemType = ElementTypeUInt64
		binary.LittleEndian.PutUint64(buf[:8], v)
	default:
		return ErrInvalidElementType
	}
	return w.writeFixedValue(elemType, tag, buf[:width])
}

// PutBool writes a boolean with the given tag.
func (w *Writer) PutBool(tag Tag, v bool) error {
	elemType := ElementTypeFalse
	if v {
		elemType = ElementTypeTrue
	}
	return w.writeControlAndTag(elemType, tag)
}

// PutFloat32 writes a 32-bit floating point number with the given tag.
func (w *Writer) PutFloat32(tag Tag, v float32) error {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	return w.writeFixedValue(ElementTypeFloat32, tag, buf[:])
}

// PutFloat64 writes a 64-bit floating point number with the given tag.
func (w *Writer) PutFloat64(tag Tag, v float64) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return w.writeFixedValue(ElementTypeFloat64, tag, buf[:])
}

// PutString writes a UTF-8 string with the given tag. Returns
// ErrInvalidUTF8 if the string is not valid UTF-8.
func (w *Writer) PutString(tag Tag, v string) error {
	if !utf8.ValidString(v) {
		return ErrInvalidUTF8
	}
	return w.writeStringValue(true, tag, []byte(v))
}

// PutBytes writes an octet string with the given tag.
func (w *Writer) PutBytes(tag Tag, v []byte) error {
	return w.writeStringValue(false, tag, v)
}

// PutRaw writes a previously captured raw TLV element (as produced by
// Reader.RawBytes) under a new tag. Used to replay an opaque nested
// element whose schema this package does not need to understand.
func (w *Writer) PutRaw(tag Tag, rawTLV []byte) error {
	if len(rawTLV) == 0 {
		return nil
	}

	controlByte := rawTLV[0]
	elemType := ElementType(controlByte & elementTypeMask)
	originalTagControl := TagControl((controlByte & tagControlMask) >> tagControlShift)

	if err := w.writeControlAndTag(elemType, tag); err != nil {
		return err
	}

	skipBytes := 1 + originalTagControl.Size()
	if skipBytes >= len(rawTLV) {
		return nil
	}
	return w.write(rawTLV[skipBytes:])
}

// PutNull writes a null value with the given tag.
func (w *Writer) PutNull(tag Tag) error {
	return w.writeControlAndTag(ElementTypeNull, tag)
}

// StartStructure opens a structure container under the given tag.
func (w *Writer) StartStructure(tag Tag) error { return w.startContainer(ElementTypeStruct, tag) }

// StartArray opens an array container under the given tag.
func (w *Writer) StartArray(tag Tag) error { return w.startContainer(ElementTypeArray, tag) }

// StartList opens a list container under the given tag.
func (w *Writer) StartList(tag Tag) error { return w.startContainer(ElementTypeList, tag) }

func (w *Writer) startContainer(elemType ElementType, tag Tag) error {
	if err := w.writeControlAndTag(elemType, tag); err != nil {
		return err
	}
	w.containerType = elemType
	w.depth++
	return nil
}

// EndContainer closes the most recently opened container.
func (w *Writer) EndContainer() error {
	if w.depth == 0 {
		return ErrNotInContainer
	}
	if err := w.write([]byte{byte(ElementTypeEnd)}); err != nil {
		return err
	}
	w.depth--
	if w.depth == 0 {
		w.containerType = elementTypeNone
	}
	return nil
}

// ContainerDepth returns the writer's current container nesting depth.
func (w *Writer) ContainerDepth() int { return w.depth }

// writeFixedValue writes control octet, tag and value in a single write, so
// an element that does not fit leaves the buffer unchanged.
func (w *Writer) writeFixedValue(elemType ElementType, tag Tag, value []byte) error {
	tagBytes, err := encodeTag(tag)
	if err != nil {
		return err
	}
	elem := make([]byte, 0, 1+len(tagBytes)+len(value))
	elem = append(elem, BuildControlOctet(elemType, tag.Control()))
	elem = append(elem, tagBytes...)
	return w.write(append(elem, value...))
}

func (w *Writer) writeStringValue(isUTF8 bool, tag Tag, data []byte) error {
	length := uint64(len(data))

	var elemType ElementType
	var lenSize int
	switch {
	case length <= math.MaxUint8:
		lenSize = 1
	case length <= math.MaxUint16:
		lenSize = 2
	case length <= math.MaxUint32:
		lenSize = 4
	default:
		lenSize = 8
	}
	if isUTF8 {
		elemType = ElementTypeUTF8_1 + ElementType(log2Step(lenSize))
	} else {
		elemType = ElementTypeBytes1 + ElementType(log2Step(lenSize))
	}

	if err := w.writeControlAndTag(elemType, tag); err != nil {
		return err
	}
	if err := w.write(encodeLengthField(length, lenSize)); err != nil {
		return err
	}
	return w.write(data)
}

// log2Step maps a length-field byte size (1,2,4,8) to its 0..3 ordinal,
// matching the element type enum's layout (N, N+1, N+2, N+3 for 1,2,4,8).
func log2Step(size int) int {
	switch size {
	case 1:
		return 0
	case 2:
		return 1
	case 4:
		return 2
	default:
		return 3
	}
}
