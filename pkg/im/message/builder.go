package message

import "github.com/backkem/matter-im-codec/pkg/tlv"

// Builder is the base of every IB and message encoder. It wraps a
// tlv.Writer with a sticky error: the first error handed to fail is kept
// and returned by Error, EndOfContainer and every later fail call, so
// callers can check the error once at the end. Writes after a failure are
// not skipped: an encoder still issues its remaining writes, and any that
// fit are appended to the writer.
type Builder struct {
	w        *tlv.Writer
	err      error
	outer    tlv.ElementType
	reserved int
}

// Writer returns the underlying TLV writer.
func (b *Builder) Writer() *tlv.Writer { return b.w }

// Error returns the first error this builder encountered, or nil.
func (b *Builder) Error() error { return b.err }

// ResetError clears a previously recorded error, allowing the builder to
// be reused. It takes no argument; the sticky error is only ever set by
// fail.
func (b *Builder) ResetError() { b.err = nil }

// fail records err as the builder's sticky error if one is not already
// set, and always returns the builder's current sticky error. Encoders
// pass the result of each write through this; the write has already run
// by then, so fail does not stop later writes.
func (b *Builder) fail(err error) error {
	if b.err == nil {
		b.err = err
	}
	return b.err
}

// EndOfContainer closes the container this builder opened, provided no
// sticky error is set. Calling it twice, or calling it after a sticky
// error, is a no-op — closing the container a second time would corrupt
// the stream. If the builder was opened with InitWithEndBufferReserved,
// the reservation is released first so the close token lands in capacity
// that was guaranteed available from the start (P6).
func (b *Builder) EndOfContainer() error {
	if b.err != nil {
		return b.err
	}
	if b.outer == elementTypeNoneSentinel {
		return nil
	}
	b.unreserve()
	err := b.w.EndContainer()
	b.outer = elementTypeNoneSentinel
	if err != nil {
		b.err = err
	}
	return err
}

// unreserve releases a trailing-byte reservation made by
// InitWithEndBufferReserved without closing the container, so a finalizer
// that must write guaranteed-to-fit bytes of its own (e.g. a revision
// stamp) before the close token can do so ahead of calling EndOfContainer.
func (b *Builder) unreserve() {
	if b.reserved > 0 {
		b.w.UnreserveBuffer(b.reserved)
		b.reserved = 0
	}
}

// elementTypeNoneSentinel marks a Builder that has already closed its
// container (or never opened one), so a repeat EndOfContainer is a no-op.
const elementTypeNoneSentinel tlv.ElementType = -1

// StructBuilder builds a Structure container.
type StructBuilder struct{ Builder }

// Init opens a structure under tag.
func (b *StructBuilder) Init(w *tlv.Writer, tag tlv.Tag) error {
	b.w = w
	b.err = w.StartStructure(tag)
	b.outer = tlv.ElementTypeStruct
	return b.err
}

// InitWithEndBufferReserved opens a structure under tag and reserves
// reserveBytes of the writer's trailing capacity (spec.md §4.6,
// "init_with_end_buffer_reserved"), guaranteeing that whatever fixed-size
// bytes a finalizer needs to write last — a revision stamp, a close token
// — are always emittable regardless of how much the body writes in
// between (P6). A Put that would encroach on the reservation fails with
// tlv.ErrBufferFull instead of silently starving the finalizer.
func (b *StructBuilder) InitWithEndBufferReserved(w *tlv.Writer, tag tlv.Tag, reserveBytes int) error {
	if err := b.Init(w, tag); err != nil {
		return err
	}
	if err := w.ReserveBuffer(reserveBytes); err != nil {
		return b.fail(err)
	}
	b.reserved = reserveBytes
	return nil
}

// ArrayBuilder builds an Array container.
type ArrayBuilder struct{ Builder }

// Init opens an array under tag.
func (b *ArrayBuilder) Init(w *tlv.Writer, tag tlv.Tag) error {
	b.w = w
	b.err = w.StartArray(tag)
	b.outer = tlv.ElementTypeArray
	return b.err
}

// InitWithEndBufferReserved opens an array under tag and reserves
// reserveBytes of the writer's trailing capacity so the array's own
// close token is always emittable even while an unbounded number of
// elements are appended (P6; spec.md §4.6).
func (b *ArrayBuilder) InitWithEndBufferReserved(w *tlv.Writer, tag tlv.Tag, reserveBytes int) error {
	if err := b.Init(w, tag); err != nil {
		return err
	}
	if err := w.ReserveBuffer(reserveBytes); err != nil {
		return b.fail(err)
	}
	b.reserved = reserveBytes
	return nil
}

// ListBuilder builds a List container.
type ListBuilder struct{ Builder }

// Init opens a list under tag.
func (b *ListBuilder) Init(w *tlv.Writer, tag tlv.Tag) error {
	b.w = w
	b.err = w.StartList(tag)
	b.outer = tlv.ElementTypeList
	return b.err
}

// MessageBuilder is the outermost builder for a top-level IM message: an
// anonymous structure stamped with the interaction-model-revision field
// (context tag 0xFF) before it closes.
type MessageBuilder struct{ StructBuilder }

// Init opens the message's top-level anonymous structure.
func (b *MessageBuilder) Init(w *tlv.Writer) error {
	return b.StructBuilder.Init(w, tlv.Anonymous())
}

// InitWithEndBufferReserved opens the message's top-level anonymous
// structure and reserves reserveBytes of the writer's trailing capacity
// for the finalizer (typically the revision stamp plus the outer close
// token; see msg_invoke_response.go for the concrete sizing).
func (b *MessageBuilder) InitWithEndBufferReserved(w *tlv.Writer, reserveBytes int) error {
	return b.StructBuilder.InitWithEndBufferReserved(w, tlv.Anonymous(), reserveBytes)
}

// EncodeInteractionModelRevision stamps the revision field. Every
// top-level message builder calls this immediately before
// EndOfContainer.
func (b *MessageBuilder) EncodeInteractionModelRevision() error {
	if b.err != nil {
		return b.err
	}
	return b.fail(b.w.PutUint(tlv.ContextTag(TagInteractionModelRevision), uint64(InteractionModelRevision)))
}
