package message

import (
	"errors"

	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// Parser is the base of every IB and message decoder. It wraps a
// tlv.Reader together with the outer container type EnterContainer
// handed back, so Exit can restore it without the reader needing to keep
// its own stack of ancestors.
type Parser struct {
	r     *tlv.Reader
	outer tlv.ElementType
}

// Reader returns the underlying TLV reader.
func (p *Parser) Reader() *tlv.Reader { return p.r }

// Exit leaves the container this parser entered.
func (p *Parser) Exit() error { return p.r.ExitContainer(p.outer) }

// fieldFunc is called once per context-tagged sibling of an entered
// container, in wire order. Returning an error aborts the walk.
type fieldFunc func(tagNumber uint8, r *tlv.Reader) error

// ForEachContextField walks every sibling of the container p has entered,
// calling fn for context-tagged elements in ascending tag-number order
// (I3/P3/P4: a tag number at or below the previous context tag number is
// ErrInvalidTag) and silently skipping anonymous or non-context tags, so
// callers never hand-roll the Next/IsEndOfContainer/Skip loop themselves.
func (p *Parser) ForEachContextField(fn fieldFunc) error {
	lastSeen := -1
	for {
		if err := p.r.Next(); err != nil {
			if errors.Is(err, tlv.ErrEndOfTLV) {
				return nil
			}
			return err
		}
		if p.r.IsEndOfContainer() {
			return nil
		}

		tag := p.r.Tag()
		if !tag.IsContext() {
			if err := p.r.Skip(); err != nil {
				return err
			}
			continue
		}

		tagNum := int(tag.TagNumber())
		if tagNum <= lastSeen {
			return tlv.ErrInvalidTag
		}
		lastSeen = tagNum

		if err := fn(uint8(tagNum), p.r); err != nil {
			return err
		}
	}
}

// StructParser decodes a Structure container.
type StructParser struct{ Parser }

// Init verifies the current element is a Structure and enters it.
func (p *StructParser) Init(r *tlv.Reader) error {
	if r.Type() != tlv.ElementTypeStruct {
		return ErrInvalidType
	}
	saved, err := r.EnterContainer()
	if err != nil {
		return err
	}
	p.r = r
	p.outer = saved
	return nil
}

// ArrayParser decodes an Array container.
type ArrayParser struct{ Parser }

// Init verifies the current element is an Array and enters it.
func (p *ArrayParser) Init(r *tlv.Reader) error {
	if r.Type() != tlv.ElementTypeArray {
		return ErrInvalidType
	}
	saved, err := r.EnterContainer()
	if err != nil {
		return err
	}
	p.r = r
	p.outer = saved
	return nil
}

// ListParser decodes a List container.
type ListParser struct{ Parser }

// Init verifies the current element is a List and enters it.
func (p *ListParser) Init(r *tlv.Reader) error {
	if r.Type() != tlv.ElementTypeList {
		return ErrInvalidType
	}
	saved, err := r.EnterContainer()
	if err != nil {
		return err
	}
	p.r = r
	p.outer = saved
	return nil
}

// MessageParser is the outermost parser for a top-level IM message: an
// anonymous structure whose interaction-model-revision field (context tag
// 0xFF) parsers tolerate but do not require to carry a specific value.
type MessageParser struct{ StructParser }

// Init reads the next element, verifies it is the top-level anonymous
// structure, and enters it.
func (p *MessageParser) Init(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	if !r.Tag().IsAnonymous() {
		return ErrInvalidTag
	}
	return p.StructParser.Init(r)
}

// DecodeInteractionModelRevision extracts the revision field if present.
// Per I7, any value is accepted; callers that don't care can ignore the
// field entirely since ForEachContextField skips unrecognized tags.
func DecodeInteractionModelRevision(r *tlv.Reader) (uint64, error) {
	return r.Uint()
}

// EncodeIBArray writes each element of items as an anonymous child of an
// array opened under tag, using encode to serialize one element.
func EncodeIBArray[T any](w *tlv.Writer, tag tlv.Tag, items []T, encode func(*tlv.Writer, T, tlv.Tag) error) error {
	if err := w.StartArray(tag); err != nil {
		return err
	}
	for _, item := range items {
		if err := encode(w, item, tlv.Anonymous()); err != nil {
			return err
		}
	}
	return w.EndContainer()
}

// DecodeIBArray reads an array's anonymous children with decode,
// appending each to the returned slice. The reader must be positioned on
// the array element.
func DecodeIBArray[T any](r *tlv.Reader, decode func(*tlv.Reader) (T, error)) ([]T, error) {
	var ap ArrayParser
	if err := ap.Init(r); err != nil {
		return nil, err
	}

	var items []T
	for {
		if err := r.Next(); err != nil {
			if errors.Is(err, tlv.ErrEndOfTLV) {
				break
			}
			return nil, err
		}
		if r.IsEndOfContainer() {
			break
		}
		item, err := decode(r)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := ap.Exit(); err != nil {
		return nil, err
	}
	return items, nil
}
