package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// AttributeStatusIB contains status information for an attribute operation.
// Container type: Structure
type AttributeStatusIB struct {
	Path   AttributePathIB // Tag 0
	Status StatusIB        // Tag 1
}

// Context tags for AttributeStatusIB.
const (
	attrStatusTagPath   = 0
	attrStatusTagStatus = 1
)

// Encode writes the AttributeStatusIB to the TLV writer.
func (a *AttributeStatusIB) Encode(w *tlv.Writer) error {
	return a.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the AttributeStatusIB with a specific tag.
func (a *AttributeStatusIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(a.Path.EncodeWithTag(w, tlv.ContextTag(attrStatusTagPath)))
	b.fail(a.Status.EncodeWithTag(w, tlv.ContextTag(attrStatusTagStatus)))

	return b.EndOfContainer()
}

// Decode reads an AttributeStatusIB from the TLV reader.
func (a *AttributeStatusIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return a.DecodeFrom(r)
}

// DecodeFrom reads an AttributeStatusIB assuming the reader is positioned
// at the container start.
func (a *AttributeStatusIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasPath, hasStatus bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case attrStatusTagPath:
			if err := a.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case attrStatusTagStatus:
			if err := a.Status.DecodeFrom(r); err != nil {
				return err
			}
			hasStatus = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasPath || !hasStatus {
		return ErrMissingField
	}

	return nil
}
