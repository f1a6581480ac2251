package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// WriteResponseMessage contains results of a write operation.
// Opcode: 0x07
// Container type: Structure
type WriteResponseMessage struct {
	WriteResponses []AttributeStatusIB // Tag 0
}

// Context tags for WriteResponseMessage.
const (
	writeRespTagWriteResponses = 0
)

// Encode writes the WriteResponseMessage to the TLV writer.
func (m *WriteResponseMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(EncodeIBArray(w, tlv.ContextTag(writeRespTagWriteResponses), m.WriteResponses,
		func(w *tlv.Writer, s AttributeStatusIB, tag tlv.Tag) error { return s.EncodeWithTag(w, tag) }))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads a WriteResponseMessage from the TLV reader.
func (m *WriteResponseMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasWriteResponses bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case writeRespTagWriteResponses:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (AttributeStatusIB, error) {
				var status AttributeStatusIB
				err := status.DecodeFrom(r)
				return status, err
			})
			if err != nil {
				return err
			}
			m.WriteResponses = items
			hasWriteResponses = true

		case TagInteractionModelRevision:
			_, err := DecodeInteractionModelRevision(r)
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := p.Exit(); err != nil {
		return err
	}

	if !hasWriteResponses {
		return ErrMissingField
	}

	return nil
}
