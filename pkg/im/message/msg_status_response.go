package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// StatusResponseMessage is a response containing only a status code.
// Opcode: 0x01
// Container type: Structure
type StatusResponseMessage struct {
	Status Status // Tag 0
}

// Context tags for StatusResponseMessage.
const (
	statusRespTagStatus = 0
)

// Encode writes the StatusResponseMessage to the TLV writer.
func (m *StatusResponseMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutUint(tlv.ContextTag(statusRespTagStatus), uint64(m.Status)))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads a StatusResponseMessage from the TLV reader.
func (m *StatusResponseMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasStatus bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case statusRespTagStatus:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.Status = Status(v)
			hasStatus = true

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

	if !hasStatus {
		return ErrMissingField
	}

	return nil
}
