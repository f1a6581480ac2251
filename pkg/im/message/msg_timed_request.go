package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// TimedRequestMessage initiates a timed interaction, giving the server a
// deadline by which the follow-up action must arrive.
// Opcode: 0x0a
// Container type: Structure
type TimedRequestMessage struct {
	Timeout uint16 // Tag 0, timeout in milliseconds
}

// Context tags for TimedRequestMessage.
const (
	timedReqTagTimeout = 0
)

// Encode writes the TimedRequestMessage to the TLV writer.
func (m *TimedRequestMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutUint(tlv.ContextTag(timedReqTagTimeout), uint64(m.Timeout)))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads a TimedRequestMessage from the TLV reader.
func (m *TimedRequestMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasTimeout bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case timedReqTagTimeout:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.Timeout = uint16(v)
			hasTimeout = true

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

	if !hasTimeout {
		return ErrMissingField
	}

	return nil
}
