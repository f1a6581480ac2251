package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// InvokeRequestMessage requests command invocation.
// Opcode: 0x08
// Container type: Structure
type InvokeRequestMessage struct {
	SuppressResponse bool            // Tag 0
	TimedRequest     bool            // Tag 1
	InvokeRequests   []CommandDataIB // Tag 2
}

// Context tags for InvokeRequestMessage.
const (
	invokeReqTagSuppressResponse = 0
	invokeReqTagTimedRequest     = 1
	invokeReqTagInvokeRequests   = 2
)

// Encode writes the InvokeRequestMessage to the TLV writer.
func (m *InvokeRequestMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutBool(tlv.ContextTag(invokeReqTagSuppressResponse), m.SuppressResponse))
	b.fail(w.PutBool(tlv.ContextTag(invokeReqTagTimedRequest), m.TimedRequest))
	b.fail(EncodeIBArray(w, tlv.ContextTag(invokeReqTagInvokeRequests), m.InvokeRequests,
		func(w *tlv.Writer, c CommandDataIB, tag tlv.Tag) error { return c.EncodeWithTag(w, tag) }))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads an InvokeRequestMessage from the TLV reader.
func (m *InvokeRequestMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasInvokeRequests bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case invokeReqTagSuppressResponse:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.SuppressResponse = v

		case invokeReqTagTimedRequest:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.TimedRequest = v

		case invokeReqTagInvokeRequests:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (CommandDataIB, error) {
				var cmd CommandDataIB
				err := cmd.DecodeFrom(r)
				return cmd, err
			})
			if err != nil {
				return err
			}
			m.InvokeRequests = items
			hasInvokeRequests = true

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

	if !hasInvokeRequests {
		return ErrMissingField
	}

	return nil
}
