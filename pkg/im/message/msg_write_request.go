package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// WriteRequestMessage requests writing attribute values.
// Opcode: 0x06
// Container type: Structure
type WriteRequestMessage struct {
	SuppressResponse    bool              // Tag 0
	TimedRequest        bool              // Tag 1
	WriteRequests       []AttributeDataIB // Tag 2
	MoreChunkedMessages bool              // Tag 3
}

// Context tags for WriteRequestMessage.
const (
	writeReqTagSuppressResponse    = 0
	writeReqTagTimedRequest        = 1
	writeReqTagWriteRequests       = 2
	writeReqTagMoreChunkedMessages = 3
)

// Encode writes the WriteRequestMessage to the TLV writer.
func (m *WriteRequestMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutBool(tlv.ContextTag(writeReqTagSuppressResponse), m.SuppressResponse))
	b.fail(w.PutBool(tlv.ContextTag(writeReqTagTimedRequest), m.TimedRequest))
	b.fail(EncodeIBArray(w, tlv.ContextTag(writeReqTagWriteRequests), m.WriteRequests,
		func(w *tlv.Writer, d AttributeDataIB, tag tlv.Tag) error { return d.EncodeWithTag(w, tag) }))
	b.fail(w.PutBool(tlv.ContextTag(writeReqTagMoreChunkedMessages), m.MoreChunkedMessages))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads a WriteRequestMessage from the TLV reader.
func (m *WriteRequestMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasWriteRequests bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case writeReqTagSuppressResponse:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.SuppressResponse = v

		case writeReqTagTimedRequest:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.TimedRequest = v

		case writeReqTagWriteRequests:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (AttributeDataIB, error) {
				var data AttributeDataIB
				err := data.DecodeFrom(r)
				return data, err
			})
			if err != nil {
				return err
			}
			m.WriteRequests = items
			hasWriteRequests = true

		case writeReqTagMoreChunkedMessages:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.MoreChunkedMessages = v

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

	if !hasWriteRequests {
		return ErrMissingField
	}

	return nil
}
