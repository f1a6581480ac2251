package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// InvokeResponseMessage contains results of command invocations.
// Opcode: 0x09
// Container type: Structure
type InvokeResponseMessage struct {
	SuppressResponse    bool               // Tag 0
	InvokeResponses     []InvokeResponseIB // Tag 1
	MoreChunkedMessages bool               // Tag 2
}

// Context tags for InvokeResponseMessage.
const (
	invokeRespMsgTagSuppressResponse    = 0
	invokeRespMsgTagInvokeResponses     = 1
	invokeRespMsgTagMoreChunkedMessages = 2
)

// Encode writes the InvokeResponseMessage to the TLV writer.
func (m *InvokeResponseMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutBool(tlv.ContextTag(invokeRespMsgTagSuppressResponse), m.SuppressResponse))
	b.fail(EncodeIBArray(w, tlv.ContextTag(invokeRespMsgTagInvokeResponses), m.InvokeResponses,
		func(w *tlv.Writer, i InvokeResponseIB, tag tlv.Tag) error { return i.EncodeWithTag(w, tag) }))
	b.fail(w.PutBool(tlv.ContextTag(invokeRespMsgTagMoreChunkedMessages), m.MoreChunkedMessages))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// invokeResponseMessageEndBufferReserve is the number of trailing writer
// bytes EncodeWithEndBufferReserved reserves at Init time: the
// interaction-model-revision field (control byte + one-octet context tag
// + narrowest uint8 value, 3 bytes) plus the outer structure's one
// end-of-container byte. Grounded on
// InvokeResponseMessage::Builder::GetSizeToEndInvokeResponseMessage /
// EndOfInvokeResponseMessage in
// original_source/src/app/MessageDef/InvokeResponseMessage.h|.cpp.
const invokeResponseMessageEndBufferReserve = 4

// EncodeWithEndBufferReserved encodes the message the same way Encode
// does, but reserves invokeResponseMessageEndBufferReserve trailing bytes
// up front and has InvokeResponses reserve its own closing byte in turn
// (P6; spec.md §4.6). Use this instead of Encode when m.InvokeResponses
// may be built up incrementally against a size-bounded tlv.Writer: a
// response that would otherwise leave no room to stamp the revision field
// and close the message fails immediately with tlv.ErrBufferFull instead
// of producing a message that can never be closed.
func (m *InvokeResponseMessage) EncodeWithEndBufferReserved(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.InitWithEndBufferReserved(w, invokeResponseMessageEndBufferReserve); err != nil {
		return err
	}

	b.fail(w.PutBool(tlv.ContextTag(invokeRespMsgTagSuppressResponse), m.SuppressResponse))
	b.fail(EncodeInvokeResponseIBsWithEndBufferReserved(w, tlv.ContextTag(invokeRespMsgTagInvokeResponses), m.InvokeResponses))
	b.fail(w.PutBool(tlv.ContextTag(invokeRespMsgTagMoreChunkedMessages), m.MoreChunkedMessages))
	if b.err != nil {
		return b.err
	}

	b.unreserve()
	if err := b.EncodeInteractionModelRevision(); err != nil {
		return err
	}
	return b.EndOfContainer()
}

// Decode reads an InvokeResponseMessage from the TLV reader.
func (m *InvokeResponseMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case invokeRespMsgTagSuppressResponse:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.SuppressResponse = v

		case invokeRespMsgTagInvokeResponses:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (InvokeResponseIB, error) {
				var resp InvokeResponseIB
				err := resp.DecodeFrom(r)
				return resp, err
			})
			if err != nil {
				return err
			}
			m.InvokeResponses = items

		case invokeRespMsgTagMoreChunkedMessages:
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

	return p.Exit()
}
