package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// SubscribeResponseMessage confirms a subscription.
// Opcode: 0x04
// Container type: Structure
type SubscribeResponseMessage struct {
	SubscriptionID SubscriptionID // Tag 0
	MaxInterval    uint16         // Tag 2, tag 1 is skipped/reserved
}

// Context tags for SubscribeResponseMessage.
const (
	subRespTagSubscriptionID = 0
	subRespTagMaxInterval    = 2
)

// Encode writes the SubscribeResponseMessage to the TLV writer.
func (m *SubscribeResponseMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutUint(tlv.ContextTag(subRespTagSubscriptionID), uint64(m.SubscriptionID)))
	b.fail(w.PutUint(tlv.ContextTag(subRespTagMaxInterval), uint64(m.MaxInterval)))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads a SubscribeResponseMessage from the TLV reader.
func (m *SubscribeResponseMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasSubscriptionID, hasMaxInterval bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case subRespTagSubscriptionID:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.SubscriptionID = SubscriptionID(v)
			hasSubscriptionID = true

		case subRespTagMaxInterval:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.MaxInterval = uint16(v)
			hasMaxInterval = true

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

	if !hasSubscriptionID || !hasMaxInterval {
		return ErrMissingField
	}

	return nil
}
