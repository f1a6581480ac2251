package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// ReadRequestMessage requests attribute and/or event data.
// Opcode: 0x02
// Container type: Structure
type ReadRequestMessage struct {
	AttributeRequests  []AttributePathIB     // Tag 0
	EventRequests      []EventPathIB         // Tag 1
	EventFilters       []EventFilterIB       // Tag 2
	FabricFiltered     bool                  // Tag 3
	DataVersionFilters []DataVersionFilterIB // Tag 4
}

// Context tags for ReadRequestMessage.
const (
	readReqTagAttributeRequests  = 0
	readReqTagEventRequests      = 1
	readReqTagEventFilters       = 2
	readReqTagFabricFiltered     = 3
	readReqTagDataVersionFilters = 4
)

// Encode writes the ReadRequestMessage to the TLV writer.
func (m *ReadRequestMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	if len(m.AttributeRequests) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(readReqTagAttributeRequests), m.AttributeRequests,
			func(w *tlv.Writer, p AttributePathIB, tag tlv.Tag) error { return p.EncodeWithTag(w, tag) }))
	}
	if len(m.EventRequests) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(readReqTagEventRequests), m.EventRequests,
			func(w *tlv.Writer, p EventPathIB, tag tlv.Tag) error { return p.EncodeWithTag(w, tag) }))
	}
	if len(m.EventFilters) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(readReqTagEventFilters), m.EventFilters,
			func(w *tlv.Writer, f EventFilterIB, tag tlv.Tag) error { return f.EncodeWithTag(w, tag) }))
	}
	b.fail(w.PutBool(tlv.ContextTag(readReqTagFabricFiltered), m.FabricFiltered))
	if len(m.DataVersionFilters) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(readReqTagDataVersionFilters), m.DataVersionFilters,
			func(w *tlv.Writer, f DataVersionFilterIB, tag tlv.Tag) error { return f.EncodeWithTag(w, tag) }))
	}

	b.fail(b.EncodeInteractionModelRevision())
	return b.EndOfContainer()
}

// Decode reads a ReadRequestMessage from the TLV reader.
func (m *ReadRequestMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case readReqTagAttributeRequests:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (AttributePathIB, error) {
				var path AttributePathIB
				err := path.DecodeFrom(r)
				return path, err
			})
			if err != nil {
				return err
			}
			m.AttributeRequests = items

		case readReqTagEventRequests:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (EventPathIB, error) {
				var path EventPathIB
				err := path.DecodeFrom(r)
				return path, err
			})
			if err != nil {
				return err
			}
			m.EventRequests = items

		case readReqTagEventFilters:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (EventFilterIB, error) {
				var filter EventFilterIB
				err := filter.DecodeFrom(r)
				return filter, err
			})
			if err != nil {
				return err
			}
			m.EventFilters = items

		case readReqTagFabricFiltered:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.FabricFiltered = v

		case readReqTagDataVersionFilters:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (DataVersionFilterIB, error) {
				var filter DataVersionFilterIB
				err := filter.DecodeFrom(r)
				return filter, err
			})
			if err != nil {
				return err
			}
			m.DataVersionFilters = items

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
