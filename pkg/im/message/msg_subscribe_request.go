package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// SubscribeRequestMessage establishes a subscription to attribute and/or
// event data, with periodic reports bounded by a min/max interval.
// Opcode: 0x03
// Container type: Structure
type SubscribeRequestMessage struct {
	KeepSubscriptions  bool                  // Tag 0
	MinIntervalFloor   uint16                // Tag 1
	MaxIntervalCeiling uint16                // Tag 2
	AttributeRequests  []AttributePathIB     // Tag 3
	EventRequests      []EventPathIB         // Tag 4
	EventFilters       []EventFilterIB       // Tag 5
	FabricFiltered     bool                  // Tag 7, tag 6 is skipped/reserved
	DataVersionFilters []DataVersionFilterIB // Tag 8
}

// Context tags for SubscribeRequestMessage.
const (
	subReqTagKeepSubscriptions  = 0
	subReqTagMinIntervalFloor   = 1
	subReqTagMaxIntervalCeiling = 2
	subReqTagAttributeRequests  = 3
	subReqTagEventRequests      = 4
	subReqTagEventFilters       = 5
	subReqTagFabricFiltered     = 7
	subReqTagDataVersionFilters = 8
)

// Encode writes the SubscribeRequestMessage to the TLV writer. Returns
// ErrInvalidAction if the interval floor exceeds the interval ceiling.
func (m *SubscribeRequestMessage) Encode(w *tlv.Writer) error {
	if m.MinIntervalFloor > m.MaxIntervalCeiling {
		return ErrInvalidAction
	}

	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	b.fail(w.PutBool(tlv.ContextTag(subReqTagKeepSubscriptions), m.KeepSubscriptions))
	b.fail(w.PutUint(tlv.ContextTag(subReqTagMinIntervalFloor), uint64(m.MinIntervalFloor)))
	b.fail(w.PutUint(tlv.ContextTag(subReqTagMaxIntervalCeiling), uint64(m.MaxIntervalCeiling)))

	if len(m.AttributeRequests) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(subReqTagAttributeRequests), m.AttributeRequests,
			func(w *tlv.Writer, p AttributePathIB, tag tlv.Tag) error { return p.EncodeWithTag(w, tag) }))
	}
	if len(m.EventRequests) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(subReqTagEventRequests), m.EventRequests,
			func(w *tlv.Writer, p EventPathIB, tag tlv.Tag) error { return p.EncodeWithTag(w, tag) }))
	}
	if len(m.EventFilters) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(subReqTagEventFilters), m.EventFilters,
			func(w *tlv.Writer, f EventFilterIB, tag tlv.Tag) error { return f.EncodeWithTag(w, tag) }))
	}

	b.fail(w.PutBool(tlv.ContextTag(subReqTagFabricFiltered), m.FabricFiltered))

	if len(m.DataVersionFilters) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(subReqTagDataVersionFilters), m.DataVersionFilters,
			func(w *tlv.Writer, f DataVersionFilterIB, tag tlv.Tag) error { return f.EncodeWithTag(w, tag) }))
	}

	b.fail(b.EncodeInteractionModelRevision())
	return b.EndOfContainer()
}

// Decode reads a SubscribeRequestMessage from the TLV reader. Returns
// ErrInvalidAction if the interval floor exceeds the interval ceiling.
func (m *SubscribeRequestMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	var hasMinFloor, hasMaxCeiling bool

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case subReqTagKeepSubscriptions:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.KeepSubscriptions = v

		case subReqTagMinIntervalFloor:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.MinIntervalFloor = uint16(v)
			hasMinFloor = true

		case subReqTagMaxIntervalCeiling:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			m.MaxIntervalCeiling = uint16(v)
			hasMaxCeiling = true

		case subReqTagAttributeRequests:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (AttributePathIB, error) {
				var path AttributePathIB
				err := path.DecodeFrom(r)
				return path, err
			})
			if err != nil {
				return err
			}
			m.AttributeRequests = items

		case subReqTagEventRequests:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (EventPathIB, error) {
				var path EventPathIB
				err := path.DecodeFrom(r)
				return path, err
			})
			if err != nil {
				return err
			}
			m.EventRequests = items

		case subReqTagEventFilters:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (EventFilterIB, error) {
				var filter EventFilterIB
				err := filter.DecodeFrom(r)
				return filter, err
			})
			if err != nil {
				return err
			}
			m.EventFilters = items

		case subReqTagFabricFiltered:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.FabricFiltered = v

		case subReqTagDataVersionFilters:
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

	if err := p.Exit(); err != nil {
		return err
	}

	if !hasMinFloor || !hasMaxCeiling {
		return ErrMissingField
	}
	if m.MinIntervalFloor > m.MaxIntervalCeiling {
		return ErrInvalidAction
	}

	return nil
}
