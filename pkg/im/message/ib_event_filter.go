package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// EventFilterIB filters events by node and minimum event number.
// Container type: Structure
type EventFilterIB struct {
	Node     *NodeID     // Tag 0, optional
	EventMin EventNumber // Tag 1
}

// Context tags for EventFilterIB.
const (
	eventFilterTagNode     = 0
	eventFilterTagEventMin = 1
)

// Encode writes the EventFilterIB to the TLV writer.
func (f *EventFilterIB) Encode(w *tlv.Writer) error {
	return f.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the EventFilterIB with a specific tag.
func (f *EventFilterIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	if f.Node != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventFilterTagNode), uint64(*f.Node)))
	}
	b.fail(w.PutUint(tlv.ContextTag(eventFilterTagEventMin), uint64(f.EventMin)))

	return b.EndOfContainer()
}

// Decode reads an EventFilterIB from the TLV reader.
func (f *EventFilterIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return f.DecodeFrom(r)
}

// DecodeFrom reads an EventFilterIB assuming the reader is positioned
// at the container start.
func (f *EventFilterIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasEventMin bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case eventFilterTagNode:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			nodeID := NodeID(v)
			f.Node = &nodeID

		case eventFilterTagEventMin:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			f.EventMin = EventNumber(v)
			hasEventMin = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasEventMin {
		return ErrMissingField
	}

	return nil
}
