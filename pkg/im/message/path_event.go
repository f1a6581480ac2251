package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// EventPathIB identifies an event or set of events.
// Container type: List
type EventPathIB struct {
	Node     *NodeID     // Tag 0
	Endpoint *EndpointID // Tag 1
	Cluster  *ClusterID  // Tag 2
	Event    *EventID    // Tag 3
	IsUrgent *bool       // Tag 4
}

// Context tags for EventPathIB.
const (
	eventPathTagNode     = 0
	eventPathTagEndpoint = 1
	eventPathTagCluster  = 2
	eventPathTagEvent    = 3
	eventPathTagIsUrgent = 4
)

// Encode writes the EventPathIB to the TLV writer.
func (p *EventPathIB) Encode(w *tlv.Writer) error {
	return p.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the EventPathIB with a specific tag.
func (p *EventPathIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b ListBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	if p.Node != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventPathTagNode), uint64(*p.Node)))
	}
	if p.Endpoint != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventPathTagEndpoint), uint64(*p.Endpoint)))
	}
	if p.Cluster != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventPathTagCluster), uint64(*p.Cluster)))
	}
	if p.Event != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventPathTagEvent), uint64(*p.Event)))
	}
	if p.IsUrgent != nil {
		b.fail(w.PutBool(tlv.ContextTag(eventPathTagIsUrgent), *p.IsUrgent))
	}

	return b.EndOfContainer()
}

// Decode reads an EventPathIB from the TLV reader.
func (p *EventPathIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return p.DecodeFrom(r)
}

// DecodeFrom reads an EventPathIB assuming the reader is positioned
// at the container start.
func (p *EventPathIB) DecodeFrom(r *tlv.Reader) error {
	var lp ListParser
	if err := lp.Init(r); err != nil {
		return err
	}

	err := lp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case eventPathTagNode:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			nodeID := NodeID(v)
			p.Node = &nodeID

		case eventPathTagEndpoint:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			endpointID := EndpointID(v)
			p.Endpoint = &endpointID

		case eventPathTagCluster:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			clusterID := ClusterID(v)
			p.Cluster = &clusterID

		case eventPathTagEvent:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			eventID := EventID(v)
			p.Event = &eventID

		case eventPathTagIsUrgent:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			p.IsUrgent = &v
		}
		return nil
	})
	if err != nil {
		return err
	}

	return lp.Exit()
}
