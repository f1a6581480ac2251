package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// EventStatusIB contains status information for an event.
// Container type: Structure
type EventStatusIB struct {
	Path   EventPathIB // Tag 0
	Status StatusIB    // Tag 1
}

// Context tags for EventStatusIB.
const (
	eventStatusTagPath   = 0
	eventStatusTagStatus = 1
)

// Encode writes the EventStatusIB to the TLV writer.
func (e *EventStatusIB) Encode(w *tlv.Writer) error {
	return e.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the EventStatusIB with a specific tag.
func (e *EventStatusIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(e.Path.EncodeWithTag(w, tlv.ContextTag(eventStatusTagPath)))
	b.fail(e.Status.EncodeWithTag(w, tlv.ContextTag(eventStatusTagStatus)))

	return b.EndOfContainer()
}

// Decode reads an EventStatusIB from the TLV reader.
func (e *EventStatusIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return e.DecodeFrom(r)
}

// DecodeFrom reads an EventStatusIB assuming the reader is positioned
// at the container start.
func (e *EventStatusIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasPath, hasStatus bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case eventStatusTagPath:
			if err := e.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case eventStatusTagStatus:
			if err := e.Status.DecodeFrom(r); err != nil {
				return err
			}
			hasStatus = true
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasPath || !hasStatus {
		return ErrMissingField
	}

	return nil
}
