package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// EventReportIB carries exactly one of an event's data or its failure
// status. The parser accepts either variant; the builder enforces the
// exclusion so an encoded report never carries both.
// Container type: Structure
type EventReportIB struct {
	EventStatus *EventStatusIB // Tag 0
	EventData   *EventDataIB   // Tag 1
}

// Context tags for EventReportIB.
const (
	eventReportTagEventStatus = 0
	eventReportTagEventData   = 1
)

// SetStatus sets the status variant, failing if the data variant is
// already set.
func (e *EventReportIB) SetStatus(status *EventStatusIB) error {
	if e.EventData != nil {
		return ErrInvalidAction
	}
	e.EventStatus = status
	return nil
}

// SetData sets the data variant, failing if the status variant is
// already set.
func (e *EventReportIB) SetData(data *EventDataIB) error {
	if e.EventStatus != nil {
		return ErrInvalidAction
	}
	e.EventData = data
	return nil
}

// Encode writes the EventReportIB to the TLV writer.
func (e *EventReportIB) Encode(w *tlv.Writer) error {
	return e.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the EventReportIB with a specific tag. Returns
// ErrInvalidAction if both or neither variant is set.
func (e *EventReportIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	if (e.EventStatus == nil) == (e.EventData == nil) {
		return ErrInvalidAction
	}

	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	if e.EventStatus != nil {
		b.fail(e.EventStatus.EncodeWithTag(w, tlv.ContextTag(eventReportTagEventStatus)))
	}
	if e.EventData != nil {
		b.fail(e.EventData.EncodeWithTag(w, tlv.ContextTag(eventReportTagEventData)))
	}

	return b.EndOfContainer()
}

// Decode reads an EventReportIB from the TLV reader.
func (e *EventReportIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return e.DecodeFrom(r)
}

// DecodeFrom reads an EventReportIB assuming the reader is positioned
// at the container start.
func (e *EventReportIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case eventReportTagEventStatus:
			e.EventStatus = &EventStatusIB{}
			return e.EventStatus.DecodeFrom(r)

		case eventReportTagEventData:
			e.EventData = &EventDataIB{}
			return e.EventData.DecodeFrom(r)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return sp.Exit()
}

// IsStatus returns true if this report contains a status (error).
func (e *EventReportIB) IsStatus() bool {
	return e.EventStatus != nil
}

// IsData returns true if this report contains event data.
func (e *EventReportIB) IsData() bool {
	return e.EventData != nil
}
