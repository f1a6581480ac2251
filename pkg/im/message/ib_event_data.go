package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// EventDataIB contains event data.
// Container type: Structure
type EventDataIB struct {
	Path                 EventPathIB // Tag 0
	EventNumber          EventNumber // Tag 1
	Priority             uint8       // Tag 2
	EpochTimestamp       *uint64     // Tag 3, optional
	SystemTimestamp      *uint64     // Tag 4, optional
	DeltaEpochTimestamp  *uint64     // Tag 5, optional
	DeltaSystemTimestamp *uint64     // Tag 6, optional
	Data                 []byte      // Tag 7, raw TLV of the event's payload
}

// Context tags for EventDataIB.
const (
	eventDataTagPath                 = 0
	eventDataTagEventNumber          = 1
	eventDataTagPriority             = 2
	eventDataTagEpochTimestamp       = 3
	eventDataTagSystemTimestamp      = 4
	eventDataTagDeltaEpochTimestamp  = 5
	eventDataTagDeltaSystemTimestamp = 6
	eventDataTagData                 = 7
)

// Event priority levels.
const (
	EventPriorityDebug    uint8 = 0
	EventPriorityInfo     uint8 = 1
	EventPriorityCritical uint8 = 2
)

// Encode writes the EventDataIB to the TLV writer.
func (e *EventDataIB) Encode(w *tlv.Writer) error {
	return e.EncodeWithTag(w, tlv.Anonymous())
}

// EncodeWithTag writes the EventDataIB with a specific tag. Returns
// ErrInvalidAction unless exactly one of the four timestamp fields is
// set (spec.md §4.4: "exactly one of the four timestamp fields MUST be
// present").
func (e *EventDataIB) EncodeWithTag(w *tlv.Writer, tag tlv.Tag) error {
	if err := e.checkTimestampCount(); err != nil {
		return err
	}

	var b StructBuilder
	if err := b.Init(w, tag); err != nil {
		return err
	}

	b.fail(e.Path.EncodeWithTag(w, tlv.ContextTag(eventDataTagPath)))
	b.fail(w.PutUint(tlv.ContextTag(eventDataTagEventNumber), uint64(e.EventNumber)))
	b.fail(w.PutUint(tlv.ContextTag(eventDataTagPriority), uint64(e.Priority)))

	if e.EpochTimestamp != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventDataTagEpochTimestamp), *e.EpochTimestamp))
	}
	if e.SystemTimestamp != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventDataTagSystemTimestamp), *e.SystemTimestamp))
	}
	if e.DeltaEpochTimestamp != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventDataTagDeltaEpochTimestamp), *e.DeltaEpochTimestamp))
	}
	if e.DeltaSystemTimestamp != nil {
		b.fail(w.PutUint(tlv.ContextTag(eventDataTagDeltaSystemTimestamp), *e.DeltaSystemTimestamp))
	}
	if len(e.Data) > 0 {
		b.fail(w.PutRaw(tlv.ContextTag(eventDataTagData), e.Data))
	}

	return b.EndOfContainer()
}

// Decode reads an EventDataIB from the TLV reader.
func (e *EventDataIB) Decode(r *tlv.Reader) error {
	if err := r.Next(); err != nil {
		return err
	}
	return e.DecodeFrom(r)
}

// DecodeFrom reads an EventDataIB assuming the reader is positioned
// at the container start.
func (e *EventDataIB) DecodeFrom(r *tlv.Reader) error {
	var sp StructParser
	if err := sp.Init(r); err != nil {
		return err
	}

	var hasPath, hasEventNumber, hasPriority bool

	err := sp.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case eventDataTagPath:
			if err := e.Path.DecodeFrom(r); err != nil {
				return err
			}
			hasPath = true

		case eventDataTagEventNumber:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			e.EventNumber = EventNumber(v)
			hasEventNumber = true

		case eventDataTagPriority:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			e.Priority = uint8(v)
			hasPriority = true

		case eventDataTagEpochTimestamp:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			e.EpochTimestamp = &v

		case eventDataTagSystemTimestamp:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			e.SystemTimestamp = &v

		case eventDataTagDeltaEpochTimestamp:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			e.DeltaEpochTimestamp = &v

		case eventDataTagDeltaSystemTimestamp:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			e.DeltaSystemTimestamp = &v

		case eventDataTagData:
			data, err := r.RawBytes()
			if err != nil {
				return err
			}
			e.Data = data
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := sp.Exit(); err != nil {
		return err
	}

	if !hasPath || !hasEventNumber || !hasPriority {
		return ErrMissingField
	}

	return e.checkTimestampCount()
}

// checkTimestampCount enforces spec.md §4.4's exactly-one-of invariant
// over EventDataIB's four timestamp fields (P7), the same family of
// invariant AttributeReportIB/EventReportIB/InvokeResponseIB enforce via
// their SetData/SetStatus setter guards. EventDataIB's four fields are
// plain struct fields rather than a setter pair, so the check instead
// runs once at the point where the full field set is known: immediately
// before Encode writes the container, and immediately after Decode
// finishes reading all siblings.
func (e *EventDataIB) checkTimestampCount() error {
	count := 0
	if e.EpochTimestamp != nil {
		count++
	}
	if e.SystemTimestamp != nil {
		count++
	}
	if e.DeltaEpochTimestamp != nil {
		count++
	}
	if e.DeltaSystemTimestamp != nil {
		count++
	}
	if count != 1 {
		return ErrInvalidAction
	}
	return nil
}

// SetDataValue encodes event data with encode and stores the result as
// the raw TLV Data payload.
func (e *EventDataIB) SetDataValue(encode func(w *tlv.Writer) error) error {
	w := tlv.NewWriter(nil, 0)
	if err := encode(w); err != nil {
		return err
	}
	e.Data = w.Bytes()
	return nil
}
