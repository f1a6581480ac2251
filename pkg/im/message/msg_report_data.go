package message

import (
	"github.com/backkem/matter-im-codec/pkg/tlv"
)

// ReportDataMessage contains attribute and/or event data. An absent
// SubscriptionID means the report answers a Read rather than feeding a
// subscription.
// Opcode: 0x05
// Container type: Structure
type ReportDataMessage struct {
	SubscriptionID      *SubscriptionID     // Tag 0, optional
	AttributeReports    []AttributeReportIB // Tag 1
	EventReports        []EventReportIB     // Tag 2
	MoreChunkedMessages bool                // Tag 3
	SuppressResponse    bool                // Tag 4
}

// Context tags for ReportDataMessage.
const (
	reportDataTagSubscriptionID      = 0
	reportDataTagAttributeReports    = 1
	reportDataTagEventReports        = 2
	reportDataTagMoreChunkedMessages = 3
	reportDataTagSuppressResponse    = 4
)

// Encode writes the ReportDataMessage to the TLV writer.
func (m *ReportDataMessage) Encode(w *tlv.Writer) error {
	var b MessageBuilder
	if err := b.Init(w); err != nil {
		return err
	}

	if m.SubscriptionID != nil {
		b.fail(w.PutUint(tlv.ContextTag(reportDataTagSubscriptionID), uint64(*m.SubscriptionID)))
	}
	if len(m.AttributeReports) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(reportDataTagAttributeReports), m.AttributeReports,
			func(w *tlv.Writer, r AttributeReportIB, tag tlv.Tag) error { return r.EncodeWithTag(w, tag) }))
	}
	if len(m.EventReports) > 0 {
		b.fail(EncodeIBArray(w, tlv.ContextTag(reportDataTagEventReports), m.EventReports,
			func(w *tlv.Writer, r EventReportIB, tag tlv.Tag) error { return r.EncodeWithTag(w, tag) }))
	}
	b.fail(w.PutBool(tlv.ContextTag(reportDataTagMoreChunkedMessages), m.MoreChunkedMessages))
	b.fail(w.PutBool(tlv.ContextTag(reportDataTagSuppressResponse), m.SuppressResponse))
	b.fail(b.EncodeInteractionModelRevision())

	return b.EndOfContainer()
}

// Decode reads a ReportDataMessage from the TLV reader.
func (m *ReportDataMessage) Decode(r *tlv.Reader) error {
	var p MessageParser
	if err := p.Init(r); err != nil {
		return err
	}

	err := p.ForEachContextField(func(tagNum uint8, r *tlv.Reader) error {
		switch tagNum {
		case reportDataTagSubscriptionID:
			v, err := r.Uint()
			if err != nil {
				return err
			}
			subID := SubscriptionID(v)
			m.SubscriptionID = &subID

		case reportDataTagAttributeReports:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (AttributeReportIB, error) {
				var report AttributeReportIB
				err := report.DecodeFrom(r)
				return report, err
			})
			if err != nil {
				return err
			}
			m.AttributeReports = items

		case reportDataTagEventReports:
			items, err := DecodeIBArray(r, func(r *tlv.Reader) (EventReportIB, error) {
				var report EventReportIB
				err := report.DecodeFrom(r)
				return report, err
			})
			if err != nil {
				return err
			}
			m.EventReports = items

		case reportDataTagMoreChunkedMessages:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.MoreChunkedMessages = v

		case reportDataTagSuppressResponse:
			v, err := r.Bool()
			if err != nil {
				return err
			}
			m.SuppressResponse = v

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
